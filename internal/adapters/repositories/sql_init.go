package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"shipment-address-service/internal/domain"
	"shipment-address-service/internal/ports"
	"strings"
)

// Initialize the shipments schema. The DDL is valid for SQLite and PostgreSQL.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// An address is absent when both of its street columns are NULL.
	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipments (
		shipment_id TEXT PRIMARY KEY,
		shipment_reference TEXT NOT NULL DEFAULT '',
		sender_street1 TEXT,
		sender_street2 TEXT,
		receiver_street1 TEXT,
		receiver_street2 TEXT
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_shipments_reference
	ON shipments(shipment_reference);
	`

	statements := []string{
		createShipmentsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type AddressSeed struct {
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
}

type ShipmentSeed struct {
	ShipmentID        string       `json:"shipment_id"`
	ShipmentReference string       `json:"shipment_reference"`
	Sender            *AddressSeed `json:"sender"`
	Receiver          *AddressSeed `json:"receiver"`
}

// Populate the database with shipment data from a JSON file.
// A null or missing sender/receiver is stored as an absent address.
func SeedFromJSON(ctx context.Context, repo ports.ShipmentWriter, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed shipments: read %q: %w", jsonPath, err)
	}

	var data []ShipmentSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed shipments: parse json: %w", err)
	}

	shipments := make([]domain.Shipment, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.ShipmentID)
		if id == "" {
			return fmt.Errorf("seed shipments: item at index %d: shipment_id cannot be empty", i+1)
		}

		s := domain.NewShipmentRecord(id, item.ShipmentReference)
		if item.Sender != nil {
			s.SetSenderAddress(domain.NewStreetAddress(item.Sender.Street1, item.Sender.Street2))
		}
		if item.Receiver != nil {
			s.SetReceiverAddress(domain.NewStreetAddress(item.Receiver.Street1, item.Receiver.Street2))
		}
		shipments = append(shipments, s)
	}

	if err := repo.UpsertShipments(ctx, shipments); err != nil {
		return fmt.Errorf("seed shipments: %w", err)
	}

	return nil
}
