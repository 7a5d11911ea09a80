package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"shipment-address-service/internal/domain"
	"shipment-address-service/internal/platform/obs"
	"shipment-address-service/internal/ports"
	"strings"
)

// SQL-backed implementation of the ShipmentRepository port.
// The same queries serve SQLite (modernc) and PostgreSQL (pgx); only bind
// markers differ, selected by the dialect.
type SQLShipmentRepository struct {
	DB      *sql.DB
	dialect Dialect
}

var (
	_ ports.ShipmentRepository = (*SQLShipmentRepository)(nil)
	_ ports.ShipmentWriter     = (*SQLShipmentRepository)(nil)
)

func NewSqliteShipmentRepository(db *sql.DB) *SQLShipmentRepository {
	return &SQLShipmentRepository{DB: db, dialect: SQLite}
}

func NewPostgresShipmentRepository(db *sql.DB) *SQLShipmentRepository {
	return &SQLShipmentRepository{DB: db, dialect: Postgres}
}

const selectShipmentColumns = `
	SELECT
		shipment_id,
		shipment_reference,
		sender_street1,
		sender_street2,
		receiver_street1,
		receiver_street2
	FROM shipments
`

type rowScanner interface {
	Scan(dest ...any) error
}

// Return all shipments stored in the database.
func (s *SQLShipmentRepository) ListShipments(ctx context.Context) (_ []domain.Shipment, err error) {
	defer obs.Time(ctx, "shipments.repo.ListShipments")(&err)

	if s.DB == nil {
		return nil, errors.New("shipment repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, selectShipmentColumns+`ORDER BY shipment_id;`)
	if err != nil {
		return nil, fmt.Errorf("list shipments: query shipments table: %w", err)
	}
	defer rows.Close()

	shipments := make([]domain.Shipment, 0, 64)
	for rows.Next() {
		shipment, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("list shipments: scan row: %w", err)
		}
		shipments = append(shipments, shipment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shipments: row iteration: %w", err)
	}

	return shipments, nil
}

// Return the shipment with the given id, or ports.ErrShipmentNotFound.
func (s *SQLShipmentRepository) GetShipment(ctx context.Context, shipmentID string) (_ domain.Shipment, err error) {
	defer obs.Time(ctx, "shipments.repo.GetShipment")(&err)

	if s.DB == nil {
		return nil, errors.New("shipment repository: DB is nil")
	}

	q := selectShipmentColumns + `WHERE shipment_id = ` + s.dialect.placeholder(1) + `;`

	shipment, err := scanShipment(s.DB.QueryRowContext(ctx, q, shipmentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get shipment %q: %w", shipmentID, ports.ErrShipmentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get shipment %q: scan row: %w", shipmentID, err)
	}

	return shipment, nil
}

// Insert or replace many shipments in a single transaction.
func (s *SQLShipmentRepository) UpsertShipments(ctx context.Context, shipments []domain.Shipment) (err error) {
	defer obs.Time(ctx, "shipments.repo.UpsertShipments")(&err)

	if s.DB == nil {
		return errors.New("shipment repository: DB is nil")
	}

	if len(shipments) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert shipments: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ph := make([]string, 6)
	for i := range ph {
		ph[i] = s.dialect.placeholder(i + 1)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO shipments (
		shipment_id,
		shipment_reference,
		sender_street1,
		sender_street2,
		receiver_street1,
		receiver_street2
	)
	VALUES (`+strings.Join(ph, ", ")+`)
	ON CONFLICT (shipment_id) DO UPDATE
	SET shipment_reference = EXCLUDED.shipment_reference,
		sender_street1 = EXCLUDED.sender_street1,
		sender_street2 = EXCLUDED.sender_street2,
		receiver_street1 = EXCLUDED.receiver_street1,
		receiver_street2 = EXCLUDED.receiver_street2;
	`)
	if err != nil {
		return fmt.Errorf("upsert shipments: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, sh := range shipments {
		id := sh.ShipmentID()
		if strings.TrimSpace(id) == "" {
			return errors.New("upsert shipments: empty shipment_id")
		}

		senderLine1, senderLine2 := addressColumns(sh.SenderAddress())
		receiverLine1, receiverLine2 := addressColumns(sh.ReceiverAddress())

		if _, err := stmt.ExecContext(
			ctx,
			id,
			sh.ShipmentReference(),
			senderLine1, senderLine2,
			receiverLine1, receiverLine2,
		); err != nil {
			return fmt.Errorf("upsert shipments shipment_id=%q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert shipments commit: %w", err)
	}

	return nil
}

func scanShipment(row rowScanner) (*domain.ShipmentRecord, error) {
	var (
		id, reference                string
		senderLine1, senderLine2     sql.NullString
		receiverLine1, receiverLine2 sql.NullString
	)

	if err := row.Scan(
		&id,
		&reference,
		&senderLine1, &senderLine2,
		&receiverLine1, &receiverLine2,
	); err != nil {
		return nil, err
	}

	shipment := domain.NewShipmentRecord(id, reference)
	if senderLine1.Valid || senderLine2.Valid {
		shipment.SetSenderAddress(domain.NewStreetAddress(senderLine1.String, senderLine2.String))
	}
	if receiverLine1.Valid || receiverLine2.Valid {
		shipment.SetReceiverAddress(domain.NewStreetAddress(receiverLine1.String, receiverLine2.String))
	}

	return shipment, nil
}

// addressColumns maps an address association to its two nullable columns.
func addressColumns(a domain.Address) (sql.NullString, sql.NullString) {
	if !domain.HasAddress(a) {
		return sql.NullString{}, sql.NullString{}
	}
	return sql.NullString{String: a.Street1(), Valid: true},
		sql.NullString{String: a.Street2(), Valid: true}
}
