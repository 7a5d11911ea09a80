package ports

import (
	"context"
	"errors"
	"shipment-address-service/internal/domain"
)

// ErrShipmentNotFound is returned when no shipment matches the requested id.
var ErrShipmentNotFound = errors.New("shipment not found")

// Port: a boundary for retrieving Shipment entities from a data source.
type ShipmentRepository interface {
	// Retrieve all stored shipments ordered by id.
	ListShipments(ctx context.Context) ([]domain.Shipment, error)
	// Retrieve one shipment; ErrShipmentNotFound when absent.
	GetShipment(ctx context.Context, shipmentID string) (domain.Shipment, error)
}

// Port: a boundary for persisting Shipment entities.
type ShipmentWriter interface {
	// Insert or replace the given shipments atomically.
	UpsertShipments(ctx context.Context, shipments []domain.Shipment) error
}
