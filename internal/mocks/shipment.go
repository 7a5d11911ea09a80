// Package mocks provides testify-based doubles for the domain and port interfaces.
package mocks

import (
	"context"
	"shipment-address-service/internal/domain"
	"shipment-address-service/internal/ports"

	"github.com/stretchr/testify/mock"
)

var (
	_ domain.Shipment          = (*MockShipment)(nil)
	_ domain.Address           = (*MockAddress)(nil)
	_ ports.ShipmentRepository = (*MockShipmentRepository)(nil)
	_ ports.ShipmentWriter     = (*MockShipmentWriter)(nil)
)

// MockShipment is a mock implementation of domain.Shipment.
type MockShipment struct {
	mock.Mock
}

func (m *MockShipment) ShipmentID() string {
	return m.Called().String(0)
}

func (m *MockShipment) SetShipmentID(shipmentID string) {
	m.Called(shipmentID)
}

func (m *MockShipment) ShipmentReference() string {
	return m.Called().String(0)
}

func (m *MockShipment) SetShipmentReference(shipmentReference string) {
	m.Called(shipmentReference)
}

func (m *MockShipment) ReceiverAddress() domain.Address {
	return address(m.Called(), 0)
}

func (m *MockShipment) SetReceiverAddress(receiverAddress domain.Address) {
	m.Called(receiverAddress)
}

func (m *MockShipment) SenderAddress() domain.Address {
	return address(m.Called(), 0)
}

func (m *MockShipment) SetSenderAddress(senderAddress domain.Address) {
	m.Called(senderAddress)
}

// MockAddress is a mock implementation of domain.Address.
type MockAddress struct {
	mock.Mock
}

func (m *MockAddress) Street1() string {
	return m.Called().String(0)
}

func (m *MockAddress) Street2() string {
	return m.Called().String(0)
}

// MockShipmentRepository is a mock implementation of ports.ShipmentRepository.
type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetShipment(ctx context.Context, shipmentID string) (domain.Shipment, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Shipment), args.Error(1)
}

// MockShipmentWriter is a mock implementation of ports.ShipmentWriter.
type MockShipmentWriter struct {
	mock.Mock
}

func (m *MockShipmentWriter) UpsertShipments(ctx context.Context, shipments []domain.Shipment) error {
	return m.Called(ctx, shipments).Error(0)
}

// address returns a nil interface when the configured value is nil,
// so an unset association behaves like one on a real shipment.
func address(args mock.Arguments, i int) domain.Address {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(domain.Address)
}
