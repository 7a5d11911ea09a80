package services

import (
	"context"
	"errors"
	"shipment-address-service/internal/domain"
	"shipment-address-service/internal/mocks"
	"shipment-address-service/internal/ports"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseShipment(t *testing.T) {
	shipment := domain.NewShipmentRecord("SHP-1", "REF-1")
	shipment.SetReceiverAddress(domain.NewStreetAddress("Street 1 test", ""))
	shipment.SetSenderAddress(domain.NewStreetAddress("", "Street 2 test"))

	repo := new(mocks.MockShipmentRepository)
	repo.On("GetShipment", mock.Anything, "SHP-1").Return(shipment, nil)

	got, err := ParseShipment(context.Background(), repo, "SHP-1")
	require.NoError(t, err)

	assert.Equal(t, ParsedAddresses{
		ShipmentID:          "SHP-1",
		ReceiverStreet1Tail: "treet 1 test",
		SenderStreet2Upper:  "STREET 2 TEST",
	}, got)
	repo.AssertExpectations(t)
}

func TestParseShipmentNotFound(t *testing.T) {
	repo := new(mocks.MockShipmentRepository)
	repo.On("GetShipment", mock.Anything, "missing").Return(nil, ports.ErrShipmentNotFound)

	_, err := ParseShipment(context.Background(), repo, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrShipmentNotFound))
}

func TestParseShipmentPropagatesParserPanic(t *testing.T) {
	// receiver never set
	shipment := domain.NewShipmentRecord("SHP-2", "REF-2")
	shipment.SetSenderAddress(domain.NewStreetAddress("", "x"))

	repo := new(mocks.MockShipmentRepository)
	repo.On("GetShipment", mock.Anything, "SHP-2").Return(shipment, nil)

	assert.Panics(t, func() {
		_, _ = ParseShipment(context.Background(), repo, "SHP-2")
	})
}
