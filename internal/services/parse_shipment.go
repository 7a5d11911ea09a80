package services

import (
	"context"
	"fmt"
	"shipment-address-service/internal/ports"
)

// ParsedAddresses is the result of running both parser queries on one shipment.
type ParsedAddresses struct {
	ShipmentID          string
	ReceiverStreet1Tail string
	SenderStreet2Upper  string
}

// ParseShipment loads a shipment and runs both AddressParser queries on it.
// Repository errors are returned wrapped; parser panics are not recovered here.
func ParseShipment(
	ctx context.Context,
	repo ports.ShipmentRepository,
	shipmentID string,
) (ParsedAddresses, error) {
	shipment, err := repo.GetShipment(ctx, shipmentID)
	if err != nil {
		return ParsedAddresses{}, fmt.Errorf("parse shipment %q: %w", shipmentID, err)
	}

	parser := NewAddressParser(shipment)

	return ParsedAddresses{
		ShipmentID:          shipment.ShipmentID(),
		ReceiverStreet1Tail: parser.SubstringOneRecvAddress(),
		SenderStreet2Upper:  parser.UpperCaseStreetTwoSender(),
	}, nil
}
