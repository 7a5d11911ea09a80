package domain

// Shipment is the capability a consignment must offer to be read by the parser:
// an identifier, a reference and two address associations.
//
// Getters return whatever was last set, or the zero value ("" or a nil Address)
// when nothing was set. Setters only replace the stored value.
type Shipment interface {
	ShipmentID() string
	SetShipmentID(shipmentID string)
	ShipmentReference() string
	SetShipmentReference(shipmentReference string)
	ReceiverAddress() Address
	SetReceiverAddress(receiverAddress Address)
	SenderAddress() Address
	SetSenderAddress(senderAddress Address)
}

// ShipmentRecord is the in-memory Shipment used by the repositories and the API.
// It is not safe for concurrent mutation.
type ShipmentRecord struct {
	id        string
	reference string
	receiver  Address
	sender    Address
}

var _ Shipment = (*ShipmentRecord)(nil)

func NewShipmentRecord(id, reference string) *ShipmentRecord {
	return &ShipmentRecord{id: id, reference: reference}
}

func (s *ShipmentRecord) ShipmentID() string { return s.id }

func (s *ShipmentRecord) SetShipmentID(shipmentID string) { s.id = shipmentID }

func (s *ShipmentRecord) ShipmentReference() string { return s.reference }

func (s *ShipmentRecord) SetShipmentReference(shipmentReference string) {
	s.reference = shipmentReference
}

func (s *ShipmentRecord) ReceiverAddress() Address { return s.receiver }

func (s *ShipmentRecord) SetReceiverAddress(receiverAddress Address) {
	s.receiver = receiverAddress
}

func (s *ShipmentRecord) SenderAddress() Address { return s.sender }

func (s *ShipmentRecord) SetSenderAddress(senderAddress Address) {
	s.sender = senderAddress
}
