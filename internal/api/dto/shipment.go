package dto

type AddressResponse struct {
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
}

type ShipmentResponse struct {
	ShipmentID        string           `json:"shipment_id"`
	ShipmentReference string           `json:"shipment_reference"`
	Sender            *AddressResponse `json:"sender"`
	Receiver          *AddressResponse `json:"receiver"`
}

type ListShipmentsResponse struct {
	Shipments []ShipmentResponse `json:"shipments"`
}

type ParsedAddressesResponse struct {
	ShipmentID          string `json:"shipment_id"`
	ReceiverStreet1Tail string `json:"receiver_street1_tail"`
	SenderStreet2Upper  string `json:"sender_street2_upper"`
}
