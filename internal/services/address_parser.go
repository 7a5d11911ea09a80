package services

import (
	"shipment-address-service/internal/domain"
	"strings"
	"unicode/utf8"
)

// AddressParser derives display strings from a shipment's addresses.
//
// It keeps a reference to the shipment and reads it on every call, so results
// always reflect the shipment's current state. Nothing is validated: an unset
// address or an empty receiver street line makes the call panic, and the panic
// reaches the caller unchanged.
type AddressParser struct {
	shipment domain.Shipment
}

func NewAddressParser(shipment domain.Shipment) *AddressParser {
	return &AddressParser{shipment: shipment}
}

// SubstringOneRecvAddress returns the receiver's first street line without its
// first rune. An invalid leading byte counts as one rune. The remainder is
// returned byte for byte. An empty line panics with a slice bounds error.
func (p *AddressParser) SubstringOneRecvAddress() string {
	street1 := p.shipment.ReceiverAddress().Street1()
	_, n := utf8.DecodeRuneInString(street1)
	return street1[max(n, 1):]
}

// UpperCaseStreetTwoSender returns the sender's second street line upper-cased
// with Unicode default case mapping.
func (p *AddressParser) UpperCaseStreetTwoSender() string {
	return strings.ToUpper(p.shipment.SenderAddress().Street2())
}
