package domain

import "reflect"

// Address is the read-only view of a postal address: two free-text street lines.
type Address interface {
	Street1() string
	Street2() string
}

// StreetAddress is the plain data holder for an Address.
// Both lines may be empty; nothing here validates them.
type StreetAddress struct {
	Line1 string
	Line2 string
}

func NewStreetAddress(line1, line2 string) *StreetAddress {
	return &StreetAddress{Line1: line1, Line2: line2}
}

func (a *StreetAddress) Street1() string { return a.Line1 }

func (a *StreetAddress) Street2() string { return a.Line2 }

// HasAddress reports whether an address association is set.
// A typed nil pointer stored in the interface counts as absent.
func HasAddress(a Address) bool {
	if a == nil {
		return false
	}
	v := reflect.ValueOf(a)
	return !(v.Kind() == reflect.Pointer && v.IsNil())
}
