package orders

import (
	"strings"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
)

var _ domain.Equatable = Address{}

// Address is a shipping destination.
type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// NewAddress trims and validates all fields.
func NewAddress(street, city, postalCode, country string) (Address, error) {
	a := Address{
		Street:     strings.TrimSpace(street),
		City:       strings.TrimSpace(city),
		PostalCode: strings.TrimSpace(postalCode),
		Country:    strings.ToUpper(strings.TrimSpace(country)),
	}

	fields := make(map[string]string)
	if a.Street == "" {
		fields["street"] = domain.MsgRequired
	}
	if a.City == "" {
		fields["city"] = domain.MsgRequired
	}
	if a.PostalCode == "" {
		fields["postal_code"] = domain.MsgRequired
	}
	if len(a.Country) != 2 {
		fields["country"] = "must be a 2-letter code"
	}
	if len(fields) > 0 {
		return Address{}, &domain.ValidationError{Fields: fields}
	}

	return a, nil
}

func (a Address) EqualityComponents() []any {
	return []any{a.Street, a.City, a.PostalCode, a.Country}
}

func (a Address) Equals(other domain.ValueObject) bool { return domain.Equal(a, other) }

func (a Address) HashCode() int32 { return domain.Hash(a) }
