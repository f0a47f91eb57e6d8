package domain

import "strings"

// Address is an immutable postal address used for customer sites and
// warehouse locations. Structural equality via ==.
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// NewAddress validates and creates an Address. Street, city, and country are
// mandatory; state and postal code vary by country and are optional.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(street) == "" {
		fields["street"] = "is required"
	}
	if strings.TrimSpace(city) == "" {
		fields["city"] = "is required"
	}
	if strings.TrimSpace(country) == "" {
		fields["country"] = "is required"
	}

	if len(fields) > 0 {
		return Address{}, &ValidationError{Fields: fields}
	}

	return Address{
		Street:     street,
		City:       city,
		State:      state,
		PostalCode: postalCode,
		Country:    country,
	}, nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	parts := []string{a.Street, a.City}
	if a.State != "" {
		parts = append(parts, a.State)
	}
	if a.PostalCode != "" {
		parts = append(parts, a.PostalCode)
	}
	parts = append(parts, a.Country)
	return strings.Join(parts, ", ")
}
