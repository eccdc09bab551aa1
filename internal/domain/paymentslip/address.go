package paymentslip

import (
	"golang.org/x/text/language"
)

// AddressType selects one of the two mutually exclusive address shapes
// the payment standard permits.
type AddressType string

const (
	// AddressTypeStructured carries street, house number, postal code and
	// city as separate fields. Encoded as "S" in the payload.
	AddressTypeStructured AddressType = "S"
	// AddressTypeCombined carries two pre-joined lines: street + house
	// number, then postal code + city. Encoded as "K" in the payload.
	AddressTypeCombined AddressType = "K"
)

// IsValid checks if the AddressType is a valid value
func (t AddressType) IsValid() bool {
	return t == AddressTypeStructured || t == AddressTypeCombined
}

// Address is a postal address as it appears on the payment slip. Exactly
// one of the two shapes is populated per instance: the structured fields
// (Street, HouseNumber, PostalCode, City) or the combined lines
// (AddressLine1, AddressLine2), never both.
type Address struct {
	Type AddressType `json:"type"`
	Name string      `json:"name"`

	// Structured shape
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"house_number,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	City        string `json:"city,omitempty"`

	// Combined shape
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`

	// Country is an ISO-3166 alpha-2 code, e.g. "CH".
	Country string `json:"country"`
}

// Validate checks the address for structural completeness and returns one
// FieldError per violation. A nil result means the address is valid.
func (a Address) Validate() []FieldError {
	var errs []FieldError

	add := func(field string, reason Reason) {
		errs = append(errs, FieldError{Field: field, Reason: reason})
	}

	if Sanitize(a.Name, SanitizeSingleLine) == "" {
		add("name", ReasonRequired)
	}

	switch a.Type {
	case AddressTypeStructured:
		if a.AddressLine1 != "" || a.AddressLine2 != "" {
			add("type", ReasonAddressShape)
		}
		if Sanitize(a.Street, SanitizeSingleLine) == "" {
			add("street", ReasonRequired)
		}
		if Sanitize(a.PostalCode, SanitizeSingleLine) == "" {
			add("postal_code", ReasonRequired)
		}
		if Sanitize(a.City, SanitizeSingleLine) == "" {
			add("city", ReasonRequired)
		}
	case AddressTypeCombined:
		if a.Street != "" || a.HouseNumber != "" || a.PostalCode != "" || a.City != "" {
			add("type", ReasonAddressShape)
		}
		if Sanitize(a.AddressLine1, SanitizeSingleLine) == "" {
			add("address_line1", ReasonRequired)
		}
		if Sanitize(a.AddressLine2, SanitizeSingleLine) == "" {
			add("address_line2", ReasonRequired)
		}
	default:
		add("type", ReasonAddressShape)
	}

	if !IsCountryCode(a.Country) {
		add("country", ReasonInvalidCountry)
	}

	return errs
}

// StreetLine returns the first display line of the address body: the
// combined line as-is, or street and house number joined.
func (a Address) StreetLine() string {
	if a.Type == AddressTypeCombined {
		return a.AddressLine1
	}
	return JoinStreet(a.Street, a.HouseNumber)
}

// PostalLine returns the second display line of the address body: the
// combined line as-is, or postal code and city joined.
func (a Address) PostalLine() string {
	if a.Type == AddressTypeCombined {
		return a.AddressLine2
	}
	return JoinPostal(a.PostalCode, a.City)
}

// JoinStreet joins a street and an optional house number. An empty house
// number yields the street alone with no trailing separator.
func JoinStreet(street, houseNumber string) string {
	if houseNumber == "" {
		return street
	}
	return street + " " + houseNumber
}

// JoinPostal joins a postal code and a city into one line.
func JoinPostal(postalCode, city string) string {
	return postalCode + " " + city
}

// IsCountryCode reports whether code is a known ISO-3166 alpha-2 country
// code such as "CH" or "DE".
func IsCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return false
	}
	return region.IsCountry()
}
