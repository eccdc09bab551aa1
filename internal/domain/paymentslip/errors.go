package paymentslip

import "strings"

// Reason is a machine-readable code describing why a field or order is
// invalid. Callers map reasons to localized user-facing messages; this
// package never carries display text.
type Reason string

const (
	ReasonRequired            Reason = "required"
	ReasonTooLong             Reason = "too_long"
	ReasonInvalidCountry      Reason = "invalid_country"
	ReasonAddressShape        Reason = "address_shape"
	ReasonAmountRange         Reason = "amount_range"
	ReasonAmountPrecision     Reason = "amount_precision"
	ReasonUnsupportedCurrency Reason = "unsupported_currency"
	ReasonInvalidAccount      Reason = "invalid_account"
	ReasonAccountTypeMismatch Reason = "account_type_mismatch"
	ReasonReferenceMissing    Reason = "reference_missing"
	ReasonInvalidReference    Reason = "invalid_reference"
)

// FieldError reports a single invalid or missing field in an address.
type FieldError struct {
	Field  string `json:"field"`
	Reason Reason `json:"reason"`
}

// Error implements the error interface
func (e FieldError) Error() string {
	return e.Field + ": " + string(e.Reason)
}

// OrderError reports a single violation found while validating a payment
// order. Violations inside nested addresses carry a dotted field path,
// e.g. "debtor.postal_code".
type OrderError struct {
	Field  string `json:"field"`
	Reason Reason `json:"reason"`
}

// Error implements the error interface
func (e OrderError) Error() string {
	return e.Field + ": " + string(e.Reason)
}

// ValidationErrors aggregates every violation found in one validation
// pass. Validation never stops at the first problem.
type ValidationErrors []OrderError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether the list contains a violation for the given field.
func (v ValidationErrors) Has(field string) bool {
	for _, e := range v {
		if e.Field == field {
			return true
		}
	}
	return false
}
