package paymentslip

import "github.com/shopspring/decimal"

// Currency is the payment currency. The QR-bill standard admits Swiss
// francs and euros only.
type Currency string

const (
	CurrencyCHF Currency = "CHF"
	CurrencyEUR Currency = "EUR"
)

// IsValid checks if the Currency is a valid value
func (c Currency) IsValid() bool {
	return c == CurrencyCHF || c == CurrencyEUR
}

// String returns the string representation of Currency
func (c Currency) String() string {
	return string(c)
}

// ReferenceType declares which kind of payment reference the order
// carries.
type ReferenceType string

const (
	// ReferenceTypeQRR is the 27-digit self-checking QR reference.
	// Requires a QR-IBAN creditor account.
	ReferenceTypeQRR ReferenceType = "QRR"
	// ReferenceTypeSCOR is an ISO 11649 creditor reference ("RF...").
	ReferenceTypeSCOR ReferenceType = "SCOR"
	// ReferenceTypeNON declares that no reference is used.
	ReferenceTypeNON ReferenceType = "NON"
)

// IsValid checks if the ReferenceType is a valid value
func (t ReferenceType) IsValid() bool {
	return t == ReferenceTypeQRR || t == ReferenceTypeSCOR || t == ReferenceTypeNON
}

// String returns the string representation of ReferenceType
func (t ReferenceType) String() string {
	return string(t)
}

// MaxAmount is the largest amount the payload format can carry.
var MaxAmount = decimal.RequireFromString("999999999.99")

// Maximum lengths mandated for the free-text payload fields, counted
// after sanitization.
const (
	MaxUnstructuredMessageLength = 140
	MaxBillInformationLength     = 140
	maxAlternativeProcedures     = 2
)

// PaymentOrder is everything needed to produce one payment slip. It is
// assembled by the invoicing layer per document, validated, encoded and
// discarded; this package holds no state across calls.
type PaymentOrder struct {
	// Account is the creditor's IBAN or QR-IBAN.
	Account string `json:"account"`

	Creditor         Address  `json:"creditor"`
	UltimateCreditor *Address `json:"ultimate_creditor,omitempty"`
	Debtor           *Address `json:"debtor,omitempty"`

	// Amount is nil when the payer fills in the amount by hand.
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Currency Currency         `json:"currency"`

	ReferenceType ReferenceType `json:"reference_type"`
	// Reference is the QR or creditor reference, empty for NON.
	Reference string `json:"reference,omitempty"`

	UnstructuredMessage string `json:"unstructured_message,omitempty"`
	BillInformation     string `json:"bill_information,omitempty"`

	// AlternativeProcedures carries up to two alternative payment scheme
	// parameter lines.
	AlternativeProcedures []string `json:"alternative_procedures,omitempty"`
}
