package slip

import (
	"github.com/fakturo/qrslip/internal/domain/paymentslip"
	"github.com/fakturo/qrslip/internal/domain/printing"
)

// AddressInput is the wire shape of a postal address as the invoicing
// layer supplies it. Either the structured fields or the combined lines
// are set, mirroring the two address shapes of the payment standard.
type AddressInput struct {
	Name string `json:"name" validate:"required,max=70"`

	Street      string `json:"street,omitempty" validate:"max=70"`
	HouseNumber string `json:"house_number,omitempty" validate:"max=16"`
	PostalCode  string `json:"postal_code,omitempty" validate:"max=16"`
	City        string `json:"city,omitempty" validate:"max=35"`

	AddressLine1 string `json:"address_line1,omitempty" validate:"max=70"`
	AddressLine2 string `json:"address_line2,omitempty" validate:"max=70"`

	Country string `json:"country" validate:"required,len=2"`
}

// toDomain converts the input into a domain address, inferring the shape
// from which fields are populated.
func (in AddressInput) toDomain() paymentslip.Address {
	addrType := paymentslip.AddressTypeStructured
	if in.AddressLine1 != "" || in.AddressLine2 != "" {
		addrType = paymentslip.AddressTypeCombined
	}
	return paymentslip.Address{
		Type:         addrType,
		Name:         in.Name,
		Street:       in.Street,
		HouseNumber:  in.HouseNumber,
		PostalCode:   in.PostalCode,
		City:         in.City,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		Country:      in.Country,
	}
}

// EncodeRequest carries everything the invoicing layer knows about one
// document: who bills, who pays, and the invoice identity the reference
// is derived from.
type EncodeRequest struct {
	// Account is the creditor's IBAN or QR-IBAN.
	Account  string       `json:"account" validate:"required"`
	Creditor AddressInput `json:"creditor" validate:"required"`

	UltimateCreditor *AddressInput `json:"ultimate_creditor,omitempty"`
	Debtor           *AddressInput `json:"debtor,omitempty"`

	// InvoiceNumber seeds the QR reference when one has to be derived.
	InvoiceNumber string `json:"invoice_number" validate:"required,max=50"`

	// Amount is a decimal string; empty means the payer fills it in.
	Amount   string `json:"amount,omitempty"`
	Currency string `json:"currency" validate:"required,oneof=CHF EUR"`

	// ReferenceType is optional; when empty it is inferred from the
	// account type (QRR for a QR-IBAN, NON otherwise).
	ReferenceType string `json:"reference_type,omitempty" validate:"omitempty,oneof=QRR SCOR NON"`
	// Reference is only consulted for SCOR; QR references are always
	// derived from the invoice number.
	Reference string `json:"reference,omitempty"`

	Message         string `json:"message,omitempty" validate:"max=140"`
	BillInformation string `json:"bill_information,omitempty" validate:"max=140"`
}

// EncodeResult is the complete output for one payment slip: the payload
// for the code generator and the geometry for the page renderer.
type EncodeResult struct {
	// DocumentID identifies this encoding run in logs and downstream
	// render jobs.
	DocumentID string `json:"document_id"`

	// Payload is the Swiss Payment Code text block, handed verbatim to
	// the code-symbol generator.
	Payload string `json:"payload"`

	// Reference is the reference number carried in the payload, in
	// display grouping; empty for NON.
	Reference string `json:"reference,omitempty"`

	// Account is the creditor account in display grouping.
	Account string `json:"account"`

	Geometry printing.SlipGeometry `json:"geometry"`
}
