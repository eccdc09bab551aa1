package paymentslip

import "strings"

// Fixed markers of the Swiss Payment Code payload. The scanner-facing
// format pins these to exact values; third-party banking software
// rejects anything else.
const (
	payloadType       = "SPC"
	payloadVersion    = "0200"
	payloadCoding     = "1" // Latin character set
	payloadTrailer    = "EPD"
	lineSeparator     = "\n"
	addressBlockLines = 7 // address type + name + 2 lines + postal code + city + country
)

// Encode serializes the order into the Swiss Payment Code text block.
// The order is validated first; on any violation the aggregated error
// list is returned and no output is produced. Encoding the same valid
// order always yields byte-identical text.
func (o PaymentOrder) Encode() (string, error) {
	if errs := o.Validate(); len(errs) > 0 {
		return "", errs
	}

	lines := make([]string, 0, 34)
	lines = append(lines,
		payloadType,
		payloadVersion,
		payloadCoding,
		NormalizeIBAN(o.Account),
	)
	lines = appendAddress(lines, &o.Creditor)
	lines = appendAddress(lines, o.UltimateCreditor)

	amount := ""
	if o.Amount != nil {
		// Two fractional digits with a period separator, locale-independent.
		amount = o.Amount.StringFixed(2)
	}
	lines = append(lines, amount, string(o.Currency))

	lines = appendAddress(lines, o.Debtor)

	lines = append(lines,
		string(o.ReferenceType),
		NormalizeReference(o.Reference),
		Sanitize(o.UnstructuredMessage, SanitizeSingleLine),
		payloadTrailer,
		Sanitize(o.BillInformation, SanitizeSingleLine),
	)

	for _, proc := range o.AlternativeProcedures {
		if p := Sanitize(proc, SanitizeSingleLine); p != "" {
			lines = append(lines, p)
		}
	}

	return strings.Join(lines, lineSeparator), nil
}

// appendAddress emits the seven payload lines of one address block. A nil
// address yields seven empty lines; the standard requires the slots to be
// present either way.
func appendAddress(lines []string, a *Address) []string {
	if a == nil {
		for i := 0; i < addressBlockLines; i++ {
			lines = append(lines, "")
		}
		return lines
	}

	var line1, line2, postalCode, city string
	switch a.Type {
	case AddressTypeCombined:
		line1 = a.AddressLine1
		line2 = a.AddressLine2
	default:
		line1 = a.Street
		line2 = a.HouseNumber
		postalCode = a.PostalCode
		city = a.City
	}

	return append(lines,
		string(a.Type),
		Sanitize(a.Name, SanitizeSingleLine),
		Sanitize(line1, SanitizeSingleLine),
		Sanitize(line2, SanitizeSingleLine),
		Sanitize(postalCode, SanitizeSingleLine),
		Sanitize(city, SanitizeSingleLine),
		a.Country,
	)
}
