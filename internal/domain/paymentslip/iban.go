package paymentslip

import "strings"

// QR-IBANs are ordinary Swiss or Liechtenstein IBANs whose institution
// identification (positions 5-9) falls in a range reserved for QR
// billing. Such accounts require a QR reference and vice versa.
const (
	qrInstitutionIDMin = 30000
	qrInstitutionIDMax = 31999
)

// NormalizeIBAN removes spaces and upper-cases an IBAN for validation and
// payload emission.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(iban), " ", ""))
}

// IsValidIBAN reports whether iban has the general IBAN shape (two-letter
// country code, two check digits, up to 30 alphanumerics) and passes the
// ISO 7064 mod-97-10 checksum.
func IsValidIBAN(iban string) bool {
	iban = NormalizeIBAN(iban)
	if len(iban) < 5 || len(iban) > 34 {
		return false
	}
	if !isUpperAlpha(iban[0]) || !isUpperAlpha(iban[1]) || !isDigit(iban[2]) || !isDigit(iban[3]) {
		return false
	}
	for i := 4; i < len(iban); i++ {
		if !isUpperAlpha(iban[i]) && !isDigit(iban[i]) {
			return false
		}
	}
	return mod97(iban[4:]+iban[:4]) == 1
}

// IsSwissIBAN reports whether iban is a valid IBAN of Switzerland or
// Liechtenstein, the only countries the QR-bill standard admits for the
// creditor account.
func IsSwissIBAN(iban string) bool {
	iban = NormalizeIBAN(iban)
	if len(iban) != 21 {
		return false
	}
	if iban[:2] != "CH" && iban[:2] != "LI" {
		return false
	}
	// The national CH/LI format fixes the institution id (positions 5-9)
	// as five digits; the general IBAN shape alone would admit letters.
	for i := 4; i < 9; i++ {
		if !isDigit(iban[i]) {
			return false
		}
	}
	return IsValidIBAN(iban)
}

// IsQRIBAN reports whether iban is a valid Swiss/Liechtenstein IBAN whose
// institution id lies in the reserved QR billing range.
func IsQRIBAN(iban string) bool {
	iban = NormalizeIBAN(iban)
	if !IsSwissIBAN(iban) {
		return false
	}
	iid := 0
	for i := 4; i < 9; i++ {
		iid = iid*10 + int(iban[i]-'0')
	}
	return iid >= qrInstitutionIDMin && iid <= qrInstitutionIDMax
}

// FormatIBAN renders an IBAN in the conventional display grouping of four
// characters separated by spaces.
func FormatIBAN(iban string) string {
	iban = NormalizeIBAN(iban)
	var b strings.Builder
	b.Grow(len(iban) + len(iban)/4)
	for i, c := range []byte(iban) {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// mod97 computes the ISO 7064 mod-97-10 remainder over s, with letters
// substituted by their two-digit values (A=10 .. Z=35). Returns -1 for
// characters outside [0-9A-Z].
func mod97(s string) int {
	rem := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
			rem = (rem*10 + int(c-'0')) % 97
		case isUpperAlpha(c):
			v := int(c-'A') + 10
			rem = (rem*100 + v) % 97
		default:
			return -1
		}
	}
	return rem
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isUpperAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
