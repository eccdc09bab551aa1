package paymentslip

import "strings"

// QRReferenceLength is the fixed length of a QR reference: 26 payload
// digits followed by one check digit.
const QRReferenceLength = 27

// mod10Table is the transition table of the recursive modulo-10 checksum
// used for QR (formerly ISR) reference numbers. Rows are indexed by the
// running carry, columns by the next digit.
var mod10Table = [10][10]int{
	{0, 9, 4, 6, 8, 2, 7, 1, 3, 5},
	{9, 4, 6, 8, 2, 7, 1, 3, 5, 0},
	{4, 6, 8, 2, 7, 1, 3, 5, 0, 9},
	{6, 8, 2, 7, 1, 3, 5, 0, 9, 4},
	{8, 2, 7, 1, 3, 5, 0, 9, 4, 6},
	{2, 7, 1, 3, 5, 0, 9, 4, 6, 8},
	{7, 1, 3, 5, 0, 9, 4, 6, 8, 2},
	{1, 3, 5, 0, 9, 4, 6, 8, 2, 7},
	{3, 5, 0, 9, 4, 6, 8, 2, 7, 1},
	{5, 0, 9, 4, 6, 8, 2, 7, 1, 3},
}

// ReferenceNumber is a self-checking 27-digit QR reference. It is
// immutable once computed.
type ReferenceNumber struct {
	digits string
}

// ReferenceFromSeed derives a QR reference from an arbitrary seed, e.g.
// an invoice number. All ASCII digits are extracted from the seed, left-
// padded with zeros to 26 digits (or truncated from the left when
// longer), and the modulo-10 check digit is appended.
//
// The derivation is deterministic and total. A seed with no digits yields
// the all-zero base and its check digit; callers should treat that as a
// degenerate case worth flagging, not as an error.
func ReferenceFromSeed(seed string) ReferenceNumber {
	var b strings.Builder
	for i := 0; i < len(seed); i++ {
		if isDigit(seed[i]) {
			b.WriteByte(seed[i])
		}
	}
	digits := b.String()
	if len(digits) > QRReferenceLength-1 {
		digits = digits[len(digits)-(QRReferenceLength-1):]
	} else {
		digits = strings.Repeat("0", QRReferenceLength-1-len(digits)) + digits
	}
	return ReferenceNumber{digits: digits + string(byte('0'+checkDigit(digits)))}
}

// VerifyReference reports whether candidate is a well-formed QR
// reference: exactly 27 ASCII digits whose final digit matches the
// modulo-10 check digit of the preceding 26.
func VerifyReference(candidate string) bool {
	if len(candidate) != QRReferenceLength {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		if !isDigit(candidate[i]) {
			return false
		}
	}
	return checkDigit(candidate[:QRReferenceLength-1]) == int(candidate[QRReferenceLength-1]-'0')
}

// checkDigit runs the recursive modulo-10 algorithm over digits and
// returns the resulting check digit. digits must contain ASCII digits
// only.
func checkDigit(digits string) int {
	carry := 0
	for i := 0; i < len(digits); i++ {
		carry = mod10Table[carry][digits[i]-'0']
	}
	return (10 - carry) % 10
}

// Digits returns the full 27-digit reference.
func (r ReferenceNumber) Digits() string {
	return r.digits
}

// CheckDigit returns the trailing check digit.
func (r ReferenceNumber) CheckDigit() int {
	return int(r.digits[len(r.digits)-1] - '0')
}

// IsDegenerate reports whether the reference was derived from a seed
// containing no digits (the all-zero base).
func (r ReferenceNumber) IsDegenerate() bool {
	return r.digits[:QRReferenceLength-1] == strings.Repeat("0", QRReferenceLength-1)
}

// String returns the raw 27-digit reference.
func (r ReferenceNumber) String() string {
	return r.digits
}

// Formatted renders the reference in the display grouping mandated for
// the printed panels: 2 digits, then five groups of 5.
func (r ReferenceNumber) Formatted() string {
	var b strings.Builder
	b.Grow(QRReferenceLength + 5)
	b.WriteString(r.digits[:2])
	for i := 2; i < len(r.digits); i += 5 {
		b.WriteByte(' ')
		b.WriteString(r.digits[i : i+5])
	}
	return b.String()
}

// NormalizeReference strips grouping spaces and upper-cases a payment
// reference for validation and payload emission, the same way
// NormalizeIBAN treats accounts.
func NormalizeReference(ref string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(ref), " ", ""))
}

// IsValidCreditorReference reports whether ref is a valid ISO 11649
// creditor reference ("RF" + two check digits + up to 21 alphanumerics),
// the shape required for SCOR references. The check digits are verified
// with the same ISO 7064 mod-97-10 scheme IBANs use.
func IsValidCreditorReference(ref string) bool {
	ref = NormalizeReference(ref)
	if len(ref) < 5 || len(ref) > 25 {
		return false
	}
	if !strings.HasPrefix(ref, "RF") || !isDigit(ref[2]) || !isDigit(ref[3]) {
		return false
	}
	return mod97(ref[4:]+ref[:4]) == 1
}
