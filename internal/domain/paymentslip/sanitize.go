package paymentslip

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SanitizeMode selects how line feeds are treated during sanitization.
type SanitizeMode string

const (
	// SanitizeSingleLine folds the input into one line; line feeds count
	// as whitespace.
	SanitizeSingleLine SanitizeMode = "SINGLE_LINE"
	// SanitizeMultiLine preserves line feeds as line separators. Lines
	// that sanitize to nothing are dropped, so the result never carries
	// blank lines.
	SanitizeMultiLine SanitizeMode = "MULTI_LINE"
)

// Sanitize restricts text to the character set the Swiss Payment Code
// permits: printable ASCII (0x20-0x7E) and the Latin-1 supplement
// (0xA0-0xFF). C0 and C1 control characters and any wider Unicode are
// dropped. Runs of whitespace collapse into a single space and the result
// is trimmed.
//
// Input is NFC-normalized first so decomposed accents ("u" + combining
// diaeresis) survive as their precomposed Latin-1 form instead of being
// stripped.
//
// Sanitize is total and idempotent: it never fails, and sanitizing an
// already sanitized string returns it unchanged.
func Sanitize(text string, mode SanitizeMode) string {
	text = norm.NFC.String(text)

	if mode == SanitizeMultiLine {
		lines := strings.Split(text, "\n")
		out := make([]string, 0, len(lines))
		for _, line := range lines {
			if clean := sanitizeLine(line); clean != "" {
				out = append(out, clean)
			}
		}
		return strings.Join(out, "\n")
	}
	return sanitizeLine(text)
}

// sanitizeLine folds one line: disallowed runes become whitespace, then
// whitespace runs collapse and leading/trailing whitespace is trimmed.
func sanitizeLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	pendingSpace := false
	for _, r := range line {
		if !isAllowedRune(r) || unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// isAllowedRune reports whether r is inside the payload's legal character
// set. 0x7F (DEL) and the C1 range 0x80-0x9F are excluded along with C0.
func isAllowedRune(r rune) bool {
	return (r >= 0x20 && r <= 0x7E) || (r >= 0xA0 && r <= 0xFF)
}
