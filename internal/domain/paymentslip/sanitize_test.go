package paymentslip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSingleLine(t *testing.T) {
	t.Run("keeps printable ASCII", func(t *testing.T) {
		assert.Equal(t, "Hello, World!", Sanitize("Hello, World!", SanitizeSingleLine))
	})

	t.Run("keeps Latin-1 supplement", func(t *testing.T) {
		assert.Equal(t, "Zürich Müller Ça Æøé", Sanitize("Zürich Müller Ça Æøé", SanitizeSingleLine))
	})

	t.Run("drops control characters", func(t *testing.T) {
		assert.Equal(t, "a b", Sanitize("a\x00\x1f\x7fb", SanitizeSingleLine))
	})

	t.Run("drops wide unicode", func(t *testing.T) {
		assert.Equal(t, "invoice", Sanitize("invoice\U0001F4B0", SanitizeSingleLine))
		assert.Equal(t, "Bestellung", Sanitize("Bestellung 中文", SanitizeSingleLine))
	})

	t.Run("folds line feeds into spaces", func(t *testing.T) {
		assert.Equal(t, "first second", Sanitize("first\nsecond", SanitizeSingleLine))
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		assert.Equal(t, "a b c", Sanitize("  a \t b   c  ", SanitizeSingleLine))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", Sanitize("", SanitizeSingleLine))
		assert.Equal(t, "", Sanitize(" \t\n\x01 ", SanitizeSingleLine))
	})
}

func TestSanitizeMultiLine(t *testing.T) {
	t.Run("preserves line feeds as separators", func(t *testing.T) {
		assert.Equal(t, "Rue du Lac 1268\n2501 Biel", Sanitize("Rue du Lac 1268\n2501 Biel", SanitizeMultiLine))
	})

	t.Run("cleans each line independently", func(t *testing.T) {
		assert.Equal(t, "a b\nc", Sanitize(" a\x02  b \n\tc ", SanitizeMultiLine))
	})

	t.Run("drops lines that sanitize to nothing", func(t *testing.T) {
		assert.Equal(t, "a\nb", Sanitize("a\n \x03 \nb", SanitizeMultiLine))
		assert.Equal(t, "a\nb", Sanitize("a\n\nb", SanitizeMultiLine))
	})
}

func TestSanitizeNormalizesDecomposedAccents(t *testing.T) {
	// "u" + combining diaeresis must survive as the precomposed Latin-1 "ü"
	// rather than losing the accent to the charset filter.
	assert.Equal(t, "Zürich", Sanitize("Zu\u0308rich", SanitizeSingleLine))
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"  padded\ttext  ",
		"Grüezi\nmitenand",
		"control\x00chars\x9f",
		"emoji \U0001F600 mixed ü",
		"Zu\u0308rich",
	}
	for _, mode := range []SanitizeMode{SanitizeSingleLine, SanitizeMultiLine} {
		for _, in := range inputs {
			once := Sanitize(in, mode)
			assert.Equal(t, once, Sanitize(once, mode), "mode %s input %q", mode, in)
		}
	}
}
