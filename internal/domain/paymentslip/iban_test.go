package paymentslip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIBAN(t *testing.T) {
	assert.Equal(t, "CH9300762011623852957", NormalizeIBAN(" ch93 0076 2011 6238 5295 7 "))
}

func TestIsValidIBAN(t *testing.T) {
	t.Run("accepts valid IBANs", func(t *testing.T) {
		valid := []string{
			"CH9300762011623852957",
			"CH44 3199 9123 0008 8901 2",
			"LI21 0881 0000 2324 013A A",
			"DE89 3704 0044 0532 0130 00",
		}
		for _, iban := range valid {
			assert.True(t, IsValidIBAN(iban), iban)
		}
	})

	t.Run("rejects checksum and shape errors", func(t *testing.T) {
		invalid := []string{
			"",
			"CH93",
			"CH9300762011623852958", // last digit flipped
			"XX0076201162385295",
			"CH93 0076 2011 6238 5295 !",
			"9300762011623852957CH",
		}
		for _, iban := range invalid {
			assert.False(t, IsValidIBAN(iban), iban)
		}
	})
}

func TestIsSwissIBAN(t *testing.T) {
	assert.True(t, IsSwissIBAN("CH9300762011623852957"))
	assert.True(t, IsSwissIBAN("LI21 0881 0000 2324 013A A"))
	assert.False(t, IsSwissIBAN("DE89 3704 0044 0532 0130 00"), "valid but not CH/LI")
	assert.False(t, IsSwissIBAN("CH930076201162385295"), "wrong length")

	t.Run("institution id must be numeric", func(t *testing.T) {
		// Passes the mod-97 checksum but carries a letter where the
		// national format mandates five digits.
		assert.True(t, IsValidIBAN("CH77A0000000000000000"))
		assert.False(t, IsSwissIBAN("CH77A0000000000000000"))
	})
}

func TestIsQRIBAN(t *testing.T) {
	t.Run("institution id inside the reserved range", func(t *testing.T) {
		assert.True(t, IsQRIBAN("CH44 3199 9123 0008 8901 2"))
	})

	t.Run("ordinary Swiss IBAN is not a QR-IBAN", func(t *testing.T) {
		assert.False(t, IsQRIBAN("CH9300762011623852957"))
	})

	t.Run("invalid IBAN is never a QR-IBAN", func(t *testing.T) {
		assert.False(t, IsQRIBAN("CH4431999123000889013"))
	})

	t.Run("letter in the institution id is rejected", func(t *testing.T) {
		assert.False(t, IsQRIBAN("CH77A0000000000000000"))
	})
}

func TestFormatIBAN(t *testing.T) {
	assert.Equal(t, "CH44 3199 9123 0008 8901 2", FormatIBAN("CH4431999123000889012"))
	assert.Equal(t, "DE89 3704 0044 0532 0130 00", FormatIBAN("DE89370400440532013000"))
}
