package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakturo/qrslip/internal/domain/paymentslip"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "qrslip", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "CH", cfg.Creditor.Country)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[log]
level = "debug"
format = "json"

[creditor]
name = "Robert Schneider AG"
account = "CH4431999123000889012"
street = "Rue du Lac"
house_number = "1268"
postal_code = "2501"
city = "Biel"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "Robert Schneider AG", cfg.Creditor.Name)
	assert.Equal(t, "CH4431999123000889012", cfg.Creditor.Account)
	assert.Equal(t, "CH", cfg.Creditor.Country, "country falls back to the default")
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("QRSLIP_LOG_LEVEL", "warn")
	t.Setenv("QRSLIP_CREDITOR_CITY", "Bern")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "Bern", cfg.Creditor.City)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("bad log format", func(t *testing.T) {
		t.Setenv("QRSLIP_LOG_FORMAT", "xml")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})

	t.Run("bad creditor account", func(t *testing.T) {
		t.Setenv("QRSLIP_CREDITOR_ACCOUNT", "DE89370400440532013000")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "creditor.account")
	})
}

func TestCreditorAddress(t *testing.T) {
	c := CreditorConfig{
		Name:        "Robert Schneider AG",
		Street:      "Rue du Lac",
		HouseNumber: "1268",
		PostalCode:  "2501",
		City:        "Biel",
		Country:     "CH",
	}
	addr := c.Address()
	assert.Equal(t, paymentslip.AddressTypeStructured, addr.Type)
	assert.Empty(t, addr.Validate())
}
