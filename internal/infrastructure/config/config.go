package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/fakturo/qrslip/internal/domain/paymentslip"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Log      LogConfig
	Creditor CreditorConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// CreditorConfig holds the biller's own identity: the account and address
// printed on every payment slip. Commands can override individual fields,
// the config supplies the defaults.
type CreditorConfig struct {
	Name        string
	Account     string // IBAN or QR-IBAN
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
	Country     string
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with QRSLIP_ prefix (e.g. QRSLIP_CREDITOR_ACCOUNT)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration like Load but from an explicit file path
// when one is given.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.qrslip")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("QRSLIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Creditor: CreditorConfig{
			Name:        v.GetString("creditor.name"),
			Account:     v.GetString("creditor.account"),
			Street:      v.GetString("creditor.street"),
			HouseNumber: v.GetString("creditor.house_number"),
			PostalCode:  v.GetString("creditor.postal_code"),
			City:        v.GetString("creditor.city"),
			Country:     v.GetString("creditor.country"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "qrslip"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
	if cfg.Creditor.Country == "" {
		cfg.Creditor.Country = "CH"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Creditor.Account != "" && !paymentslip.IsSwissIBAN(c.Creditor.Account) {
		return fmt.Errorf("creditor.account is not a valid Swiss or Liechtenstein IBAN")
	}
	if c.Creditor.Country != "" && !paymentslip.IsCountryCode(c.Creditor.Country) {
		return fmt.Errorf("creditor.country is not a known ISO-3166 alpha-2 code")
	}
	return nil
}

// Address assembles the creditor's structured address from the
// configured fields.
func (c CreditorConfig) Address() paymentslip.Address {
	return paymentslip.Address{
		Type:        paymentslip.AddressTypeStructured,
		Name:        c.Name,
		Street:      c.Street,
		HouseNumber: c.HouseNumber,
		PostalCode:  c.PostalCode,
		City:        c.City,
		Country:     c.Country,
	}
}
