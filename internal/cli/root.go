// Package cli wires the qrslip command tree. The commands are thin
// shells around the slip application service; all payment semantics live
// in the domain packages.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fakturo/qrslip/internal/infrastructure/config"
	"github.com/fakturo/qrslip/internal/infrastructure/logger"
)

var (
	cfgPath  string
	logLevel string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qrslip",
		Short:         "Swiss payment-slip codec",
		Long:          "qrslip encodes payment orders into the Swiss Payment Code payload,\nderives self-checking reference numbers and reports the print geometry\nof the payment slip.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.toml")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newReferenceCmd())
	cmd.AddCommand(newGeometryCmd())

	return cmd
}

// Execute runs the CLI and returns the first error encountered.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		return err
	}
	return nil
}

// setup loads the configuration and builds the logger shared by all
// commands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	logCfg := &logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	if logLevel != "" {
		logCfg.Level = logLevel
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
