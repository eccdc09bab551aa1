package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fakturo/qrslip/internal/application/slip"
	"github.com/fakturo/qrslip/internal/infrastructure/config"
)

func newEncodeCmd() *cobra.Command {
	var orderPath string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a payment order into the Swiss Payment Code payload",
		Long: "Reads a payment order as JSON (see the slip.EncodeRequest shape) from\n" +
			"a file or stdin, fills missing creditor fields from the configuration,\n" +
			"and prints the payload to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			var in io.Reader = cmd.InOrStdin()
			if orderPath != "" && orderPath != "-" {
				f, err := os.Open(orderPath)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var req slip.EncodeRequest
			dec := json.NewDecoder(in)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				return fmt.Errorf("decoding order: %w", err)
			}

			applyCreditorDefaults(&req, cfg)

			res, err := slip.NewService(log).Encode(req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Payload)
			return nil
		},
	}

	cmd.Flags().StringVarP(&orderPath, "order", "o", "-", "order JSON file (\"-\" for stdin)")

	return cmd
}

// applyCreditorDefaults fills creditor identity fields the order leaves
// empty from the configuration, so routine invoices only need to carry
// the debtor and the amount.
func applyCreditorDefaults(req *slip.EncodeRequest, cfg *config.Config) {
	if req.Account == "" {
		req.Account = cfg.Creditor.Account
	}
	if req.Creditor.Name == "" && cfg.Creditor.Name != "" {
		addr := cfg.Creditor.Address()
		req.Creditor = slip.AddressInput{
			Name:        addr.Name,
			Street:      addr.Street,
			HouseNumber: addr.HouseNumber,
			PostalCode:  addr.PostalCode,
			City:        addr.City,
			Country:     addr.Country,
		}
	}
}
