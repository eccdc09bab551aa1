package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fakturo/qrslip/internal/domain/paymentslip"
)

func newReferenceCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "reference <seed>",
		Short: "Derive or verify a 27-digit QR reference",
		Long: "Derives the self-checking QR reference for a seed such as an invoice\n" +
			"number, or with --verify checks a candidate reference's check digit.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verify {
				if !paymentslip.VerifyReference(args[0]) {
					return errors.New("reference is not a valid 27-digit QR reference")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}

			_, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ref := paymentslip.ReferenceFromSeed(args[0])
			if ref.IsDegenerate() {
				log.Warn("seed contains no digits, reference is the all-zero base",
					zap.String("seed", args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ref.Digits())
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify a candidate reference instead of deriving one")

	return cmd
}
