package main

import (
	"os"

	"github.com/fakturo/qrslip/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
