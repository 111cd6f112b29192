package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/fatturapa/converter"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the program and FatturaPA format versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fatturapa %s (format %s)\n", version, converter.FormatVersion)
	},
}
