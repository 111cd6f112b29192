package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/fatturapa/batch"
)

var batchFlags struct {
	sheet         string
	outDir        string
	splitPayment  bool
	reverseCharge bool
	validate      bool
}

var batchCmd = &cobra.Command{
	Use:   "batch <documents.xlsx>",
	Short: "Render every row of a spreadsheet as a FatturaPA XML file",
	Long: `Batch reads an .xlsx workbook whose first row names document fields and
writes one invoice-<documentId>.xml per row into the output directory. Rows that
fail to parse or validate are reported and skipped.

Optional splitPayment / reverseCharge columns override the command-line treatment
for their row.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchFlags.sheet, "sheet", "", "sheet name (default: first sheet)")
	f.StringVarP(&batchFlags.outDir, "out", "o", "out", "output directory")
	f.BoolVar(&batchFlags.splitPayment, "split-payment", false, "default split-payment treatment")
	f.BoolVar(&batchFlags.reverseCharge, "reverse-charge", false, "default reverse-charge treatment")
	f.BoolVar(&batchFlags.validate, "validate", true, "skip rows failing document validation")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	rows, err := batch.ReadSheet(file, batchFlags.sheet)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(newConverter(), batchFlags.outDir)
	runner.Treatment.SplitPayment = batchFlags.splitPayment
	runner.Treatment.ReverseCharge = batchFlags.reverseCharge
	runner.Validate = batchFlags.validate

	report, err := runner.Run(cmd.Context(), rows)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, res := range report.Results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(w, "row %d: error: %v\n", res.Line, res.Err)
		default:
			fmt.Fprintf(w, "row %d: %s\n", res.Line, res.File)
			for _, msg := range res.Warnings {
				fmt.Fprintf(w, "row %d: warning: %s\n", res.Line, msg)
			}
		}
	}
	for _, t := range report.Warnings.Types() {
		fmt.Fprintf(w, "warning %s: %d document(s)\n", t, report.Warnings.Count(t))
	}
	fmt.Fprintf(w, "%d written, %d failed\n", report.Written, report.Failed)

	if report.Failed > 0 {
		return fmt.Errorf("%d row(s) failed", report.Failed)
	}
	return nil
}
