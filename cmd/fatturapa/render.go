package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/fatturapa/converter"
	"github.com/theoremus-urban-solutions/fatturapa/fattura"
	"github.com/theoremus-urban-solutions/fatturapa/internal"
)

var renderFlags struct {
	treatment fattura.TaxTreatmentOptions
	out       string
	strict    bool
	validate  bool
}

var renderCmd = &cobra.Command{
	Use:   "render [document.json|document.yml|URL|-]",
	Short: "Render one fiscal document as FatturaPA XML",
	Long: `Render reads a fiscal document and writes its FatturaPA XML to stdout, to a
file, or into a directory as invoice-<documentId>.xml.

Examples:
  fatturapa render invoice.json
  fatturapa render --reverse-charge --out ./out invoice.yml
  cat invoice.json | fatturapa render --split-payment -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.BoolVar(&renderFlags.treatment.SplitPayment, "split-payment", false, "apply split-payment VAT collectability")
	f.BoolVar(&renderFlags.treatment.ReverseCharge, "reverse-charge", false, "apply reverse-charge (Natura N6.1, zero tax)")
	f.StringVarP(&renderFlags.out, "out", "o", "", "output file or existing directory (default: stdout)")
	f.BoolVar(&renderFlags.strict, "strict", false, "fail when the document triggers warnings")
	f.BoolVar(&renderFlags.validate, "validate", true, "validate the document before rendering")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := internal.WithComponent("render")

	src := "-"
	if len(args) == 1 {
		src = args[0]
	}

	doc, err := newLoader().load(src)
	if err != nil {
		return err
	}
	if renderFlags.validate {
		if err := fattura.Validate(doc); err != nil {
			return err
		}
	}

	warnings := converter.Check(doc, renderFlags.treatment)
	warnings.LogAll(log, converter.DocumentSubject(doc))
	if renderFlags.strict && warnings.Len() > 0 {
		return fmt.Errorf("document %s has %d warning(s): %v", doc.Number(), warnings.Len(), warnings.Types())
	}

	out := newConverter().Convert(doc, renderFlags.treatment)

	if renderFlags.out == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}

	path := renderFlags.out
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, doc.FileName())
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Info().
		Str("document", doc.Number()).
		Str("file", path).
		Bool("split_payment", renderFlags.treatment.SplitPayment).
		Bool("reverse_charge", renderFlags.treatment.ReverseCharge).
		Msg("document rendered")
	return nil
}
