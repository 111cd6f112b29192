package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/fatturapa/converter"
	"github.com/theoremus-urban-solutions/fatturapa/fattura"
	"github.com/theoremus-urban-solutions/fatturapa/internal"
)

// Result is the outcome of one row.
type Result struct {
	Line     int
	File     string // written path, empty on failure
	Warnings []string
	Err      error
}

// Report summarizes a batch run.
type Report struct {
	Results []Result
	Written int
	Failed  int
	// Warnings counts warning types over all rendered rows, with document numbers as examples.
	Warnings *converter.WarningAggregator
}

// Runner renders rows into an output directory.
type Runner struct {
	Conv *converter.Converter
	// Treatment applies to rows without their own treatment columns.
	Treatment fattura.TaxTreatmentOptions
	// Validate rejects rows failing fattura.Validate instead of rendering them.
	Validate bool
	OutDir   string

	log zerolog.Logger
}

// NewRunner creates a runner writing into outDir.
func NewRunner(conv *converter.Converter, outDir string) *Runner {
	return &Runner{
		Conv:   conv,
		OutDir: outDir,
		log:    internal.WithComponent("batch"),
	}
}

// Run renders every row. A failing row is recorded and the run continues; only
// context cancellation or an unusable output directory stop it early.
func (r *Runner) Run(ctx context.Context, rows []Row) (Report, error) {
	report := Report{Warnings: converter.NewWarningAggregator()}
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return report, fmt.Errorf("create output dir: %w", err)
	}

	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res := r.renderRow(row, seen, report.Warnings)
		if res.Err != nil {
			report.Failed++
			r.log.Warn().Int("line", res.Line).Err(res.Err).Msg("row skipped")
		} else {
			report.Written++
		}
		report.Results = append(report.Results, res)
	}

	r.log.Info().
		Int("written", report.Written).
		Int("failed", report.Failed).
		Str("out_dir", r.OutDir).
		Msg("batch completed")
	report.Warnings.LogAll(r.log, "Batch")
	return report, nil
}

func (r *Runner) renderRow(row Row, seen map[string]bool, summary *converter.WarningAggregator) Result {
	res := Result{Line: row.Line}
	if row.Err != nil {
		res.Err = row.Err
		return res
	}
	if r.Validate {
		if err := fattura.Validate(row.Doc); err != nil {
			res.Err = err
			return res
		}
	}

	treatment := r.Treatment
	if row.Treatment != nil {
		treatment = *row.Treatment
	}

	warnings := converter.Check(row.Doc, treatment)
	res.Warnings = warnings.Messages(converter.DocumentSubject(row.Doc))

	name := uniqueName(row.Doc.FileName(), row.Line, seen)
	seen[name] = true

	path := filepath.Join(r.OutDir, name)
	if err := os.WriteFile(path, []byte(r.Conv.Convert(row.Doc, treatment)), 0o644); err != nil {
		res.Err = fmt.Errorf("write %s: %w", path, err)
		return res
	}
	res.File = path
	for _, t := range warnings.Types() {
		summary.Add(t, row.Doc.Number())
	}
	return res
}

// uniqueName suffixes name with the sheet line, then a counter, until it is unused.
func uniqueName(name string, line int, seen map[string]bool) string {
	base := strings.TrimSuffix(name, ".xml")
	for i := 0; seen[name]; i++ {
		if i == 0 {
			name = fmt.Sprintf("%s-%d.xml", base, line)
		} else {
			name = fmt.Sprintf("%s-%d-%d.xml", base, line, i)
		}
	}
	return name
}
