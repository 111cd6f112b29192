package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/fatturapa/converter"
	"github.com/theoremus-urban-solutions/fatturapa/fattura"
)

func row(line int, id string) Row {
	return Row{
		Line: line,
		Doc: fattura.FiscalDocument{
			Recipient:      fattura.Recipient{Name: "Comune di Roma"},
			RecipientTaxID: "IT12345678901",
			IssuerName:     "Edil S.r.l.",
			TotalNet:       fattura.MustAmount("1000"),
			TotalTax:       fattura.MustAmount("220"),
			TotalGross:     fattura.MustAmount("1220"),
			IssueDate:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			DocumentID:     id,
		},
	}
}

func newTestRunner(t *testing.T) (*Runner, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "out")
	return NewRunner(converter.NewConverter(converter.DefaultOptions()), dir), dir
}

func TestRunner_WritesOneFilePerRow(t *testing.T) {
	runner, dir := newTestRunner(t)
	runner.Treatment = fattura.TaxTreatmentOptions{SplitPayment: true}

	reverse := row(3, "B")
	reverse.Treatment = &fattura.TaxTreatmentOptions{ReverseCharge: true}

	report, err := runner.Run(context.Background(), []Row{row(2, "A"), reverse})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Written)
	assert.Equal(t, 0, report.Failed)

	a, err := os.ReadFile(filepath.Join(dir, "invoice-A.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(a), "<EsigibilitaIVA>S</EsigibilitaIVA>")
	assert.NotContains(t, string(a), "<Natura>")

	b, err := os.ReadFile(filepath.Join(dir, "invoice-B.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "<EsigibilitaIVA>I</EsigibilitaIVA>")
	assert.Contains(t, string(b), "<Natura>N6.1</Natura>")

	assert.Equal(t, filepath.Join(dir, "invoice-B.xml"), report.Results[1].File)
	assert.Contains(t, report.Results[0].Warnings[0], "no issuer email")
}

func TestRunner_DuplicateNames(t *testing.T) {
	runner, dir := newTestRunner(t)

	report, err := runner.Run(context.Background(), []Row{row(2, ""), row(3, "")})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Written)

	assert.FileExists(t, filepath.Join(dir, "invoice-N_A.xml"))
	assert.FileExists(t, filepath.Join(dir, "invoice-N_A-3.xml"))
}

// TestRunner_DuplicateNamesNeverOverwrite covers suffixed names that collide
// with a real document id in either order
func TestRunner_DuplicateNamesNeverOverwrite(t *testing.T) {
	tests := []struct {
		name  string
		rows  []Row
		files []string
	}{
		{
			name:  "real id first",
			rows:  []Row{row(2, "X-3"), row(3, "X"), row(4, "X")},
			files: []string{"invoice-X-3.xml", "invoice-X.xml", "invoice-X-4.xml"},
		},
		{
			name:  "suffix first",
			rows:  []Row{row(2, "X"), row(3, "X"), row(4, "X-3")},
			files: []string{"invoice-X.xml", "invoice-X-3.xml", "invoice-X-3-4.xml"},
		},
		{
			name:  "suffix taken by line",
			rows:  []Row{row(2, "X-3"), row(3, "X"), row(3, "X")},
			files: []string{"invoice-X-3.xml", "invoice-X.xml", "invoice-X-3-1.xml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, dir := newTestRunner(t)

			report, err := runner.Run(context.Background(), tt.rows)
			require.NoError(t, err)
			require.Equal(t, len(tt.rows), report.Written)

			for i, res := range report.Results {
				assert.Equal(t, filepath.Join(dir, tt.files[i]), res.File)
			}
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, len(tt.rows))
		})
	}
}

func TestRunner_WarningSummary(t *testing.T) {
	runner, _ := newTestRunner(t)

	mismatch := row(4, "C")
	mismatch.Doc.TotalGross = fattura.MustAmount("1")
	failed := Row{Line: 5, Err: errors.New("bad row")}

	report, err := runner.Run(context.Background(), []Row{row(2, "A"), row(3, "B"), mismatch, failed})
	require.NoError(t, err)

	assert.Equal(t, []string{converter.WarningGrossMismatch, converter.WarningMissingIssuerEmail}, report.Warnings.Types())
	assert.Equal(t, 3, report.Warnings.Count(converter.WarningMissingIssuerEmail))
	assert.Equal(t, 1, report.Warnings.Count(converter.WarningGrossMismatch))

	msgs := report.Warnings.Messages("Batch")
	assert.Contains(t, msgs[1], "Batch has no issuer email (3 occurrences)")
	assert.Contains(t, msgs[1], "Examples: A, B, C")
}

func TestRunner_FailedRowsContinue(t *testing.T) {
	runner, dir := newTestRunner(t)
	runner.Validate = true

	invalid := row(3, "B")
	invalid.Doc.RecipientTaxID = "123"
	broken := Row{Line: 4, Err: errors.New("totalnet: missing amount")}

	report, err := runner.Run(context.Background(), []Row{row(2, "A"), invalid, broken, row(5, "C")})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Written)
	assert.Equal(t, 2, report.Failed)

	assert.True(t, errors.Is(report.Results[1].Err, fattura.ErrInvalidDocument))
	assert.Empty(t, report.Results[1].File)
	assert.EqualError(t, report.Results[2].Err, "totalnet: missing amount")
	assert.NoFileExists(t, filepath.Join(dir, "invoice-B.xml"))
	assert.FileExists(t, filepath.Join(dir, "invoice-C.xml"))
}

func TestRunner_ContextCanceled(t *testing.T) {
	runner, _ := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, []Row{row(2, "A")})
	assert.ErrorIs(t, err, context.Canceled)
}
