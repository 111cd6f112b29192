package converter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/fatturapa/fattura"
)

// Warning type constants
const (
	WarningGrossMismatch        = "gross_mismatch"
	WarningShortTaxID           = "short_tax_id"
	WarningMissingRecipientName = "missing_recipient_name"
	WarningMissingIssuerEmail   = "missing_issuer_email"
	WarningIncoherentTreatment  = "incoherent_treatment"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects non-fatal findings about documents. Warnings never
// change the rendered output.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example value
func (w *WarningAggregator) Add(warningType, example string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, example)
	}
}

// Len returns the number of distinct warning types recorded.
func (w *WarningAggregator) Len() int {
	return len(w.warnings)
}

// Count returns the occurrences of warningType.
func (w *WarningAggregator) Count(warningType string) int {
	if info, ok := w.warnings[warningType]; ok {
		return info.count
	}
	return 0
}

// Types returns the recorded warning types in sorted order.
func (w *WarningAggregator) Types() []string {
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Messages returns one human-readable line per warning type, sorted by type.
// subject names what was inspected, e.g. "Document 2025-001" or "Batch".
func (w *WarningAggregator) Messages(subject string) []string {
	msgs := make([]string, 0, len(w.warnings))
	for _, t := range w.Types() {
		msgs = append(msgs, w.formatWarningMessage(t, subject, w.warnings[t]))
	}
	return msgs
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(log zerolog.Logger, subject string) {
	for _, t := range w.Types() {
		log.Warn().
			Str("warning", t).
			Int("count", w.warnings[t].count).
			Msg(w.formatWarningMessage(t, subject, w.warnings[t]))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, subject string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningGrossMismatch:
		description = "a gross total different from net plus tax"
		action = "Emitting totals as given"
	case WarningShortTaxID:
		description = "a recipient tax id shorter than two characters"
		action = "Emitting an empty IdCodice"
	case WarningMissingRecipientName:
		description = "no recipient name"
		action = "Emitting an empty Denominazione"
	case WarningMissingIssuerEmail:
		description = "no issuer email"
		action = "Emitting an empty PECDestinatario"
	case WarningIncoherentTreatment:
		description = "both split-payment and reverse-charge enabled"
		action = "Applying both treatments field by field"
	default:
		description = "unknown issue"
		action = "Emitting output unchanged"
	}

	return fmt.Sprintf("%s has %s (%s). %s. Examples: %s",
		subject, description, occurrences(info.count), action, strings.Join(info.examples, ", "))
}

func occurrences(n int) string {
	if n == 1 {
		return "1 occurrence"
	}
	return fmt.Sprintf("%d occurrences", n)
}

// DocumentSubject is the message subject for warnings about a single document.
func DocumentSubject(doc fattura.FiscalDocument) string {
	return "Document " + doc.Number()
}

// Check inspects doc and the chosen treatment for semantic problems the codec
// tolerates silently.
func Check(doc fattura.FiscalDocument, opts fattura.TaxTreatmentOptions) *WarningAggregator {
	w := NewWarningAggregator()

	if sum := doc.TotalNet.Add(doc.TotalTax); !sum.Equal(doc.TotalGross) {
		w.Add(WarningGrossMismatch, fmt.Sprintf("%s+%s!=%s",
			fattura.FormatAmount(doc.TotalNet), fattura.FormatAmount(doc.TotalTax), fattura.FormatAmount(doc.TotalGross)))
	}
	if len([]rune(doc.RecipientTaxID)) < 2 {
		w.Add(WarningShortTaxID, fmt.Sprintf("%q", doc.RecipientTaxID))
	}
	if strings.TrimSpace(doc.Recipient.Name) == "" {
		w.Add(WarningMissingRecipientName, "recipient.name")
	}
	if doc.IssuerEmail == "" {
		w.Add(WarningMissingIssuerEmail, "issuerEmail")
	}
	if opts.SplitPayment && opts.ReverseCharge {
		w.Add(WarningIncoherentTreatment, "splitPayment+reverseCharge")
	}
	return w
}
