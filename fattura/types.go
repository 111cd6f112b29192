package fattura

import (
	"fmt"
	"strings"
	"time"
)

// Placeholder is emitted for free-text identifiers and address lines that are absent.
const Placeholder = "N/A"

// Recipient is the buyer of the document. Only Name is required; empty address
// lines are replaced with schema placeholders when the document is built.
type Recipient struct {
	Name       string `json:"name" yaml:"name" validate:"required"`
	Street     string `json:"street,omitempty" yaml:"street,omitempty"`
	City       string `json:"city,omitempty" yaml:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
}

// FiscalDocument is the unit of work for one render. It is built by the caller
// right before serialization and never mutated by the codec.
type FiscalDocument struct {
	Recipient Recipient `json:"recipient" yaml:"recipient"`
	// RecipientTaxID is a two-letter country prefix followed by the national code, e.g. IT12345678901.
	RecipientTaxID string `json:"recipientTaxId" yaml:"recipientTaxId" validate:"required,taxid"`

	IssuerName  string `json:"issuerName" yaml:"issuerName" validate:"required"`
	IssuerEmail string `json:"issuerEmail" yaml:"issuerEmail" validate:"omitempty,email"`
	IssuerPhone string `json:"issuerPhone" yaml:"issuerPhone"`

	// Amounts are EUR. TotalGross is expected to equal TotalNet+TotalTax; the codec does not enforce it.
	TotalNet   Money `json:"totalNet" yaml:"totalNet"`
	TotalTax   Money `json:"totalTax" yaml:"totalTax"`
	TotalGross Money `json:"totalGross" yaml:"totalGross"`

	IssueDate time.Time `json:"issueDate" yaml:"issueDate" validate:"required"`

	DocumentID  string `json:"documentId,omitempty" yaml:"documentId,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Number returns the document identifier, or the placeholder when absent.
func (d FiscalDocument) Number() string {
	if d.DocumentID == "" {
		return Placeholder
	}
	return d.DocumentID
}

// FileName is the name under which the rendered XML is offered for download.
// Characters unsafe in file names are replaced with '_'.
func (d FiscalDocument) FileName() string {
	return fmt.Sprintf("invoice-%s.xml", strings.Map(safeFileRune, d.Number()))
}

func safeFileRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return r
	case r == '-' || r == '_' || r == '.':
		return r
	}
	return '_'
}

// TaxTreatmentOptions selects the VAT regime for a single render. The zero value
// is standard VAT.
type TaxTreatmentOptions struct {
	SplitPayment  bool `json:"splitPayment" yaml:"splitPayment"`
	ReverseCharge bool `json:"reverseCharge" yaml:"reverseCharge"`
}

// Collectability is the EsigibilitaIVA schema code.
type Collectability string

const (
	CollectabilityImmediate    Collectability = "I"
	CollectabilitySplitPayment Collectability = "S"
)

// ResolvedTaxFields holds the schema values derived from TaxTreatmentOptions.
// An empty NatureCode or RegulatoryReference means the element is not emitted.
type ResolvedTaxFields struct {
	NatureCode          string
	TaxDue              Money
	VATCollectability   Collectability
	RegulatoryReference string
}
