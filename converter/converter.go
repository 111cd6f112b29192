package converter

import (
	"github.com/theoremus-urban-solutions/fatturapa/fattura"
	"github.com/theoremus-urban-solutions/fatturapa/formatter"
)

// Schema constants. These are protocol values and never come from input.
const (
	FormatVersion  = "FPR12"
	NamespaceP     = "http://ivaservizi.agenziaentrate.gov.it/docs/xsd/fatture/v1.2"
	NamespaceDS    = "http://www.w3.org/2000/09/xmldsig#"
	NamespaceXSI   = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation = NamespaceP + " Schema_VFPR12_v1.2.3.xsd"

	RootTag = "p:FatturaElettronica"
)

// Converter turns fiscal documents into FatturaPA XML using fixed deployment identities.
// A Converter holds no mutable state and is safe for concurrent use.
type Converter struct {
	Opts Options
}

// NewConverter creates a new converter instance
func NewConverter(opts Options) *Converter {
	return &Converter{Opts: opts}
}

// Convert resolves the treatment, builds the tree and renders it: the full codec in one call.
func (c *Converter) Convert(doc fattura.FiscalDocument, opts fattura.TaxTreatmentOptions) string {
	return formatter.Render(c.Build(doc, Resolve(opts, doc.TotalTax)))
}

// Build assembles the ordered FatturaPA element tree for doc. Optional schema
// elements whose resolved value is absent are not appended.
func (c *Converter) Build(doc fattura.FiscalDocument, resolved fattura.ResolvedTaxFields) *formatter.Element {
	root := formatter.New(RootTag,
		c.buildHeader(doc),
		buildBody(doc, resolved),
	)
	return root.WithAttrs(
		formatter.Attr{Name: "versione", Value: FormatVersion},
		formatter.Attr{Name: "xmlns:p", Value: NamespaceP},
		formatter.Attr{Name: "xmlns:ds", Value: NamespaceDS},
		formatter.Attr{Name: "xmlns:xsi", Value: NamespaceXSI},
		formatter.Attr{Name: "xsi:schemaLocation", Value: SchemaLocation},
	)
}

// Convert renders doc with DefaultOptions.
func Convert(doc fattura.FiscalDocument, opts fattura.TaxTreatmentOptions) string {
	return NewConverter(DefaultOptions()).Convert(doc, opts)
}
