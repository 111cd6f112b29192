// Package converter maps a fiscal document to a FatturaPA XML document.
//
// Conversion runs in three pure steps:
//   - Resolve: tax-treatment flags to the Natura, Imposta, EsigibilitaIVA and
//     RiferimentoNormativo values
//   - Converter.Build: the ordered, namespace-qualified element tree
//   - formatter.Render: indented XML text with a fixed declaration
//
// # Usage
//
//	conv := converter.NewConverter(converter.DefaultOptions())
//	xml := conv.Convert(doc, fattura.TaxTreatmentOptions{ReverseCharge: true})
//
// Or step by step:
//
//	resolved := converter.Resolve(opts, doc.TotalTax)
//	tree := conv.Build(doc, resolved)
//	xml := formatter.Render(tree)
//
// # Identities
//
// Transmitter and issuer fiscal identities are deployment settings passed in
// Options, never read from the document. The document supplies only the issuer
// display name, phone and email.
//
// # Totality
//
// No input is rejected. A recipient tax id shorter than two characters yields an
// empty IdCodice, and inconsistent totals are emitted as given. Check reports
// these cases as warnings; callers wanting hard failures run fattura.Validate
// before converting.
//
// # Thread Safety
//
// Converter holds only read-only options. Concurrent calls are safe.
package converter
