// Package fattura defines the data model consumed by the FatturaPA codec.
//
// FatturaPA is the Italian electronic-invoice XML schema. This package contains
// the plain Go values the codec works on:
//
//   - FiscalDocument: issuer contact, recipient identity, document-level totals and dates
//   - TaxTreatmentOptions: the split-payment and reverse-charge flags for one render
//   - ResolvedTaxFields: the four schema fields the treatment flags control
//
// Amounts use shopspring/decimal so that two-digit banker's rounding is exact.
// All types carry JSON and YAML tags so documents can be read from files or HTTP bodies.
package fattura
