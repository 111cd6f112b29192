package converter

import (
	"github.com/shopspring/decimal"

	"github.com/theoremus-urban-solutions/fatturapa/fattura"
)

const (
	// NatureReverseCharge is the Natura code for reverse-charge construction services.
	NatureReverseCharge = "N6.1"

	// ReverseChargeReference is the legal citation emitted as RiferimentoNormativo.
	ReverseChargeReference = "Art. 17, comma 6, DPR 633/72"
)

// Resolve maps the treatment flags to the four schema fields they control.
// Every combination of flags is accepted; each field depends on its own flag only.
//
//	reverse split | nature tax      collectability reference
//	false   false | -      totalTax I              -
//	false   true  | -      0        S              -
//	true    false | N6.1   0        I              citation
//	true    true  | N6.1   0        S              citation
func Resolve(opts fattura.TaxTreatmentOptions, totalTax fattura.Money) fattura.ResolvedTaxFields {
	return fattura.ResolvedTaxFields{
		NatureCode:          natureCode(opts.ReverseCharge),
		TaxDue:              taxDue(opts.ReverseCharge || opts.SplitPayment, totalTax),
		VATCollectability:   collectability(opts.SplitPayment),
		RegulatoryReference: regulatoryReference(opts.ReverseCharge),
	}
}

func natureCode(reverseCharge bool) string {
	if reverseCharge {
		return NatureReverseCharge
	}
	return ""
}

// taxDue is zero whenever the seller does not collect the tax.
func taxDue(notCollected bool, totalTax fattura.Money) fattura.Money {
	if notCollected {
		return decimal.Zero
	}
	return totalTax
}

func collectability(splitPayment bool) fattura.Collectability {
	if splitPayment {
		return fattura.CollectabilitySplitPayment
	}
	return fattura.CollectabilityImmediate
}

func regulatoryReference(reverseCharge bool) string {
	if reverseCharge {
		return ReverseChargeReference
	}
	return ""
}
