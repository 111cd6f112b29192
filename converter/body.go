package converter

import (
	"github.com/theoremus-urban-solutions/fatturapa/fattura"
	"github.com/theoremus-urban-solutions/fatturapa/formatter"
	"github.com/theoremus-urban-solutions/fatturapa/utils"
)

// Body constants for the single aggregated goods/services line.
const (
	DocumentTypeInvoice   = "TD01"
	Currency              = "EUR"
	VATRate               = "22.00"
	LineNumber            = "1"
	LineDescription       = "Prestazione edile"
	LineQuantity          = "1.00"
	PaymentTermsFull      = "TP02"
	PaymentMethodTransfer = "MP05"
)

func buildBody(doc fattura.FiscalDocument, resolved fattura.ResolvedTaxFields) *formatter.Element {
	return formatter.New("FatturaElettronicaBody",
		buildGeneralData(doc),
		buildGoodsServices(doc, resolved),
		buildPayment(doc),
	)
}

func buildGeneralData(doc fattura.FiscalDocument) *formatter.Element {
	return formatter.New("DatiGenerali",
		formatter.New("DatiGeneraliDocumento",
			formatter.Leaf("TipoDocumento", DocumentTypeInvoice),
			formatter.Leaf("Divisa", Currency),
			formatter.Leaf("Data", utils.DateOnly(doc.IssueDate)),
			formatter.Leaf("Numero", doc.Number()),
			formatter.Leaf("ImportoTotaleDocumento", fattura.FormatAmount(doc.TotalGross)),
			formatter.Leaf("Causale", orDefault(doc.Description, fattura.Placeholder)),
		),
	)
}

func buildGoodsServices(doc fattura.FiscalDocument, resolved fattura.ResolvedTaxFields) *formatter.Element {
	net := fattura.FormatAmount(doc.TotalNet)

	line := formatter.New("DettaglioLinee",
		formatter.Leaf("NumeroLinea", LineNumber),
		formatter.Leaf("Descrizione", LineDescription),
		formatter.Leaf("Quantita", LineQuantity),
		formatter.Leaf("PrezzoUnitario", net),
		formatter.Leaf("PrezzoTotale", net),
		formatter.Leaf("AliquotaIVA", VATRate),
	).Append(
		formatter.Optional("Natura", resolved.NatureCode),
	)

	summary := formatter.New("DatiRiepilogo",
		formatter.Leaf("AliquotaIVA", VATRate),
		formatter.Leaf("ImponibileImporto", net),
		formatter.Leaf("Imposta", fattura.FormatAmount(resolved.TaxDue)),
	).Append(
		formatter.Optional("Natura", resolved.NatureCode),
		formatter.Leaf("EsigibilitaIVA", string(resolved.VATCollectability)),
		formatter.Optional("RiferimentoNormativo", resolved.RegulatoryReference),
	)

	return formatter.New("DatiBeniServizi", line, summary)
}

func buildPayment(doc fattura.FiscalDocument) *formatter.Element {
	return formatter.New("DatiPagamento",
		formatter.Leaf("CondizioniPagamento", PaymentTermsFull),
		formatter.New("DettaglioPagamento",
			formatter.Leaf("ModalitaPagamento", PaymentMethodTransfer),
			formatter.Leaf("DataScadenzaPagamento", utils.DueDateString(doc.IssueDate, utils.PaymentTermDays)),
			formatter.Leaf("ImportoPagamento", fattura.FormatAmount(doc.TotalGross)),
		),
	)
}
