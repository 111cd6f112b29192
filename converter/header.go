package converter

import (
	"github.com/theoremus-urban-solutions/fatturapa/fattura"
	"github.com/theoremus-urban-solutions/fatturapa/formatter"
)

// Recipient address defaults. The document model has no province field.
const (
	DefaultPostalCode = "00000"
	RecipientProvince = "XX"
	RecipientCountry  = "IT"
)

func (c *Converter) buildHeader(doc fattura.FiscalDocument) *formatter.Element {
	return formatter.New("FatturaElettronicaHeader",
		c.buildTransmission(doc),
		c.buildIssuer(doc),
		buildRecipient(doc),
	)
}

func (c *Converter) buildTransmission(doc fattura.FiscalDocument) *formatter.Element {
	return formatter.New("DatiTrasmissione",
		formatter.New("IdTrasmittente",
			formatter.Leaf("IdPaese", c.Opts.Transmitter.Country),
			formatter.Leaf("IdCodice", c.Opts.Transmitter.Code),
		),
		formatter.Leaf("ProgressivoInvio", c.Opts.Progressive),
		formatter.Leaf("FormatoTrasmissione", FormatVersion),
		formatter.Leaf("CodiceDestinatario", c.Opts.RecipientCode),
		formatter.Leaf("PECDestinatario", doc.IssuerEmail),
	)
}

func (c *Converter) buildIssuer(doc fattura.FiscalDocument) *formatter.Element {
	addr := c.Opts.IssuerAddress
	return formatter.New("CedentePrestatore",
		formatter.New("DatiAnagrafici",
			formatter.New("IdFiscaleIVA",
				formatter.Leaf("IdPaese", c.Opts.Issuer.Country),
				formatter.Leaf("IdCodice", c.Opts.Issuer.Code),
			),
			formatter.New("Anagrafica",
				formatter.Leaf("Denominazione", doc.IssuerName),
			),
			formatter.Leaf("RegimeFiscale", c.Opts.TaxRegime),
		),
		buildSede(addr.Street, addr.PostalCode, addr.City, addr.Province, addr.Country),
		formatter.New("Contatti",
			formatter.Leaf("Telefono", doc.IssuerPhone),
			formatter.Leaf("Email", doc.IssuerEmail),
		),
	)
}

func buildRecipient(doc fattura.FiscalDocument) *formatter.Element {
	country, code := SplitTaxID(doc.RecipientTaxID)
	r := doc.Recipient
	return formatter.New("CessionarioCommittente",
		formatter.New("DatiAnagrafici",
			formatter.New("IdFiscaleIVA",
				formatter.Leaf("IdPaese", country),
				formatter.Leaf("IdCodice", code),
			),
			formatter.New("Anagrafica",
				formatter.Leaf("Denominazione", r.Name),
			),
		),
		buildSede(
			orDefault(r.Street, fattura.Placeholder),
			orDefault(r.PostalCode, DefaultPostalCode),
			orDefault(r.City, fattura.Placeholder),
			RecipientProvince,
			RecipientCountry,
		),
	)
}

func buildSede(street, postalCode, city, province, country string) *formatter.Element {
	return formatter.New("Sede",
		formatter.Leaf("Indirizzo", street),
		formatter.Leaf("CAP", postalCode),
		formatter.Leaf("Comune", city),
		formatter.Leaf("Provincia", province),
		formatter.Leaf("Nazione", country),
	)
}

// SplitTaxID splits a VAT identifier at character index 2 into country prefix
// and code body. Identifiers shorter than two characters yield an empty body.
func SplitTaxID(id string) (country, code string) {
	runes := []rune(id)
	if len(runes) < 2 {
		return id, ""
	}
	return string(runes[:2]), string(runes[2:])
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
