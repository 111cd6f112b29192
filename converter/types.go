package converter

// Party is a fiscal identifier split into country prefix and national code.
type Party struct {
	Country string
	Code    string
}

// Address is a postal address for a Sede block.
type Address struct {
	Street     string
	PostalCode string
	City       string
	Province   string
	Country    string
}

// Options contains the deployment-fixed identities written into every document.
// This struct is data-source agnostic and has no dependencies on config files.
type Options struct {
	// Transmitter identifies the party sending the file (IdTrasmittente).
	Transmitter Party

	// Progressive is the ProgressivoInvio value.
	Progressive string

	// RecipientCode is the CodiceDestinatario. Seven zeros routes delivery through PECDestinatario.
	RecipientCode string

	// Issuer is the fiscal identity of the CedentePrestatore. The display name and
	// contacts of the issuer come from each document, not from here.
	Issuer Party

	// TaxRegime is the RegimeFiscale code, e.g. RF01 (ordinary).
	TaxRegime string

	// IssuerAddress is the legal address of the CedentePrestatore.
	IssuerAddress Address
}

// DefaultOptions returns sample identities suitable for previews and tests.
func DefaultOptions() Options {
	return Options{
		Transmitter:   Party{Country: "IT", Code: "12345678901"},
		Progressive:   "00001",
		RecipientCode: "0000000",
		Issuer:        Party{Country: "IT", Code: "12345678901"},
		TaxRegime:     "RF01",
		IssuerAddress: Address{
			Street:     "Via di esempio 1",
			PostalCode: "00100",
			City:       "Roma",
			Province:   "RM",
			Country:    "IT",
		},
	}
}
