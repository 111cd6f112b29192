package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0,lte=65535"`
}

// AddressConfig is a postal address as emitted in a Sede block
type AddressConfig struct {
	Street     string `yaml:"street" validate:"required"`
	PostalCode string `yaml:"postalCode" validate:"required,len=5,numeric"`
	City       string `yaml:"city" validate:"required"`
	Province   string `yaml:"province" validate:"required,len=2,alpha"`
	Country    string `yaml:"country" validate:"required,len=2,alpha"`
}

// IssuerConfig is the fiscal identity of the emitting party (CedentePrestatore).
// The display name and contacts come from each document; everything here is fixed per deployment.
type IssuerConfig struct {
	Country   string        `yaml:"country" validate:"required,len=2,alpha"`
	VATCode   string        `yaml:"vatCode" validate:"required,min=1,max=28"`
	TaxRegime string        `yaml:"taxRegime" validate:"required,startswith=RF"`
	Address   AddressConfig `yaml:"address" validate:"required"`
}

// TransmitterConfig is the identity of the party sending the file (DatiTrasmissione)
type TransmitterConfig struct {
	Country       string `yaml:"country" validate:"required,len=2,alpha"`
	Code          string `yaml:"code" validate:"required,min=1,max=28"`
	Progressive   string `yaml:"progressive" validate:"required,alphanum,max=10"`
	RecipientCode string `yaml:"recipientCode" validate:"required,len=7"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
	Output string `yaml:"output"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server      ServerConfig      `yaml:"server" validate:"required"`
	Issuer      IssuerConfig      `yaml:"issuer" validate:"required"`
	Transmitter TransmitterConfig `yaml:"transmitter" validate:"required"`
	Logging     LoggingConfig     `yaml:"logging"`
}
