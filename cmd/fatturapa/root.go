package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/fatturapa/config"
	"github.com/theoremus-urban-solutions/fatturapa/converter"
	"github.com/theoremus-urban-solutions/fatturapa/internal"
)

var version = "1.0.0"

var (
	configPath   string
	appConfig    config.AppConfig
	closeLogging = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "fatturapa",
	Short: "Render fiscal documents as FatturaPA electronic invoices",
	Long: `fatturapa converts fiscal documents (JSON, YAML or spreadsheet rows) into
FatturaPA FPR12 XML. Split-payment and reverse-charge treatments are chosen per
render. Issuer and transmitter identities come from fatturapa.yml.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			configPath = os.Getenv("FATTURAPA_CONFIG")
		}
		cfg, err := config.LoadAppConfig(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg
		closeLog, err := internal.InitLogging(cfg.LogConfig())
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		closeLogging = closeLog
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: fatturapa.yml or config/fatturapa.yml)")
	rootCmd.AddCommand(renderCmd, batchCmd, serveCmd, versionCmd)
}

// newConverter builds a converter from the loaded configuration.
func newConverter() *converter.Converter {
	return converter.NewConverter(optionsFromConfig(appConfig))
}

func optionsFromConfig(cfg config.AppConfig) converter.Options {
	addr := cfg.Issuer.Address
	return converter.Options{
		Transmitter:   converter.Party{Country: cfg.Transmitter.Country, Code: cfg.Transmitter.Code},
		Progressive:   cfg.Transmitter.Progressive,
		RecipientCode: cfg.Transmitter.RecipientCode,
		Issuer:        converter.Party{Country: cfg.Issuer.Country, Code: cfg.Issuer.VATCode},
		TaxRegime:     cfg.Issuer.TaxRegime,
		IssuerAddress: converter.Address{
			Street:     addr.Street,
			PostalCode: addr.PostalCode,
			City:       addr.City,
			Province:   addr.Province,
			Country:    addr.Country,
		},
	}
}
