package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/fatturapa/internal"
)

// ErrNoConfig is returned when an explicitly requested config file does not exist.
var ErrNoConfig = errors.New("config file not found")

// DefaultPaths are searched in order when no explicit path is given.
var DefaultPaths = []string{"fatturapa.yml", "config/fatturapa.yml"}

// Config is the global application configuration
var Config = Default()

// Default returns the built-in profile. Identity values are sample placeholders
// and must be overridden for a real legal entity.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{Port: 16181},
		Issuer: IssuerConfig{
			Country:   "IT",
			VATCode:   "12345678901",
			TaxRegime: "RF01",
			Address: AddressConfig{
				Street:     "Via di esempio 1",
				PostalCode: "00100",
				City:       "Roma",
				Province:   "RM",
				Country:    "IT",
			},
		},
		Transmitter: TransmitterConfig{
			Country:       "IT",
			Code:          "12345678901",
			Progressive:   "00001",
			RecipientCode: "0000000",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}

// LoadAppConfig loads, overrides from the environment and validates the
// configuration. With an empty path DefaultPaths are tried and the defaults are
// used when none exists. The result is also stored in Config.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := Default()

	data, err := readConfigFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}

	Config = cfg
	return cfg, nil
}

// Validate checks every section of cfg.
func Validate(cfg AppConfig) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func readConfigFile(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoConfig, path)
		}
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		return data, nil
	}
	for _, p := range DefaultPaths {
		data, err := os.ReadFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", p, err)
		}
		return data, nil
	}
	return nil, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("FATTURAPA_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FATTURAPA_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.Output = getEnv("LOG_OUTPUT", cfg.Logging.Output)
	return nil
}

// LogConfig returns the logger configuration derived from cfg
func (c AppConfig) LogConfig() internal.LogConfig {
	lc := internal.DefaultLogConfig()
	if c.Logging.Level != "" {
		lc.Level = c.Logging.Level
	}
	if c.Logging.Format != "" {
		lc.Format = c.Logging.Format
	}
	if c.Logging.Output != "" {
		lc.Output = c.Logging.Output
	}
	return lc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
