package config

import (
	"errors"
	"fmt"
	"io/fs"
	"logistics/internal/export"
	"logistics/pkg/logger"
	"logistics/pkg/serrors"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for logging, export, and the default filters and sort
// order applied to computed delivery options.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Export contains output related configurations
	Export struct {
		// Dir is the directory exported files are written to
		Dir string `env:"EXPORT_DIR" env-default:"." yaml:"dir"`
		// Formats lists the base export formats, each written to its own file
		Formats []string `env:"EXPORT_FORMATS" env-default:"json" env-separator:"," yaml:"formats"`
		// Encrypt enables the cipher transform
		Encrypt bool `env:"EXPORT_ENCRYPT" env-default:"false" yaml:"encrypt"`
		// Passphrase derives the cipher key; required when Encrypt is set
		Passphrase string `env:"EXPORT_PASSPHRASE" yaml:"passphrase"`
		// Compress selects the archive transform: zip, gzip or empty for none
		Compress string `env:"EXPORT_COMPRESS" yaml:"compress"`
		// EncryptFirst applies the cipher before compression instead of after it
		EncryptFirst bool `env:"EXPORT_ENCRYPT_FIRST" env-default:"false" yaml:"encryptFirst"`
	} `yaml:"export"`

	// Filter contains the default predicates applied to options
	Filter struct {
		// MaxPrice drops options costing more; zero disables the filter
		MaxPrice float64 `env:"FILTER_MAX_PRICE" env-default:"0" yaml:"maxPrice"`
		// MaxHours drops slower options; zero disables the filter
		MaxHours float64 `env:"FILTER_MAX_HOURS" env-default:"0" yaml:"maxHours"`
		// TransportName keeps options whose name matches this regular expression
		TransportName string `env:"FILTER_TRANSPORT_NAME" yaml:"transportName"`
	} `yaml:"filter"`

	// Sort contains ordering configurations
	Sort struct {
		// Order is a list of key:direction pairs, e.g. "price:asc,name:asc"
		Order string `env:"SORT_ORDER" env-default:"price:asc,name:asc" yaml:"order"`
	} `yaml:"sort"`

	// Metrics contains metrics related configurations
	Metrics struct {
		// Textfile is the path metrics are written to after a run; empty disables it
		Textfile string `env:"METRICS_TEXTFILE" yaml:"textfile"`
	} `yaml:"metrics"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: the configuration then comes from the
// environment and defaults alone.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the enumerated and dependent settings.
func (c *Config) Validate() error {
	switch c.Environment {
	case logger.DevelopmentEnvironment, logger.ProductionEnvironment:
	default:
		return serrors.With(serrors.ErrValidation, "unknown environment %q", c.Environment)
	}

	for _, f := range c.Export.Formats {
		if _, err := export.ForFormat(f); err != nil {
			return err
		}
	}
	if _, err := export.Compression(c.Export.Compress); err != nil {
		return err
	}
	if c.Export.Encrypt && c.Export.Passphrase == "" {
		return serrors.With(serrors.ErrValidation, "export.passphrase is required when export.encrypt is set")
	}
	if c.Filter.MaxPrice < 0 || c.Filter.MaxHours < 0 {
		return serrors.With(serrors.ErrValidation, "filter limits cannot be negative")
	}

	return nil
}
