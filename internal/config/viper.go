package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Export struct {
		SheetName      string  `mapstructure:"sheet_name" yaml:"sheet_name"`
		MaxColumnWidth float64 `mapstructure:"max_column_width" yaml:"max_column_width"`
	} `mapstructure:"export" yaml:"export"`

	Rates struct {
		DailyURL       string `mapstructure:"daily_url" yaml:"daily_url"`
		HistoryURL     string `mapstructure:"history_url" yaml:"history_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"rates" yaml:"rates"`

	FIS struct {
		CompanyCode  string `mapstructure:"company_code" yaml:"company_code"`
		MappingsFile string `mapstructure:"mappings_file" yaml:"mappings_file"`
	} `mapstructure:"fis" yaml:"fis"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then KKTOOLS_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.kktools")
	v.AddConfigPath(".kktools")
	v.AddConfigPath(".")

	v.SetEnvPrefix("KKTOOLS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("export.sheet_name", "Sheet1")
	v.SetDefault("export.max_column_width", 25)

	v.SetDefault("rates.daily_url", "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml")
	v.SetDefault("rates.history_url", "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-hist-90d.xml")
	v.SetDefault("rates.timeout_seconds", 30)

	v.SetDefault("fis.company_code", "")
	v.SetDefault("fis.mappings_file", "")
}

func validateConfig(config *Config) error {
	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("unknown log level: %s", config.Log.Level)
	}
	if config.Export.MaxColumnWidth <= 0 {
		return fmt.Errorf("export.max_column_width must be positive")
	}
	if config.Rates.TimeoutSeconds <= 0 {
		return fmt.Errorf("rates.timeout_seconds must be positive")
	}
	return nil
}
