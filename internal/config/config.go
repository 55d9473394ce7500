// Package config loads application configuration from config.yaml and
// PARTNERHUB_* environment variables.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	BrasilAPI BrasilAPIConfig `yaml:"brasilapi" mapstructure:"brasilapi"`
	ViaCEP    ViaCEPConfig    `yaml:"viacep" mapstructure:"viacep"`
	Geocode   GeocodeConfig   `yaml:"geocode" mapstructure:"geocode"`
	Outreach  OutreachConfig  `yaml:"outreach" mapstructure:"outreach"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	Path        string `yaml:"path" mapstructure:"path"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// AnthropicConfig holds Anthropic API settings for the search oracle.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// BrasilAPIConfig holds CNPJ registry lookup settings.
type BrasilAPIConfig struct {
	BaseURL string  `yaml:"base_url" mapstructure:"base_url"`
	Rate    float64 `yaml:"rate" mapstructure:"rate"`
}

// ViaCEPConfig holds postal-code lookup settings.
type ViaCEPConfig struct {
	BaseURL string  `yaml:"base_url" mapstructure:"base_url"`
	Rate    float64 `yaml:"rate" mapstructure:"rate"`
}

// GeocodeConfig holds Nominatim geocoding settings. The rate default
// follows the public usage policy of one request per second.
type GeocodeConfig struct {
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	UserAgent string  `yaml:"user_agent" mapstructure:"user_agent"`
	Rate      float64 `yaml:"rate" mapstructure:"rate"`
}

// OutreachConfig points at the optional WhatsApp message template file.
type OutreachConfig struct {
	TemplatesPath string `yaml:"templates_path" mapstructure:"templates_path"`
}

// ServerConfig configures the public registration server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PARTNERHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "partnerhub.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 4096)
	v.SetDefault("brasilapi.base_url", "https://brasilapi.com.br/api")
	v.SetDefault("brasilapi.rate", 5)
	v.SetDefault("viacep.base_url", "https://viacep.com.br/ws")
	v.SetDefault("viacep.rate", 10)
	v.SetDefault("geocode.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocode.user_agent", "partnerhub-cli/1.0")
	v.SetDefault("geocode.rate", 1)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
