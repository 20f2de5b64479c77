package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	LogLevel string `mapstructure:"logLevel"`
	Dotenv   string `mapstructure:"dotenv"`
	Server   struct {
		HTTPPort        string        `mapstructure:"HTTPPort"`
		Timeout         time.Duration `mapstructure:"HTTPTimeout"`
		ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
		RateLimit       int           `mapstructure:"rateLimit"` // requests per IP per minute, 0 disables
		AllowedOrigins  []string      `mapstructure:"allowedOrigins"`
	} `mapstructure:"server"`
	Data struct {
		// Empty paths use the embedded defaults.
		CategoriesPath   string `mapstructure:"categoriesPath"`
		DestinationsPath string `mapstructure:"destinationsPath"`
		// file or postgres
		DestinationSource string `mapstructure:"destinationSource"`
	} `mapstructure:"data"`
	Inference struct {
		Enabled          bool          `mapstructure:"enabled"`
		APIKey           string        `mapstructure:"apiKey"`
		Model            string        `mapstructure:"model"`
		Timeout          time.Duration `mapstructure:"timeout"`
		RatePerSecond    float64       `mapstructure:"ratePerSecond"`
		Burst            int           `mapstructure:"burst"`
		FailureThreshold uint32        `mapstructure:"failureThreshold"`
		OpenTimeout      time.Duration `mapstructure:"openTimeout"`
	} `mapstructure:"inference"`
	Filter struct {
		FuzzyThreshold int `mapstructure:"fuzzyThreshold"`
		ExcludedSample int `mapstructure:"excludedSample"`
		FallbackSize   int `mapstructure:"fallbackSize"`
		DefaultLimit   int `mapstructure:"defaultLimit"`
		MinLimit       int `mapstructure:"minLimit"`
	} `mapstructure:"filter"`
	Repositories struct {
		Postgres struct {
			Host     string `mapstructure:"host"`
			Password string `mapstructure:"password"`
			Port     string `mapstructure:"port"`
			Username string `mapstructure:"username"`
			DB       string `mapstructure:"db"`
			SSLMode  string `mapstructure:"sslmode"`
			MaxConns int32  `mapstructure:"maxConns"`
		} `mapstructure:"postgres"`
	} `mapstructure:"repositories"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// APP_INFERENCE_APIKEY overrides inference.apiKey and so on
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	switch c.Data.DestinationSource {
	case "", "file", "postgres":
	default:
		return fmt.Errorf("unknown data.destinationSource %q", c.Data.DestinationSource)
	}
	if c.Filter.FuzzyThreshold < 0 || c.Filter.FuzzyThreshold > 100 {
		return fmt.Errorf("filter.fuzzyThreshold must be within 0-100, got %d", c.Filter.FuzzyThreshold)
	}
	if c.Filter.ExcludedSample < 0 || c.Filter.FallbackSize < 0 {
		return fmt.Errorf("filter sizes must not be negative")
	}
	if c.Filter.MinLimit > 0 && c.Filter.DefaultLimit > 0 && c.Filter.DefaultLimit < c.Filter.MinLimit {
		return fmt.Errorf("filter.defaultLimit %d is below filter.minLimit %d", c.Filter.DefaultLimit, c.Filter.MinLimit)
	}
	return nil
}
