package tablediff

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config represents the tablediff project configuration
type Config struct {
	Dialect    string           `yaml:"dialect"`
	Quoted     bool             `yaml:"quoted"`
	Generation GenerationConfig `yaml:"generation"`
}

// GenerationConfig represents statement generation defaults
type GenerationConfig struct {
	Intersection *bool `yaml:"intersection"` // Pointer to distinguish between unset and false. Default true
	OrderBy      *bool `yaml:"order_by"`     // Pointer to distinguish between unset and false. Default true
}

// UseIntersection returns true unless intersection is explicitly disabled
func (g GenerationConfig) UseIntersection() bool {
	return g.Intersection == nil || *g.Intersection
}

// UseOrderBy returns true unless order_by is explicitly disabled
func (g GenerationConfig) UseOrderBy() bool {
	return g.OrderBy == nil || *g.OrderBy
}

// LoadConfig loads configuration from the specified file.
// A missing file yields the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	_, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if config.Dialect != "" && !IsPublicDialect(Dialect(config.Dialect)) {
		return fmt.Errorf("%w: invalid dialect '%s': must be one of ansi, sqlserver, mssql, mysql", ErrConfigValidation, config.Dialect)
	}

	return nil
}

// applyDefaults applies default values for missing configuration
func applyDefaults(config *Config) {
	if config.Dialect == "" {
		config.Dialect = string(DialectANSI)
	}
}

func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	return config
}
