package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/pixvault/config"
	ConfigFileName    = "pixvault.yml"

	// DefaultBootstrapLocation is where the loader looks for seed data when
	// nothing else is configured.
	DefaultBootstrapLocation = "./bootstrap_data"

	// DefaultFilePattern matches seed files recursively under the location.
	DefaultFilePattern = "**/*.json"
)

// ValidLogLevels is the list of accepted PIXVAULT_LOG_LEVEL values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// PixVaultConfig holds the settings the bootstrap tooling reads.
type PixVaultConfig struct {
	// BootstrapLocation is the root directory of seed data files.
	BootstrapLocation string `yaml:"bootstrap_location"`

	// FilePattern is the glob used to discover seed files.
	FilePattern string `yaml:"file_pattern"`

	// LogLevel controls CLI and SQL logging verbosity.
	LogLevel string `yaml:"log_level"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func newDefault() *PixVaultConfig {
	return &PixVaultConfig{
		BootstrapLocation: DefaultBootstrapLocation,
		FilePattern:       DefaultFilePattern,
		LogLevel:          "info",
		sources:           make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*PixVaultConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("PIXVAULT_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig PixVaultConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{"bootstrap_location", "file_pattern", "log_level"}
}

func (c *PixVaultConfig) applyFileConfig(file *PixVaultConfig) {
	if file.BootstrapLocation != "" {
		c.BootstrapLocation = file.BootstrapLocation
		c.sources["bootstrap_location"] = "file"
	}
	if file.FilePattern != "" {
		c.FilePattern = file.FilePattern
		c.sources["file_pattern"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
}

func (c *PixVaultConfig) applyEnvConfig() {
	// BOOTSTRAP_LOCATION is the historical name and still wins over the
	// config file; the PIXVAULT_ prefixed form wins over both.
	if val := os.Getenv("BOOTSTRAP_LOCATION"); val != "" {
		c.BootstrapLocation = val
		c.sources["bootstrap_location"] = "environment"
	}
	if val := os.Getenv("PIXVAULT_BOOTSTRAP_LOCATION"); val != "" {
		c.BootstrapLocation = val
		c.sources["bootstrap_location"] = "environment"
	}
	if val := os.Getenv("PIXVAULT_FILE_PATTERN"); val != "" {
		c.FilePattern = val
		c.sources["file_pattern"] = "environment"
	}
	if val := os.Getenv("PIXVAULT_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *PixVaultConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *PixVaultConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration
func (c *PixVaultConfig) Validate() error {
	if !doublestar.ValidatePattern(c.FilePattern) {
		return fmt.Errorf("invalid file_pattern value: %s", c.FilePattern)
	}

	for _, level := range ValidLogLevels {
		if c.LogLevel == level {
			return nil
		}
	}
	return fmt.Errorf("invalid log_level value: %s", c.LogLevel)
}

// Attributes returns all configuration attributes with their values and sources
func (c *PixVaultConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "bootstrap_location", Value: c.BootstrapLocation, Source: c.Source("bootstrap_location")},
		{Name: "file_pattern", Value: c.FilePattern, Source: c.Source("file_pattern")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
	}
}

// FormatText returns a text representation of the configuration
func (c *PixVaultConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *PixVaultConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
