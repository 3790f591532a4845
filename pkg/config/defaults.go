package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfigYAML string

//go:embed template.yml
var templateConfigYAML string

// loadDefaultConfig loads the embedded default configuration.
//
// Returns:
//   - *Config: the default configuration, or a zero Config if default.yml is malformed
func loadDefaultConfig() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err == nil {
		return &cfg
	}
	return &Config{}
}

// Default returns a fresh copy of the built-in configuration.
func Default() *Config {
	return loadDefaultConfig()
}

// GetDefaultConfig returns the embedded default configuration YAML.
func GetDefaultConfig() string {
	return defaultConfigYAML
}

// GetTemplateConfig returns the embedded template configuration YAML.
//
// This is the commented starter file written by 'tabsplit config --init'.
//
// Returns:
//   - string: the template configuration as YAML
func GetTemplateConfig() string {
	return templateConfigYAML
}
