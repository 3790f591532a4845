// Package config handles configuration loading and validation for tabsplit.
// Configuration is YAML: built-in defaults, overlaid by .tabsplit.yml (or the
// file named with --config) and any files it extends.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/tabsplit/pkg/verbose"
	"github.com/ajxudir/tabsplit/pkg/warnings"
)

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file.
// Otherwise, it looks for .tabsplit.yml in workDir. Keys present in the file
// override the built-in defaults; absent keys keep them.
//
// Parameters:
//   - configPath: path to the config file, or empty to look in workDir
//   - workDir: directory searched for .tabsplit.yml
//
// Returns:
//   - *Config: the loaded configuration
//   - error: any error encountered during loading or validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	cfg := loadDefaultConfig()

	path := configPath
	if path == "" {
		local := filepath.Join(workDir, FileName)
		if _, err := os.Stat(local); err != nil {
			verbose.Info("Using built-in default configuration")
			return cfg, nil
		}
		verbose.Infof("Found local config: %s", local)
		path = local
	}

	if err := overlayFile(cfg, path, make(map[string]bool)); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg.Extends = nil

	result := cfg.Validate()
	if result.HasErrors() {
		if verbose.IsEnabled() {
			return nil, errors.New(result.VerboseErrorMessages())
		}
		return nil, errors.New(result.ErrorMessages())
	}
	for _, w := range result.Warnings {
		warnings.Warn(fmt.Sprintf("%s: %s", path, w))
		verbose.WithDocRef("config", w)
	}

	verbose.ConfigLoaded(path)
	return cfg, nil
}

// readConfigData reads a config file after checking its size.
func readConfigData(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}
	return os.ReadFile(path)
}

// overlayFile applies the files path extends, in order, and then path itself
// onto cfg.
//
// An extend of "default" re-applies the built-in defaults. Relative extends
// resolve against the directory of the file that names them.
//
// Parameters:
//   - cfg: configuration to overlay onto
//   - path: config file to apply
//   - stack: absolute paths being applied, for cycle detection
//
// Returns:
//   - error: error if a file cannot be read, is invalid, or extends form a cycle
func overlayFile(cfg *Config, path string, stack map[string]bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config path '%s': %w", path, err)
	}
	if stack[abs] {
		return fmt.Errorf("cyclic extends detected at %s", path)
	}
	stack[abs] = true
	defer delete(stack, abs)

	data, err := readConfigData(path, DefaultMaxConfigFileSize)
	if err != nil {
		return err
	}

	var head struct {
		Extends []string `yaml:"extends"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	for _, extend := range head.Extends {
		if extend == "default" {
			if err := decodeStrict(cfg, []byte(defaultConfigYAML)); err != nil {
				return err
			}
			verbose.Printf("Extended from built-in defaults\n")
			continue
		}

		extendPath := extend
		if !filepath.IsAbs(extendPath) {
			extendPath = filepath.Join(filepath.Dir(path), extend)
		}
		if err := overlayFile(cfg, extendPath, stack); err != nil {
			return fmt.Errorf("failed to load extend '%s': %w", extend, err)
		}
		verbose.Printf("Extended from %q\n", extend)
	}

	return decodeStrict(cfg, data)
}

// decodeStrict decodes data onto cfg, rejecting unknown fields.
// An empty document leaves cfg unchanged.
func decodeStrict(cfg *Config, data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return nil
}
