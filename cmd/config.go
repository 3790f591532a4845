package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/tabsplit/pkg/config"
	"github.com/ajxudir/tabsplit/pkg/constants"
	"github.com/ajxudir/tabsplit/pkg/errors"
	"github.com/ajxudir/tabsplit/pkg/verbose"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
	configStrictFlag        bool
)

var (
	loadConfigFunc = config.LoadConfig
	writeFileFunc  = os.WriteFile
	readFileFunc   = os.ReadFile
)

// loadAndValidateConfig loads the configuration and validates it for unknown fields.
//
// Validation runs first so that typos are reported with schema hints and the
// config exit code instead of a bare YAML error.
//
// Parameters:
//   - configPath: Path to custom config file, or empty for the default location
//   - workDir: Working directory to search for .tabsplit.yml
//
// Returns:
//   - *config.Config: Loaded and validated configuration
//   - error: ExitError with ExitConfigError on validation failure
func loadAndValidateConfig(configPath, workDir string) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(workDir, config.FileName)
	}

	data, err := readFileFunc(path)
	switch {
	case err == nil:
		result := config.ValidateConfigFile(data)
		if result.HasErrors() {
			var errBuilder strings.Builder
			errBuilder.WriteString(fmt.Sprintf("configuration validation failed for %s:\n", path))
			for _, e := range result.Errors {
				errBuilder.WriteString(fmt.Sprintf("  - %s\n", e.Error()))
			}
			errBuilder.WriteString("\n💡 Run 'tabsplit config --validate' for details, or see docs/configuration.md")
			verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, path)
			return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("%s", errBuilder.String()))
		}
	case configPath != "":
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	cfg, err := loadConfigFunc(configPath, workDir)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}
	return cfg, nil
}

// workingDir returns the current directory, or "." when it cannot be determined.
func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create configuration",
	Long:  `Show the built-in or effective configuration, create a .tabsplit.yml template, or validate a config file.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create .tabsplit.yml template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
	configCmd.Flags().BoolVar(&configStrictFlag, "strict", false, "With --validate, treat warnings as errors")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .tabsplit.yml template file
//   - --validate: Validates the configuration file for schema errors
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the effective merged configuration
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configInitFlag {
		return createConfigTemplate(cmd)
	}

	if configValidateFlag {
		return validateConfigFile(cmd)
	}

	if configShowDefaultsFlag {
		fmt.Fprintln(out, "Default configuration:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, config.GetDefaultConfig())
		return nil
	}

	if configShowEffectiveFlag {
		cfg, err := loadAndValidateConfig(configFlag, workingDir())
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}
		fmt.Fprintln(out, "Effective configuration:")
		fmt.Fprintln(out)
		fmt.Fprint(out, string(data))
		return nil
	}

	return cmd.Help()
}

// validateConfigFile validates the file named by --config, or .tabsplit.yml
// in the current directory.
//
// Returns:
//   - error: ExitError with ExitConfigError on validation failure
func validateConfigFile(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	configPath := configFlag
	if configPath == "" {
		configPath = filepath.Join(workingDir(), config.FileName)
	}

	data, err := readFileFunc(configPath)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	validate := config.ValidateConfigFile
	if configStrictFlag {
		validate = config.ValidateConfigFileStrict
	}
	result := validate(data)

	if result.HasErrors() {
		fmt.Fprintf(out, "%s Configuration validation failed for: %s\n\n", constants.IconError, configPath)
		for _, e := range result.Errors {
			if verbose.IsEnabled() {
				fmt.Fprintf(out, "  ERROR: %s\n", e.VerboseError())
			} else {
				fmt.Fprintf(out, "  ERROR: %s\n", e.Error())
			}
		}

		if len(result.Warnings) > 0 {
			fmt.Fprintln(out)
			for _, w := range result.Warnings {
				fmt.Fprintf(out, "  WARNING: %s\n", w)
			}
		}
		fmt.Fprintln(out)
		if !verbose.IsEnabled() {
			fmt.Fprintf(out, "%s Run with --verbose for detailed schema information\n", constants.IconLightbulb)
		}
		fmt.Fprintf(out, "%s See docs/configuration.md for valid configuration options\n", constants.IconLightbulb)
		verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, configPath)
		return errors.NewExitErrorf(errors.ExitConfigError, "configuration validation failed")
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, "%s Configuration valid with warnings: %s\n\n", constants.IconWarn, configPath)
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  WARNING: %s\n", w)
		}
		fmt.Fprintln(out)
	} else {
		fmt.Fprintf(out, "%s Configuration valid: %s\n", constants.IconCheckmarkBox, configPath)
	}

	return nil
}

// createConfigTemplate writes the commented template to .tabsplit.yml in the
// current directory. It fails if the file already exists.
func createConfigTemplate(cmd *cobra.Command) error {
	configPath := config.FileName
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := writeFileFunc(configPath, []byte(config.GetTemplateConfig()), 0o600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration template: %s\n", configPath)
	return nil
}
