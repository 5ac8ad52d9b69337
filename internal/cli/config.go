package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yildizm/bfhlctl/internal/config"
	"gopkg.in/yaml.v3"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bfhlctl configuration",
		Long: `Manage bfhlctl configuration files and settings.

The config command provides subcommands for initializing, viewing,
validating, and locating configuration files.`,
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

// newConfigInitCommand creates the config init subcommand
func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long: `Initialize a new bfhlctl configuration file with default values.

By default, creates a full configuration file with all options and comments.
Use --minimal for a compact configuration with only essential settings.`,
		Example: `  # Create full config in current directory
  bfhlctl config init

  # Create minimal config
  bfhlctl config init --minimal

  # Create config at specific path
  bfhlctl config init --output ~/.config/bfhlctl/config.yaml

  # Overwrite existing config
  bfhlctl config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = ".bfhlctl.yaml"
			}

			if !force && fileExists(outputPath) {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
			}

			dir := filepath.Dir(outputPath)
			if dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			var content string
			if minimal {
				content = config.MinimalSampleConfig()
			} else {
				content = config.SampleConfig()
			}

			if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Printf("%s Configuration file created at: %s\n", GetEmoji("success"), outputPath)
			fmt.Printf("%s Remember to set api.base_url before submitting\n", GetEmoji("config"))

			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path for config file (default: .bfhlctl.yaml)")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "create minimal configuration")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing config file")

	return initCmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var (
		format     string
		configPath string
	)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the current effective configuration after loading from all sources.

Shows the merged configuration from all sources including defaults,
config files, and environment variable overrides.`,
		Example: `  # Show config in YAML format
  bfhlctl config show

  # Show config in JSON format
  bfhlctl config show --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader()
			cfg, err := loader.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			switch format {
			case "json":
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal config to JSON: %w", err)
				}
				fmt.Println(string(data))
			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal config to YAML: %w", err)
				}
				fmt.Print(string(data))
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
			}

			return nil
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")
	showCmd.Flags().StringVar(&configPath, "config-file", "", "path to config file")

	return showCmd
}

// newConfigValidateCommand creates the config validate subcommand
func newConfigValidateCommand() *cobra.Command {
	var configPath string

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate a bfhlctl configuration file for syntax and semantic errors.

Checks the configuration file for:
- Valid YAML syntax
- Valid values for enums
- Proper data types`,
		Example: `  # Validate current config
  bfhlctl config validate

  # Validate specific config file
  bfhlctl config validate --config-file /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader()
			cfg, err := loader.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("%s Configuration validation failed:\n", GetEmoji("error"))
				fmt.Printf("   %v\n", err)
				return err
			}

			fmt.Printf("%s Configuration is valid\n", GetEmoji("success"))

			fmt.Printf("%s Configuration summary:\n", GetEmoji("config"))
			fmt.Printf("   Version: %s\n", cfg.Version)
			fmt.Printf("   API Base URL: %s\n", orUnset(cfg.API.BaseURL))
			fmt.Printf("   Output Format: %s\n", cfg.Output.DefaultFormat)
			fmt.Printf("   Theme: %s\n", cfg.UI.Theme)

			return nil
		},
	}

	validateCmd.Flags().StringVar(&configPath, "config-file", "", "path to config file")

	return validateCmd
}

// newConfigPathCommand creates the config path subcommand
func newConfigPathCommand() *cobra.Command {
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show configuration file search paths",
		Long: `Display the list of paths bfhlctl searches for configuration files.

Shows the search order and indicates which files exist.`,
		Example: `  # Show config search paths
  bfhlctl config path`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s Configuration file search paths (in priority order):\n\n", GetEmoji("file"))

			paths := config.GetConfigPaths()
			for i, path := range paths {
				exists := GetEmoji("error") + " (not found)"
				if fileExists(path) {
					exists = GetEmoji("success") + " (exists)"
				}
				fmt.Printf("  %d. %s %s\n", i+1, path, exists)
			}
			fmt.Println()

			if currentConfig, found := config.FindConfigFile(); found {
				fmt.Printf("%s Current config file: %s\n", GetEmoji("target"), currentConfig)
			} else {
				fmt.Printf("%s No config file found, using defaults\n", GetEmoji("info"))
			}

			fmt.Println()
			fmt.Println("Environment variables with BFHLCTL_ prefix override file settings")
		},
	}

	return pathCmd
}

// Helper function to check if file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// orUnset substitutes a placeholder for an empty value
func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
