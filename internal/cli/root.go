package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yildizm/bfhlctl/internal/config"
	"github.com/yildizm/bfhlctl/internal/emoji"
	"github.com/yildizm/bfhlctl/internal/logger"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string
)

// globalConfig is loaded once in PersistentPreRunE and shared by subcommands
var globalConfig = config.DefaultConfig()

// GetGlobalConfig returns the effective configuration
func GetGlobalConfig() *config.Config {
	return globalConfig
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bfhlctl",
		Short: "Terminal client for the BFHL classification API",
		Long: `bfhlctl submits JSON payloads to the BFHL classification API and renders
selected fields of the response.

Payloads are sent exactly as entered, byte-for-byte. Use the interactive
form for exploratory work, or send/watch for scripted submissions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}

			logger.SetVerboseChecker(isVerbose)

			loader := config.NewLoader()
			cfg, err := loader.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			globalConfig = cfg

			if !cmd.Flag("no-emoji").Changed {
				noEmoji = !cfg.Output.Emoji
			}
			emoji.SetEmojiDisabled(noEmoji)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "format", "f", "", "output format (terminal, json, markdown, csv)")

	// Add subcommands
	rootCmd.AddCommand(newFormCommand())
	rootCmd.AddCommand(newSendCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			fmt.Printf("bfhlctl %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func getOutputFormat() string {
	if outputFmt != "" {
		return outputFmt
	}
	return globalConfig.Output.DefaultFormat
}

func useColor() bool {
	return !noColor && globalConfig.Output.ColorMode != "never"
}
