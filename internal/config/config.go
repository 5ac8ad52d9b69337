package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	API     APIConfig     `yaml:"api" json:"api"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
	History HistoryConfig `yaml:"history" json:"history"`
}

// APIConfig configures the BFHL endpoint connection
type APIConfig struct {
	BaseURL string        `yaml:"base_url" json:"base_url"` // API root; /bfhl is appended per request
	Timeout time.Duration `yaml:"timeout" json:"timeout"`   // one-shot request timeout; 0 waits forever
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // terminal|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Emoji         bool   `yaml:"emoji" json:"emoji"`                   // emoji in status lines
}

// UIConfig configures the interactive form
type UIConfig struct {
	Theme         string        `yaml:"theme" json:"theme"`                   // default|dark|light
	ToastDuration time.Duration `yaml:"toast_duration" json:"toast_duration"` // how long toasts stay visible
}

// HistoryConfig configures the submission history log
type HistoryConfig struct {
	Disabled   bool   `yaml:"disabled" json:"disabled"`
	File       string `yaml:"file" json:"file"`
	MaxEntries int    `yaml:"max_entries" json:"max_entries"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		API: APIConfig{
			BaseURL: "",
			Timeout: 30 * time.Second,
		},
		Output: OutputConfig{
			DefaultFormat: "terminal",
			ColorMode:     "auto",
			Emoji:         true,
		},
		UI: UIConfig{
			Theme:         "default",
			ToastDuration: 3 * time.Second,
		},
		History: HistoryConfig{
			Disabled:   false,
			File:       "~/.local/share/bfhlctl/history.jsonl",
			MaxEntries: 1000,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateAPIConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateHistoryConfig(); err != nil {
		return err
	}
	return nil
}

// validateAPIConfig validates endpoint-related configuration
func (c *Config) validateAPIConfig() error {
	if c.API.Timeout < 0 {
		return fmt.Errorf("api timeout must be non-negative")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"terminal": true,
			"json":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: terminal, json, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateUIConfig validates form-related configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default": true,
			"dark":    true,
			"light":   true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, dark, light)", c.UI.Theme)
		}
	}
	if c.UI.ToastDuration < 0 {
		return fmt.Errorf("toast_duration must be non-negative")
	}
	return nil
}

// validateHistoryConfig validates history log configuration
func (c *Config) validateHistoryConfig() error {
	if c.History.MaxEntries < 1 {
		return fmt.Errorf("history max_entries must be greater than 0")
	}
	return nil
}

// SampleConfig returns a full example configuration file with comments
func SampleConfig() string {
	return `# bfhlctl configuration file
version: "1.0"

api:
  # Base URL of the BFHL API. The /bfhl path is appended per request.
  # Required for send, watch and the interactive form.
  base_url: "https://api.example.com"
  # Timeout for one-shot submissions (send, watch). The interactive form
  # waits indefinitely. 0 disables the timeout.
  timeout: 30s

output:
  # Default output format: terminal, json, markdown, csv
  default_format: terminal
  # Color mode: auto, always, never
  color_mode: auto
  # Emoji in status lines (falls back to ASCII tags when disabled)
  emoji: true

ui:
  # Form theme: default, dark, light
  theme: default
  # How long success/failure toasts stay visible in the form
  toast_duration: 3s

history:
  # Set to true to stop recording submissions
  disabled: false
  # JSON-lines log of completed submissions
  file: "~/.local/share/bfhlctl/history.jsonl"
  # Oldest entries are dropped beyond this count
  max_entries: 1000
`
}

// MinimalSampleConfig returns a compact example configuration file
func MinimalSampleConfig() string {
	return `# bfhlctl configuration
version: "1.0"

api:
  base_url: "https://api.example.com"

output:
  default_format: terminal
`
}
