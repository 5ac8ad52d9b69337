package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.bfhlctl.yaml",               // Project-specific config (highest priority)
	"~/.config/bfhlctl/config.yaml", // User config
	"~/.bfhlctl.yaml",               // Home dot-file (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables
// 3. ./.bfhlctl.yaml
// 4. ~/.config/bfhlctl/config.yaml
// 5. ~/.bfhlctl.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// If custom path is provided, use only that path
	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load from standard paths in reverse priority order (lowest to highest)
		paths := make([]string, len(l.configPaths))
		copy(paths, l.configPaths)
		for i := len(paths)/2 - 1; i >= 0; i-- {
			opp := len(paths) - 1 - i
			paths[i], paths[opp] = paths[opp], paths[i]
		}

		for _, path := range paths {
			expandedPath := expandPath(path)
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					// Log warning but continue with other config files
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	// Apply environment variable overrides
	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	// Validate the final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() before reaching here
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		// API Config
		"BFHLCTL_API_BASE_URL": func(v string) error { config.API.BaseURL = v; return nil },
		"BFHLCTL_API_TIMEOUT":  func(v string) error { return parseDuration(v, &config.API.Timeout) },

		// Output Config
		"BFHLCTL_OUTPUT_DEFAULT_FORMAT": func(v string) error { config.Output.DefaultFormat = v; return nil },
		"BFHLCTL_OUTPUT_COLOR_MODE":     func(v string) error { config.Output.ColorMode = v; return nil },
		"BFHLCTL_OUTPUT_EMOJI":          func(v string) error { return parseBool(v, &config.Output.Emoji) },

		// UI Config
		"BFHLCTL_UI_THEME":          func(v string) error { config.UI.Theme = v; return nil },
		"BFHLCTL_UI_TOAST_DURATION": func(v string) error { return parseDuration(v, &config.UI.ToastDuration) },

		// History Config
		"BFHLCTL_HISTORY_DISABLED":    func(v string) error { return parseBool(v, &config.History.Disabled) },
		"BFHLCTL_HISTORY_FILE":        func(v string) error { config.History.File = v; return nil },
		"BFHLCTL_HISTORY_MAX_ENTRIES": func(v string) error { return parseInt(v, &config.History.MaxEntries) },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	// Ensure it's a YAML file
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config
// Only non-zero values from source overwrite destination
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeAPIConfig(&dst.API, &src.API)
	mergeOutputConfig(&dst.Output, &src.Output)
	mergeUIConfig(&dst.UI, &src.UI)
	mergeHistoryConfig(&dst.History, &src.History)
}

// mergeAPIConfig merges endpoint configuration
func mergeAPIConfig(dst, src *APIConfig) {
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
}

// mergeOutputConfig merges output configuration
func mergeOutputConfig(dst, src *OutputConfig) {
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	mergeIfSet(&dst.Emoji, src.Emoji)
}

// mergeUIConfig merges form configuration
func mergeUIConfig(dst, src *UIConfig) {
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.ToastDuration != 0 {
		dst.ToastDuration = src.ToastDuration
	}
}

// mergeHistoryConfig merges history configuration
func mergeHistoryConfig(dst, src *HistoryConfig) {
	if src.Disabled {
		dst.Disabled = src.Disabled
	}
	if src.File != "" {
		dst.File = src.File
	}
	if src.MaxEntries != 0 {
		dst.MaxEntries = src.MaxEntries
	}
}

// mergeIfSet only overwrites when the source value is true, since YAML
// cannot distinguish an absent bool from an explicit false here
func mergeIfSet(dst *bool, src bool) {
	if src {
		*dst = src
	}
}

func parseInt(s string, dst *int) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parseBool(s string, dst *bool) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// ExpandPath exposes tilde expansion for paths stored in the config
func ExpandPath(path string) string {
	return expandPath(path)
}
