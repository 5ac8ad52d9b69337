package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/bfhlctl/internal/bfhl"
	"github.com/yildizm/bfhlctl/internal/logger"
)

var (
	watchShow    string
	watchTimeout time.Duration
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Watch a payload file and resubmit on every change",
		Long: `Monitor a payload file and submit its contents on every write.

Uses file system notifications to detect changes. Each write triggers one
immediate submission of the whole file; nothing is queued or retried.
Press Ctrl+C to stop watching.

Examples:
  bfhlctl watch payload.json
  bfhlctl watch --show numbers payload.json`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().StringVar(&watchShow, "show", "alphabets,numbers,highest", "result blocks to display (comma-separated)")
	cmd.Flags().DurationVar(&watchTimeout, "timeout", 0, "per-submission timeout (default from config; 0 waits forever)")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if !cmd.Flag("timeout").Changed {
		watchTimeout = GetGlobalConfig().API.Timeout
	}

	watcher, cleanup, err := setupFileWatcher(filename)
	if err != nil {
		return err
	}
	defer cleanup()

	return runWatchLoop(watcher, filename)
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}

// setupFileWatcher creates and configures a file system watcher
func setupFileWatcher(filename string) (*fsnotify.Watcher, func(), error) {
	if err := validateWatchFilePath(filename); err != nil {
		return nil, nil, fmt.Errorf("invalid file path: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Watching file: %s\n", filename)
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filename); err != nil {
		cleanupWatcher(watcher)
		return nil, nil, fmt.Errorf("failed to watch file: %w", err)
	}

	cleanup := func() {
		cleanupWatcher(watcher)
	}

	return watcher, cleanup, nil
}

// runWatchLoop runs the main watch loop with signal handling
func runWatchLoop(watcher *fsnotify.Watcher, filename string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	log := logger.Default("watch")

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "\nReceived interrupt signal, stopping...\n")
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if err := handleWatchEvent(event, filename); err != nil {
				log.Warn("event handling failed", logger.Err(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Warn("watcher error", logger.Err(err))
		}
	}
}

// handleWatchEvent submits the file contents on write events
func handleWatchEvent(event fsnotify.Event, filename string) error {
	// Only process write events
	if event.Op&fsnotify.Write != fsnotify.Write {
		return nil
	}

	raw, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	cfg := GetGlobalConfig()
	options := bfhl.ParseOptions(watchShow)

	record, _ := submitPayload(cfg, raw, options, watchTimeout)
	if record == nil {
		return fmt.Errorf("submission did not run")
	}

	timestamp := record.SubmittedAt.Format("15:04:05")
	fmt.Printf("[%s] %s %s\n", timestamp, GetStatusEmoji(record.Succeeded()), statusLine(record))

	return nil
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
