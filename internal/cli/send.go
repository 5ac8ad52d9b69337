package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/bfhlctl/internal/bfhl"
	"github.com/yildizm/bfhlctl/internal/config"
	"github.com/yildizm/bfhlctl/internal/history"
)

var (
	sendShow       string
	sendOutputFile string
	sendTimeout    time.Duration
)

func newSendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [file]",
		Short: "Submit a payload from a file or stdin",
		Long: `Submit a JSON payload to the BFHL endpoint and print the response.

The payload is read from the file argument, or from stdin when no file
(or "-") is given. It is sent exactly as read, byte-for-byte. The payload
must be a JSON object with an array "data" field; invalid payloads are
rejected before any network call.

Examples:
  bfhlctl send payload.json
  bfhlctl send --show numbers,highest payload.json
  echo '{"data": ["A", "1"]}' | bfhlctl send
  bfhlctl send --format json --output result.json payload.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSend,
	}

	cmd.Flags().StringVar(&sendShow, "show", "alphabets,numbers,highest", "result blocks to display (comma-separated)")
	cmd.Flags().StringVarP(&sendOutputFile, "output", "o", "", "save output to file instead of stdout")
	cmd.Flags().DurationVar(&sendTimeout, "timeout", 0, "request timeout (default from config; 0 waits forever)")

	return cmd
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	if !cmd.Flag("timeout").Changed {
		sendTimeout = cfg.API.Timeout
	}

	raw, err := readPayload(args)
	if err != nil {
		return err
	}

	options := bfhl.ParseOptions(sendShow)

	record, err := submitPayload(cfg, raw, options, sendTimeout)
	if record != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", GetStatusEmoji(record.Succeeded()), statusLine(record))

		output, ferr := formatRecord(record)
		if ferr != nil {
			return ferr
		}
		if werr := handleOutputDestination(output, sendOutputFile); werr != nil {
			return werr
		}
	}

	return err
}

// submitPayload performs one submission and records the completed attempt.
// It always returns a record when the attempt ran, success or not.
func submitPayload(cfg *config.Config, raw []byte, options []bfhl.Option, timeout time.Duration) (*bfhl.Record, error) {
	client, err := bfhl.NewClient(&bfhl.ClientConfig{BaseURL: cfg.API.BaseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	started := time.Now()
	resp, submitErr := client.Submit(ctx, raw)
	record := bfhl.NewRecord(client.Endpoint(), options, resp, submitErr, started)

	store := history.NewStore(cfg.History)
	if herr := store.Append(record); herr != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to record history: %v\n", herr)
	}

	return record, submitErr
}

// statusLine summarizes a submission outcome for stderr
func statusLine(record *bfhl.Record) string {
	if record.Succeeded() {
		return fmt.Sprintf("Data processed successfully (%s)", record.Duration.Round(time.Millisecond))
	}
	return record.Error
}

// formatRecord renders a record with the effective output format
func formatRecord(record *bfhl.Record) ([]byte, error) {
	formatterInstance, err := getFormatter(getOutputFormat(), useColor())
	if err != nil {
		return nil, fmt.Errorf("failed to get formatter: %w", err)
	}

	output, err := formatterInstance.Format(record)
	if err != nil {
		return nil, fmt.Errorf("failed to format output: %w", err)
	}

	return output, nil
}

// readPayload reads the raw payload from a file argument or stdin
func readPayload(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		if isVerbose() {
			fmt.Fprintf(os.Stderr, "Reading payload from stdin...\n")
		}
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return raw, nil
	}

	filename := args[0]
	if err := validateFilePath(filename); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	cleanPath := filepath.Clean(filename)

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Reading payload from: %s\n", cleanPath)
	}

	// #nosec G304 - path is validated above
	raw, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return raw, nil
}

// handleOutputDestination writes output to file or stdout
func handleOutputDestination(output []byte, outputFile string) error {
	if outputFile == "" {
		fmt.Print(string(output))
		return nil
	}

	cleanPath := filepath.Clean(outputFile)
	if err := os.WriteFile(cleanPath, output, 0o600); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Output saved to: %s\n", cleanPath)
	}
	return nil
}

func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}
