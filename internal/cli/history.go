package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yildizm/bfhlctl/internal/history"
)

var (
	historyLimit int
)

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past submissions",
		Long: `List recorded submissions from the history log, newest first.

The log records completed attempts only; nothing is ever resubmitted
from it. Recording can be disabled in the configuration.

Examples:
  bfhlctl history
  bfhlctl history --limit 5
  bfhlctl history --format csv`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to list (0 for all)")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	store := history.NewStore(cfg.History)
	records, err := store.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "History log: %s (%d entries shown)\n", store.Path(), len(records))
	}

	formatterInstance, err := getListFormatter(getOutputFormat(), useColor())
	if err != nil {
		return fmt.Errorf("failed to get formatter: %w", err)
	}

	output, err := formatterInstance.FormatList(records)
	if err != nil {
		return fmt.Errorf("failed to format history: %w", err)
	}

	fmt.Print(string(output))
	return nil
}
