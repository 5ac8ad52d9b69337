package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/bfhlctl/internal/bfhl"
	"github.com/yildizm/bfhlctl/internal/history"
)

// Message types shared across the form model
type submitResultMsg struct {
	record *bfhl.Record
}

type submitErrorMsg struct {
	record *bfhl.Record
	err    error
}

type toastExpiredMsg struct {
	seq int
}

// createSubmitCommand creates a tea command that performs one submission.
// The raw text goes out byte-for-byte; the completed attempt is recorded
// to history either way. No timeout is applied: a hung request keeps the
// form's loading state up.
func createSubmitCommand(client *bfhl.Client, raw string, options []bfhl.Option, store *history.Store) tea.Cmd {
	return func() tea.Msg {
		started := time.Now()

		resp, err := client.Submit(context.Background(), []byte(raw))
		record := bfhl.NewRecord(client.Endpoint(), options, resp, err, started)

		if store != nil {
			// History failures never fail the submission
			_ = store.Append(record)
		}

		if err != nil {
			return submitErrorMsg{record: record, err: err}
		}
		return submitResultMsg{record: record}
	}
}

// expireToastCommand clears the toast banner after the configured duration.
// The sequence number guards against a stale timer clearing a newer toast.
func expireToastCommand(duration time.Duration, seq int) tea.Cmd {
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
