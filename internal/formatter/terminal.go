package formatter

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/yildizm/bfhlctl/internal/bfhl"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats a submission record for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(record *bfhl.Record) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeSubmission(&b, record)

	if record.Error != "" {
		f.writeError(&b, record)
	}

	if record.Response != nil {
		f.writeResults(&b, record)
		f.writeIdentity(&b, record.Response)
		f.writeFileInfo(&b, record.Response)
	}

	return []byte(b.String()), nil
}

// FormatList renders a history listing, newest first
func (f *terminalFormatter) FormatList(records []*bfhl.Record) ([]byte, error) {
	var b strings.Builder

	if len(records) == 0 {
		b.WriteString("No submissions recorded.\n")
		return []byte(b.String()), nil
	}

	for _, record := range records {
		status := "ok"
		detail := ""
		if record.Error != "" {
			status = "failed"
			detail = " - " + record.Error
		}
		fmt.Fprintf(&b, "%s  %-6s  %s%s\n",
			humanize.Time(record.SubmittedAt), status, record.Endpoint, detail)
	}

	return []byte(b.String()), nil
}

// writeHeader writes a box-drawn header to match the analysis summary style
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "BFHL Submission"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeSubmission writes the submission metadata with tree-style formatting
func (f *terminalFormatter) writeSubmission(b *strings.Builder, record *bfhl.Record) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Submission\n")

	items := []termfmt.TreeItem{
		{Label: "Endpoint", Value: record.Endpoint},
		{Label: "Submitted", Value: record.SubmittedAt.Format("2006-01-02 15:04:05")},
		{Label: "Duration", Value: record.Duration.String()},
		{Label: "Request ID", Value: record.ID, Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeError writes the failure line for an unsuccessful submission
func (f *terminalFormatter) writeError(b *strings.Builder, record *bfhl.Record) {
	symbol := termfmt.GetEmoji("help", f.opts)
	b.WriteString(symbol + " Error\n")
	b.WriteString("└─ " + record.Error + "\n\n")
}

// writeResults writes the selected result blocks in fixed display order
func (f *terminalFormatter) writeResults(b *strings.Builder, record *bfhl.Record) {
	blocks := bfhl.ResultBlocks(record.Response, bfhl.NewOptionSet(record.Options...))
	if len(blocks) == 0 {
		return
	}

	symbol := termfmt.GetEmoji("summary", f.opts)
	b.WriteString(symbol + " Results\n")

	items := make([]termfmt.TreeItem, 0, len(blocks))
	for i, block := range blocks {
		items = append(items, termfmt.TreeItem{
			Label: block.Label,
			Value: block.Value,
			Last:  i == len(blocks)-1,
		})
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeIdentity writes the user identifiers from the response
func (f *terminalFormatter) writeIdentity(b *strings.Builder, resp *bfhl.Response) {
	symbol := termfmt.GetEmoji("insights", f.opts)
	b.WriteString(symbol + " Identity\n")

	items := []termfmt.TreeItem{
		{Label: "User ID", Value: orNA(resp.UserID)},
		{Label: "Email", Value: orNA(resp.Email)},
		{Label: "Roll Number", Value: orNA(resp.RollNumber)},
		{Label: "Prime Found", Value: fmt.Sprintf("%t", resp.IsPrimeFound), Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeFileInfo writes file metadata when the payload carried a file
func (f *terminalFormatter) writeFileInfo(b *strings.Builder, resp *bfhl.Response) {
	if resp.FileMimeType == "" && resp.FileSizeKB == 0 && !resp.FileValid {
		return
	}

	symbol := termfmt.GetEmoji("recommendations", f.opts)
	b.WriteString(symbol + " File\n")

	items := []termfmt.TreeItem{
		{Label: "Valid", Value: fmt.Sprintf("%t", resp.FileValid)},
		{Label: "MIME Type", Value: orNA(resp.FileMimeType)},
		{Label: "Size", Value: humanize.Bytes(uint64(resp.FileSizeKB * 1024)), Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// orNA substitutes a placeholder for empty values
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
