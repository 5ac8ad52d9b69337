package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/bfhlctl/internal/bfhl"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(record *bfhl.Record) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# BFHL Submission Report\n\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	f.writeSubmissionTable(&b, record)

	if record.Error != "" {
		b.WriteString("## Error\n\n")
		b.WriteString(fmt.Sprintf("> %s\n\n", record.Error))
	}

	if record.Response != nil {
		f.writeResults(&b, record)
		f.writeIdentity(&b, record.Response)
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeSubmissionTable(b *strings.Builder, record *bfhl.Record) {
	b.WriteString("## Submission\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	fmt.Fprintf(b, "| Endpoint | %s |\n", record.Endpoint)
	fmt.Fprintf(b, "| Submitted | %s |\n", record.SubmittedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "| Duration | %s |\n", record.Duration)
	fmt.Fprintf(b, "| Request ID | %s |\n", record.ID)
	b.WriteString("\n")
}

func (f *markdownFormatter) writeResults(b *strings.Builder, record *bfhl.Record) {
	blocks := bfhl.ResultBlocks(record.Response, bfhl.NewOptionSet(record.Options...))
	if len(blocks) == 0 {
		return
	}

	b.WriteString("## Results\n\n")
	for _, block := range blocks {
		fmt.Fprintf(b, "- **%s**: %s\n", block.Label, block.Value)
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeIdentity(b *strings.Builder, resp *bfhl.Response) {
	b.WriteString("## Identity\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	fmt.Fprintf(b, "| User ID | %s |\n", orNA(resp.UserID))
	fmt.Fprintf(b, "| Email | %s |\n", orNA(resp.Email))
	fmt.Fprintf(b, "| Roll Number | %s |\n", orNA(resp.RollNumber))
	fmt.Fprintf(b, "| Prime Found | %t |\n", resp.IsPrimeFound)
	b.WriteString("\n")
}
