package formatter

import "github.com/yildizm/bfhlctl/internal/bfhl"

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(record *bfhl.Record) ([]byte, error)
}

// ListFormatter is implemented by formatters that can render a batch of
// records, used by the history listing
type ListFormatter interface {
	FormatList(records []*bfhl.Record) ([]byte, error)
}
