package cli

import (
	"fmt"

	"github.com/yildizm/bfhlctl/internal/formatter"
)

// getFormatter returns the appropriate formatter for the given format
func getFormatter(format string, color bool) (formatter.Formatter, error) {
	switch format {
	case "json":
		return formatter.NewJSON(), nil
	case "markdown", "md":
		return formatter.NewMarkdown(), nil
	case "csv":
		return formatter.NewCSV(), nil
	case "terminal", "text", "":
		return formatter.NewTerminal(color), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// getListFormatter returns a formatter capable of rendering a batch of records
func getListFormatter(format string, color bool) (formatter.ListFormatter, error) {
	f, err := getFormatter(format, color)
	if err != nil {
		return nil, err
	}
	lf, ok := f.(formatter.ListFormatter)
	if !ok {
		return nil, fmt.Errorf("format %s cannot render listings", format)
	}
	return lf, nil
}
