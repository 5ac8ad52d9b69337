package formatter

import (
	"encoding/json"

	"github.com/yildizm/bfhlctl/internal/bfhl"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(record *bfhl.Record) ([]byte, error) {
	output := newRecordOutput(record)
	return json.MarshalIndent(output, "", "  ")
}

// FormatList renders a history listing as a JSON array
func (f *jsonFormatter) FormatList(records []*bfhl.Record) ([]byte, error) {
	outputs := make([]*recordOutput, 0, len(records))
	for _, record := range records {
		outputs = append(outputs, newRecordOutput(record))
	}
	return json.MarshalIndent(outputs, "", "  ")
}

// recordOutput is the JSON shape of one submission, with the rendered
// result blocks alongside the raw response
type recordOutput struct {
	*bfhl.Record
	DurationHuman string        `json:"duration_human"`
	Blocks        []blockOutput `json:"blocks,omitempty"`
}

type blockOutput struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func newRecordOutput(record *bfhl.Record) *recordOutput {
	output := &recordOutput{
		Record:        record,
		DurationHuman: record.Duration.String(),
	}

	blocks := bfhl.ResultBlocks(record.Response, bfhl.NewOptionSet(record.Options...))
	for _, block := range blocks {
		output.Blocks = append(output.Blocks, blockOutput{Label: block.Label, Value: block.Value})
	}

	return output
}
