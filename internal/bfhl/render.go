package bfhl

import "strings"

// Block is one labeled section of rendered results
type Block struct {
	Label string
	Value string
}

// blockLabels maps options to their display labels
var blockLabels = map[Option]string{
	OptionAlphabets: "Alphabets",
	OptionNumbers:   "Numbers",
	OptionHighest:   "Highest Lowercase Alphabet",
}

// ResultBlocks produces the labeled blocks for the selected options.
// It is a pure function of the response and the selection: without a
// response it produces nothing, block order follows DisplayOrder, and
// repeated calls with the same state yield the same output.
func ResultBlocks(resp *Response, selected OptionSet) []Block {
	if resp == nil {
		return nil
	}

	var blocks []Block
	for _, opt := range DisplayOrder {
		if !selected.Has(opt) {
			continue
		}
		blocks = append(blocks, Block{
			Label: blockLabels[opt],
			Value: joinOrNone(sequenceFor(resp, opt)),
		})
	}
	return blocks
}

// sequenceFor picks the response sequence an option displays
func sequenceFor(resp *Response, opt Option) []string {
	switch opt {
	case OptionAlphabets:
		return resp.Alphabets
	case OptionNumbers:
		return resp.Numbers
	case OptionHighest:
		return resp.HighestLowercaseAlphabet
	default:
		return nil
	}
}

// joinOrNone joins a sequence with ", ", or returns the empty placeholder
func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
