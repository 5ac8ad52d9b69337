package bfhl

import "strings"

// Option names a result category the user can choose to display
type Option string

const (
	OptionAlphabets Option = "alphabets"
	OptionNumbers   Option = "numbers"
	OptionHighest   Option = "highest"
)

// DisplayOrder fixes the order result blocks are rendered in,
// independent of the order options were toggled.
var DisplayOrder = [...]Option{OptionAlphabets, OptionNumbers, OptionHighest}

// OptionSet tracks which result categories are selected.
// Only membership matters; unrecognized names may be stored but are
// never matched by the renderer.
type OptionSet map[Option]bool

// NewOptionSet creates a set with the given options selected
func NewOptionSet(options ...Option) OptionSet {
	set := make(OptionSet, len(options))
	for _, opt := range options {
		set[opt] = true
	}
	return set
}

// Toggle flips membership: adds the name if absent, removes it if present
func (s OptionSet) Toggle(name Option) {
	if s[name] {
		delete(s, name)
	} else {
		s[name] = true
	}
}

// Has reports whether the name is currently selected
func (s OptionSet) Has(name Option) bool {
	return s[name]
}

// Selected returns the recognized selected options in display order
func (s OptionSet) Selected() []Option {
	var selected []Option
	for _, opt := range DisplayOrder {
		if s[opt] {
			selected = append(selected, opt)
		}
	}
	return selected
}

// KnownOption reports whether the name is one of the renderable categories
func KnownOption(name Option) bool {
	for _, opt := range DisplayOrder {
		if name == opt {
			return true
		}
	}
	return false
}

// ParseOptions splits a comma-separated option list as given on the
// command line. Names are trimmed and lowercased; unrecognized names are
// kept, matching the toggle behavior of the interactive form.
func ParseOptions(list string) []Option {
	var options []Option
	for _, part := range strings.Split(list, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		options = append(options, Option(name))
	}
	return options
}
