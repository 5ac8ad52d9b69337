package bfhl

import (
	"reflect"
	"testing"
)

func TestOptionSetToggle(t *testing.T) {
	set := NewOptionSet()

	set.Toggle(OptionNumbers)
	if !set.Has(OptionNumbers) {
		t.Error("Expected numbers to be selected after toggle")
	}

	set.Toggle(OptionNumbers)
	if set.Has(OptionNumbers) {
		t.Error("Expected numbers to be deselected after second toggle")
	}
	if len(set) != 0 {
		t.Errorf("Expected empty set after involution, got %d members", len(set))
	}
}

func TestOptionSetToggleInvolution(t *testing.T) {
	// Toggling any name twice restores the original set.
	set := NewOptionSet(OptionAlphabets)

	for _, name := range []Option{OptionAlphabets, OptionNumbers, OptionHighest, "bogus"} {
		set.Toggle(name)
		set.Toggle(name)

		if !set.Has(OptionAlphabets) || len(set) != 1 {
			t.Errorf("Double toggle of %q changed the set: %v", name, set)
		}
	}
}

func TestOptionSetUnrecognizedNames(t *testing.T) {
	set := NewOptionSet()
	set.Toggle("prime")

	if !set.Has("prime") {
		t.Error("Expected unrecognized name to be stored")
	}

	// Unrecognized members never appear in the display-ordered selection.
	if selected := set.Selected(); len(selected) != 0 {
		t.Errorf("Expected no recognized selections, got %v", selected)
	}
}

func TestOptionSetSelectedOrder(t *testing.T) {
	// Selection order follows the fixed display order, not toggle order.
	set := NewOptionSet()
	set.Toggle(OptionHighest)
	set.Toggle(OptionNumbers)
	set.Toggle(OptionAlphabets)

	want := []Option{OptionAlphabets, OptionNumbers, OptionHighest}
	if got := set.Selected(); !reflect.DeepEqual(got, want) {
		t.Errorf("Selected() = %v, want %v", got, want)
	}
}

func TestKnownOption(t *testing.T) {
	for _, opt := range DisplayOrder {
		if !KnownOption(opt) {
			t.Errorf("Expected %q to be a known option", opt)
		}
	}
	if KnownOption("prime") {
		t.Error("Expected 'prime' to be unknown")
	}
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		list string
		want []Option
	}{
		{
			name: "single option",
			list: "numbers",
			want: []Option{OptionNumbers},
		},
		{
			name: "multiple with spaces",
			list: "alphabets, numbers ,highest",
			want: []Option{OptionAlphabets, OptionNumbers, OptionHighest},
		},
		{
			name: "uppercase normalized",
			list: "Numbers,HIGHEST",
			want: []Option{OptionNumbers, OptionHighest},
		},
		{
			name: "unrecognized kept",
			list: "numbers,prime",
			want: []Option{OptionNumbers, "prime"},
		},
		{
			name: "empty parts dropped",
			list: ",numbers,,",
			want: []Option{OptionNumbers},
		},
		{
			name: "empty list",
			list: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOptions(tt.list)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseOptions(%q) = %v, want %v", tt.list, got, tt.want)
			}
		})
	}
}
