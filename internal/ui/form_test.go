package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/bfhlctl/internal/bfhl"
)

func newTestModel(t *testing.T) *FormModel {
	t.Helper()

	client, err := bfhl.NewClient(&bfhl.ClientConfig{BaseURL: "http://localhost:9"})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return NewFormModel(client, nil, 3*time.Second)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleInvolution(t *testing.T) {
	m := newTestModel(t)
	m.textarea.Blur()

	if m.options.Has(bfhl.OptionNumbers) {
		t.Fatal("Expected numbers unselected initially")
	}

	m.Update(keyMsg("2"))
	if !m.options.Has(bfhl.OptionNumbers) {
		t.Error("Expected numbers selected after one toggle")
	}

	m.Update(keyMsg("2"))
	if m.options.Has(bfhl.OptionNumbers) {
		t.Error("Expected numbers unselected after two toggles")
	}
}

func TestTogglesIgnoredWhileTextareaFocused(t *testing.T) {
	m := newTestModel(t)

	// Textarea starts focused; the digit goes into the input
	m.Update(keyMsg("2"))
	if m.options.Has(bfhl.OptionNumbers) {
		t.Error("Digit keys should edit the payload while the textarea is focused")
	}
	if !strings.Contains(m.textarea.Value(), "2") {
		t.Errorf("Expected digit in textarea, got %q", m.textarea.Value())
	}
}

func TestSubmitSetsLoadingAndClearsError(t *testing.T) {
	m := newTestModel(t)
	m.errMsg = "previous error"

	_, cmd := m.handleSubmit()
	if !m.loading {
		t.Error("Expected loading flag set after submit")
	}
	if m.errMsg != "" {
		t.Error("Expected error message cleared at the start of an attempt")
	}
	if cmd == nil {
		t.Error("Expected a submit command")
	}
}

func TestSubmitDisabledWhileLoading(t *testing.T) {
	m := newTestModel(t)
	m.loading = true

	_, cmd := m.handleSubmit()
	if cmd != nil {
		t.Error("Expected no command while a request is in flight")
	}
}

func TestTogglesResponsiveWhileLoading(t *testing.T) {
	m := newTestModel(t)
	m.textarea.Blur()
	m.loading = true

	m.Update(keyMsg("3"))
	if !m.options.Has(bfhl.OptionHighest) {
		t.Error("Option toggles should stay responsive while loading")
	}
}

func TestSubmitResultReplacesResponse(t *testing.T) {
	m := newTestModel(t)
	m.loading = true
	m.response = &bfhl.Response{UserID: "old"}

	resp := &bfhl.Response{UserID: "new", Numbers: []string{"1"}}
	m.Update(submitResultMsg{record: &bfhl.Record{Response: resp}})

	if m.loading {
		t.Error("Expected loading cleared on success")
	}
	if m.response.UserID != "new" {
		t.Error("Expected response replaced wholesale")
	}
	if m.toast != "Data processed successfully" {
		t.Errorf("Expected success toast, got %q", m.toast)
	}
}

func TestSubmitErrorRetainsStaleResponse(t *testing.T) {
	m := newTestModel(t)
	m.loading = true
	m.response = &bfhl.Response{UserID: "stale"}

	m.Update(submitErrorMsg{
		record: &bfhl.Record{Error: "request failed with status 500"},
		err:    bfhl.NewTransportError(500),
	})

	if m.loading {
		t.Error("Expected loading cleared on failure")
	}
	if m.response == nil || m.response.UserID != "stale" {
		t.Error("Expected the previous response retained after a failure")
	}
	if !strings.Contains(m.errMsg, "500") {
		t.Errorf("Expected error message with status, got %q", m.errMsg)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	m := newTestModel(t)
	m.loading = true

	m.Update(submitErrorMsg{
		record: &bfhl.Record{Error: "Invalid JSON input"},
		err:    bfhl.NewMalformedInputError(),
	})

	if m.errMsg != "Invalid JSON input" {
		t.Errorf("Expected fixed invalid-JSON message, got %q", m.errMsg)
	}
}

func TestToastSequenceGuard(t *testing.T) {
	m := newTestModel(t)

	m.showToast("first", toastSuccess)
	staleSeq := m.toastSeq
	m.showToast("second", toastSuccess)

	// A stale timer must not clear a newer toast
	m.Update(toastExpiredMsg{seq: staleSeq})
	if m.toast != "second" {
		t.Errorf("Stale expiry cleared a newer toast, got %q", m.toast)
	}

	m.Update(toastExpiredMsg{seq: m.toastSeq})
	if m.toast != "" {
		t.Errorf("Expected toast cleared, got %q", m.toast)
	}
}

func TestUnknownErrorFallback(t *testing.T) {
	m := newTestModel(t)
	m.loading = true

	m.Update(submitErrorMsg{
		record: &bfhl.Record{Error: "Unknown error"},
		err:    bfhl.NewUnknownError(errors.New("")),
	})

	if m.errMsg != "Unknown error" {
		t.Errorf("Expected unknown-error fallback, got %q", m.errMsg)
	}
}

func TestViewRendersSelectedBlocks(t *testing.T) {
	m := newTestModel(t)
	m.width = 100
	m.height = 40
	m.response = &bfhl.Response{
		Numbers:                  []string{"1", "2"},
		HighestLowercaseAlphabet: []string{},
	}
	m.options.Toggle(bfhl.OptionHighest)
	m.options.Toggle(bfhl.OptionNumbers)

	view := m.View()
	numbersIdx := strings.Index(view, "Numbers: 1, 2")
	highestIdx := strings.Index(view, "Highest Lowercase Alphabet: None")
	if numbersIdx < 0 || highestIdx < 0 {
		t.Fatalf("Expected both blocks in view, got: %s", view)
	}
	if numbersIdx > highestIdx {
		t.Error("Blocks should render in fixed display order")
	}
}

func TestSetThemeByName(t *testing.T) {
	defer SetThemeByName("default")

	if !SetThemeByName("dark") {
		t.Error("Expected dark theme to be recognized")
	}
	if GetTheme().Name != "dark" {
		t.Errorf("Expected active theme dark, got %s", GetTheme().Name)
	}
	if SetThemeByName("rainbow") {
		t.Error("Expected unknown theme to be rejected")
	}
}
