package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yildizm/bfhlctl/internal/bfhl"
	"github.com/yildizm/bfhlctl/internal/config"
	"github.com/yildizm/bfhlctl/internal/history"
)

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = baseURL
	cfg.History.File = filepath.Join(t.TempDir(), "history.jsonl")
	cfg.History.MaxEntries = 10
	return cfg
}

func TestSubmitPayloadSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"is_success": true, "numbers": ["1"], "alphabets": ["A"]}`))
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)
	raw := []byte(`{"data": ["A", "1"]}`)

	record, err := submitPayload(cfg, raw, []bfhl.Option{bfhl.OptionNumbers}, 5*time.Second)
	if err != nil {
		t.Fatalf("submitPayload failed: %v", err)
	}
	if !record.Succeeded() {
		t.Error("Expected successful record")
	}
	if record.Response == nil || len(record.Response.Numbers) != 1 {
		t.Errorf("Expected decoded response, got %+v", record.Response)
	}

	// The completed attempt lands in the history log
	store := history.NewStore(cfg.History)
	records, err := store.List(0)
	if err != nil {
		t.Fatalf("Failed to read history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 history record, got %d", len(records))
	}
}

func TestSubmitPayloadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)

	record, err := submitPayload(cfg, []byte(`{"data": []}`), nil, 5*time.Second)
	if err == nil {
		t.Fatal("Expected error for HTTP 500")
	}
	if record == nil {
		t.Fatal("Expected a record for the failed attempt")
	}
	if !strings.Contains(record.Error, "500") {
		t.Errorf("Expected error embedding the status, got %q", record.Error)
	}
	if record.Succeeded() {
		t.Error("Expected failed record")
	}
}

func TestSubmitPayloadValidationSkipsNetwork(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)

	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"malformed JSON", `{"data": [`, "Invalid JSON input"},
		{"missing data field", `{"foo": 1}`, `missing required "data" array field`},
		{"data not an array", `{"data": "x"}`, `"data" field must be an array`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := submitPayload(cfg, []byte(tt.payload), nil, time.Second)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !bfhl.IsValidationError(err) {
				t.Errorf("Expected validation error type, got %v", err)
			}
			if record.Error != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, record.Error)
			}
		})
	}

	if n := atomic.LoadInt32(&requests); n != 0 {
		t.Errorf("Expected no network calls for invalid payloads, got %d", n)
	}
}

func TestReadPayloadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	content := `{"data": ["A", "1"]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write payload: %v", err)
	}

	raw, err := readPayload([]string{path})
	if err != nil {
		t.Fatalf("readPayload failed: %v", err)
	}
	if string(raw) != content {
		t.Errorf("Expected payload %q, got %q", content, raw)
	}
}

func TestReadPayloadMissingFile(t *testing.T) {
	if _, err := readPayload([]string{filepath.Join(t.TempDir(), "missing.json")}); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReadPayloadDirectory(t *testing.T) {
	if _, err := readPayload([]string{t.TempDir()}); err == nil {
		t.Error("Expected error for directory path")
	}
}

func TestStatusLine(t *testing.T) {
	ok := &bfhl.Record{Duration: 120 * time.Millisecond, Response: &bfhl.Response{}}
	if got := statusLine(ok); !strings.Contains(got, "Data processed successfully") {
		t.Errorf("statusLine() = %q, want success message", got)
	}

	failed := &bfhl.Record{Error: "request failed with status 500"}
	if got := statusLine(failed); got != "request failed with status 500" {
		t.Errorf("statusLine() = %q, want error message", got)
	}
}

func TestHandleOutputDestinationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := handleOutputDestination([]byte("hello"), path); err != nil {
		t.Fatalf("handleOutputDestination failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Expected output 'hello', got %q", data)
	}
}
