package bfhl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewClient(&ClientConfig{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestClientSubmit(t *testing.T) {
	raw := "{\"data\": [\"M\", \"1\", \"334\", \"4\", \"B\"] }"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bfhl" {
			t.Errorf("Expected path '/bfhl', got '%s'", r.URL.Path)
		}
		if r.Method != "POST" {
			t.Errorf("Expected POST method, got '%s'", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("Expected X-Request-ID header to be set")
		}

		// The body must be the raw input byte-for-byte, not a
		// re-serialized form.
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("Failed to read request body: %v", err)
		}
		if string(body) != raw {
			t.Errorf("Expected body %q, got %q", raw, string(body))
		}

		resp := Response{
			IsSuccess:                true,
			UserID:                   "john_doe_17091999",
			Numbers:                  []string{"1", "334", "4"},
			Alphabets:                []string{"M", "B"},
			HighestLowercaseAlphabet: []string{},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	resp, err := client.Submit(context.Background(), []byte(raw))
	if err != nil {
		t.Fatalf("Failed to submit: %v", err)
	}

	if !resp.IsSuccess {
		t.Error("Expected is_success to be true")
	}
	if resp.UserID != "john_doe_17091999" {
		t.Errorf("Expected user_id 'john_doe_17091999', got '%s'", resp.UserID)
	}
	if len(resp.Numbers) != 3 {
		t.Errorf("Expected 3 numbers, got %d", len(resp.Numbers))
	}
	if len(resp.HighestLowercaseAlphabet) != 0 {
		t.Errorf("Expected empty highest_lowercase_alphabet, got %v", resp.HighestLowercaseAlphabet)
	}
}

func TestClientSubmitInvalidInputNoRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	tests := []struct {
		name     string
		raw      string
		wantType ErrorType
	}{
		{
			name:     "malformed input",
			raw:      "{not json",
			wantType: ErrTypeMalformedInput,
		},
		{
			name:     "missing data field",
			raw:      `{"foo":1}`,
			wantType: ErrTypeMissingField,
		},
		{
			name:     "data not an array",
			raw:      `{"data":"x"}`,
			wantType: ErrTypeMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Submit(context.Background(), []byte(tt.raw))
			if resp != nil {
				t.Errorf("Expected no response, got %v", resp)
			}

			var se *SubmitError
			if !errors.As(err, &se) {
				t.Fatalf("Expected SubmitError, got %T", err)
			}
			if se.Type != tt.wantType {
				t.Errorf("Expected error type %s, got %s", tt.wantType, se.Type)
			}
		})
	}

	if requests != 0 {
		t.Errorf("Expected no network calls for invalid input, server saw %d", requests)
	}
}

func TestClientSubmitServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Submit(context.Background(), []byte(`{"data":["a"]}`))
	if err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}

	if !IsTransportError(err) {
		t.Errorf("Expected transport error, got %v", err)
	}
	if !strings.Contains(UserMessage(err), "500") {
		t.Errorf("Expected message to embed status 500, got '%s'", UserMessage(err))
	}

	var se *SubmitError
	if errors.As(err, &se) && se.StatusCode != 500 {
		t.Errorf("Expected status code 500, got %d", se.StatusCode)
	}
}

func TestClientSubmitAcceptsNon200Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Response{IsSuccess: true})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	resp, err := client.Submit(context.Background(), []byte(`{"data":[]}`))
	if err != nil {
		t.Fatalf("Expected 201 to be treated as success, got %v", err)
	}
	if !resp.IsSuccess {
		t.Error("Expected is_success to be true")
	}
}

func TestClientSubmitDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Submit(context.Background(), []byte(`{"data":[]}`))
	if err == nil {
		t.Fatal("Expected decode error, got nil")
	}

	var se *SubmitError
	if !errors.As(err, &se) {
		t.Fatalf("Expected SubmitError, got %T", err)
	}
	if se.Type != ErrTypeUnknown {
		t.Errorf("Expected error type %s, got %s", ErrTypeUnknown, se.Type)
	}
	if UserMessage(err) == "" {
		t.Error("Expected a non-empty user message for decode failure")
	}
}

func TestClientSubmitNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Submit(context.Background(), []byte(`{"data":[]}`))
	if err == nil {
		t.Fatal("Expected network error, got nil")
	}

	var se *SubmitError
	if !errors.As(err, &se) {
		t.Fatalf("Expected SubmitError, got %T", err)
	}
	if se.Type != ErrTypeUnknown {
		t.Errorf("Expected error type %s, got %s", ErrTypeUnknown, se.Type)
	}
	if se.Cause == nil {
		t.Error("Expected network error to carry its cause")
	}
}

func TestClientSubmitContextCancel(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body first: the server only notices a client
		// disconnect (and cancels r.Context()) once the request body
		// has been consumed, so blocking with it unread deadlocks.
		_, _ = io.ReadAll(r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Submit(ctx, []byte(`{"data":[]}`))
	if err == nil {
		t.Fatal("Expected error after context cancel, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in chain, got %v", err)
	}
}

func TestClientEndpoint(t *testing.T) {
	client := newTestClient(t, "https://api.example.com")

	want := "https://api.example.com/bfhl"
	if got := client.Endpoint(); got != want {
		t.Errorf("Endpoint() = '%s', want '%s'", got, want)
	}
}

func TestClientConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		config      *ClientConfig
		expectError bool
	}{
		{
			name:        "valid config",
			config:      &ClientConfig{BaseURL: "https://api.example.com"},
			expectError: false,
		},
		{
			name:        "valid with timeout",
			config:      &ClientConfig{BaseURL: "http://localhost:8080", Timeout: 30 * time.Second},
			expectError: false,
		},
		{
			name:        "empty base URL",
			config:      &ClientConfig{BaseURL: ""},
			expectError: true,
		},
		{
			name:        "missing scheme",
			config:      &ClientConfig{BaseURL: "api.example.com"},
			expectError: true,
		},
		{
			name:        "unsupported scheme",
			config:      &ClientConfig{BaseURL: "ftp://api.example.com"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no validation error, got: %v", err)
			}
		})
	}
}
