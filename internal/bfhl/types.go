package bfhl

import (
	"time"

	"github.com/google/uuid"
)

// Payload is the request shape the /bfhl endpoint accepts.
// The submission path never marshals this type; the user's raw text is
// sent byte-for-byte. It documents the wire contract and builds test inputs.
type Payload struct {
	Data    []string `json:"data"`
	FileB64 string   `json:"file_b64,omitempty"`
}

// Response is the decoded reply from a successful /bfhl call.
type Response struct {
	IsSuccess  bool   `json:"is_success"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number"`

	Numbers                  []string `json:"numbers"`
	Alphabets                []string `json:"alphabets"`
	HighestLowercaseAlphabet []string `json:"highest_lowercase_alphabet"`

	IsPrimeFound bool `json:"is_prime_found"`

	// File metadata is only populated when the payload carried file_b64.
	FileValid    bool    `json:"file_valid,omitempty"`
	FileMimeType string  `json:"file_mime_type,omitempty"`
	FileSizeKB   float64 `json:"file_size_kb,omitempty"`
}

// Record is an immutable snapshot of one completed submission attempt.
type Record struct {
	ID          string        `json:"id"`
	SubmittedAt time.Time     `json:"submitted_at"`
	Duration    time.Duration `json:"duration"`
	Endpoint    string        `json:"endpoint"`
	Options     []Option      `json:"options,omitempty"`
	Response    *Response     `json:"response,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// NewRecord assembles the snapshot for a submission that started at the
// given time. Exactly one of resp and err is expected to be set.
func NewRecord(endpoint string, options []Option, resp *Response, err error, started time.Time) *Record {
	rec := &Record{
		ID:          uuid.New().String(),
		SubmittedAt: started,
		Duration:    time.Since(started),
		Endpoint:    endpoint,
		Options:     options,
		Response:    resp,
	}
	if err != nil {
		rec.Error = UserMessage(err)
	}
	return rec
}

// Succeeded reports whether the attempt produced a decoded response.
func (r *Record) Succeeded() bool {
	return r.Error == "" && r.Response != nil
}
