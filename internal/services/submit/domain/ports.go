// Package domain holds the submission pipeline's types and ports
package domain

import (
	"context"
	"encoding/json"
	"io"
)

// Dispatcher sends one payload to the processing service.
// payload marshals to the request body; token may be empty.
type Dispatcher interface {
	Process(ctx context.Context, token string, payload any) (json.RawMessage, error)
}

// UpstreamStatus is implemented by dispatcher errors that carry an HTTP answer
type UpstreamStatus interface {
	HTTPStatus() int
	ServerMessage() string
}

// TokenSource yields the current bearer token, ok=false when signed out
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Notifier receives fire-and-forget outcome messages
type Notifier interface {
	Success(ctx context.Context, msg string)
	Failure(ctx context.Context, msg string, err error)
}

// Attachment is the optional file for a submission. Exactly one of Reader or
// DataURL is used; DataURL wins when both are set.
type Attachment struct {
	Name string
	// MIMEType is what the source reported, never verified
	MIMEType string
	// Size is the byte count the source reported. Zero or less means unknown
	// and skips the truncation check, so an unset Size is safe.
	Size   int64
	Reader io.Reader
	// DataURL is a browser FileReader result, "data:<mime>;base64,<payload>"
	DataURL string
}

// Request is one submission: the raw JSON text plus an optional file
type Request struct {
	JSON string
	File *Attachment
}
