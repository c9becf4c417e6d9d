package domain

import (
	"errors"
	"fmt"

	perr "dataproc/internal/platform/errors"
)

// Kind classifies why a submission failed
type Kind int

// Kinds
const (
	KindInvalidInputFormat Kind = iota + 1
	KindFileProcessingError
	KindNetworkError
	KindServiceError
)

// Generic user facing messages, one per kind
const (
	MsgSuccess          = "Data processed successfully!"
	MsgInvalidJSON      = "Invalid JSON format"
	MsgFileProcessing   = "Failed to process file"
	MsgNetwork          = "Unable to reach processing service"
	MsgProcessingFailed = "Processing failed"
)

var errEmptyBody = errors.New("empty response body")

// ErrInFlight rejects a submit while another is outstanding
var ErrInFlight = perr.Conflictf("a submission is already in progress")

// String names the kind
func (k Kind) String() string {
	switch k {
	case KindInvalidInputFormat:
		return "InvalidInputFormat"
	case KindFileProcessingError:
		return "FileProcessingError"
	case KindNetworkError:
		return "NetworkError"
	case KindServiceError:
		return "ServiceError"
	default:
		return "Unknown"
	}
}

// MarshalText lets Kind render by name in JSON
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// DefaultMessage is the generic text for k
func (k Kind) DefaultMessage() string {
	switch k {
	case KindInvalidInputFormat:
		return MsgInvalidJSON
	case KindFileProcessingError:
		return MsgFileProcessing
	case KindNetworkError:
		return MsgNetwork
	default:
		return MsgProcessingFailed
	}
}

// Code maps k onto the platform error codes
func (k Kind) Code() perr.ErrorCode {
	switch k {
	case KindInvalidInputFormat:
		return perr.ErrorCodeJSON
	case KindFileProcessingError:
		return perr.ErrorCodeInvalidArgument
	case KindNetworkError:
		return perr.ErrorCodeUnavailable
	default:
		return perr.ErrorCodeUpstream
	}
}

// SubmitError is the terminal failure of one submission
type SubmitError struct {
	Kind Kind
	// Message is what the user is shown
	Message string
	// Status is the upstream HTTP status for ServiceError, 0 otherwise
	Status int
	Cause  error
}

// NewSubmitError builds a SubmitError, falling back to the kind's generic text
func NewSubmitError(k Kind, msg string, status int, cause error) *SubmitError {
	if msg == "" {
		msg = k.DefaultMessage()
	}
	return &SubmitError{Kind: k, Message: msg, Status: status, Cause: cause}
}

// Error interface
func (e *SubmitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap interface
func (e *SubmitError) Unwrap() error { return e.Cause }

// Coded converts e into a platform error whose message is the user facing text
func (e *SubmitError) Coded() error {
	if e.Cause != nil {
		return perr.Wrap(e.Cause, e.Kind.Code(), e.Message)
	}
	return perr.New(e.Kind.Code(), e.Message)
}

// KindOf extracts the Kind from err, 0 if err is not a SubmitError
func KindOf(err error) Kind {
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
