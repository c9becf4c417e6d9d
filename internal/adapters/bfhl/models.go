package bfhl

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrResponseTooLarge matches any *BodyLimitError with errors.Is
var ErrResponseTooLarge = errors.New("bfhl: response too large")

// BodyLimitError is an answer whose body went past Options.MaxBody. It reports
// the upstream status so the pipeline treats it as a service failure.
type BodyLimitError struct {
	Path   string
	Status int
	Limit  int64
}

// Error interface
func (e *BodyLimitError) Error() string {
	return fmt.Sprintf("bfhl %s: status %d: body exceeds %d bytes", e.Path, e.Status, e.Limit)
}

// Is reports ErrResponseTooLarge
func (e *BodyLimitError) Is(target error) bool { return target == ErrResponseTooLarge }

// HTTPStatus reports the upstream status code
func (e *BodyLimitError) HTTPStatus() int { return e.Status }

// ServerMessage is the text shown for the failure
func (e *BodyLimitError) ServerMessage() string { return "Response from processing service is too large" }

// StatusError is a non-2xx answer from the service
type StatusError struct {
	Status int
	// Message is the server's "error" field, empty when the body had none
	Message string
	Body    string
	Path    string
}

// Error interface
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("bfhl %s: status %d: %s", e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("bfhl %s: status %d", e.Path, e.Status)
}

// HTTPStatus reports the upstream status code
func (e *StatusError) HTTPStatus() int { return e.Status }

// ServerMessage reports the server supplied error text
func (e *StatusError) ServerMessage() string { return e.Message }

// errorBody is the optional failure shape {"error": "..."}; some deployments say "message"
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newStatusError(path string, status int, body []byte) *StatusError {
	se := &StatusError{Status: status, Path: path, Body: tail(body, 2048)}
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		se.Message = strings.TrimSpace(eb.Error)
		if se.Message == "" {
			se.Message = strings.TrimSpace(eb.Message)
		}
	}
	return se
}

func tail(b []byte, n int) string {
	if len(b) > n {
		b = b[len(b)-n:]
	}
	return string(b)
}

// Credentials is the /login body
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the /register body
type Registration struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name,omitempty"`
	RollNumber string `json:"roll_number,omitempty"`
}

type loginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

type opCodeResponse struct {
	OperationCode json.Number `json:"operation_code"`
}
