package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ProcessedResult is the service's answer to a successful submission
type ProcessedResult struct {
	IsSuccess                bool        `json:"is_success"`
	UserID                   string      `json:"user_id"`
	Email                    string      `json:"email"`
	RollNumber               string      `json:"roll_number"`
	Numbers                  []string    `json:"numbers"`
	Alphabets                []string    `json:"alphabets"`
	HighestLowercaseAlphabet []string    `json:"highest_lowercase_alphabet"`
	IsPrimeFound             bool        `json:"is_prime_found"`
	FileValid                *bool       `json:"file_valid,omitempty"`
	FileMIMEType             string      `json:"file_mime_type,omitempty"`
	FileSizeKB               *FileSizeKB `json:"file_size_kb,omitempty"`
}

// FileSizeKB holds file_size_kb as the service sent it; string and number forms are accepted
type FileSizeKB string

// UnmarshalJSON accepts "12.5" or 12.5
func (f *FileSizeKB) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FileSizeKB(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FileSizeKB(n.String())
	return nil
}

// MarshalJSON always writes the string form
func (f FileSizeKB) MarshalJSON() ([]byte, error) { return json.Marshal(string(f)) }

// KB parses the size as a float when possible
func (f FileSizeKB) KB() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(f)), 64)
	return v, err == nil
}

// DecodeResult decodes a 2xx body. Unknown fields are ignored.
func DecodeResult(body []byte) (ProcessedResult, error) {
	var r ProcessedResult
	if len(bytes.TrimSpace(body)) == 0 {
		return r, errEmptyBody
	}
	if err := json.Unmarshal(body, &r); err != nil {
		return ProcessedResult{}, err
	}
	return r, nil
}

// ShowFileInfo reports whether the file section should be displayed:
// the service confirmed a valid file or reported a MIME type
func (r ProcessedResult) ShowFileInfo() bool {
	return (r.FileValid != nil && *r.FileValid) || r.FileMIMEType != ""
}

// FileValidity renders file_valid for display
func (r ProcessedResult) FileValidity() string {
	switch {
	case r.FileValid == nil:
		return ""
	case *r.FileValid:
		return "Valid"
	default:
		return "Invalid"
	}
}

// FileSize renders file_size_kb for display, empty when absent
func (r ProcessedResult) FileSize() string {
	if r.FileSizeKB == nil || *r.FileSizeKB == "" {
		return ""
	}
	return string(*r.FileSizeKB) + " KB"
}
