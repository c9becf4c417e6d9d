// Package encoder turns attachment bytes into the base64 text carried in file_b64
package encoder

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrFileRead is returned when the attachment cannot be read in full or decoded
var ErrFileRead = errors.New("encoder: file read failed")

// Encode reads r to the end and returns the standard base64 of its bytes.
// size is the byte count the source reported; a negative size skips the check.
// A short read, a read error or a size mismatch returns ErrFileRead and no text.
func Encode(r io.Reader, size int64) (string, error) {
	var buf bytes.Buffer
	if size > 0 {
		buf.Grow(int(size))
	}
	n, err := io.Copy(&buf, r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	if size >= 0 && n != size {
		return "", fmt.Errorf("%w: read %d of %d bytes", ErrFileRead, n, size)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeBytes is Encode for bytes already in memory
func EncodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// StripDataURI drops a leading "data:<mime>;base64," prefix if one is present
func StripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if _, payload, ok := strings.Cut(s, ","); ok {
		return payload
	}
	return s
}

// FromDataURL returns the base64 payload of a browser data URL after checking it decodes.
// Plain base64 without a prefix is accepted as is.
func FromDataURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		head, _, ok := strings.Cut(s, ",")
		if !ok || !strings.HasSuffix(head, ";base64") {
			return "", fmt.Errorf("%w: not a base64 data URL", ErrFileRead)
		}
	}
	payload := StripDataURI(s)
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	return payload, nil
}

// DecodedLen reports how many raw bytes a base64 payload stands for
func DecodedLen(payload string) int64 {
	if payload == "" {
		return 0
	}
	pad := strings.Count(payload[max(0, len(payload)-2):], "=")
	return int64(len(payload)/4*3 - pad)
}
