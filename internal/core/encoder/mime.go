package encoder

import (
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const sniffLen = 512

// genericMIME are declared types that say nothing about the content
var genericMIME = map[string]bool{
	"":                         true,
	"application/octet-stream": true,
}

// SniffMIME returns declared unless it is blank or generic, in which case the
// type is detected from the first bytes of r. r is rewound before returning.
func SniffMIME(r io.ReadSeeker, declared string) (string, error) {
	declared = strings.TrimSpace(declared)
	if !genericMIME[strings.ToLower(declared)] {
		return declared, nil
	}
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", ErrFileRead
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", ErrFileRead
	}
	return mimetype.Detect(buf[:n]).String(), nil
}
