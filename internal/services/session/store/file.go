package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	perr "dataproc/internal/platform/errors"
	"dataproc/internal/services/session/domain"
)

// File keeps the record as JSON at a path readable only by the owner, for the CLI
type File struct {
	path string
}

// NewFile returns a File store at path
func NewFile(path string) *File { return &File{path: path} }

// DefaultPath is <UserConfigDir>/dataproc/session.json
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "dataproc", "session.json")
}

// Path reports where the record lives
func (f *File) Path() string { return f.path }

// Load implements domain.Store. A missing file is not an error.
func (f *File) Load(context.Context) (domain.Record, bool, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Record{}, false, nil
	}
	if err != nil {
		return domain.Record{}, false, perr.Wrapf(err, perr.ErrorCodeUnknown, "read session %s", f.path)
	}
	var r domain.Record
	if err := json.Unmarshal(b, &r); err != nil {
		return domain.Record{}, false, perr.Wrapf(err, perr.ErrorCodeJSON, "corrupt session file %s", f.path)
	}
	if r.Token == "" {
		return domain.Record{}, false, nil
	}
	return r, true, nil
}

// Save implements domain.Store, writing through a temp file and rename
func (f *File) Save(_ context.Context, r domain.Record) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "create session dir")
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "encode session")
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "create temp session file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "chmod session file")
	}
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "write session file")
	}
	if err := tmp.Close(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "close session file")
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "install session file")
	}
	return nil
}

// Clear implements domain.Store. Clearing a missing file succeeds.
func (f *File) Clear(context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "remove session file")
	}
	return nil
}
