package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

var _ model.DirectoryStore = (*Store)(nil)

// Store reads and writes the whole directory document at a single path.
// It does no locking of its own.
type Store struct {
	path   string
	mirror model.Storage
	prefix string
	logger *logger.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithMirror uploads a copy of every saved document to storage under prefix.
func WithMirror(storage model.Storage, prefix string) StoreOption {
	return func(s *Store) {
		s.mirror = storage
		s.prefix = prefix
	}
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string, logger *logger.Logger, opts ...StoreOption) *Store {
	s := &Store{path: path, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the full document. Field names match case-insensitively.
func (s *Store) Load(_ context.Context) (model.Directory, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Directory{}, fmt.Errorf("%w: %s", model.ErrDirectoryNotFound, s.absPath())
	}
	if err != nil {
		return model.Directory{}, fmt.Errorf("%w: failed to read %s: %w", model.ErrIO, s.path, err)
	}

	var directory model.Directory
	if err := json.Unmarshal(data, &directory); err != nil {
		return model.Directory{}, fmt.Errorf("%w: %w", model.ErrCorruptData, err)
	}

	return normalize(directory), nil
}

// Save encodes the document with stable indentation and replaces the file.
// The content is written to a sibling temp file first and renamed into place.
func (s *Store) Save(ctx context.Context, directory model.Directory) error {
	data, err := json.MarshalIndent(normalize(directory), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode directory: %w", model.ErrIO, err)
	}

	if err := s.writeFile(data); err != nil {
		return fmt.Errorf("%w: %w", model.ErrIO, err)
	}

	s.upload(ctx, data)

	return nil
}

func (s *Store) writeFile(data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	return nil
}

// upload mirrors a saved document. The local save already succeeded, so
// failures are only logged.
func (s *Store) upload(ctx context.Context, data []byte) {
	if s.mirror == nil {
		return
	}

	key := s.prefix + time.Now().UTC().Format("20060102T150405.000000000Z") + ".json"
	if err := s.mirror.Upload(ctx, key, bytes.NewReader(data), int64(len(data))); err != nil {
		s.logger.Warn("Directory store: failed to mirror snapshot",
			"key", key,
			"error", err.Error())
		return
	}

	s.logger.Debug("Directory store: snapshot mirrored", "key", key)
}

func (s *Store) absPath() string {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return s.path
	}
	return abs
}

func normalize(directory model.Directory) model.Directory {
	if directory.Users == nil {
		directory.Users = []model.Credential{}
	}
	if directory.Employees == nil {
		directory.Employees = []model.Employee{}
	}
	return directory
}
