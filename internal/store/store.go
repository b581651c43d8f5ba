package store

import (
	"errors"

	"tuxedo-keyboard-manager/internal/logger"
)

const (
	// FileMode matches what modprobe.d files are installed with
	FileMode = 0o644

	// maxReadSize bounds how much of the config file is read
	maxReadSize = 1024
)

var (
	ErrConfigMissing = errors.New("keyboard config file not found")
	ErrPermission    = errors.New("insufficient permissions for keyboard config file")
)

// Store reads and replaces the keyboard options file
type Store struct {
	path   string
	logger logger.Logger
}

func New(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Store{path: path, logger: log}
}

func (s *Store) Path() string {
	return s.path
}
