package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"tuxedo-keyboard-manager/internal/codec"
	"tuxedo-keyboard-manager/internal/models"
)

// Load reads the options from disk. The caller keeps its current record
// when an error is returned.
func (s *Store) Load(ctx context.Context) (models.KeyboardOptions, error) {
	if err := ctx.Err(); err != nil {
		return models.KeyboardOptions{}, err
	}

	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.KeyboardOptions{}, fmt.Errorf("%w: %s", ErrConfigMissing, s.path)
	}
	if err != nil {
		return models.KeyboardOptions{}, s.wrapErr("stat", err)
	}
	if !info.Mode().IsRegular() {
		return models.KeyboardOptions{}, fmt.Errorf("%w: %s is not a regular file", ErrConfigMissing, s.path)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return models.KeyboardOptions{}, s.wrapErr("open", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxReadSize))
	if err != nil {
		return models.KeyboardOptions{}, s.wrapErr("read", err)
	}

	opts, err := codec.ParseFile(string(content))
	if err != nil {
		return models.KeyboardOptions{}, fmt.Errorf("parse %s: %w", s.path, err)
	}

	s.logger.Debug("Store", "options loaded", map[string]interface{}{
		"path":       s.path,
		"mode":       opts.Mode.String(),
		"brightness": opts.Brightness,
	})
	return opts, nil
}

func (s *Store) wrapErr(op string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%s %s: %w: %w", op, s.path, ErrPermission, err)
	}
	return fmt.Errorf("%s %s: %w", op, s.path, err)
}
