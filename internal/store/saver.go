package store

import (
	"context"
	"os"
	"path/filepath"

	"tuxedo-keyboard-manager/internal/codec"
	"tuxedo-keyboard-manager/internal/models"
)

// Save validates opts and replaces the config file with its options line.
// The new content is written to a sibling temp file and renamed into place
// so readers never observe a partial line.
func (s *Store) Save(ctx context.Context, opts models.KeyboardOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	line := codec.Format(opts)
	s.logger.Info("Store", "writing options", map[string]interface{}{
		"path": s.path,
		"line": line,
	})

	if err := s.replace([]byte(line + "\n")); err != nil {
		s.logger.Error("Store", err, map[string]interface{}{
			"path": s.path,
		})
		return err
	}
	return nil
}

func (s *Store) replace(content []byte) (err error) {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return s.wrapErr("create temp for", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return s.wrapErr("write", err)
	}
	if err = tmp.Sync(); err != nil {
		return s.wrapErr("sync", err)
	}
	if err = tmp.Chmod(FileMode); err != nil {
		return s.wrapErr("chmod", err)
	}
	if err = tmp.Close(); err != nil {
		return s.wrapErr("close", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return s.wrapErr("rename", err)
	}

	if d, dirErr := os.Open(dir); dirErr == nil {
		if syncErr := d.Sync(); syncErr != nil {
			s.logger.Debug("Store", "directory sync failed", map[string]interface{}{
				"dir":   dir,
				"error": syncErr.Error(),
			})
		}
		d.Close()
	}
	return nil
}
