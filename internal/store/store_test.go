package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuxedo-keyboard-manager/internal/codec"
	"tuxedo-keyboard-manager/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tuxedo_keyboard.conf"), nil)
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestLoadDirectoryIsNotAConfig(t *testing.T) {
	s := New(t.TempDir(), nil)
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestLoadParsesExistingFile(t *testing.T) {
	s := newTestStore(t)
	content := "# managed\noptions tuxedo-keyboard mode=4 brightness=77 color_left=0xFF0000 color_center=0x00FF00 color_right=0x0000FF"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))

	opts, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ModeFlash, opts.Mode)
	assert.Equal(t, 77, opts.Brightness)
	assert.Equal(t, models.RGB8{G: 0xFF}, models.Quantize(opts.Center))
}

func TestLoadMalformedFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("options tuxedo-keyboard mode=1\n"), 0o644))

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, codec.ErrMalformedLine)
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestStore(t).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveCreatesFile(t *testing.T) {
	s := newTestStore(t)
	opts := models.KeyboardOptions{Mode: models.ModeWave, Brightness: 255}
	opts.SetColor(models.ZoneRight, colorful.Color{R: 1, G: 1, B: 1})

	require.NoError(t, s.Save(context.Background(), opts))

	content, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, codec.Format(opts)+"\n", string(content))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(FileMode), info.Mode().Perm())
}

func TestSaveReplacesAndLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("blacklist something\n"), 0o600))

	opts := models.DefaultOptions()
	opts.Brightness = 42
	require.NoError(t, s.Save(context.Background(), opts))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, opts.Equal(loaded))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tuxedo_keyboard.conf", entries[0].Name())
}

func TestSaveRejectsInvalidOptions(t *testing.T) {
	s := newTestStore(t)
	err := s.Save(context.Background(), models.KeyboardOptions{Brightness: 300})
	assert.ErrorIs(t, err, models.ErrInvalidOptions)

	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestSavePermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	s := New(filepath.Join(dir, "tuxedo_keyboard.conf"), nil)
	err := s.Save(context.Background(), models.DefaultOptions())
	assert.ErrorIs(t, err, ErrPermission)
}
