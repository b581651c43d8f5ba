package models

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeNames(t *testing.T) {
	assert.Equal(t, []string{
		"CUSTOM", "BREATHE", "CYCLE", "DANCE", "FLASH", "RANDOM_COLOR", "TEMPO", "WAVE",
	}, Modes())
	assert.Equal(t, "RANDOM_COLOR", ModeRandomColor.String())
	assert.Equal(t, "MODE(9)", Mode(9).String())

	mode, err := ParseMode("wave")
	require.NoError(t, err)
	assert.Equal(t, ModeWave, mode)

	_, err = ParseMode("disco")
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestModesReturnsCopy(t *testing.T) {
	names := Modes()
	names[0] = "changed"
	assert.Equal(t, "CUSTOM", Modes()[0])
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, ModeCustom, opts.Mode)
	assert.Equal(t, 0, opts.Brightness)
	for _, zone := range Zones() {
		assert.Equal(t, RGB8{}, Quantize(opts.Color(zone)), zone.String())
	}
	assert.NoError(t, opts.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    KeyboardOptions
		wantErr bool
	}{
		{"lowest", KeyboardOptions{Mode: ModeCustom, Brightness: 0}, false},
		{"highest", KeyboardOptions{Mode: ModeWave, Brightness: 255}, false},
		{"negative mode", KeyboardOptions{Mode: -1}, true},
		{"mode past wave", KeyboardOptions{Mode: 8}, true},
		{"brightness too high", KeyboardOptions{Brightness: 256}, true},
		{"negative brightness", KeyboardOptions{Brightness: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOptions)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetColorPerZone(t *testing.T) {
	opts := DefaultOptions()
	red := colorful.Color{R: 1}
	green := colorful.Color{G: 1}
	blue := colorful.Color{B: 1}

	opts.SetColor(ZoneLeft, red)
	opts.SetColor(ZoneCenter, green)
	opts.SetColor(ZoneRight, blue)

	assert.Equal(t, red, opts.Left)
	assert.Equal(t, green, opts.Center)
	assert.Equal(t, blue, opts.Right)
	assert.Equal(t, green, opts.Color(ZoneCenter))
}

func TestSetColorClamps(t *testing.T) {
	opts := DefaultOptions()
	opts.SetColor(ZoneLeft, colorful.Color{R: 1.4, G: -0.2, B: 0.5})
	assert.Equal(t, colorful.Color{R: 1, G: 0, B: 0.5}, opts.Left)
}

func TestQuantizeRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := RGB8{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)}
		assert.Equal(t, c, Quantize(FromRGB8(c)))
	}
}

func TestEqualIgnoresSubQuantumDifferences(t *testing.T) {
	a := DefaultOptions()
	b := DefaultOptions()
	a.Left = colorful.Color{R: 0.5}
	b.Left = colorful.Color{R: 0.5001}
	assert.True(t, a.Equal(b))

	b.Brightness = 1
	assert.False(t, a.Equal(b))
}

func TestRepositoryDirtyTracking(t *testing.T) {
	repo := NewOptionsRepository(DefaultOptions())
	assert.False(t, repo.Dirty())

	repo.Update(func(o *KeyboardOptions) { o.Brightness = 0 })
	assert.False(t, repo.Dirty(), "no-op update should not mark dirty")

	repo.Update(func(o *KeyboardOptions) { o.Brightness = 200 })
	assert.True(t, repo.Dirty())
	assert.Equal(t, 200, repo.Get().Brightness)

	saved := repo.Get()
	repo.Update(func(o *KeyboardOptions) { o.Mode = ModeFlash })
	repo.MarkSaved(saved)
	assert.True(t, repo.Dirty(), "edits after the snapshot stay unsaved")

	repo.MarkSaved(repo.Get())
	assert.False(t, repo.Dirty())

	repo.Update(func(o *KeyboardOptions) { o.Mode = ModeTempo })
	repo.Replace(DefaultOptions())
	assert.False(t, repo.Dirty())
	assert.Equal(t, ModeCustom, repo.Get().Mode)
}
