package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	MinBrightness = 0
	MaxBrightness = 255
)

// ErrInvalidOptions is returned when a record holds values the driver rejects
var ErrInvalidOptions = errors.New("invalid keyboard options")

// Mode is the lighting effect selected on the keyboard driver
type Mode int

const (
	ModeCustom Mode = iota
	ModeBreathe
	ModeCycle
	ModeDance
	ModeFlash
	ModeRandomColor
	ModeTempo
	ModeWave
)

var modeNames = [...]string{
	"CUSTOM",
	"BREATHE",
	"CYCLE",
	"DANCE",
	"FLASH",
	"RANDOM_COLOR",
	"TEMPO",
	"WAVE",
}

// Modes returns the mode names ordered by their driver value
func Modes() []string {
	names := make([]string, len(modeNames))
	copy(names, modeNames[:])
	return names
}

func (m Mode) Valid() bool {
	return m >= ModeCustom && m <= ModeWave
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("MODE(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode resolves a mode name, ignoring case
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Mode(i), nil
		}
	}
	return ModeCustom, fmt.Errorf("%w: unknown mode %q", ErrInvalidOptions, name)
}

// Zone identifies one backlight segment of the keyboard
type Zone int

const (
	ZoneLeft Zone = iota
	ZoneCenter
	ZoneRight
)

// Zones returns the zones in left to right order
func Zones() []Zone {
	return []Zone{ZoneLeft, ZoneCenter, ZoneRight}
}

func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneCenter:
		return "center"
	case ZoneRight:
		return "right"
	default:
		return fmt.Sprintf("zone(%d)", int(z))
	}
}

// KeyboardOptions mirrors the parameters of the tuxedo-keyboard module.
// Colors hold normalized channels in [0,1].
type KeyboardOptions struct {
	Mode       Mode
	Brightness int
	Left       colorful.Color
	Center     colorful.Color
	Right      colorful.Color
}

// DefaultOptions returns the record used before the config file is read
func DefaultOptions() KeyboardOptions {
	return KeyboardOptions{
		Mode:       ModeCustom,
		Brightness: MinBrightness,
	}
}

// Color returns the color of the given zone
func (o KeyboardOptions) Color(zone Zone) colorful.Color {
	switch zone {
	case ZoneCenter:
		return o.Center
	case ZoneRight:
		return o.Right
	default:
		return o.Left
	}
}

// SetColor stores c into the given zone, clamping channels into range
func (o *KeyboardOptions) SetColor(zone Zone, c colorful.Color) {
	c = c.Clamped()
	switch zone {
	case ZoneCenter:
		o.Center = c
	case ZoneRight:
		o.Right = c
	default:
		o.Left = c
	}
}

// Validate checks the numeric ranges accepted by the driver
func (o KeyboardOptions) Validate() error {
	if !o.Mode.Valid() {
		return fmt.Errorf("%w: mode %d out of range 0-%d", ErrInvalidOptions, int(o.Mode), int(ModeWave))
	}
	if o.Brightness < MinBrightness || o.Brightness > MaxBrightness {
		return fmt.Errorf("%w: brightness %d out of range %d-%d",
			ErrInvalidOptions, o.Brightness, MinBrightness, MaxBrightness)
	}
	return nil
}

// Equal reports whether both records encode to the same options line
func (o KeyboardOptions) Equal(other KeyboardOptions) bool {
	if o.Mode != other.Mode || o.Brightness != other.Brightness {
		return false
	}
	for _, zone := range Zones() {
		if Quantize(o.Color(zone)) != Quantize(other.Color(zone)) {
			return false
		}
	}
	return true
}

// RGB8 is a color quantized to 8 bits per channel
type RGB8 struct {
	R, G, B uint8
}

// Quantize rounds a normalized color to 8 bits per channel
func Quantize(c colorful.Color) RGB8 {
	r, g, b := c.Clamped().RGB255()
	return RGB8{R: r, G: g, B: b}
}

// FromRGB8 expands an 8 bit color into normalized channels
func FromRGB8(c RGB8) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
