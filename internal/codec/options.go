// Package codec converts keyboard options to and from the modprobe.d line
// understood by the tuxedo-keyboard driver.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tuxedo-keyboard-manager/internal/models"
)

const (
	// Directive and ModuleName open every options line
	Directive  = "options"
	ModuleName = "tuxedo-keyboard"

	// LineFormat is the exact layout written to disk
	LineFormat = "options tuxedo-keyboard mode=%d brightness=%d color_left=0x%02X%02X%02X color_center=0x%02X%02X%02X color_right=0x%02X%02X%02X"
)

const (
	keyMode        = "mode"
	keyBrightness  = "brightness"
	keyColorLeft   = "color_left"
	keyColorCenter = "color_center"
	keyColorRight  = "color_right"
)

var (
	ErrMalformedLine = errors.New("malformed options line")
	ErrNoOptionsLine = errors.New("no tuxedo-keyboard options line")
)

var zoneKeys = map[string]models.Zone{
	keyColorLeft:   models.ZoneLeft,
	keyColorCenter: models.ZoneCenter,
	keyColorRight:  models.ZoneRight,
}

// Format encodes opts as a single options line without a trailing newline
func Format(opts models.KeyboardOptions) string {
	l := models.Quantize(opts.Left)
	c := models.Quantize(opts.Center)
	r := models.Quantize(opts.Right)

	return fmt.Sprintf(LineFormat,
		int(opts.Mode),
		opts.Brightness,
		l.R, l.G, l.B,
		c.R, c.G, c.B,
		r.R, r.G, r.B,
	)
}

// Parse decodes one options line. Parameters may appear in any order and
// unknown parameters are ignored, but all five known ones must be present.
func Parse(line string) (models.KeyboardOptions, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != Directive || fields[1] != ModuleName {
		return models.KeyboardOptions{}, fmt.Errorf("%w: expected %q prefix", ErrMalformedLine, Directive+" "+ModuleName)
	}

	opts := models.DefaultOptions()
	seen := make(map[string]bool, 5)

	for _, field := range fields[2:] {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key == "" {
			return models.KeyboardOptions{}, fmt.Errorf("%w: parameter %q is not key=value", ErrMalformedLine, field)
		}

		switch key {
		case keyMode:
			n, err := parseNumber(key, value, 10, 0xFF)
			if err != nil {
				return models.KeyboardOptions{}, err
			}
			opts.Mode = models.Mode(n)
		case keyBrightness:
			n, err := parseNumber(key, value, 10, 0xFFFF)
			if err != nil {
				return models.KeyboardOptions{}, err
			}
			opts.Brightness = int(n)
		case keyColorLeft, keyColorCenter, keyColorRight:
			n, err := parseNumber(key, value, 0, 0xFFFFFF)
			if err != nil {
				return models.KeyboardOptions{}, err
			}
			opts.SetColor(zoneKeys[key], models.FromRGB8(unpackRGB(n)))
		default:
			continue
		}
		seen[key] = true
	}

	for _, key := range []string{keyMode, keyBrightness, keyColorLeft, keyColorCenter, keyColorRight} {
		if !seen[key] {
			return models.KeyboardOptions{}, fmt.Errorf("%w: missing %s", ErrMalformedLine, key)
		}
	}

	if err := opts.Validate(); err != nil {
		return models.KeyboardOptions{}, err
	}
	return opts, nil
}

// ParseFile finds and decodes the first tuxedo-keyboard options line in
// the content of a modprobe.d file
func ParseFile(content string) (models.KeyboardOptions, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == Directive && fields[1] == ModuleName {
			return Parse(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return models.KeyboardOptions{}, fmt.Errorf("scan options file: %w", err)
	}
	return models.KeyboardOptions{}, ErrNoOptionsLine
}

// parseNumber reads mode and brightness as decimal, like the %d they are
// written with; colors use base 0 so the 0x prefix is honoured
func parseNumber(key, value string, base int, limit uint64) (uint64, error) {
	n, err := strconv.ParseUint(value, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrMalformedLine, key, value, err)
	}
	if n > limit {
		return 0, fmt.Errorf("%w: %s=%q exceeds %#x", ErrMalformedLine, key, value, limit)
	}
	return n, nil
}

func unpackRGB(n uint64) models.RGB8 {
	return models.RGB8{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
	}
}
