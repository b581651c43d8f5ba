package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfPath is where the tuxedo-keyboard driver reads its options
	DefaultConfPath = "/etc/modprobe.d/tuxedo_keyboard.conf"

	settingsDir  = "tuxedo-keyboard-manager"
	settingsFile = "settings.yml"
)

// Settings controls the manager itself, not the keyboard
type Settings struct {
	ConfPath  string `yaml:"ConfPath"`
	LogLevel  string `yaml:"LogLevel"`
	JSONLogs  bool   `yaml:"JSONLogs"`
	WatchFile bool   `yaml:"WatchFile"`
}

func DefaultSettings() Settings {
	return Settings{
		ConfPath:  DefaultConfPath,
		LogLevel:  "info",
		JSONLogs:  false,
		WatchFile: true,
	}
}

// SettingsPath returns the per-user settings file location
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsDir, settingsFile), nil
}

// Load reads defaults, then the YAML file at path when it exists, then the
// environment. A missing file is not an error.
func Load(path string) (Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		if err := readFile(path, &settings); err != nil {
			return settings, err
		}
	}

	applyEnv(&settings, os.Getenv)

	if strings.TrimSpace(settings.ConfPath) == "" {
		return settings, fmt.Errorf("settings: empty ConfPath")
	}
	return settings, nil
}

func readFile(path string, settings *Settings) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open settings %s: %w", path, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(settings); err != nil {
		// empty document
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode settings %s: %w", path, err)
	}
	return nil
}

func applyEnv(settings *Settings, getenv func(string) string) {
	if v := getenv("TUXKBD_CONF_PATH"); v != "" {
		settings.ConfPath = v
	}
	if v := getenv("TUXKBD_LOG_LEVEL"); v != "" {
		settings.LogLevel = v
	}
	if getenv("TUXKBD_DEBUG") == "1" {
		settings.LogLevel = "debug"
	}
	if v := getenv("TUXKBD_JSON_LOGS"); v != "" {
		settings.JSONLogs = isTrue(v)
	}
	if v := getenv("TUXKBD_WATCH"); v != "" {
		settings.WatchFile = isTrue(v)
	}
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
