// Package config resolves run settings from defaults, an optional YAML file,
// TERMSORT_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/lixenwraith/termsort/render"
	"github.com/lixenwraith/termsort/sorting"
)

const (
	appName  = "termsort"
	fileName = "config.yaml"

	envPrefix = "TERMSORT_"
)

// Glyphs overrides the theme glyphs, empty fields keep the default
type Glyphs struct {
	Element     string `yaml:"element"`
	Access      string `yaml:"access"`
	Sorted      string `yaml:"sorted"`
	Blank       string `yaml:"blank"`
	ANSIElement string `yaml:"ansi_element"`
}

// Theme overrides colors by name or #rrggbb, empty fields keep the default
type Theme struct {
	Element    string `yaml:"element"`
	Access     string `yaml:"access"`
	Sorted     string `yaml:"sorted"`
	Background string `yaml:"background"`
	Glyphs     Glyphs `yaml:"glyphs"`
}

// Config is the complete set of run settings
type Config struct {
	Algorithm string        `yaml:"algorithm"`
	Min       int           `yaml:"min"`
	Max       int           `yaml:"max"`    // 0 = half the terminal height
	Length    int           `yaml:"length"` // 0 = half the terminal width
	Delay     time.Duration `yaml:"delay"`
	NoColor   bool          `yaml:"no_color"`
	Sound     bool          `yaml:"sound"`
	Volume    float64       `yaml:"volume"`
	Debug     bool          `yaml:"debug"`
	LogDir    string        `yaml:"log_dir"`
	Theme     Theme         `yaml:"theme"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Algorithm: sorting.Default,
		Min:       1,
		Delay:     render.DefaultDelay,
		Volume:    0.5,
		LogDir:    "logs",
	}
}

// Dir returns the termsort configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, appName)
}

// File returns the default config file path
func File() string {
	return filepath.Join(Dir(), fileName)
}

// Load reads path over the defaults.
// An empty path means the default file, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = File()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays TERMSORT_* variables
func (c *Config) ApplyEnv() error {
	if v, ok := lookup("ALGORITHM"); ok {
		c.Algorithm = v
	}
	if v, ok := lookup("DELAY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sDELAY: %w", envPrefix, err)
		}
		c.Delay = d
	}
	for name, dst := range map[string]*bool{
		"NO_COLOR": &c.NoColor,
		"SOUND":    &c.Sound,
		"DEBUG":    &c.Debug,
	} {
		if v, ok := lookup(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, name, err)
			}
			*dst = b
		}
	}
	if v, ok := lookup("VOLUME"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sVOLUME: %w", envPrefix, err)
		}
		c.Volume = f
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
