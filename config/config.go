package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mobile-next/swipedrag/actuator"
	"github.com/mobile-next/swipedrag/utils"
)

const (
	appName  = "swipedrag"
	fileName = "config.toml"

	DefaultDevicePattern = "touchpad"
	DefaultScale         = 1.0
	DefaultCommitDelay   = 1.2
)

// Config is the startup configuration, stored as TOML. DevicePattern is
// matched case-insensitively against libinput device names and CommitDelay
// is in seconds.
type Config struct {
	DevicePattern string  `toml:"device_pattern" json:"device_pattern"`
	Scale         float64 `toml:"scale" json:"scale"`
	CommitDelay   float64 `toml:"commit_delay" json:"commit_delay"`
	Backend       string  `toml:"backend" json:"backend"`
	XdotoolPath   string  `toml:"xdotool_path" json:"xdotool_path"`
	LibinputPath  string  `toml:"libinput_path" json:"libinput_path"`
}

func Default() Config {
	return Config{
		DevicePattern: DefaultDevicePattern,
		Scale:         DefaultScale,
		CommitDelay:   DefaultCommitDelay,
		Backend:       actuator.BackendXdotool,
		XdotoolPath:   "xdotool",
		LibinputPath:  "libinput",
	}
}

// CommitDelayDuration converts the commit delay to a time.Duration
func (c Config) CommitDelayDuration() time.Duration {
	return time.Duration(c.CommitDelay * float64(time.Second))
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DevicePattern) == "" {
		return fmt.Errorf("device_pattern must not be empty")
	}
	if c.Scale == 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("scale must be a finite non-zero number, got %v", c.Scale)
	}
	if c.CommitDelay < 0 || math.IsNaN(c.CommitDelay) || math.IsInf(c.CommitDelay, 0) {
		return fmt.Errorf("commit_delay must be a non-negative number of seconds, got %v", c.CommitDelay)
	}

	for _, b := range actuator.Backends() {
		if strings.EqualFold(c.Backend, b) {
			return nil
		}
	}
	return fmt.Errorf("backend must be one of %s, got %q", strings.Join(actuator.Backends(), ", "), c.Backend)
}

// Dir returns $XDG_CONFIG_HOME/swipedrag, falling back to ~/.config/swipedrag
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, appName)
}

// DefaultPath returns the config file location used when --config is not given
func DefaultPath() string {
	return filepath.Join(Dir(), fileName)
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	conf := Default()

	_, err := toml.DecodeFile(path, &conf)
	if errors.Is(err, os.ErrNotExist) {
		utils.Verbose("No config file at %s, using defaults", path)
		return conf, nil
	}
	if err != nil {
		return conf, fmt.Errorf("couldn't read config file %s: %w", path, err)
	}

	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	utils.Verbose("Loaded config from %s", path)
	return conf, nil
}

// Write encodes conf to path, creating the directory. Existing files are
// only replaced when overwrite is set.
func Write(path string, conf Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("couldn't create config directory: %w", err)
	}

	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("couldn't encode config: %w", err)
	}

	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("couldn't write config file: %w", err)
	}
	return nil
}
