// Package config loads hanoi settings from a TOML file.
//
// The file is optional. When present it lives at
// $XDG_CONFIG_HOME/hanoi/config.toml (or ~/.config/hanoi/config.toml):
//
//	disks = 3
//	max_disks = 20
//
//	[render]
//	fill = "#"
//	base = "="
//	color = true
//
//	[play]
//	delay = "300ms"
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "file"   # file, redis or none
//	ttl = "24h"
//	redis_addr = "localhost:6379"
//
// Missing keys keep their [Default] values. Command-line flags override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hanoi/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "hanoi"

// DiskLimit bounds max_disks. A solve of n disks takes 2^n-1 moves.
const DiskLimit = 30

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds every setting read from the config file.
type Config struct {
	// Disks is used when no disk count is given on the command line.
	// Zero means prompt for it.
	Disks    int `toml:"disks"`
	MaxDisks int `toml:"max_disks"`

	Render Render      `toml:"render"`
	Play   Play        `toml:"play"`
	Server Server      `toml:"server"`
	Cache  CacheConfig `toml:"cache"`
}

// Render configures board glyphs.
type Render struct {
	Fill  string `toml:"fill"`
	Base  string `toml:"base"`
	Color bool   `toml:"color"`
}

// Play configures the animated solve.
type Play struct {
	Delay Duration `toml:"delay"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects and tunes the solution cache.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	TTL       Duration `toml:"ttl"`
	RedisAddr string   `toml:"redis_addr"`
}

// Duration is a time.Duration written as a string such as "300ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Disks:    0,
		MaxDisks: 20,
		Render:   Render{Fill: "#", Base: "=", Color: true},
		Play:     Play{Delay: Duration{300 * time.Millisecond}},
		Server:   Server{Addr: ":8080"},
		Cache: CacheConfig{
			Backend:   BackendFile,
			TTL:       Duration{24 * time.Hour},
			RedisAddr: "localhost:6379",
		},
	}
}

// Load reads the TOML file at path on top of [Default] and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault loads the file at [Path] if it exists, else returns [Default].
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.MaxDisks < 1 || c.MaxDisks > DiskLimit {
		return errors.New(errors.ErrCodeInvalidConfig, "max_disks must be between 1 and %d, got %d", DiskLimit, c.MaxDisks)
	}
	if err := errors.ValidateDiskCount(c.Disks, c.MaxDisks); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "disks")
	}
	glyphs := []struct{ name, value string }{
		{"render.fill", c.Render.Fill},
		{"render.base", c.Render.Base},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be a single character, got %q", g.name, g.value)
		}
	}
	if c.Play.Delay.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "play.delay must not be negative")
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache.backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	return nil
}

// FillRune returns the first rune of Render.Fill.
func (c Config) FillRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Render.Fill)
	return r
}

// BaseRune returns the first rune of Render.Base.
func (c Config) BaseRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Render.Base)
	return r
}

// Path returns the config file location using the XDG convention.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the cache directory using the XDG convention (~/.cache/hanoi/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, ".cache", AppName), nil
}
