package iconset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	EnvPublicDir = "CORTEX_ICONS_PUBLIC_DIR"
	EnvIconsDir  = "CORTEX_ICONS_DIR"
	EnvPreview   = "CORTEX_ICONS_PREVIEW"
	EnvListen    = "CORTEX_ICONS_LISTEN"
	EnvDevMode   = "CORTEX_ICONS_DEV"
	EnvDebug     = "CORTEX_ICONS_DEBUG"
	EnvStdioLog  = "CORTEX_ICONS_STDIO_LOG"

	DefaultPublicDir = "hosting/public"
	// DefaultIconsSubdir is relative to the public directory.
	DefaultIconsSubdir = "assets/branding/icons"
)

// ErrInvalidConfig is returned when an environment variable can't be parsed.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config contains settings for one generator run.
//
// PublicDir receives favicon.ico and the Apple touch icons; IconsDir receives
// the sized cortex-NxN.png files.
type Config struct {
	PublicDir   string
	IconsDir    string
	PreviewPath string
	ListenAddr  string
	DevMode     bool
	Debug       bool
	StdioLog    string
}

// DefaultConfigFromEnv returns the built-in defaults overridden by any
// CORTEX_ICONS_* variables that are set.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		PublicDir:   envOr(EnvPublicDir, DefaultPublicDir),
		PreviewPath: os.Getenv(EnvPreview),
		ListenAddr:  os.Getenv(EnvListen),
		StdioLog:    os.Getenv(EnvStdioLog),
	}
	cfg.IconsDir = envOr(EnvIconsDir, filepath.Join(cfg.PublicDir, DefaultIconsSubdir))

	var err error
	if cfg.DevMode, err = envBool(EnvDevMode); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = envBool(EnvDebug); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean (got %q): %v", ErrInvalidConfig, key, raw, err)
	}
	return parsed, nil
}
