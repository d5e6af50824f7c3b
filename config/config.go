package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults match the fixed behavior of the picker; every knob can be
// overridden through the environment or a .env file next to the executable.
const (
	DefaultRadius        = 120 // loupe circle radius in px
	DefaultZoom          = 8   // magnification factor
	DefaultTickMs        = 16  // ~60 fps redraw
	DefaultOffsetX       = 40  // window offset from cursor
	DefaultOffsetY       = 40
	DefaultBorderWidth   = 2
	DefaultMarkerSize    = 6
	DefaultNudgeStep     = 1
	DefaultNudgeStepFast = 5

	// EnvPathVar optionally points at a config file when no .env sits next
	// to the executable.
	EnvPathVar = "COLOR_LOUPE_ENV"
)

type Config struct {
	Radius            int
	Zoom              int
	TickInterval      time.Duration
	OffsetX           int
	OffsetY           int
	BorderWidth       int
	MarkerSize        int
	NudgeStep         int
	NudgeStepFast     int
	EnableFileLogging bool
}

// Diameter is the loupe window side length.
func (c *Config) Diameter() int { return 2 * c.Radius }

// Default returns the built-in configuration without consulting the environment.
func Default() *Config {
	return &Config{
		Radius:        DefaultRadius,
		Zoom:          DefaultZoom,
		TickInterval:  DefaultTickMs * time.Millisecond,
		OffsetX:       DefaultOffsetX,
		OffsetY:       DefaultOffsetY,
		BorderWidth:   DefaultBorderWidth,
		MarkerSize:    DefaultMarkerSize,
		NudgeStep:     DefaultNudgeStep,
		NudgeStepFast: DefaultNudgeStepFast,
	}
}

// Load reads configuration from sources in priority order:
// 1) .env in the application (executable) directory
// 2) if not found, the COLOR_LOUPE_ENV env var as a path to a config file
// 3) the process environment
// Invalid or missing values fall back to the defaults.
func Load() (*Config, error) {
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := Default()
	cfg.Radius = envInt("LOUPE_RADIUS", cfg.Radius)
	cfg.Zoom = envInt("LOUPE_ZOOM", cfg.Zoom)
	cfg.TickInterval = time.Duration(envInt("LOUPE_TICK_MS", DefaultTickMs)) * time.Millisecond
	cfg.OffsetX = envInt("LOUPE_OFFSET_X", cfg.OffsetX)
	cfg.OffsetY = envInt("LOUPE_OFFSET_Y", cfg.OffsetY)
	cfg.BorderWidth = envInt("LOUPE_BORDER_WIDTH", cfg.BorderWidth)
	cfg.MarkerSize = envInt("LOUPE_MARKER_SIZE", cfg.MarkerSize)
	cfg.NudgeStep = envInt("LOUPE_NUDGE_STEP", cfg.NudgeStep)
	cfg.NudgeStepFast = envInt("LOUPE_NUDGE_STEP_FAST", cfg.NudgeStepFast)
	cfg.EnableFileLogging = strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true"

	// The magnification must leave at least one source pixel per frame.
	if cfg.Zoom > cfg.Diameter() {
		cfg.Zoom = cfg.Diameter()
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(EnvPathVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
