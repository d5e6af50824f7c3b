package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Radius != DefaultRadius {
		t.Errorf("Expected Radius %d, got %d", DefaultRadius, cfg.Radius)
	}
	if cfg.Zoom != DefaultZoom {
		t.Errorf("Expected Zoom %d, got %d", DefaultZoom, cfg.Zoom)
	}
	if cfg.TickInterval != DefaultTickMs*time.Millisecond {
		t.Errorf("Expected TickInterval %v, got %v", DefaultTickMs*time.Millisecond, cfg.TickInterval)
	}
	if cfg.Diameter() != 2*DefaultRadius {
		t.Errorf("Expected Diameter %d, got %d", 2*DefaultRadius, cfg.Diameter())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	os.Setenv("LOUPE_RADIUS", "60")
	os.Setenv("LOUPE_ZOOM", "4")
	os.Setenv("LOUPE_TICK_MS", "33")
	os.Setenv("LOUPE_NUDGE_STEP_FAST", "10")
	os.Setenv("ENABLE_FILE_LOGGING", "true")

	defer func() {
		os.Unsetenv("LOUPE_RADIUS")
		os.Unsetenv("LOUPE_ZOOM")
		os.Unsetenv("LOUPE_TICK_MS")
		os.Unsetenv("LOUPE_NUDGE_STEP_FAST")
		os.Unsetenv("ENABLE_FILE_LOGGING")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Radius != 60 {
		t.Errorf("Expected Radius 60, got %d", cfg.Radius)
	}
	if cfg.Zoom != 4 {
		t.Errorf("Expected Zoom 4, got %d", cfg.Zoom)
	}
	if cfg.TickInterval != 33*time.Millisecond {
		t.Errorf("Expected TickInterval 33ms, got %v", cfg.TickInterval)
	}
	if cfg.NudgeStepFast != 10 {
		t.Errorf("Expected NudgeStepFast 10, got %d", cfg.NudgeStepFast)
	}
	if !cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging true")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	os.Setenv("LOUPE_RADIUS", "-5")
	os.Setenv("LOUPE_ZOOM", "not-a-number")

	defer func() {
		os.Unsetenv("LOUPE_RADIUS")
		os.Unsetenv("LOUPE_ZOOM")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Radius != DefaultRadius {
		t.Errorf("Expected invalid radius to fall back to %d, got %d", DefaultRadius, cfg.Radius)
	}
	if cfg.Zoom != DefaultZoom {
		t.Errorf("Expected invalid zoom to fall back to %d, got %d", DefaultZoom, cfg.Zoom)
	}
}

func TestZoomClampedToDiameter(t *testing.T) {
	os.Setenv("LOUPE_RADIUS", "2")
	os.Setenv("LOUPE_ZOOM", "100")

	defer func() {
		os.Unsetenv("LOUPE_RADIUS")
		os.Unsetenv("LOUPE_ZOOM")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Zoom > cfg.Diameter() {
		t.Errorf("Expected zoom clamped to diameter %d, got %d", cfg.Diameter(), cfg.Zoom)
	}
}
