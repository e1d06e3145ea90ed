package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEngineEmbeddedDefault(t *testing.T) {
	// Run from a scratch directory so no ./configs is picked up.
	t.Chdir(t.TempDir())

	cfg, err := LoadEngine("")
	if err != nil {
		t.Fatalf("LoadEngine() failed: %v", err)
	}

	want := DefaultEngineConfig()
	if cfg != want {
		t.Errorf("embedded default = %+v, expected %+v", cfg, want)
	}
}

func TestLoadEngineCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	data := "screen:\n  width: 96\n  height: 32\ntick_rate: 30\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadEngine(path)
	if err != nil {
		t.Fatalf("LoadEngine() failed: %v", err)
	}
	if cfg.Screen.Width != 96 || cfg.Screen.Height != 32 || cfg.TickRate != 30 {
		t.Errorf("LoadEngine() = %+v, expected 96x32 at 30", cfg)
	}
}

func TestLoadEngineRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "screen:\n  width: 0\n  height: 32\ntick_rate: 20\n"},
		{"negative tick rate", "screen:\n  width: 96\n  height: 32\ntick_rate: -1\n"},
		{"unparseable", ":::\n:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "engine.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := LoadEngine(path); err == nil {
				t.Errorf("LoadEngine() accepted %q", tc.yaml)
			}
		})
	}
}

func TestLoadEngineMissingCustomPath(t *testing.T) {
	if _, err := LoadEngine(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadEngine() with a missing explicit path should fail")
	}
}

func TestLoadAppDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	beans, err := LoadBeans("")
	if err != nil {
		t.Fatalf("LoadBeans() failed: %v", err)
	}
	if beans != DefaultBeansConfig() {
		t.Errorf("LoadBeans() = %+v, expected embedded default %+v", beans, DefaultBeansConfig())
	}

	bounce, err := LoadBounce("")
	if err != nil {
		t.Fatalf("LoadBounce() failed: %v", err)
	}
	if bounce != DefaultBounceConfig() {
		t.Errorf("LoadBounce() = %+v, expected embedded default %+v", bounce, DefaultBounceConfig())
	}
}
