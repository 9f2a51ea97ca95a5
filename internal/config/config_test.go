package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	for _, k := range []string{EnvOriginX, EnvOriginY, EnvScale, EnvOutput} {
		t.Setenv(k, "")
	}
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults %+v, got %+v", Default(), cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	for _, k := range []string{EnvOriginX, EnvOriginY, EnvScale, EnvOutput} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// Set variables win over the file
	t.Setenv(EnvOutput, "from-env.ocd")

	path := filepath.Join(t.TempDir(), ".env")
	content := "OCD_ORIGIN_X=5555000\nOCD_ORIGIN_Y=4444000\nOCD_SCALE=15000\nOCD_OUTPUT=from-file.ocd\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	expected := Config{OriginX: 5555000, OriginY: 4444000, Scale: 15000, Output: "from-env.ocd"}
	if cfg != expected {
		t.Errorf("Expected %+v, got %+v", expected, cfg)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"malformed origin", EnvOriginX, "east"},
		{"malformed scale", EnvScale, "1:10000"},
		{"zero scale", EnvScale, "0"},
		{"negative scale", EnvScale, "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{EnvOriginX, EnvOriginY, EnvScale, EnvOutput} {
				t.Setenv(k, "")
			}
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("Expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
