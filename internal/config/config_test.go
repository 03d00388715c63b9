package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSurfaceHeight(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{320, 250},
		{767, 250},
		{768, 250},
		{769, 300},
		{1920, 300},
	}
	for _, tt := range tests {
		if got := SurfaceHeight(tt.width); got != tt.want {
			t.Errorf("SurfaceHeight(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wishes.yaml")
	data := "db: /tmp/other.db\nnoise: simplex\nwidth: 640\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.DBPath = "/tmp/other.db"
	want.Noise = NoiseSimplex
	want.Width = 640
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsUnknownNoise(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wishes.yaml")
	if err := os.WriteFile(path, []byte("noise: worley\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for unknown noise source")
	}
}
