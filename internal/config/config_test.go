package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PIPEKIT_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDir_HonorsHomeOverride(t *testing.T) {
	dir := setupHome(t)
	if Dir() != dir {
		t.Errorf("Dir() = %q, want %q", Dir(), dir)
	}
	if FilePath() != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", FilePath())
	}
}

func TestLoad_Defaults(t *testing.T) {
	setupHome(t)
	Load()

	if OutputDir() != "." {
		t.Errorf("OutputDir() = %q, want %q", OutputDir(), ".")
	}
	if LogLevel() != "warn" {
		t.Errorf("LogLevel() = %q, want %q", LogLevel(), "warn")
	}
	if LogFormat() != "text" {
		t.Errorf("LogFormat() = %q, want %q", LogFormat(), "text")
	}
}

func TestSet_PersistsAndReloads(t *testing.T) {
	setupHome(t)
	Load()

	if err := Set(KeyOutputDir, "defs"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "output_dir: defs") {
		t.Errorf("config file missing key, got:\n%s", data)
	}

	viper.Reset()
	Load()
	if OutputDir() != "defs" {
		t.Errorf("OutputDir() after reload = %q, want %q", OutputDir(), "defs")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("PIPEKIT_LOG_LEVEL", "debug")
	Load()

	if LogLevel() != "debug" {
		t.Errorf("LogLevel() = %q, want %q", LogLevel(), "debug")
	}
}
