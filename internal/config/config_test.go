package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Export.MinBlockRows != 23 {
		t.Errorf("MinBlockRows = %d, want 23", cfg.Export.MinBlockRows)
	}
	if cfg.Chart.Width != 400 || cfg.Chart.Height != 300 {
		t.Errorf("chart size = %dx%d, want 400x300", cfg.Chart.Width, cfg.Chart.Height)
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv(OutputEnv, "")
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.Export.OutputPath = "/tmp/out.xlsx"
	cfg.General.Journal = true
	cfg.Chart.PassColor = "#00AA00"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists(path) {
		t.Fatal("config file not created")
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[export]\nmin_block_rows = 0\n\n[chart]\nwidth = 640\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Chart.Width != 640 {
		t.Errorf("Width = %d, want 640", cfg.Chart.Width)
	}
	if cfg.Chart.Height != 300 {
		t.Errorf("Height = %d, want default 300", cfg.Chart.Height)
	}
	if cfg.Export.MinBlockRows != 23 {
		t.Errorf("MinBlockRows = %d, want default 23", cfg.Export.MinBlockRows)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[export\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestOutputPath_Default(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg := DefaultConfig()
	if got := OutputPath(cfg); got != filepath.Join("/data", "habitrack", "goals.xlsx") {
		t.Errorf("default OutputPath = %q", got)
	}

	cfg.Export.OutputPath = "/cfg/goals.xlsx"
	if got := OutputPath(cfg); got != "/cfg/goals.xlsx" {
		t.Errorf("config OutputPath = %q", got)
	}
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[export]\noutput_path = \"/cfg/goals.xlsx\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(OutputEnv, "")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Export.OutputPath != "/cfg/goals.xlsx" {
		t.Errorf("OutputPath = %q, want config value", cfg.Export.OutputPath)
	}

	t.Setenv(OutputEnv, "/env/goals.xlsx")
	cfg, err = LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Export.OutputPath != "/env/goals.xlsx" {
		t.Errorf("OutputPath = %q, want env value", cfg.Export.OutputPath)
	}

	cfg, err = LoadFrom(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Export.OutputPath != "/env/goals.xlsx" {
		t.Errorf("OutputPath without file = %q, want env value", cfg.Export.OutputPath)
	}
}
