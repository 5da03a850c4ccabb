// Package config loads and saves habitrack's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all habitrack configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Export  ExportConfig  `toml:"export"`
	Chart   ChartConfig   `toml:"chart"`
	Store   StoreConfig   `toml:"store"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	GoalsFile string `toml:"goals_file,omitempty"`
	Journal   bool   `toml:"journal"`
	LogLevel  string `toml:"log_level"`
}

// ExportConfig controls where and how the workbook is written.
type ExportConfig struct {
	OutputPath   string `toml:"output_path,omitempty"`
	ImageDir     string `toml:"image_dir,omitempty"`
	MinBlockRows int    `toml:"min_block_rows"`
}

// ChartConfig controls chart image size and colours.
type ChartConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	PassColor string `toml:"pass_color"`
	FailColor string `toml:"fail_color"`
}

// StoreConfig holds session journal settings.
type StoreConfig struct {
	Path string `toml:"path,omitempty"`
}

// OutputEnv names the environment variable that overrides the workbook path.
const OutputEnv = "HABITRACK_OUTPUT"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Export: ExportConfig{
			MinBlockRows: 23,
		},
		Chart: ChartConfig{
			Width:     400,
			Height:    300,
			PassColor: "#008000",
			FailColor: "#FF0000",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "habitrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "habitrack")
}

// Path returns the full path to the default config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory for workbooks and the journal.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "habitrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "habitrack")
}

// Load reads the default config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from flag or XDG dir
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Export.MinBlockRows <= 0 {
		cfg.Export.MinBlockRows = DefaultConfig().Export.MinBlockRows
	}
	applyEnv(&cfg)

	return cfg, nil
}

// applyEnv lets HABITRACK_OUTPUT override the configured workbook path.
// Command-line flags are applied by the caller afterwards and win over both.
func applyEnv(cfg *Config) {
	if p := os.Getenv(OutputEnv); p != "" {
		cfg.Export.OutputPath = p
	}
}

// Save writes the config to path, creating its directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-chosen config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// OutputPath returns the configured workbook path, or goals.xlsx in the data dir.
func OutputPath(cfg Config) string {
	if cfg.Export.OutputPath != "" {
		return cfg.Export.OutputPath
	}
	return filepath.Join(DataDir(), "goals.xlsx")
}

// ImageDir returns the parent directory for temporary chart images.
func ImageDir(cfg Config) string {
	if cfg.Export.ImageDir != "" {
		return cfg.Export.ImageDir
	}
	return os.TempDir()
}

// StorePath returns the session journal database path.
func StorePath(cfg Config) string {
	if cfg.Store.Path != "" {
		return cfg.Store.Path
	}
	return filepath.Join(DataDir(), "journal.db")
}
