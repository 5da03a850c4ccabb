// Package goalfile reads and writes goal definitions as TOML or YAML, so a
// tracking session can skip the goal questions.
package goalfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/habitrack/internal/model"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .toml, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported goals file format")

// document is the on-disk shape of a goals file.
type document struct {
	Goals []model.Goal `toml:"goals" yaml:"goals"`
}

// Load reads goals from path. The format is chosen by extension.
func Load(path string) ([]model.Goal, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-chosen goals file
	if err != nil {
		return nil, fmt.Errorf("reading goals file: %w", err)
	}

	var doc document
	switch format(path) {
	case "toml":
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if err := Validate(doc.Goals); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc.Goals, nil
}

// Save writes goals to path in the format chosen by extension.
func Save(path string, goals []model.Goal) error {
	doc := document{Goals: goals}

	var buf bytes.Buffer
	switch format(path) {
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return fmt.Errorf("encoding goals: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding goals: %w", err)
		}
		_ = enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating goals dir: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o600)
}

// Validate rejects blank and duplicate goal names and blank activities.
func Validate(goals []model.Goal) error {
	seen := make(map[string]bool, len(goals))
	for i, g := range goals {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return fmt.Errorf("goal %d has no name", i+1)
		}
		if seen[name] {
			return fmt.Errorf("duplicate goal %q", name)
		}
		seen[name] = true

		for _, a := range append(append([]string{}, g.Do...), g.DoNot...) {
			if strings.TrimSpace(a) == "" {
				return fmt.Errorf("goal %q has a blank activity", name)
			}
		}
	}
	return nil
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
