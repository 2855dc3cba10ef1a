// Package config defines the configuration types for gomdfmt.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import (
	"fmt"

	"github.com/yaklabco/gomdfmt/pkg/fsutil"
	"github.com/yaklabco/gomdfmt/pkg/render/commonmark"
)

// Accepted values for Config.InvalidUTF8.
const (
	InvalidUTF8Error   = commonmark.DecodePolicyError
	InvalidUTF8Replace = commonmark.DecodePolicyReplace
)

// BackupsConfig controls backup behavior when writing files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration structure for gomdfmt.
type Config struct {
	// Width is the wrap column. Zero disables wrapping.
	Width int `yaml:"width"`

	// HardBreaks renders hard line breaks as bare newlines and disables wrapping.
	HardBreaks bool `yaml:"hard_breaks"`

	// DisplayWidth counts columns in terminal cells instead of codepoints.
	DisplayWidth bool `yaml:"display_width"`

	// InvalidUTF8 selects what happens on malformed text: "error" or "replace".
	InvalidUTF8 string `yaml:"invalid_utf8"`

	// InferCodeLanguage labels unlabeled fenced code blocks.
	InferCodeLanguage bool `yaml:"infer_code_language"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Extensions lists the file extensions treated as Markdown.
	Extensions []string `yaml:"extensions"`

	// Backups configures backup behavior when writing.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// NoBackups disables backup creation regardless of Backups.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with the defaults.
func NewConfig() *Config {
	return &Config{
		Width:       0,
		InvalidUTF8: InvalidUTF8Error,
		Extensions:  []string{".md", ".markdown"},
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    string(fsutil.BackupSidecar),
		},
	}
}

// RenderOptions converts the rendering keys into renderer options.
func (c *Config) RenderOptions() (commonmark.Options, error) {
	policy, err := commonmark.ParseDecodePolicy(c.InvalidUTF8)
	if err != nil {
		return commonmark.Options{}, fmt.Errorf("invalid_utf8: %w", err)
	}

	return commonmark.Options{
		Width:        c.Width,
		HardBreaks:   c.HardBreaks,
		DisplayWidth: c.DisplayWidth,
		InvalidUTF8:  policy,
	}, nil
}

// BackupMode resolves the effective backup mode.
func (c *Config) BackupMode() (fsutil.BackupMode, error) {
	if c.NoBackups || !c.Backups.Enabled {
		return fsutil.BackupNone, nil
	}
	mode, err := fsutil.ParseBackupMode(c.Backups.Mode)
	if err != nil {
		return "", fmt.Errorf("backups.mode: %w", err)
	}
	return mode, nil
}
