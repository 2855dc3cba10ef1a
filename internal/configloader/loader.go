// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gomdfmt/pkg/config"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// UserConfigDir replaces $XDG_CONFIG_HOME/gomdfmt when non-empty.
	UserConfigDir string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Getenv reads environment variables; nil means os.Getenv.
	Getenv func(string) string

	// Overrides contains configuration from CLI flags.
	// These take highest precedence.
	Overrides *Overrides
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.Overrides)
//  2. Environment variables (GOMDFMT_*)
//  3. Explicit config file (opts.ExplicitPath), or else
//     project config (.gomdfmt.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/gomdfmt/config.yaml)
//  5. System config (/etc/gomdfmt/config.yaml)
//  6. Defaults
//
// Each file only overrides the keys it sets.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir, opts.UserConfigDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig || opts.ExplicitPath != ""},
		{"explicit", opts.ExplicitPath, false},
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		if err := loadConfigFile(cfg, layer.path, result); err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg, opts.Getenv); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	cfg = merge(cfg, opts.Overrides)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, &validation.Errors[0])
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile overlays the YAML file at path onto cfg, recording
// unknown keys as warnings.
func loadConfigFile(cfg *config.Config, path string, result *LoadResult) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	for _, w := range CheckKeys(content, path) {
		result.Warnings = append(result.Warnings, w.Error())
	}

	if err := config.DecodeInto(cfg, content); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
