package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdfmt/pkg/config"
)

// envVarPrefix is the prefix for all gomdfmt environment variables.
const envVarPrefix = "GOMDFMT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping binds one environment variable (without prefix) to a config field.
type envMapping struct {
	suffix string
	field  string
	typ    envFieldType
	help   string
}

// envMappings is applied in order, so errors are reported deterministically.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = []envMapping{
	{"WIDTH", "width", envTypeInt, "Wrap column (0 = no wrapping)"},
	{"HARD_BREAKS", "hard_breaks", envTypeBool, "Render hard breaks as newlines: true or false"},
	{"DISPLAY_WIDTH", "display_width", envTypeBool, "Count columns in terminal cells: true or false"},
	{"INVALID_UTF8", "invalid_utf8", envTypeString, "Invalid UTF-8 handling: error or replace"},
	{"INFER_CODE_LANGUAGE", "infer_code_language", envTypeBool, "Label unlabeled code blocks: true or false"},
	{"IGNORE", "ignore", envTypeSlice, "Comma-separated list of ignore patterns"},
	{"EXTENSIONS", "extensions", envTypeSlice, "Comma-separated list of Markdown file extensions"},
	{"BACKUPS_ENABLED", "backups.enabled", envTypeBool, "Enable backups when writing: true or false"},
	{"BACKUPS_MODE", "backups.mode", envTypeString, "Backup mode: sidecar or none"},
	{"JOBS", "jobs", envTypeInt, "Number of parallel workers (0 = auto)"},
	{"NO_BACKUPS", "no_backups", envTypeBool, "Disable backups: true or false"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOMDFMT_ (e.g., GOMDFMT_WIDTH).
// A nil getenv reads the process environment.
func LoadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}
	if getenv == nil {
		getenv = os.Getenv
	}

	for _, mapping := range envMappings {
		envVar := envVarPrefix + mapping.suffix
		value := getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "invalid_utf8":
		cfg.InvalidUTF8 = value
	case "backups.mode":
		cfg.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "hard_breaks":
		cfg.HardBreaks = value
	case "display_width":
		cfg.DisplayWidth = value
	case "infer_code_language":
		cfg.InferCodeLanguage = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "width":
		cfg.Width = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "extensions":
		cfg.Extensions = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for _, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + mapping.suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for _, mapping := range envMappings {
		vars[envVarPrefix+mapping.suffix] = mapping.help
	}
	return vars
}
