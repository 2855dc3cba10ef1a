package configloader

import (
	"bytes"
	"fmt"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdfmt/pkg/config"
	"github.com/yaklabco/gomdfmt/pkg/fsutil"
	"github.com/yaklabco/gomdfmt/pkg/render/commonmark"
)

// narrowWidth is the smallest wrap column that does not draw a warning.
const narrowWidth = 20

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "backups.mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown keys).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownKeys lists the recognized top-level keys and, for mappings, their
// nested keys.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownKeys = map[string][]string{
	"width":               nil,
	"hard_breaks":         nil,
	"display_width":       nil,
	"invalid_utf8":        nil,
	"infer_code_language": nil,
	"ignore":              nil,
	"extensions":          nil,
	"backups":             {"enabled", "mode"},
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Width < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "width",
			Value:   cfg.Width,
			Message: "width must be >= 0 (0 disables wrapping)",
		})
	} else if cfg.Width > 0 && cfg.Width < narrowWidth {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "width",
			Value:   cfg.Width,
			Message: fmt.Sprintf("width %d is very narrow; most lines will wrap at every word", cfg.Width),
		})
	}

	if cfg.HardBreaks && cfg.Width > 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "width",
			Value:   cfg.Width,
			Message: "width is ignored when hard_breaks is enabled",
		})
	}

	if _, err := commonmark.ParseDecodePolicy(cfg.InvalidUTF8); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "invalid_utf8",
			Value:   cfg.InvalidUTF8,
			Message: fmt.Sprintf("invalid value %q; must be one of: error, replace", cfg.InvalidUTF8),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if _, err := fsutil.ParseBackupMode(cfg.Backups.Mode); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "backups.mode",
			Value:   cfg.Backups.Mode,
			Message: fmt.Sprintf("invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode),
		})
	}

	validateExtensions(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

func validateExtensions(cfg *config.Config, result *ValidationResult) {
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("extension %q must start with a dot, e.g. .md", ext),
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		for _, segment := range strings.Split(pattern, "/") {
			// path.Match returns an error only for malformed patterns
			if _, err := path.Match(segment, ""); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Field:   fmt.Sprintf("ignore[%d]", i),
					Value:   pattern,
					Message: fmt.Sprintf("invalid glob pattern: %v", err),
				})
				break
			}
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// CheckKeys reports unknown keys in a YAML config document as warnings,
// with line numbers. Malformed YAML yields no warnings; decoding reports it.
func CheckKeys(data []byte, filePath string) []ValidationError {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}

	var warnings []ValidationError
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		nested, ok := knownKeys[key.Value]
		if !ok {
			warnings = append(warnings, unknownKey(key, key.Value, filePath))
			continue
		}
		if nested == nil || value.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(value.Content); j += 2 {
			sub := value.Content[j]
			if !slices.Contains(nested, sub.Value) {
				warnings = append(warnings, unknownKey(sub, key.Value+"."+sub.Value, filePath))
			}
		}
	}
	return warnings
}

func unknownKey(node *yaml.Node, field, filePath string) ValidationError {
	return ValidationError{
		Field:    field,
		Value:    node.Value,
		Message:  "unknown key; it will be ignored",
		FilePath: filePath,
		Line:     node.Line,
	}
}
