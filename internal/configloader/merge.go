package configloader

import (
	"slices"

	"github.com/yaklabco/gomdfmt/pkg/config"
)

// Overrides carries values given explicitly on the command line. Nil
// pointers and nil slices leave the loaded value untouched, so a flag that
// was not passed never resets a config file setting.
type Overrides struct {
	Width             *int
	HardBreaks        *bool
	DisplayWidth      *bool
	InvalidUTF8       *string
	InferCodeLanguage *bool
	Jobs              *int

	// Ignore patterns are appended to the configured ones.
	Ignore []string

	// Extensions replace the configured list.
	Extensions []string

	// NoBackups disables backups when true.
	NoBackups bool
}

// merge applies o on top of base and returns a new configuration.
// Scalars overwrite when set, Ignore is appended, Extensions replace.
func merge(base *config.Config, o *Overrides) *config.Config {
	result := base.Clone()
	if o == nil {
		return result
	}

	if o.Width != nil {
		result.Width = *o.Width
	}
	if o.HardBreaks != nil {
		result.HardBreaks = *o.HardBreaks
	}
	if o.DisplayWidth != nil {
		result.DisplayWidth = *o.DisplayWidth
	}
	if o.InvalidUTF8 != nil {
		result.InvalidUTF8 = *o.InvalidUTF8
	}
	if o.InferCodeLanguage != nil {
		result.InferCodeLanguage = *o.InferCodeLanguage
	}
	if o.Jobs != nil {
		result.Jobs = *o.Jobs
	}
	if o.NoBackups {
		result.NoBackups = true
	}

	if o.Ignore != nil {
		result.Ignore = append(slices.Clone(result.Ignore), o.Ignore...)
	}
	if o.Extensions != nil {
		result.Extensions = slices.Clone(o.Extensions)
	}

	return result
}
