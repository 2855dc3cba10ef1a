package commonmark

import (
	"fmt"
	"strings"
)

// DecodePolicy selects how Render treats text that is not valid UTF-8.
type DecodePolicy uint8

const (
	// DecodeStrict aborts the render and returns a *DecodeError.
	DecodeStrict DecodePolicy = iota

	// DecodeReplace writes U+FFFD for each invalid byte and keeps going.
	DecodeReplace
)

// Config file and flag spellings of the decode policies.
const (
	DecodePolicyError   = "error"
	DecodePolicyReplace = "replace"
)

// String returns the config spelling of the policy.
func (p DecodePolicy) String() string {
	switch p {
	case DecodeStrict:
		return DecodePolicyError
	case DecodeReplace:
		return DecodePolicyReplace
	default:
		return fmt.Sprintf("DecodePolicy(%d)", p)
	}
}

// ParseDecodePolicy converts "error" or "replace" (case-insensitive) into a
// DecodePolicy. An empty string selects DecodeStrict.
func ParseDecodePolicy(s string) (DecodePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", DecodePolicyError:
		return DecodeStrict, nil
	case DecodePolicyReplace:
		return DecodeReplace, nil
	default:
		return DecodeStrict, fmt.Errorf("%w: %q (valid: %s, %s)",
			ErrUnknownDecodePolicy, s, DecodePolicyError, DecodePolicyReplace)
	}
}

// Options controls a single Render call.
type Options struct {
	// Width is the wrap column. Zero (or a negative value) disables wrapping,
	// in which case soft breaks are kept as line breaks.
	Width int

	// HardBreaks renders hard line breaks as bare newlines instead of a
	// trailing backslash. It also disables wrapping.
	HardBreaks bool

	// DisplayWidth counts columns in terminal cells (East Asian wide
	// characters count as two) instead of codepoints.
	DisplayWidth bool

	// InvalidUTF8 selects the behavior on undecodable text.
	InvalidUTF8 DecodePolicy
}

// effectiveWidth returns the wrap width after applying HardBreaks.
func (o Options) effectiveWidth() int {
	if o.HardBreaks || o.Width < 0 {
		return 0
	}
	return o.Width
}
