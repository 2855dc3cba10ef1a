package commonmark

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gomdfmt/pkg/mdast"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrInvalidUTF8 is wrapped by every *DecodeError.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrInternalConsistency is wrapped by every *InternalConsistencyError.
	// It means the tree handed to Render was built incorrectly.
	ErrInternalConsistency = errors.New("internal consistency failure")

	// ErrUnknownDecodePolicy is returned by ParseDecodePolicy.
	ErrUnknownDecodePolicy = errors.New("unknown invalid-utf8 policy")
)

// DecodeError reports an invalid or truncated UTF-8 sequence in a literal.
type DecodeError struct {
	// Kind is the kind of node whose literal failed to decode.
	Kind mdast.NodeKind

	// Offset is the byte offset of the bad sequence within that literal.
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte %d of %s literal", e.Offset, e.Kind)
}

func (e *DecodeError) Unwrap() error {
	return ErrInvalidUTF8
}

// InternalConsistencyError reports a node Render cannot emit: a kind outside
// the closed set, or a node missing the attributes its kind requires.
type InternalConsistencyError struct {
	Kind   mdast.NodeKind
	Reason string
}

func (e *InternalConsistencyError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unexpected node kind %s", e.Kind)
	}
	return fmt.Sprintf("malformed %s node: %s", e.Kind, e.Reason)
}

func (e *InternalConsistencyError) Unwrap() error {
	return ErrInternalConsistency
}
