// Package descerrors provides structured error types for cresttools.
//
// Every failure in a descriptor transformation is fatal; these types let
// callers distinguish the failure kinds via errors.Is() and errors.As()
// without string matching.
//
// # Error Categories
//
//   - ReferenceError: a resource, schema, or error reference has no target
//   - UnsupportedValueError: an enum value outside the supported set
//   - DuplicatePathError: a synthesized path key collides with an existing one
//   - InvalidReferenceError: a $ref that does not point into local definitions
//   - UnsupportedTypeError: a JSON Schema type outside the supported set
//
// # Usage with errors.Is
//
//	doc, err := transform.Transform(desc)
//	if err != nil {
//	    if errors.Is(err, descerrors.ErrReference) {
//	        // a reference did not resolve; fix the descriptor and re-run
//	    }
//	}
package descerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrUnsupportedValue indicates an enum value outside the supported set.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrDuplicatePath indicates a non-unique output path.
	ErrDuplicatePath = errors.New("duplicate path")

	// ErrInvalidReference indicates a malformed schema reference.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrUnsupportedType indicates an unsupported JSON Schema type.
	ErrUnsupportedType = errors.New("unsupported schema type")
)

// ReferenceError represents a failure to resolve a descriptor reference.
// This includes missing anchors and unregistered external documents.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Kind is the referenced entity kind: "service", "definition", or "error"
	Kind string
	// Document is the external document id, if the reference was qualified
	Document string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "unresolvable reference"
	if e.Kind != "" {
		msg += " to " + e.Kind
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Document != "" {
		msg += fmt.Sprintf(" (document %q)", e.Document)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// UnsupportedValueError represents an enum value the transformation cannot
// express: an unknown create mode, query type, paging mode, parameter
// source, or HTTP method.
type UnsupportedValueError struct {
	// Field names the descriptor field carrying the value
	Field string
	// Value is the unsupported value
	Value any
}

// Error returns a human-readable error message.
func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported %s: %v", e.Field, e.Value)
}

// Is reports whether target matches this error type.
func (e *UnsupportedValueError) Is(target error) bool {
	return target == ErrUnsupportedValue
}

// DuplicatePathError represents a non-unique output path: either a
// synthesized fragment collides with an existing path key, or a raw path
// name already contains the fragment separator.
type DuplicatePathError struct {
	// Path is the offending path name
	Path string
	// Fragment is the synthesized fragment, if one was attempted
	Fragment string
	// Message describes the collision
	Message string
}

// Error returns a human-readable error message.
func (e *DuplicatePathError) Error() string {
	msg := "duplicate path"
	if e.Path != "" {
		msg += ": " + e.Path
		if e.Fragment != "" {
			msg += "#" + e.Fragment
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DuplicatePathError) Is(target error) bool {
	return target == ErrDuplicatePath
}

// InvalidReferenceError represents a $ref that does not point into the
// local definitions section.
type InvalidReferenceError struct {
	// Ref is the malformed reference value
	Ref string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidReferenceError) Error() string {
	msg := "invalid JSON reference"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// UnsupportedTypeError represents a JSON Schema type value outside the
// supported object/array/null/boolean/integer/number/string set.
type UnsupportedTypeError struct {
	// Type is the unsupported type value
	Type string
}

// Error returns a human-readable error message.
func (e *UnsupportedTypeError) Error() string {
	return "unsupported JSON schema type: " + e.Type
}

// Is reports whether target matches this error type.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
