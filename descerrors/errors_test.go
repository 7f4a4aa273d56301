package descerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "reference error",
			err:      &ReferenceError{Ref: "#/services/users", Kind: "service"},
			sentinel: ErrReference,
		},
		{
			name:     "unsupported value error",
			err:      &UnsupportedValueError{Field: "create mode", Value: "BOGUS"},
			sentinel: ErrUnsupportedValue,
		},
		{
			name:     "duplicate path error",
			err:      &DuplicatePathError{Path: "/users", Fragment: "1.0_read"},
			sentinel: ErrDuplicatePath,
		},
		{
			name:     "invalid reference error",
			err:      &InvalidReferenceError{Ref: "#/errors/notFound"},
			sentinel: ErrInvalidReference,
		},
		{
			name:     "unsupported type error",
			err:      &UnsupportedTypeError{Type: "tuple"},
			sentinel: ErrUnsupportedType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			// wrapping preserves the match
			wrapped := fmt.Errorf("transform failed: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	err := &ReferenceError{Ref: "#/services/users"}
	assert.False(t, errors.Is(err, ErrUnsupportedValue))
	assert.False(t, errors.Is(err, ErrDuplicatePath))
	assert.False(t, errors.Is(err, ErrInvalidReference))
	assert.False(t, errors.Is(err, ErrUnsupportedType))
}

func TestErrorsAs(t *testing.T) {
	var refErr *ReferenceError
	err := fmt.Errorf("run: %w", &ReferenceError{
		Ref:      "other#/definitions/user",
		Kind:     "definition",
		Document: "other",
	})
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "other", refErr.Document)
	assert.Equal(t, "definition", refErr.Kind)
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "reference with document",
			err: &ReferenceError{
				Ref:      "other#/services/users",
				Kind:     "service",
				Document: "other",
				Message:  "document not registered",
			},
			expected: `unresolvable reference to service: other#/services/users (document "other"): document not registered`,
		},
		{
			name:     "unsupported value",
			err:      &UnsupportedValueError{Field: "query type", Value: "FUZZY"},
			expected: "unsupported query type: FUZZY",
		},
		{
			name:     "duplicate path with fragment",
			err:      &DuplicatePathError{Path: "/users", Fragment: "1.0_read", Message: "fragment is not unique for path"},
			expected: "duplicate path: /users#1.0_read: fragment is not unique for path",
		},
		{
			name:     "invalid reference",
			err:      &InvalidReferenceError{Ref: "#/errors/notFound"},
			expected: "invalid JSON reference: #/errors/notFound",
		},
		{
			name:     "unsupported type",
			err:      &UnsupportedTypeError{Type: "tuple"},
			expected: "unsupported JSON schema type: tuple",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
