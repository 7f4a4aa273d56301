package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResourceVersion(t *testing.T) {
	tests := []struct {
		in       string
		expected resourceVersion
		ok       bool
	}{
		{"1", resourceVersion{major: 1}, true},
		{"1.0", resourceVersion{major: 1}, true},
		{"2.1.3", resourceVersion{major: 2, minor: 1, patch: 3}, true},
		{"0.0.0", resourceVersion{}, true},
		{"", resourceVersion{}, false},
		{"1.0.0.0", resourceVersion{}, false},
		{"1.x", resourceVersion{}, false},
		{"-1.0", resourceVersion{}, false},
		{"v1.0", resourceVersion{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, ok := parseResourceVersion(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, v)
			}
		})
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"equal", "1.0", "1.0", 0},
		{"unversioned first", Unversioned, "1.0", -1},
		{"unversioned first reversed", "1.0", Unversioned, 1},
		{"numeric ascending", "2.0", "10.0", -1},
		{"minor beats lexicographic", "1.2", "1.10", -1},
		{"patch ordering", "1.0.1", "1.0.2", -1},
		{"numeric before unparseable", "1.0", "beta", -1},
		{"unparseable lexicographic", "beta", "alpha", 1},
		{"same numeric different label", "1.0", "1.0.0", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compareVersions(tt.a, tt.b))
		})
	}
}

func TestVersionedPathVersions(t *testing.T) {
	vp := VersionedPath{
		"2.0":       {},
		"10.0":      {},
		Unversioned: {},
		"1.5":       {},
	}
	assert.Equal(t, []string{Unversioned, "1.5", "2.0", "10.0"}, vp.Versions())
}
