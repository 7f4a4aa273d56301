// Package pathutil provides path construction helpers for descriptor
// traversal: normalized path joining, path-variable extraction, and
// parameter merging.
package pathutil

import (
	"regexp"
	"strings"

	"github.com/erraggy/cresttools/descriptor"
)

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// Join concatenates path segments into a normalized path: a single
// leading forward-slash, no trailing slash, and no empty segments.
//
//	Join("users")            -> "/users"
//	Join("/users/", "{id}/") -> "/users/{id}"
func Join(segments ...string) string {
	var b strings.Builder
	for _, segment := range segments {
		for _, part := range strings.Split(segment, "/") {
			if part == "" {
				continue
			}
			b.WriteByte('/')
			b.WriteString(part)
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// Variables returns the names of all {var}-style path variables in s,
// in order of appearance.
func Variables(s string) []string {
	matches := PathParamRegex.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Parameters builds required string path-parameters for every {var}-style
// path variable found in s.
func Parameters(s string) []*descriptor.Parameter {
	names := Variables(s)
	if len(names) == 0 {
		return nil
	}
	params := make([]*descriptor.Parameter, 0, len(names))
	for _, name := range names {
		params = append(params, &descriptor.Parameter{
			Name:     name,
			Type:     "string",
			Source:   descriptor.SourcePath,
			Required: true,
		})
	}
	return params
}

// MergeParameters merges additional parameters into base, deduplicating
// by name. A later definition replaces an earlier one in place, so the
// more specific parameter wins while the original ordering is preserved.
// The base slice is not modified; a new slice is returned.
func MergeParameters(base []*descriptor.Parameter, additional ...*descriptor.Parameter) []*descriptor.Parameter {
	merged := make([]*descriptor.Parameter, len(base), len(base)+len(additional))
	copy(merged, base)
	for _, p := range additional {
		if p == nil {
			continue
		}
		replaced := false
		for i, existing := range merged {
			if existing.Name == p.Name {
				merged[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, p)
		}
	}
	return merged
}
