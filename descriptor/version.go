package descriptor

import (
	"strconv"
	"strings"
)

// resourceVersion represents a parsed resource version with major, minor,
// and patch components, e.g. "1.0" or "2.1.3".
type resourceVersion struct {
	major int
	minor int
	patch int
}

// parseResourceVersion parses a version label of the form
// "major[.minor[.patch]]". It reports ok=false for anything else, in
// which case callers fall back to lexicographic ordering.
func parseResourceVersion(s string) (resourceVersion, bool) {
	parts := strings.Split(s, ".")
	if len(parts) == 0 || len(parts) > 3 {
		return resourceVersion{}, false
	}
	var v resourceVersion
	segments := []*int{&v.major, &v.minor, &v.patch}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return resourceVersion{}, false
		}
		*segments[i] = n
	}
	return v, true
}

// lessThan returns true if v < other.
func (v resourceVersion) lessThan(other resourceVersion) bool {
	if v.major != other.major {
		return v.major < other.major
	}
	if v.minor != other.minor {
		return v.minor < other.minor
	}
	return v.patch < other.patch
}

// compareVersions orders version labels ascending. The Unversioned
// sentinel sorts first; numeric versions follow in ascending order;
// unparseable labels sort after numeric ones, lexicographically, so the
// walk stays deterministic regardless of input.
func compareVersions(a, b string) int {
	if a == b {
		return 0
	}
	if a == Unversioned {
		return -1
	}
	if b == Unversioned {
		return 1
	}
	av, aok := parseResourceVersion(a)
	bv, bok := parseResourceVersion(b)
	switch {
	case aok && bok:
		if av.lessThan(bv) {
			return -1
		}
		if bv.lessThan(av) {
			return 1
		}
		return strings.Compare(a, b)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
