// Package naming provides shared name normalization utilities.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Normalize joins the non-empty parts into a single normalized name, as
// used for operation ids and URL fragments. Letters, digits, dots, and
// hyphens are kept; every other rune becomes an underscore. Runs of
// underscores collapse and leading/trailing underscores are trimmed, so
// path punctuation disappears cleanly:
//
//	Normalize("/users/{userId}", "read") -> "users_userId_read"
//	Normalize("1.0", "create", "put")    -> "1.0_create_put"
func Normalize(parts ...string) string {
	var b strings.Builder
	lastUnderscore := true // suppress a leading underscore
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 && !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
		for _, r := range part {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
				b.WriteRune(r)
				lastUnderscore = false
			default:
				if !lastUnderscore {
					b.WriteByte('_')
					lastUnderscore = true
				}
			}
		}
	}
	return strings.TrimRight(b.String(), "_")
}

// Title converts an identifier such as "frapi:users" or "user-devices"
// into a human-readable title ("Frapi Users", "User Devices").
// Separators (colon, slash, underscore, hyphen, dot) become spaces and
// each word is title-cased.
func Title(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch r {
		case ':', '/', '_', '-', '.':
			return ' '
		}
		return r
	}, s)
	return titleCaser.String(strings.Join(strings.Fields(mapped), " "))
}
