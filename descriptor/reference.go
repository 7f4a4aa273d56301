package descriptor

import "strings"

// Reference section names recognized inside a descriptor document.
const (
	SectionServices    = "services"
	SectionDefinitions = "definitions"
	SectionErrors      = "errors"
)

// Reference is a named reference to a resource, schema, or error.
//
// Local references take the form "#/<section>/<name>", e.g.
// "#/services/users". A reference into another descriptor document is
// qualified with that document's id before the fragment, e.g.
// "frapi:users#/definitions/user".
type Reference struct {
	Value string `yaml:"$ref" json:"$ref"`
}

// parse splits the reference value into its document id (empty for local
// references), section, and name. ok is false when the value does not
// have the "[docID]#/<section>/<name>" shape.
func (r *Reference) parse() (doc, section, name string, ok bool) {
	if r == nil {
		return "", "", "", false
	}
	idx := strings.IndexByte(r.Value, '#')
	if idx < 0 {
		return "", "", "", false
	}
	doc = strings.TrimSuffix(r.Value[:idx], ":")
	fragment := r.Value[idx+1:]
	if !strings.HasPrefix(fragment, "/") {
		return "", "", "", false
	}
	parts := strings.SplitN(fragment[1:], "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", false
	}
	return doc, parts[0], parts[1], true
}
