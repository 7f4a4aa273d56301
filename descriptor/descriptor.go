package descriptor

import "sort"

// ApiDescription is the root of a descriptor document. It is immutable
// input for a transformation run.
type ApiDescription struct {
	// ID uniquely identifies the document; external references are
	// qualified with it.
	ID          string `yaml:"id" json:"id"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Definitions holds named, reusable schemas referenced via
	// "#/definitions/<name>".
	Definitions Definitions `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	// Errors holds named, reusable error definitions referenced via
	// "#/errors/<name>".
	Errors Errors `yaml:"errors,omitempty" json:"errors,omitempty"`
	// Services holds named resources referenced from Paths via
	// "#/services/<name>".
	Services Services `yaml:"services,omitempty" json:"services,omitempty"`
	Paths    Paths    `yaml:"paths,omitempty" json:"paths,omitempty"`
}

// Definitions maps schema names to their definitions.
type Definitions map[string]*Schema

// Names returns the definition names in sorted order.
func (d Definitions) Names() []string {
	return sortedKeys(d)
}

// Errors maps error names to their definitions.
type Errors map[string]*ApiError

// Names returns the error names in sorted order.
func (e Errors) Names() []string {
	return sortedKeys(e)
}

// Services maps service names to their resources.
type Services map[string]*Resource

// Names returns the service names in sorted order.
func (s Services) Names() []string {
	return sortedKeys(s)
}

// Paths maps path strings to their versioned resources.
type Paths map[string]VersionedPath

// Names returns the path names in sorted order.
func (p Paths) Names() []string {
	return sortedKeys(p)
}

// Unversioned is the sentinel version label for a resource that is not
// versioned. It sorts before every real version.
const Unversioned = ""

// VersionedPath maps version labels to resources. The Unversioned
// sentinel marks a resource without a version.
type VersionedPath map[string]*Resource

// Versions returns the version labels in ascending order, with the
// Unversioned sentinel first.
func (v VersionedPath) Versions() []string {
	versions := make([]string, 0, len(v))
	for version := range v {
		versions = append(versions, version)
	}
	sort.Slice(versions, func(i, j int) bool {
		return compareVersions(versions[i], versions[j]) < 0
	})
	return versions
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
