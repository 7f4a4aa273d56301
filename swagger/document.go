package swagger

// Document represents an OpenAPI Specification 2.0 (Swagger) document
// Reference: https://spec.openapis.org/oas/v2.0.html
type Document struct {
	Swagger     string                `yaml:"swagger" json:"swagger"` // Always "2.0"
	Info        *Info                 `yaml:"info" json:"info"`
	Host        string                `yaml:"host,omitempty" json:"host,omitempty"`
	BasePath    string                `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	Schemes     []string              `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Consumes    []string              `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces    []string              `yaml:"produces,omitempty" json:"produces,omitempty"`
	Paths       Paths                 `yaml:"paths" json:"paths"`
	Definitions map[string]*Schema    `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	Parameters  map[string]*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Tags        []*Tag                `yaml:"tags,omitempty" json:"tags,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info provides metadata about the API.
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by operations.
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// AddParameter registers a reusable global parameter under the given key.
// Operations refer to it with a "#/parameters/<key>" reference.
func (d *Document) AddParameter(key string, p *Parameter) {
	if d.Parameters == nil {
		d.Parameters = make(map[string]*Parameter)
	}
	d.Parameters[key] = p
}

// AddTag appends a tag, keeping tag names unique.
func (d *Document) AddTag(tag *Tag) {
	for _, existing := range d.Tags {
		if existing.Name == tag.Name {
			return
		}
	}
	d.Tags = append(d.Tags, tag)
}
