package swagger

// Parameter describes a single operation parameter, or a reference to a
// reusable global parameter when Ref is set.
type Parameter struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Name and In are empty when the parameter is defined via Ref.
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`

	// Non-body parameter fields
	Type             string   `yaml:"type,omitempty" json:"type,omitempty"`
	Format           string   `yaml:"format,omitempty" json:"format,omitempty"`
	CollectionFormat string   `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Default          any      `yaml:"default,omitempty" json:"default,omitempty"`
	Enum             []string `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Body parameter schema
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// NewRefParameter creates a reference to the global parameter registered
// under key.
func NewRefParameter(key string) *Parameter {
	return &Parameter{Ref: ParametersPrefix + key}
}

// SetExtension records a vendor extension on the parameter.
func (p *Parameter) SetExtension(name string, value any) {
	if p.Extra == nil {
		p.Extra = make(map[string]any)
	}
	p.Extra[name] = value
}
