package swagger

// Schema represents a schema or property in the output document: either a
// reference into "#/definitions/" or a typed structural model. The same
// shape serves named definitions, request/response root schemas, and
// nested object properties.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Type        string   `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string   `yaml:"format,omitempty" json:"format,omitempty"`
	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any      `yaml:"default,omitempty" json:"default,omitempty"`
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Object fields
	Properties *Properties `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required   []string    `yaml:"required,omitempty" json:"required,omitempty"`

	// Array fields
	Items       *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	MinItems    *int    `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems    *int    `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	UniqueItems bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Numeric fields
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`

	// String fields
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	ReadOnly bool `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// NewRefSchema creates a reference to the named definition.
func NewRefSchema(name string) *Schema {
	return &Schema{Ref: DefinitionsPrefix + name}
}

// SetExtension records a vendor extension on the schema.
func (s *Schema) SetExtension(name string, value any) {
	if s.Extra == nil {
		s.Extra = make(map[string]any)
	}
	s.Extra[name] = value
}

// Extension returns the vendor extension recorded under name, if any.
func (s *Schema) Extension(name string) (any, bool) {
	v, ok := s.Extra[name]
	return v, ok
}

// Properties is an order-preserving map of property names to schemas.
// Go maps do not preserve insertion order, but emitted property order is
// meaningful when the source declares property ordering, so object
// properties use this container instead of a plain map.
type Properties struct {
	keys    []string
	schemas map[string]*Schema
}

// NewProperties creates an empty property container.
func NewProperties() *Properties {
	return &Properties{schemas: make(map[string]*Schema)}
}

// Set adds or replaces the property. A new property is appended at the
// end of the emission order; replacing keeps the existing position.
func (p *Properties) Set(name string, schema *Schema) {
	if p.schemas == nil {
		p.schemas = make(map[string]*Schema)
	}
	if _, exists := p.schemas[name]; !exists {
		p.keys = append(p.keys, name)
	}
	p.schemas[name] = schema
}

// Get returns the property schema registered under name.
func (p *Properties) Get(name string) (*Schema, bool) {
	s, ok := p.schemas[name]
	return s, ok
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the property names in emission order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}
