package descriptor

import "encoding/json"

// Schema is either an inline JSON Schema fragment or a reference to a
// named definition. Exactly one of Ref and JSON is set.
type Schema struct {
	Ref  *Reference
	JSON *JSONSchema
}

// NewSchema wraps an inline JSON Schema fragment.
func NewSchema(js *JSONSchema) *Schema {
	return &Schema{JSON: js}
}

// NewSchemaRef wraps a reference to a named definition.
func NewSchemaRef(value string) *Schema {
	return &Schema{Ref: &Reference{Value: value}}
}

// UnmarshalJSON decodes either form: an object carrying "$ref" becomes a
// reference, anything else an inline schema.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var probe struct {
		Ref string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Ref != "" {
		s.Ref = &Reference{Value: probe.Ref}
		s.JSON = nil
		return nil
	}
	var js JSONSchema
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	s.JSON = &js
	s.Ref = nil
	return nil
}

// MarshalJSON encodes the set variant.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s.Ref != nil {
		return json.Marshal(s.Ref)
	}
	return json.Marshal(s.JSON)
}

// JSONSchema is the subset of the open JSON Schema dialect that the
// transformation understands, including the descriptor's custom
// extensions (read/write policies, return-on-demand, property ordering).
type JSONSchema struct {
	// Ref short-circuits a field to a named definition; only references
	// into the local definitions section are accepted.
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Type        string   `yaml:"type,omitempty" json:"type,omitempty"`
	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Format      string   `yaml:"format,omitempty" json:"format,omitempty"`
	Default     any      `yaml:"default,omitempty" json:"default,omitempty"`
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	// Options carries enum display metadata; enum titles are only
	// meaningful alongside enum values.
	Options *Options `yaml:"options,omitempty" json:"options,omitempty"`

	// Object validation. Properties preserve the order they appear in
	// the source document.
	Properties *Properties `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required   []string    `yaml:"required,omitempty" json:"required,omitempty"`

	// Array validation
	Items       *JSONSchema `yaml:"items,omitempty" json:"items,omitempty"`
	MinItems    *int        `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	MaxItems    *int        `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	UniqueItems bool        `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Numeric validation
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`

	// String validation
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Descriptor extensions
	ReadOnly                  bool   `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	ReadPolicy                string `yaml:"readPolicy,omitempty" json:"readPolicy,omitempty"`
	WritePolicy               string `yaml:"writePolicy,omitempty" json:"writePolicy,omitempty"`
	ErrorOnWritePolicyFailure *bool  `yaml:"errorOnWritePolicyFailure,omitempty" json:"errorOnWritePolicyFailure,omitempty"`
	ReturnOnDemand            *bool  `yaml:"returnOnDemand,omitempty" json:"returnOnDemand,omitempty"`
	// PropertyOrder re-sorts sibling properties ascending; properties
	// without it sort after all that have it.
	PropertyOrder *int `yaml:"propertyOrder,omitempty" json:"propertyOrder,omitempty"`
}

// Options carries auxiliary enum metadata.
type Options struct {
	EnumTitles []string `yaml:"enum_titles,omitempty" json:"enum_titles,omitempty"`
}
