package descriptor

// ParameterSource indicates where an operation parameter comes from.
type ParameterSource string

const (
	// SourcePath marks a parameter extracted from the URL path.
	SourcePath ParameterSource = "PATH"
	// SourceAdditional marks an additional, non-path parameter.
	SourceAdditional ParameterSource = "ADDITIONAL"
)

// Parameter describes a single operation parameter. Parameters declared
// on a resource are inherited by all of its descendants.
type Parameter struct {
	Name         string          `yaml:"name" json:"name"`
	Type         string          `yaml:"type" json:"type"`
	Description  string          `yaml:"description,omitempty" json:"description,omitempty"`
	Source       ParameterSource `yaml:"source" json:"source"`
	Required     bool            `yaml:"required,omitempty" json:"required,omitempty"`
	DefaultValue string          `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	EnumValues   []string        `yaml:"enumValues,omitempty" json:"enumValues,omitempty"`
	// EnumTitles are display labels for EnumValues; only meaningful when
	// enum values are present.
	EnumTitles []string `yaml:"enumTitles,omitempty" json:"enumTitles,omitempty"`
}
