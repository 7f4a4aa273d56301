package descriptor

import "encoding/json"

// ApiError describes an error response an operation may produce: either a
// direct definition or a reference to a shared error definition under
// "#/errors/<name>".
type ApiError struct {
	Ref *Reference `yaml:"-" json:"-"`
	// Code is the numeric HTTP status code.
	Code        int    `yaml:"code,omitempty" json:"code,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Schema optionally describes error details carried in the response.
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// NewApiErrorRef wraps a reference to a shared error definition.
func NewApiErrorRef(value string) *ApiError {
	return &ApiError{Ref: &Reference{Value: value}}
}

// UnmarshalJSON decodes either form: an object carrying "$ref" becomes a
// reference, anything else a direct definition.
func (e *ApiError) UnmarshalJSON(data []byte) error {
	var probe struct {
		Ref string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Ref != "" {
		*e = ApiError{Ref: &Reference{Value: probe.Ref}}
		return nil
	}
	type alias ApiError
	return json.Unmarshal(data, (*alias)(e))
}

// MarshalJSON encodes the set variant.
func (e ApiError) MarshalJSON() ([]byte, error) {
	if e.Ref != nil {
		return json.Marshal(e.Ref)
	}
	type alias ApiError
	return json.Marshal(alias(e))
}
