package swagger

import "github.com/erraggy/cresttools/descerrors"

// Paths holds the relative paths to the individual endpoints.
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path.
type PathItem struct {
	Get    *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put    *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post   *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Patch  *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation returns the operation registered for an HTTP method, or nil.
// The second return value is false for an unsupported method.
func (p *PathItem) Operation(method string) (*Operation, bool) {
	switch method {
	case MethodGet:
		return p.Get, true
	case MethodPut:
		return p.Put, true
	case MethodPost:
		return p.Post, true
	case MethodDelete:
		return p.Delete, true
	case MethodPatch:
		return p.Patch, true
	default:
		return nil, false
	}
}

// Set registers the operation for an HTTP method.
func (p *PathItem) Set(method string, op *Operation) error {
	switch method {
	case MethodGet:
		p.Get = op
	case MethodPut:
		p.Put = op
	case MethodPost:
		p.Post = op
	case MethodDelete:
		p.Delete = op
	case MethodPatch:
		p.Patch = op
	default:
		return &descerrors.UnsupportedValueError{Field: "method", Value: method}
	}
	return nil
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags        []string             `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters  []*Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses   map[string]*Response `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated  bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// AddParameter appends a parameter to the operation.
func (o *Operation) AddParameter(p *Parameter) {
	o.Parameters = append(o.Parameters, p)
}

// SetExtension records a vendor extension on the operation.
func (o *Operation) SetExtension(name string, value any) {
	if o.Extra == nil {
		o.Extra = make(map[string]any)
	}
	o.Extra[name] = value
}

// Response describes a single response from an API operation.
type Response struct {
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
