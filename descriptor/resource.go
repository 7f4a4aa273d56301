package descriptor

import (
	"encoding/json"
	"strings"
)

// Resource is a named, versionable entity exposing CRUD, query, and
// action operations, with optional nested collection items and
// sub-resources. A resource may instead be a reference to another
// resource (a service), in which case Ref is set and must resolve.
type Resource struct {
	Ref         *Reference `yaml:"-" json:"-"`
	Title       string     `yaml:"title,omitempty" json:"title,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	// MVCCSupported enables optimistic concurrency via conditional
	// headers on mutating operations.
	MVCCSupported  bool    `yaml:"mvccSupported,omitempty" json:"mvccSupported,omitempty"`
	ResourceSchema *Schema `yaml:"resourceSchema,omitempty" json:"resourceSchema,omitempty"`

	// Operations; present means supported.
	Create  *Create   `yaml:"create,omitempty" json:"create,omitempty"`
	Read    *Read     `yaml:"read,omitempty" json:"read,omitempty"`
	Update  *Update   `yaml:"update,omitempty" json:"update,omitempty"`
	Delete  *Delete   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Patch   *Patch    `yaml:"patch,omitempty" json:"patch,omitempty"`
	Actions []*Action `yaml:"actions,omitempty" json:"actions,omitempty"`
	Queries []*Query  `yaml:"queries,omitempty" json:"queries,omitempty"`

	// Items is the per-member resource template for a collection
	// resource, contributing a path parameter.
	Items *Items `yaml:"items,omitempty" json:"items,omitempty"`
	// SubResources maps relative path suffixes to nested resources.
	SubResources SubResources `yaml:"subresources,omitempty" json:"subresources,omitempty"`
	// Parameters are inherited by all descendants.
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// UnmarshalJSON decodes either form: an object carrying "$ref" becomes a
// reference, anything else a direct resource definition.
func (r *Resource) UnmarshalJSON(data []byte) error {
	var probe struct {
		Ref string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Ref != "" {
		*r = Resource{Ref: &Reference{Value: probe.Ref}}
		return nil
	}
	type alias Resource
	return json.Unmarshal(data, (*alias)(r))
}

// MarshalJSON encodes the set variant.
func (r Resource) MarshalJSON() ([]byte, error) {
	if r.Ref != nil {
		return json.Marshal(r.Ref)
	}
	type alias Resource
	return json.Marshal(alias(r))
}

// SubResources maps relative path suffixes (which may contain {var}-style
// path variables) to nested resources.
type SubResources map[string]*Resource

// Names returns the relative path suffixes in sorted order.
func (s SubResources) Names() []string {
	return sortedKeys(s)
}

// Items is the per-member resource definition for a collection resource.
// An items resource inherits schema, title, description, and MVCC support
// from its parent collection.
type Items struct {
	// PathParameter names the path variable identifying a collection
	// member. When nil, a required string parameter named "id" is used.
	PathParameter *Parameter `yaml:"pathParameter,omitempty" json:"pathParameter,omitempty"`

	Create  *Create   `yaml:"create,omitempty" json:"create,omitempty"`
	Read    *Read     `yaml:"read,omitempty" json:"read,omitempty"`
	Update  *Update   `yaml:"update,omitempty" json:"update,omitempty"`
	Delete  *Delete   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Patch   *Patch    `yaml:"patch,omitempty" json:"patch,omitempty"`
	Actions []*Action `yaml:"actions,omitempty" json:"actions,omitempty"`
	Queries []*Query  `yaml:"queries,omitempty" json:"queries,omitempty"`

	SubResources SubResources `yaml:"subresources,omitempty" json:"subresources,omitempty"`
}

// DefaultPathParameterName is used when an items template declares no
// path parameter of its own.
const DefaultPathParameterName = "id"

// EffectivePathParameter returns the declared path parameter, or the
// default required string "id" parameter when none is declared.
func (i *Items) EffectivePathParameter() *Parameter {
	if i.PathParameter != nil {
		return i.PathParameter
	}
	return &Parameter{
		Name:     DefaultPathParameterName,
		Type:     "string",
		Source:   SourcePath,
		Required: true,
	}
}

// AsResource combines the items template with the fields it inherits
// from its parent collection resource. Sub-resources of the template are
// deliberately left out; callers walk them against the member path
// directly.
func (i *Items) AsResource(mvccSupported bool, schema *Schema, title, description string) *Resource {
	return &Resource{
		Title:          title,
		Description:    description,
		MVCCSupported:  mvccSupported,
		ResourceSchema: schema,
		Create:         i.Create,
		Read:           i.Read,
		Update:         i.Update,
		Delete:         i.Delete,
		Patch:          i.Patch,
		Actions:        i.Actions,
		Queries:        i.Queries,
	}
}

// Stability describes the maturity of an operation.
type Stability string

// Stability values.
const (
	StabilityInternal   Stability = "INTERNAL"
	StabilityEvolving   Stability = "EVOLVING"
	StabilityStable     Stability = "STABLE"
	StabilityDeprecated Stability = "DEPRECATED"
	StabilityRemoved    Stability = "REMOVED"
)

// Operation holds the fields shared by every operation kind.
type Operation struct {
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Stability   Stability    `yaml:"stability,omitempty" json:"stability,omitempty"`
	Errors      []*ApiError  `yaml:"errors,omitempty" json:"errors,omitempty"`
}

// CreateMode indicates who assigns the id of a created resource.
type CreateMode string

// CreateMode values.
const (
	CreateModeIDFromClient CreateMode = "ID_FROM_CLIENT"
	CreateModeIDFromServer CreateMode = "ID_FROM_SERVER"
)

// Create describes a create operation.
type Create struct {
	Operation `yaml:",inline"`
	Mode      CreateMode `yaml:"mode" json:"mode"`
}

// Read describes a read operation.
type Read struct {
	Operation `yaml:",inline"`
}

// Update describes an update operation.
type Update struct {
	Operation `yaml:",inline"`
}

// Delete describes a delete operation.
type Delete struct {
	Operation `yaml:",inline"`
}

// PatchOperation is a patch operation kind a resource allows.
type PatchOperation string

// PatchOperation values.
const (
	PatchOperationAdd       PatchOperation = "ADD"
	PatchOperationRemove    PatchOperation = "REMOVE"
	PatchOperationReplace   PatchOperation = "REPLACE"
	PatchOperationIncrement PatchOperation = "INCREMENT"
	PatchOperationMove      PatchOperation = "MOVE"
	PatchOperationCopy      PatchOperation = "COPY"
	PatchOperationTransform PatchOperation = "TRANSFORM"
)

// Lower returns the lower-cased operation-kind name used on the wire.
func (p PatchOperation) Lower() string {
	return strings.ToLower(string(p))
}

// Patch describes a patch operation together with its allowed patch
// operation kinds.
type Patch struct {
	Operation  `yaml:",inline"`
	Operations []PatchOperation `yaml:"operations" json:"operations"`
}

// Action describes a named action operation with its own request and
// response schemas.
type Action struct {
	Operation `yaml:",inline"`
	Name      string  `yaml:"name" json:"name"`
	Request   *Schema `yaml:"request,omitempty" json:"request,omitempty"`
	Response  *Schema `yaml:"response,omitempty" json:"response,omitempty"`
}

// QueryType distinguishes the query flavors.
type QueryType string

// QueryType values.
const (
	QueryTypeID         QueryType = "ID"
	QueryTypeFilter     QueryType = "FILTER"
	QueryTypeExpression QueryType = "EXPRESSION"
)

// PagingMode is a query pagination strategy.
type PagingMode string

// PagingMode values.
const (
	PagingModeCookie PagingMode = "COOKIE"
	PagingModeOffset PagingMode = "OFFSET"
)

// CountPolicy is a query result-count reporting strategy.
type CountPolicy string

// CountPolicy values.
const (
	CountPolicyNone     CountPolicy = "NONE"
	CountPolicyEstimate CountPolicy = "ESTIMATE"
	CountPolicyExact    CountPolicy = "EXACT"
)

// Query describes a query operation.
type Query struct {
	Operation `yaml:",inline"`
	Type      QueryType `yaml:"type" json:"type"`
	// QueryID is set for ID-type queries.
	QueryID           string        `yaml:"queryId,omitempty" json:"queryId,omitempty"`
	PagingModes       []PagingMode  `yaml:"pagingModes,omitempty" json:"pagingModes,omitempty"`
	CountPolicies     []CountPolicy `yaml:"countPolicies,omitempty" json:"countPolicies,omitempty"`
	SupportedSortKeys []string      `yaml:"supportedSortKeys,omitempty" json:"supportedSortKeys,omitempty"`
}
