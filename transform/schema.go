package transform

import (
	"sort"
	"strings"

	"github.com/erraggy/cresttools/descerrors"
	"github.com/erraggy/cresttools/descriptor"
	"github.com/erraggy/cresttools/swagger"
)

// refSchema translates a "$ref" value into a "#/definitions/" reference.
// Only references into the definitions section are representable in the
// output document.
func (t *transformer) refSchema(ref string) (*swagger.Schema, error) {
	name := definitionName(ref)
	if name == "" {
		return nil, &descerrors.InvalidReferenceError{
			Ref:     ref,
			Message: "only references into " + swagger.DefinitionsPrefix + " are supported",
		}
	}
	return swagger.NewRefSchema(name), nil
}

// definitionName extracts the definition name from a reference value, or
// returns "" when the reference does not point into the definitions
// section.
func definitionName(ref string) string {
	idx := strings.Index(ref, swagger.DefinitionsPrefix)
	if idx < 0 {
		return ""
	}
	return ref[idx+len(swagger.DefinitionsPrefix):]
}

// buildModel translates an inline JSON schema into a root-level model,
// used for named definitions, request bodies, and response payloads.
func (t *transformer) buildModel(js *descriptor.JSONSchema) (*swagger.Schema, error) {
	if js.Ref != "" {
		return t.refSchema(js.Ref)
	}
	var model *swagger.Schema
	switch js.Type {
	case "object":
		properties, err := t.buildProperties(js)
		if err != nil {
			return nil, err
		}
		model = &swagger.Schema{
			Type:       "object",
			Properties: properties,
			Required:   js.Required,
		}
	case "array":
		items, err := t.buildProperty(js.Items)
		if err != nil {
			return nil, err
		}
		model = &swagger.Schema{
			Type:        "array",
			Items:       items,
			MinItems:    js.MinItems,
			MaxItems:    js.MaxItems,
			UniqueItems: js.UniqueItems,
		}
	case "null":
		return &swagger.Schema{Type: "null"}, nil
	case "boolean", "integer", "number", "string":
		model = &swagger.Schema{Type: js.Type}
		if js.Format != "" {
			model.Format = normalizeFormat(js.Type, js.Format)
		}
		if js.Default != nil {
			model.Default = js.Default
		}
		applyEnum(model, js)
	default:
		return nil, &descerrors.UnsupportedTypeError{Type: js.Type}
	}
	model.Title = js.Title
	model.Description = js.Description
	return model, nil
}

// buildProperties translates an object schema's properties into the
// ordered output container. The baseline emission order is the order
// properties appear in the source document; when any sibling declares a
// property order, siblings re-sort ascending by it, the unordered ones
// after all ordered ones, with the source order preserved among ties.
func (t *transformer) buildProperties(js *descriptor.JSONSchema) (*swagger.Properties, error) {
	if js.Properties.Len() == 0 {
		return nil, nil
	}

	type entry struct {
		name   string
		schema *swagger.Schema
		order  *int
	}
	entries := make([]entry, 0, js.Properties.Len())
	hasOrder := false
	for _, name := range js.Properties.Keys() {
		source, _ := js.Properties.Get(name)
		property, err := t.buildProperty(source)
		if err != nil {
			return nil, err
		}
		if property == nil {
			continue
		}
		if source.PropertyOrder != nil {
			hasOrder = true
		}
		entries = append(entries, entry{name: name, schema: property, order: source.PropertyOrder})
	}
	if hasOrder {
		sort.SliceStable(entries, func(i, j int) bool {
			oi, oj := entries[i].order, entries[j].order
			switch {
			case oi == nil:
				return false
			case oj == nil:
				return true
			default:
				return *oi < *oj
			}
		})
	}

	properties := swagger.NewProperties()
	for _, e := range entries {
		properties.Set(e.name, e.schema)
	}
	return properties, nil
}

// buildProperty translates a nested schema into a property model,
// dispatching on type and format. A "null"-typed schema yields no
// property at all.
func (t *transformer) buildProperty(js *descriptor.JSONSchema) (*swagger.Schema, error) {
	if js == nil {
		return nil, nil
	}
	if js.Ref != "" {
		return t.refSchema(js.Ref)
	}

	var property *swagger.Schema
	switch js.Type {
	case "object":
		properties, err := t.buildProperties(js)
		if err != nil {
			return nil, err
		}
		property = &swagger.Schema{
			Type:       "object",
			Properties: properties,
			Required:   js.Required,
		}
	case "array":
		items, err := t.buildProperty(js.Items)
		if err != nil {
			return nil, err
		}
		property = &swagger.Schema{
			Type:        "array",
			Items:       items,
			MinItems:    js.MinItems,
			MaxItems:    js.MaxItems,
			UniqueItems: js.UniqueItems,
		}
	case "boolean":
		property = &swagger.Schema{Type: "boolean"}
	case "integer":
		property = &swagger.Schema{
			Type:             "integer",
			Format:           "int32",
			Minimum:          js.Minimum,
			Maximum:          js.Maximum,
			ExclusiveMinimum: js.ExclusiveMinimum,
			ExclusiveMaximum: js.ExclusiveMaximum,
		}
		if js.Format == "int64" {
			property.Format = "int64"
		}
	case "number":
		property = numberProperty(js)
	case "string":
		property = stringProperty(js)
	case "null":
		return nil, nil
	default:
		return nil, &descerrors.UnsupportedTypeError{Type: js.Type}
	}

	if js.Format != "" {
		property.Format = normalizeFormat(property.Type, js.Format)
	}
	if js.Default != nil {
		property.Default = js.Default
	}
	applyEnum(property, js)
	property.Title = js.Title
	property.Description = js.Description
	applyExtensions(property, js)
	return property, nil
}

// numberProperty maps a number-typed schema; integer formats promote the
// property to an integer type, unknown formats fall back to double.
func numberProperty(js *descriptor.JSONSchema) *swagger.Schema {
	property := &swagger.Schema{
		Minimum:          js.Minimum,
		Maximum:          js.Maximum,
		ExclusiveMinimum: js.ExclusiveMinimum,
		ExclusiveMaximum: js.ExclusiveMaximum,
	}
	switch js.Format {
	case "int32":
		property.Type = "integer"
		property.Format = "int32"
	case "int64":
		property.Type = "integer"
		property.Format = "int64"
	case "float":
		property.Type = "number"
		property.Format = "float"
	default:
		property.Type = "number"
		property.Format = "double"
	}
	return property
}

// stringProperty maps a string-typed schema. Binary-oriented formats
// (byte) carry no length or pattern facets; everything else keeps them.
func stringProperty(js *descriptor.JSONSchema) *swagger.Schema {
	property := &swagger.Schema{Type: "string"}
	switch js.Format {
	case "byte", "date", "full-date", "date-time":
	default:
		property.MinLength = js.MinLength
		property.MaxLength = js.MaxLength
		property.Pattern = js.Pattern
	}
	return property
}

// normalizeFormat rewrites descriptor format names with no Swagger
// equivalent; everything else passes through verbatim.
func normalizeFormat(schemaType, format string) string {
	if schemaType == "string" && format == "full-date" {
		return "date"
	}
	return format
}

// applyEnum copies enum values and, when present, their display titles
// as an "x-enum_titles" extension.
func applyEnum(model *swagger.Schema, js *descriptor.JSONSchema) {
	if len(js.Enum) == 0 {
		return
	}
	model.Enum = js.Enum
	if js.Options != nil && len(js.Options.EnumTitles) > 0 {
		model.SetExtension("x-enum_titles", js.Options.EnumTitles)
	}
}

// applyExtensions carries the descriptor's schema extensions onto the
// property. A read-only property suppresses its write policy: the two
// are contradictory and readOnly wins.
func applyExtensions(property *swagger.Schema, js *descriptor.JSONSchema) {
	if js.ReadPolicy != "" {
		property.SetExtension("x-readPolicy", js.ReadPolicy)
	}
	if js.ReturnOnDemand != nil {
		property.SetExtension("x-returnOnDemand", *js.ReturnOnDemand)
	}
	if js.ReadOnly {
		property.ReadOnly = true
	} else if js.WritePolicy != "" {
		property.SetExtension("x-writePolicy", js.WritePolicy)
		if js.ErrorOnWritePolicyFailure != nil {
			property.SetExtension("x-errorOnWritePolicyFailure", *js.ErrorOnWritePolicyFailure)
		}
	}
	if js.PropertyOrder != nil {
		property.SetExtension("x-propertyOrder", *js.PropertyOrder)
	}
}
