package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/cresttools/descerrors"
	"github.com/erraggy/cresttools/descriptor"
	"github.com/erraggy/cresttools/swagger"
)

func newTestTransformer() *transformer {
	desc := &descriptor.ApiDescription{ID: "frapi:test"}
	return &transformer{
		desc:     desc,
		resolver: descriptor.NewResolver(desc),
		doc:      &swagger.Document{Paths: make(swagger.Paths)},
		logger:   NopLogger{},
	}
}

func intp(i int) *int { return &i }

func floatp(f float64) *float64 { return &f }

func boolp(b bool) *bool { return &b }

func TestBuildPropertyTypeFormatDispatch(t *testing.T) {
	tests := []struct {
		name           string
		in             *descriptor.JSONSchema
		expectedType   string
		expectedFormat string
	}{
		{"boolean", &descriptor.JSONSchema{Type: "boolean"}, "boolean", ""},
		{"integer defaults to int32", &descriptor.JSONSchema{Type: "integer"}, "integer", "int32"},
		{"integer int64", &descriptor.JSONSchema{Type: "integer", Format: "int64"}, "integer", "int64"},
		{"number defaults to double", &descriptor.JSONSchema{Type: "number"}, "number", "double"},
		{"number float", &descriptor.JSONSchema{Type: "number", Format: "float"}, "number", "float"},
		{"number int32 promotes to integer", &descriptor.JSONSchema{Type: "number", Format: "int32"}, "integer", "int32"},
		{"number int64 promotes to integer", &descriptor.JSONSchema{Type: "number", Format: "int64"}, "integer", "int64"},
		{"number unknown format falls back to double", &descriptor.JSONSchema{Type: "number", Format: "fraction"}, "number", "fraction"},
		{"plain string", &descriptor.JSONSchema{Type: "string"}, "string", ""},
		{"string byte", &descriptor.JSONSchema{Type: "string", Format: "byte"}, "string", "byte"},
		{"string date", &descriptor.JSONSchema{Type: "string", Format: "date"}, "string", "date"},
		{"string full-date normalizes to date", &descriptor.JSONSchema{Type: "string", Format: "full-date"}, "string", "date"},
		{"string date-time", &descriptor.JSONSchema{Type: "string", Format: "date-time"}, "string", "date-time"},
		{"string password", &descriptor.JSONSchema{Type: "string", Format: "password"}, "string", "password"},
		{"string uuid", &descriptor.JSONSchema{Type: "string", Format: "uuid"}, "string", "uuid"},
	}
	tr := newTestTransformer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			property, err := tr.buildProperty(tt.in)
			require.NoError(t, err)
			require.NotNil(t, property)
			assert.Equal(t, tt.expectedType, property.Type)
			assert.Equal(t, tt.expectedFormat, property.Format)
		})
	}
}

func TestBuildPropertyNullYieldsNothing(t *testing.T) {
	tr := newTestTransformer()
	property, err := tr.buildProperty(&descriptor.JSONSchema{Type: "null"})
	require.NoError(t, err)
	assert.Nil(t, property)

	property, err = tr.buildProperty(nil)
	require.NoError(t, err)
	assert.Nil(t, property)
}

func TestBuildPropertyUnsupportedType(t *testing.T) {
	tr := newTestTransformer()
	_, err := tr.buildProperty(&descriptor.JSONSchema{Type: "tuple"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, descerrors.ErrUnsupportedType))
}

func TestBuildPropertyStringFacets(t *testing.T) {
	tr := newTestTransformer()

	plain, err := tr.buildProperty(&descriptor.JSONSchema{
		Type:      "string",
		MinLength: intp(1),
		MaxLength: intp(64),
		Pattern:   "^[a-z]+$",
	})
	require.NoError(t, err)
	require.NotNil(t, plain.MinLength)
	assert.Equal(t, 1, *plain.MinLength)
	require.NotNil(t, plain.MaxLength)
	assert.Equal(t, 64, *plain.MaxLength)
	assert.Equal(t, "^[a-z]+$", plain.Pattern)

	// byte-formatted strings carry no length or pattern facets
	encoded, err := tr.buildProperty(&descriptor.JSONSchema{
		Type:      "string",
		Format:    "byte",
		MinLength: intp(1),
		Pattern:   "^[a-z]+$",
	})
	require.NoError(t, err)
	assert.Nil(t, encoded.MinLength)
	assert.Empty(t, encoded.Pattern)
}

func TestBuildPropertyNumericFacets(t *testing.T) {
	tr := newTestTransformer()
	property, err := tr.buildProperty(&descriptor.JSONSchema{
		Type:             "integer",
		Minimum:          floatp(0),
		Maximum:          floatp(100),
		ExclusiveMaximum: true,
	})
	require.NoError(t, err)
	require.NotNil(t, property.Minimum)
	assert.Equal(t, float64(0), *property.Minimum)
	require.NotNil(t, property.Maximum)
	assert.Equal(t, float64(100), *property.Maximum)
	assert.True(t, property.ExclusiveMaximum)
	assert.False(t, property.ExclusiveMinimum)
}

func TestBuildPropertyArray(t *testing.T) {
	tr := newTestTransformer()
	property, err := tr.buildProperty(&descriptor.JSONSchema{
		Type:        "array",
		Items:       &descriptor.JSONSchema{Type: "string"},
		MinItems:    intp(1),
		MaxItems:    intp(10),
		UniqueItems: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "array", property.Type)
	require.NotNil(t, property.Items)
	assert.Equal(t, "string", property.Items.Type)
	assert.Equal(t, 1, *property.MinItems)
	assert.Equal(t, 10, *property.MaxItems)
	assert.True(t, property.UniqueItems)
}

func TestBuildPropertyEnumWithTitles(t *testing.T) {
	tr := newTestTransformer()
	property, err := tr.buildProperty(&descriptor.JSONSchema{
		Type:    "string",
		Enum:    []string{"admin", "user"},
		Options: &descriptor.Options{EnumTitles: []string{"Administrator", "Regular User"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "user"}, property.Enum)
	titles, ok := property.Extension("x-enum_titles")
	require.True(t, ok)
	assert.Equal(t, []string{"Administrator", "Regular User"}, titles)
}

func TestBuildPropertyPolicies(t *testing.T) {
	tr := newTestTransformer()

	// readOnly suppresses the write policy outright
	readOnly, err := tr.buildProperty(&descriptor.JSONSchema{
		Type:                      "string",
		ReadOnly:                  true,
		WritePolicy:               "WRITE_ON_CREATE",
		ErrorOnWritePolicyFailure: boolp(true),
	})
	require.NoError(t, err)
	assert.True(t, readOnly.ReadOnly)
	_, ok := readOnly.Extension("x-writePolicy")
	assert.False(t, ok)
	_, ok = readOnly.Extension("x-errorOnWritePolicyFailure")
	assert.False(t, ok)

	writable, err := tr.buildProperty(&descriptor.JSONSchema{
		Type:                      "string",
		ReadPolicy:                "USER",
		WritePolicy:               "WRITE_ON_CREATE",
		ErrorOnWritePolicyFailure: boolp(true),
		ReturnOnDemand:            boolp(false),
	})
	require.NoError(t, err)
	assert.False(t, writable.ReadOnly)
	policy, ok := writable.Extension("x-writePolicy")
	require.True(t, ok)
	assert.Equal(t, "WRITE_ON_CREATE", policy)
	failure, ok := writable.Extension("x-errorOnWritePolicyFailure")
	require.True(t, ok)
	assert.Equal(t, true, failure)
	readPolicy, ok := writable.Extension("x-readPolicy")
	require.True(t, ok)
	assert.Equal(t, "USER", readPolicy)
	onDemand, ok := writable.Extension("x-returnOnDemand")
	require.True(t, ok)
	assert.Equal(t, false, onDemand)
}

func TestBuildPropertiesOrdering(t *testing.T) {
	tr := newTestTransformer()

	// without any declared order, properties keep their source order
	unorderedProps := descriptor.NewProperties()
	unorderedProps.Set("zulu", &descriptor.JSONSchema{Type: "string"})
	unorderedProps.Set("alpha", &descriptor.JSONSchema{Type: "string"})
	unorderedProps.Set("mike", &descriptor.JSONSchema{Type: "string"})
	unordered, err := tr.buildProperties(&descriptor.JSONSchema{
		Type:       "object",
		Properties: unorderedProps,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, unordered.Keys())

	// declared orders come first, ascending; the rest keep source order
	orderedProps := descriptor.NewProperties()
	orderedProps.Set("alpha", &descriptor.JSONSchema{Type: "string"})
	orderedProps.Set("mike", &descriptor.JSONSchema{Type: "string", PropertyOrder: intp(2)})
	orderedProps.Set("echo", &descriptor.JSONSchema{Type: "string"})
	orderedProps.Set("zulu", &descriptor.JSONSchema{Type: "string", PropertyOrder: intp(1)})
	ordered, err := tr.buildProperties(&descriptor.JSONSchema{
		Type:       "object",
		Properties: orderedProps,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "mike", "alpha", "echo"}, ordered.Keys())

	// the x-propertyOrder extension is carried on ordered properties
	first, ok := ordered.Get("zulu")
	require.True(t, ok)
	order, ok := first.Extension("x-propertyOrder")
	require.True(t, ok)
	assert.Equal(t, 1, order)
}

func TestBuildPropertyReference(t *testing.T) {
	tr := newTestTransformer()

	property, err := tr.buildProperty(&descriptor.JSONSchema{Ref: "#/definitions/user"})
	require.NoError(t, err)
	assert.Equal(t, "#/definitions/user", property.Ref)

	_, err = tr.buildProperty(&descriptor.JSONSchema{Ref: "#/errors/notFound"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, descerrors.ErrInvalidReference))
}

func TestBuildModel(t *testing.T) {
	tr := newTestTransformer()

	userProps := descriptor.NewProperties()
	userProps.Set("name", &descriptor.JSONSchema{Type: "string"})
	object, err := tr.buildModel(&descriptor.JSONSchema{
		Type:       "object",
		Title:      "User",
		Required:   []string{"name"},
		Properties: userProps,
	})
	require.NoError(t, err)
	assert.Equal(t, "object", object.Type)
	assert.Equal(t, "User", object.Title)
	assert.Equal(t, []string{"name"}, object.Required)
	assert.Equal(t, []string{"name"}, object.Properties.Keys())

	array, err := tr.buildModel(&descriptor.JSONSchema{
		Type:  "array",
		Items: &descriptor.JSONSchema{Type: "integer"},
	})
	require.NoError(t, err)
	assert.Equal(t, "array", array.Type)
	require.NotNil(t, array.Items)
	assert.Equal(t, "integer", array.Items.Type)

	scalar, err := tr.buildModel(&descriptor.JSONSchema{
		Type:    "string",
		Format:  "full-date",
		Default: "2020-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "date", scalar.Format)
	assert.Equal(t, "2020-01-01", scalar.Default)

	_, err = tr.buildModel(&descriptor.JSONSchema{Type: "tuple"})
	assert.True(t, errors.Is(err, descerrors.ErrUnsupportedType))
}

func TestDefinitionName(t *testing.T) {
	assert.Equal(t, "user", definitionName("#/definitions/user"))
	assert.Equal(t, "", definitionName("#/errors/notFound"))
	assert.Equal(t, "", definitionName("user"))
}
