package descriptor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaUnmarshalReference(t *testing.T) {
	var s Schema
	require.NoError(t, json.Unmarshal([]byte(`{"$ref":"#/definitions/user"}`), &s))
	require.NotNil(t, s.Ref)
	assert.Equal(t, "#/definitions/user", s.Ref.Value)
	assert.Nil(t, s.JSON)
}

func TestSchemaUnmarshalInline(t *testing.T) {
	data := []byte(`{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"age": {"type": "integer", "format": "int64", "propertyOrder": 2},
			"role": {
				"type": "string",
				"enum": ["admin", "user"],
				"options": {"enum_titles": ["Administrator", "Regular User"]}
			}
		}
	}`)
	var s Schema
	require.NoError(t, json.Unmarshal(data, &s))
	require.NotNil(t, s.JSON)
	assert.Nil(t, s.Ref)

	js := s.JSON
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, []string{"name"}, js.Required)
	require.Equal(t, 3, js.Properties.Len())
	assert.Equal(t, []string{"name", "age", "role"}, js.Properties.Keys())

	name, ok := js.Properties.Get("name")
	require.True(t, ok)
	require.NotNil(t, name.MinLength)
	assert.Equal(t, 1, *name.MinLength)

	age, ok := js.Properties.Get("age")
	require.True(t, ok)
	assert.Equal(t, "int64", age.Format)
	require.NotNil(t, age.PropertyOrder)
	assert.Equal(t, 2, *age.PropertyOrder)

	role, ok := js.Properties.Get("role")
	require.True(t, ok)
	assert.Equal(t, []string{"admin", "user"}, role.Enum)
	require.NotNil(t, role.Options)
	assert.Equal(t, []string{"Administrator", "Regular User"}, role.Options.EnumTitles)
}

func TestPropertiesPreserveSourceOrder(t *testing.T) {
	var js JSONSchema
	data := []byte(`{
		"type": "object",
		"properties": {
			"zebra": {"type": "string"},
			"apple": {"type": "string"},
			"mango": {"type": "integer"}
		}
	}`)
	require.NoError(t, json.Unmarshal(data, &js))
	assert.Equal(t, []string{"zebra", "apple", "mango"}, js.Properties.Keys())

	// re-encoding keeps the declared order too
	out, err := json.Marshal(js.Properties)
	require.NoError(t, err)
	zebra := strings.Index(string(out), `"zebra"`)
	apple := strings.Index(string(out), `"apple"`)
	mango := strings.Index(string(out), `"mango"`)
	assert.True(t, zebra < apple && apple < mango, "expected source order, got %s", out)
}

func TestPropertiesSetAndGet(t *testing.T) {
	p := NewProperties()
	p.Set("b", &JSONSchema{Type: "string"})
	p.Set("a", &JSONSchema{Type: "integer"})
	assert.Equal(t, []string{"b", "a"}, p.Keys())
	assert.Equal(t, 2, p.Len())

	// replacing keeps the original position
	p.Set("b", &JSONSchema{Type: "boolean"})
	assert.Equal(t, []string{"b", "a"}, p.Keys())
	b, ok := p.Get("b")
	require.True(t, ok)
	assert.Equal(t, "boolean", b.Type)

	var nilProps *Properties
	assert.Equal(t, 0, nilProps.Len())
	assert.Nil(t, nilProps.Keys())
}

func TestSchemaMarshalRoundTrip(t *testing.T) {
	ref := NewSchemaRef("#/definitions/user")
	data, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `{"$ref":"#/definitions/user"}`, string(data))
}

func TestResourceUnmarshalReference(t *testing.T) {
	var r Resource
	require.NoError(t, json.Unmarshal([]byte(`{"$ref":"#/services/users"}`), &r))
	require.NotNil(t, r.Ref)
	assert.Equal(t, "#/services/users", r.Ref.Value)
}

func TestResourceUnmarshalDirect(t *testing.T) {
	data := []byte(`{
		"title": "Users",
		"mvccSupported": true,
		"create": {"mode": "ID_FROM_SERVER", "description": "Create a user"},
		"patch": {"operations": ["ADD", "REMOVE"]},
		"items": {
			"read": {},
			"pathParameter": {"name": "userId", "type": "string", "source": "PATH", "required": true}
		},
		"subresources": {
			"/devices": {"$ref": "#/services/devices"}
		}
	}`)
	var r Resource
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Nil(t, r.Ref)
	assert.Equal(t, "Users", r.Title)
	assert.True(t, r.MVCCSupported)

	require.NotNil(t, r.Create)
	assert.Equal(t, CreateModeIDFromServer, r.Create.Mode)
	assert.Equal(t, "Create a user", r.Create.Description)

	require.NotNil(t, r.Patch)
	assert.Equal(t, []PatchOperation{PatchOperationAdd, PatchOperationRemove}, r.Patch.Operations)

	require.NotNil(t, r.Items)
	assert.Equal(t, "userId", r.Items.EffectivePathParameter().Name)

	sub, ok := r.SubResources["/devices"]
	require.True(t, ok)
	require.NotNil(t, sub.Ref)
	assert.Equal(t, "#/services/devices", sub.Ref.Value)
}

func TestApiErrorUnmarshal(t *testing.T) {
	var byRef ApiError
	require.NoError(t, json.Unmarshal([]byte(`{"$ref":"#/errors/notFound"}`), &byRef))
	require.NotNil(t, byRef.Ref)
	assert.Equal(t, "#/errors/notFound", byRef.Ref.Value)

	var direct ApiError
	require.NoError(t, json.Unmarshal([]byte(`{"code":404,"description":"Not Found"}`), &direct))
	assert.Nil(t, direct.Ref)
	assert.Equal(t, 404, direct.Code)
	assert.Equal(t, "Not Found", direct.Description)
}

func TestItemsDefaults(t *testing.T) {
	items := &Items{}
	p := items.EffectivePathParameter()
	assert.Equal(t, DefaultPathParameterName, p.Name)
	assert.Equal(t, "string", p.Type)
	assert.Equal(t, SourcePath, p.Source)
	assert.True(t, p.Required)
}

func TestItemsAsResource(t *testing.T) {
	schema := NewSchemaRef("#/definitions/user")
	items := &Items{
		Read:  &Read{},
		Patch: &Patch{Operations: []PatchOperation{PatchOperationReplace}},
	}
	resource := items.AsResource(true, schema, "Users", "User collection")

	assert.True(t, resource.MVCCSupported)
	assert.Equal(t, schema, resource.ResourceSchema)
	assert.Equal(t, "Users", resource.Title)
	assert.Equal(t, "User collection", resource.Description)
	assert.Same(t, items.Read, resource.Read)
	assert.Same(t, items.Patch, resource.Patch)
	assert.Nil(t, resource.Create)
	assert.Nil(t, resource.SubResources)
}

func TestPatchOperationLower(t *testing.T) {
	assert.Equal(t, "add", PatchOperationAdd.Lower())
	assert.Equal(t, "transform", PatchOperationTransform.Lower())
}

func TestApiDescriptionDecode(t *testing.T) {
	data := []byte(`{
		"id": "frapi:users",
		"version": "1.0",
		"description": "User management",
		"definitions": {"user": {"type": "object"}},
		"errors": {"notFound": {"code": 404, "description": "Not Found"}},
		"paths": {
			"/users": {
				"1.0": {"read": {}},
				"2.0": {"read": {}}
			}
		}
	}`)
	var desc ApiDescription
	require.NoError(t, json.Unmarshal(data, &desc))
	assert.Equal(t, "frapi:users", desc.ID)
	assert.Equal(t, []string{"/users"}, desc.Paths.Names())
	assert.Equal(t, []string{"1.0", "2.0"}, desc.Paths["/users"].Versions())
}
