package transform

import (
	"github.com/erraggy/cresttools/descerrors"
	"github.com/erraggy/cresttools/descriptor"
	"github.com/erraggy/cresttools/internal/naming"
	"github.com/erraggy/cresttools/internal/pathutil"
	"github.com/erraggy/cresttools/swagger"
)

// buildCreate emits the create operation, if any. Client-assigned ids
// map to PUT, server-assigned ids to POST.
func (t *transformer) buildCreate(resource *descriptor.Resource, pathName, pathNamespace, tag, version string, resourceSchema *descriptor.Schema, parameters []*descriptor.Parameter) error {
	create := resource.Create
	if create == nil {
		return nil
	}
	var method, summary string
	switch create.Mode {
	case descriptor.CreateModeIDFromClient:
		method = swagger.MethodPut
		summary = "Create with Client-Assigned ID"
	case descriptor.CreateModeIDFromServer:
		method = swagger.MethodPost
		summary = "Create with Server-Assigned ID"
	default:
		return &descerrors.UnsupportedValueError{Field: "create mode", Value: create.Mode}
	}

	request, err := t.optionalSchema(resourceSchema)
	if err != nil {
		return err
	}
	operationID := naming.Normalize(pathNamespace, "create", method)
	op, err := t.buildOperation(&create.Operation, operationID, request, resourceSchema, parameters)
	if err != nil {
		return err
	}
	op.Summary = summary
	if resource.MVCCSupported && method == swagger.MethodPut {
		op.AddParameter(swagger.NewRefParameter(paramIfNoneMatchAnyOnly))
	}
	fragment := naming.Normalize(version, "create", method)
	return t.addOperation(op, method, pathName, fragment, version, tag)
}

// buildRead emits the read operation, if any.
func (t *transformer) buildRead(resource *descriptor.Resource, pathName, pathNamespace, tag, version string, resourceSchema *descriptor.Schema, parameters []*descriptor.Parameter) error {
	read := resource.Read
	if read == nil {
		return nil
	}
	operationID := naming.Normalize(pathNamespace, "read")
	op, err := t.buildOperation(&read.Operation, operationID, nil, resourceSchema, parameters)
	if err != nil {
		return err
	}
	op.Summary = "Read"
	op.AddParameter(swagger.NewRefParameter(paramMimeType))
	if resource.MVCCSupported {
		op.AddParameter(swagger.NewRefParameter(paramIfNoneMatchRevOnly))
	}
	fragment := naming.Normalize(version, "read")
	return t.addOperation(op, swagger.MethodGet, pathName, fragment, version, tag)
}

// buildUpdate emits the update operation, if any.
func (t *transformer) buildUpdate(resource *descriptor.Resource, pathName, pathNamespace, tag, version string, resourceSchema *descriptor.Schema, parameters []*descriptor.Parameter) error {
	update := resource.Update
	if update == nil {
		return nil
	}
	request, err := t.optionalSchema(resourceSchema)
	if err != nil {
		return err
	}
	operationID := naming.Normalize(pathNamespace, "update")
	op, err := t.buildOperation(&update.Operation, operationID, request, resourceSchema, parameters)
	if err != nil {
		return err
	}
	op.Summary = "Update"
	if resource.MVCCSupported {
		op.AddParameter(swagger.NewRefParameter(paramIfMatch))
	}
	fragment := naming.Normalize(version, "update")
	return t.addOperation(op, swagger.MethodPut, pathName, fragment, version, tag)
}

// buildDelete emits the delete operation, if any.
func (t *transformer) buildDelete(resource *descriptor.Resource, pathName, pathNamespace, tag, version string, resourceSchema *descriptor.Schema, parameters []*descriptor.Parameter) error {
	del := resource.Delete
	if del == nil {
		return nil
	}
	operationID := naming.Normalize(pathNamespace, "delete")
	op, err := t.buildOperation(&del.Operation, operationID, nil, resourceSchema, parameters)
	if err != nil {
		return err
	}
	op.Summary = "Delete"
	if resource.MVCCSupported {
		op.AddParameter(swagger.NewRefParameter(paramIfMatch))
	}
	fragment := naming.Normalize(version, "delete")
	return t.addOperation(op, swagger.MethodDelete, pathName, fragment, version, tag)
}

// buildPatch emits the patch operation, if any. The request body is a
// synthesized array of patch operations restricted to the kinds the
// resource allows.
func (t *transformer) buildPatch(resource *descriptor.Resource, pathName, pathNamespace, tag, version string, resourceSchema *descriptor.Schema, parameters []*descriptor.Parameter) error {
	patch := resource.Patch
	if patch == nil {
		return nil
	}
	operationID := naming.Normalize(pathNamespace, "patch")
	op, err := t.buildOperation(&patch.Operation, operationID, patchRequestBody(patch.Operations), resourceSchema, parameters)
	if err != nil {
		return err
	}
	op.Summary = "Update via Patch Operations"
	if resource.MVCCSupported {
		op.AddParameter(swagger.NewRefParameter(paramIfMatch))
	}
	fragment := naming.Normalize(version, "patch")
	return t.addOperation(op, swagger.MethodPatch, pathName, fragment, version, tag)
}

// patchRequestBody synthesizes the request body for a patch operation:
// an array of patch operation objects whose "operation" field is an enum
// of the allowed kinds, lower-cased.
func patchRequestBody(operations []descriptor.PatchOperation) *swagger.Schema {
	enum := make([]string, 0, len(operations))
	for _, op := range operations {
		enum = append(enum, op.Lower())
	}
	properties := swagger.NewProperties()
	properties.Set("operation", &swagger.Schema{Type: "string", Enum: enum})
	properties.Set("field", &swagger.Schema{Type: "string"})
	properties.Set("from", &swagger.Schema{Type: "string"})
	properties.Set("value", &swagger.Schema{Type: "string"})
	return &swagger.Schema{
		Type: "array",
		Items: &swagger.Schema{
			Type:       "object",
			Required:   []string{"operation"},
			Properties: properties,
		},
	}
}

// buildActions emits one POST operation per named action. Every action
// on a path shares the POST slot, so each gets its own fragment and a
// required "_action" query parameter pinned to the action's name.
func (t *transformer) buildActions(resource *descriptor.Resource, pathName, pathNamespace, tag, version string, parameters []*descriptor.Parameter) error {
	if len(resource.Actions) == 0 {
		return nil
	}
	actionNamespace := naming.Normalize(pathNamespace, "action")
	actionFragment := naming.Normalize(version, "action")
	for _, action := range resource.Actions {
		request, err := t.optionalSchema(action.Request)
		if err != nil {
			return err
		}
		operationID := naming.Normalize(actionNamespace, action.Name)
		op, err := t.buildOperation(&action.Operation, operationID, request, action.Response, parameters)
		if err != nil {
			return err
		}
		op.Summary = "Action: " + action.Name
		op.AddParameter(&swagger.Parameter{
			Name:     "_action",
			In:       swagger.ParamInQuery,
			Type:     "string",
			Required: true,
			Enum:     []string{action.Name},
		})
		fragment := naming.Normalize(actionFragment, action.Name)
		if err := t.addOperation(op, swagger.MethodPost, pathName, fragment, version, tag); err != nil {
			return err
		}
	}
	return nil
}

// buildQueries emits one GET operation per query. All queries on a path
// share the GET slot, so each gets its own fragment. The response is the
// resource schema wrapped as an array unless it already is one (or is a
// reference, which passes through unchanged).
func (t *transformer) buildQueries(resource *descriptor.Resource, pathName, pathNamespace, tag, version string, resourceSchema *descriptor.Schema, parameters []*descriptor.Parameter) error {
	if len(resource.Queries) == 0 {
		return nil
	}
	queryNamespace := naming.Normalize(pathNamespace, "query")
	queryFragment := naming.Normalize(version, "query")

	responsePayload := resourceSchema
	if resourceSchema != nil && resourceSchema.JSON != nil && resourceSchema.JSON.Type != "array" {
		responsePayload = descriptor.NewSchema(&descriptor.JSONSchema{
			Type:  "array",
			Items: resourceSchema.JSON,
		})
	}

	for _, query := range resource.Queries {
		selector, discriminator, summary, err := queryParameter(query)
		if err != nil {
			return err
		}
		operationID := naming.Normalize(queryNamespace, discriminator)
		op, err := t.buildOperation(&query.Operation, operationID, nil, responsePayload, parameters)
		if err != nil {
			return err
		}
		op.Summary = summary
		op.AddParameter(selector)
		if err := addPagingParameters(op, query); err != nil {
			return err
		}
		fragment := naming.Normalize(queryFragment, discriminator)
		if err := t.addOperation(op, swagger.MethodGet, pathName, fragment, version, tag); err != nil {
			return err
		}
	}
	return nil
}

// queryParameter builds the query-selecting parameter, the discriminator
// used in operation ids and fragments, and the operation summary.
func queryParameter(query *descriptor.Query) (*swagger.Parameter, string, string, error) {
	switch query.Type {
	case descriptor.QueryTypeID:
		return &swagger.Parameter{
			Name:     "_queryId",
			In:       swagger.ParamInQuery,
			Type:     "string",
			Required: true,
			Enum:     []string{query.QueryID},
		}, naming.Normalize("id", query.QueryID), "Query by ID: " + query.QueryID, nil
	case descriptor.QueryTypeFilter:
		return &swagger.Parameter{
			Name:     "_queryFilter",
			In:       swagger.ParamInQuery,
			Type:     "string",
			Required: true,
		}, "filter", "Query by Filter", nil
	case descriptor.QueryTypeExpression:
		return &swagger.Parameter{
			Name:     "_queryExpression",
			In:       swagger.ParamInQuery,
			Type:     "string",
			Required: true,
		}, "expression", "Query by Expression", nil
	default:
		return nil, "", "", &descerrors.UnsupportedValueError{Field: "query type", Value: query.Type}
	}
}

// addPagingParameters appends the pagination, count-policy, and sort-key
// parameters a query supports.
func addPagingParameters(op *swagger.Operation, query *descriptor.Query) error {
	op.AddParameter(&swagger.Parameter{
		Name: "_pageSize",
		In:   swagger.ParamInQuery,
		Type: "integer",
	})
	for _, mode := range query.PagingModes {
		switch mode {
		case descriptor.PagingModeCookie:
			op.AddParameter(&swagger.Parameter{
				Name: "_pagedResultsCookie",
				In:   swagger.ParamInQuery,
				Type: "string",
			})
		case descriptor.PagingModeOffset:
			op.AddParameter(&swagger.Parameter{
				Name: "_pagedResultsOffset",
				In:   swagger.ParamInQuery,
				Type: "integer",
			})
		default:
			return &descerrors.UnsupportedValueError{Field: "paging mode", Value: mode}
		}
	}

	// Absent count policies mean the count is never computed.
	policies := query.CountPolicies
	if len(policies) == 0 {
		policies = []descriptor.CountPolicy{descriptor.CountPolicyNone}
	}
	policyEnum := make([]string, 0, len(policies))
	for _, policy := range policies {
		policyEnum = append(policyEnum, string(policy))
	}
	op.AddParameter(&swagger.Parameter{
		Name: "_totalPagedResultsPolicy",
		In:   swagger.ParamInQuery,
		Type: "string",
		Enum: policyEnum,
	})

	// Every non-ID query accepts sort keys; the enum narrows the accepted
	// set only when the query declares one.
	if query.Type != descriptor.QueryTypeID {
		sortKeys := &swagger.Parameter{
			Name:             "_sortKeys",
			In:               swagger.ParamInQuery,
			Type:             "string",
			CollectionFormat: "csv",
		}
		if len(query.SupportedSortKeys) > 0 {
			sortKeys.Enum = query.SupportedSortKeys
		}
		op.AddParameter(sortKeys)
	}
	return nil
}

// optionalSchema translates a schema that may be absent.
func (t *transformer) optionalSchema(schema *descriptor.Schema) (*swagger.Schema, error) {
	if schema == nil {
		return nil, nil
	}
	return t.buildSchema(schema)
}

// buildOperation assembles the fields every operation kind shares:
// description, deprecation, declared and inherited parameters, the
// common "_fields"/"_prettyPrint" references, an optional request body,
// and the response set.
func (t *transformer) buildOperation(info *descriptor.Operation, operationID string, request *swagger.Schema, response *descriptor.Schema, parameters []*descriptor.Parameter) (*swagger.Operation, error) {
	op := &swagger.Operation{
		OperationID: operationID,
		Description: info.Description,
	}
	if info.Stability == descriptor.StabilityDeprecated || info.Stability == descriptor.StabilityRemoved {
		op.Deprecated = true
	}

	merged := pathutil.MergeParameters(parameters, info.Parameters...)
	for _, parameter := range merged {
		built, err := buildParameter(parameter)
		if err != nil {
			return nil, err
		}
		op.AddParameter(built)
	}
	op.AddParameter(swagger.NewRefParameter(paramFields))
	op.AddParameter(swagger.NewRefParameter(paramPrettyPrint))

	if request != nil {
		op.AddParameter(&swagger.Parameter{
			Name:     "requestPayload",
			In:       swagger.ParamInBody,
			Required: true,
			Schema:   request,
		})
	}

	responses, err := t.buildResponses(response, info.Errors)
	if err != nil {
		return nil, err
	}
	op.Responses = responses
	return op, nil
}

// buildParameter maps a descriptor parameter onto a Swagger one. Path
// parameters keep their location; additional parameters become query
// parameters.
func buildParameter(parameter *descriptor.Parameter) (*swagger.Parameter, error) {
	var in string
	switch parameter.Source {
	case descriptor.SourcePath:
		in = swagger.ParamInPath
	case descriptor.SourceAdditional:
		in = swagger.ParamInQuery
	default:
		return nil, &descerrors.UnsupportedValueError{Field: "parameter source", Value: parameter.Source}
	}
	built := &swagger.Parameter{
		Name:        parameter.Name,
		In:          in,
		Type:        parameter.Type,
		Description: parameter.Description,
		Required:    parameter.Required,
		Enum:        parameter.EnumValues,
	}
	if parameter.DefaultValue != "" {
		built.Default = parameter.DefaultValue
	}
	if len(parameter.EnumValues) > 0 && len(parameter.EnumTitles) > 0 {
		built.SetExtension("x-enum_titles", parameter.EnumTitles)
	}
	return built, nil
}
