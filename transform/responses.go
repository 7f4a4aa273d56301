package transform

import (
	"sort"
	"strconv"
	"strings"

	"github.com/erraggy/cresttools/descriptor"
	"github.com/erraggy/cresttools/swagger"
)

// buildResponses assembles an operation's response set: an optional 200
// success response plus one response per distinct error code.
func (t *transformer) buildResponses(schema *descriptor.Schema, apiErrors []*descriptor.ApiError) (map[string]*swagger.Response, error) {
	responses := make(map[string]*swagger.Response)
	if schema != nil {
		success, err := t.buildSchema(schema)
		if err != nil {
			return nil, err
		}
		responses["200"] = &swagger.Response{
			Description: "Success",
			Schema:      success,
		}
	}
	if err := t.buildErrorResponses(responses, apiErrors); err != nil {
		return nil, err
	}
	return responses, nil
}

// buildErrorResponses resolves, sorts, and merges the declared errors
// into per-status-code responses. Errors sharing a code merge into one
// response whose description is a bullet list of the individual non-empty
// descriptions; only the first error's detail schema survives a merge.
func (t *transformer) buildErrorResponses(responses map[string]*swagger.Response, apiErrors []*descriptor.ApiError) error {
	if len(apiErrors) == 0 {
		return nil
	}
	resolved := make([]*descriptor.ApiError, 0, len(apiErrors))
	for _, apiError := range apiErrors {
		if apiError.Ref != nil {
			shared, err := t.resolver.ApiError(apiError.Ref)
			if err != nil {
				return err
			}
			apiError = shared
		}
		resolved = append(resolved, apiError)
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Code < resolved[j].Code
	})

	for i := 0; i < len(resolved); {
		first := resolved[i]
		var descriptions []string
		if first.Description != "" {
			descriptions = append(descriptions, first.Description)
		}
		j := i + 1
		for ; j < len(resolved) && resolved[j].Code == first.Code; j++ {
			if resolved[j].Description != "" {
				descriptions = append(descriptions, resolved[j].Description)
			}
		}

		var cause *descriptor.JSONSchema
		if first.Schema != nil && first.Schema.JSON != nil {
			cause = first.Schema.JSON
		}
		envelope, err := t.errorEnvelope(cause)
		if err != nil {
			return err
		}
		responses[strconv.Itoa(first.Code)] = &swagger.Response{
			Description: mergeDescriptions(descriptions),
			Schema:      envelope,
		}
		i = j
	}
	return nil
}

// mergeDescriptions renders multiple error descriptions as a Markdown
// bullet list; a single description passes through unchanged and none at
// all yields an empty description.
func mergeDescriptions(descriptions []string) string {
	if len(descriptions) <= 1 {
		return strings.Join(descriptions, "")
	}
	var b strings.Builder
	for i, description := range descriptions {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("* ")
		b.WriteString(description)
	}
	return b.String()
}

// errorEnvelope is the standard error response body: code and message
// are always present, reason and detail are optional, and an optional
// cause carries the error's own detail schema.
func (t *transformer) errorEnvelope(cause *descriptor.JSONSchema) (*swagger.Schema, error) {
	properties := swagger.NewProperties()
	properties.Set("code", &swagger.Schema{
		Type:        "integer",
		Format:      "int32",
		Title:       "Code",
		Description: "3-digit error code, corresponding to HTTP status codes.",
	})
	properties.Set("message", &swagger.Schema{
		Type:        "string",
		Title:       "Message",
		Description: "Error message.",
	})
	properties.Set("reason", &swagger.Schema{
		Type:        "string",
		Title:       "Reason",
		Description: "Short description corresponding to error code.",
	})
	properties.Set("detail", &swagger.Schema{
		Type:        "string",
		Title:       "Detail",
		Description: "Detailed error message.",
	})
	if cause != nil {
		detail, err := t.buildProperty(cause)
		if err != nil {
			return nil, err
		}
		if detail != nil {
			properties.Set("cause", detail)
		}
	}
	return &swagger.Schema{
		Type:       "object",
		Required:   []string{"code", "message"},
		Properties: properties,
	}, nil
}
