package swagger

// HTTP methods supported on a path item.
const (
	MethodGet    = "get"
	MethodPut    = "put"
	MethodPost   = "post"
	MethodDelete = "delete"
	MethodPatch  = "patch"
)

// Parameter location constants (used in Parameter.In field).
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInBody indicates the parameter is in the request body
	ParamInBody = "body"
)

// Reference prefixes for named document sections.
const (
	// DefinitionsPrefix prefixes references to named schema definitions.
	DefinitionsPrefix = "#/definitions/"
	// ParametersPrefix prefixes references to global parameters.
	ParametersPrefix = "#/parameters/"
)
