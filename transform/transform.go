package transform

import (
	"errors"

	"github.com/erraggy/cresttools/descriptor"
	"github.com/erraggy/cresttools/internal/naming"
	"github.com/erraggy/cresttools/internal/pathutil"
	"github.com/erraggy/cresttools/swagger"
)

// Keys of the global parameters every transformation registers under
// "#/parameters/". The conditional-header keys carry a usage suffix so
// the three If-None-Match/If-Match flavors stay distinct definitions.
const (
	paramFields             = "_fields"
	paramPrettyPrint        = "_prettyPrint"
	paramMimeType           = "_mimeType"
	paramIfMatch            = "If-Match"
	paramIfNoneMatchAnyOnly = "If-None-Match: *"
	paramIfNoneMatchRevOnly = "If-None-Match: <rev>"
)

// ifNoneMatchHeader is the wire name behind both If-None-Match flavors.
const ifNoneMatchHeader = "If-None-Match"

// Option configures a transformation run.
type Option func(*options)

type options struct {
	title    string
	host     string
	basePath string
	secure   bool
	external []*descriptor.ApiDescription
	logger   Logger
}

// WithTitle overrides the API title in the output document's info block.
// Without it the title is derived from the descriptor id.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithHost sets the host (name or ip, optionally with a port) serving
// the API.
func WithHost(host string) Option {
	return func(o *options) { o.host = host }
}

// WithBasePath sets the base path on which the API is served. It is
// normalized to a single leading slash and no trailing slash.
func WithBasePath(basePath string) Option {
	return func(o *options) { o.basePath = basePath }
}

// WithSecure selects the "https" scheme instead of "http".
func WithSecure(secure bool) Option {
	return func(o *options) { o.secure = secure }
}

// WithExternalDescriptors registers additional descriptor documents so
// that qualified references ("docID#/services/<name>" and the like) can
// resolve across documents.
func WithExternalDescriptors(descriptions ...*descriptor.ApiDescription) Option {
	return func(o *options) { o.external = append(o.external, descriptions...) }
}

// WithLogger sets the logger used during transformation. The default
// discards all output.
func WithLogger(logger Logger) Option {
	return func(o *options) { o.logger = logger }
}

// transformer carries the per-run state of a single transformation.
type transformer struct {
	desc     *descriptor.ApiDescription
	resolver *descriptor.Resolver
	doc      *swagger.Document
	logger   Logger
}

// Transform converts a descriptor document into an OpenAPI 2.0 document.
// The descriptor is read-only input; it is never modified. Any failure
// aborts the run, so a non-nil document is always complete.
func Transform(desc *descriptor.ApiDescription, opts ...Option) (*swagger.Document, error) {
	if desc == nil {
		return nil, errors.New("transform: api description is required")
	}
	o := options{logger: NopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	resolver := descriptor.NewResolver(desc)
	resolver.Register(o.external...)

	title := o.title
	if title == "" {
		title = naming.Title(desc.ID)
	}
	scheme := "http"
	if o.secure {
		scheme = "https"
	}
	doc := &swagger.Document{
		Swagger: "2.0",
		Info: &swagger.Info{
			Title:       title,
			Description: desc.Description,
			Version:     desc.Version,
		},
		Host:     o.host,
		Schemes:  []string{scheme},
		Consumes: []string{"application/json", "text/plain", "multipart/form-data"},
		Produces: []string{"application/json"},
		Paths:    make(swagger.Paths),
	}
	if o.basePath != "" {
		doc.BasePath = pathutil.Join(o.basePath)
	}

	t := &transformer{
		desc:     desc,
		resolver: resolver,
		doc:      doc,
		logger:   o.logger.With("descriptor", desc.ID),
	}
	t.buildParameters()
	if err := t.buildPaths(); err != nil {
		return nil, err
	}
	if err := t.buildDefinitions(); err != nil {
		return nil, err
	}
	t.logger.Debug("transformation complete",
		"paths", len(doc.Paths), "definitions", len(doc.Definitions))
	return doc, nil
}

// buildParameters registers the global parameters shared by all
// operations: field filtering, pretty printing, MIME-type selection, and
// the MVCC conditional headers.
func (t *transformer) buildParameters() {
	t.doc.AddParameter(paramFields, &swagger.Parameter{
		Name:             paramFields,
		In:               swagger.ParamInQuery,
		Type:             "string",
		CollectionFormat: "csv",
		Description: "Optional parameter containing a comma separated list of field references " +
			"specifying which fields of the targeted JSON resource should be returned.",
	})
	t.doc.AddParameter(paramPrettyPrint, &swagger.Parameter{
		Name: paramPrettyPrint,
		In:   swagger.ParamInQuery,
		Type: "boolean",
		Description: "Optional parameter requesting that the returned JSON resource content " +
			"should be formatted to be more human readable.",
	})
	t.doc.AddParameter(paramMimeType, &swagger.Parameter{
		Name: paramMimeType,
		In:   swagger.ParamInQuery,
		Type: "string",
		Description: "Optional parameter requesting that the response have the given MIME-Type. " +
			"Use of this parameter requires a _fields parameter with a single field specified.",
	})
	t.doc.AddParameter(paramIfNoneMatchAnyOnly, &swagger.Parameter{
		Name:     ifNoneMatchHeader,
		In:       swagger.ParamInHeader,
		Type:     "string",
		Required: true,
		Enum:     []string{"*"},
	})
	t.doc.AddParameter(paramIfNoneMatchRevOnly, &swagger.Parameter{
		Name: ifNoneMatchHeader,
		In:   swagger.ParamInHeader,
		Type: "string",
	})
	t.doc.AddParameter(paramIfMatch, &swagger.Parameter{
		Name:    paramIfMatch,
		In:      swagger.ParamInHeader,
		Type:    "string",
		Default: "*",
	})
}

// buildDefinitions translates every named schema definition into the
// output document's definitions section.
func (t *transformer) buildDefinitions() error {
	if len(t.desc.Definitions) == 0 {
		return nil
	}
	t.doc.Definitions = make(map[string]*swagger.Schema, len(t.desc.Definitions))
	for _, name := range t.desc.Definitions.Names() {
		schema := t.desc.Definitions[name]
		model, err := t.buildSchema(schema)
		if err != nil {
			return err
		}
		t.doc.Definitions[name] = model
	}
	return nil
}

// buildSchema translates either schema form: references become
// "#/definitions/" references, inline schemas become full models.
func (t *transformer) buildSchema(schema *descriptor.Schema) (*swagger.Schema, error) {
	if schema.Ref != nil {
		return t.refSchema(schema.Ref.Value)
	}
	return t.buildModel(schema.JSON)
}
