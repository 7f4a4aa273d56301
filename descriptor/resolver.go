package descriptor

import (
	"github.com/erraggy/cresttools/descerrors"
)

// Resolver resolves named references to resources, schemas, and errors,
// within a local descriptor or across a registered set of external
// descriptors. Resolution is a pure in-memory lookup: it never mutates
// the registered documents, and re-resolving the same reference yields
// the same result.
type Resolver struct {
	local *ApiDescription
	// documents holds externally registered descriptors keyed by id
	documents map[string]*ApiDescription
}

// NewResolver creates a resolver for references within local.
func NewResolver(local *ApiDescription) *Resolver {
	return &Resolver{
		local:     local,
		documents: make(map[string]*ApiDescription),
	}
}

// Register makes external descriptors available for qualified references.
// Registration must happen before resolution; a reference into an
// unregistered document is a resolution failure.
func (r *Resolver) Register(descriptions ...*ApiDescription) {
	for _, d := range descriptions {
		if d != nil {
			r.documents[d.ID] = d
		}
	}
}

// Service resolves a reference of the form "[docID]#/services/<name>".
func (r *Resolver) Service(ref *Reference) (*Resource, error) {
	doc, name, err := r.target(ref, SectionServices)
	if err != nil {
		return nil, err
	}
	if resource, ok := doc.Services[name]; ok {
		return resource, nil
	}
	return nil, notFound(ref, "service")
}

// Definition resolves a reference of the form "[docID]#/definitions/<name>".
func (r *Resolver) Definition(ref *Reference) (*Schema, error) {
	doc, name, err := r.target(ref, SectionDefinitions)
	if err != nil {
		return nil, err
	}
	if schema, ok := doc.Definitions[name]; ok {
		return schema, nil
	}
	return nil, notFound(ref, "definition")
}

// ApiError resolves a reference of the form "[docID]#/errors/<name>".
func (r *Resolver) ApiError(ref *Reference) (*ApiError, error) {
	doc, name, err := r.target(ref, SectionErrors)
	if err != nil {
		return nil, err
	}
	if apiError, ok := doc.Errors[name]; ok {
		return apiError, nil
	}
	return nil, notFound(ref, "error")
}

// target locates the document a reference points into and validates the
// reference shape against the expected section.
func (r *Resolver) target(ref *Reference, wantSection string) (*ApiDescription, string, error) {
	docID, section, name, ok := ref.parse()
	if !ok || section != wantSection {
		return nil, "", &descerrors.ReferenceError{
			Ref:     refValue(ref),
			Kind:    wantSection,
			Message: "expected a reference of the form [docID]#/" + wantSection + "/<name>",
		}
	}
	if docID == "" || (r.local != nil && docID == r.local.ID) {
		if r.local == nil {
			return nil, "", &descerrors.ReferenceError{Ref: ref.Value, Kind: wantSection, Message: "no local document"}
		}
		return r.local, name, nil
	}
	doc, ok := r.documents[docID]
	if !ok {
		return nil, "", &descerrors.ReferenceError{
			Ref:      ref.Value,
			Kind:     wantSection,
			Document: docID,
			Message:  "document not registered",
		}
	}
	return doc, name, nil
}

func notFound(ref *Reference, kind string) error {
	docID, _, _, _ := ref.parse()
	return &descerrors.ReferenceError{Ref: ref.Value, Kind: kind, Document: docID}
}

func refValue(ref *Reference) string {
	if ref == nil {
		return ""
	}
	return ref.Value
}
