// Package descriptor defines the object model for versioned REST API
// descriptors: resources exposing create/read/update/delete/patch, query,
// and action operations, together with their JSON Schema payloads,
// parameters, and error catalogs.
//
// The model mirrors the descriptor's JSON wire format through struct tags,
// but construction, loading, and validation of descriptors are the
// caller's concern. A [Resolver] resolves the named references that tie a
// descriptor's paths, services, definitions, and errors together, within
// the local document or across a registered set of external documents.
package descriptor
