// Package transform converts a descriptor document into an OpenAPI 2.0
// (Swagger) document model.
//
// The transformation is a single synchronous, depth-first walk over the
// descriptor's path tree. For each resolved resource it emits one Swagger
// operation per descriptor operation kind, synthesizing unique
// "path#fragment" keys where Swagger cannot express overloaded
// (path, method) pairs, and translating the descriptor's JSON Schema
// dialect into typed schema models. Semantics with no native Swagger
// equivalent (read/write policies, property ordering, return-on-demand,
// resource versions, enum titles) are carried as vendor extensions.
//
// Every failure is fatal to the run: a transformation either completes or
// returns an error from the descerrors package, producing no partial
// document. A single call to [Transform] uses its own accumulators, so
// independent transformations may run concurrently.
//
//	doc, err := transform.Transform(desc,
//	    transform.WithTitle("User Management"),
//	    transform.WithHost("api.example.com"),
//	    transform.WithBasePath("/api"),
//	    transform.WithSecure(true),
//	)
package transform
