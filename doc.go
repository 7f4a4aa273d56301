// Package cresttools provides tools for transforming declarative REST API
// descriptors into OpenAPI 2.0 (Swagger) documents.
//
// A descriptor declares an API as versioned resources with CRUD, query,
// and action operations, JSON Schema payloads, and a shared error
// catalog. The transformation maps that model onto the Swagger document
// model, synthesizing the plumbing Swagger needs (unique path keys,
// global parameters, MVCC conditional headers, patch request bodies) and
// carrying descriptor semantics Swagger cannot express natively as
// vendor extensions.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - descriptor: the input object model, with reference resolution
//     across documents
//   - swagger: the output OpenAPI 2.0 document model, with JSON and YAML
//     rendering
//   - transform: the engine converting one into the other
//
// Error kinds shared by all packages live in descerrors.
//
// # Quick Start
//
// Decode a descriptor and transform it:
//
//	import (
//		"encoding/json"
//
//		"github.com/erraggy/cresttools/descriptor"
//		"github.com/erraggy/cresttools/transform"
//	)
//
//	var desc descriptor.ApiDescription
//	if err := json.Unmarshal(data, &desc); err != nil {
//		log.Fatal(err)
//	}
//
//	doc, err := transform.Transform(&desc,
//		transform.WithHost("api.example.com"),
//		transform.WithBasePath("/api"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, err := doc.JSON()
//
// References across descriptor documents resolve when the referenced
// documents are registered up front:
//
//	doc, err := transform.Transform(&desc,
//		transform.WithExternalDescriptors(common, shared),
//	)
//
// # Error Handling
//
// A transformation either completes or fails; there is no partial
// output. Failures are typed errors from the descerrors package and
// match their sentinels with errors.Is:
//
//	if errors.Is(err, descerrors.ErrReference) {
//		// an unresolved reference
//	}
//
// # Concurrency
//
// Transform never mutates its input, and each call uses its own
// accumulators, so concurrent transformations of the same descriptor
// are safe.
//
// # Additional Resources
//
//   - OpenAPI Specification 2.0: https://spec.openapis.org/oas/v2.0.html
//   - JSON Schema Specification: https://json-schema.org
package cresttools
