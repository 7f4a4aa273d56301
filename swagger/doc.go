// Package swagger defines the OpenAPI 2.0 (Swagger) document model that
// descriptor transformations produce.
//
// The model covers the subset of the specification the transformation
// emits: info, paths with per-method operations, named definitions,
// reusable global parameters, and tags. Every element carries an Extra
// map for vendor extensions ("x-" fields), which are inlined when
// marshaling to YAML or JSON.
//
// Object schemas keep their properties in an order-preserving
// [Properties] container so that property ordering declared in the source
// descriptor survives serialization.
package swagger
