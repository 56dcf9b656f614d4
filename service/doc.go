// Package service defines the framework-agnostic value objects that describe
// a documented API: listings, endpoint descriptions, operations, parameters,
// authorization references and the resource index tying them together.
//
// Values in this package are treated as immutable once materialized. Use the
// builders package to assemble them:
//
//	listing := builders.NewApiListingBuilder(service.ByPath()).
//		APIVersion("1.0").
//		BasePath("/v1").
//		APIs(descriptions).
//		Build()
//
// The render package turns the assembled values into serializable API
// declaration documents.
package service
