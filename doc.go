// Package routedoc provides the service-description layer of an API
// documentation generator: value objects describing grouped API endpoints,
// fluent builders assembling them, and rendering of the assembled model into
// API descriptor documents.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - service: framework-agnostic value objects (listings, descriptions,
//     operations, authorizations) and ordering strategies
//   - builders: fluent builders materializing immutable service values
//   - render: mapping of service values to serializable descriptor
//     documents (JSON/YAML) plus an HTTP serving surface
//   - config: HCL project configuration driving the routedoc CLI
//
// # Quick Start
//
// Assemble a listing and render it:
//
//	import (
//		"github.com/routedoc/routedoc/builders"
//		"github.com/routedoc/routedoc/render"
//		"github.com/routedoc/routedoc/service"
//	)
//
//	listing := builders.NewApiListingBuilder(service.ByPath()).
//		APIVersion("1.0").
//		BasePath("/v1").
//		ResourcePath("/pets").
//		Produces([]string{"application/json"}).
//		APIs(descriptions).
//		Build()
//
//	data, err := render.MarshalYAML(render.FromListing(listing))
//
// Group several listings and serve them:
//
//	registry := render.NewRegistry("1.0")
//	registry.Add("pets", listing)
//	err := render.NewServer(registry, "/api-docs").ListenAndServe(ctx, ":8080")
//
// # Builders
//
// Builders accept inputs permissively: absent scalars (empty strings) leave
// prior values in place, nil slices leave collections untouched where the
// setter documents replace semantics, and nil maps are treated as empty.
// Build performs no validation; downstream consumers decide what a complete
// document requires.
package routedoc
