package config

import (
	"github.com/routedoc/routedoc/builders"
	"github.com/routedoc/routedoc/render"
	"github.com/routedoc/routedoc/service"
)

// BuildRegistry assembles one listing per configured group, layering the
// project defaults under each listing block, and registers them all in a
// render.Registry. The supplied ordering is handed to every listing builder.
func (c *Config) BuildRegistry(ordering service.DescriptionOrdering) *render.Registry {
	var apiVersion string
	if c.Project != nil {
		apiVersion = c.Project.APIVersion
	}

	registry := render.NewRegistry(apiVersion)
	for _, block := range c.Listings {
		registry.Add(block.Group, c.buildListing(block, ordering))
	}
	return registry
}

// buildListing applies project defaults first, then listing overrides. The
// builder's set-if-present and replace semantics make the layering fall out
// naturally: absent listing attributes decode to empty strings and nil
// slices, which leave the defaults in place.
func (c *Config) buildListing(block *ListingBlock, ordering service.DescriptionOrdering) *service.ApiListing {
	b := builders.NewApiListingBuilder(ordering)

	if c.Project != nil {
		b.APIVersion(c.Project.APIVersion).
			BasePath(c.Project.BasePath).
			Produces(c.Project.Produces).
			Consumes(c.Project.Consumes).
			Protocols(c.Project.Protocols)
	}

	return b.ResourcePath(block.ResourcePath).
		Description(block.Description).
		Position(block.Position).
		Produces(block.Produces).
		Consumes(block.Consumes).
		Protocols(block.Protocols).
		Build()
}
