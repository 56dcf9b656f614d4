package render

import (
	"github.com/routedoc/routedoc/schema"
	"github.com/routedoc/routedoc/service"
)

// SwaggerVersion is the descriptor format version emitted by this package.
const SwaggerVersion = "1.2"

// ApiDeclaration is the serializable form of one service.ApiListing. Hidden
// descriptions and operations are filtered out during mapping.
type ApiDeclaration struct {
	SwaggerVersion string                                  `yaml:"swaggerVersion" json:"swaggerVersion"`
	APIVersion     string                                  `yaml:"apiVersion,omitempty" json:"apiVersion,omitempty"`
	BasePath       string                                  `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	ResourcePath   string                                  `yaml:"resourcePath,omitempty" json:"resourcePath,omitempty"`
	Produces       []string                                `yaml:"produces,omitempty" json:"produces,omitempty"`
	Consumes       []string                                `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Protocols      []string                                `yaml:"protocols,omitempty" json:"protocols,omitempty"`
	Authorizations map[string][]service.AuthorizationScope `yaml:"authorizations,omitempty" json:"authorizations,omitempty"`
	APIs           []*service.ApiDescription               `yaml:"apis,omitempty" json:"apis,omitempty"`
	Models         map[string]*schema.Model                `yaml:"models,omitempty" json:"models,omitempty"`
	Description    string                                  `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures vendor extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ResourceIndex is the serializable form of the service.ResourceListing
// index document.
type ResourceIndex struct {
	SwaggerVersion string        `yaml:"swaggerVersion" json:"swaggerVersion"`
	APIVersion     string        `yaml:"apiVersion,omitempty" json:"apiVersion,omitempty"`
	APIs           []*IndexEntry `yaml:"apis,omitempty" json:"apis,omitempty"`
	// Extra captures vendor extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IndexEntry points at one declaration from the index.
type IndexEntry struct {
	Path        string `yaml:"path" json:"path"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// FromListing maps a listing to its declaration document. Hidden
// descriptions are dropped, as are hidden operations within visible
// descriptions. Authorization references collapse into a map keyed by scheme
// type; scopes from repeated references of the same type are concatenated.
func FromListing(listing *service.ApiListing) *ApiDeclaration {
	decl := &ApiDeclaration{
		SwaggerVersion: SwaggerVersion,
		APIVersion:     listing.APIVersion,
		BasePath:       listing.BasePath,
		ResourcePath:   listing.ResourcePath,
		Produces:       listing.Produces,
		Consumes:       listing.Consumes,
		Protocols:      listing.Protocols,
		Models:         listing.Models,
		Description:    listing.Description,
	}

	if len(listing.Authorizations) > 0 {
		decl.Authorizations = make(map[string][]service.AuthorizationScope, len(listing.Authorizations))
		for _, auth := range listing.Authorizations {
			decl.Authorizations[auth.Type] = append(decl.Authorizations[auth.Type], auth.Scopes...)
		}
	}

	for _, api := range listing.APIs {
		if api.Hidden {
			continue
		}
		decl.APIs = append(decl.APIs, visibleDescription(api))
	}

	return decl
}

// FromResourceListing maps the index value to its serializable form.
// Reference order is preserved; positions are an assembly-time concern and
// do not appear on the wire.
func FromResourceListing(listing *service.ResourceListing) *ResourceIndex {
	index := &ResourceIndex{
		SwaggerVersion: SwaggerVersion,
		APIVersion:     listing.APIVersion,
	}
	for _, ref := range listing.Infos {
		index.APIs = append(index.APIs, &IndexEntry{
			Path:        ref.Path,
			Description: ref.Description,
		})
	}
	return index
}

// visibleDescription returns api with hidden operations removed. The input
// is not mutated; a shallow copy is returned when filtering is needed.
func visibleDescription(api *service.ApiDescription) *service.ApiDescription {
	hidden := 0
	for _, op := range api.Operations {
		if op.Hidden {
			hidden++
		}
	}
	if hidden == 0 {
		return api
	}
	out := *api
	out.Operations = make([]*service.Operation, 0, len(api.Operations)-hidden)
	for _, op := range api.Operations {
		if !op.Hidden {
			out.Operations = append(out.Operations, op)
		}
	}
	return &out
}
