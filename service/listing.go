package service

import "github.com/routedoc/routedoc/schema"

// ApiListing is a grouped collection of endpoint descriptions plus the
// metadata and model definitions they reference. One listing is produced per
// logical section of an API's documentation.
//
// Listings are immutable by convention: they are materialized by
// builders.ApiListingBuilder and must not be mutated afterwards. The render
// package serializes them into API declaration documents.
type ApiListing struct {
	APIVersion     string                   `yaml:"apiVersion,omitempty" json:"apiVersion,omitempty"`
	BasePath       string                   `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	ResourcePath   string                   `yaml:"resourcePath,omitempty" json:"resourcePath,omitempty"`
	Produces       []string                 `yaml:"produces,omitempty" json:"produces,omitempty"`
	Consumes       []string                 `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Protocols      []string                 `yaml:"protocols,omitempty" json:"protocols,omitempty"`
	Authorizations []Authorization          `yaml:"authorizations,omitempty" json:"authorizations,omitempty"`
	APIs           []*ApiDescription        `yaml:"apis,omitempty" json:"apis,omitempty"`
	Models         map[string]*schema.Model `yaml:"models,omitempty" json:"models,omitempty"`
	Description    string                   `yaml:"description,omitempty" json:"description,omitempty"`
	Position       int                      `yaml:"position,omitempty" json:"position,omitempty"`
}
