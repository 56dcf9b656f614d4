package builders

import (
	"github.com/routedoc/routedoc/schema"
	"github.com/routedoc/routedoc/service"
)

// ApiListingBuilder assembles a service.ApiListing. The zero value is not
// usable; construct with NewApiListingBuilder, which fixes the ordering
// applied to endpoint descriptions passed to APIs.
//
// Scalar setters treat an empty string as absent and keep the prior value.
// Collection setters document their replace or append semantics
// individually. Build may be called any number of times; each call returns
// an independent snapshot.
type ApiListingBuilder struct {
	ordering service.DescriptionOrdering

	apiVersion   string
	basePath     string
	resourcePath string
	description  string
	position     int

	produces       stringSet
	consumes       stringSet
	protocols      stringSet
	authorizations []service.Authorization
	apis           []*service.ApiDescription
	models         map[string]*schema.Model
}

// NewApiListingBuilder creates a builder whose APIs setter sorts endpoint
// descriptions with the given ordering. A nil ordering preserves the order
// descriptions are supplied in.
func NewApiListingBuilder(ordering service.DescriptionOrdering) *ApiListingBuilder {
	return &ApiListingBuilder{
		ordering:  ordering,
		produces:  newStringSet(),
		consumes:  newStringSet(),
		protocols: newStringSet(),
		models:    make(map[string]*schema.Model),
	}
}

// APIVersion updates the api version. Empty input keeps the prior value.
func (b *ApiListingBuilder) APIVersion(version string) *ApiListingBuilder {
	b.apiVersion = defaultIfAbsent(version, b.apiVersion)
	return b
}

// BasePath updates the base path. Empty input keeps the prior value.
func (b *ApiListingBuilder) BasePath(path string) *ApiListingBuilder {
	b.basePath = defaultIfAbsent(path, b.basePath)
	return b
}

// ResourcePath updates the resource path. Empty input keeps the prior value.
func (b *ApiListingBuilder) ResourcePath(path string) *ApiListingBuilder {
	b.resourcePath = defaultIfAbsent(path, b.resourcePath)
	return b
}

// Description updates the description. Empty input keeps the prior value.
func (b *ApiListingBuilder) Description(description string) *ApiListingBuilder {
	b.description = defaultIfAbsent(description, b.description)
	return b
}

// Position updates the display position. Always overwrites.
func (b *ApiListingBuilder) Position(position int) *ApiListingBuilder {
	b.position = position
	return b
}

// Produces replaces the media types this listing produces. A nil slice keeps
// the existing set; a non-nil slice (including an empty one) replaces it
// entirely with a copy.
func (b *ApiListingBuilder) Produces(mediaTypes []string) *ApiListingBuilder {
	if mediaTypes != nil {
		b.produces = replaced(mediaTypes)
	}
	return b
}

// Consumes replaces the media types this listing consumes. Same semantics as
// Produces.
func (b *ApiListingBuilder) Consumes(mediaTypes []string) *ApiListingBuilder {
	if mediaTypes != nil {
		b.consumes = replaced(mediaTypes)
	}
	return b
}

// AppendProduces adds media types to the produced set, deduplicating against
// existing entries. A nil slice is treated as empty.
func (b *ApiListingBuilder) AppendProduces(mediaTypes []string) *ApiListingBuilder {
	b.produces.addAll(mediaTypes)
	return b
}

// AppendConsumes adds media types to the consumed set, deduplicating against
// existing entries. A nil slice is treated as empty.
func (b *ApiListingBuilder) AppendConsumes(mediaTypes []string) *ApiListingBuilder {
	b.consumes.addAll(mediaTypes)
	return b
}

// Protocols adds to the supported protocols. Always additive; a nil slice is
// treated as empty.
func (b *ApiListingBuilder) Protocols(protocols []string) *ApiListingBuilder {
	b.protocols.addAll(protocols)
	return b
}

// Authorizations replaces the security scheme references. A nil slice keeps
// the prior list; a non-nil slice replaces it entirely with a copy.
func (b *ApiListingBuilder) Authorizations(authorizations []service.Authorization) *ApiListingBuilder {
	if authorizations != nil {
		b.authorizations = append([]service.Authorization(nil), authorizations...)
	}
	return b
}

// APIs replaces the endpoint descriptions. A nil slice keeps the prior list;
// a non-nil slice is sorted with the construction-time ordering and replaces
// the list. The input slice is never mutated.
func (b *ApiListingBuilder) APIs(apis []*service.ApiDescription) *ApiListingBuilder {
	if apis != nil {
		b.apis = b.ordering.SortedCopy(apis)
	}
	return b
}

// Models merges model definitions into the accumulated mapping. A nil map is
// treated as empty; colliding names are overwritten by later calls.
func (b *ApiListingBuilder) Models(models map[string]*schema.Model) *ApiListingBuilder {
	for name, model := range models {
		b.models[name] = model
	}
	return b
}

// Build materializes the listing. The returned value shares nothing mutable
// with the builder: sets are flattened into sorted slices and lists and maps
// are copied. Absent fields propagate as zero values and empty collections.
func (b *ApiListingBuilder) Build() *service.ApiListing {
	var models map[string]*schema.Model
	if len(b.models) > 0 {
		models = make(map[string]*schema.Model, len(b.models))
		for name, model := range b.models {
			models[name] = model
		}
	}

	var authorizations []service.Authorization
	if len(b.authorizations) > 0 {
		authorizations = make([]service.Authorization, 0, len(b.authorizations))
		for _, auth := range b.authorizations {
			authorizations = append(authorizations, auth.Copy())
		}
	}

	var apis []*service.ApiDescription
	if len(b.apis) > 0 {
		apis = append([]*service.ApiDescription(nil), b.apis...)
	}

	return &service.ApiListing{
		APIVersion:     b.apiVersion,
		BasePath:       b.basePath,
		ResourcePath:   b.resourcePath,
		Produces:       b.produces.sorted(),
		Consumes:       b.consumes.sorted(),
		Protocols:      b.protocols.sorted(),
		Authorizations: authorizations,
		APIs:           apis,
		Models:         models,
		Description:    b.description,
		Position:       b.position,
	}
}
