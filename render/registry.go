package render

import (
	"sort"
	"strings"

	"github.com/routedoc/routedoc/builders"
	"github.com/routedoc/routedoc/service"
)

// Registry accumulates listings by group name and produces the resource
// index plus one declaration per group.
//
// Registry is not safe for concurrent mutation; populate it fully before
// sharing it with readers.
type Registry struct {
	apiVersion string
	groups     map[string]*service.ApiListing
}

// NewRegistry creates a registry for documents of the given api version.
func NewRegistry(apiVersion string) *Registry {
	return &Registry{
		apiVersion: apiVersion,
		groups:     make(map[string]*service.ApiListing),
	}
}

// Add registers a listing under a group name. Re-adding a group replaces the
// previous listing.
func (r *Registry) Add(group string, listing *service.ApiListing) {
	r.groups[group] = listing
}

// Groups returns the registered group names in sorted order.
func (r *Registry) Groups() []string {
	out := make([]string, 0, len(r.groups))
	for group := range r.groups {
		out = append(out, group)
	}
	sort.Strings(out)
	return out
}

// Listing returns the registered listing for a group.
func (r *Registry) Listing(group string) (*service.ApiListing, bool) {
	listing, ok := r.groups[group]
	return listing, ok
}

// Declaration produces the declaration document for one group.
func (r *Registry) Declaration(group string) (*ApiDeclaration, bool) {
	listing, ok := r.groups[group]
	if !ok {
		return nil, false
	}
	return FromListing(listing), true
}

// Declarations produces declaration documents for every registered group.
func (r *Registry) Declarations() map[string]*ApiDeclaration {
	out := make(map[string]*ApiDeclaration, len(r.groups))
	for group, listing := range r.groups {
		out[group] = FromListing(listing)
	}
	return out
}

// Index produces the resource index document. Entries are ordered by each
// listing's position, ties broken by group name, and addressed as "/<group>".
func (r *Registry) Index() *ResourceIndex {
	rb := builders.NewResourceListingBuilder().APIVersion(r.apiVersion)
	for group, listing := range r.groups {
		rb.AppendReference(refPath(group), listing.Description, listing.Position)
	}
	return FromResourceListing(rb.Build())
}

func refPath(group string) string {
	if strings.HasPrefix(group, "/") {
		return group
	}
	return "/" + group
}
