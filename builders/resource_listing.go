package builders

import (
	"sort"

	"github.com/routedoc/routedoc/service"
)

// ResourceListingBuilder assembles the service.ResourceListing index
// document. References are ordered by position, ties broken by path.
type ResourceListingBuilder struct {
	apiVersion string
	infos      []*service.ApiListingReference
}

// NewResourceListingBuilder creates an empty resource listing builder.
func NewResourceListingBuilder() *ResourceListingBuilder {
	return &ResourceListingBuilder{}
}

// APIVersion updates the api version. Empty input keeps the prior value.
func (b *ResourceListingBuilder) APIVersion(version string) *ResourceListingBuilder {
	b.apiVersion = defaultIfAbsent(version, b.apiVersion)
	return b
}

// AppendReference adds one listing reference.
func (b *ResourceListingBuilder) AppendReference(path, description string, position int) *ResourceListingBuilder {
	b.infos = append(b.infos, &service.ApiListingReference{
		Path:        path,
		Description: description,
		Position:    position,
	})
	return b
}

// References replaces the reference list. A nil slice keeps the prior list;
// a non-nil slice replaces it with a copy.
func (b *ResourceListingBuilder) References(refs []*service.ApiListingReference) *ResourceListingBuilder {
	if refs != nil {
		b.infos = append([]*service.ApiListingReference(nil), refs...)
	}
	return b
}

// Build materializes the index with references sorted by position, then path.
func (b *ResourceListingBuilder) Build() *service.ResourceListing {
	var infos []*service.ApiListingReference
	if len(b.infos) > 0 {
		infos = append([]*service.ApiListingReference(nil), b.infos...)
		sort.SliceStable(infos, func(i, j int) bool {
			if infos[i].Position != infos[j].Position {
				return infos[i].Position < infos[j].Position
			}
			return infos[i].Path < infos[j].Path
		})
	}
	return &service.ResourceListing{
		APIVersion: b.apiVersion,
		Infos:      infos,
	}
}
