package service

// ResourceListing is the index document grouping all listings of a
// documented API. Each reference points at one listing, addressable by its
// path segment.
type ResourceListing struct {
	APIVersion string                 `yaml:"apiVersion,omitempty" json:"apiVersion,omitempty"`
	Infos      []*ApiListingReference `yaml:"apis,omitempty" json:"apis,omitempty"`
}

// ApiListingReference points at one listing from the resource index.
// Position controls display ordering of the reference within the index.
type ApiListingReference struct {
	Path        string `yaml:"path" json:"path"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Position    int    `yaml:"position,omitempty" json:"position,omitempty"`
}
