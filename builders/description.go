package builders

import "github.com/routedoc/routedoc/service"

// ApiDescriptionBuilder assembles a service.ApiDescription.
type ApiDescriptionBuilder struct {
	groupName   string
	path        string
	description string
	operations  []*service.Operation
	hidden      bool
}

// NewApiDescriptionBuilder creates an empty description builder.
func NewApiDescriptionBuilder() *ApiDescriptionBuilder {
	return &ApiDescriptionBuilder{}
}

// GroupName updates the owning group name. Empty input keeps the prior value.
func (b *ApiDescriptionBuilder) GroupName(name string) *ApiDescriptionBuilder {
	b.groupName = defaultIfAbsent(name, b.groupName)
	return b
}

// Path updates the described path. Empty input keeps the prior value.
func (b *ApiDescriptionBuilder) Path(path string) *ApiDescriptionBuilder {
	b.path = defaultIfAbsent(path, b.path)
	return b
}

// Description updates the description text. Empty input keeps the prior value.
func (b *ApiDescriptionBuilder) Description(description string) *ApiDescriptionBuilder {
	b.description = defaultIfAbsent(description, b.description)
	return b
}

// Operations replaces the operation list. A nil slice keeps the prior list;
// a non-nil slice replaces it with a copy.
func (b *ApiDescriptionBuilder) Operations(operations []*service.Operation) *ApiDescriptionBuilder {
	if operations != nil {
		b.operations = append([]*service.Operation(nil), operations...)
	}
	return b
}

// Hidden marks whether the description is excluded from rendered documents.
// Always overwrites.
func (b *ApiDescriptionBuilder) Hidden(hidden bool) *ApiDescriptionBuilder {
	b.hidden = hidden
	return b
}

// Build materializes the description.
func (b *ApiDescriptionBuilder) Build() *service.ApiDescription {
	var operations []*service.Operation
	if len(b.operations) > 0 {
		operations = append([]*service.Operation(nil), b.operations...)
	}
	return &service.ApiDescription{
		GroupName:   b.groupName,
		Path:        b.path,
		Description: b.description,
		Operations:  operations,
		Hidden:      b.hidden,
	}
}
