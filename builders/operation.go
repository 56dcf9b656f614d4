package builders

import "github.com/routedoc/routedoc/service"

// OperationBuilder assembles a service.Operation.
type OperationBuilder struct {
	method        string
	uniqueID      string
	summary       string
	notes         string
	responseModel string
	position      int
	produces      stringSet
	consumes      stringSet
	parameters    []*service.Parameter
	deprecated    bool
	hidden        bool
}

// NewOperationBuilder creates an empty operation builder.
func NewOperationBuilder() *OperationBuilder {
	return &OperationBuilder{
		produces: newStringSet(),
		consumes: newStringSet(),
	}
}

// Method updates the HTTP method. Empty input keeps the prior value.
func (b *OperationBuilder) Method(method string) *OperationBuilder {
	b.method = defaultIfAbsent(method, b.method)
	return b
}

// UniqueID updates the operation's unique identifier (its nickname in
// rendered documents). Empty input keeps the prior value.
func (b *OperationBuilder) UniqueID(id string) *OperationBuilder {
	b.uniqueID = defaultIfAbsent(id, b.uniqueID)
	return b
}

// Summary updates the short summary. Empty input keeps the prior value.
func (b *OperationBuilder) Summary(summary string) *OperationBuilder {
	b.summary = defaultIfAbsent(summary, b.summary)
	return b
}

// Notes updates the long-form notes. Empty input keeps the prior value.
func (b *OperationBuilder) Notes(notes string) *OperationBuilder {
	b.notes = defaultIfAbsent(notes, b.notes)
	return b
}

// ResponseModel updates the response model name. Empty input keeps the prior
// value.
func (b *OperationBuilder) ResponseModel(model string) *OperationBuilder {
	b.responseModel = defaultIfAbsent(model, b.responseModel)
	return b
}

// Position updates the display position. Always overwrites.
func (b *OperationBuilder) Position(position int) *OperationBuilder {
	b.position = position
	return b
}

// Produces adds media types to the produced set. Additive; nil treated as
// empty.
func (b *OperationBuilder) Produces(mediaTypes []string) *OperationBuilder {
	b.produces.addAll(mediaTypes)
	return b
}

// Consumes adds media types to the consumed set. Additive; nil treated as
// empty.
func (b *OperationBuilder) Consumes(mediaTypes []string) *OperationBuilder {
	b.consumes.addAll(mediaTypes)
	return b
}

// Parameters replaces the parameter list. A nil slice keeps the prior list;
// a non-nil slice replaces it with a copy.
func (b *OperationBuilder) Parameters(parameters []*service.Parameter) *OperationBuilder {
	if parameters != nil {
		b.parameters = append([]*service.Parameter(nil), parameters...)
	}
	return b
}

// Deprecated marks the operation deprecated. Always overwrites.
func (b *OperationBuilder) Deprecated(deprecated bool) *OperationBuilder {
	b.deprecated = deprecated
	return b
}

// Hidden marks the operation as excluded from rendered documents. Always
// overwrites.
func (b *OperationBuilder) Hidden(hidden bool) *OperationBuilder {
	b.hidden = hidden
	return b
}

// Build materializes the operation.
func (b *OperationBuilder) Build() *service.Operation {
	var parameters []*service.Parameter
	if len(b.parameters) > 0 {
		parameters = append([]*service.Parameter(nil), b.parameters...)
	}
	return &service.Operation{
		Method:        b.method,
		UniqueID:      b.uniqueID,
		Summary:       b.summary,
		Notes:         b.notes,
		Position:      b.position,
		Produces:      b.produces.sorted(),
		Consumes:      b.consumes.sorted(),
		Parameters:    parameters,
		ResponseModel: b.responseModel,
		Deprecated:    b.deprecated,
		Hidden:        b.hidden,
	}
}
