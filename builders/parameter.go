package builders

import "github.com/routedoc/routedoc/service"

// ParameterBuilder assembles a service.Parameter.
type ParameterBuilder struct {
	name          string
	description   string
	paramType     string
	typeName      string
	defaultValue  string
	required      bool
	allowMultiple bool
}

// NewParameterBuilder creates an empty parameter builder.
func NewParameterBuilder() *ParameterBuilder {
	return &ParameterBuilder{}
}

// Name updates the parameter name. Empty input keeps the prior value.
func (b *ParameterBuilder) Name(name string) *ParameterBuilder {
	b.name = defaultIfAbsent(name, b.name)
	return b
}

// Description updates the description. Empty input keeps the prior value.
func (b *ParameterBuilder) Description(description string) *ParameterBuilder {
	b.description = defaultIfAbsent(description, b.description)
	return b
}

// ParamType updates where the parameter binds (query, path, header, form or
// body). Empty input keeps the prior value.
func (b *ParameterBuilder) ParamType(paramType string) *ParameterBuilder {
	b.paramType = defaultIfAbsent(paramType, b.paramType)
	return b
}

// Type updates the parameter's type name. Empty input keeps the prior value.
func (b *ParameterBuilder) Type(typeName string) *ParameterBuilder {
	b.typeName = defaultIfAbsent(typeName, b.typeName)
	return b
}

// DefaultValue updates the default value. Empty input keeps the prior value.
func (b *ParameterBuilder) DefaultValue(value string) *ParameterBuilder {
	b.defaultValue = defaultIfAbsent(value, b.defaultValue)
	return b
}

// Required marks the parameter required. Always overwrites.
func (b *ParameterBuilder) Required(required bool) *ParameterBuilder {
	b.required = required
	return b
}

// AllowMultiple marks the parameter repeatable. Always overwrites.
func (b *ParameterBuilder) AllowMultiple(allow bool) *ParameterBuilder {
	b.allowMultiple = allow
	return b
}

// Build materializes the parameter.
func (b *ParameterBuilder) Build() *service.Parameter {
	return &service.Parameter{
		Name:          b.name,
		Description:   b.description,
		ParamType:     b.paramType,
		Type:          b.typeName,
		Required:      b.required,
		AllowMultiple: b.allowMultiple,
		DefaultValue:  b.defaultValue,
	}
}
