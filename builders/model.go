package builders

import "github.com/routedoc/routedoc/schema"

// ModelBuilder assembles a schema.Model definition.
type ModelBuilder struct {
	id            string
	name          string
	qualifiedType string
	description   string
	baseModel     string
	discriminator string
	subTypes      []string
	example       any
	properties    map[string]*schema.ModelProperty
}

// NewModelBuilder creates an empty model builder.
func NewModelBuilder() *ModelBuilder {
	return &ModelBuilder{
		properties: make(map[string]*schema.ModelProperty),
	}
}

// ID updates the model identifier. Empty input keeps the prior value.
func (b *ModelBuilder) ID(id string) *ModelBuilder {
	b.id = defaultIfAbsent(id, b.id)
	return b
}

// Name updates the model name. Empty input keeps the prior value.
func (b *ModelBuilder) Name(name string) *ModelBuilder {
	b.name = defaultIfAbsent(name, b.name)
	return b
}

// QualifiedType updates the fully qualified type name. Empty input keeps the
// prior value.
func (b *ModelBuilder) QualifiedType(qualifiedType string) *ModelBuilder {
	b.qualifiedType = defaultIfAbsent(qualifiedType, b.qualifiedType)
	return b
}

// Description updates the description. Empty input keeps the prior value.
func (b *ModelBuilder) Description(description string) *ModelBuilder {
	b.description = defaultIfAbsent(description, b.description)
	return b
}

// BaseModel updates the base model name. Empty input keeps the prior value.
func (b *ModelBuilder) BaseModel(baseModel string) *ModelBuilder {
	b.baseModel = defaultIfAbsent(baseModel, b.baseModel)
	return b
}

// Discriminator updates the discriminator property name. Empty input keeps
// the prior value.
func (b *ModelBuilder) Discriminator(discriminator string) *ModelBuilder {
	b.discriminator = defaultIfAbsent(discriminator, b.discriminator)
	return b
}

// SubTypes replaces the subtype list. A nil slice keeps the prior list; a
// non-nil slice replaces it with a copy.
func (b *ModelBuilder) SubTypes(subTypes []string) *ModelBuilder {
	if subTypes != nil {
		b.subTypes = append([]string(nil), subTypes...)
	}
	return b
}

// Example updates the example value. A nil example keeps the prior value.
func (b *ModelBuilder) Example(example any) *ModelBuilder {
	if example != nil {
		b.example = example
	}
	return b
}

// Properties merges property definitions into the accumulated mapping. A nil
// map is treated as empty; colliding names are overwritten by later calls.
func (b *ModelBuilder) Properties(properties map[string]*schema.ModelProperty) *ModelBuilder {
	for name, prop := range properties {
		b.properties[name] = prop
	}
	return b
}

// Build materializes the model.
func (b *ModelBuilder) Build() *schema.Model {
	var properties map[string]*schema.ModelProperty
	if len(b.properties) > 0 {
		properties = make(map[string]*schema.ModelProperty, len(b.properties))
		for name, prop := range b.properties {
			properties[name] = prop
		}
	}
	return &schema.Model{
		ID:            b.id,
		Name:          b.name,
		QualifiedType: b.qualifiedType,
		Description:   b.description,
		BaseModel:     b.baseModel,
		Discriminator: b.discriminator,
		SubTypes:      copyStrings(b.subTypes),
		Example:       b.example,
		Properties:    properties,
	}
}

// ModelPropertyBuilder assembles a schema.ModelProperty.
type ModelPropertyBuilder struct {
	name            string
	typeName        string
	qualifiedType   string
	description     string
	position        int
	required        bool
	readOnly        bool
	example         any
	allowableValues []string
}

// NewModelPropertyBuilder creates an empty property builder.
func NewModelPropertyBuilder() *ModelPropertyBuilder {
	return &ModelPropertyBuilder{}
}

// Name updates the property name. Empty input keeps the prior value.
func (b *ModelPropertyBuilder) Name(name string) *ModelPropertyBuilder {
	b.name = defaultIfAbsent(name, b.name)
	return b
}

// Type updates the property type name. Empty input keeps the prior value.
func (b *ModelPropertyBuilder) Type(typeName string) *ModelPropertyBuilder {
	b.typeName = defaultIfAbsent(typeName, b.typeName)
	return b
}

// QualifiedType updates the fully qualified type name. Empty input keeps the
// prior value.
func (b *ModelPropertyBuilder) QualifiedType(qualifiedType string) *ModelPropertyBuilder {
	b.qualifiedType = defaultIfAbsent(qualifiedType, b.qualifiedType)
	return b
}

// Description updates the description. Empty input keeps the prior value.
func (b *ModelPropertyBuilder) Description(description string) *ModelPropertyBuilder {
	b.description = defaultIfAbsent(description, b.description)
	return b
}

// Position updates the display position. Always overwrites.
func (b *ModelPropertyBuilder) Position(position int) *ModelPropertyBuilder {
	b.position = position
	return b
}

// Required marks the property required. Always overwrites.
func (b *ModelPropertyBuilder) Required(required bool) *ModelPropertyBuilder {
	b.required = required
	return b
}

// ReadOnly marks the property read only. Always overwrites.
func (b *ModelPropertyBuilder) ReadOnly(readOnly bool) *ModelPropertyBuilder {
	b.readOnly = readOnly
	return b
}

// Example updates the example value. A nil example keeps the prior value.
func (b *ModelPropertyBuilder) Example(example any) *ModelPropertyBuilder {
	if example != nil {
		b.example = example
	}
	return b
}

// AllowableValues replaces the enumerated values. A nil slice keeps the
// prior list; a non-nil slice replaces it with a copy.
func (b *ModelPropertyBuilder) AllowableValues(values []string) *ModelPropertyBuilder {
	if values != nil {
		b.allowableValues = append([]string(nil), values...)
	}
	return b
}

// Build materializes the property.
func (b *ModelPropertyBuilder) Build() *schema.ModelProperty {
	return &schema.ModelProperty{
		Name:            b.name,
		Type:            b.typeName,
		QualifiedType:   b.qualifiedType,
		Position:        b.position,
		Required:        b.required,
		ReadOnly:        b.readOnly,
		Description:     b.description,
		Example:         b.example,
		AllowableValues: copyStrings(b.allowableValues),
	}
}
