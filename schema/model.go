package schema

// Model describes a named data shape referenced by API listings.
// Models are produced by route scanners or assembled manually via
// builders.ModelBuilder, and serialized into the models section of a
// rendered API declaration.
type Model struct {
	ID            string                    `yaml:"id" json:"id"`
	Name          string                    `yaml:"name,omitempty" json:"name,omitempty"`
	QualifiedType string                    `yaml:"qualifiedType,omitempty" json:"qualifiedType,omitempty"`
	Description   string                    `yaml:"description,omitempty" json:"description,omitempty"`
	BaseModel     string                    `yaml:"baseModel,omitempty" json:"baseModel,omitempty"`
	Discriminator string                    `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	SubTypes      []string                  `yaml:"subTypes,omitempty" json:"subTypes,omitempty"`
	Example       any                       `yaml:"example,omitempty" json:"example,omitempty"`
	Properties    map[string]*ModelProperty `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// ModelProperty describes a single field of a Model.
type ModelProperty struct {
	Name            string   `yaml:"name,omitempty" json:"name,omitempty"`
	Type            string   `yaml:"type" json:"type"`
	QualifiedType   string   `yaml:"qualifiedType,omitempty" json:"qualifiedType,omitempty"`
	Position        int      `yaml:"position,omitempty" json:"position,omitempty"`
	Required        bool     `yaml:"required,omitempty" json:"required,omitempty"`
	ReadOnly        bool     `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	Description     string   `yaml:"description,omitempty" json:"description,omitempty"`
	Example         any      `yaml:"example,omitempty" json:"example,omitempty"`
	AllowableValues []string `yaml:"enum,omitempty" json:"enum,omitempty"`
}

// Copy returns a deep copy of the model. Property values are copied so the
// result does not alias the receiver.
func (m *Model) Copy() *Model {
	if m == nil {
		return nil
	}
	out := *m
	if m.SubTypes != nil {
		out.SubTypes = append([]string(nil), m.SubTypes...)
	}
	if m.Properties != nil {
		out.Properties = make(map[string]*ModelProperty, len(m.Properties))
		for name, prop := range m.Properties {
			out.Properties[name] = prop.Copy()
		}
	}
	return &out
}

// Copy returns a deep copy of the property.
func (p *ModelProperty) Copy() *ModelProperty {
	if p == nil {
		return nil
	}
	out := *p
	if p.AllowableValues != nil {
		out.AllowableValues = append([]string(nil), p.AllowableValues...)
	}
	return &out
}
