package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routedoc/routedoc/schema"
)

func TestModelBuilder(t *testing.T) {
	model := NewModelBuilder().
		ID("Pet").
		Name("Pet").
		QualifiedType("store.Pet").
		Description("A pet in the store").
		SubTypes([]string{"Cat", "Dog"}).
		Example(map[string]any{"name": "rex"}).
		Properties(map[string]*schema.ModelProperty{
			"name": {Name: "name", Type: "string", Required: true},
		}).
		Build()

	assert.Equal(t, "Pet", model.ID)
	assert.Equal(t, "store.Pet", model.QualifiedType)
	assert.Equal(t, []string{"Cat", "Dog"}, model.SubTypes)
	require.Contains(t, model.Properties, "name")
	assert.True(t, model.Properties["name"].Required)
}

func TestModelBuilder_PropertiesMerge(t *testing.T) {
	b := NewModelBuilder().
		Properties(map[string]*schema.ModelProperty{
			"id":   {Name: "id", Type: "integer"},
			"name": {Name: "name", Type: "string", Description: "first"},
		}).
		Properties(nil).
		Properties(map[string]*schema.ModelProperty{
			"name": {Name: "name", Type: "string", Description: "second"},
		})

	model := b.Build()
	require.Len(t, model.Properties, 2)
	assert.Equal(t, "second", model.Properties["name"].Description)
}

func TestModelBuilder_BuildSnapshotIsolation(t *testing.T) {
	b := NewModelBuilder().
		Properties(map[string]*schema.ModelProperty{"id": {Name: "id"}})

	model := b.Build()
	b.Properties(map[string]*schema.ModelProperty{"extra": {Name: "extra"}})

	assert.Len(t, model.Properties, 1)
}

func TestModelPropertyBuilder(t *testing.T) {
	prop := NewModelPropertyBuilder().
		Name("status").
		Type("string").
		QualifiedType("store.Status").
		Description("pet status").
		Position(3).
		Required(true).
		ReadOnly(true).
		Example("available").
		AllowableValues([]string{"available", "pending", "sold"}).
		Build()

	assert.Equal(t, "status", prop.Name)
	assert.Equal(t, "string", prop.Type)
	assert.Equal(t, 3, prop.Position)
	assert.True(t, prop.Required)
	assert.True(t, prop.ReadOnly)
	assert.Equal(t, "available", prop.Example)
	assert.Equal(t, []string{"available", "pending", "sold"}, prop.AllowableValues)
}

func TestModelPropertyBuilder_AbsentInputs(t *testing.T) {
	prop := NewModelPropertyBuilder().
		Type("string").
		Type("").
		Example("x").
		Example(nil).
		AllowableValues([]string{"a"}).
		AllowableValues(nil).
		Build()

	assert.Equal(t, "string", prop.Type)
	assert.Equal(t, "x", prop.Example)
	assert.Equal(t, []string{"a"}, prop.AllowableValues)
}
