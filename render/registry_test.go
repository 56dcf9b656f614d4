package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routedoc/routedoc/service"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry("1.0")
	r.Add("pets", &service.ApiListing{ResourcePath: "/pets", Description: "Pet operations", Position: 2})
	r.Add("owners", &service.ApiListing{ResourcePath: "/owners", Description: "Owner operations", Position: 1})

	assert.Equal(t, []string{"owners", "pets"}, r.Groups())

	listing, ok := r.Listing("pets")
	require.True(t, ok)
	assert.Equal(t, "/pets", listing.ResourcePath)

	decl, ok := r.Declaration("pets")
	require.True(t, ok)
	assert.Equal(t, "/pets", decl.ResourcePath)
	assert.Equal(t, SwaggerVersion, decl.SwaggerVersion)

	_, ok = r.Declaration("missing")
	assert.False(t, ok)

	decls := r.Declarations()
	assert.Len(t, decls, 2)
}

func TestRegistry_AddReplaces(t *testing.T) {
	r := NewRegistry("1.0")
	r.Add("pets", &service.ApiListing{Description: "first"})
	r.Add("pets", &service.ApiListing{Description: "second"})

	decl, ok := r.Declaration("pets")
	require.True(t, ok)
	assert.Equal(t, "second", decl.Description)
	assert.Len(t, r.Groups(), 1)
}

func TestRegistry_Index(t *testing.T) {
	r := NewRegistry("1.0")
	r.Add("pets", &service.ApiListing{Description: "Pet operations", Position: 2})
	r.Add("owners", &service.ApiListing{Description: "Owner operations", Position: 1})
	r.Add("/admin", &service.ApiListing{Description: "Admin operations", Position: 1})

	index := r.Index()

	assert.Equal(t, "1.0", index.APIVersion)
	require.Len(t, index.APIs, 3)
	// Ordered by position, ties broken by path; groups gain a leading slash
	assert.Equal(t, "/admin", index.APIs[0].Path)
	assert.Equal(t, "/owners", index.APIs[1].Path)
	assert.Equal(t, "/pets", index.APIs[2].Path)
	assert.Equal(t, "Pet operations", index.APIs[2].Description)
}
