package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routedoc/routedoc/schema"
	"github.com/routedoc/routedoc/service"
)

func TestFromListing(t *testing.T) {
	listing := &service.ApiListing{
		APIVersion:   "1.0",
		BasePath:     "/v1",
		ResourcePath: "/pets",
		Produces:     []string{"application/json"},
		Protocols:    []string{"https"},
		APIs: []*service.ApiDescription{
			{Path: "/pets", Operations: []*service.Operation{{Method: "GET"}}},
		},
		Models:      map[string]*schema.Model{"Pet": {ID: "Pet"}},
		Description: "Pet operations",
	}

	decl := FromListing(listing)

	assert.Equal(t, SwaggerVersion, decl.SwaggerVersion)
	assert.Equal(t, "1.0", decl.APIVersion)
	assert.Equal(t, "/v1", decl.BasePath)
	assert.Equal(t, "/pets", decl.ResourcePath)
	assert.Equal(t, []string{"application/json"}, decl.Produces)
	require.Len(t, decl.APIs, 1)
	assert.Contains(t, decl.Models, "Pet")
}

func TestFromListing_HiddenFiltered(t *testing.T) {
	visible := &service.ApiDescription{
		Path: "/pets",
		Operations: []*service.Operation{
			{Method: "GET"},
			{Method: "DELETE", Hidden: true},
		},
	}
	hidden := &service.ApiDescription{Path: "/internal", Hidden: true}

	decl := FromListing(&service.ApiListing{
		APIs: []*service.ApiDescription{visible, hidden},
	})

	require.Len(t, decl.APIs, 1)
	assert.Equal(t, "/pets", decl.APIs[0].Path)
	require.Len(t, decl.APIs[0].Operations, 1)
	assert.Equal(t, "GET", decl.APIs[0].Operations[0].Method)

	// The source description keeps its hidden operation
	assert.Len(t, visible.Operations, 2)
}

func TestFromListing_AuthorizationsCollapse(t *testing.T) {
	decl := FromListing(&service.ApiListing{
		Authorizations: []service.Authorization{
			{Type: "oauth2", Scopes: []service.AuthorizationScope{{Scope: "read:pets"}}},
			{Type: "oauth2", Scopes: []service.AuthorizationScope{{Scope: "write:pets"}}},
			{Type: "apiKey"},
		},
	})

	require.Len(t, decl.Authorizations, 2)
	require.Len(t, decl.Authorizations["oauth2"], 2)
	assert.Equal(t, "read:pets", decl.Authorizations["oauth2"][0].Scope)
	assert.Empty(t, decl.Authorizations["apiKey"])
	assert.Contains(t, decl.Authorizations, "apiKey")
}

func TestFromResourceListing(t *testing.T) {
	index := FromResourceListing(&service.ResourceListing{
		APIVersion: "1.0",
		Infos: []*service.ApiListingReference{
			{Path: "/owners", Description: "Owner operations", Position: 1},
			{Path: "/pets", Description: "Pet operations", Position: 2},
		},
	})

	assert.Equal(t, SwaggerVersion, index.SwaggerVersion)
	assert.Equal(t, "1.0", index.APIVersion)
	require.Len(t, index.APIs, 2)
	assert.Equal(t, "/owners", index.APIs[0].Path)
	assert.Equal(t, "Pet operations", index.APIs[1].Description)
}
