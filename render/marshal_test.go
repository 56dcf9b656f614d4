package render

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/routedoc/routedoc/service"
)

func testDeclaration() *ApiDeclaration {
	return FromListing(&service.ApiListing{
		APIVersion:   "1.0",
		ResourcePath: "/pets",
		Produces:     []string{"application/json"},
	})
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(testDeclaration())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "1.2", decoded["swaggerVersion"])
	assert.Equal(t, "/pets", decoded["resourcePath"])
}

func TestMarshalYAML(t *testing.T) {
	data, err := MarshalYAML(testDeclaration())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "1.2", decoded["swaggerVersion"])
	assert.Equal(t, "1.0", decoded["apiVersion"])
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	tests := []struct {
		name string
		file string
		json bool
	}{
		{"json extension", "pets.json", true},
		{"yaml extension", "pets.yaml", false},
		{"yml extension", "pets.yml", false},
		{"unknown extension defaults to yaml", "pets.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, WriteFile(ctx, testDeclaration(), path))

			data, err := os.ReadFile(path)
			require.NoError(t, err)

			if tt.json {
				var decoded map[string]any
				assert.NoError(t, json.Unmarshal(data, &decoded))
			} else {
				var decoded map[string]any
				assert.NoError(t, yaml.Unmarshal(data, &decoded))
				assert.NotEqual(t, byte('{'), data[0])
			}
		})
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(context.Background(), testDeclaration(), filepath.Join(t.TempDir(), "missing", "pets.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}
