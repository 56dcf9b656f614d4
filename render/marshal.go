package render

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/routedoc/routedoc/internal/ctxlog"
)

// outputFileMode is the file permission mode for output files (owner
// read/write only).
const outputFileMode = 0600

// MarshalYAML returns doc as YAML bytes.
func MarshalYAML(doc any) ([]byte, error) {
	return yaml.Marshal(doc)
}

// MarshalJSON returns doc as indented JSON bytes.
func MarshalJSON(doc any) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// WriteFile writes doc to path. The format is inferred from the file
// extension (.json for JSON, .yaml/.yml for YAML; YAML is the default).
func WriteFile(ctx context.Context, doc any, path string) error {
	var data []byte
	var err error

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		data, err = MarshalJSON(doc)
	default:
		data, err = MarshalYAML(doc)
	}
	if err != nil {
		return fmt.Errorf("render: failed to marshal document: %w", err)
	}

	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("render: failed to write file: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("wrote document", "path", path, "bytes", len(data))
	return nil
}
