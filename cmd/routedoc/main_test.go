package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routedoc/routedoc/config"
)

func TestOutputSettings(t *testing.T) {
	tests := []struct {
		name           string
		cfg            *config.Config
		dirOverride    string
		formatOverride string
		wantDir        string
		wantExt        string
	}{
		{
			name:    "defaults",
			cfg:     &config.Config{},
			wantDir: ".",
			wantExt: ".yaml",
		},
		{
			name:    "config output block",
			cfg:     &config.Config{Output: &config.OutputBlock{Format: "json", Dir: "dist"}},
			wantDir: "dist",
			wantExt: ".json",
		},
		{
			name:           "cli overrides win",
			cfg:            &config.Config{Output: &config.OutputBlock{Format: "json", Dir: "dist"}},
			dirOverride:    "out",
			formatOverride: "yaml",
			wantDir:        "out",
			wantExt:        ".yaml",
		},
		{
			name:    "unknown format falls back to yaml",
			cfg:     &config.Config{Output: &config.OutputBlock{Format: "xml"}},
			wantDir: ".",
			wantExt: ".yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ext := outputSettings(tt.cfg, tt.dirOverride, tt.formatOverride)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}
