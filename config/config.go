// Package config loads routedoc project configuration from HCL files.
//
// A project file declares shared defaults, one listing block per documented
// group, and output settings:
//
//	project {
//	  api_version = "1.0"
//	  base_path   = env.API_BASE_PATH
//	  produces    = ["application/json"]
//	  protocols   = ["https"]
//	}
//
//	listing "pets" {
//	  resource_path = "/pets"
//	  description   = "Everything about pets"
//	  position      = 1
//	}
//
//	output {
//	  format = "yaml"
//	  dir    = "dist"
//	}
//
// Attribute expressions may reference process environment variables through
// the env object.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/routedoc/routedoc/internal/ctxlog"
	"github.com/routedoc/routedoc/internal/mediatype"
)

// Config is the decoded form of a project file.
type Config struct {
	Project  *ProjectBlock   `hcl:"project,block"`
	Listings []*ListingBlock `hcl:"listing,block"`
	Output   *OutputBlock    `hcl:"output,block"`
}

// ProjectBlock carries defaults applied to every listing.
type ProjectBlock struct {
	APIVersion string   `hcl:"api_version,optional"`
	BasePath   string   `hcl:"base_path,optional"`
	Produces   []string `hcl:"produces,optional"`
	Consumes   []string `hcl:"consumes,optional"`
	Protocols  []string `hcl:"protocols,optional"`
}

// ListingBlock declares one documented group. Attributes left out fall back
// to the project defaults.
type ListingBlock struct {
	Group        string   `hcl:"group,label"`
	ResourcePath string   `hcl:"resource_path,optional"`
	Description  string   `hcl:"description,optional"`
	Position     int      `hcl:"position,optional"`
	Produces     []string `hcl:"produces,optional"`
	Consumes     []string `hcl:"consumes,optional"`
	Protocols    []string `hcl:"protocols,optional"`
}

// OutputBlock controls where and how rendered documents are written.
type OutputBlock struct {
	Format string `hcl:"format,optional"`
	Dir    string `hcl:"dir,optional"`
}

// Load parses and decodes a project file. Media types in the decoded config
// are normalized; entries that do not look like type/subtype strings are
// kept but logged as warnings.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("loading project config", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %s", path, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, evalContext(), &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %s", path, diags.Error())
	}

	if cfg.Project != nil {
		cfg.Project.Produces = checkedMediaTypes(ctx, cfg.Project.Produces)
		cfg.Project.Consumes = checkedMediaTypes(ctx, cfg.Project.Consumes)
	}
	for _, listing := range cfg.Listings {
		listing.Produces = checkedMediaTypes(ctx, listing.Produces)
		listing.Consumes = checkedMediaTypes(ctx, listing.Consumes)
	}

	logger.Debug("loaded project config", "path", path, "listings", len(cfg.Listings))
	return &cfg, nil
}

// evalContext exposes the process environment as an env object so config
// attributes can reference variables like env.API_BASE_PATH.
func evalContext() *hcl.EvalContext {
	envVals := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if idx := strings.Index(kv, "="); idx > 0 {
			envVals[kv[:idx]] = cty.StringVal(kv[idx+1:])
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(envVals),
		},
	}
}

// checkedMediaTypes normalizes media types and warns about suspect entries.
func checkedMediaTypes(ctx context.Context, in []string) []string {
	out := mediatype.NormalizeAll(in)
	for _, mt := range out {
		if !mediatype.IsValid(mt) {
			ctxlog.FromContext(ctx).Warn("media type does not look like type/subtype", "mediaType", mt)
		}
	}
	return out
}
