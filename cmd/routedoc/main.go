package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/routedoc/routedoc"
	"github.com/routedoc/routedoc/config"
	"github.com/routedoc/routedoc/internal/ctxlog"
	"github.com/routedoc/routedoc/render"
	"github.com/routedoc/routedoc/service"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("routedoc v%s\n", routedoc.Version())
	case "help", "-h", "--help":
		printUsage()
	case "render":
		if err := handleRender(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := handleServe(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`routedoc - render and serve API descriptor documents

Usage:
  routedoc <command> [flags]

Commands:
  render     Render descriptor documents from a project config
  serve      Serve descriptor documents over HTTP
  version    Print version information
  help       Print this help

Run 'routedoc <command> -h' for command-specific flags.`)
}

// newContext builds the root context carrying the CLI logger.
func newContext(verbose bool) context.Context {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return ctxlog.WithLogger(context.Background(), slog.New(handler))
}

func handleRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	configPath := fs.String("config", "routedoc.hcl", "path to the project config file")
	outDir := fs.String("out", "", "output directory (overrides the config output block)")
	format := fs.String("format", "", "output format: yaml or json (overrides the config output block)")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := newContext(*verbose)
	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		return err
	}

	dir, ext := outputSettings(cfg, *outDir, *format)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	registry := cfg.BuildRegistry(service.ByPath())

	if err := render.WriteFile(ctx, registry.Index(), filepath.Join(dir, "api-docs"+ext)); err != nil {
		return err
	}
	for _, group := range registry.Groups() {
		decl, _ := registry.Declaration(group)
		if err := render.WriteFile(ctx, decl, filepath.Join(dir, group+ext)); err != nil {
			return err
		}
	}

	fmt.Printf("Rendered %d listing(s) to %s\n", len(registry.Groups()), dir)
	return nil
}

func handleServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "routedoc.hcl", "path to the project config file")
	addr := fs.String("addr", ":8080", "listen address")
	mount := fs.String("mount", "/api-docs", "mount path for the document endpoints")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := newContext(*verbose)
	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		return err
	}

	registry := cfg.BuildRegistry(service.ByPath())
	return render.NewServer(registry, *mount).ListenAndServe(ctx, *addr)
}

// outputSettings resolves the output directory and file extension from the
// config output block and CLI overrides. CLI flags win.
func outputSettings(cfg *config.Config, dirOverride, formatOverride string) (dir, ext string) {
	dir = "."
	format := "yaml"
	if cfg.Output != nil {
		if cfg.Output.Dir != "" {
			dir = cfg.Output.Dir
		}
		if cfg.Output.Format != "" {
			format = cfg.Output.Format
		}
	}
	if dirOverride != "" {
		dir = dirOverride
	}
	if formatOverride != "" {
		format = formatOverride
	}
	if format == "json" {
		return dir, ".json"
	}
	return dir, ".yaml"
}
