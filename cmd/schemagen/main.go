// Command schemagen renders a typed Ruby dry-struct/dry-types file from a
// JSON Schema document or a handful of YAML/JSON sample documents.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dcolson/schemagen/render"
	"github.com/dcolson/schemagen/schemabuild"
	"github.com/dcolson/schemagen/sink"
	"github.com/dcolson/schemagen/target/ruby"
	"github.com/dcolson/schemagen/typeir"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Render a target-language file from a JSON Schema or sample documents."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Out      string   `arg:"" optional:"" help:"Output file path. Defaults to the rendered type's canonical file-name stem plus the target's extension, in the current directory."`
	Schema   string   `help:"Path to a JSON Schema document." short:"s"`
	Samples  []string `help:"Path to a YAML/JSON sample document. Repeatable." short:"d"`
	RootName string   `help:"Name for the top-level generated type." default:"Root" short:"r"`
	Target   string   `help:"Target language back end." default:"ruby" short:"t"`
}

func (c *GenCmd) Run() error {
	g, err := c.buildGraph()
	if err != nil {
		return err
	}
	if err := typeir.Validate(g); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	strat, err := c.strategy()
	if err != nil {
		return err
	}

	result, err := render.Render(g, strat)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	for _, w := range result.Warnings {
		slog.Warn("schemagen", slog.String("type", w.TypeName), slog.String("message", w.Message))
	}

	outPath := c.Out
	if outPath == "" {
		outPath = result.FileNameStem + "." + result.FileExtension
	}

	outDir, err := filepath.Abs(filepath.Dir(outPath))
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	out := sink.NewFilesystemSink(outDir)
	if err := out.WriteFile(filepath.Base(outPath), []byte(result.Source)); err != nil {
		return fmt.Errorf("write %q: %w", outPath, err)
	}

	return nil
}

func (c *GenCmd) buildGraph() (*typeir.TypeGraph, error) {
	switch {
	case c.Schema != "" && len(c.Samples) > 0:
		return nil, fmt.Errorf("--schema and --samples are mutually exclusive")
	case c.Schema != "":
		data, err := os.ReadFile(c.Schema)
		if err != nil {
			return nil, fmt.Errorf("read schema %q: %w", c.Schema, err)
		}
		var schema jsonschema.Schema
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parse schema %q: %w", c.Schema, err)
		}
		return schemabuild.FromJSONSchema(&schema, c.RootName)
	case len(c.Samples) > 0:
		docs := make([][]byte, len(c.Samples))
		for i, path := range c.Samples {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read sample %q: %w", path, err)
			}
			docs[i] = data
		}
		return schemabuild.FromSamples(c.RootName, docs...)
	default:
		return nil, fmt.Errorf("one of --schema or --samples is required")
	}
}

func (c *GenCmd) strategy() (render.Strategy, error) {
	switch c.Target {
	case "ruby", "":
		return ruby.New(), nil
	default:
		return nil, fmt.Errorf("unsupported target %q (supported: ruby)", c.Target)
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("schemagen"),
		kong.Description("Renders typed model source from a JSON Schema or sample documents."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
