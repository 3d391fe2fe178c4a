package render

import (
	"fmt"
	"strings"

	"github.com/dcolson/schemagen/naming"
	"github.com/dcolson/schemagen/source"
	"github.com/dcolson/schemagen/typeir"
)

// Result is the core's output: an ordered sequence of source lines (held
// here as a single newline-joined string for convenience), a file
// extension, a canonical file-name stem derived from the graph's single
// top-level type, and any warnings collected while building the type graph.
type Result struct {
	Source        string
	FileExtension string
	FileNameStem  string
	Warnings      []typeir.Warning
}

// Render runs the five-phase convenience driver (spec.md §4.3) over g
// using strat, producing a single rendered file. g must already satisfy
// typeir.Validate; Render re-validates defensively and returns its error
// unchanged if not.
func Render(g *typeir.TypeGraph, strat Strategy) (result Result, err error) {
	if err := typeir.Validate(g); err != nil {
		return Result{}, err
	}

	// A Strategy hook panics to signal one of the fatal conditions in
	// errors.go (spec.md §7 is explicit that these are fatal, never
	// partially recovered); convert that panic into a normal error return
	// here rather than let it cross the package boundary as a crash.
	defer func() {
		if rec := recover(); rec != nil {
			if recErr, ok := rec.(error); ok {
				err = recErr
			} else {
				err = fmt.Errorf("render: panic: %v", rec)
			}
			result = Result{}
		}
	}()

	// Phase 1: name assignment.
	names := assignNames(g, strat)

	b := source.NewBuffer(strat.IndentUnit())

	// Phase 2: header.
	strat.Header(b)

	// Phase 3: prelude.
	strat.Prelude(b, g, names)

	// Phase 4: body, in dependency or insertion order.
	order := g.Types
	if strat.NeedsTypeDeclarationBeforeUse() {
		order = topoSort(g)
	}
	for i, t := range order {
		b.EmitSeparator(strat.BlankLinePolicy(), i)
		switch v := t.(type) {
		case *typeir.ClassType:
			strat.EmitClass(b, names, v)
		case *typeir.EnumType:
			strat.EmitEnum(b, names, v)
		case *typeir.UnionType:
			strat.EmitUnion(b, names, v)
		}
	}

	// Phase 5: top-levels. Every top-level in this schema is itself a
	// named Class, so it was already emitted in phase 4; a Strategy that
	// needs an alias/wrapper for a bare top-level type can detect that
	// here by checking whether it's a *typeir.ClassType/EnumType/
	// UnionType already present in g.Types.
	for _, tl := range g.TopLevels {
		if !isAlreadyNamedInGraph(g, tl) {
			// A future target whose top-level is a bare array/primitive
			// would need an alias here; none of the current targets hit
			// this path, so it's left as a documented no-op.
			_ = tl
		}
	}

	var sb strings.Builder
	if err := b.Render(&sb); err != nil {
		return Result{}, err
	}

	return Result{
		Source:        sb.String(),
		FileExtension: strat.FileExtension(),
		FileNameStem:  fileNameStem(g),
		Warnings:      g.Warnings,
	}, nil
}

// fileNameStem derives the canonical output file-name stem from the
// graph's single top-level type (spec.md §6). Returns "" if the graph has
// no top-level, or more than one — no current builder produces either,
// but Render must not guess at a name in that case.
func fileNameStem(g *typeir.TypeGraph) string {
	if len(g.TopLevels) != 1 {
		return ""
	}
	return naming.ToSnakeCase(g.TopLevels[0].ProposedName())
}

func isAlreadyNamedInGraph(g *typeir.TypeGraph, tl typeir.Named) bool {
	for _, t := range g.Types {
		if t == tl {
			return true
		}
	}
	return false
}
