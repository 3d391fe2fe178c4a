package typeir

// TypeGraph is the complete input to the renderer core: an immutable,
// directed graph of type nodes plus the set of types distinguished for
// top-level (entry-point) emission (spec.md §3). A TypeGraph is built once
// by an external collaborator (schemabuild, or any other producer) and
// must not be mutated for the duration of a render call (spec.md §5).
type TypeGraph struct {
	// Types holds every named type (Class, Enum, Union) that should be
	// emitted. Ordering reflects insertion order from the builder; the
	// renderer MUST NOT rely on it for correctness (it may reorder for
	// forward-declaration needs) but uses it as the default emission
	// order when a target has no such requirement (spec.md §4.3).
	Types []Named

	// TopLevels holds the subset of Types intended as
	// document entry points, i.e. the root types a caller parses a whole
	// document into.
	TopLevels []Named

	// Warnings accumulates non-fatal issues recorded while building the
	// graph (e.g. an "any"-typed or null-only property). The renderer
	// surfaces these as annotated comments rather than errors (spec.md §7).
	Warnings []Warning

	nextID int
}

// Warning is a non-fatal issue discovered either while building the graph
// or while rendering it.
type Warning struct {
	// Message is a human-readable description.
	Message string

	// TypeName names the type that triggered the warning, if applicable.
	TypeName string
}

// NewTypeGraph returns an empty graph ready for population.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{}
}

// NextNodeID returns a fresh, unique node identity for this graph.
func (g *TypeGraph) NextNodeID() int {
	id := g.nextID
	g.nextID++
	return id
}

// AddType registers a named type for emission.
func (g *TypeGraph) AddType(t Named) {
	g.Types = append(g.Types, t)
}

// MarkTopLevel marks an already-added type as a document entry point.
func (g *TypeGraph) MarkTopLevel(t Named) {
	g.TopLevels = append(g.TopLevels, t)
}

// AddWarning records a non-fatal issue.
func (g *TypeGraph) AddWarning(w Warning) {
	g.Warnings = append(g.Warnings, w)
}

// FindType looks up a named type by node ID. Returns nil if not found.
func (g *TypeGraph) FindType(id int) Named {
	for _, t := range g.Types {
		if t.NodeID() == id {
			return t
		}
	}
	return nil
}
