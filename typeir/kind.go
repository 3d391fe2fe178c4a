// Package typeir defines the Intermediate Representation consumed by the
// renderer core: an immutable, directed graph of typed nodes derived from a
// JSON sample or JSON Schema document. Generators never mutate a TypeGraph;
// they walk it and produce source text.
package typeir

// Kind identifies the category of a type node.
type Kind int

const (
	// Primitive kinds.
	Any Kind = iota
	Null
	Bool
	Int
	Double
	String

	// Composite kinds.
	Array
	Class
	MapKind
	EnumKind
	UnionKind
)

// String returns the name used in diagnostics and the "kind" discriminator
// field of the JSON encoding.
func (k Kind) String() string {
	switch k {
	case Any:
		return "any"
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "integer"
	case Double:
		return "double"
	case String:
		return "string"
	case Array:
		return "array"
	case Class:
		return "class"
	case MapKind:
		return "map"
	case EnumKind:
		return "enum"
	case UnionKind:
		return "union"
	default:
		return "unknown"
	}
}

// Type is the common interface implemented by every node in the graph.
// Composite nodes additionally implement Named if they carry a proposed
// name and participate in top-level emission.
type Type interface {
	// Kind returns the discriminator used for type-switch dispatch.
	Kind() Kind

	// sealed restricts implementations to this package, the same closed-sum
	// trick the teacher's ir.TypeDescriptor uses.
	sealed()
}

// Named is implemented by the composite kinds that occupy the "types"
// namespace: Class, Enum, Union. Each has a stable graph identity, a
// proposed name, and optional documentation.
type Named interface {
	Type

	// ProposedName is the name suggested by the schema source (a JSON
	// property name, a $defs key, ...). It is not necessarily legal or
	// collision-free; the naming pipeline resolves the final identifier.
	ProposedName() string

	// Description returns free-form documentation, or "" if none.
	Description() string

	// NodeID returns a stable identity for this node within its TypeGraph,
	// used by TypeGraph.FindType.
	NodeID() int
}
