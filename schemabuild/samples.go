package schemabuild

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/dcolson/schemagen/typeir"
)

// FromSamples performs a minimal, best-effort structural inference over one
// or more YAML (a strict JSON superset) sample documents, producing a
// single top-level Class named rootName. Every document is merged into one
// shape: a field present in every sample is required, a field present in
// only some is Optional; a field whose value's type disagrees across
// samples (or within one array) widens (int+number -> Double) or, if the
// disagreement can't be widened, falls back to Any.
//
// This is intentionally small, per spec.md §1's stated non-goal: no
// general sample-to-schema inference, just enough to let a user point the
// generator at example payloads instead of writing a formal schema.
func FromSamples(rootName string, docs ...[]byte) (*typeir.TypeGraph, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("schemabuild: FromSamples given no sample documents")
	}

	var root *shape
	for i, doc := range docs {
		var v any
		if err := yaml.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("schemabuild: sample %d: %w", i, err)
		}
		root = mergeValueInto(root, v)
	}

	b := &sampleBuilder{g: typeir.NewTypeGraph()}
	t := b.shapeToType(root, rootName)
	named, ok := t.(typeir.Named)
	if !ok {
		return nil, fmt.Errorf("schemabuild: samples for %q never took an object shape, so there is nothing to name at the top level", rootName)
	}
	b.g.MarkTopLevel(named)
	return b.g, nil
}

type shapeKind int

const (
	shapeUnknown shapeKind = iota
	shapeAny
	shapeNull
	shapeBool
	shapeInt
	shapeDouble
	shapeString
	shapeArray
	shapeObject
)

// shape is a merged structural summary of every sample value seen at one
// position in the document tree.
type shape struct {
	kind        shapeKind
	occurrences int
	items       *shape
	fields      map[string]*fieldShape
	fieldOrder  []string
}

type fieldShape struct {
	shape *shape
	count int
}

// mergeValueInto folds v into s (nil s starts a fresh shape), widening its
// kind and, for objects, tracking how many of the occurrences at this
// position actually carried each field.
func mergeValueInto(s *shape, v any) *shape {
	if s == nil {
		s = &shape{}
	}
	s.occurrences++

	switch val := v.(type) {
	case nil:
		s.kind = widenShapeKind(s.kind, shapeNull)
	case bool:
		s.kind = widenShapeKind(s.kind, shapeBool)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		s.kind = widenShapeKind(s.kind, shapeInt)
	case float32, float64:
		s.kind = widenShapeKind(s.kind, shapeDouble)
	case string:
		s.kind = widenShapeKind(s.kind, shapeString)
	case []any:
		s.kind = widenShapeKind(s.kind, shapeArray)
		for _, elem := range val {
			s.items = mergeValueInto(s.items, elem)
		}
	case map[string]any:
		s.kind = widenShapeKind(s.kind, shapeObject)
		if s.fields == nil {
			s.fields = make(map[string]*fieldShape)
		}
		for _, key := range sortedKeys(val) {
			fs, ok := s.fields[key]
			if !ok {
				fs = &fieldShape{}
				s.fields[key] = fs
				s.fieldOrder = append(s.fieldOrder, key)
			}
			fs.count++
			fs.shape = mergeValueInto(fs.shape, val[key])
		}
	default:
		s.kind = widenShapeKind(s.kind, shapeAny)
	}
	return s
}

// widenShapeKind is mergeValueInto's counterpart to magicschema's
// widenType: identical kinds stay put, an unset or Null shape adopts
// whatever it's merged with (so a field that is null in some samples takes
// the kind of its non-null values), Int widens to Double next to a
// Double, and anything else
// incompatible (string next to object, say) falls back to Any rather than
// erroring — a sample set is evidence, not a contract.
func widenShapeKind(a, b shapeKind) shapeKind {
	if a == b {
		return a
	}
	if a == shapeUnknown {
		return b
	}
	if b == shapeUnknown {
		return a
	}
	if a == shapeNull {
		return b
	}
	if b == shapeNull {
		return a
	}
	if (a == shapeInt && b == shapeDouble) || (a == shapeDouble && b == shapeInt) {
		return shapeDouble
	}
	return shapeAny
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type sampleBuilder struct {
	g *typeir.TypeGraph
}

// shapeToType converts a merged shape into a typeir.Type, creating a fresh
// Class for every object shape (proposedName becomes that class's name;
// array items and object fields derive their own proposed names from it).
func (b *sampleBuilder) shapeToType(s *shape, proposedName string) typeir.Type {
	if s == nil {
		return typeir.AnyType()
	}

	switch s.kind {
	case shapeNull:
		// A field that is always null across every sample has no non-null
		// rendering of its own (typeir.Validate rejects a bare Null outside
		// a union); spec.md §7 treats this as a warning, not a fatal error.
		b.g.AddWarning(typeir.Warning{
			Message:  fmt.Sprintf("field %q is always null in the given samples; rendered as Any", proposedName),
			TypeName: proposedName,
		})
		return typeir.AnyType()
	case shapeBool:
		return typeir.BoolType()
	case shapeInt:
		return typeir.IntType()
	case shapeDouble:
		return typeir.DoubleType()
	case shapeString:
		return typeir.StringType()
	case shapeArray:
		return typeir.NewArray(b.shapeToType(s.items, singularize(proposedName)))
	case shapeObject:
		c := typeir.NewClass(b.g.NextNodeID(), proposedName, "")
		b.g.AddType(c)
		for _, name := range s.fieldOrder {
			fs := s.fields[name]
			c.AddProperty(typeir.Property{
				Name:     name,
				Type:     b.shapeToType(fs.shape, proposedName+"_"+name),
				Optional: fs.count < s.occurrences,
			})
		}
		return c
	default:
		return typeir.AnyType()
	}
}
