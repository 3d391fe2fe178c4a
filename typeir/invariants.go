package typeir

import (
	"errors"
	"fmt"
)

// ErrCycleBeyondNamedBoundary is returned by Validate when the graph
// contains a structural (non-named) cycle: an Array, Map, or Union whose
// own expansion reaches itself without first crossing a Class/Enum/Union
// reference. Recursive definitions are only legal when they cross exactly
// one named boundary (spec.md §3 invariant 1); a generator renders a named
// reference as a pointer/lookup, never by inlining, so only anonymous
// cycles are fatal.
var ErrCycleBeyondNamedBoundary = errors.New("typeir: structural cycle does not cross a named boundary")

// ErrNullOutsideUnion is returned by Validate when a Null node appears
// anywhere other than as a Union member (spec.md §3 invariant 2).
var ErrNullOutsideUnion = errors.New("typeir: null used outside a union")

// Validate checks the two structural invariants spec.md §3 states as fatal
// preconditions: no structural cycle that bypasses a named boundary, and
// no standalone Null. It does not check invariants 3/4 (nullable
// classification, case/property uniqueness), which are derived properties
// rather than well-formedness requirements and are enforced by the
// builders that populate a TypeGraph (schemabuild).
func Validate(g *TypeGraph) error {
	if err := checkCycles(g); err != nil {
		return err
	}
	return checkNullPlacement(g)
}

func checkCycles(g *TypeGraph) error {
	for _, t := range g.Types {
		if err := checkAnonymous(t, map[Type]bool{}); err != nil {
			return err
		}
	}
	return nil
}

// checkAnonymous walks the structural (non-named) subtree rooted at t,
// tracking the anonymous nodes currently on the path. Named nodes are
// never added to path: reaching the same named node twice is the
// recursive-definition case the invariant explicitly allows.
func checkAnonymous(t Type, path map[Type]bool) error {
	if _, named := t.(Named); !named {
		if path[t] {
			return fmt.Errorf("%w: %s", ErrCycleBeyondNamedBoundary, t.Kind())
		}
		// Copy-on-write: siblings (e.g. union members) must not see each
		// other's path entries, only ancestors.
		extended := make(map[Type]bool, len(path)+1)
		for k := range path {
			extended[k] = true
		}
		extended[t] = true
		path = extended
	}

	switch v := t.(type) {
	case *ArrayType:
		return descend(v.Items, path)
	case *MapType:
		return descend(v.Values, path)
	case *UnionType:
		for _, m := range v.Members {
			if err := descend(m, path); err != nil {
				return err
			}
		}
	case *ClassType:
		for _, p := range v.Properties {
			if err := descend(p.Type, path); err != nil {
				return err
			}
		}
	}
	return nil
}

// descend stops at a named boundary: its own subtree is (or will be)
// checked independently by checkCycles' top-level loop over g.Types.
func descend(t Type, path map[Type]bool) error {
	if _, named := t.(Named); named {
		return nil
	}
	return checkAnonymous(t, path)
}

func checkNullPlacement(g *TypeGraph) error {
	visited := map[Type]bool{}
	for _, t := range g.Types {
		if err := checkNullPlacementNode(t, false, visited); err != nil {
			return err
		}
	}
	return nil
}

// checkNullPlacementNode walks every reachable node. insideUnion is true
// only for the immediate members of a UnionType.
func checkNullPlacementNode(t Type, insideUnion bool, visited map[Type]bool) error {
	if t.Kind() == Null && !insideUnion {
		return ErrNullOutsideUnion
	}
	if _, named := t.(Named); named {
		if visited[t] {
			return nil
		}
		visited[t] = true
	}

	switch v := t.(type) {
	case *ArrayType:
		return checkNullPlacementNode(v.Items, false, visited)
	case *MapType:
		return checkNullPlacementNode(v.Values, false, visited)
	case *UnionType:
		for _, m := range v.Members {
			if err := checkNullPlacementNode(m, true, visited); err != nil {
				return err
			}
		}
	case *ClassType:
		for _, p := range v.Properties {
			if err := checkNullPlacementNode(p.Type, false, visited); err != nil {
				return err
			}
		}
	}
	return nil
}
