package render

import "github.com/dcolson/schemagen/typeir"

// namedDependencies returns the Named types t's definition directly
// references: a class's property types, a union's members, walked
// through anonymous Array/Map wrappers. Enums have none.
func namedDependencies(t typeir.Named) []typeir.Named {
	var deps []typeir.Named
	seen := map[typeir.Named]bool{}
	add := func(named typeir.Named) {
		if named != nil && !seen[named] {
			seen[named] = true
			deps = append(deps, named)
		}
	}
	var walk func(ty typeir.Type)
	walk = func(ty typeir.Type) {
		switch v := ty.(type) {
		case *typeir.ArrayType:
			walk(v.Items)
		case *typeir.MapType:
			walk(v.Values)
		case *typeir.UnionType:
			for _, m := range v.Members {
				walk(m)
			}
		default:
			if named, ok := ty.(typeir.Named); ok {
				add(named)
			}
		}
	}
	switch v := t.(type) {
	case *typeir.ClassType:
		for _, p := range v.Properties {
			walk(p.Type)
		}
	case *typeir.UnionType:
		for _, m := range v.Members {
			walk(m)
		}
	}
	return deps
}

// topoSort orders g.Types so that every named type referenced by a
// class/union is emitted before the type that references it, using a
// stable Kahn's algorithm that preserves g.Types' original order among
// entities with no ordering constraint between them.
func topoSort(g *typeir.TypeGraph) []typeir.Named {
	indexOf := make(map[typeir.Named]int, len(g.Types))
	for i, t := range g.Types {
		indexOf[t] = i
	}

	// dependents[d] lists types that depend on d; indegree[t] counts how
	// many not-yet-emitted dependencies t still has.
	dependents := make(map[typeir.Named][]typeir.Named, len(g.Types))
	indegree := make(map[typeir.Named]int, len(g.Types))
	for _, t := range g.Types {
		for _, dep := range namedDependencies(t) {
			if _, ok := indexOf[dep]; !ok {
				continue // reference outside this graph's own type list
			}
			if dep == t {
				continue // named self-recursion is not an ordering constraint
			}
			dependents[dep] = append(dependents[dep], t)
			indegree[t]++
		}
	}

	var ready []typeir.Named
	for _, t := range g.Types {
		if indegree[t] == 0 {
			ready = append(ready, t)
		}
	}

	var order []typeir.Named
	emitted := make(map[typeir.Named]bool, len(g.Types))
	for len(ready) > 0 {
		// Pop the ready entity with the smallest original index, to keep
		// the sort stable and deterministic.
		bestI := 0
		for i := 1; i < len(ready); i++ {
			if indexOf[ready[i]] < indexOf[ready[bestI]] {
				bestI = i
			}
		}
		next := ready[bestI]
		ready = append(ready[:bestI], ready[bestI+1:]...)

		order = append(order, next)
		emitted[next] = true

		for _, dependent := range dependents[next] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	// Anything left unvisited is part of a cycle typeir.Validate should
	// already have rejected; append in original order as a defensive
	// fallback rather than silently dropping it.
	for _, t := range g.Types {
		if !emitted[t] {
			order = append(order, t)
		}
	}
	return order
}
