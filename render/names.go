package render

import (
	"github.com/dcolson/schemagen/naming"
	"github.com/dcolson/schemagen/typeir"
)

// Names is the result of the driver's phase 1 (name assignment): every
// Namer in the graph, already sealed, plus the resolved Name handle for
// every Class, Enum, Union, property, and enum case. A Strategy's
// Emit{Class,Enum,Union} methods read from Names rather than allocating
// names themselves, so all allocation happens in one deterministic pass
// before any text is emitted (spec.md §4.5: OPEN during phase 1, SEALED
// from phase 2 onward).
type Names struct {
	typeNames map[typeir.Named]*naming.Name

	propertyNamers map[*typeir.ClassType]*naming.Namer
	propertyNames  map[*typeir.ClassType]map[string]*naming.Name

	caseNamers map[*typeir.EnumType]*naming.Namer
	caseNames  map[*typeir.EnumType]map[string]*naming.Name
}

// TypeName returns the resolved identifier for a Class, Enum, or Union.
func (n *Names) TypeName(t typeir.Named) *naming.Name {
	return n.typeNames[t]
}

// PropertyName returns the resolved identifier for property rawJSONName
// on class c.
func (n *Names) PropertyName(c *typeir.ClassType, rawJSONName string) *naming.Name {
	return n.propertyNames[c][rawJSONName]
}

// CaseName returns the resolved identifier for enum case rawJSONName on
// enum e.
func (n *Names) CaseName(e *typeir.EnumType, rawJSONName string) *naming.Name {
	return n.caseNames[e][rawJSONName]
}

// assignNames runs phase 1: walk the graph in order, propose a Name in
// the appropriate namespace for every entity, then seal every Namer.
func assignNames(g *typeir.TypeGraph, strat Strategy) *Names {
	n := &Names{
		typeNames:      make(map[typeir.Named]*naming.Name),
		propertyNamers: make(map[*typeir.ClassType]*naming.Namer),
		propertyNames:  make(map[*typeir.ClassType]map[string]*naming.Name),
		caseNamers:     make(map[*typeir.EnumType]*naming.Namer),
		caseNames:      make(map[*typeir.EnumType]map[string]*naming.Name),
	}

	typeNamer := strat.NewTypeNamer()
	var namers []*naming.Namer
	namers = append(namers, typeNamer)

	for order, t := range g.Types {
		n.typeNames[t] = typeNamer.Propose(t.ProposedName(), order)

		switch v := t.(type) {
		case *typeir.ClassType:
			propNamer := strat.NewPropertyNamer()
			n.propertyNamers[v] = propNamer
			n.propertyNames[v] = make(map[string]*naming.Name)
			for propOrder, p := range v.Properties {
				n.propertyNames[v][p.Name] = propNamer.Propose(p.Name, propOrder)
			}
			namers = append(namers, propNamer)
		case *typeir.EnumType:
			caseNamer := strat.NewEnumCaseNamer()
			n.caseNamers[v] = caseNamer
			n.caseNames[v] = make(map[string]*naming.Name)
			for caseOrder, c := range v.Cases {
				n.caseNames[v][c] = caseNamer.Propose(c, caseOrder)
			}
			namers = append(namers, caseNamer)
		}
	}

	for _, namer := range namers {
		namer.Seal()
	}
	return n
}
