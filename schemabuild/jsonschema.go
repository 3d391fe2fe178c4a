// Package schemabuild builds typeir.TypeGraph values from external schema
// sources: a JSON Schema document, or (best-effort) a handful of sample
// documents. Neither builder is imported by typeir, source, render, or
// target/ruby — the core never knows how its input was produced.
package schemabuild

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dcolson/schemagen/typeir"
)

// FromJSONSchema walks schema into a *typeir.TypeGraph, rooted at a single
// top-level type named rootName. Local "#/$defs/..." and
// "#/definitions/..." references resolve to shared named types so a
// definition referenced from two places becomes one typeir.Class/Enum/
// Union, not two copies; any other $ref form is reported as an error since
// this builder never fetches outside the document it was given.
func FromJSONSchema(schema *jsonschema.Schema, rootName string) (*typeir.TypeGraph, error) {
	if schema == nil {
		return nil, fmt.Errorf("schemabuild: FromJSONSchema given a nil schema")
	}

	b := &jsonSchemaBuilder{
		g:     typeir.NewTypeGraph(),
		named: make(map[*jsonschema.Schema]typeir.Named),
		defs:  mergedDefs(schema),
	}

	root, err := b.build(schema, rootName, schema.Description)
	if err != nil {
		return nil, err
	}
	named, ok := root.(typeir.Named)
	if !ok {
		return nil, fmt.Errorf("schemabuild: root schema %q resolved to a bare %s, which has no top-level name", rootName, root.Kind())
	}
	b.g.MarkTopLevel(named)
	return b.g, nil
}

type jsonSchemaBuilder struct {
	g     *typeir.TypeGraph
	named map[*jsonschema.Schema]typeir.Named
	defs  map[string]*jsonschema.Schema
}

// mergedDefs flattens both the 2020-12 "$defs" and the older "definitions"
// keyword into one lookup table, preferring "$defs" on a name collision.
func mergedDefs(schema *jsonschema.Schema) map[string]*jsonschema.Schema {
	defs := make(map[string]*jsonschema.Schema, len(schema.Defs)+len(schema.Definitions))
	for name, s := range schema.Definitions {
		defs[name] = s
	}
	for name, s := range schema.Defs {
		defs[name] = s
	}
	return defs
}

func (b *jsonSchemaBuilder) resolveRef(ref string) (def *jsonschema.Schema, name string, err error) {
	const defsPrefix = "#/$defs/"
	const definitionsPrefix = "#/definitions/"

	switch {
	case strings.HasPrefix(ref, defsPrefix):
		name = strings.TrimPrefix(ref, defsPrefix)
	case strings.HasPrefix(ref, definitionsPrefix):
		name = strings.TrimPrefix(ref, definitionsPrefix)
	default:
		return nil, "", fmt.Errorf("schemabuild: unsupported $ref %q (only local #/$defs/... and #/definitions/... pointers are supported)", ref)
	}

	def, ok := b.defs[name]
	if !ok {
		return nil, "", fmt.Errorf("schemabuild: $ref %q has no matching definition", ref)
	}
	return def, name, nil
}

// build converts schema into a typeir.Type. proposedName/description seed
// a Named type's identity if schema turns out to need one (object, enum,
// explicit union); a schema already converted once (reached again through
// a second $ref or a second inline occurrence of the same *Schema pointer)
// returns the same typeir.Named instead of building a duplicate.
func (b *jsonSchemaBuilder) build(schema *jsonschema.Schema, proposedName, description string) (typeir.Type, error) {
	if schema == nil {
		return typeir.AnyType(), nil
	}
	if n, ok := b.named[schema]; ok {
		return n, nil
	}

	if schema.Ref != "" {
		def, defName, err := b.resolveRef(schema.Ref)
		if err != nil {
			return nil, err
		}
		if n, ok := b.named[def]; ok {
			return n, nil
		}
		return b.build(def, defName, def.Description)
	}

	if len(schema.Enum) > 0 {
		return b.buildEnum(schema, proposedName, description)
	}
	if len(schema.OneOf) > 0 {
		return b.buildUnion(schema, schema.OneOf, proposedName, description)
	}
	if len(schema.AnyOf) > 0 {
		return b.buildUnion(schema, schema.AnyOf, proposedName, description)
	}
	if nonNullType, ok := nullableTypesKeyword(schema); ok {
		inner, err := b.build(&jsonschema.Schema{Type: nonNullType, Items: schema.Items, Properties: schema.Properties, Required: schema.Required}, proposedName, description)
		if err != nil {
			return nil, err
		}
		u := typeir.NewUnion(b.g.NextNodeID(), proposedName, description)
		b.named[schema] = u
		b.g.AddType(u)
		u.AddMember(inner)
		u.AddMember(typeir.NullType())
		return u, nil
	}

	switch schemaType(schema) {
	case "object":
		return b.buildClass(schema, proposedName, description)
	case "array":
		items, err := b.build(schema.Items, singularize(proposedName), "")
		if err != nil {
			return nil, err
		}
		return typeir.NewArray(items), nil
	case "string":
		return typeir.StringType(), nil
	case "integer":
		return typeir.IntType(), nil
	case "number":
		return typeir.DoubleType(), nil
	case "boolean":
		return typeir.BoolType(), nil
	case "null":
		// A standalone "type": "null" field has no non-null rendering of
		// its own (typeir.Validate rejects a bare Null outside a union);
		// spec.md §7 treats this as a warning, not a fatal error, so it
		// renders as Any rather than failing the whole document.
		b.g.AddWarning(typeir.Warning{
			Message:  "schema has a standalone \"null\" type; rendered as Any",
			TypeName: proposedName,
		})
		return typeir.AnyType(), nil
	default:
		b.g.AddWarning(typeir.Warning{
			Message:  "schema has no recognizable type keyword; rendered as Any",
			TypeName: proposedName,
		})
		return typeir.AnyType(), nil
	}
}

// schemaType returns schema's effective type keyword, falling back to the
// shape of its "type": [...] array form, then to inferring "object"/"array"
// from the presence of properties/items the way a schema author sometimes
// leaves the keyword off entirely.
func schemaType(schema *jsonschema.Schema) string {
	if schema.Type != "" {
		return schema.Type
	}
	if len(schema.Types) == 1 {
		return schema.Types[0]
	}
	if len(schema.Properties) > 0 {
		return "object"
	}
	if schema.Items != nil {
		return "array"
	}
	return ""
}

// nullableTypesKeyword detects JSON Schema's "type": ["X", "null"] shorthand
// for a nullable field, which spec.md's union-based nullability model has
// no single-type representation for: it must become a typeir.UnionType of
// X and Null. Returns the non-null type keyword and true only when Types
// holds exactly that pattern.
func nullableTypesKeyword(schema *jsonschema.Schema) (string, bool) {
	if len(schema.Types) != 2 {
		return "", false
	}
	a, b := schema.Types[0], schema.Types[1]
	switch {
	case a == "null" && b != "null":
		return b, true
	case b == "null" && a != "null":
		return a, true
	default:
		return "", false
	}
}

func (b *jsonSchemaBuilder) buildClass(schema *jsonschema.Schema, proposedName, description string) (typeir.Type, error) {
	c := typeir.NewClass(b.g.NextNodeID(), proposedName, description)
	b.named[schema] = c
	b.g.AddType(c)

	required := make(map[string]bool, len(schema.Required))
	for _, r := range schema.Required {
		required[r] = true
	}

	// JSON Schema's "properties" is a map with no ordering contract; sort
	// by name so a given document always produces the same graph.
	propNames := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		propNames = append(propNames, name)
	}
	sort.Strings(propNames)

	for _, propName := range propNames {
		propSchema := schema.Properties[propName]
		propType, err := b.build(propSchema, proposedName+"_"+propName, propSchema.Description)
		if err != nil {
			return nil, err
		}
		c.AddProperty(typeir.Property{
			Name:        propName,
			Type:        propType,
			Optional:    !required[propName],
			Description: propSchema.Description,
		})
	}
	return c, nil
}

func (b *jsonSchemaBuilder) buildEnum(schema *jsonschema.Schema, proposedName, description string) (typeir.Type, error) {
	e := typeir.NewEnum(b.g.NextNodeID(), proposedName, description)
	b.named[schema] = e
	b.g.AddType(e)

	for _, v := range schema.Enum {
		s, ok := v.(string)
		if !ok {
			b.g.AddWarning(typeir.Warning{
				Message:  fmt.Sprintf("enum value %v is not a string; skipped (non-string enums have no typeir representation)", v),
				TypeName: proposedName,
			})
			continue
		}
		if !e.HasCase(s) {
			e.AddCase(s)
		}
	}
	return e, nil
}

// buildUnion converts a oneOf/anyOf member list into a typeir.UnionType.
// owner is the schema carrying the oneOf/anyOf keyword, registered in
// b.named before recursing into its members so a self-referential member
// resolves back to this same union instead of recursing forever.
func (b *jsonSchemaBuilder) buildUnion(owner *jsonschema.Schema, members []*jsonschema.Schema, proposedName, description string) (typeir.Type, error) {
	u := typeir.NewUnion(b.g.NextNodeID(), proposedName, description)
	b.named[owner] = u
	b.g.AddType(u)

	for i, m := range members {
		t, err := b.build(m, fmt.Sprintf("%s_%d", proposedName, i), m.Description)
		if err != nil {
			return nil, err
		}
		u.AddMember(t)
	}
	return u, nil
}

// singularize turns a plural-looking array property name into a name
// suitable for its item type ("weaknesses" -> "weakness"), falling back to
// appending "_item" when no trailing "s" is present to strip.
func singularize(name string) string {
	if strings.HasSuffix(name, "ies") {
		return strings.TrimSuffix(name, "ies") + "y"
	}
	if strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss") {
		return strings.TrimSuffix(name, "s")
	}
	return name + "_item"
}
