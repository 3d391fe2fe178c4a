package schemabuild

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dcolson/schemagen/typeir"
)

func TestFromJSONSchema_SimpleObject(t *testing.T) {
	schema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"id"},
		Properties: map[string]*jsonschema.Schema{
			"id":   {Type: "integer"},
			"name": {Type: "string"},
		},
	}

	g, err := FromJSONSchema(schema, "Thing")
	if err != nil {
		t.Fatalf("FromJSONSchema: %v", err)
	}
	if len(g.Types) != 1 {
		t.Fatalf("expected 1 type, got %d", len(g.Types))
	}
	c, ok := g.Types[0].(*typeir.ClassType)
	if !ok {
		t.Fatalf("expected *typeir.ClassType, got %T", g.Types[0])
	}
	id, ok := c.Property("id")
	if !ok || id.Type.Kind() != typeir.Int || id.Optional {
		t.Errorf("id property wrong: %+v (ok=%v)", id, ok)
	}
	name, ok := c.Property("name")
	if !ok || name.Type.Kind() != typeir.String || !name.Optional {
		t.Errorf("name property wrong: %+v (ok=%v)", name, ok)
	}
	if len(g.TopLevels) != 1 || g.TopLevels[0] != typeir.Named(c) {
		t.Errorf("expected Thing marked as the sole top-level")
	}
}

func TestFromJSONSchema_ArrayOfObjects(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"items": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"label": {Type: "string"},
					},
				},
			},
		},
	}

	g, err := FromJSONSchema(schema, "List")
	if err != nil {
		t.Fatalf("FromJSONSchema: %v", err)
	}
	// Two classes: List and its "items" element class.
	if len(g.Types) != 2 {
		t.Fatalf("expected 2 types, got %d", len(g.Types))
	}
	root := g.Types[0].(*typeir.ClassType)
	items, ok := root.Property("items")
	if !ok {
		t.Fatal("expected an items property")
	}
	arr, ok := items.Type.(*typeir.ArrayType)
	if !ok {
		t.Fatalf("expected array type, got %T", items.Type)
	}
	if arr.Items.Kind() != typeir.Class {
		t.Errorf("expected array items to be a Class, got %s", arr.Items.Kind())
	}
}

func TestFromJSONSchema_Enum(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"status": {
				Type: "string",
				Enum: []any{"Active", "Inactive"},
			},
		},
	}

	g, err := FromJSONSchema(schema, "Account")
	if err != nil {
		t.Fatalf("FromJSONSchema: %v", err)
	}
	var enum *typeir.EnumType
	for _, ty := range g.Types {
		if e, ok := ty.(*typeir.EnumType); ok {
			enum = e
		}
	}
	if enum == nil {
		t.Fatal("expected an enum type in the graph")
	}
	if !enum.HasCase("Active") || !enum.HasCase("Inactive") {
		t.Errorf("enum missing expected cases: %+v", enum.Cases)
	}
}

func TestFromJSONSchema_NullableTypesKeyword(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"nickname": {Types: []string{"string", "null"}},
		},
	}

	g, err := FromJSONSchema(schema, "Person")
	if err != nil {
		t.Fatalf("FromJSONSchema: %v", err)
	}
	root := g.Types[0].(*typeir.ClassType)
	nickname, _ := root.Property("nickname")
	u, ok := nickname.Type.(*typeir.UnionType)
	if !ok {
		t.Fatalf("expected a union for a [\"string\",\"null\"] field, got %T", nickname.Type)
	}
	if !u.IsNullable() {
		t.Errorf("expected union to be nullable")
	}
	if u.NullableInner().Kind() != typeir.String {
		t.Errorf("expected nullable inner to be String, got %s", u.NullableInner().Kind())
	}
}

func TestFromJSONSchema_StandaloneNullRendersAsAnyWithWarning(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"always_absent": {Type: "null"},
		},
	}

	g, err := FromJSONSchema(schema, "Thing")
	if err != nil {
		t.Fatalf("FromJSONSchema: %v", err)
	}
	if err := typeir.Validate(g); err != nil {
		t.Fatalf("Validate: %v (a standalone null field must not fail validation)", err)
	}

	root := g.Types[0].(*typeir.ClassType)
	prop, ok := root.Property("always_absent")
	if !ok || prop.Type.Kind() != typeir.Any {
		t.Fatalf("expected always_absent to render as Any, got %+v (ok=%v)", prop, ok)
	}

	if len(g.Warnings) != 1 || g.Warnings[0].TypeName != "Thing_always_absent" {
		t.Errorf("expected one warning naming Thing_always_absent, got %+v", g.Warnings)
	}
}

func TestFromJSONSchema_RefSharesOneNamedType(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Defs: map[string]*jsonschema.Schema{
			"Address": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"city": {Type: "string"},
				},
			},
		},
		Properties: map[string]*jsonschema.Schema{
			"home": {Ref: "#/$defs/Address"},
			"work": {Ref: "#/$defs/Address"},
		},
	}

	g, err := FromJSONSchema(schema, "Person")
	if err != nil {
		t.Fatalf("FromJSONSchema: %v", err)
	}
	root := g.Types[0].(*typeir.ClassType)
	home, _ := root.Property("home")
	work, _ := root.Property("work")
	if home.Type != work.Type {
		t.Errorf("expected home and work to resolve to the exact same Address type, got %v vs %v", home.Type, work.Type)
	}
	// Person + one shared Address, not two.
	if len(g.Types) != 2 {
		t.Errorf("expected 2 types (Person, Address), got %d", len(g.Types))
	}
}

func TestFromJSONSchema_OneOfBecomesUnion(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"value": {
				OneOf: []*jsonschema.Schema{
					{Type: "string"},
					{Type: "integer"},
				},
			},
		},
	}

	g, err := FromJSONSchema(schema, "Holder")
	if err != nil {
		t.Fatalf("FromJSONSchema: %v", err)
	}
	root := g.Types[0].(*typeir.ClassType)
	value, _ := root.Property("value")
	u, ok := value.Type.(*typeir.UnionType)
	if !ok {
		t.Fatalf("expected a union, got %T", value.Type)
	}
	if len(u.Members) != 2 {
		t.Errorf("expected 2 members, got %d", len(u.Members))
	}
}

func TestFromJSONSchema_UnsupportedRefErrors(t *testing.T) {
	schema := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"remote": {Ref: "https://example.com/other.json"},
		},
	}
	if _, err := FromJSONSchema(schema, "Holder"); err == nil {
		t.Fatal("expected an error for a non-local $ref")
	}
}
