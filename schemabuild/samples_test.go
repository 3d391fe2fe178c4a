package schemabuild

import (
	"testing"

	"github.com/dcolson/schemagen/typeir"
)

func TestFromSamples_SingleDocument(t *testing.T) {
	doc := []byte(`
id: 1
name: Bulbasaur
weight: 6.9
`)
	g, err := FromSamples("Pokemon", doc)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	root := g.Types[0].(*typeir.ClassType)

	id, ok := root.Property("id")
	if !ok || id.Type.Kind() != typeir.Int || id.Optional {
		t.Errorf("id wrong: %+v (ok=%v)", id, ok)
	}
	weight, ok := root.Property("weight")
	if !ok || weight.Type.Kind() != typeir.Double {
		t.Errorf("weight wrong: %+v (ok=%v)", weight, ok)
	}
}

func TestFromSamples_OptionalAcrossDocuments(t *testing.T) {
	docA := []byte(`
id: 1
nickname: Sparky
`)
	docB := []byte(`
id: 2
`)
	g, err := FromSamples("Pokemon", docA, docB)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	root := g.Types[0].(*typeir.ClassType)

	id, ok := root.Property("id")
	if !ok || id.Optional {
		t.Errorf("id should be required (present in every sample): %+v (ok=%v)", id, ok)
	}
	nickname, ok := root.Property("nickname")
	if !ok || !nickname.Optional {
		t.Errorf("nickname should be optional (absent from one sample): %+v (ok=%v)", nickname, ok)
	}
}

func TestFromSamples_IntWidensToDoubleAcrossDocuments(t *testing.T) {
	docA := []byte(`multiplier: 2`)
	docB := []byte(`multiplier: 2.5`)
	g, err := FromSamples("Holder", docA, docB)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	root := g.Types[0].(*typeir.ClassType)
	m, ok := root.Property("multiplier")
	if !ok || m.Type.Kind() != typeir.Double {
		t.Errorf("expected multiplier to widen to Double, got %+v (ok=%v)", m, ok)
	}
}

func TestFromSamples_AlwaysNullFieldRendersAsAnyWithWarning(t *testing.T) {
	docA := []byte(`
id: 1
nickname: null
`)
	docB := []byte(`
id: 2
nickname: null
`)
	g, err := FromSamples("Pokemon", docA, docB)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	if err := typeir.Validate(g); err != nil {
		t.Fatalf("Validate: %v (an always-null field must not fail validation)", err)
	}

	root := g.Types[0].(*typeir.ClassType)
	nickname, ok := root.Property("nickname")
	if !ok || nickname.Type.Kind() != typeir.Any {
		t.Fatalf("expected nickname to render as Any, got %+v (ok=%v)", nickname, ok)
	}

	if len(g.Warnings) != 1 || g.Warnings[0].TypeName != "Pokemon_nickname" {
		t.Errorf("expected one warning naming Pokemon_nickname, got %+v", g.Warnings)
	}
}

func TestFromSamples_ArrayOfObjects(t *testing.T) {
	doc := []byte(`
evolutions:
  - name: Ivysaur
    level: 16
  - name: Venusaur
    level: 32
`)
	g, err := FromSamples("Pokemon", doc)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	root := g.Types[0].(*typeir.ClassType)
	evolutions, ok := root.Property("evolutions")
	if !ok {
		t.Fatal("expected an evolutions property")
	}
	arr, ok := evolutions.Type.(*typeir.ArrayType)
	if !ok {
		t.Fatalf("expected array type, got %T", evolutions.Type)
	}
	if arr.Items.Kind() != typeir.Class {
		t.Errorf("expected array items to be a Class, got %s", arr.Items.Kind())
	}
}

func TestFromSamples_NoDocumentsErrors(t *testing.T) {
	if _, err := FromSamples("Thing"); err == nil {
		t.Fatal("expected an error when given zero sample documents")
	}
}

func TestFromSamples_NonObjectTopLevelErrors(t *testing.T) {
	doc := []byte(`42`)
	if _, err := FromSamples("Thing", doc); err == nil {
		t.Fatal("expected an error when the top-level sample has no object shape")
	}
}
