package typeir

import "encoding/json"

// JSON serialization support for the IR, following the same
// kind-discriminated pattern the teacher's ir package uses: every encoded
// node carries a "kind" field so a decoder (or a diagnostic dump) can
// recover the concrete Go type without external schema knowledge.

// MarshalJSON implements json.Marshaler for ClassType.
func (c *ClassType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind       string     `json:"kind"`
		Name       string     `json:"name"`
		Doc        string     `json:"doc,omitempty"`
		Properties []Property `json:"properties"`
	}{
		Kind:       "class",
		Name:       c.name,
		Doc:        c.doc,
		Properties: c.Properties,
	})
}

// MarshalJSON implements json.Marshaler for Property.
func (p Property) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name        string `json:"name"`
		Type        Type   `json:"type"`
		Optional    bool   `json:"optional,omitempty"`
		Description string `json:"description,omitempty"`
	}{
		Name:        p.Name,
		Type:        p.Type,
		Optional:    p.Optional,
		Description: p.Description,
	})
}

// MarshalJSON implements json.Marshaler for EnumType.
func (e *EnumType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string   `json:"kind"`
		Name  string   `json:"name"`
		Doc   string   `json:"doc,omitempty"`
		Cases []string `json:"cases"`
	}{
		Kind:  "enum",
		Name:  e.name,
		Doc:   e.doc,
		Cases: e.Cases,
	})
}

// MarshalJSON implements json.Marshaler for UnionType.
func (u *UnionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string `json:"kind"`
		Name    string `json:"name"`
		Doc     string `json:"doc,omitempty"`
		Members []Type `json:"members"`
	}{
		Kind:    "union",
		Name:    u.name,
		Doc:     u.doc,
		Members: u.Members,
	})
}

// MarshalJSON implements json.Marshaler for ArrayType.
func (a *ArrayType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string `json:"kind"`
		Items Type   `json:"items"`
	}{
		Kind:  "array",
		Items: a.Items,
	})
}

// MarshalJSON implements json.Marshaler for MapType.
func (m *MapType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind   string `json:"kind"`
		Values Type   `json:"values"`
	}{
		Kind:   "map",
		Values: m.Values,
	})
}

// MarshalJSON implements json.Marshaler for the primitive kinds.
func (p primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
	}{
		Kind: p.kind.String(),
	})
}
