package typeir

// Property is one member of a ClassType's ordered property mapping. Field
// order is observable and defines emission order (spec.md §3).
type Property struct {
	// Name is the raw, unstyled JSON property name. It is preserved
	// verbatim for the serializer contract: the naming pipeline derives a
	// legal identifier from it, but the generated from_dynamic/to_dynamic
	// methods key off this exact string.
	Name string

	// Type is the property's value type.
	Type Type

	// Optional indicates the property may be absent from the JSON object.
	Optional bool

	// Description is free-form documentation, or "" if none.
	Description string
}

// ClassType represents a JSON object with a fixed, named set of
// properties (a Go struct, a Ruby dry-struct, ...).
type ClassType struct {
	id   int
	name string
	doc  string

	// Properties is the ordered property list. Insertion order is
	// significant: it is both the declaration order and the from_dynamic/
	// to_dynamic emission order.
	Properties []Property
}

// NewClass allocates a new named class node. id must be unique within the
// owning TypeGraph; callers normally get id from TypeGraph.NextNodeID.
func NewClass(id int, proposedName, description string) *ClassType {
	return &ClassType{id: id, name: proposedName, doc: description}
}

// Kind returns Class.
func (*ClassType) Kind() Kind { return Class }

func (*ClassType) sealed() {}

// NodeID returns the node's stable graph identity.
func (c *ClassType) NodeID() int { return c.id }

// ProposedName returns the name suggested by the schema source.
func (c *ClassType) ProposedName() string { return c.name }

// Description returns the class-level documentation, if any.
func (c *ClassType) Description() string { return c.doc }

// AddProperty appends a property, preserving declaration order.
func (c *ClassType) AddProperty(p Property) {
	c.Properties = append(c.Properties, p)
}

// Property looks up a property by its raw JSON name. Returns the zero
// value and false if not found.
func (c *ClassType) Property(jsonName string) (Property, bool) {
	for _, p := range c.Properties {
		if p.Name == jsonName {
			return p, true
		}
	}
	return Property{}, false
}
