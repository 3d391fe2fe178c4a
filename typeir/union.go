package typeir

// UnionType represents a set of alternative member types for a single
// field (spec.md §3, §4.4). Unlike the teacher's ir.UnionDescriptor (which
// only ever appears inside a generic type-parameter constraint),
// UnionType here is a first-class member of TypeGraph.Types whenever a
// target needs to name an explicit sum-type wrapper for it.
type UnionType struct {
	id   int
	name string
	doc  string

	// Members is the set of alternative types. Order is preserved from
	// the schema source for deterministic disambiguation naming, but
	// members are logically a set: duplicates are meaningless and
	// builders should not add the same node twice.
	Members []Type
}

// NewUnion allocates a new named union node.
func NewUnion(id int, proposedName, description string) *UnionType {
	return &UnionType{id: id, name: proposedName, doc: description}
}

// Kind returns UnionKind.
func (*UnionType) Kind() Kind { return UnionKind }

func (*UnionType) sealed() {}

// NodeID returns the node's stable graph identity.
func (u *UnionType) NodeID() int { return u.id }

// ProposedName returns the name suggested by the schema source.
func (u *UnionType) ProposedName() string { return u.name }

// Description returns the union-level documentation, if any.
func (u *UnionType) Description() string { return u.doc }

// AddMember appends a member type.
func (u *UnionType) AddMember(t Type) {
	u.Members = append(u.Members, t)
}

// HasNull reports whether one of the union's members is Null.
func (u *UnionType) HasNull() bool {
	for _, m := range u.Members {
		if m.Kind() == Null {
			return true
		}
	}
	return false
}

// NonNullMembers returns the members excluding any Null member.
func (u *UnionType) NonNullMembers() []Type {
	out := make([]Type, 0, len(u.Members))
	for _, m := range u.Members {
		if m.Kind() != Null {
			out = append(out, m)
		}
	}
	return out
}

// IsNullable reports whether u is a "nullable" per invariant 3 (spec.md
// §3): exactly one non-null member plus exactly one null member. Nullable
// unions render using the target's optional construct rather than a sum
// type (spec.md §4.4).
func (u *UnionType) IsNullable() bool {
	return u.HasNull() && len(u.NonNullMembers()) == 1
}

// NullableInner returns the single non-null member of a nullable union.
// Panics if !u.IsNullable(); callers MUST check first.
func (u *UnionType) NullableInner() Type {
	if !u.IsNullable() {
		panic("typeir: NullableInner called on a union that is not nullable")
	}
	return u.NonNullMembers()[0]
}
