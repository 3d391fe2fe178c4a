package typeir

// primitive is shared by the six leaf kinds that carry no further
// structure. None of them are Named: primitives never occupy a namespace of
// their own, they only appear nested inside composite nodes.
type primitive struct{ kind Kind }

func (p primitive) Kind() Kind { return p.kind }
func (primitive) sealed()      {}

// AnyType returns the singleton node for an untyped ("any") value.
func AnyType() Type { return primitive{Any} }

// NullType returns the singleton node for a JSON null. Per invariant 2
// (spec.md §3), this MUST only appear as a Union member.
func NullType() Type { return primitive{Null} }

// BoolType returns the singleton node for a JSON boolean.
func BoolType() Type { return primitive{Bool} }

// IntType returns the singleton node for a JSON integer.
func IntType() Type { return primitive{Int} }

// DoubleType returns the singleton node for a JSON floating-point number.
func DoubleType() Type { return primitive{Double} }

// StringType returns the singleton node for a JSON string.
func StringType() Type { return primitive{String} }

// IsPrimitive reports whether t is one of the six leaf kinds.
func IsPrimitive(t Type) bool {
	switch t.Kind() {
	case Any, Null, Bool, Int, Double, String:
		return true
	default:
		return false
	}
}
