package render

import (
	"github.com/dcolson/schemagen/naming"
	"github.com/dcolson/schemagen/source"
	"github.com/dcolson/schemagen/typeir"
)

// Strategy is a target's RenderStrategy capability set (spec.md §4.4 /
// §9): a fixed collection of hooks the driver calls, with no virtual
// dispatch across a class hierarchy. One Strategy value fully determines
// a render.
type Strategy interface {
	// NewTypeNamer returns the single namer shared by every Class, Enum,
	// and Union name in the graph, seeded with the target's reserved
	// words.
	NewTypeNamer() *naming.Namer
	// NewPropertyNamer returns a fresh namer for one class's properties.
	NewPropertyNamer() *naming.Namer
	// NewEnumCaseNamer returns a fresh namer for one enum's cases.
	NewEnumCaseNamer() *naming.Namer

	// TypeExpr renders t as used in a field annotation.
	TypeExpr(t typeir.Type) source.Sourcelike
	// FromDynamic converts a JSON-shaped expr into the domain
	// representation of t. optional indicates expr may be JSON null.
	FromDynamic(t typeir.Type, expr source.Sourcelike, optional bool) source.Sourcelike
	// ToDynamic is FromDynamic's inverse.
	ToDynamic(t typeir.Type, expr source.Sourcelike, optional bool) source.Sourcelike
	// MarshalsImplicitly reports whether t's JSON shape equals its domain
	// shape at every depth, letting the driver elide the FromDynamic/
	// ToDynamic call and pass the raw JSON expression straight through.
	MarshalsImplicitly(t typeir.Type) bool

	IndentUnit() string
	Header(b *source.Buffer)
	Prelude(b *source.Buffer, g *typeir.TypeGraph, names *Names)
	SupportsOptionalProperties() bool
	NeedsTypeDeclarationBeforeUse() bool
	BlankLinePolicy() source.BlankLinePolicy
	FileExtension() string

	EmitClass(b *source.Buffer, names *Names, c *typeir.ClassType)
	EmitEnum(b *source.Buffer, names *Names, e *typeir.EnumType)
	EmitUnion(b *source.Buffer, names *Names, u *typeir.UnionType)
}
