// Package source is the rope-based emit engine: an append-only buffer that
// accumulates fragments referencing not-yet-resolved identifiers, and
// resolves them into text only once every naming.Namer in the graph has
// sealed.
package source

import "github.com/dcolson/schemagen/naming"

// Sourcelike is a fragment of generated source: a literal string, a
// reference to a Name that resolves only after its Namer seals, a
// sequence of other fragments, or an annotated span wrapping another
// fragment with a side note rendered as an inline comment.
type Sourcelike interface {
	isSourcelike()
}

type litFragment string

func (litFragment) isSourcelike() {}

// Lit wraps a literal string fragment.
func Lit(s string) Sourcelike { return litFragment(s) }

type nameFragment struct {
	name *naming.Name
}

func (nameFragment) isSourcelike() {}

// Ref wraps a Name handle. It resolves to n.String() at render time, which
// requires n's Namer to already be sealed.
func Ref(n *naming.Name) Sourcelike { return nameFragment{name: n} }

type seqFragment []Sourcelike

func (seqFragment) isSourcelike() {}

// Seq concatenates fragments with no separator.
func Seq(parts ...Sourcelike) Sourcelike { return seqFragment(parts) }

type spanFragment struct {
	open  string
	inner Sourcelike
	close string
}

func (spanFragment) isSourcelike() {}

// Annotate wraps inner with open/close strings — typically used to attach
// an inline warning comment beside a fragment without breaking the line
// it's part of.
func Annotate(open string, inner Sourcelike, close string) Sourcelike {
	return spanFragment{open: open, inner: inner, close: close}
}

// resolve turns a Sourcelike into its final text. Panics (via Name.String)
// if any referenced Name's Namer has not been sealed yet.
func resolve(s Sourcelike) string {
	switch f := s.(type) {
	case litFragment:
		return string(f)
	case nameFragment:
		return f.name.String()
	case seqFragment:
		out := make([]byte, 0, 32)
		for _, part := range f {
			out = append(out, resolve(part)...)
		}
		return string(out)
	case spanFragment:
		return f.open + resolve(f.inner) + f.close
	default:
		return ""
	}
}
