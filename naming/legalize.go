package naming

import "unicode/utf8"

// Legalizer holds a target's character rules for turning a combined,
// styled word string into a string that is actually legal as an
// identifier in that target: which codepoints may start an identifier,
// which may appear afterward, what illegal characters become, how a
// leading character that fails IsStart gets escaped, and the final
// fallback when nothing legal survives.
type Legalizer struct {
	IsStart  func(r rune) bool
	IsPart   func(r rune) bool
	Fallback string

	// EscapeStart rewrites a string whose first rune fails IsStart (most
	// commonly a leading digit) into a start-legal form. If nil, the
	// string is prefixed with an underscore.
	EscapeStart func(s string) string

	// Replace returns what a rune failing IsPart becomes (it may return ""
	// to drop the rune). If nil, the rune is replaced with an underscore.
	Replace func(r rune) string
}

// Legalize replaces every rune that fails IsPart (with Replace's result,
// or an underscore if Replace is nil), then escapes the result if its
// leading rune fails IsStart, falling back to Fallback if nothing is left.
func (l Legalizer) Legalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if l.IsPart(r) {
			out = append(out, r)
		} else if l.Replace != nil {
			out = append(out, []rune(l.Replace(r))...)
		} else {
			out = append(out, '_')
		}
	}
	result := string(out)
	if result == "" {
		return l.Fallback
	}

	first, _ := utf8.DecodeRuneInString(result)
	if !l.IsStart(first) {
		if l.EscapeStart != nil {
			result = l.EscapeStart(result)
		} else {
			result = "_" + result
		}
	}
	if result == "" {
		return l.Fallback
	}
	return result
}
