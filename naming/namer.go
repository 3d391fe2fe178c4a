package naming

import (
	"fmt"
	"sort"
)

type namerState int

const (
	stateOpen namerState = iota
	stateSealed
)

// Name is a handle to an identifier whose final spelling isn't known until
// its owning Namer is sealed. Source rope fragments hold a *Name rather
// than a string so that forward references (a class referring to a
// sibling that is emitted later) resolve correctly; calling String before
// the Namer seals is a programming error, since the value isn't stable
// yet.
type Name struct {
	namer    *Namer
	proposed string
	base     string
	order    int
	resolved string
}

// ProposedName is the raw, unstyled name this handle was created from —
// used as the fallback key when a target needs to recover the original
// input label (e.g. the JSON key a property name was derived from).
func (n *Name) ProposedName() string {
	return n.proposed
}

// String returns the resolved identifier. It panics if the owning Namer
// has not been sealed: two-phase resolution means no Name is readable
// until every Namer in the graph has finished allocating.
func (n *Name) String() string {
	if n.namer.state != stateSealed {
		panic(fmt.Sprintf("naming: Name(%q) read before its Namer was sealed", n.proposed))
	}
	return n.resolved
}

// Namer owns one namespace: a style (via CombineWords' word-style
// functions), a legalizer, a set of forbidden strings, and the
// OPEN-then-SEALED state machine described in spec.md §4.5. All Name
// handles must be allocated with Propose while the Namer is OPEN;
// Seal runs the deterministic disambiguation pass and flips it read-only.
type Namer struct {
	legalizer      Legalizer
	firstWordStyle StyleFn
	restWordStyle  StyleFn
	separator      string
	acronyms       map[string]bool

	forbidden map[string]bool
	state     namerState
	names     []*Name
}

// NewNamer constructs a Namer for one namespace. forbidden is the initial
// set of strings no allocated Name may resolve to (reserved words, and
// optionally the global type namespace — see ForbidNames).
func NewNamer(legalizer Legalizer, firstWordStyle, restWordStyle StyleFn, separator string, forbidden []string) *Namer {
	n := &Namer{
		legalizer:      legalizer,
		firstWordStyle: firstWordStyle,
		restWordStyle:  restWordStyle,
		separator:      separator,
		forbidden:      make(map[string]bool, len(forbidden)),
	}
	for _, w := range forbidden {
		n.forbidden[w] = true
	}
	return n
}

// WithAcronyms installs a lowercase-token acronym dictionary (see
// DefaultAcronyms) consulted when splitting proposed names, and returns
// the Namer for chaining.
func (n *Namer) WithAcronyms(acronyms map[string]bool) *Namer {
	n.acronyms = acronyms
	return n
}

// ForbidNames adds more strings to the forbidden set. Must be called
// before Seal.
func (n *Namer) ForbidNames(names ...string) {
	if n.state == stateSealed {
		panic("naming: ForbidNames called on a sealed Namer")
	}
	for _, name := range names {
		n.forbidden[name] = true
	}
}

// Propose allocates a Name for rawName. order determines disambiguation
// priority when two proposed names collide after styling: the entity with
// the larger order is considered "lexically later" and receives the
// numeric suffix, per spec.md §4.1. Callers should pass graph visitation
// order (e.g. a type's node ID, or a property's declaration index).
func (n *Namer) Propose(rawName string, order int) *Name {
	if n.state == stateSealed {
		panic("naming: Propose called on a sealed Namer")
	}
	words := SplitWordsWithAcronyms(rawName, n.acronyms)
	base := CombineWords(words, n.legalizer, n.firstWordStyle, n.restWordStyle, n.separator)
	name := &Name{namer: n, proposed: rawName, base: base, order: order}
	n.names = append(n.names, name)
	return name
}

// Seal runs disambiguation in stable order and flips the Namer read-only.
// Calling Seal more than once is a no-op.
func (n *Namer) Seal() {
	if n.state == stateSealed {
		return
	}
	ordered := make([]*Name, len(n.names))
	copy(ordered, n.names)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })

	used := make(map[string]bool, len(n.forbidden)+len(ordered))
	for w := range n.forbidden {
		used[w] = true
	}
	for _, name := range ordered {
		candidate := name.base
		suffix := 2
		for used[candidate] {
			candidate = fmt.Sprintf("%s_%d", name.base, suffix)
			suffix++
		}
		name.resolved = candidate
		used[candidate] = true
	}
	n.state = stateSealed
}
