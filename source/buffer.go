package source

import (
	"fmt"
	"io"
	"strings"
)

// lineState is the three-state buffer from spec.md §4.5: EMPTY means
// nothing has been emitted yet, CONTENT means the most recent emission was
// a real (non-blank) line, FLUSHED(blank) means the most recent emission
// was a blank separator.
type lineState int

const (
	lineEmpty lineState = iota
	lineContent
	lineBlank
)

type emittedLine struct {
	indent string
	frags  []Sourcelike
	blank  bool
}

type emittedTable struct {
	indent string
	rows   [][]Sourcelike
}

// entry is either an emittedLine or an emittedTable.
type entry interface{ isEntry() }

func (emittedLine) isEntry()  {}
func (emittedTable) isEntry() {}

// Buffer is the append-only emit engine described in spec.md §4.2. All
// resolution of Name fragments is deferred to Render, which must be
// called only after every naming.Namer referenced by an emitted fragment
// has been sealed.
type Buffer struct {
	indentUnit string
	depth      int
	entries    []entry
	state      lineState
}

// NewBuffer constructs a Buffer using indentUnit for one level of
// indentation (two spaces if indentUnit is empty).
func NewBuffer(indentUnit string) *Buffer {
	if indentUnit == "" {
		indentUnit = "  "
	}
	return &Buffer{indentUnit: indentUnit}
}

func (b *Buffer) currentIndent() string {
	return strings.Repeat(b.indentUnit, b.depth)
}

// EmitLine concatenates frags, prefixes the current indentation, and
// pushes the result as a finished line. Calling EmitLine with no
// arguments emits a blank line.
func (b *Buffer) EmitLine(frags ...Sourcelike) {
	blank := len(frags) == 0
	b.entries = append(b.entries, emittedLine{indent: b.currentIndent(), frags: frags, blank: blank})
	if blank {
		b.state = lineBlank
	} else {
		b.state = lineContent
	}
}

// Indent pushes one indentation unit, invokes f, then pops it.
func (b *Buffer) Indent(f func()) {
	b.depth++
	f()
	b.depth--
}

// EmitBlock emits header, indents for f, then emits footer. Used for
// every scoped construct (class bodies, method bodies, blocks).
func (b *Buffer) EmitBlock(header Sourcelike, f func(), footer Sourcelike) {
	b.EmitLine(header)
	b.Indent(f)
	b.EmitLine(footer)
}

// EmitTable emits rows as columns aligned to the widest resolved cell in
// each column. Column widths are computed during Render, once Name
// resolution is possible.
func (b *Buffer) EmitTable(rows [][]Sourcelike) {
	if len(rows) == 0 {
		return
	}
	b.entries = append(b.entries, emittedTable{indent: b.currentIndent(), rows: rows})
	b.state = lineContent
}

// EnsureBlankLine emits a blank line unless the previous emission was
// already blank (or nothing has been emitted yet).
func (b *Buffer) EnsureBlankLine() {
	if b.state == lineBlank || b.state == lineEmpty {
		return
	}
	b.EmitLine()
}

// BlankLinePolicy controls spacing between consecutive named-type
// emissions, per spec.md §4.2.
type BlankLinePolicy int

const (
	// BlankLineNone emits no separator between items.
	BlankLineNone BlankLinePolicy = iota
	// BlankLineLeading emits a blank line before the first item only.
	BlankLineLeading
	// BlankLineLeadingAndInterposing emits a blank line before the first
	// item and between every pair of consecutive items.
	BlankLineLeadingAndInterposing
)

// EmitSeparator applies policy before the index-th (0-based) item in a
// sequence of named-type emissions. BlankLineLeading only separates the
// first item from whatever preceded it; BlankLineLeadingAndInterposing
// additionally inserts a blank line between every pair of items.
func (b *Buffer) EmitSeparator(policy BlankLinePolicy, index int) {
	switch policy {
	case BlankLineLeading:
		if index == 0 {
			b.EnsureBlankLine()
		}
	case BlankLineLeadingAndInterposing:
		b.EnsureBlankLine()
	}
}

// EmitCommentLines emits lines as a comment block in the target's style:
// prefix precedes every line (e.g. "# " or "// "); if open/close are
// non-empty, the block starts with open and ends with close instead
// (e.g. "/*" ... "*/"), with prefix applied to each inner line.
func EmitCommentLines(b *Buffer, lines []string, prefix, open, close string) {
	if open != "" {
		b.EmitLine(Lit(open))
	}
	for _, l := range lines {
		b.EmitLine(Lit(prefix + l))
	}
	if close != "" {
		b.EmitLine(Lit(close))
	}
}

// Render resolves every fragment and writes the finished source text to w.
// It must only be called after every Namer referenced transitively by the
// buffer's fragments has been sealed; Name.String panics otherwise.
func (b *Buffer) Render(w io.Writer) error {
	for _, e := range b.entries {
		switch v := e.(type) {
		case emittedLine:
			if v.blank {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
				continue
			}
			text := v.indent
			for _, f := range v.frags {
				text += resolve(f)
			}
			if _, err := fmt.Fprintln(w, text); err != nil {
				return err
			}
		case emittedTable:
			if err := renderTable(w, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderTable(w io.Writer, t emittedTable) error {
	resolved := make([][]string, len(t.rows))
	widths := map[int]int{}
	for i, row := range t.rows {
		resolved[i] = make([]string, len(row))
		for j, cell := range row {
			s := resolve(cell)
			resolved[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}
	for _, row := range resolved {
		var b strings.Builder
		b.WriteString(t.indent)
		for j, cell := range row {
			if j == len(row)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[j]-len(cell)+1))
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// String renders the buffer to a string, for tests and callers that don't
// need streaming output. It panics under the same conditions as Render.
func (b *Buffer) String() string {
	var sb strings.Builder
	if err := b.Render(&sb); err != nil {
		panic(err)
	}
	return sb.String()
}
