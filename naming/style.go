package naming

import "strings"

// StyleFn recases one Word. The five policies required by spec.md §4.1
// are constructors below; a target picks one for the first word of a name
// and another for every subsequent word.
type StyleFn func(Word) string

// FirstWordStyle lowercases the word unconditionally. Used as the leading
// word's style in camelCase-flavored namers.
func FirstWordStyle(w Word) string {
	return strings.ToLower(w.Text)
}

// WordStyle title-cases the word, except that acronym words are upper-
// cased instead of title-cased. Used as the non-leading-word style in both
// camelCase and PascalCase namers.
func WordStyle(w Word) string {
	if w.IsAcronym {
		return strings.ToUpper(w.Text)
	}
	return titleCase(w.Text)
}

// FirstUpperWordStyle is WordStyle applied to the leading word; it is a
// distinct policy because a namer may want the leading word capitalized
// (PascalCase) while a sibling namer wants it lowercased (camelCase) using
// the identical acronym-awareness rule.
func FirstUpperWordStyle(w Word) string {
	return WordStyle(w)
}

// AllUpperWordStyle upper-cases the entire word regardless of acronym
// status. Used for SCREAMING_SNAKE-style namers.
func AllUpperWordStyle(w Word) string {
	return strings.ToUpper(w.Text)
}

// AllLowerWordStyle lowercases the entire word regardless of acronym
// status. Used for snake_case and kebab-case namers, where separators
// already carry the word boundary.
func AllLowerWordStyle(w Word) string {
	return strings.ToLower(w.Text)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	head := strings.ToUpper(string(r[0]))
	tail := strings.ToLower(string(r[1:]))
	return head + tail
}

// CombineWords joins words using firstWordStyle for the first word and
// restWordStyle for every subsequent word, with separator between them,
// then legalizes the joined result. An empty words slice is treated as a
// single placeholder word, matching SplitWords' own empty-input fallback.
func CombineWords(words []Word, legalizer Legalizer, firstWordStyle, restWordStyle StyleFn, separator string) string {
	if len(words) == 0 {
		words = []Word{{Text: "word"}}
	}
	parts := make([]string, len(words))
	for i, w := range words {
		if i == 0 {
			parts[i] = firstWordStyle(w)
		} else {
			parts[i] = restWordStyle(w)
		}
	}
	return legalizer.Legalize(strings.Join(parts, separator))
}
