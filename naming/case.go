// Package naming turns the proposed names attached to type-graph nodes
// into the concrete identifiers a target language actually emits: splitting
// words, legalizing characters, applying a per-namespace style, and
// disambiguating collisions deterministically.
package naming

import "strings"

// splitWords first breaks s on '_', '-', '.', and whitespace into raw
// tokens, then further splits each token at internal uppercase letters —
// unless the token is screaming-case (every letter already uppercase), in
// which case it is kept whole. That second rule is what lets "MY_FIELD"
// keep "MY" as a single word while "HTTPResponse", having no delimiter to
// mark it as screaming-case, splits at every capital: "H", "T", "T", "P",
// "Response".
func splitWords(s string) []string {
	var words []string
	for _, token := range splitOnDelimiters(s) {
		if token == "" {
			continue
		}
		if isScreamingCase(token) {
			words = append(words, token)
			continue
		}
		words = append(words, splitOnUppercase(token)...)
	}
	return words
}

func splitOnDelimiters(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' ' || r == '\t'
	})
}

// isScreamingCase reports whether every letter in token is uppercase. A
// token with no letters at all (pure digits) is not considered screaming
// case, since there is nothing to preserve by keeping it whole.
func isScreamingCase(token string) bool {
	sawLetter := false
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if isUpper(r) {
			sawLetter = true
		}
	}
	return sawLetter
}

func splitOnUppercase(token string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	for i, r := range token {
		if i > 0 && isUpper(r) {
			flush()
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func lowerFirst(w string) string {
	if w == "" {
		return w
	}
	return strings.ToLower(w[:1]) + strings.ToLower(w[1:])
}

func upperFirst(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

// toCamelCase joins words with the first word lowercased and every
// subsequent word capitalized: "my_field" -> "myField".
func toCamelCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	out := lowerFirst(words[0])
	for _, w := range words[1:] {
		out += upperFirst(w)
	}
	return out
}

// toPascalCase joins words with every word capitalized: "my_field" -> "MyField".
func toPascalCase(s string) string {
	words := splitWords(s)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// toSnakeCase joins words, lowercased, with underscores.
func toSnakeCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// ToSnakeCase exports the snake_case transform for callers outside this
// package: render.Render uses it to derive a canonical output file-name
// stem from a graph's single top-level type name (spec.md §6).
func ToSnakeCase(s string) string {
	return toSnakeCase(s)
}

// toKebabCase joins words, lowercased, with hyphens.
func toKebabCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// applyCaseTransform applies one of "camel", "pascal", "snake", "kebab", or
// "preserve" (the default for an unrecognized or empty style) to s.
func applyCaseTransform(s, caseStyle string) string {
	switch caseStyle {
	case "camel":
		return toCamelCase(s)
	case "pascal":
		return toPascalCase(s)
	case "snake":
		return toSnakeCase(s)
	case "kebab":
		return toKebabCase(s)
	default:
		return s
	}
}
