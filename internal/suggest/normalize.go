package suggest

import (
	"strings"
	"unicode"
)

// Normalize lower-cases an identifier and strips separators after splitting
// CamelCase, e.g. "MaxLength", "max_length" and "max-length" all become
// "maxlength".
func Normalize(s string) string {
	return strings.ToLower(strings.Join(tokenize(s), ""))
}

// tokenize splits a CamelCase, snake_case or kebab-case identifier.
//   - "minValue" -> ["min", "Value"]
//   - "XMLLayout" -> ["XML", "Layout"]
//   - "is_required" -> ["is", "required"]
func tokenize(s string) []string {
	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	// End of an acronym: "XMLLayout" splits before 'L'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
