package index

import (
	"strings"
	"unicode"
)

// diacriticFolds maps the accented runes that show up in guide content to
// their base letters. Folding happens after lowercasing.
var diacriticFolds = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'ç': 'c',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ñ': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y',
	'æ': 'a', 'œ': 'o',
	'ß': 's',
}

// Tokenize splits text into normalized tokens: lowercased, diacritics
// folded, punctuation treated as a boundary. No stop words are removed and
// single-character tokens are kept; domain terms like "BD18" matter in a
// small curated catalog.
//
// Tokenize is pure and locale-independent: the same input always yields the
// same token sequence.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range strings.ToLower(text) {
		if folded, ok := diacriticFolds[r]; ok {
			r = folded
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}
