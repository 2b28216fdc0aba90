package vectorspace

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits raw text into normalized terms. It lowercases, applies
// Unicode NFC so composed and decomposed accents compare equal, extracts
// runs of letters and digits, and drops single characters and stop words.
type Tokenizer struct {
	stopWords map[string]struct{}
}

// NewTokenizer returns a Tokenizer with the given stop word set. A nil set
// disables stop word filtering.
func NewTokenizer(stopWords map[string]struct{}) *Tokenizer {
	return &Tokenizer{stopWords: stopWords}
}

// Tokenize returns the terms of text in order of appearance, duplicates
// included.
func (t *Tokenizer) Tokenize(text string) []string {
	normalized := norm.NFC.String(strings.ToLower(text))

	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		if len([]rune(tok)) < 2 {
			return
		}
		if _, skip := t.stopWords[tok]; skip {
			return
		}
		tokens = append(tokens, tok)
	}

	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}
