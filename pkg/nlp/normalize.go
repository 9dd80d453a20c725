// Package nlp provides the text preprocessing and sentiment scoring used by
// the assistant pipeline. Everything here is stateless after construction.
package nlp

import (
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/bbalet/stopwords"
)

// Normalizer reduces raw text to a sequence of lemmatized content tokens.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// NewNormalizer loads the English lemma dictionary.
func NewNormalizer() (*Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &Normalizer{lemmatizer: lemmatizer}, nil
}

// Tokens lower-cases the text, strips punctuation, removes stopwords, drops
// non-alphabetic tokens, and lemmatizes what remains.
func (n *Normalizer) Tokens(text string) []string {
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, text)
	text = stopwords.CleanString(text, "en", false)

	tokens := make([]string, 0, 8)
	for _, token := range strings.Fields(text) {
		if !isAlpha(token) {
			continue
		}
		tokens = append(tokens, n.lemmatizer.Lemma(token))
	}
	return tokens
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}
