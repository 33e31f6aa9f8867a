package match

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stopwords is the closed list of function words dropped from keyword sets.
// Membership is fixed; edits change every score, so keep them deliberate.
//
// v1: 28 entries.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "to": {}, "is": {}, "it": {}, "of": {},
	"in": {}, "for": {}, "on": {}, "with": {}, "as": {}, "by": {}, "at": {},
	"that": {}, "this": {}, "was": {}, "were": {}, "be": {}, "are": {},
	"from": {}, "or": {}, "and": {}, "we're": {}, "our": {}, "we": {},
	"they": {}, "us": {},
}

// punctuation is the ASCII punctuation set removed before splitting.
//
// v1: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var stripPunctuation = strings.NewReplacer(punctuationPairs()...)

func punctuationPairs() []string {
	pairs := make([]string, 0, 2*len(punctuation))
	for _, r := range punctuation {
		pairs = append(pairs, string(r), "")
	}
	return pairs
}

// KeywordSet is a set of normalized tokens.
type KeywordSet map[string]struct{}

// Has reports whether tok is in the set.
func (s KeywordSet) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Sorted returns the tokens in lexical order.
func (s KeywordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Tokenize lowercases text, strips ASCII punctuation, splits on whitespace and drops
// stopwords. Empty or whitespace-only text yields an empty set.
func Tokenize(text string) KeywordSet {
	text = stripPunctuation.Replace(lower(text))
	out := make(KeywordSet)
	for _, tok := range strings.Fields(text) {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		out[tok] = struct{}{}
	}
	return out
}

// lower applies full Unicode lowercasing. A Caser keeps state, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
