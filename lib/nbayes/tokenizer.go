package nbayes

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var tokenRe = regexp.MustCompile(`[a-z0-9']+`)

// TokenSet is a set of unique tokens
type TokenSet map[string]struct{}

// Tokenize lowercases the text and returns the set of tokens found in it.
// Token is a maximal run of latin letters, digits and apostrophes. Everything else, including
// punctuation, emoji and non-latin letters, separates tokens and never becomes a part of one.
func Tokenize(text string) TokenSet {
	matches := tokenRe.FindAllString(strings.ToLower(text), -1)
	res := make(TokenSet, len(matches))
	for _, m := range matches {
		res[m] = struct{}{}
	}
	return res
}

// Has checks if the token is in the set
func (ts TokenSet) Has(token string) bool {
	_, ok := ts[token]
	return ok
}

// Len returns the number of tokens
func (ts TokenSet) Len() int { return len(ts) }

// Sorted returns tokens in lexical order
func (ts TokenSet) Sorted() []string {
	res := lo.Keys(ts)
	sort.Strings(res)
	return res
}
