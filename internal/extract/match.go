package extract

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Fuzzy thresholds: the minimum normalized similarity ratio required to
// accept a match. Two-word phrases use the lower threshold with each word
// independently required to clear it.
const (
	WordThreshold   = 0.8
	PhraseThreshold = 0.7
)

// Ratio returns a normalized edit-distance similarity in [0,1]. Identical
// strings score 1; strings with nothing in common score 0.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if n := len([]rune(b)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// wordsMatch reports whether two words clear the threshold. A first-letter
// pre-filter rejects cheap mismatches before the edit distance is computed.
func wordsMatch(a, b string, threshold float64) bool {
	if a == "" || b == "" {
		return false
	}
	if !strings.EqualFold(a[:1], b[:1]) {
		return false
	}
	return Ratio(a, b) >= threshold
}

// Associate binds names-list entries to bio names. The result has one
// element per entry: the bio name it bound to, or "" when nothing matched.
// Bio names are tried in document order; for each, the first unbound entry
// with a token match wins (first hit, not best score), and each entry binds
// at most one bio name.
func Associate(names, bioNames []string) []string {
	bound := make([]string, len(names))

	entryTokens := make([][]string, len(names))
	for i, name := range names {
		entryTokens[i] = nameTokens(name)
	}

	for _, bio := range bioNames {
		bioToks := nameTokens(bio)
		for i := range names {
			if bound[i] != "" {
				continue
			}
			if entryMatchesBio(entryTokens[i], bioToks) {
				bound[i] = bio
				break
			}
		}
	}
	return bound
}

// entryMatchesBio applies the two matching rules: a direct token match, or a
// nickname-table alternate of an entry token matching a bio token.
func entryMatchesBio(entryToks, bioToks []string) bool {
	for _, tok := range entryToks {
		for _, bt := range bioToks {
			if wordsMatch(tok, bt, WordThreshold) {
				return true
			}
		}
		alt, ok := Nickname(tok)
		if !ok {
			continue
		}
		for _, bt := range bioToks {
			if wordsMatch(alt, bt, WordThreshold) {
				return true
			}
		}
	}
	return false
}
