package extract

import (
	"regexp"
	"strings"
)

// Heading labels located by fuzzy match inside a person's section.
const (
	politicalFirst = "Political"
	privateFirst   = "Private"
	careerSecond   = "Career"
	addressLabel   = "Address"
)

var (
	// headerRe marks the start of the next person's section: a line
	// beginning with one or more uppercase letters followed by a comma.
	headerRe = regexp.MustCompile(`(?m)^[A-Z]+,`)

	wordRe = regexp.MustCompile(`\S+`)
)

// Excerpt holds the career text attributed to one matched name. Either field
// may be empty.
type Excerpt struct {
	Political string
	Private   string
}

// CareerExcerpts slices the bio document at the first word-boundary
// occurrence of bioName and extracts the Political Career and Private Career
// passages from that section. When the name recurs later in the document the
// first occurrence wins.
func CareerExcerpts(bioText, bioName string) Excerpt {
	section, ok := personSection(bioText, bioName)
	if !ok {
		return Excerpt{}
	}

	// No political heading means both excerpts stay empty regardless of
	// any private or address heading in the section.
	_, polContent, ok := findHeading(section, politicalFirst, careerSecond)
	if !ok {
		return Excerpt{}
	}
	afterPolitical := section[polContent:]

	privHead, privContent, privOK := findHeading(afterPolitical, privateFirst, careerSecond)
	if !privOK {
		return Excerpt{Political: cleanExcerpt(afterPolitical)}
	}

	political := afterPolitical[:privHead]
	privateSpan := afterPolitical[privContent:]
	if addrHead, _, addrOK := findWord(privateSpan, addressLabel); addrOK {
		privateSpan = privateSpan[:addrHead]
	}

	return Excerpt{
		Political: cleanExcerpt(political),
		Private:   cleanExcerpt(privateSpan),
	}
}

// personSection returns the slice of bioText from the first word-boundary
// occurrence of bioName to the next all-caps header line or end of document.
func personSection(bioText, bioName string) (string, bool) {
	if bioName == "" {
		return "", false
	}
	anchorRe, err := regexp.Compile(`\b` + regexp.QuoteMeta(bioName) + `\b`)
	if err != nil {
		return "", false
	}
	loc := anchorRe.FindStringIndex(bioText)
	if loc == nil {
		return "", false
	}

	end := len(bioText)
	if m := headerRe.FindStringIndex(bioText[loc[1]:]); m != nil {
		end = loc[1] + m[0]
	}
	return bioText[loc[0]:end], true
}

// findHeading locates a two-word heading by fuzzy match at the phrase
// threshold, falling back to the first word alone at the stricter word
// threshold. It returns the byte offset of the heading start and of the
// content following it.
func findHeading(section, first, second string) (headStart, contentStart int, ok bool) {
	words := wordRe.FindAllStringIndex(section, -1)

	for i := 0; i+1 < len(words); i++ {
		w1 := section[words[i][0]:words[i][1]]
		w2 := section[words[i+1][0]:words[i+1][1]]
		if wordsMatch(w1, first, PhraseThreshold) && wordsMatch(w2, second, PhraseThreshold) {
			return words[i][0], words[i+1][1], true
		}
	}

	for _, w := range words {
		if wordsMatch(section[w[0]:w[1]], first, WordThreshold) {
			return w[0], w[1], true
		}
	}
	return 0, 0, false
}

// findWord locates a single-word heading at the word threshold.
func findWord(section, label string) (headStart, contentStart int, ok bool) {
	for _, w := range wordRe.FindAllStringIndex(section, -1) {
		if wordsMatch(section[w[0]:w[1]], label, WordThreshold) {
			return w[0], w[1], true
		}
	}
	return 0, 0, false
}

// cleanExcerpt trims an excerpt, strips a leading colon left over from the
// heading label, and removes embedded page-marker blocks.
func cleanExcerpt(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ":")
	s = RemovePageMarkers(s)
	return strings.TrimSpace(s)
}
