// Package extract locates member names and career sections in OCR'd
// legislative-record text.
package extract

import (
	"regexp"
	"strings"
)

var (
	yearRe = regexp.MustCompile(`\b\d{4}\b`)

	// nameRe captures an optional HON honorific followed by a run of
	// uppercase letters, spaces, periods and hyphens. RE2 has no
	// lookahead, so the terminating title word or newline is matched
	// non-capturing after a lazy name group instead.
	nameRe = regexp.MustCompile(`(?:\bHON\.?[ \t]+)?\b([A-Z][A-Z .\-]*?)[ \t]*(?:Minister|Premier|Deputy|\n|$)`)

	// bioNameRe captures capitalized header-like sequences from biography
	// text: SURNAME, FORENAME headers and HON-prefixed name runs at line
	// starts. Single all-caps words are ignored.
	bioNameRe = regexp.MustCompile(`(?m)^(?:HON\.?[ \t]+)?([A-Z][A-Z.'\-]+(?:,?[ \t]+[A-Z][A-Z.'\-]+)+)`)
)

// Names extracts member names from a names-list document, in document order.
// Everything up to and including the second 4-digit year token is skipped
// (the document header); duplicates are preserved.
func Names(text string) []string {
	body := stripHeader(text)

	var names []string
	for _, m := range nameRe.FindAllStringSubmatch(body, -1) {
		name := normalizeName(m[1])
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// BioNames extracts candidate name headers from a biography document, in
// document order. These are matching targets only; they never become rows.
func BioNames(text string) []string {
	var names []string
	for _, m := range bioNameRe.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}
	return names
}

// stripHeader drops everything up to and including the second 4-digit year
// token. Documents with fewer than two year tokens pass through unchanged.
func stripHeader(text string) string {
	locs := yearRe.FindAllStringIndex(text, 2)
	if len(locs) < 2 {
		return text
	}
	return text[locs[1][1]:]
}

// normalizeName collapses runs of whitespace and strips trailing periods
// from each token: "JOHN  A. SMITH" becomes "JOHN A SMITH".
func normalizeName(raw string) string {
	fields := strings.Fields(raw)
	out := fields[:0]
	for _, f := range fields {
		f = strings.TrimRight(f, ".")
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}

// nameTokens splits a name into comparison tokens, dropping commas and
// trailing periods.
func nameTokens(name string) []string {
	fields := strings.Fields(name)
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,")
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// SplitName splits a normalized full name into a leading first name and the
// joined remainder as last name.
func SplitName(full string) (first, last string) {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
