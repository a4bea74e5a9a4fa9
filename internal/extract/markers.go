package extract

import (
	"regexp"
	"strings"
)

var pageMarkerRe = regexp.MustCompile(`^=== Page \d+ ===$`)

// RemovePageMarkers drops every OCR page-marker line together with the two
// lines before it (blank + rule) and the two lines after it (rule + blank).
// Lines at those offsets are dropped unconditionally, even when OCR noise
// put real body text there.
func RemovePageMarkers(text string) string {
	lines := strings.Split(text, "\n")

	drop := make([]bool, len(lines))
	found := false
	for i, line := range lines {
		if !pageMarkerRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		found = true
		for j := i - 2; j <= i+2; j++ {
			if j >= 0 && j < len(lines) {
				drop[j] = true
			}
		}
	}
	if !found {
		return text
	}

	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		if !drop[i] {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
