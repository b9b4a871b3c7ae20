package extract

import (
	"regexp"
	"strings"
)

// TechnologyDetector matches a configured keyword list against posting
// text. Matching is case-insensitive and word-boundary aware: a short tag
// like "r" or "go" only matches as a standalone token, never inside "R&D",
// "HR" or "Django". The vocabulary comes from the taxonomy tables, so it
// can grow without touching this code.
type TechnologyDetector struct {
	keywords []string
	patterns []*regexp.Regexp
}

// Boundary characters: letters, digits and the symbol characters that glue
// tokens like "C++", "C#", "ci/cd" and "R&D" together. A keyword only
// matches when its neighbours are outside this set.
const tokenChars = `\pL\pN&+#`

func NewTechnologyDetector(keywords []string) *TechnologyDetector {
	detector := &TechnologyDetector{
		keywords: make([]string, 0, len(keywords)),
		patterns: make([]*regexp.Regexp, 0, len(keywords)),
	}
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		pattern, err := regexp.Compile(`(?i)(?:^|[^` + tokenChars + `])` + regexp.QuoteMeta(kw) + `(?:$|[^` + tokenChars + `])`)
		if err != nil {
			continue
		}
		detector.keywords = append(detector.keywords, kw)
		detector.patterns = append(detector.patterns, pattern)
	}
	return detector
}

// Detect returns the distinct matched tags in vocabulary order. A record
// may carry zero, one or many tags.
func (d *TechnologyDetector) Detect(text string) []string {
	if text == "" {
		return nil
	}
	var tags []string
	for i, pattern := range d.patterns {
		if pattern.MatchString(text) {
			tags = append(tags, d.keywords[i])
		}
	}
	return tags
}
