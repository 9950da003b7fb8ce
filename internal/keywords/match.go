package keywords

import (
	"regexp"
	"strings"
)

// TermInText reports whether term occurs in text. Both arguments are expected
// to be lowercase. Terms of one or two characters are matched on word
// boundaries so that e.g. "r" does not match inside "recovery"; longer terms
// use plain substring matching.
func TermInText(term, text string) bool {
	if term == "" {
		return false
	}
	if len(term) <= 2 {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			return false
		}
		return re.MatchString(text)
	}
	return strings.Contains(text, term)
}

// FuzzyOverlap reports whether either string contains the other,
// case-insensitively. The bidirectional check tolerates both abbreviation
// ("bi" vs "power bi") and expansion; it can false-positive on short common
// substrings, which is acceptable for the short curated lists it is used with.
func FuzzyOverlap(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	al, bl := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(al, bl) || strings.Contains(bl, al)
}

// countOccurrences counts non-overlapping occurrences of term in text,
// using the same boundary rules as TermInText for short terms.
func countOccurrences(term, text string) int {
	if term == "" {
		return 0
	}
	if len(term) <= 2 {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			return 0
		}
		return len(re.FindAllStringIndex(text, -1))
	}
	return strings.Count(text, term)
}
