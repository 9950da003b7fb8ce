// Package emphasis chooses which substrings of a finalized bullet to flag for
// visual emphasis, subject to placement and count constraints.
package emphasis

import (
	"sort"
	"strings"

	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/wordlists"
)

// DefaultMaxSpans is the default cap on emphasized terms per bullet.
const DefaultMaxSpans = 2

// Span is one segment of a bullet's text. The spans returned by Annotate
// partition the input left to right, covering every character exactly once.
type Span struct {
	Text       string `json:"text"`
	Emphasized bool   `json:"emphasized"`
}

// Annotator selects emphasis spans using the curated priority and denylist
// terms. Identical inputs always produce identical span partitions.
type Annotator struct {
	lists    *wordlists.Lists
	maxSpans int
}

// NewAnnotator creates an Annotator. maxSpans <= 0 selects DefaultMaxSpans.
func NewAnnotator(lists *wordlists.Lists, maxSpans int) *Annotator {
	if maxSpans <= 0 {
		maxSpans = DefaultMaxSpans
	}
	return &Annotator{lists: lists, maxSpans: maxSpans}
}

type occurrence struct {
	start, end int
}

// Annotate partitions bulletText into plain and emphasized spans.
//
// Bullets opening with a soft/leadership lead-in are exempt and come back as
// one plain span: bolding social framing reads as tone-deaf. Candidate terms
// come from the priority list minus the never-bold denylist; when
// matchedKeywords is non-empty, only terms that fuzzily overlap a matched
// keyword qualify. Terms are tried longest first, only the first half of the
// text is eligible, at most maxSpans terms are emphasized, and a segment
// already emphasized is never re-split by a later term. Matching is
// case-insensitive; the output preserves the original casing.
func (a *Annotator) Annotate(bulletText string, matchedKeywords []string) []Span {
	if bulletText == "" {
		return nil
	}
	if a.lists.HasSoftLeadIn(bulletText) {
		return []Span{{Text: bulletText}}
	}

	candidates := a.candidateTerms(matchedKeywords)
	lower := strings.ToLower(bulletText)
	midpoint := len(bulletText) / 2

	found := make([]occurrence, 0, len(candidates))
	for _, term := range candidates {
		idx := strings.Index(lower, strings.ToLower(term))
		if idx < 0 || idx >= midpoint {
			continue
		}
		found = append(found, occurrence{start: idx, end: idx + len(term)})
	}

	// Front-load: earlier occurrences win; on a shared start the longer term
	// (tried first above) stays ahead of its own substrings.
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].start != found[j].start {
			return found[i].start < found[j].start
		}
		return found[i].end > found[j].end
	})

	chosen := make([]occurrence, 0, a.maxSpans)
	for _, occ := range found {
		if len(chosen) >= a.maxSpans {
			break
		}
		if overlapsAny(occ, chosen) {
			continue
		}
		chosen = append(chosen, occ)
	}

	if len(chosen) == 0 {
		return []Span{{Text: bulletText}}
	}

	spans := make([]Span, 0, 2*len(chosen)+1)
	cursor := 0
	for _, occ := range chosen {
		if occ.start > cursor {
			spans = append(spans, Span{Text: bulletText[cursor:occ.start]})
		}
		spans = append(spans, Span{Text: bulletText[occ.start:occ.end], Emphasized: true})
		cursor = occ.end
	}
	if cursor < len(bulletText) {
		spans = append(spans, Span{Text: bulletText[cursor:]})
	}
	return spans
}

// candidateTerms filters the priority list against the denylist and, when
// matched keywords exist, against fuzzy keyword overlap, returning terms
// longest first.
func (a *Annotator) candidateTerms(matchedKeywords []string) []string {
	candidates := make([]string, 0, len(a.lists.PriorityBold))
	for _, term := range a.lists.PriorityBold {
		if a.lists.IsNeverBold(term) {
			continue
		}
		if len(matchedKeywords) > 0 && !overlapsKeyword(term, matchedKeywords) {
			continue
		}
		candidates = append(candidates, term)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) > len(candidates[j])
		}
		return candidates[i] < candidates[j]
	})
	return candidates
}

func overlapsKeyword(term string, matched []string) bool {
	for _, kw := range matched {
		if keywords.FuzzyOverlap(term, kw) {
			return true
		}
	}
	return false
}

func overlapsAny(occ occurrence, chosen []occurrence) bool {
	for _, c := range chosen {
		if occ.start < c.end && c.start < occ.end {
			return true
		}
	}
	return false
}
