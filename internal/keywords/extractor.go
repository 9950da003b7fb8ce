// Package keywords turns raw job-description text into a ranked, deterministic
// set of candidate keywords and phrases for the downstream scoring stages.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/gopinath/resume-tailor/internal/wordlists"
)

// Boost factors applied to phrase weights.
const (
	// domainBoost multiplies the weight of phrases on the curated domain list.
	domainBoost = 2.0
	// lengthBoostPerWord rewards multi-word phrases over unigrams: a bigram
	// gets 1.25x, a trigram 1.5x. Specific phrases beat their fragments.
	lengthBoostPerWord = 0.25

	minUnigramLen   = 3
	minGramTokenLen = 3
)

var (
	tokenPattern   = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9+#.\-]{1,}\b`)
	acronymPattern = regexp.MustCompile(`\b[A-Z]{2,6}\b`)
)

// Keyword is one extracted phrase with its weight and the byte offset of its
// first occurrence in the source text. FirstPos breaks weight ties so repeated
// runs over the same JD produce identical orderings.
type Keyword struct {
	Phrase   string
	Weight   float64
	FirstPos int
}

// Extractor produces ranked keywords from JD text. It is a pure function of
// the input text and the injected word lists: no I/O, no randomness.
type Extractor struct {
	lists *wordlists.Lists
}

// NewExtractor creates an Extractor backed by the given word lists.
func NewExtractor(lists *wordlists.Lists) *Extractor {
	return &Extractor{lists: lists}
}

type token struct {
	text string
	pos  int
}

// Extract tokenizes jdText and returns unigram, bigram, and trigram phrases
// merged with curated domain-list matches and captured acronyms, ordered by
// descending weight with first-occurrence position as the tiebreak.
// Empty or unusable input yields an empty (non-nil error free) result.
func (e *Extractor) Extract(jdText string) []Keyword {
	if strings.TrimSpace(jdText) == "" {
		return nil
	}

	lower := strings.ToLower(jdText)
	tokens := tokenize(lower)

	type entry struct {
		count    int
		firstPos int
		words    int
	}
	seen := make(map[string]*entry)

	record := func(phrase string, pos, words int) {
		if ent, ok := seen[phrase]; ok {
			ent.count++
			if pos < ent.firstPos {
				ent.firstPos = pos
			}
			return
		}
		seen[phrase] = &entry{count: 1, firstPos: pos, words: words}
	}

	// Unigrams: stopwords and short tokens dropped.
	for _, t := range tokens {
		if len(t.text) < minUnigramLen || e.lists.IsStopword(t.text) {
			continue
		}
		record(t.text, t.pos, 1)
	}

	// Bigrams: windowed in document order.
	for i := 0; i+1 < len(tokens); i++ {
		t1, t2 := tokens[i], tokens[i+1]
		if e.lists.IsBigramStopword(t1.text) || e.lists.IsBigramStopword(t2.text) {
			continue
		}
		if len(t1.text) < minGramTokenLen || len(t2.text) < minGramTokenLen {
			continue
		}
		record(t1.text+" "+t2.text, t1.pos, 2)
	}

	// Trigrams: edge tokens must not be stopwords.
	for i := 0; i+2 < len(tokens); i++ {
		t1, t2, t3 := tokens[i], tokens[i+1], tokens[i+2]
		if e.lists.IsTrigramStopword(t1.text) || e.lists.IsTrigramStopword(t3.text) {
			continue
		}
		if len(t1.text) < minGramTokenLen || len(t2.text) < minGramTokenLen || len(t3.text) < minGramTokenLen {
			continue
		}
		record(t1.text+" "+t2.text+" "+t3.text, t1.pos, 3)
	}

	// Curated domain terms, longest first so specific phrases register before
	// their fragments. Occurrence counts merge with the n-gram stream.
	domainTerms := make([]string, len(e.lists.DomainKeywords))
	copy(domainTerms, e.lists.DomainKeywords)
	sort.Slice(domainTerms, func(i, j int) bool {
		if len(domainTerms[i]) != len(domainTerms[j]) {
			return len(domainTerms[i]) > len(domainTerms[j])
		}
		return domainTerms[i] < domainTerms[j]
	})
	for _, term := range domainTerms {
		n := countOccurrences(term, lower)
		if n == 0 {
			continue
		}
		pos := strings.Index(lower, term)
		if pos < 0 {
			pos = 0
		}
		words := strings.Count(term, " ") + 1
		if ent, ok := seen[term]; ok {
			// Already captured by the n-gram pass; keep the earlier position.
			if pos < ent.firstPos {
				ent.firstPos = pos
			}
		} else {
			seen[term] = &entry{count: n, firstPos: pos, words: words}
		}
	}

	// Capitalized acronyms from the original-cased text (AWS, ETL, ...).
	for _, loc := range acronymPattern.FindAllStringIndex(jdText, -1) {
		acr := strings.ToLower(jdText[loc[0]:loc[1]])
		if e.lists.IsStopword(acr) {
			continue
		}
		if _, ok := seen[acr]; !ok {
			seen[acr] = &entry{count: 1, firstPos: loc[0], words: 1}
		}
	}

	result := make([]Keyword, 0, len(seen))
	for phrase, ent := range seen {
		weight := float64(ent.count)
		if e.lists.IsDomainKeyword(phrase) {
			weight *= domainBoost
		}
		weight *= 1.0 + lengthBoostPerWord*float64(ent.words-1)
		result = append(result, Keyword{Phrase: phrase, Weight: weight, FirstPos: ent.firstPos})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Weight != result[j].Weight {
			return result[i].Weight > result[j].Weight
		}
		if result[i].FirstPos != result[j].FirstPos {
			return result[i].FirstPos < result[j].FirstPos
		}
		return result[i].Phrase < result[j].Phrase
	})

	return result
}

func tokenize(lower string) []token {
	locs := tokenPattern.FindAllStringIndex(lower, -1)
	tokens := make([]token, 0, len(locs))
	for _, loc := range locs {
		tokens = append(tokens, token{text: lower[loc[0]:loc[1]], pos: loc[0]})
	}
	return tokens
}

// Phrases returns just the phrase strings of kws, in order.
func Phrases(kws []Keyword) []string {
	out := make([]string, len(kws))
	for i, kw := range kws {
		out[i] = kw.Phrase
	}
	return out
}

// WeightMap returns a phrase-to-weight lookup for kws.
func WeightMap(kws []Keyword) map[string]float64 {
	m := make(map[string]float64, len(kws))
	for _, kw := range kws {
		m[kw.Phrase] = kw.Weight
	}
	return m
}
