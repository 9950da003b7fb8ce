// Package wordlists provides the curated term lists the scoring and emphasis
// stages depend on: stopwords, the domain keyword whitelist, synonym groups,
// role keyword sets, and the bolding allow/deny lists. Lists are loaded once
// and treated as read-only; components receive a *Lists rather than reaching
// for package globals so tests can substitute alternate lists.
package wordlists

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

//go:embed defaults.json
var defaultsRaw []byte

// Lists holds every curated term list. The exported fields mirror the JSON
// document; derived lookup sets are built once at load time.
type Lists struct {
	Stopwords        []string            `json:"stopwords"`
	BigramStopwords  []string            `json:"bigram_stopwords"`
	TrigramStopwords []string            `json:"trigram_stopwords"`
	DomainKeywords   []string            `json:"domain_keywords"`
	Synonyms         map[string][]string `json:"synonyms"`
	RoleKeywords     map[string][]string `json:"role_keywords"`
	PriorityBold     []string            `json:"priority_bold"`
	NeverBold        []string            `json:"never_bold"`
	SoftLeadIns      []string            `json:"soft_lead_ins"`

	stopSet        map[string]struct{}
	bigramStopSet  map[string]struct{}
	trigramStopSet map[string]struct{}
	domainSet      map[string]struct{}
	neverBoldSet   map[string]struct{}
}

// Default returns the built-in lists parsed from the embedded defaults.
func Default() *Lists {
	lists, err := parse(defaultsRaw)
	if err != nil {
		// The embedded document is fixed at build time; a parse failure is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("wordlists: embedded defaults are invalid: %v", err))
	}
	return lists
}

// Load reads an alternate lists document from a JSON file. Any list omitted
// from the file falls back to the embedded default for that list.
func Load(path string) (*Lists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlists file %s: %w", path, err)
	}

	lists := Default()
	if err := json.Unmarshal(data, lists); err != nil {
		return nil, fmt.Errorf("failed to parse wordlists JSON: %w", err)
	}
	lists.buildSets()
	return lists, nil
}

func parse(data []byte) (*Lists, error) {
	var lists Lists
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, err
	}
	lists.buildSets()
	return &lists, nil
}

func (l *Lists) buildSets() {
	l.stopSet = toSet(l.Stopwords)
	l.bigramStopSet = toSet(l.BigramStopwords)
	l.trigramStopSet = toSet(l.TrigramStopwords)
	l.domainSet = toSet(l.DomainKeywords)
	l.neverBoldSet = make(map[string]struct{}, len(l.NeverBold))
	for _, term := range l.NeverBold {
		l.neverBoldSet[strings.ToLower(term)] = struct{}{}
	}
}

func toSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	return set
}

// IsStopword reports whether token is in the unigram stopword list.
func (l *Lists) IsStopword(token string) bool {
	_, ok := l.stopSet[token]
	return ok
}

// IsBigramStopword reports whether token is excluded from bigram positions.
func (l *Lists) IsBigramStopword(token string) bool {
	_, ok := l.bigramStopSet[token]
	return ok
}

// IsTrigramStopword reports whether token is excluded from trigram edge positions.
func (l *Lists) IsTrigramStopword(token string) bool {
	_, ok := l.trigramStopSet[token]
	return ok
}

// IsDomainKeyword reports whether phrase (lowercase) is on the curated domain list.
func (l *Lists) IsDomainKeyword(phrase string) bool {
	_, ok := l.domainSet[phrase]
	return ok
}

// IsNeverBold reports whether term is on the emphasis denylist (case-insensitive).
func (l *Lists) IsNeverBold(term string) bool {
	_, ok := l.neverBoldSet[strings.ToLower(term)]
	return ok
}

// HasSoftLeadIn reports whether text (after leading whitespace) begins with a
// soft/leadership lead-in phrase, which exempts the bullet from emphasis.
func (l *Lists) HasSoftLeadIn(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, prefix := range l.SoftLeadIns {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// SynonymGroup returns the canonical term and its synonym list for any term
// that participates in a synonym group, or ("", nil) when it does not.
func (l *Lists) SynonymGroup(term string) (string, []string) {
	lower := strings.ToLower(term)
	if syns, ok := l.Synonyms[lower]; ok {
		return lower, syns
	}
	for canonical, syns := range l.Synonyms {
		for _, s := range syns {
			if s == lower {
				return canonical, syns
			}
		}
	}
	return "", nil
}
