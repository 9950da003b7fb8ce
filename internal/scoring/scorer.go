// Package scoring computes relevance scores for candidate bullets against an
// extracted JD keyword set, blending keyword weight, persisted frequency
// history, role-specific weights, recency, and past bullet performance.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/types"
	"github.com/gopinath/resume-tailor/internal/wordlists"
)

const (
	// Recency multipliers by job index (0 = most recent role).
	recencyBoostCurrent = 1.15
	recencyBoostSecond  = 1.00
	recencyBoostOlder   = 0.85

	// unseenKeywordWeight is the floor history weight for keywords with no
	// accumulated frequency record.
	unseenKeywordWeight = 0.01

	// roleBoostFactor scales the contribution of role keyword weights.
	roleBoostFactor = 0.2

	// performancePriorWeight blends a bullet's running average ATS score into
	// its base score as a small stabilizing prior.
	performancePriorWeight = 0.05

	// Performance multiplier shape. Bullets with fewer than
	// minSelectionsForHistory selections have no meaningful history yet.
	minSelectionsForHistory  = 2
	highATSRateBonus         = 0.15
	interviewBonus           = 0.10
	maxInterviewCredits      = 3
	offerBonus               = 0.20
	maxOfferCredits          = 2
	maxPerformanceMultiplier = 1.5
)

// History carries the persisted state that biases scoring. Any field may be
// nil, in which case its term contributes neutrally.
type History struct {
	// TFIDF maps keyword -> normalized weight from global KeywordFrequency.
	TFIDF map[string]float64
	// RoleWeights maps keyword -> accumulated weight for the JD's role type.
	RoleWeights map[string]float64
	// Performance maps bullet ID -> its performance record.
	Performance map[int64]types.BulletPerformance
}

// Scorer scores candidate text against an extracted keyword set. Given
// identical inputs and identical history it always returns identical scores.
type Scorer struct {
	lists *wordlists.Lists
	hist  History
}

// NewScorer creates a Scorer using the given word lists and history.
func NewScorer(lists *wordlists.Lists, hist History) *Scorer {
	return &Scorer{lists: lists, hist: hist}
}

// BulletScore is the scoring result for one bullet.
type BulletScore struct {
	Score   float64
	Matched []string
}

// ScoreBullet scores one bullet against the extracted keywords. jobIndex is
// the bullet's parent position in the experience list (0 = most recent) and
// drives the recency multiplier; pass 1 for project bullets so recency stays
// neutral.
// The result is finite and non-negative; an empty keyword set contributes a
// zero base term.
func (s *Scorer) ScoreBullet(b types.Bullet, kws []keywords.Keyword, jobIndex int) BulletScore {
	text := strings.ToLower(b.Text)
	if len(b.Keywords) > 0 {
		text += " " + strings.ToLower(strings.Join(b.Keywords, " "))
	}

	matched := s.matchKeywords(text, kws)
	if len(matched) == 0 || len(kws) == 0 {
		return BulletScore{Score: 0, Matched: matched}
	}

	extractorWeights := keywords.WeightMap(kws)
	weighted := 0.0
	for _, kw := range matched {
		weighted += extractorWeights[kw] * s.keywordHistoryWeight(kw)
	}
	base := weighted * (float64(len(matched)) / float64(len(kws)))

	perf, hasPerf := s.performanceFor(b.ID)
	if hasPerf && perf.TimesSelected > 0 {
		base += performancePriorWeight * perf.AvgATSScore / 100.0
	}

	score := base * RecencyMultiplier(jobIndex)
	if hasPerf {
		score *= PerformanceMultiplier(perf)
	}

	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		score = 0
	}
	return BulletScore{Score: score, Matched: matched}
}

// matchKeywords returns the extracted keywords present in text, directly or
// via a synonym group, sorted for deterministic output.
func (s *Scorer) matchKeywords(text string, kws []keywords.Keyword) []string {
	matched := make([]string, 0)
	for _, kw := range kws {
		if keywords.TermInText(kw.Phrase, text) {
			matched = append(matched, kw.Phrase)
			continue
		}
		if canonical, syns := s.lists.SynonymGroup(kw.Phrase); canonical != "" {
			if keywords.TermInText(canonical, text) {
				matched = append(matched, kw.Phrase)
				continue
			}
			for _, syn := range syns {
				if keywords.TermInText(syn, text) {
					matched = append(matched, kw.Phrase)
					break
				}
			}
		}
	}
	sort.Strings(matched)
	return matched
}

// keywordHistoryWeight combines the global frequency weight with the
// role-specific boost for a keyword. Without history both terms are neutral.
func (s *Scorer) keywordHistoryWeight(kw string) float64 {
	w := 1.0
	if s.hist.TFIDF != nil {
		var ok bool
		if w, ok = s.hist.TFIDF[kw]; !ok || w <= 0 {
			w = unseenKeywordWeight
		}
	}
	if s.hist.RoleWeights != nil {
		if roleWeight, ok := s.hist.RoleWeights[kw]; ok {
			w *= 1.0 + roleWeight*roleBoostFactor
		}
	}
	return w
}

func (s *Scorer) performanceFor(bulletID int64) (types.BulletPerformance, bool) {
	if s.hist.Performance == nil || bulletID == 0 {
		return types.BulletPerformance{}, false
	}
	perf, ok := s.hist.Performance[bulletID]
	return perf, ok
}

// RecencyMultiplier returns the boost applied to bullets by the recency of
// their parent job: the most recent role is favored, the second is neutral,
// older roles are slightly discounted.
func RecencyMultiplier(jobIndex int) float64 {
	switch jobIndex {
	case 0:
		return recencyBoostCurrent
	case 1:
		return recencyBoostSecond
	default:
		return recencyBoostOlder
	}
}

// PerformanceMultiplier converts a bullet's performance record into a bounded
// multiplicative boost. A bullet selected fewer than two times is neutral;
// interview and offer credits are capped so a single lucky application cannot
// dominate, and the whole multiplier is capped.
func PerformanceMultiplier(p types.BulletPerformance) float64 {
	if p.TimesSelected < minSelectionsForHistory {
		return 1.0
	}

	m := 1.0
	m += highATSRateBonus * float64(p.TimesInHighATSResume) / float64(p.TimesSelected)
	if p.TimesInInterview > 0 {
		m += interviewBonus * float64(min(p.TimesInInterview, maxInterviewCredits))
	}
	if p.TimesInOffer > 0 {
		m += offerBonus * float64(min(p.TimesInOffer, maxOfferCredits))
	}

	if m > maxPerformanceMultiplier {
		m = maxPerformanceMultiplier
	}
	return m
}
