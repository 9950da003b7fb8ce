// Package ats aggregates matched versus missing keywords across the selected
// document content into a 0-100 compatibility score.
package ats

import (
	"sort"
	"strings"

	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/selection"
	"github.com/gopinath/resume-tailor/internal/types"
	"github.com/gopinath/resume-tailor/internal/wordlists"
)

// HighScoreThreshold is the ATS score at or above which a resume counts as
// "high ATS" for bullet performance tracking.
const HighScoreThreshold = 75.0

// Result is the ATS computation output. Score is always within [0, 100].
type Result struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// High reports whether the score clears the high-ATS threshold.
func (r Result) High() bool {
	return r.Score >= HighScoreThreshold
}

// Compute scans the selected (post-filter) content for each extracted keyword
// and scores coverage weighted by the extractor's keyword weights, so rare and
// specific terms count more than common ones.
//
// Boundary policy: an empty extracted keyword set scores 100 with empty
// matched and missing sets. There is nothing to match, so the document is
// trivially compliant; this is a documented policy choice, not a measurement.
func Compute(jobs []selection.SelectedJob, projects []selection.SelectedProject, skills []types.Skill, kws []keywords.Keyword, lists *wordlists.Lists) Result {
	if len(kws) == 0 {
		return Result{Score: 100, Matched: []string{}, Missing: []string{}}
	}

	text := contentText(jobs, projects, skills)

	matched := make([]string, 0, len(kws))
	missing := make([]string, 0)
	matchedWeight := 0.0
	totalWeight := 0.0

	for _, kw := range kws {
		totalWeight += kw.Weight
		if termPresent(kw.Phrase, text, lists) {
			matched = append(matched, kw.Phrase)
			matchedWeight += kw.Weight
		} else {
			missing = append(missing, kw.Phrase)
		}
	}

	score := 0.0
	if totalWeight > 0 {
		score = 100 * matchedWeight / totalWeight
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	sort.Strings(matched)
	sort.Strings(missing)
	return Result{Score: score, Matched: matched, Missing: missing}
}

// termPresent checks for the keyword directly, then through its synonym group.
func termPresent(phrase, text string, lists *wordlists.Lists) bool {
	if keywords.TermInText(phrase, text) {
		return true
	}
	canonical, syns := lists.SynonymGroup(phrase)
	if canonical == "" {
		return false
	}
	if keywords.TermInText(canonical, text) {
		return true
	}
	for _, syn := range syns {
		if keywords.TermInText(syn, text) {
			return true
		}
	}
	return false
}

// contentText concatenates every selected bullet (text plus its stored
// keywords) and skill name into one lowercase haystack.
func contentText(jobs []selection.SelectedJob, projects []selection.SelectedProject, skills []types.Skill) string {
	var sb strings.Builder
	appendBullet := func(b types.Bullet) {
		sb.WriteString(b.Text)
		sb.WriteString(" ")
		for _, kw := range b.Keywords {
			sb.WriteString(kw)
			sb.WriteString(" ")
		}
	}

	for _, job := range jobs {
		for _, scored := range job.Bullets {
			appendBullet(scored.Bullet)
		}
	}
	for _, project := range projects {
		for _, scored := range project.Bullets {
			appendBullet(scored.Bullet)
		}
	}
	for _, skill := range skills {
		sb.WriteString(skill.Name)
		sb.WriteString(" ")
	}
	return strings.ToLower(sb.String())
}
