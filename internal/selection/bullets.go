// Package selection applies the per-section selection policy to scored
// candidates: top-N bullets per job with coverage guarantees, project capping
// for resume mode versus full disclosure for CV mode, and skill filtering.
package selection

import (
	"sort"

	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/scoring"
	"github.com/gopinath/resume-tailor/internal/types"
)

// Named selection defaults, overridable per call.
const (
	// DefaultMaxBulletsPerJob caps bullets per work experience entry.
	DefaultMaxBulletsPerJob = 5
	// DefaultMaxProjectBullets caps bullets per project entry.
	DefaultMaxProjectBullets = 3
	// DefaultMaxProjects caps the project section in resume mode.
	DefaultMaxProjects = 3
	// CoverLetterBullets is how many top bullets the cover letter quotes.
	CoverLetterBullets = 2
	// CoverLetterSkills is how many matching skills the cover letter names.
	CoverLetterSkills = 3
)

// projectRecencyIndex keeps the recency term neutral for project bullets,
// which have no position in the experience timeline.
const projectRecencyIndex = 1

// ScoredBullet pairs a selected bullet with its score and matched keywords.
type ScoredBullet struct {
	Bullet  types.Bullet
	Score   float64
	Matched []string
}

// SelectedJob is one work experience entry with its surviving bullets.
type SelectedJob struct {
	Job     types.WorkExperience
	Bullets []ScoredBullet
}

// SelectBullets picks up to maxPerJob bullets for every work experience
// entry. Candidates are ordered by score descending with display order (then
// ID) as the deterministic tiebreak. Only bullets that matched at least one
// keyword make the cut, except that a job with bullets never disappears: if
// nothing scored, its top-1 candidate is kept anyway. With an empty keyword
// set no scoring applies and the first maxPerJob bullets pass through in
// display order.
func SelectBullets(jobs []types.WorkExperience, scorer *scoring.Scorer, kws []keywords.Keyword, maxPerJob int) []SelectedJob {
	if maxPerJob <= 0 {
		maxPerJob = DefaultMaxBulletsPerJob
	}

	selected := make([]SelectedJob, 0, len(jobs))
	for jobIndex, job := range jobs {
		entry := SelectedJob{Job: job}
		if len(job.Bullets) == 0 {
			// Section header still renders; no bullet lines. Not an error.
			selected = append(selected, entry)
			continue
		}

		if len(kws) == 0 {
			for _, b := range job.Bullets {
				if len(entry.Bullets) >= maxPerJob {
					break
				}
				entry.Bullets = append(entry.Bullets, ScoredBullet{Bullet: b})
			}
			selected = append(selected, entry)
			continue
		}

		scored := scoreAndSort(job.Bullets, scorer, kws, jobIndex)
		for _, sb := range scored {
			if len(entry.Bullets) >= maxPerJob {
				break
			}
			if sb.Score <= 0 {
				break // sorted descending; nothing positive remains
			}
			entry.Bullets = append(entry.Bullets, sb)
		}
		if len(entry.Bullets) == 0 {
			// Coverage guarantee: non-empty jobs are always represented.
			entry.Bullets = append(entry.Bullets, scored[0])
		}
		selected = append(selected, entry)
	}
	return selected
}

// scoreAndSort scores every bullet and orders them score-descending with
// display order and ID as tiebreaks.
func scoreAndSort(bullets []types.Bullet, scorer *scoring.Scorer, kws []keywords.Keyword, jobIndex int) []ScoredBullet {
	scored := make([]ScoredBullet, 0, len(bullets))
	for _, b := range bullets {
		result := scorer.ScoreBullet(b, kws, jobIndex)
		scored = append(scored, ScoredBullet{Bullet: b, Score: result.Score, Matched: result.Matched})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Bullet.DisplayOrder != scored[j].Bullet.DisplayOrder {
			return scored[i].Bullet.DisplayOrder < scored[j].Bullet.DisplayOrder
		}
		return scored[i].Bullet.ID < scored[j].Bullet.ID
	})
	return scored
}

// SelectedBulletIDs collects the IDs of every selected work-experience bullet,
// in output order, for performance tracking.
func SelectedBulletIDs(jobs []SelectedJob) []int64 {
	ids := make([]int64, 0)
	for _, job := range jobs {
		for _, sb := range job.Bullets {
			if sb.Bullet.ID != 0 {
				ids = append(ids, sb.Bullet.ID)
			}
		}
	}
	return ids
}
