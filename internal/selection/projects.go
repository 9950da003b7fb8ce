package selection

import (
	"sort"

	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/scoring"
	"github.com/gopinath/resume-tailor/internal/types"
)

// SelectedProject is one project entry with its surviving bullets and the
// aggregate score used for project-level ranking.
type SelectedProject struct {
	Project types.Project
	Bullets []ScoredBullet
	Score   float64
}

// SelectProjects applies the project section policy. In CV mode every project
// passes through unfiltered in display order, bullets unscored (full
// disclosure). In resume mode each project keeps its top bullets and the
// section is capped at maxProjects ranked by aggregate bullet score,
// display order breaking ties.
func SelectProjects(projects []types.Project, scorer *scoring.Scorer, kws []keywords.Keyword, isCV bool, maxProjects, maxBullets int) []SelectedProject {
	if maxProjects <= 0 {
		maxProjects = DefaultMaxProjects
	}
	if maxBullets <= 0 {
		maxBullets = DefaultMaxProjectBullets
	}

	if isCV {
		all := make([]SelectedProject, 0, len(projects))
		for _, p := range projects {
			entry := SelectedProject{Project: p}
			for _, b := range p.Bullets {
				entry.Bullets = append(entry.Bullets, ScoredBullet{Bullet: b})
			}
			all = append(all, entry)
		}
		return all
	}

	selected := make([]SelectedProject, 0, len(projects))
	for _, p := range projects {
		entry := SelectedProject{Project: p}
		if len(p.Bullets) > 0 {
			if len(kws) == 0 {
				for _, b := range p.Bullets {
					if len(entry.Bullets) >= maxBullets {
						break
					}
					entry.Bullets = append(entry.Bullets, ScoredBullet{Bullet: b})
				}
			} else {
				scored := scoreAndSort(p.Bullets, scorer, kws, projectRecencyIndex)
				for _, sb := range scored {
					if len(entry.Bullets) >= maxBullets {
						break
					}
					if sb.Score <= 0 {
						break
					}
					entry.Bullets = append(entry.Bullets, sb)
				}
				if len(entry.Bullets) == 0 {
					entry.Bullets = append(entry.Bullets, scored[0])
				}
			}
		}
		for _, sb := range entry.Bullets {
			entry.Score += sb.Score
		}
		selected = append(selected, entry)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Score != selected[j].Score {
			return selected[i].Score > selected[j].Score
		}
		return selected[i].Project.DisplayOrder < selected[j].Project.DisplayOrder
	})

	if len(selected) > maxProjects {
		selected = selected[:maxProjects]
	}
	return selected
}
