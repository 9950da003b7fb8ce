package selection

import (
	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/types"
)

// SelectSkills filters skills to those whose name overlaps the extracted
// keyword set (bidirectional case-insensitive substring). If nothing matches,
// or no keywords were extracted, every skill passes through unfiltered so the
// section is never empty when skills exist. Input order is preserved.
func SelectSkills(skills []types.Skill, kws []keywords.Keyword) []types.Skill {
	if len(skills) == 0 || len(kws) == 0 {
		return skills
	}

	filtered := make([]types.Skill, 0, len(skills))
	for _, skill := range skills {
		for _, kw := range kws {
			if keywords.FuzzyOverlap(skill.Name, kw.Phrase) {
				filtered = append(filtered, skill)
				break
			}
		}
	}

	if len(filtered) == 0 {
		return skills
	}
	return filtered
}
