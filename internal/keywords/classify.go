package keywords

import (
	"sort"
	"strings"
)

// RoleTypeOther is the fallback role type when no curated role keyword set
// overlaps the JD.
const RoleTypeOther = "Other"

// ClassifyRole tags a job description with the role type whose curated
// keyword set overlaps it most. Role names are visited in sorted order and a
// strictly greater overlap is required to displace the current best, so the
// result is deterministic.
func (e *Extractor) ClassifyRole(jdText string) string {
	lower := strings.ToLower(jdText)

	roles := make([]string, 0, len(e.lists.RoleKeywords))
	for role := range e.lists.RoleKeywords {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	bestRole := RoleTypeOther
	bestScore := 0
	for _, role := range roles {
		score := 0
		for _, kw := range e.lists.RoleKeywords[role] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestRole = role
		}
	}
	return bestRole
}
