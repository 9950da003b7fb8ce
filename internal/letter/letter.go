// Package letter composes cover letter text from the selection results for a
// posting. Composition is deterministic: the same profile, posting, and
// selection always produce the same letter.
package letter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gopinath/resume-tailor/internal/selection"
	"github.com/gopinath/resume-tailor/internal/types"
)

// maxQuotedBulletLen truncates quoted achievements so a long bullet does not
// swallow the paragraph.
const maxQuotedBulletLen = 200

// Letter is a composed cover letter ready for rendering.
type Letter struct {
	Date       string
	Salutation string
	Paragraphs []string
}

// Composer builds cover letters. The clock is injectable so tests produce
// stable dates.
type Composer struct {
	now func() time.Time
}

// NewComposer creates a Composer using the real clock.
func NewComposer() *Composer {
	return &Composer{now: time.Now}
}

// NewComposerAt creates a Composer with a fixed clock.
func NewComposerAt(now func() time.Time) *Composer {
	return &Composer{now: now}
}

// Compose builds the letter from the posting and the selection output. The
// two strongest bullets selected for the most recent job are quoted as
// evidence and the top matching skills are named; when no skill matched the
// posting, the first profile skills stand in so the letter never names
// nothing.
func (c *Composer) Compose(profile *types.Profile, jd *types.JobDescription, jobs []selection.SelectedJob, matchedSkills []types.Skill) *Letter {
	letter := &Letter{
		Date:       c.now().Format("January 2, 2006"),
		Salutation: salutation(jd),
	}

	company := jd.Company
	if company == "" {
		company = "your company"
	}
	title := jd.Title
	if title == "" {
		title = "this role"
	}

	letter.Paragraphs = append(letter.Paragraphs, fmt.Sprintf(
		"I am writing to express my interest in the %s position at %s. My background aligns closely with what you are looking for, and I believe I can contribute from day one.",
		title, company))

	if evidence := topBullets(jobs, selection.CoverLetterBullets); len(evidence) > 0 {
		intro := "In my recent roles I have delivered results directly relevant to this position. "
		letter.Paragraphs = append(letter.Paragraphs, intro+strings.Join(evidence, " "))
	}

	if names := skillNames(profile, matchedSkills, selection.CoverLetterSkills); len(names) != 0 {
		letter.Paragraphs = append(letter.Paragraphs, fmt.Sprintf(
			"I would bring hands-on strength in %s, along with a habit of owning problems end to end.",
			joinNatural(names)))
	}

	letter.Paragraphs = append(letter.Paragraphs, fmt.Sprintf(
		"I would welcome the chance to discuss how I can help %s. Thank you for your time and consideration.",
		company))

	return letter
}

// salutation addresses the hiring manager when the posting names one.
func salutation(jd *types.JobDescription) string {
	if jd.HiringManager != "" {
		return "Dear " + jd.HiringManager + ","
	}
	return "Dear Hiring Manager,"
}

// topBullets returns the highest scoring bullets selected for the most recent
// job, truncated for quoting. Older roles never supply evidence; the letter
// speaks to what the candidate is doing now.
func topBullets(jobs []selection.SelectedJob, limit int) []string {
	if len(jobs) == 0 {
		return nil
	}
	recent := make([]selection.ScoredBullet, len(jobs[0].Bullets))
	copy(recent, jobs[0].Bullets)
	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].Score != recent[j].Score {
			return recent[i].Score > recent[j].Score
		}
		return recent[i].Bullet.ID < recent[j].Bullet.ID
	})

	quoted := make([]string, 0, limit)
	for _, sb := range recent {
		if len(quoted) >= limit {
			break
		}
		text := strings.TrimSpace(sb.Bullet.Text)
		if text == "" {
			continue
		}
		if len(text) > maxQuotedBulletLen {
			text = strings.TrimSpace(text[:maxQuotedBulletLen]) + "…"
		}
		if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "…") {
			text += "."
		}
		quoted = append(quoted, text)
	}
	return quoted
}

// skillNames prefers skills that matched the posting and falls back to the
// profile's leading skills.
func skillNames(profile *types.Profile, matched []types.Skill, limit int) []string {
	source := matched
	if len(source) == 0 {
		source = profile.Skills
	}
	names := make([]string, 0, limit)
	for _, s := range source {
		if len(names) >= limit {
			break
		}
		names = append(names, s.Name)
	}
	return names
}

// joinNatural joins names as "a, b, and c".
func joinNatural(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
