package selection

import (
	"testing"

	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/scoring"
	"github.com/gopinath/resume-tailor/internal/types"
	"github.com/gopinath/resume-tailor/internal/wordlists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScorer() *scoring.Scorer {
	return scoring.NewScorer(wordlists.Default(), scoring.History{})
}

func extract(jd string) []keywords.Keyword {
	return keywords.NewExtractor(wordlists.Default()).Extract(jd)
}

func TestSelectBulletsCapsPerJob(t *testing.T) {
	jobs := []types.WorkExperience{{
		ID: 1, Company: "Acme", Title: "Analyst",
		Bullets: []types.Bullet{
			{ID: 1, Text: "Built Python dashboards", DisplayOrder: 0},
			{ID: 2, Text: "Automated Python reporting", DisplayOrder: 1},
			{ID: 3, Text: "Wrote Python ETL jobs", DisplayOrder: 2},
			{ID: 4, Text: "Maintained Python services", DisplayOrder: 3},
		},
	}}

	selected := SelectBullets(jobs, testScorer(), extract("Python"), 2)

	require.Len(t, selected, 1)
	assert.Len(t, selected[0].Bullets, 2)
}

func TestSelectBulletsCoverageFallback(t *testing.T) {
	// No bullet mentions anything from the JD; the job must still surface
	// its top-1 candidate.
	jobs := []types.WorkExperience{{
		ID: 1, Company: "Acme", Title: "Clerk",
		Bullets: []types.Bullet{
			{ID: 1, Text: "Filed paperwork", DisplayOrder: 0},
			{ID: 2, Text: "Answered phones", DisplayOrder: 1},
		},
	}}

	selected := SelectBullets(jobs, testScorer(), extract("Kubernetes platform engineer"), 3)

	require.Len(t, selected, 1)
	require.Len(t, selected[0].Bullets, 1)
	assert.Equal(t, int64(1), selected[0].Bullets[0].Bullet.ID)
}

func TestSelectBulletsEveryJobRepresented(t *testing.T) {
	jobs := []types.WorkExperience{
		{ID: 1, Company: "A", Bullets: []types.Bullet{{ID: 1, Text: "Python work"}}},
		{ID: 2, Company: "B", Bullets: []types.Bullet{{ID: 2, Text: "Unrelated trivia"}}},
		{ID: 3, Company: "C", Bullets: []types.Bullet{{ID: 3, Text: "More Python"}}},
	}

	selected := SelectBullets(jobs, testScorer(), extract("Python"), 3)

	require.Len(t, selected, 3)
	for _, job := range selected {
		assert.NotEmpty(t, job.Bullets, "job %d should keep at least one bullet", job.Job.ID)
	}
}

func TestSelectBulletsEmptyJobStays(t *testing.T) {
	jobs := []types.WorkExperience{{ID: 1, Company: "Acme", Title: "Intern"}}

	selected := SelectBullets(jobs, testScorer(), extract("Python"), 3)

	require.Len(t, selected, 1)
	assert.Empty(t, selected[0].Bullets)
}

func TestSelectBulletsNoKeywordsPassThrough(t *testing.T) {
	jobs := []types.WorkExperience{{
		ID: 1, Company: "Acme",
		Bullets: []types.Bullet{
			{ID: 1, Text: "first", DisplayOrder: 0},
			{ID: 2, Text: "second", DisplayOrder: 1},
			{ID: 3, Text: "third", DisplayOrder: 2},
		},
	}}

	selected := SelectBullets(jobs, testScorer(), nil, 2)

	require.Len(t, selected[0].Bullets, 2)
	assert.Equal(t, int64(1), selected[0].Bullets[0].Bullet.ID)
	assert.Equal(t, int64(2), selected[0].Bullets[1].Bullet.ID)
}

func TestSelectBulletsTieBreakByDisplayOrder(t *testing.T) {
	// Identical text means identical scores; display order must decide.
	jobs := []types.WorkExperience{{
		ID: 1, Company: "Acme",
		Bullets: []types.Bullet{
			{ID: 9, Text: "Python work", DisplayOrder: 2},
			{ID: 4, Text: "Python work", DisplayOrder: 0},
			{ID: 7, Text: "Python work", DisplayOrder: 1},
		},
	}}

	selected := SelectBullets(jobs, testScorer(), extract("Python"), 2)

	require.Len(t, selected[0].Bullets, 2)
	assert.Equal(t, int64(4), selected[0].Bullets[0].Bullet.ID)
	assert.Equal(t, int64(7), selected[0].Bullets[1].Bullet.ID)
}

func TestSelectProjectsResumeCap(t *testing.T) {
	projects := make([]types.Project, 5)
	for i := range projects {
		projects[i] = types.Project{
			ID: int64(i + 1), Name: "P", DisplayOrder: i,
			Bullets: []types.Bullet{{ID: int64(100 + i), Text: "Python tooling"}},
		}
	}

	selected := SelectProjects(projects, testScorer(), extract("Python"), false, 3, 3)

	assert.Len(t, selected, 3)
}

func TestSelectProjectsCVTakesAll(t *testing.T) {
	projects := make([]types.Project, 5)
	for i := range projects {
		projects[i] = types.Project{
			ID: int64(i + 1), Name: "P", DisplayOrder: i,
			Bullets: []types.Bullet{{ID: int64(100 + i), Text: "Python tooling"}},
		}
	}

	selected := SelectProjects(projects, testScorer(), extract("Python"), true, 3, 3)

	require.Len(t, selected, 5)
	// Full disclosure keeps original display order.
	for i, p := range selected {
		assert.Equal(t, i, p.Project.DisplayOrder)
	}
}

func TestSelectProjectsRankedByAggregateScore(t *testing.T) {
	projects := []types.Project{
		{ID: 1, Name: "Weak", DisplayOrder: 0, Bullets: []types.Bullet{{ID: 1, Text: "Gardening notes"}}},
		{ID: 2, Name: "Strong", DisplayOrder: 1, Bullets: []types.Bullet{
			{ID: 2, Text: "Python ETL with SQL"},
			{ID: 3, Text: "Python dashboards"},
		}},
	}

	selected := SelectProjects(projects, testScorer(), extract("Python and SQL"), false, 3, 3)

	require.Len(t, selected, 2)
	assert.Equal(t, "Strong", selected[0].Project.Name)
}

func TestSelectSkillsFilters(t *testing.T) {
	skills := []types.Skill{
		{Name: "Python", Category: "Languages"},
		{Name: "Tableau", Category: "Tools"},
	}

	filtered := SelectSkills(skills, extract("We use Python heavily"))

	require.Len(t, filtered, 1)
	assert.Equal(t, "Python", filtered[0].Name)
	assert.Equal(t, "Languages", filtered[0].Category)
}

func TestSelectSkillsFallbackUnfiltered(t *testing.T) {
	skills := []types.Skill{
		{Name: "Python", Category: "Languages"},
		{Name: "Tableau", Category: "Tools"},
	}

	// Keywords exist but overlap neither skill name.
	filtered := SelectSkills(skills, extract("Forklift certification required"))
	assert.Len(t, filtered, 2)

	// No keywords at all.
	assert.Len(t, SelectSkills(skills, nil), 2)
}

func TestSelectedBulletIDs(t *testing.T) {
	jobs := []SelectedJob{
		{Bullets: []ScoredBullet{{Bullet: types.Bullet{ID: 3}}, {Bullet: types.Bullet{ID: 0}}}},
		{Bullets: []ScoredBullet{{Bullet: types.Bullet{ID: 8}}}},
	}

	assert.Equal(t, []int64{3, 8}, SelectedBulletIDs(jobs))
}
