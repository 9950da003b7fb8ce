package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeyword(t *testing.T) {
	kw, ok := normalizeKeyword("  Python ")
	assert.True(t, ok)
	assert.Equal(t, "python", kw)

	_, ok = normalizeKeyword("r")
	assert.False(t, ok, "single-character keywords are dropped")

	_, ok = normalizeKeyword("   ")
	assert.False(t, ok)
}

func TestUniqueNormalized(t *testing.T) {
	out := uniqueNormalized([]string{"Python", "python", "SQL", " sql ", "r", "ETL"})
	assert.Equal(t, []string{"python", "sql", "etl"}, out)
}

func TestUniqueNormalizedEmpty(t *testing.T) {
	assert.Empty(t, uniqueNormalized(nil))
	assert.Empty(t, uniqueNormalized([]string{"x", " "}))
}

func TestSplitKeywordCSV(t *testing.T) {
	assert.Equal(t, []string{"python", "etl"}, splitKeywordCSV("python, etl"))
	assert.Nil(t, splitKeywordCSV(""))
	assert.Nil(t, splitKeywordCSV("  "))
	assert.Equal(t, []string{"sql"}, splitKeywordCSV(",sql,"))
}

func TestOrderOr(t *testing.T) {
	assert.Equal(t, 4, orderOr(2, 4), "explicit display order wins")
	assert.Equal(t, 2, orderOr(2, 0), "position fallback when unset")
}

func TestSchemaCoversAllTables(t *testing.T) {
	tables := []string{
		"personal_info", "work_experience", "projects", "bullets",
		"skills", "education", "certifications", "job_applications",
		"keyword_frequency", "role_keyword_weights", "bullet_performance",
	}
	for _, table := range tables {
		assert.Contains(t, schemaDDL, "CREATE TABLE IF NOT EXISTS "+table, table)
	}
}

func TestSchemaConstraints(t *testing.T) {
	// Bullets belong to exactly one parent.
	assert.Contains(t, schemaDDL, "(work_experience_id IS NULL) <> (project_id IS NULL)")
	// Role weights never decay to zero.
	assert.Contains(t, schemaDDL, "weight >= 0.1")
	// Deleting a job or project takes its bullets with it.
	assert.Equal(t, 2, strings.Count(schemaDDL, "ON DELETE CASCADE"))
}

func TestHighATSThreshold(t *testing.T) {
	assert.Equal(t, 75.0, HighATSThreshold)
}

func TestTotalJDsCountsUntrackedRuns(t *testing.T) {
	// Keyword counters bump on every run; applications only when tracking.
	// The denominator must see both so jd_count/total never exceeds 1.
	assert.Contains(t, totalJDsQuery, "job_applications")
	assert.Contains(t, totalJDsQuery, "MAX(jd_count)")
	assert.Contains(t, totalJDsQuery, "GREATEST")
}
