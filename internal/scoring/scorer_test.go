package scoring

import (
	"math"
	"testing"

	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/types"
	"github.com/gopinath/resume-tailor/internal/wordlists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractKeywords(t *testing.T, jd string) []keywords.Keyword {
	t.Helper()
	return keywords.NewExtractor(wordlists.Default()).Extract(jd)
}

func TestScoreBulletEmptyKeywords(t *testing.T) {
	s := NewScorer(wordlists.Default(), History{})
	b := types.Bullet{ID: 1, Text: "Built a Python ETL pipeline"}

	result := s.ScoreBullet(b, nil, 0)

	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.Matched)
}

func TestScoreBulletMatchesKeywords(t *testing.T) {
	s := NewScorer(wordlists.Default(), History{})
	kws := extractKeywords(t, "Python and SQL required")
	b := types.Bullet{ID: 1, Text: "Automated reporting with Python scripts against a SQL database"}

	result := s.ScoreBullet(b, kws, 0)

	assert.Greater(t, result.Score, 0.0)
	assert.Contains(t, result.Matched, "python")
	assert.Contains(t, result.Matched, "sql")
}

func TestScoreBulletUsesBulletKeywords(t *testing.T) {
	s := NewScorer(wordlists.Default(), History{})
	kws := extractKeywords(t, "Looking for Airflow expertise")
	b := types.Bullet{ID: 1, Text: "Orchestrated nightly data loads", Keywords: []string{"airflow", "scheduling"}}

	result := s.ScoreBullet(b, kws, 0)

	assert.Greater(t, result.Score, 0.0)
	assert.Contains(t, result.Matched, "airflow")
}

func TestScoreBulletSynonymMatch(t *testing.T) {
	s := NewScorer(wordlists.Default(), History{})
	kws := extractKeywords(t, "Experience with ETL")
	// Bullet never says "etl" but mentions a synonym.
	b := types.Bullet{ID: 1, Text: "Designed an Airflow data ingestion workflow"}

	result := s.ScoreBullet(b, kws, 0)

	assert.Contains(t, result.Matched, "etl")
}

func TestScoreBulletRecency(t *testing.T) {
	s := NewScorer(wordlists.Default(), History{})
	kws := extractKeywords(t, "Python developer")
	b := types.Bullet{ID: 1, Text: "Shipped Python services"}

	recent := s.ScoreBullet(b, kws, 0)
	middle := s.ScoreBullet(b, kws, 1)
	older := s.ScoreBullet(b, kws, 4)

	assert.Greater(t, recent.Score, middle.Score)
	assert.Greater(t, middle.Score, older.Score)
}

func TestScoreBulletPerformanceFavorsProvenBullets(t *testing.T) {
	kws := extractKeywords(t, "Python developer")
	proven := types.Bullet{ID: 7, Text: "Shipped Python services"}
	untested := types.Bullet{ID: 8, Text: "Shipped Python services"}

	s := NewScorer(wordlists.Default(), History{
		Performance: map[int64]types.BulletPerformance{
			7: {BulletID: 7, TimesSelected: 5, TimesInHighATSResume: 4, TimesInInterview: 2, AvgATSScore: 88},
		},
	})

	provenScore := s.ScoreBullet(proven, kws, 0)
	untestedScore := s.ScoreBullet(untested, kws, 0)

	assert.Greater(t, provenScore.Score, untestedScore.Score)
}

func TestScoreBulletDeterministic(t *testing.T) {
	s := NewScorer(wordlists.Default(), History{
		TFIDF:       map[string]float64{"python": 0.4, "sql": 0.2},
		RoleWeights: map[string]float64{"python": 3},
	})
	kws := extractKeywords(t, "Python and SQL and Tableau")
	b := types.Bullet{ID: 3, Text: "Python and SQL reporting in Tableau"}

	first := s.ScoreBullet(b, kws, 1)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.ScoreBullet(b, kws, 1))
	}
}

func TestScoreBulletNeverNaNOrNegative(t *testing.T) {
	s := NewScorer(wordlists.Default(), History{TFIDF: map[string]float64{}})
	kws := extractKeywords(t, "python")
	b := types.Bullet{ID: 1, Text: "python"}

	result := s.ScoreBullet(b, kws, 0)

	assert.False(t, math.IsNaN(result.Score))
	assert.False(t, math.IsInf(result.Score, 0))
	assert.GreaterOrEqual(t, result.Score, 0.0)
}

func TestRecencyMultiplier(t *testing.T) {
	assert.Equal(t, 1.15, RecencyMultiplier(0))
	assert.Equal(t, 1.0, RecencyMultiplier(1))
	assert.Equal(t, 0.85, RecencyMultiplier(2))
	assert.Equal(t, 0.85, RecencyMultiplier(9))
}

func TestPerformanceMultiplierNeutralWithoutHistory(t *testing.T) {
	assert.Equal(t, 1.0, PerformanceMultiplier(types.BulletPerformance{TimesSelected: 0}))
	assert.Equal(t, 1.0, PerformanceMultiplier(types.BulletPerformance{TimesSelected: 1, TimesInOffer: 1}))
}

func TestPerformanceMultiplierBonusesAndCap(t *testing.T) {
	m := PerformanceMultiplier(types.BulletPerformance{
		TimesSelected:        4,
		TimesInHighATSResume: 2,
	})
	assert.InDelta(t, 1.075, m, 0.0001)

	capped := PerformanceMultiplier(types.BulletPerformance{
		TimesSelected:        10,
		TimesInHighATSResume: 10,
		TimesInInterview:     9,
		TimesInOffer:         9,
	})
	assert.Equal(t, 1.5, capped)
}

func TestComputeTFIDFWeights(t *testing.T) {
	freqs := []types.KeywordFrequency{
		{Keyword: "python", JDCount: 6},
		{Keyword: "sql", JDCount: 10},
		{Keyword: "tableau", JDCount: 1},
	}

	weights := ComputeTFIDFWeights(freqs, 10)

	require.Len(t, weights, 3)
	sum := 0.0
	for _, w := range weights {
		assert.GreaterOrEqual(t, w, 0.0)
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// "sql" appears in every JD and is damped relative to its raw weight, but
	// a rare relevant term still weighs less than a frequent one overall.
	assert.Greater(t, weights["python"], weights["tableau"])
}

func TestComputeTFIDFWeightsEmpty(t *testing.T) {
	assert.Empty(t, ComputeTFIDFWeights(nil, 0))
	assert.Empty(t, ComputeTFIDFWeights([]types.KeywordFrequency{}, 5))
}

func TestComputeTFIDFWeightsClampsStaleCounts(t *testing.T) {
	// Counters recorded on untracked runs can exceed the run count; the term
	// frequency is capped at 1 so damping never drives the weight negative.
	freqs := []types.KeywordFrequency{
		{Keyword: "python", JDCount: 5},
		{Keyword: "sql", JDCount: 1},
	}

	weights := ComputeTFIDFWeights(freqs, 2)

	require.Len(t, weights, 2)
	assert.Greater(t, weights["python"], weights["sql"])
	assert.Greater(t, weights["sql"], 0.0)
	assert.InDelta(t, 1.0, weights["python"]+weights["sql"], 1e-9)
}
