package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopinath/resume-tailor/internal/ats"
	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/selection"
	"github.com/gopinath/resume-tailor/internal/types"
)

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywords([]keywords.Keyword{
		{Phrase: "python", Weight: 2.0},
		{Phrase: "sql", Weight: 1.0},
	}, "Data Engineer")

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED KEYWORDS")
	assert.Contains(t, out, "Data Engineer")
	assert.Contains(t, out, "python (2.00)")
}

func TestPrintKeywordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywords(nil, "Other")
	assert.Empty(t, buf.String())
}

func TestPrintKeywordsTruncatesList(t *testing.T) {
	var buf bytes.Buffer
	kws := make([]keywords.Keyword, 8)
	for i := range kws {
		kws[i] = keywords.Keyword{Phrase: "kw", Weight: 1}
	}
	NewPrinter(&buf).PrintKeywords(kws, "Other")
	assert.Contains(t, buf.String(), "and 3 more keywords")
}

func TestPrintSelection(t *testing.T) {
	var buf bytes.Buffer
	jobs := []selection.SelectedJob{
		{
			Job: types.WorkExperience{Company: "Acme", Title: "Analyst"},
			Bullets: []selection.ScoredBullet{
				{Bullet: types.Bullet{Text: "Automated the monthly close"}},
			},
		},
	}
	projects := []selection.SelectedProject{
		{Project: types.Project{Name: "Ledger Recon"}},
	}

	NewPrinter(&buf).PrintSelection(jobs, projects)

	out := buf.String()
	assert.Contains(t, out, "SELECTED CONTENT")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "Ledger Recon")
}

func TestPrintATS(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintATS(ats.Result{
		Score:   82.5,
		Matched: []string{"python", "sql"},
		Missing: []string{"spark"},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS COVERAGE")
	assert.Contains(t, out, "82.5")
	assert.Contains(t, out, "strong match")
	assert.Contains(t, out, "spark")
}

func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWarnings([]string{"keyword history update failed"})
	assert.Contains(t, buf.String(), "WARNINGS")
	assert.Contains(t, buf.String(), "keyword history update failed")
}

func TestPrintWarningsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWarnings(nil)
	assert.Empty(t, buf.String())
}
