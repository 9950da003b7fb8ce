package emphasis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopinath/resume-tailor/internal/wordlists"
)

func joinSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func emphasizedTexts(spans []Span) []string {
	var out []string
	for _, s := range spans {
		if s.Emphasized {
			out = append(out, s.Text)
		}
	}
	return out
}

func TestAnnotateEmptyText(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 0)
	assert.Nil(t, a.Annotate("", nil))
}

func TestAnnotateSoftLeadInExemption(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 0)

	text := "Collaborated with the data team to migrate Python ETL jobs"
	spans := a.Annotate(text, []string{"python", "etl"})

	require.Len(t, spans, 1)
	assert.Equal(t, text, spans[0].Text)
	assert.False(t, spans[0].Emphasized)
}

func TestAnnotateEmphasizesPriorityTerm(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 0)

	text := "Built Python pipelines feeding a reporting warehouse used by forty analysts"
	spans := a.Annotate(text, []string{"python"})

	assert.Equal(t, []string{"Python"}, emphasizedTexts(spans))
	assert.Equal(t, text, joinSpans(spans))
}

func TestAnnotatePartitionReconstructsInput(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 0)

	text := "Automated ETL runs in Python and published Power BI dashboards for finance leadership and operations"
	spans := a.Annotate(text, []string{"etl", "python", "power bi"})

	assert.Equal(t, text, joinSpans(spans))
	for i := 1; i < len(spans); i++ {
		if spans[i-1].Emphasized {
			assert.False(t, spans[i].Emphasized, "adjacent spans must alternate out of emphasis")
		}
	}
}

func TestAnnotateMaxSpans(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 2)

	text := "Used Python, SQL, Spark, and Airflow daily across every ingestion workload in the platform"
	spans := a.Annotate(text, []string{"python", "sql", "spark", "airflow"})

	assert.LessOrEqual(t, len(emphasizedTexts(spans)), 2)
}

func TestAnnotateFirstHalfOnly(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 0)

	// The only priority term sits in the back half, so nothing qualifies.
	text := "Delivered quarterly forecasts and executive summaries, later rebuilding them in Python"
	spans := a.Annotate(text, []string{"python"})

	require.Len(t, spans, 1)
	assert.False(t, spans[0].Emphasized)
	assert.Equal(t, text, spans[0].Text)
}

func TestAnnotateNeverBoldDenied(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 0)

	text := "Excel macros reconciled invoices nightly before the warehouse rebuild finished downstream"
	spans := a.Annotate(text, []string{"excel"})

	assert.Empty(t, emphasizedTexts(spans))
}

func TestAnnotateLongestTermWinsSharedPrefix(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 1)

	text := "Azure Blob Storage landing zones staged raw extracts for the nightly loads"
	spans := a.Annotate(text, []string{"azure blob storage", "azure"})

	assert.Equal(t, []string{"Azure Blob Storage"}, emphasizedTexts(spans))
}

func TestAnnotateRestrictedToMatchedKeywords(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 0)

	// Python appears early but only SQL matched the posting.
	text := "Python and SQL both powered the ingestion layer for the claims platform"
	spans := a.Annotate(text, []string{"sql"})

	assert.Equal(t, []string{"SQL"}, emphasizedTexts(spans))
}

func TestAnnotateNoMatchedKeywordsUsesFullPriorityList(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 0)

	text := "Python scripts archived source files into cold storage every weekend run"
	spans := a.Annotate(text, nil)

	assert.Equal(t, []string{"Python"}, emphasizedTexts(spans))
}

func TestAnnotatePreservesCasing(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 0)

	text := "PYTHON jobs shipped the nightly extract before anyone reached the office floor"
	spans := a.Annotate(text, []string{"python"})

	assert.Equal(t, []string{"PYTHON"}, emphasizedTexts(spans))
	assert.Equal(t, text, joinSpans(spans))
}

func TestAnnotateDeterministic(t *testing.T) {
	a := NewAnnotator(wordlists.Default(), 0)

	text := "Migrated ETL and Python workloads onto Spark clusters managed through Airflow DAGs"
	kws := []string{"etl", "python", "spark", "airflow"}
	first := a.Annotate(text, kws)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, a.Annotate(text, kws))
	}
}
