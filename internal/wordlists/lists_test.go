package wordlists

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParses(t *testing.T) {
	lists := Default()

	assert.NotEmpty(t, lists.Stopwords)
	assert.NotEmpty(t, lists.DomainKeywords)
	assert.NotEmpty(t, lists.PriorityBold)
	assert.NotEmpty(t, lists.SoftLeadIns)
	assert.NotEmpty(t, lists.RoleKeywords)
}

func TestIsStopword(t *testing.T) {
	lists := Default()

	assert.True(t, lists.IsStopword("the"))
	assert.True(t, lists.IsStopword("qualifications"))
	assert.False(t, lists.IsStopword("python"))
}

func TestIsDomainKeyword(t *testing.T) {
	lists := Default()

	assert.True(t, lists.IsDomainKeyword("python"))
	assert.True(t, lists.IsDomainKeyword("power bi"))
	assert.False(t, lists.IsDomainKeyword("underwater basket weaving"))
}

func TestIsNeverBoldCaseInsensitive(t *testing.T) {
	lists := Default()

	assert.True(t, lists.IsNeverBold("Excel"))
	assert.True(t, lists.IsNeverBold("excel"))
	assert.False(t, lists.IsNeverBold("Python"))
}

func TestHasSoftLeadIn(t *testing.T) {
	lists := Default()

	assert.True(t, lists.HasSoftLeadIn("Collaborated with the data team to ship reports"))
	assert.True(t, lists.HasSoftLeadIn("  Trained three analysts on SQL"))
	assert.False(t, lists.HasSoftLeadIn("Built a Python ETL pipeline"))
}

func TestSynonymGroup(t *testing.T) {
	lists := Default()

	canonical, syns := lists.SynonymGroup("etl")
	assert.Equal(t, "etl", canonical)
	assert.Contains(t, syns, "data pipeline")

	// Reverse direction: a synonym resolves to its canonical term.
	canonical, syns = lists.SynonymGroup("airflow")
	assert.Equal(t, "etl", canonical)
	assert.NotEmpty(t, syns)

	canonical, syns = lists.SynonymGroup("no such term")
	assert.Empty(t, canonical)
	assert.Nil(t, syns)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lists.json")
	content := `{"soft_lead_ins": ["Helped"], "never_bold": ["Go"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	lists, err := Load(path)
	require.NoError(t, err)

	// Overridden lists replace the defaults.
	assert.True(t, lists.HasSoftLeadIn("Helped the team"))
	assert.False(t, lists.HasSoftLeadIn("Collaborated with the team"))
	assert.True(t, lists.IsNeverBold("go"))

	// Untouched lists keep their defaults.
	assert.True(t, lists.IsStopword("the"))
	assert.True(t, lists.IsDomainKeyword("python"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/lists.json")
	assert.Error(t, err)
}
