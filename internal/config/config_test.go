package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"company": "Initech",
		"bullets_per_job": 4,
		"database_url": "postgres://localhost/resume_tailor"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Initech", cfg.Company)
	assert.Equal(t, 4, cfg.BulletsPerJob)
	assert.Equal(t, "postgres://localhost/resume_tailor", cfg.DatabaseURL)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidateMutuallyExclusiveSources(t *testing.T) {
	jd := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(jd, []byte("text"), 0o644))

	cfg := &Config{JD: jd, JDURL: "https://example.com/posting"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidateNegativeLimits(t *testing.T) {
	cfg := &Config{BulletsPerJob: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidateMissingJDFile(t *testing.T) {
	cfg := &Config{JD: filepath.Join(t.TempDir(), "nope.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateMissingLetterTemplate(t *testing.T) {
	cfg := &Config{LetterDOCXTemplate: filepath.Join(t.TempDir(), "letter.docx")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCX letter template not found")
}

func TestValidateEmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Company: "Initech"}
	defaults := Config{
		Company:            "ShouldNotWin",
		OutputDir:          "out",
		BulletsPerJob:      5,
		LetterDOCXTemplate: "templates/letter.docx",
		DatabaseURL:        "postgres://localhost/resume_tailor",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "Initech", merged.Company, "explicit value wins")
	assert.Equal(t, "out", merged.OutputDir)
	assert.Equal(t, 5, merged.BulletsPerJob)
	assert.Equal(t, "templates/letter.docx", merged.LetterDOCXTemplate)
	assert.Equal(t, "postgres://localhost/resume_tailor", merged.DatabaseURL)
}

func TestOutputDirOrDefault(t *testing.T) {
	assert.Equal(t, "output", (&Config{}).OutputDirOrDefault())
	assert.Equal(t, "docs", (&Config{OutputDir: "docs"}).OutputDirOrDefault())
}
