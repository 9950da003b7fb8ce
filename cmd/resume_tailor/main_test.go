package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) error {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestGenerateCommand_RequiresJDSource(t *testing.T) {
	err := executeCommand("generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --jd or --jd-url must be provided")
}

func TestGenerateCommand_MutuallyExclusiveSources(t *testing.T) {
	err := executeCommand("generate", "--jd", "posting.txt", "--jd-url", "https://example.com/posting")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestOutcomeCommand_RejectsBadID(t *testing.T) {
	err := executeCommand("outcome", "abc", "Applied")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid application id")
}

func TestCanonicalOutcome(t *testing.T) {
	got, err := canonicalOutcome("interview")
	require.NoError(t, err)
	assert.Equal(t, "Interview", got)

	got, err = canonicalOutcome("Offer")
	require.NoError(t, err)
	assert.Equal(t, "Offer", got)

	_, err = canonicalOutcome("ghosted")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid outcomes")
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "Initech", orDash("Initech"))
}
