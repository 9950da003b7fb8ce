package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadJD_PlainTextFile(t *testing.T) {
	path := writeTempFile(t, "jd.txt", "  Senior Data Engineer  \n\nBuild ETL pipelines in Python.\n")

	text, err := ReadJD(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Senior Data Engineer\nBuild ETL pipelines in Python.", text)
}

func TestReadJD_HTMLFile(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<div class="job-description">
				<h2>Requirements</h2>
				<p>5 years experience with SQL and Power BI</p>
			</div>
			<footer>Footer</footer>
		</body>
	</html>`
	path := writeTempFile(t, "jd.html", html)

	text, err := ReadJD(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "SQL and Power BI")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
}

func TestReadJD_MissingFile(t *testing.T) {
	_, err := ReadJD(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), nil)
	require.Error(t, err)

	var ingestErr *Error
	assert.ErrorAs(t, err, &ingestErr)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestReadJD_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`<html><body><main><h1>Data Analyst</h1><p>SQL required.</p></main></body></html>`))
	}))
	defer server.Close()

	text, err := ReadJD(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Data Analyst")
	assert.Contains(t, text, "SQL required")
}

func TestReadJD_URLHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := ReadJD(context.Background(), server.URL, nil)
	require.Error(t, err)

	var ingestErr *Error
	assert.ErrorAs(t, err, &ingestErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractPostingText_PostingSelectorBeatsBody(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="sidebar">Sidebar junk</div>
			<div class="job-description">
				<p>Own the reporting stack end to end.</p>
			</div>
		</body>
	</html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "reporting stack")
	assert.NotContains(t, text, "Sidebar junk")
}

func TestExtractPostingText_FallbackToBody(t *testing.T) {
	text, err := ExtractPostingText(`<html><body><div>Some content here.</div></body></html>`)
	require.NoError(t, err)
	assert.Contains(t, text, "Some content here")
}
