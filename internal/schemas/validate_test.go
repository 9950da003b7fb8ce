package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRenderPayload_Valid(t *testing.T) {
	payload := `{
		"personal": {"name": "Ada Lovelace", "email": "ada@example.com"},
		"experience": [
			{
				"company": "Analytical Engines Ltd",
				"title": "Data Engineer",
				"start_date": "2022-03",
				"end_date": null,
				"bullets": [{"text": "Built ETL pipelines", "matched_keywords": ["etl"]}]
			}
		],
		"skills": [{"name": "Python", "category": "Languages"}],
		"is_cv": false
	}`

	assert.NoError(t, ValidateRenderPayload(payload))
}

func TestValidateRenderPayload_MissingName(t *testing.T) {
	payload := `{
		"personal": {"email": "ada@example.com"},
		"experience": [],
		"skills": [],
		"is_cv": false
	}`

	err := ValidateRenderPayload(payload)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateRenderPayload_EmptyBulletText(t *testing.T) {
	payload := `{
		"personal": {"name": "Ada Lovelace", "email": "ada@example.com"},
		"experience": [
			{
				"company": "Analytical Engines Ltd",
				"title": "Data Engineer",
				"start_date": "2022-03",
				"end_date": "2024-01",
				"bullets": [{"text": ""}]
			}
		],
		"skills": [],
		"is_cv": false
	}`

	err := ValidateRenderPayload(payload)
	require.Error(t, err)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": "nonsense"}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestRenderPayloadSchemaExposed(t *testing.T) {
	assert.Contains(t, RenderPayloadSchema(), "RenderPayload")
}
