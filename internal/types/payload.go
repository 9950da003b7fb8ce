package types

import "github.com/go-playground/validator/v10"

// PayloadBullet is a finalized bullet line handed to the renderer, carrying
// the keywords it matched so the renderer can choose emphasis.
type PayloadBullet struct {
	Text            string   `json:"text" validate:"required"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// PayloadExperience is one experience section entry of the render payload.
// EndDate is nil for the current role; the renderer shows it as "Present".
type PayloadExperience struct {
	Company   string          `json:"company" validate:"required"`
	Title     string          `json:"title" validate:"required"`
	Location  string          `json:"location,omitempty"`
	StartDate string          `json:"start_date"`
	EndDate   *string         `json:"end_date"`
	Bullets   []PayloadBullet `json:"bullets"`
}

// PayloadProject is one project section entry of the render payload.
type PayloadProject struct {
	Name      string          `json:"name" validate:"required"`
	GitHubURL string          `json:"github_url,omitempty"`
	Bullets   []PayloadBullet `json:"bullets"`
}

// PayloadSkill is one skill entry; skills render grouped by category in
// first-seen category order.
type PayloadSkill struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category,omitempty"`
}

// PayloadCertification is one certification entry of the render payload.
type PayloadCertification struct {
	Name         string `json:"name" validate:"required"`
	Issuer       string `json:"issuer,omitempty"`
	Issued       string `json:"issued,omitempty"`
	Expires      string `json:"expires,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// PayloadEducation is one education entry of the render payload.
type PayloadEducation struct {
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution" validate:"required"`
	Location    string `json:"location,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// RenderPayload is the fully assembled document model consumed by the
// renderer collaborator. IsCV switches the renderer between the filtered
// resume layout and the full-disclosure CV layout (which includes Summary).
type RenderPayload struct {
	Personal       PersonalInfo           `json:"personal" validate:"required"`
	Summary        string                 `json:"summary,omitempty"`
	Experience     []PayloadExperience    `json:"experience" validate:"dive"`
	Projects       []PayloadProject       `json:"projects" validate:"dive"`
	Skills         []PayloadSkill         `json:"skills" validate:"dive"`
	Certifications []PayloadCertification `json:"certifications" validate:"dive"`
	Education      []PayloadEducation     `json:"education" validate:"dive"`
	IsCV           bool                   `json:"is_cv"`
}

// Validate validates the RenderPayload using the validator.
func (p *RenderPayload) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.Personal.Name == "" {
		return &PayloadError{Field: "personal.name", Message: "name is required"}
	}
	return nil
}

// PayloadError reports a render payload field that failed validation.
type PayloadError struct {
	Field   string
	Message string
}

func (e *PayloadError) Error() string {
	return "invalid render payload: " + e.Field + ": " + e.Message
}
