// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// PersonalInfo holds the contact block rendered at the top of every document.
// Optional fields are omitted from output when empty, never substituted with placeholders.
type PersonalInfo struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Location  string `json:"location,omitempty"`
}

// Bullet is a single achievement line belonging to exactly one work experience
// or one project (enforced by the storage layer's exclusive foreign keys).
type Bullet struct {
	ID               int64    `json:"id"`
	Text             string   `json:"text" validate:"required"`
	Keywords         []string `json:"keywords,omitempty"`
	WorkExperienceID int64    `json:"work_experience_id,omitempty"`
	ProjectID        int64    `json:"project_id,omitempty"`
	DisplayOrder     int      `json:"display_order"`
}

// WorkExperience is one job entry. EndDate is empty for the current role.
// Dates use the ISO "YYYY-MM" format.
type WorkExperience struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date,omitempty"`
	DisplayOrder int      `json:"display_order"`
	Bullets      []Bullet `json:"bullets" validate:"dive"`
}

// Project is a portfolio entry with its own bullets.
type Project struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name" validate:"required"`
	GitHubURL    string   `json:"github_url,omitempty"`
	DisplayOrder int      `json:"display_order"`
	Bullets      []Bullet `json:"bullets" validate:"dive"`
}

// Skill is a named skill with a free-form category used for grouped rendering.
type Skill struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	Proficiency  string `json:"proficiency,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// Education is one degree entry.
type Education struct {
	ID           int64  `json:"id"`
	Degree       string `json:"degree"`
	Field        string `json:"field,omitempty"`
	Institution  string `json:"institution"`
	Location     string `json:"location,omitempty"`
	GPA          string `json:"gpa,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// Certification is one certification entry.
type Certification struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Issued       string `json:"issued,omitempty"`
	Expires      string `json:"expires,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// Profile is the full candidate record the pipeline draws content from.
// Slices are kept in display order as loaded from storage.
type Profile struct {
	Personal       PersonalInfo     `json:"personal" validate:"required"`
	Experience     []WorkExperience `json:"experience" validate:"dive"`
	Projects       []Project        `json:"projects" validate:"dive"`
	Skills         []Skill          `json:"skills" validate:"dive"`
	Education      []Education      `json:"education" validate:"dive"`
	Certifications []Certification  `json:"certifications" validate:"dive"`
}

// Validate checks a profile before it is written to storage.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// JobDescription is the unit of work for one generation request. It is not
// persisted as an entity; only derived data (keyword frequencies, the tracked
// application row) outlives the request.
type JobDescription struct {
	RawText       string `json:"raw_text"`
	Company       string `json:"company,omitempty"`
	Title         string `json:"title,omitempty"`
	HiringManager string `json:"hiring_manager,omitempty"`
	RoleType      string `json:"role_type,omitempty"`
}
