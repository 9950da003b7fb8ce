package render

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gopinath/resume-tailor/internal/schemas"
	"github.com/gopinath/resume-tailor/internal/selection"
	"github.com/gopinath/resume-tailor/internal/types"
)

// BuildPayload assembles the document model from the profile and selection
// output. Section order inside the payload follows profile display order;
// selection has already decided which entries survive and in what order.
func BuildPayload(profile *types.Profile, jobs []selection.SelectedJob, projects []selection.SelectedProject, skills []types.Skill, isCV bool, summary string) *types.RenderPayload {
	payload := &types.RenderPayload{
		Personal: profile.Personal,
		Summary:  summary,
		IsCV:     isCV,
	}

	for _, job := range jobs {
		exp := types.PayloadExperience{
			Company:   job.Job.Company,
			Title:     job.Job.Title,
			Location:  job.Job.Location,
			StartDate: job.Job.StartDate,
		}
		if job.Job.EndDate != "" {
			end := job.Job.EndDate
			exp.EndDate = &end
		}
		for _, sb := range job.Bullets {
			exp.Bullets = append(exp.Bullets, types.PayloadBullet{
				Text:            sb.Bullet.Text,
				MatchedKeywords: sb.Matched,
			})
		}
		payload.Experience = append(payload.Experience, exp)
	}

	for _, proj := range projects {
		p := types.PayloadProject{
			Name:      proj.Project.Name,
			GitHubURL: proj.Project.GitHubURL,
		}
		for _, sb := range proj.Bullets {
			p.Bullets = append(p.Bullets, types.PayloadBullet{
				Text:            sb.Bullet.Text,
				MatchedKeywords: sb.Matched,
			})
		}
		payload.Projects = append(payload.Projects, p)
	}

	for _, s := range skills {
		payload.Skills = append(payload.Skills, types.PayloadSkill{
			Name:     s.Name,
			Category: s.Category,
		})
	}

	for _, c := range profile.Certifications {
		payload.Certifications = append(payload.Certifications, types.PayloadCertification{
			Name:         c.Name,
			Issuer:       c.Issuer,
			Issued:       c.Issued,
			Expires:      c.Expires,
			CredentialID: c.CredentialID,
		})
	}

	for _, e := range profile.Education {
		payload.Education = append(payload.Education, types.PayloadEducation{
			Degree:      e.Degree,
			Field:       e.Field,
			Institution: e.Institution,
			Location:    e.Location,
			GPA:         e.GPA,
			EndDate:     e.EndDate,
		})
	}

	return payload
}

// WriteLetterPayload writes the letter document to path as indented JSON for
// the external renderer.
func WriteLetterPayload(doc *LetterDoc, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &RenderError{Message: "failed to marshal letter payload", Cause: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &RenderError{Message: "failed to create output directory", Cause: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &RenderError{Message: "failed to write letter payload", Cause: err}
	}
	return nil
}

// WritePayload validates the payload, checks it against the JSON schema, and
// writes it to path as indented JSON.
func WritePayload(payload *types.RenderPayload, path string) error {
	if err := payload.Validate(); err != nil {
		return &RenderError{Message: "payload failed validation", Cause: err}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return &RenderError{Message: "failed to marshal payload", Cause: err}
	}

	if err := schemas.ValidateRenderPayload(string(data)); err != nil {
		return &RenderError{Message: "payload failed schema validation", Cause: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &RenderError{Message: "failed to create output directory", Cause: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &RenderError{Message: "failed to write payload", Cause: err}
	}
	return nil
}
