package render

import (
	"os"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/gopinath/resume-tailor/internal/types"
)

// DOCX template placeholders. The template document carries these literal
// markers; each is replaced with the corresponding plain-text block.
const (
	placeholderName           = "{{name}}"
	placeholderContact        = "{{contact}}"
	placeholderSummary        = "{{summary}}"
	placeholderExperience     = "{{experience}}"
	placeholderProjects       = "{{projects}}"
	placeholderSkills         = "{{skills}}"
	placeholderCertifications = "{{certifications}}"
	placeholderEducation      = "{{education}}"
)

// Cover letter template placeholders.
const (
	placeholderDate       = "{{date}}"
	placeholderSalutation = "{{salutation}}"
	placeholderBody       = "{{body}}"
)

// RenderDOCX fills the DOCX template at templatePath with the payload and
// writes the result to outPath. Emphasis is not applied in the DOCX path; the
// template's own styling governs appearance.
func RenderDOCX(payload *types.RenderPayload, templatePath, outPath string) error {
	reader, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return &TemplateError{Message: "failed to open DOCX template: " + templatePath, Cause: err}
	}
	defer func() { _ = reader.Close() }()

	doc := reader.Editable()
	replacements := map[string]string{
		placeholderName:           payload.Personal.Name,
		placeholderContact:        contactLine(payload.Personal),
		placeholderSummary:        payload.Summary,
		placeholderExperience:     experienceBlock(payload.Experience),
		placeholderProjects:       projectsBlock(payload.Projects),
		placeholderSkills:         skillsBlock(payload.Skills),
		placeholderCertifications: certificationsBlock(payload.Certifications),
		placeholderEducation:      educationBlock(payload.Education),
	}
	for placeholder, value := range replacements {
		if err := doc.Replace(placeholder, value, -1); err != nil {
			return &RenderError{Message: "failed to fill placeholder " + placeholder, Cause: err}
		}
	}

	tmpPath := outPath + ".tmp"
	if err := doc.WriteToFile(tmpPath); err != nil {
		return &RenderError{Message: "failed to write DOCX output", Cause: err}
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return &RenderError{Message: "failed to move DOCX output into place", Cause: err}
	}
	return nil
}

// RenderLetterDOCX fills the cover letter DOCX template at templatePath with
// the letter document and writes the result to outPath. The template carries
// {{name}}, {{contact}}, {{date}}, {{salutation}}, and {{body}} markers.
func RenderLetterDOCX(doc *LetterDoc, templatePath, outPath string) error {
	reader, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return &TemplateError{Message: "failed to open DOCX letter template: " + templatePath, Cause: err}
	}
	defer func() { _ = reader.Close() }()

	editable := reader.Editable()
	replacements := map[string]string{
		placeholderName:       doc.Personal.Name,
		placeholderContact:    contactLine(doc.Personal),
		placeholderDate:       doc.Date,
		placeholderSalutation: doc.Salutation,
		placeholderBody:       letterBodyBlock(doc.Paragraphs),
	}
	for placeholder, value := range replacements {
		if err := editable.Replace(placeholder, value, -1); err != nil {
			return &RenderError{Message: "failed to fill placeholder " + placeholder, Cause: err}
		}
	}

	tmpPath := outPath + ".tmp"
	if err := editable.WriteToFile(tmpPath); err != nil {
		return &RenderError{Message: "failed to write DOCX letter output", Cause: err}
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return &RenderError{Message: "failed to move DOCX letter output into place", Cause: err}
	}
	return nil
}

func letterBodyBlock(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}

func experienceBlock(entries []types.PayloadExperience) string {
	var sb strings.Builder
	for i, exp := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(exp.Title + " — " + exp.Company)
		if exp.Location != "" {
			sb.WriteString(" (" + exp.Location + ")")
		}
		sb.WriteString("\n" + FormatDateRange(exp.StartDate, exp.EndDate))
		for _, b := range exp.Bullets {
			sb.WriteString("\n• " + b.Text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func projectsBlock(projects []types.PayloadProject) string {
	var sb strings.Builder
	for i, proj := range projects {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(proj.Name)
		if proj.GitHubURL != "" {
			sb.WriteString(" — " + proj.GitHubURL)
		}
		for _, b := range proj.Bullets {
			sb.WriteString("\n• " + b.Text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func skillsBlock(skills []types.PayloadSkill) string {
	groups := groupPayloadSkills(skills)
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, g.Category+": "+g.Names)
	}
	return strings.Join(lines, "\n")
}

func certificationsBlock(certs []types.PayloadCertification) string {
	lines := make([]string, 0, len(certs))
	for _, c := range certs {
		line := c.Name
		if c.Issuer != "" {
			line += " — " + c.Issuer
		}
		if c.Issued != "" {
			line += " (" + c.Issued + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func educationBlock(entries []types.PayloadEducation) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := e.Degree
		if e.Field != "" {
			line += ", " + e.Field
		}
		line += " — " + e.Institution
		if e.EndDate != "" {
			line += " (" + FormatDate(e.EndDate) + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
