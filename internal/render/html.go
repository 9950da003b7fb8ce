package render

import (
	"bytes"
	"embed"
	"html"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopinath/resume-tailor/internal/emphasis"
	"github.com/gopinath/resume-tailor/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// experienceView is one experience entry prepared for the HTML template,
// dates formatted and bullets pre-annotated.
type experienceView struct {
	Company   string
	Title     string
	Location  string
	DateRange string
	Bullets   []template.HTML
}

type projectView struct {
	Name      string
	GitHubURL string
	Bullets   []template.HTML
}

type skillGroupView struct {
	Category string
	Names    string
}

type resumeView struct {
	Personal       types.PersonalInfo
	ContactLine    string
	Summary        string
	IsCV           bool
	Experience     []experienceView
	Projects       []projectView
	SkillGroups    []skillGroupView
	Certifications []types.PayloadCertification
	Education      []types.PayloadEducation
}

// LetterDoc is the document model for the cover letter renderers. It is also
// what the external renderer receives as the payload for cover letters.
type LetterDoc struct {
	Personal   types.PersonalInfo `json:"personal"`
	Date       string             `json:"date"`
	Salutation string             `json:"salutation"`
	Paragraphs []string           `json:"paragraphs"`
}

type letterView struct {
	Personal    types.PersonalInfo
	ContactLine string
	Date        string
	Salutation  string
	Paragraphs  []string
}

// RenderHTML renders the resume (or CV) payload to an HTML file at outPath.
// Emphasis spans become <strong> elements.
func RenderHTML(payload *types.RenderPayload, annotator *emphasis.Annotator, outPath string) error {
	tmpl, err := template.ParseFS(templateFS, "templates/resume.html.tmpl")
	if err != nil {
		return &TemplateError{Message: "failed to parse resume template", Cause: err}
	}

	view := buildResumeView(payload, annotator)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return &TemplateError{Message: "failed to execute resume template", Cause: err}
	}
	return writeOutput(outPath, buf.Bytes())
}

// RenderLetterHTML renders a cover letter document to an HTML file at outPath.
func RenderLetterHTML(doc *LetterDoc, outPath string) error {
	tmpl, err := template.ParseFS(templateFS, "templates/coverletter.html.tmpl")
	if err != nil {
		return &TemplateError{Message: "failed to parse cover letter template", Cause: err}
	}

	view := letterView{
		Personal:    doc.Personal,
		ContactLine: contactLine(doc.Personal),
		Date:        doc.Date,
		Salutation:  doc.Salutation,
		Paragraphs:  doc.Paragraphs,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return &TemplateError{Message: "failed to execute cover letter template", Cause: err}
	}
	return writeOutput(outPath, buf.Bytes())
}

func buildResumeView(payload *types.RenderPayload, annotator *emphasis.Annotator) *resumeView {
	view := &resumeView{
		Personal:       payload.Personal,
		ContactLine:    contactLine(payload.Personal),
		Summary:        payload.Summary,
		IsCV:           payload.IsCV,
		Certifications: payload.Certifications,
	}
	for _, edu := range payload.Education {
		if edu.EndDate != "" {
			edu.EndDate = FormatDate(edu.EndDate)
		}
		view.Education = append(view.Education, edu)
	}

	for _, exp := range payload.Experience {
		ev := experienceView{
			Company:   exp.Company,
			Title:     exp.Title,
			Location:  exp.Location,
			DateRange: FormatDateRange(exp.StartDate, exp.EndDate),
		}
		for _, b := range exp.Bullets {
			ev.Bullets = append(ev.Bullets, bulletHTML(b, annotator))
		}
		view.Experience = append(view.Experience, ev)
	}

	for _, proj := range payload.Projects {
		pv := projectView{Name: proj.Name, GitHubURL: proj.GitHubURL}
		for _, b := range proj.Bullets {
			pv.Bullets = append(pv.Bullets, bulletHTML(b, annotator))
		}
		view.Projects = append(view.Projects, pv)
	}

	view.SkillGroups = groupPayloadSkills(payload.Skills)
	return view
}

// bulletHTML escapes the bullet text and wraps emphasized spans in <strong>.
func bulletHTML(b types.PayloadBullet, annotator *emphasis.Annotator) template.HTML {
	var sb strings.Builder
	for _, span := range annotator.Annotate(b.Text, b.MatchedKeywords) {
		if span.Emphasized {
			sb.WriteString("<strong>")
			sb.WriteString(html.EscapeString(span.Text))
			sb.WriteString("</strong>")
		} else {
			sb.WriteString(html.EscapeString(span.Text))
		}
	}
	return template.HTML(sb.String()) //nolint:gosec // spans are escaped above
}

// groupPayloadSkills groups skills by category in first-seen order.
// Uncategorized skills fall into "Other".
func groupPayloadSkills(skills []types.PayloadSkill) []skillGroupView {
	order := make([]string, 0)
	names := make(map[string][]string)
	for _, s := range skills {
		category := s.Category
		if category == "" {
			category = "Other"
		}
		if _, seen := names[category]; !seen {
			order = append(order, category)
		}
		names[category] = append(names[category], s.Name)
	}

	groups := make([]skillGroupView, 0, len(order))
	for _, category := range order {
		groups = append(groups, skillGroupView{
			Category: category,
			Names:    strings.Join(names[category], ", "),
		})
	}
	return groups
}

// contactLine joins the non-empty contact fields with a separator dot.
func contactLine(p types.PersonalInfo) string {
	parts := make([]string, 0, 6)
	for _, field := range []string{p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub, p.Portfolio} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, " · ")
}

// writeOutput writes content via a temp file and rename so a failed render
// never leaves a truncated document behind.
func writeOutput(outPath string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return &RenderError{Message: "failed to create output directory", Cause: err}
	}
	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".render-*")
	if err != nil {
		return &RenderError{Message: "failed to create temp output", Cause: err}
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &RenderError{Message: "failed to write output", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &RenderError{Message: "failed to close output", Cause: err}
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return &RenderError{Message: "failed to move output into place", Cause: err}
	}
	return nil
}
