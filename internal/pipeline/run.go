// Package pipeline provides the high-level orchestration for one generation
// run: ingest, extract, score, select, measure, persist, render.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/gopinath/resume-tailor/internal/ats"
	"github.com/gopinath/resume-tailor/internal/emphasis"
	"github.com/gopinath/resume-tailor/internal/ingest"
	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/letter"
	"github.com/gopinath/resume-tailor/internal/observability"
	"github.com/gopinath/resume-tailor/internal/render"
	"github.com/gopinath/resume-tailor/internal/scoring"
	"github.com/gopinath/resume-tailor/internal/selection"
	"github.com/gopinath/resume-tailor/internal/store"
	"github.com/gopinath/resume-tailor/internal/types"
	"github.com/gopinath/resume-tailor/internal/wordlists"
)

// RunOptions holds configuration for one generation run.
type RunOptions struct {
	JDSource      string // file path or http(s) URL
	Company       string
	Title         string
	HiringManager string

	IsCV        bool
	CoverLetter bool
	Track       bool
	Verbose     bool

	DatabaseURL        string
	WordlistsPath      string
	OutputDir          string
	DOCXTemplate       string
	LetterDOCXTemplate string
	RendererCmd        string

	BulletsPerJob  int
	ProjectBullets int
	MaxProjects    int

	// Out receives progress and verbose output; defaults to os.Stdout.
	Out io.Writer
}

// Result summarizes a completed run.
type Result struct {
	RunID             string
	RoleType          string
	ATS               ats.Result
	OutputPaths       []string
	SelectedBulletIDs []int64
	// Warnings are non-fatal failures (history reads, persistence updates).
	// A run with warnings still produced its documents.
	Warnings []string
}

// Run executes the full generation pipeline.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)
	result := &Result{RunID: uuid.NewString()}

	lists, err := loadLists(opts.WordlistsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load word lists: %w", err)
	}

	fmt.Fprintf(out, "Step 1/6: Reading job description from %s...\n", opts.JDSource)
	jdText, err := ingest.ReadJD(ctx, opts.JDSource, nil)
	if err != nil {
		return nil, fmt.Errorf("job description ingestion failed: %w", err)
	}
	if strings.TrimSpace(jdText) == "" {
		return nil, fmt.Errorf("job description is empty: %s", opts.JDSource)
	}

	fmt.Fprintf(out, "Step 2/6: Extracting keywords...\n")
	extractor := keywords.NewExtractor(lists)
	kws := extractor.Extract(jdText)
	result.RoleType = extractor.ClassifyRole(jdText)
	if opts.Verbose {
		printer.PrintKeywords(kws, result.RoleType)
	}

	if opts.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required; set DATABASE_URL or pass --database-url")
	}
	db, err := store.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	profile, err := db.LoadProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	fmt.Fprintf(out, "Step 3/6: Scoring %d experience entries against %d keywords...\n",
		len(profile.Experience), len(kws))
	hist := loadHistory(ctx, db, result)
	scorer := scoring.NewScorer(lists, hist)

	selectedJobs := selection.SelectBullets(profile.Experience, scorer, kws, opts.BulletsPerJob)
	selectedProjects := selection.SelectProjects(profile.Projects, scorer, kws, opts.IsCV, opts.MaxProjects, opts.ProjectBullets)
	selectedSkills := profile.Skills
	if !opts.IsCV {
		selectedSkills = selection.SelectSkills(profile.Skills, kws)
	}
	result.SelectedBulletIDs = selection.SelectedBulletIDs(selectedJobs)
	if opts.Verbose {
		printer.PrintSelection(selectedJobs, selectedProjects)
	}

	fmt.Fprintf(out, "Step 4/6: Computing ATS coverage...\n")
	result.ATS = ats.Compute(selectedJobs, selectedProjects, selectedSkills, kws, lists)
	if opts.Verbose {
		printer.PrintATS(result.ATS)
	}

	fmt.Fprintf(out, "Step 5/6: Updating history...\n")
	persistRun(ctx, db, opts, kws, result)

	fmt.Fprintf(out, "Step 6/6: Rendering documents...\n")
	summary := ""
	if opts.IsCV {
		summary = composeSummary(profile, result.RoleType)
	}
	payload := render.BuildPayload(profile, selectedJobs, selectedProjects, selectedSkills, opts.IsCV, summary)
	annotator := emphasis.NewAnnotator(lists, 0)

	renderOpts := render.Options{
		OutputDir:    outputDir(opts),
		BaseName:     baseName(opts),
		DOCXTemplate: opts.DOCXTemplate,
		DocType:      docType(opts),
	}
	if opts.RendererCmd != "" {
		renderOpts.External = render.NewExternalRenderer(opts.RendererCmd, 0)
	}
	paths, err := render.Render(ctx, payload, annotator, renderOpts)
	if err != nil {
		return nil, err
	}
	result.OutputPaths = paths

	if opts.CoverLetter {
		letterPaths, err := renderLetter(ctx, opts, profile, selectedJobs, selectedSkills)
		if err != nil {
			return nil, err
		}
		result.OutputPaths = append(result.OutputPaths, letterPaths...)
	}

	if opts.Verbose {
		printer.PrintWarnings(result.Warnings)
	}
	return result, nil
}

// loadLists reads the wordlists override file or falls back to the embedded
// defaults.
func loadLists(path string) (*wordlists.Lists, error) {
	if path == "" {
		return wordlists.Default(), nil
	}
	return wordlists.Load(path)
}

// loadHistory reads scoring history from the store. Every read failure is a
// warning, never fatal: a fresh database scores neutrally.
func loadHistory(ctx context.Context, db *store.Store, result *Result) scoring.History {
	hist := scoring.History{}

	freqs, err := db.KeywordFrequencies(ctx)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("keyword history unavailable: %v", err))
	} else if len(freqs) > 0 {
		totalJDs, err := db.TotalJDs(ctx)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("run count unavailable: %v", err))
		} else {
			hist.TFIDF = scoring.ComputeTFIDFWeights(freqs, totalJDs)
		}
	}

	roleWeights, err := db.RoleWeights(ctx, result.RoleType)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("role weights unavailable: %v", err))
	} else {
		hist.RoleWeights = roleWeights
	}

	perf, err := db.BulletPerformance(ctx)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("bullet performance unavailable: %v", err))
	} else {
		hist.Performance = perf
	}

	return hist
}

// persistRun records keyword frequencies, role keyword weights, bullet
// selections, and (when tracking) the application row. Failures are warnings.
func persistRun(ctx context.Context, db *store.Store, opts RunOptions, kws []keywords.Keyword, result *Result) {
	phrases := keywords.Phrases(kws)

	if err := db.RecordKeywords(ctx, phrases); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("keyword frequency update failed: %v", err))
	}
	if err := db.RecordRoleKeywords(ctx, result.RoleType, phrases); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("role weight update failed: %v", err))
	}
	if err := db.RecordSelection(ctx, result.SelectedBulletIDs, result.ATS.Score); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("bullet performance update failed: %v", err))
	}

	if opts.Track {
		app := &types.JobApplication{
			RunID:       result.RunID,
			Company:     opts.Company,
			JobTitle:    opts.Title,
			ATSScore:    result.ATS.Score,
			RoleType:    result.RoleType,
			BulletsUsed: result.SelectedBulletIDs,
			ResumeFile:  baseName(opts) + ".html",
			Outcome:     types.OutcomeGenerated,
		}
		if _, err := db.SaveApplication(ctx, app); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("application tracking failed: %v", err))
		}
	}
}

func renderLetter(ctx context.Context, opts RunOptions, profile *types.Profile, jobs []selection.SelectedJob, skills []types.Skill) ([]string, error) {
	jd := &types.JobDescription{
		Company:       opts.Company,
		Title:         opts.Title,
		HiringManager: opts.HiringManager,
	}
	composed := letter.NewComposer().Compose(profile, jd, jobs, skills)

	doc := &render.LetterDoc{
		Personal:   profile.Personal,
		Date:       composed.Date,
		Salutation: composed.Salutation,
		Paragraphs: composed.Paragraphs,
	}

	letterOpts := render.Options{
		OutputDir:    outputDir(opts),
		BaseName:     letterBaseName(opts),
		DOCXTemplate: opts.LetterDOCXTemplate,
	}
	if opts.RendererCmd != "" {
		letterOpts.External = render.NewExternalRenderer(opts.RendererCmd, 0)
	}
	return render.RenderLetter(ctx, doc, letterOpts)
}

// composeSummary builds the CV header summary from profile breadth.
func composeSummary(profile *types.Profile, roleType string) string {
	descriptor := roleType
	if descriptor == keywords.RoleTypeOther || descriptor == "" {
		descriptor = "technology professional"
	}
	skillNames := make([]string, 0, 3)
	for _, s := range profile.Skills {
		if len(skillNames) >= 3 {
			break
		}
		skillNames = append(skillNames, s.Name)
	}
	summary := fmt.Sprintf("%s with experience across %d roles and %d projects.",
		descriptor, len(profile.Experience), len(profile.Projects))
	if len(skillNames) > 0 {
		summary += " Core tools: " + strings.Join(skillNames, ", ") + "."
	}
	return summary
}

func outputDir(opts RunOptions) string {
	if opts.OutputDir != "" {
		return opts.OutputDir
	}
	return "output"
}

func docType(opts RunOptions) string {
	if opts.IsCV {
		return render.DocTypeCV
	}
	return render.DocTypeResume
}

func baseName(opts RunOptions) string {
	prefix := "resume"
	if opts.IsCV {
		prefix = "cv"
	}
	return prefix + companySuffix(opts.Company)
}

func letterBaseName(opts RunOptions) string {
	return "coverletter" + companySuffix(opts.Company)
}

// companySuffix turns a company name into a filename-safe suffix.
func companySuffix(company string) string {
	cleaned := strings.TrimSpace(strings.ToLower(company))
	if cleaned == "" {
		return ""
	}
	var sb strings.Builder
	for _, r := range cleaned {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return ""
	}
	return "_" + sb.String()
}
