package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopinath/resume-tailor/internal/config"
	"github.com/gopinath/resume-tailor/internal/observability"
	"github.com/gopinath/resume-tailor/internal/pipeline"
	"github.com/gopinath/resume-tailor/internal/selection"
)

// generateFlags holds the flag values shared by generate, cv, and cover-letter.
type generateFlags struct {
	configPath         string
	jd                 string
	jdURL              string
	company            string
	title              string
	hiringManager      string
	wordlists          string
	outputDir          string
	docxTemplate       string
	letterDocxTemplate string
	rendererCmd        string
	bulletsPerJob      int
	projectBullets     int
	maxProjects        int
	track              bool
	verbose            bool
	databaseURL        string
}

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume for a job description",
	Long: `Reads a job description from a file or URL, extracts its keywords, selects the
most relevant bullets from your experience bank, and renders a tailored resume
with an ATS match score.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, generateFlagValues, false, false)
	},
}

var generateFlagValues = &generateFlags{}

func init() {
	addGenerateFlags(generateCommand, generateFlagValues)
	rootCmd.AddCommand(generateCommand)
}

func addGenerateFlags(cmd *cobra.Command, f *generateFlags) {
	// Config file flag (processed first)
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	cmd.Flags().StringVarP(&f.jd, "jd", "j", "", "Path to job description file, txt or html (mutually exclusive with --jd-url)")
	cmd.Flags().StringVar(&f.jdURL, "jd-url", "", "URL to fetch the job description from (mutually exclusive with --jd)")
	cmd.Flags().StringVarP(&f.company, "company", "c", "", "Company name, used in filenames and tracking")
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Job title, used in tracking and the cover letter")
	cmd.Flags().StringVar(&f.hiringManager, "hiring-manager", "", "Addressee for the cover letter salutation")
	cmd.Flags().StringVar(&f.wordlists, "wordlists", "", "Path to a wordlists override JSON file")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Directory for rendered documents (default \"output\")")
	cmd.Flags().StringVar(&f.docxTemplate, "docx-template", "", "Path to a DOCX placeholder template; enables DOCX output")
	cmd.Flags().StringVar(&f.letterDocxTemplate, "letter-docx-template", "", "Path to a DOCX cover letter template; enables DOCX letter output")
	cmd.Flags().StringVar(&f.rendererCmd, "renderer-cmd", "", "External renderer command; enables PDF output")
	cmd.Flags().IntVar(&f.bulletsPerJob, "bullets-per-job", 0, fmt.Sprintf("Maximum bullets per work experience (default %d)", selection.DefaultMaxBulletsPerJob))
	cmd.Flags().IntVar(&f.projectBullets, "project-bullets", 0, fmt.Sprintf("Maximum bullets per project (default %d)", selection.DefaultMaxProjectBullets))
	cmd.Flags().IntVar(&f.maxProjects, "max-projects", 0, fmt.Sprintf("Maximum projects in resume mode (default %d)", selection.DefaultMaxProjects))
	cmd.Flags().BoolVar(&f.track, "track", false, "Record this generation as a job application")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed stage summaries")

	// Database URL for profile data and history
	cmd.Flags().StringVar(&f.databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
}

func runGenerate(cmd *cobra.Command, f *generateFlags, isCV, coverLetter bool) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if f.configPath != "" {
		loadedCfg, err := config.LoadConfig(f.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if f.verbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", f.configPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("jd") {
		cfg.JD = f.jd
	}
	if cmd.Flags().Changed("jd-url") {
		cfg.JDURL = f.jdURL
	}
	if cmd.Flags().Changed("company") {
		cfg.Company = f.company
	}
	if cmd.Flags().Changed("title") {
		cfg.Title = f.title
	}
	if cmd.Flags().Changed("hiring-manager") {
		cfg.HiringManager = f.hiringManager
	}
	if cmd.Flags().Changed("wordlists") {
		cfg.Wordlists = f.wordlists
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if cmd.Flags().Changed("docx-template") {
		cfg.DOCXTemplate = f.docxTemplate
	}
	if cmd.Flags().Changed("letter-docx-template") {
		cfg.LetterDOCXTemplate = f.letterDocxTemplate
	}
	if cmd.Flags().Changed("renderer-cmd") {
		cfg.RendererCmd = f.rendererCmd
	}
	if cmd.Flags().Changed("bullets-per-job") {
		cfg.BulletsPerJob = f.bulletsPerJob
	}
	if cmd.Flags().Changed("project-bullets") {
		cfg.ProjectBullets = f.projectBullets
	}
	if cmd.Flags().Changed("max-projects") {
		cfg.MaxProjects = f.maxProjects
	}
	if cmd.Flags().Changed("track") {
		cfg.Track = f.track
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = f.databaseURL
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		BulletsPerJob:  selection.DefaultMaxBulletsPerJob,
		ProjectBullets: selection.DefaultMaxProjectBullets,
		MaxProjects:    selection.DefaultMaxProjects,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.JD == "" && cfg.JDURL == "" {
		return fmt.Errorf("either --jd or --jd-url must be provided (via flag or config)")
	}
	if cfg.JD != "" && cfg.JDURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive; provide only one")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	jdSource := cfg.JD
	if jdSource == "" {
		jdSource = cfg.JDURL
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		JDSource:           jdSource,
		Company:            cfg.Company,
		Title:              cfg.Title,
		HiringManager:      cfg.HiringManager,
		IsCV:               isCV,
		CoverLetter:        coverLetter,
		Track:              cfg.Track,
		Verbose:            cfg.Verbose,
		DatabaseURL:        cfg.DatabaseURL,
		WordlistsPath:      cfg.Wordlists,
		OutputDir:          cfg.OutputDirOrDefault(),
		DOCXTemplate:       cfg.DOCXTemplate,
		LetterDOCXTemplate: cfg.LetterDOCXTemplate,
		RendererCmd:        cfg.RendererCmd,
		BulletsPerJob:      cfg.BulletsPerJob,
		ProjectBullets:     cfg.ProjectBullets,
		MaxProjects:        cfg.MaxProjects,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "ATS score: %.1f (%d of %d keywords covered)\n",
		result.ATS.Score, len(result.ATS.Matched), len(result.ATS.Matched)+len(result.ATS.Missing))
	fmt.Fprintln(os.Stdout, "Output files:")
	for _, path := range result.OutputPaths {
		fmt.Fprintf(os.Stdout, "  %s\n", path)
	}
	if !cfg.Verbose && len(result.Warnings) > 0 {
		observability.NewPrinter(os.Stdout).PrintWarnings(result.Warnings)
	}
	return nil
}
