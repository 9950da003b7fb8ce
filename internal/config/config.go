// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	JD                 string `json:"jd,omitempty"`                   // Path to job description file (txt or html)
	JDURL              string `json:"jd_url,omitempty"`               // URL to fetch the job description from
	Wordlists          string `json:"wordlists,omitempty"`            // Path to a wordlists override JSON file
	OutputDir          string `json:"output_dir,omitempty"`           // Directory for rendered documents
	DOCXTemplate       string `json:"docx_template,omitempty"`        // Path to a DOCX placeholder template
	LetterDOCXTemplate string `json:"letter_docx_template,omitempty"` // Path to a DOCX cover letter template

	// Posting metadata
	Company       string `json:"company,omitempty"`        // Company name for filenames and tracking
	Title         string `json:"title,omitempty"`          // Job title for tracking
	HiringManager string `json:"hiring_manager,omitempty"` // Addressee for the cover letter

	// Limits
	BulletsPerJob  int `json:"bullets_per_job,omitempty"`  // Maximum bullets per work experience
	ProjectBullets int `json:"project_bullets,omitempty"`  // Maximum bullets per project
	MaxProjects    int `json:"max_projects,omitempty"`     // Maximum projects in resume mode

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed stage summaries
	Track       bool   `json:"track,omitempty"`        // Record the generation as a job application
	RendererCmd string `json:"renderer_cmd,omitempty"` // External renderer command
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.JD != "" && c.JDURL != "" {
		return fmt.Errorf("config error: 'jd' and 'jd_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.BulletsPerJob < 0 {
		return fmt.Errorf("config error: 'bullets_per_job' must be non-negative")
	}
	if c.ProjectBullets < 0 {
		return fmt.Errorf("config error: 'project_bullets' must be non-negative")
	}
	if c.MaxProjects < 0 {
		return fmt.Errorf("config error: 'max_projects' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.JD)
		}
	}
	if c.Wordlists != "" {
		if _, err := os.Stat(c.Wordlists); os.IsNotExist(err) {
			return fmt.Errorf("config error: wordlists file not found: %s", c.Wordlists)
		}
	}
	if c.DOCXTemplate != "" {
		if _, err := os.Stat(c.DOCXTemplate); os.IsNotExist(err) {
			return fmt.Errorf("config error: DOCX template not found: %s", c.DOCXTemplate)
		}
	}
	if c.LetterDOCXTemplate != "" {
		if _, err := os.Stat(c.LetterDOCXTemplate); os.IsNotExist(err) {
			return fmt.Errorf("config error: DOCX letter template not found: %s", c.LetterDOCXTemplate)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.JDURL == "" {
		result.JDURL = defaults.JDURL
	}
	if result.Wordlists == "" {
		result.Wordlists = defaults.Wordlists
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DOCXTemplate == "" {
		result.DOCXTemplate = defaults.DOCXTemplate
	}
	if result.LetterDOCXTemplate == "" {
		result.LetterDOCXTemplate = defaults.LetterDOCXTemplate
	}
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.Title == "" {
		result.Title = defaults.Title
	}
	if result.HiringManager == "" {
		result.HiringManager = defaults.HiringManager
	}
	if result.RendererCmd == "" {
		result.RendererCmd = defaults.RendererCmd
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.BulletsPerJob == 0 {
		result.BulletsPerJob = defaults.BulletsPerJob
	}
	if result.ProjectBullets == 0 {
		result.ProjectBullets = defaults.ProjectBullets
	}
	if result.MaxProjects == 0 {
		result.MaxProjects = defaults.MaxProjects
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// OutputDirOrDefault returns the configured output directory or "output".
func (c *Config) OutputDirOrDefault() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return "output"
}
