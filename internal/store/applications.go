package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gopinath/resume-tailor/internal/types"
)

// SaveApplication records one tracked generation and returns its ID.
func (s *Store) SaveApplication(ctx context.Context, app *types.JobApplication) (int64, error) {
	outcome := app.Outcome
	if outcome == "" {
		outcome = types.OutcomeGenerated
	}

	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO job_applications
		     (run_id, company, job_title, jd_text, resume_file, ats_score, role_type, bullets_used, outcome, applied)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		app.RunID, app.Company, app.JobTitle, app.JDText, app.ResumeFile,
		app.ATSScore, app.RoleType, app.BulletsUsed, outcome, app.Applied,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save application: %w", err)
	}
	return id, nil
}

// GetApplication retrieves an application by ID. A missing row returns
// (nil, nil).
func (s *Store) GetApplication(ctx context.Context, id int64) (*types.JobApplication, error) {
	var app types.JobApplication
	err := s.pool.QueryRow(ctx,
		`SELECT id, run_id, company, job_title, jd_text, resume_file, ats_score,
		        role_type, bullets_used, outcome, applied, date_applied
		 FROM job_applications WHERE id = $1`,
		id,
	).Scan(&app.ID, &app.RunID, &app.Company, &app.JobTitle, &app.JDText,
		&app.ResumeFile, &app.ATSScore, &app.RoleType, &app.BulletsUsed,
		&app.Outcome, &app.Applied, &app.DateApplied)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// ListApplications retrieves tracked applications, newest first.
func (s *Store) ListApplications(ctx context.Context, appliedOnly bool, limit int) ([]types.JobApplication, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, run_id, company, job_title, jd_text, resume_file, ats_score,
	                 role_type, bullets_used, outcome, applied, date_applied
	          FROM job_applications`
	args := []any{}
	if appliedOnly {
		query += ` WHERE applied`
	}
	query += ` ORDER BY date_applied DESC LIMIT $1`
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.JobApplication
	for rows.Next() {
		var app types.JobApplication
		if err := rows.Scan(&app.ID, &app.RunID, &app.Company, &app.JobTitle, &app.JDText,
			&app.ResumeFile, &app.ATSScore, &app.RoleType, &app.BulletsUsed,
			&app.Outcome, &app.Applied, &app.DateApplied); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// UpdateOutcome sets the outcome for an application. Marking an application
// Applied also flips the applied flag.
func (s *Store) UpdateOutcome(ctx context.Context, id int64, outcome string) error {
	result, err := s.pool.Exec(ctx,
		`UPDATE job_applications
		 SET outcome = $1, applied = (applied OR $1 <> 'Generated')
		 WHERE id = $2`,
		outcome, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update outcome: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %d", id)
	}
	return nil
}
