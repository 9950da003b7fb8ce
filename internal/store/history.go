package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gopinath/resume-tailor/internal/types"
)

// HighATSThreshold marks a generated resume as high scoring for performance
// tracking purposes.
const HighATSThreshold = 75.0

// totalJDsQuery computes the TF-IDF denominator. Keyword counters bump on
// every run but job_applications only gets a row when tracking is on, so the
// highest keyword jd_count is folded in as a lower bound on runs. This keeps
// jd_count/total at or below 1 for every keyword.
const totalJDsQuery = `
	SELECT GREATEST(
		(SELECT COUNT(*) FROM job_applications),
		(SELECT COALESCE(MAX(jd_count), 0) FROM keyword_frequency)
	)`

// TotalJDs returns the number of job descriptions processed, the denominator
// for TF-IDF document frequency.
func (s *Store) TotalJDs(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, totalJDsQuery).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count job descriptions: %w", err)
	}
	return count, nil
}

// KeywordFrequencies returns the full keyword history, most frequent first.
func (s *Store) KeywordFrequencies(ctx context.Context) ([]types.KeywordFrequency, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT keyword, jd_count, first_seen, last_seen
		 FROM keyword_frequency ORDER BY jd_count DESC, keyword`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load keyword frequencies: %w", err)
	}
	defer rows.Close()

	var freqs []types.KeywordFrequency
	for rows.Next() {
		var f types.KeywordFrequency
		if err := rows.Scan(&f.Keyword, &f.JDCount, &f.FirstSeen, &f.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan keyword frequency: %w", err)
		}
		freqs = append(freqs, f)
	}
	return freqs, rows.Err()
}

// RecordKeywords bumps the JD count for each keyword, once per unique keyword
// per call, inside one transaction.
func (s *Store) RecordKeywords(ctx context.Context, keywords []string) error {
	unique := uniqueNormalized(keywords)
	if len(unique) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, kw := range unique {
		_, err := tx.Exec(ctx,
			`INSERT INTO keyword_frequency (keyword, jd_count, first_seen, last_seen)
			 VALUES ($1, 1, NOW(), NOW())
			 ON CONFLICT (keyword) DO UPDATE SET
			     jd_count = keyword_frequency.jd_count + 1,
			     last_seen = NOW()`,
			kw,
		)
		if err != nil {
			return fmt.Errorf("failed to record keyword %q: %w", kw, err)
		}
	}
	return tx.Commit(ctx)
}

// RecordRoleKeywords bumps the per-role JD count for each keyword seen with
// this role type, once per unique keyword per call.
func (s *Store) RecordRoleKeywords(ctx context.Context, roleType string, keywords []string) error {
	unique := uniqueNormalized(keywords)
	if roleType == "" || len(unique) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, kw := range unique {
		_, err := tx.Exec(ctx,
			`INSERT INTO role_keyword_weights (role_type, keyword, weight, jd_count)
			 VALUES ($1, $2, 1.0, 1)
			 ON CONFLICT (role_type, keyword) DO UPDATE SET
			     jd_count = role_keyword_weights.jd_count + 1,
			     weight = GREATEST(role_keyword_weights.weight, 0.1)`,
			roleType, kw,
		)
		if err != nil {
			return fmt.Errorf("failed to record role keyword %q: %w", kw, err)
		}
	}
	return tx.Commit(ctx)
}

// RoleWeights returns the per-keyword weight map for a role type. The JD
// count is the weight signal: terms seen with a role more often pull harder.
func (s *Store) RoleWeights(ctx context.Context, roleType string) (map[string]float64, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT keyword, jd_count FROM role_keyword_weights
		 WHERE role_type = $1 ORDER BY jd_count DESC, keyword`,
		roleType,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load role weights: %w", err)
	}
	defer rows.Close()

	weights := make(map[string]float64)
	for rows.Next() {
		var keyword string
		var jdCount int
		if err := rows.Scan(&keyword, &jdCount); err != nil {
			return nil, fmt.Errorf("failed to scan role weight: %w", err)
		}
		weights[keyword] = float64(jdCount)
	}
	return weights, rows.Err()
}

// BulletPerformance loads the performance history for every bullet.
func (s *Store) BulletPerformance(ctx context.Context) (map[int64]types.BulletPerformance, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT bullet_id, times_selected, times_in_high_ats_resume,
		        times_in_interview, times_in_offer, avg_ats_score
		 FROM bullet_performance`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load bullet performance: %w", err)
	}
	defer rows.Close()

	perf := make(map[int64]types.BulletPerformance)
	for rows.Next() {
		var p types.BulletPerformance
		if err := rows.Scan(&p.BulletID, &p.TimesSelected, &p.TimesInHighATSResume,
			&p.TimesInInterview, &p.TimesInOffer, &p.AvgATSScore); err != nil {
			return nil, fmt.Errorf("failed to scan bullet performance: %w", err)
		}
		perf[p.BulletID] = p
	}
	return perf, rows.Err()
}

// RecordSelection bumps selection counters for every bullet that made the
// resume, maintaining the running ATS average. One transaction per run.
func (s *Store) RecordSelection(ctx context.Context, bulletIDs []int64, atsScore float64) error {
	if len(bulletIDs) == 0 {
		return nil
	}

	highATS := 0
	if atsScore >= HighATSThreshold {
		highATS = 1
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, id := range bulletIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO bullet_performance (bullet_id, times_selected, times_in_high_ats_resume, avg_ats_score)
			 VALUES ($1, 1, $2, $3)
			 ON CONFLICT (bullet_id) DO UPDATE SET
			     times_selected = bullet_performance.times_selected + 1,
			     times_in_high_ats_resume = bullet_performance.times_in_high_ats_resume + $2,
			     avg_ats_score = (bullet_performance.avg_ats_score * bullet_performance.times_selected + $3)
			                     / (bullet_performance.times_selected + 1)`,
			id, highATS, atsScore,
		)
		if err != nil {
			return fmt.Errorf("failed to record selection for bullet %d: %w", id, err)
		}
	}
	return tx.Commit(ctx)
}

// BoostForOutcome credits the bullets used in an application when it led to
// an interview or offer.
func (s *Store) BoostForOutcome(ctx context.Context, appID int64, outcome string) error {
	column := ""
	switch outcome {
	case types.OutcomeInterview:
		column = "times_in_interview"
	case types.OutcomeOffer:
		column = "times_in_offer"
	default:
		return nil
	}

	app, err := s.GetApplication(ctx, appID)
	if err != nil {
		return err
	}
	if app == nil || len(app.BulletsUsed) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, id := range app.BulletsUsed {
		_, err := tx.Exec(ctx,
			fmt.Sprintf(`INSERT INTO bullet_performance (bullet_id, %s) VALUES ($1, 1)
			 ON CONFLICT (bullet_id) DO UPDATE SET %s = bullet_performance.%s + 1`,
				column, column, column),
			id,
		)
		if err != nil {
			return fmt.Errorf("failed to boost bullet %d: %w", id, err)
		}
	}
	return tx.Commit(ctx)
}

// TopKeywords returns the most frequent keywords across all tracked JDs.
func (s *Store) TopKeywords(ctx context.Context, limit int) ([]types.KeywordFrequency, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx,
		`SELECT keyword, jd_count, first_seen, last_seen
		 FROM keyword_frequency ORDER BY jd_count DESC, keyword LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load top keywords: %w", err)
	}
	defer rows.Close()

	return scanKeywordRows(rows)
}

// EmergingKeywords returns keywords first seen within the recent window,
// most frequent first. These are terms the market started asking for.
func (s *Store) EmergingKeywords(ctx context.Context, recentDays int) ([]types.KeywordFrequency, error) {
	if recentDays <= 0 {
		recentDays = 7
	}
	rows, err := s.pool.Query(ctx,
		`SELECT keyword, jd_count, first_seen, last_seen
		 FROM keyword_frequency
		 WHERE first_seen >= NOW() - ($1 * INTERVAL '1 day')
		 ORDER BY jd_count DESC, keyword`,
		recentDays,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load emerging keywords: %w", err)
	}
	defer rows.Close()

	return scanKeywordRows(rows)
}

func scanKeywordRows(rows pgx.Rows) ([]types.KeywordFrequency, error) {
	var freqs []types.KeywordFrequency
	for rows.Next() {
		var f types.KeywordFrequency
		if err := rows.Scan(&f.Keyword, &f.JDCount, &f.FirstSeen, &f.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan keyword: %w", err)
		}
		freqs = append(freqs, f)
	}
	return freqs, rows.Err()
}
