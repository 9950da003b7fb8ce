// Package store provides PostgreSQL persistence for the candidate profile and
// the keyword/bullet history that feeds scoring.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// schemaDDL creates every table the store uses. Statements are idempotent so
// Bootstrap can run against an existing database.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS personal_info (
    id INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    linkedin TEXT NOT NULL DEFAULT '',
    github TEXT NOT NULL DEFAULT '',
    portfolio TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS work_experience (
    id BIGSERIAL PRIMARY KEY,
    job_title TEXT NOT NULL,
    company TEXT NOT NULL,
    location TEXT NOT NULL DEFAULT '',
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL DEFAULT '',
    display_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS projects (
    id BIGSERIAL PRIMARY KEY,
    project_name TEXT NOT NULL,
    github_url TEXT NOT NULL DEFAULT '',
    display_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS bullets (
    id BIGSERIAL PRIMARY KEY,
    bullet_text TEXT NOT NULL,
    keywords TEXT NOT NULL DEFAULT '',
    work_experience_id BIGINT REFERENCES work_experience(id) ON DELETE CASCADE,
    project_id BIGINT REFERENCES projects(id) ON DELETE CASCADE,
    display_order INTEGER NOT NULL DEFAULT 0,
    CHECK ((work_experience_id IS NULL) <> (project_id IS NULL))
);

CREATE TABLE IF NOT EXISTS skills (
    id BIGSERIAL PRIMARY KEY,
    skill_name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    proficiency TEXT NOT NULL DEFAULT '',
    display_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS education (
    id BIGSERIAL PRIMARY KEY,
    degree TEXT NOT NULL,
    field TEXT NOT NULL DEFAULT '',
    institution TEXT NOT NULL,
    location TEXT NOT NULL DEFAULT '',
    gpa TEXT NOT NULL DEFAULT '',
    end_date TEXT NOT NULL DEFAULT '',
    display_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS certifications (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    issuer TEXT NOT NULL DEFAULT '',
    issued TEXT NOT NULL DEFAULT '',
    expires TEXT NOT NULL DEFAULT '',
    credential_id TEXT NOT NULL DEFAULT '',
    display_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS job_applications (
    id BIGSERIAL PRIMARY KEY,
    run_id TEXT NOT NULL DEFAULT '',
    company TEXT NOT NULL,
    job_title TEXT NOT NULL,
    jd_text TEXT NOT NULL DEFAULT '',
    resume_file TEXT NOT NULL DEFAULT '',
    ats_score DOUBLE PRECISION NOT NULL DEFAULT 0,
    role_type TEXT NOT NULL DEFAULT '',
    bullets_used BIGINT[] NOT NULL DEFAULT '{}',
    outcome TEXT NOT NULL DEFAULT 'Generated',
    applied BOOLEAN NOT NULL DEFAULT FALSE,
    date_applied TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS keyword_frequency (
    keyword TEXT PRIMARY KEY,
    jd_count INTEGER NOT NULL DEFAULT 1,
    first_seen TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_seen TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS role_keyword_weights (
    role_type TEXT NOT NULL,
    keyword TEXT NOT NULL,
    weight DOUBLE PRECISION NOT NULL DEFAULT 1.0 CHECK (weight >= 0.1),
    jd_count INTEGER NOT NULL DEFAULT 1,
    PRIMARY KEY (role_type, keyword)
);

CREATE TABLE IF NOT EXISTS bullet_performance (
    bullet_id BIGINT PRIMARY KEY,
    times_selected INTEGER NOT NULL DEFAULT 0,
    times_in_high_ats_resume INTEGER NOT NULL DEFAULT 0,
    times_in_interview INTEGER NOT NULL DEFAULT 0,
    times_in_offer INTEGER NOT NULL DEFAULT 0,
    avg_ats_score DOUBLE PRECISION NOT NULL DEFAULT 0
);
`

// Bootstrap applies the schema DDL.
func (s *Store) Bootstrap(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// normalizeKeyword lowercases and trims a keyword for history storage.
// Keywords shorter than two characters are dropped.
func normalizeKeyword(kw string) (string, bool) {
	kw = strings.ToLower(strings.TrimSpace(kw))
	if len(kw) < 2 {
		return "", false
	}
	return kw, true
}

// uniqueNormalized normalizes keywords and removes duplicates, preserving
// first-seen order. History counters increment at most once per keyword per
// run, so duplicates must collapse before the upsert loop.
func uniqueNormalized(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		normalized, ok := normalizeKeyword(kw)
		if !ok || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}
