package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/gopinath/resume-tailor/internal/types"
)

// LoadProfile reads the full candidate profile, sections in display order and
// bullets attached to their parents.
func (s *Store) LoadProfile(ctx context.Context) (*types.Profile, error) {
	profile := &types.Profile{}

	err := s.pool.QueryRow(ctx,
		`SELECT name, email, phone, linkedin, github, portfolio, location
		 FROM personal_info WHERE id = 1`,
	).Scan(&profile.Personal.Name, &profile.Personal.Email, &profile.Personal.Phone,
		&profile.Personal.LinkedIn, &profile.Personal.GitHub, &profile.Personal.Portfolio,
		&profile.Personal.Location)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no profile found; run the seed command first")
		}
		return nil, fmt.Errorf("failed to load personal info: %w", err)
	}

	if profile.Experience, err = s.loadExperience(ctx); err != nil {
		return nil, err
	}
	if profile.Projects, err = s.loadProjects(ctx); err != nil {
		return nil, err
	}
	if profile.Skills, err = s.loadSkills(ctx); err != nil {
		return nil, err
	}
	if profile.Education, err = s.loadEducation(ctx); err != nil {
		return nil, err
	}
	if profile.Certifications, err = s.loadCertifications(ctx); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Store) loadExperience(ctx context.Context) ([]types.WorkExperience, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, job_title, company, location, start_date, end_date, display_order
		 FROM work_experience ORDER BY display_order, start_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load work experience: %w", err)
	}
	defer rows.Close()

	var jobs []types.WorkExperience
	for rows.Next() {
		var job types.WorkExperience
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Location,
			&job.StartDate, &job.EndDate, &job.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan work experience: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading work experience: %w", err)
	}

	for i := range jobs {
		bullets, err := s.loadBullets(ctx, "work_experience_id", jobs[i].ID)
		if err != nil {
			return nil, err
		}
		jobs[i].Bullets = bullets
	}
	return jobs, nil
}

func (s *Store) loadProjects(ctx context.Context) ([]types.Project, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, project_name, github_url, display_order
		 FROM projects ORDER BY display_order`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.GitHubURL, &p.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading projects: %w", err)
	}

	for i := range projects {
		bullets, err := s.loadBullets(ctx, "project_id", projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Bullets = bullets
	}
	return projects, nil
}

// loadBullets loads the bullets under one parent column ("work_experience_id"
// or "project_id"). The column name is a code constant, never user input.
func (s *Store) loadBullets(ctx context.Context, parentColumn string, parentID int64) ([]types.Bullet, error) {
	rows, err := s.pool.Query(ctx,
		fmt.Sprintf(`SELECT id, bullet_text, keywords, COALESCE(work_experience_id, 0), COALESCE(project_id, 0), display_order
		 FROM bullets WHERE %s = $1 ORDER BY display_order, id`, parentColumn),
		parentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load bullets: %w", err)
	}
	defer rows.Close()

	var bullets []types.Bullet
	for rows.Next() {
		var b types.Bullet
		var keywordCSV string
		if err := rows.Scan(&b.ID, &b.Text, &keywordCSV, &b.WorkExperienceID, &b.ProjectID, &b.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan bullet: %w", err)
		}
		b.Keywords = splitKeywordCSV(keywordCSV)
		bullets = append(bullets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading bullets: %w", err)
	}
	return bullets, nil
}

func (s *Store) loadSkills(ctx context.Context) ([]types.Skill, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, skill_name, category, proficiency, display_order
		 FROM skills ORDER BY display_order, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	defer rows.Close()

	var skills []types.Skill
	for rows.Next() {
		var sk types.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Proficiency, &sk.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

func (s *Store) loadEducation(ctx context.Context) ([]types.Education, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, degree, field, institution, location, gpa, end_date, display_order
		 FROM education ORDER BY display_order, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load education: %w", err)
	}
	defer rows.Close()

	var entries []types.Education
	for rows.Next() {
		var e types.Education
		if err := rows.Scan(&e.ID, &e.Degree, &e.Field, &e.Institution, &e.Location,
			&e.GPA, &e.EndDate, &e.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) loadCertifications(ctx context.Context) ([]types.Certification, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, issuer, issued, expires, credential_id, display_order
		 FROM certifications ORDER BY display_order, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load certifications: %w", err)
	}
	defer rows.Close()

	var certs []types.Certification
	for rows.Next() {
		var c types.Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.Issuer, &c.Issued, &c.Expires,
			&c.CredentialID, &c.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

// ReplaceProfile wipes the profile tables and loads the given profile in one
// transaction. History tables (keyword frequency, role weights, bullet
// performance, applications) are untouched.
func (s *Store) ReplaceProfile(ctx context.Context, profile *types.Profile) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, table := range []string{"bullets", "work_experience", "projects", "skills", "education", "certifications", "personal_info"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO personal_info (id, name, email, phone, linkedin, github, portfolio, location)
		 VALUES (1, $1, $2, $3, $4, $5, $6, $7)`,
		profile.Personal.Name, profile.Personal.Email, profile.Personal.Phone,
		profile.Personal.LinkedIn, profile.Personal.GitHub, profile.Personal.Portfolio,
		profile.Personal.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to insert personal info: %w", err)
	}

	for i, job := range profile.Experience {
		var jobID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO work_experience (job_title, company, location, start_date, end_date, display_order)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			job.Title, job.Company, job.Location, job.StartDate, job.EndDate, orderOr(i, job.DisplayOrder),
		).Scan(&jobID)
		if err != nil {
			return fmt.Errorf("failed to insert work experience %q: %w", job.Company, err)
		}
		for j, b := range job.Bullets {
			_, err := tx.Exec(ctx,
				`INSERT INTO bullets (bullet_text, keywords, work_experience_id, display_order)
				 VALUES ($1, $2, $3, $4)`,
				b.Text, strings.Join(b.Keywords, ","), jobID, orderOr(j, b.DisplayOrder),
			)
			if err != nil {
				return fmt.Errorf("failed to insert bullet: %w", err)
			}
		}
	}

	for i, p := range profile.Projects {
		var projectID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO projects (project_name, github_url, display_order)
			 VALUES ($1, $2, $3) RETURNING id`,
			p.Name, p.GitHubURL, orderOr(i, p.DisplayOrder),
		).Scan(&projectID)
		if err != nil {
			return fmt.Errorf("failed to insert project %q: %w", p.Name, err)
		}
		for j, b := range p.Bullets {
			_, err := tx.Exec(ctx,
				`INSERT INTO bullets (bullet_text, keywords, project_id, display_order)
				 VALUES ($1, $2, $3, $4)`,
				b.Text, strings.Join(b.Keywords, ","), projectID, orderOr(j, b.DisplayOrder),
			)
			if err != nil {
				return fmt.Errorf("failed to insert project bullet: %w", err)
			}
		}
	}

	for i, sk := range profile.Skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO skills (skill_name, category, proficiency, display_order)
			 VALUES ($1, $2, $3, $4)`,
			sk.Name, sk.Category, sk.Proficiency, orderOr(i, sk.DisplayOrder),
		)
		if err != nil {
			return fmt.Errorf("failed to insert skill %q: %w", sk.Name, err)
		}
	}

	for i, e := range profile.Education {
		_, err := tx.Exec(ctx,
			`INSERT INTO education (degree, field, institution, location, gpa, end_date, display_order)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.Degree, e.Field, e.Institution, e.Location, e.GPA, e.EndDate, orderOr(i, e.DisplayOrder),
		)
		if err != nil {
			return fmt.Errorf("failed to insert education %q: %w", e.Institution, err)
		}
	}

	for i, c := range profile.Certifications {
		_, err := tx.Exec(ctx,
			`INSERT INTO certifications (name, issuer, issued, expires, credential_id, display_order)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			c.Name, c.Issuer, c.Issued, c.Expires, c.CredentialID, orderOr(i, c.DisplayOrder),
		)
		if err != nil {
			return fmt.Errorf("failed to insert certification %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit profile: %w", err)
	}
	return nil
}

// orderOr falls back to the slice position when no explicit display order is
// set, so seed files may omit it.
func orderOr(position, explicit int) int {
	if explicit != 0 {
		return explicit
	}
	return position
}

// splitKeywordCSV parses the comma-separated bullet keyword column.
func splitKeywordCSV(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
