package types

import "time"

// BulletPerformance tracks how a bullet has fared across past generation runs.
// Rows are created lazily on first selection and only ever updated additively.
type BulletPerformance struct {
	BulletID             int64   `json:"bullet_id"`
	TimesSelected        int     `json:"times_selected"`
	TimesInHighATSResume int     `json:"times_in_high_ats_resume"`
	TimesInInterview     int     `json:"times_in_interview"`
	TimesInOffer         int     `json:"times_in_offer"`
	AvgATSScore          float64 `json:"avg_ats_score"`
}

// KeywordFrequency records how many distinct job descriptions a keyword has
// appeared in. JDCount increments at most once per keyword per generation run,
// regardless of how often the keyword occurs within a single JD.
type KeywordFrequency struct {
	Keyword   string    `json:"keyword"`
	JDCount   int       `json:"jd_count"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}

// Application outcome values recorded against tracked job applications.
const (
	OutcomeGenerated = "Generated"
	OutcomeApplied   = "Applied"
	OutcomeInterview = "Interview"
	OutcomeOffer     = "Offer"
	OutcomeRejected  = "Rejected"
)

// JobApplication is one tracked generation, linking a JD to the resume file
// produced for it and the bullets that went into it.
type JobApplication struct {
	ID          int64     `json:"id"`
	RunID       string    `json:"run_id"`
	Company     string    `json:"company"`
	JobTitle    string    `json:"job_title"`
	JDText      string    `json:"jd_text,omitempty"`
	ResumeFile  string    `json:"resume_file,omitempty"`
	ATSScore    float64   `json:"ats_score"`
	RoleType    string    `json:"role_type,omitempty"`
	BulletsUsed []int64   `json:"bullets_used,omitempty"`
	Outcome     string    `json:"outcome"`
	Applied     bool      `json:"applied"`
	DateApplied time.Time `json:"date_applied"`
}
