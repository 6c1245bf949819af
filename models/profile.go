package models

import "time"

// JobProfile represents a job opening used as the matching target for resumes.
// The name is unique and doubles as the Firestore document ID; a profile is
// never mutated once resumes are matched against it.
type JobProfile struct {
	Name               string    `json:"name" firestore:"name" example:"backend-senior-2025"`
	Title              string    `json:"title" firestore:"title" example:"Senior Backend Engineer"`
	Department         string    `json:"department" firestore:"department" example:"Engineering"`
	Location           string    `json:"location" firestore:"location" example:"Jakarta"`
	ExperienceMinYears int       `json:"experience_min_years" firestore:"experienceMinYears" example:"5"`
	ExperienceMaxYears *int      `json:"experience_max_years,omitempty" firestore:"experienceMaxYears,omitempty" example:"10"`
	SalaryRange        string    `json:"salary_range,omitempty" firestore:"salaryRange,omitempty" example:"IDR 30-45M"`
	JDText             string    `json:"jd_text" firestore:"jdText"`
	SkillsRequired     string    `json:"-" firestore:"skillsRequired"` // JSON-encoded list, see utils.EncodeStringList
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
}

// CreateProfileRequest represents a profile creation request
// @Description Job profile creation request
type CreateProfileRequest struct {
	Name               string   `json:"name" binding:"required" example:"backend-senior-2025"`
	Title              string   `json:"title" binding:"required" example:"Senior Backend Engineer"`
	Department         string   `json:"department" binding:"required" example:"Engineering"`
	Location           string   `json:"location" binding:"required" example:"Jakarta"`
	ExperienceMinYears int      `json:"experience_min_years" example:"5"`
	ExperienceMaxYears *int     `json:"experience_max_years,omitempty" example:"10"`
	SalaryRange        string   `json:"salary_range,omitempty" example:"IDR 30-45M"`
	JDText             string   `json:"jd_text" binding:"required"`
	SkillsRequired     []string `json:"skills_required" example:"Go,PostgreSQL,Kubernetes"`
}

// ProfileResponse represents a profile as exposed by the API, with the
// skill list decoded to a native slice
// @Description Job profile with decoded skill list
type ProfileResponse struct {
	Name               string    `json:"name" example:"backend-senior-2025"`
	Title              string    `json:"title" example:"Senior Backend Engineer"`
	Department         string    `json:"department" example:"Engineering"`
	Location           string    `json:"location" example:"Jakarta"`
	ExperienceMinYears int       `json:"experience_min_years" example:"5"`
	ExperienceMaxYears *int      `json:"experience_max_years,omitempty" example:"10"`
	SalaryRange        string    `json:"salary_range,omitempty" example:"IDR 30-45M"`
	JDText             string    `json:"jd_text"`
	SkillsRequired     []string  `json:"skills_required"`
	CreatedAt          time.Time `json:"created_at"`
}
