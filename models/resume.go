package models

import "time"

// ResumeDocument represents one uploaded resume and the candidate metadata
// parsed out of it. A resume belongs to exactly one profile and is never
// updated after creation; it may exist without a verdict when scoring failed.
type ResumeDocument struct {
	ID                   string    `json:"id" firestore:"-" example:"7f9c24e5-1d7a-4f3e-9b6a-0c2f9d4f5a61"`
	Filename             string    `json:"filename" firestore:"filename" example:"jane_doe_cv.pdf"`
	ResumeText           string    `json:"-" firestore:"resumeText"`
	ProfileName          string    `json:"profile_name" firestore:"profileName" example:"backend-senior-2025"`
	CandidateName        *string   `json:"candidate_name" firestore:"candidateName"`
	CandidateEmail       *string   `json:"candidate_email" firestore:"candidateEmail"`
	TotalExperienceYears *float64  `json:"total_experience_years" firestore:"totalExperienceYears"`
	ArchiveURL           string    `json:"-" firestore:"archiveUrl,omitempty"`
	UploadedAt           time.Time `json:"uploaded_at" firestore:"uploadedAt"`
}

// CandidateInfo holds the candidate fields extracted from resume text.
// Pointers distinguish "absent" from zero values; a missing key never fails
// the extraction.
type CandidateInfo struct {
	CandidateName        *string  `json:"candidate_name"`
	CandidateEmail       *string  `json:"candidate_email"`
	TotalExperienceYears *float64 `json:"total_experience_years"`
}

// UploadResponse represents the per-upload summary returned to the caller
// @Description Resume upload and analysis summary
type UploadResponse struct {
	ResumeID             string   `json:"resume_id" example:"7f9c24e5-1d7a-4f3e-9b6a-0c2f9d4f5a61"`
	CandidateName        *string  `json:"candidate_name" example:"Jane Doe"`
	CandidateEmail       *string  `json:"candidate_email" example:"jane@example.com"`
	TotalExperienceYears *float64 `json:"total_experience_years" example:"6.5"`
	MatchScore           float64  `json:"match_score" example:"82.5"`
	Recommendation       string   `json:"recommendation" example:"Good Fit"`
}
