package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Recommendation labels form a closed set; anything else coming back from
// the LLM is out of contract.
const (
	RecommendationStrongHire  = "Strong Hire"
	RecommendationGoodFit     = "Good Fit"
	RecommendationNeedsReview = "Needs Review"
	RecommendationNotSuitable = "Not Suitable"
)

// NormalizeRecommendation maps common case and spacing variants to the
// canonical label. The second return value reports whether the raw label
// belongs to the enumeration at all.
func NormalizeRecommendation(raw string) (string, bool) {
	switch strings.ToLower(strings.Join(strings.Fields(raw), " ")) {
	case "strong hire", "strong-hire":
		return RecommendationStrongHire, true
	case "good fit", "good-fit":
		return RecommendationGoodFit, true
	case "needs review", "needs-review":
		return RecommendationNeedsReview, true
	case "not suitable", "not-suitable":
		return RecommendationNotSuitable, true
	default:
		return "", false
	}
}

// ClampScore forces a match score into the [0,100] contract range.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// FlexibleStringSlice can unmarshal from either a string or []string.
// LLMs occasionally return a single string where a list was requested.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// If both fail, return empty slice
	*f = []string{}
	return nil
}

// RawVerdict is the verdict exactly as the LLM returned it, before any
// range clamping or label normalization.
type RawVerdict struct {
	MatchScore     float64             `json:"match_score"`
	Recommendation string              `json:"recommendation"`
	Strengths      FlexibleStringSlice `json:"strengths"`
	Gaps           FlexibleStringSlice `json:"gaps"`
	Suggestions    FlexibleStringSlice `json:"suggestions"`
}

// MatchVerdict is the persisted, validated verdict for one resume. The
// resume ID doubles as the Firestore document ID, which keeps the
// one-verdict-per-resume invariant structural. Bullet lists are stored as
// JSON-encoded strings (utils.EncodeStringList).
type MatchVerdict struct {
	ResumeID       string    `json:"resume_id" firestore:"resumeId"`
	MatchScore     float64   `json:"match_score" firestore:"matchScore"`
	Recommendation string    `json:"recommendation" firestore:"recommendation"`
	Strengths      string    `json:"-" firestore:"strengths"`
	Gaps           string    `json:"-" firestore:"gaps"`
	Suggestions    string    `json:"-" firestore:"suggestions"`
	AnalyzedAt     time.Time `json:"analyzed_at" firestore:"analyzedAt"`
}

// CandidateVerdict joins one verdict with its resume's candidate metadata
// for the per-profile dashboard listing
// @Description Scored candidate for a profile
type CandidateVerdict struct {
	ResumeID             string    `json:"resume_id" example:"7f9c24e5-1d7a-4f3e-9b6a-0c2f9d4f5a61"`
	CandidateName        *string   `json:"candidate_name" example:"Jane Doe"`
	CandidateEmail       *string   `json:"candidate_email" example:"jane@example.com"`
	TotalExperienceYears *float64  `json:"total_experience_years" example:"6.5"`
	MatchScore           float64   `json:"match_score" example:"82.5"`
	Recommendation       string    `json:"recommendation" example:"Good Fit"`
	Strengths            []string  `json:"strengths"`
	Gaps                 []string  `json:"gaps"`
	Suggestions          []string  `json:"suggestions"`
	AnalyzedAt           time.Time `json:"analyzed_at"`
}
