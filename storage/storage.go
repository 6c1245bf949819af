package storage

import (
	"context"
	"errors"

	"github.com/cvsync/backend/models"
)

// Fixed client-facing messages; only these cross the API boundary for
// profile lookup failures.
var (
	ErrProfileExists   = errors.New("Profile with this name already exists")
	ErrProfileNotFound = errors.New("Profile not found")
)

// Store is the persistence contract consumed by the screening pipeline and
// the HTTP handlers. Referential integrity (verdict → resume → profile) is
// the implementation's responsibility.
type Store interface {
	// CreateProfile inserts a profile; ErrProfileExists on a name collision.
	CreateProfile(ctx context.Context, profile *models.JobProfile) error

	// GetProfile looks a profile up by its unique name.
	GetProfile(ctx context.Context, name string) (*models.JobProfile, error)

	// ListProfiles returns all profiles in storage order.
	ListProfiles(ctx context.Context) ([]models.JobProfile, error)

	// InsertResume persists an uploaded resume. The caller assigns the ID.
	InsertResume(ctx context.Context, resume *models.ResumeDocument) error

	// InsertVerdict persists the verdict for one resume. At most one
	// verdict may exist per resume.
	InsertVerdict(ctx context.Context, verdict *models.MatchVerdict) error

	// ListCandidates joins verdicts with candidate metadata for a profile,
	// omitting resumes that have no verdict. A non-nil threshold keeps only
	// verdicts with match_score >= threshold.
	ListCandidates(ctx context.Context, profileName string, threshold *float64) ([]models.CandidateVerdict, error)
}
