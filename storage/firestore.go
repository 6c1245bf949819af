package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cvsync/backend/config"
	"github.com/cvsync/backend/models"
	"github.com/cvsync/backend/utils"
)

const (
	profilesCollection = "profiles"
	resumesCollection  = "resumes"
	verdictsCollection = "verdicts"
)

// FirestoreClient implements Store on Firestore. Profiles use their name as
// document ID, which gives the uniqueness constraint for free; verdicts use
// the resume ID as document ID, which makes the 1:1 relation structural.
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// CreateProfile inserts a new job profile, rejecting duplicate names.
func (f *FirestoreClient) CreateProfile(ctx context.Context, profile *models.JobProfile) error {
	docRef := f.client.Collection(profilesCollection).Doc(profile.Name)

	// Check if profile already exists
	_, err := docRef.Get(ctx)
	if err == nil {
		return ErrProfileExists
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check profile existence: %w", err)
	}

	if _, err := docRef.Create(ctx, profile); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrProfileExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by its unique name.
func (f *FirestoreClient) GetProfile(ctx context.Context, name string) (*models.JobProfile, error) {
	doc, err := f.client.Collection(profilesCollection).Doc(name).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile models.JobProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile data: %w", err)
	}

	profile.Name = doc.Ref.ID
	return &profile, nil
}

// ListProfiles returns all job profiles.
func (f *FirestoreClient) ListProfiles(ctx context.Context) ([]models.JobProfile, error) {
	iter := f.client.Collection(profilesCollection).Documents(ctx)
	defer iter.Stop()

	var profiles []models.JobProfile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list profiles: %w", err)
		}

		var profile models.JobProfile
		if err := doc.DataTo(&profile); err != nil {
			return nil, fmt.Errorf("failed to parse profile data: %w", err)
		}
		profile.Name = doc.Ref.ID
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// InsertResume persists an uploaded resume under its pre-assigned ID.
func (f *FirestoreClient) InsertResume(ctx context.Context, resume *models.ResumeDocument) error {
	docRef := f.client.Collection(resumesCollection).Doc(resume.ID)
	if _, err := docRef.Create(ctx, resume); err != nil {
		return fmt.Errorf("failed to insert resume: %w", err)
	}
	return nil
}

// InsertVerdict persists the verdict for one resume. The resume ID is the
// document ID, so a second verdict for the same resume fails.
func (f *FirestoreClient) InsertVerdict(ctx context.Context, verdict *models.MatchVerdict) error {
	docRef := f.client.Collection(verdictsCollection).Doc(verdict.ResumeID)
	if _, err := docRef.Create(ctx, verdict); err != nil {
		return fmt.Errorf("failed to insert verdict: %w", err)
	}
	return nil
}

// ListCandidates fetches all resumes for a profile and their verdicts, then
// assembles the joined listing. Resumes without a verdict are omitted.
func (f *FirestoreClient) ListCandidates(ctx context.Context, profileName string, threshold *float64) ([]models.CandidateVerdict, error) {
	iter := f.client.Collection(resumesCollection).Where("profileName", "==", profileName).Documents(ctx)
	defer iter.Stop()

	var resumes []models.ResumeDocument
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list resumes: %w", err)
		}

		var resume models.ResumeDocument
		if err := doc.DataTo(&resume); err != nil {
			return nil, fmt.Errorf("failed to parse resume data: %w", err)
		}
		resume.ID = doc.Ref.ID
		resumes = append(resumes, resume)
	}

	verdicts := make(map[string]models.MatchVerdict, len(resumes))
	for _, resume := range resumes {
		doc, err := f.client.Collection(verdictsCollection).Doc(resume.ID).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				// Scoring failed for this resume; a resume without a
				// verdict is a valid terminal state.
				continue
			}
			return nil, fmt.Errorf("failed to get verdict: %w", err)
		}

		var verdict models.MatchVerdict
		if err := doc.DataTo(&verdict); err != nil {
			return nil, fmt.Errorf("failed to parse verdict data: %w", err)
		}
		verdict.ResumeID = doc.Ref.ID
		verdicts[resume.ID] = verdict
	}

	return joinCandidates(resumes, verdicts, threshold), nil
}

// joinCandidates builds the candidate listing from resumes and their
// verdicts, skipping unscored resumes and applying the optional minimum
// score threshold. Order follows the resume slice (storage order).
func joinCandidates(resumes []models.ResumeDocument, verdicts map[string]models.MatchVerdict, threshold *float64) []models.CandidateVerdict {
	candidates := make([]models.CandidateVerdict, 0, len(resumes))
	for _, resume := range resumes {
		verdict, ok := verdicts[resume.ID]
		if !ok {
			continue
		}
		if threshold != nil && verdict.MatchScore < *threshold {
			continue
		}

		candidates = append(candidates, models.CandidateVerdict{
			ResumeID:             resume.ID,
			CandidateName:        resume.CandidateName,
			CandidateEmail:       resume.CandidateEmail,
			TotalExperienceYears: resume.TotalExperienceYears,
			MatchScore:           verdict.MatchScore,
			Recommendation:       verdict.Recommendation,
			Strengths:            utils.DecodeStringList(verdict.Strengths),
			Gaps:                 utils.DecodeStringList(verdict.Gaps),
			Suggestions:          utils.DecodeStringList(verdict.Suggestions),
			AnalyzedAt:           verdict.AnalyzedAt,
		})
	}
	return candidates
}
