package screening

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cvsync/backend/config"
	"github.com/cvsync/backend/models"
	"github.com/cvsync/backend/storage"
	"github.com/cvsync/backend/utils"
)

// LLM is the language-model contract the pipeline consumes. Both operations
// are single-attempt calls; retries and backoff are deliberately absent.
type LLM interface {
	ExtractCandidateInfo(ctx context.Context, resumeText, model string) (*models.CandidateInfo, error)
	AnalyzeResume(ctx context.Context, jobDescription, resumeText, model string) (*models.RawVerdict, error)
}

// TextExtractor pulls plain text out of PDF bytes.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// Archiver stores the original upload bytes. Optional collaborator; a nil
// Archiver disables archiving.
type Archiver interface {
	ArchiveResume(ctx context.Context, resumeID, filename string, data []byte) (string, error)
}

// Screener runs the resume screening pipeline: text extraction, candidate
// metadata extraction, LLM scoring and persistence of the verdict.
type Screener struct {
	llm          LLM
	store        storage.Store
	extractor    TextExtractor
	archiver     Archiver
	defaultModel string
	llmTimeout   time.Duration
}

// NewScreener creates a screener with explicitly injected collaborators.
// archiver may be nil.
func NewScreener(llm LLM, store storage.Store, extractor TextExtractor, archiver Archiver, cfg *config.Config) *Screener {
	return &Screener{
		llm:          llm,
		store:        store,
		extractor:    extractor,
		archiver:     archiver,
		defaultModel: cfg.GeminiModel,
		llmTimeout:   time.Duration(cfg.LLMTimeoutSeconds) * time.Second,
	}
}

// UploadInput is one resume upload to screen against a stored profile.
type UploadInput struct {
	ProfileName string
	Filename    string
	Data        []byte
	Model       string // optional model override, empty for the default
}

// UploadResult carries the persisted resume and its verdict.
type UploadResult struct {
	Resume  *models.ResumeDocument
	Verdict *models.MatchVerdict
}

// Screen runs the full pipeline for one upload. Stages are sequential;
// concurrent calls for different uploads are independent. Failure points:
//
//   - unknown profile: storage.ErrProfileNotFound, nothing persisted
//   - unreadable PDF: ErrDocumentParse, nothing persisted
//   - scoring failure: ErrScoring, resume persisted WITHOUT a verdict
//
// A resume without a verdict is a valid terminal state and is never rolled
// back.
func (s *Screener) Screen(ctx context.Context, in UploadInput) (*UploadResult, error) {
	profile, err := s.store.GetProfile(ctx, in.ProfileName)
	if err != nil {
		return nil, err
	}

	resumeText, err := s.extractor.ExtractText(in.Data)
	if err != nil {
		log.Printf("[Screener] PDF parse error for %q: %v", in.Filename, err)
		return nil, ErrDocumentParse
	}
	log.Printf("[Screener] PDF parsed: %s (%d chars)", in.Filename, len(resumeText))

	meta := s.ExtractMetadata(ctx, resumeText, in.Model)

	resume := &models.ResumeDocument{
		ID:                   uuid.NewString(),
		Filename:             in.Filename,
		ResumeText:           resumeText,
		ProfileName:          profile.Name,
		CandidateName:        meta.Info.CandidateName,
		CandidateEmail:       meta.Info.CandidateEmail,
		TotalExperienceYears: meta.Info.TotalExperienceYears,
		UploadedAt:           time.Now().UTC(),
	}

	if s.archiver != nil {
		url, archiveErr := s.archiver.ArchiveResume(ctx, resume.ID, in.Filename, in.Data)
		if archiveErr != nil {
			log.Printf("[Screener] Resume archive failed (non-fatal): %v", archiveErr)
		} else {
			resume.ArchiveURL = url
		}
	}

	if err := s.store.InsertResume(ctx, resume); err != nil {
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}

	verdict, err := s.score(ctx, BuildJobDescription(profile), resumeText, in.Model)
	if err != nil {
		return nil, err
	}
	verdict.ResumeID = resume.ID

	if err := s.store.InsertVerdict(ctx, verdict); err != nil {
		return nil, fmt.Errorf("failed to save verdict: %w", err)
	}

	display := in.Filename
	if resume.CandidateName != nil {
		display = *resume.CandidateName
	}
	log.Printf("[Screener] Analyzed: %s -> %.1f%% (%s)", display, verdict.MatchScore, verdict.Recommendation)

	return &UploadResult{Resume: resume, Verdict: verdict}, nil
}

// score runs the single LLM scoring attempt and validates the verdict
// against the contract: score clamped into [0,100], recommendation from the
// closed label set. Every failure surfaces as ErrScoring; detail is logged
// only.
func (s *Screener) score(ctx context.Context, jobDescription, resumeText, model string) (*models.MatchVerdict, error) {
	ctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	raw, err := s.llm.AnalyzeResume(ctx, jobDescription, resumeText, s.model(model))
	if err != nil {
		log.Printf("[Screener] LLM analysis failed: %v", err)
		return nil, ErrScoring
	}

	recommendation, ok := models.NormalizeRecommendation(raw.Recommendation)
	if !ok {
		log.Printf("[Screener] LLM returned unknown recommendation %q", raw.Recommendation)
		return nil, ErrScoring
	}

	return &models.MatchVerdict{
		MatchScore:     models.ClampScore(raw.MatchScore),
		Recommendation: recommendation,
		Strengths:      utils.EncodeStringList(raw.Strengths),
		Gaps:           utils.EncodeStringList(raw.Gaps),
		Suggestions:    utils.EncodeStringList(raw.Suggestions),
		AnalyzedAt:     time.Now().UTC(),
	}, nil
}

func (s *Screener) model(override string) string {
	if override != "" {
		return override
	}
	return s.defaultModel
}

// BuildJobDescription renders the scoring prompt's job-description block
// from a stored profile.
func BuildJobDescription(profile *models.JobProfile) string {
	skills := strings.Join(utils.DecodeStringList(profile.SkillsRequired), ", ")

	return strings.TrimSpace(fmt.Sprintf(`Title: %s
Experience: %d+ years
Skills: %s
Location: %s

Full JD:
%s`, profile.Title, profile.ExperienceMinYears, skills, profile.Location, profile.JDText))
}
