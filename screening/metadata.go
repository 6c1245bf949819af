package screening

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/cvsync/backend/models"
)

// MetadataSource tags which path produced the candidate metadata.
type MetadataSource string

const (
	MetadataSourceLLM      MetadataSource = "llm"
	MetadataSourceFallback MetadataSource = "fallback"
)

// MetadataResult is the two-variant outcome of metadata extraction: either
// the LLM's structured answer or the regex heuristics.
type MetadataResult struct {
	Info   models.CandidateInfo
	Source MetadataSource
}

// nameScanWindow bounds how far into the resume the name heuristic looks.
// Names live at the top of a resume; deeper matches are mostly noise.
const nameScanWindow = 1000

var (
	// candidateNameRe matches 2-4 consecutive capitalized words.
	candidateNameRe = regexp.MustCompile(`[A-Z][a-z]+(?:\s[A-Z][a-z]+){1,3}`)

	// emailRe matches the first email-shaped token.
	emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// ExtractMetadata returns candidate metadata for the resume text. The LLM
// path is primary; ANY failure there (network, timeout, malformed JSON)
// degrades to the regex heuristics as an ordinary branch, never as an
// error to the caller.
func (s *Screener) ExtractMetadata(ctx context.Context, resumeText, model string) MetadataResult {
	ctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	info, err := s.llm.ExtractCandidateInfo(ctx, resumeText, s.model(model))
	if err == nil && info != nil {
		return MetadataResult{Info: *info, Source: MetadataSourceLLM}
	}

	log.Printf("[Screener] LLM metadata extraction failed, falling back to heuristics: %v", err)
	return MetadataResult{Info: fallbackCandidateInfo(resumeText), Source: MetadataSourceFallback}
}

// fallbackCandidateInfo recovers what it can with regex heuristics. No
// heuristic exists for experience years; that field stays nil.
func fallbackCandidateInfo(resumeText string) models.CandidateInfo {
	var info models.CandidateInfo

	head := resumeText
	if len(head) > nameScanWindow {
		head = head[:nameScanWindow]
	}
	if match := candidateNameRe.FindString(head); match != "" {
		name := strings.TrimSpace(match)
		info.CandidateName = &name
	}

	if match := emailRe.FindString(resumeText); match != "" {
		email := match
		info.CandidateEmail = &email
	}

	return info
}
