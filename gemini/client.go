package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/cvsync/backend/config"
	"github.com/cvsync/backend/models"
)

// Sampling parameters per operation. Metadata extraction wants fully
// deterministic output; scoring tolerates slight variation.
const (
	extractTemperature = 0.0
	extractMaxTokens   = 256
	analyzeTemperature = 0.2
	analyzeMaxTokens   = 1024
)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client       *genai.Client
	projectID    string
	location     string
	defaultModel string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:       client,
		projectID:    cfg.ProjectID,
		location:     cfg.Location,
		defaultModel: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// model builds a generative model configured for JSON-object output.
// An empty name falls back to the configured default model.
func (c *Client) model(name string, temperature float32, maxTokens int32) *genai.GenerativeModel {
	if name == "" {
		name = c.defaultModel
	}
	model := c.client.GenerativeModel(name)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxTokens)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	return model
}

// generate runs a single prompt and returns the cleaned response text.
// One attempt, no retries.
func (c *Client) generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}

	return cleanJSON(text), nil
}

const extractPromptTemplate = `You are a resume parser. Return ONLY JSON:
{
  "candidate_name": str or null,
  "candidate_email": str or null,
  "total_experience_years": float or null
}
RESUME:
%s`

// ExtractCandidateInfo asks the model for structured candidate fields.
// Missing keys come back as nil pointers, never as an error.
func (c *Client) ExtractCandidateInfo(ctx context.Context, resumeText, modelName string) (*models.CandidateInfo, error) {
	prompt := fmt.Sprintf(extractPromptTemplate, resumeText)

	text, err := c.generate(ctx, c.model(modelName, extractTemperature, extractMaxTokens), prompt)
	if err != nil {
		return nil, err
	}

	info, err := parseCandidateInfo(text)
	if err != nil {
		log.Printf("[Gemini] Failed to parse candidate info response: %s", text)
		return nil, err
	}

	return info, nil
}

const analyzePromptTemplate = `You are an expert HR. Compare JD and RESUME.

Return ONLY JSON:
{
  "match_score": float (0-100),
  "recommendation": str ("Strong Hire" | "Good Fit" | "Needs Review" | "Not Suitable"),
  "strengths": [str],
  "gaps": [str],
  "suggestions": [str]
}

JD:
%s

---

RESUME:
%s`

// AnalyzeResume compares a job description with resume text and returns the
// model's verdict as-is. Range clamping and label validation are the
// caller's job.
func (c *Client) AnalyzeResume(ctx context.Context, jobDescription, resumeText, modelName string) (*models.RawVerdict, error) {
	prompt := fmt.Sprintf(analyzePromptTemplate, jobDescription, resumeText)

	text, err := c.generate(ctx, c.model(modelName, analyzeTemperature, analyzeMaxTokens), prompt)
	if err != nil {
		return nil, err
	}

	verdict, err := parseVerdict(text)
	if err != nil {
		log.Printf("[Gemini] Failed to parse verdict response: %s", text)
		return nil, err
	}

	log.Printf("[Gemini] Resume analyzed: score=%.1f recommendation=%q", verdict.MatchScore, verdict.Recommendation)
	return verdict, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
