package gemini

import (
	"encoding/json"
	"fmt"

	"github.com/cvsync/backend/models"
)

// parseCandidateInfo decodes the extraction response. Keys the model left
// out stay nil on the struct; only malformed JSON is an error.
func parseCandidateInfo(text string) (*models.CandidateInfo, error) {
	var info models.CandidateInfo
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		return nil, fmt.Errorf("failed to parse candidate info JSON: %w", err)
	}
	return &info, nil
}

// parseVerdict decodes the analysis response into the raw, unvalidated
// verdict shape.
func parseVerdict(text string) (*models.RawVerdict, error) {
	var verdict models.RawVerdict
	if err := json.Unmarshal([]byte(text), &verdict); err != nil {
		return nil, fmt.Errorf("failed to parse verdict JSON: %w", err)
	}
	return &verdict, nil
}
