package screening

import "errors"

// Fixed client-facing messages. Full failure detail stays in the server
// logs; callers only ever see these strings.
var (
	// ErrDocumentParse means the uploaded stream could not be opened as a
	// PDF at all. The pipeline aborts before any persistence.
	ErrDocumentParse = errors.New("Failed to parse PDF")

	// ErrScoring means the LLM call, the JSON parse or the verdict
	// validation failed. The resume stays persisted with no verdict.
	ErrScoring = errors.New("LLM analysis failed")
)
