package handlers

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cvsync/backend/models"
	"github.com/cvsync/backend/screening"
	"github.com/cvsync/backend/storage"
)

// ResumeHandler handles resume upload and analysis
type ResumeHandler struct {
	screener       *screening.Screener
	maxUploadBytes int64
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(screener *screening.Screener, maxUploadBytes int64) *ResumeHandler {
	return &ResumeHandler{
		screener:       screener,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadResume uploads a PDF resume and runs the screening pipeline
// @Summary Upload and analyze resume
// @Description Upload a PDF resume against a stored profile. The pipeline extracts text, parses candidate metadata, scores the match with the LLM and persists the verdict. A non-PDF content type is rejected before any processing. On a scoring failure the resume stays persisted without a verdict.
// @Tags Resumes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF resume"
// @Param profile_name formData string true "Target profile name"
// @Param model formData string false "LLM model override"
// @Success 200 {object} models.UploadResponse "Analysis summary"
// @Failure 400 {object} models.ErrorResponse "Non-PDF upload, oversize file or unreadable PDF"
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Failure 500 {object} models.ErrorResponse "LLM analysis failed"
// @Router /upload-resume [post]
func (h *ResumeHandler) UploadResume(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Resume file is required",
			Code:  http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	// Gate on the declared content type before any pipeline stage runs.
	if header.Header.Get("Content-Type") != "application/pdf" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Only PDF resumes allowed",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if header.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Resume file too large",
			Code:  http.StatusBadRequest,
		})
		return
	}

	profileName := c.PostForm("profile_name")
	if profileName == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "profile_name is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(file, h.maxUploadBytes+1)); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Failed to read resume file",
			Code:  http.StatusBadRequest,
		})
		return
	}

	result, err := h.screener.Screen(c.Request.Context(), screening.UploadInput{
		ProfileName: profileName,
		Filename:    header.Filename,
		Data:        buf.Bytes(),
		Model:       c.PostForm("model"),
	})
	if err != nil {
		h.respondScreenError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		ResumeID:             result.Resume.ID,
		CandidateName:        result.Resume.CandidateName,
		CandidateEmail:       result.Resume.CandidateEmail,
		TotalExperienceYears: result.Resume.TotalExperienceYears,
		MatchScore:           result.Verdict.MatchScore,
		Recommendation:       result.Verdict.Recommendation,
	})
}

// respondScreenError maps pipeline failures to fixed client-facing
// responses. Anything unrecognized is a generic 500; detail never leaks.
func (h *ResumeHandler) respondScreenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: err.Error(),
			Code:  http.StatusNotFound,
		})
	case errors.Is(err, screening.ErrDocumentParse):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: screening.ErrDocumentParse.Error(),
			Code:  http.StatusBadRequest,
		})
	case errors.Is(err, screening.ErrScoring):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: screening.ErrScoring.Error(),
			Code:  http.StatusInternalServerError,
		})
	default:
		log.Printf("[ResumeHandler] Resume processing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Resume processing failed",
			Code:  http.StatusInternalServerError,
		})
	}
}
