package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cvsync/backend/models"
	"github.com/cvsync/backend/storage"
	"github.com/cvsync/backend/utils"
)

// ProfileHandler handles job profile CRUD and the candidate dashboard
type ProfileHandler struct {
	store storage.Store
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(store storage.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// CreateProfile creates a job profile
// @Summary Create job profile
// @Description Create a new job profile. Profile names are unique; a duplicate name is rejected and the existing profile is left unchanged.
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body models.CreateProfileRequest true "Profile to create"
// @Success 201 {object} models.ProfileResponse "Created profile"
// @Failure 400 {object} models.ErrorResponse "Invalid request or duplicate name"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	profile := &models.JobProfile{
		Name:               req.Name,
		Title:              req.Title,
		Department:         req.Department,
		Location:           req.Location,
		ExperienceMinYears: req.ExperienceMinYears,
		ExperienceMaxYears: req.ExperienceMaxYears,
		SalaryRange:        req.SalaryRange,
		JDText:             req.JDText,
		SkillsRequired:     utils.EncodeStringList(req.SkillsRequired),
		CreatedAt:          time.Now().UTC(),
	}

	if err := h.store.CreateProfile(c.Request.Context(), profile); err != nil {
		if errors.Is(err, storage.ErrProfileExists) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: err.Error(),
				Code:  http.StatusBadRequest,
			})
			return
		}
		log.Printf("[ProfileHandler] Failed to create profile %q: %v", req.Name, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[ProfileHandler] Profile created: %s", profile.Name)
	c.JSON(http.StatusCreated, profileResponse(profile))
}

// ListProfiles lists all job profiles
// @Summary List job profiles
// @Tags Profiles
// @Produce json
// @Success 200 {array} models.ProfileResponse "All profiles"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.store.ListProfiles(c.Request.Context())
	if err != nil {
		log.Printf("[ProfileHandler] Failed to list profiles: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list profiles",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	responses := make([]models.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, profileResponse(&profiles[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetProfile fetches one job profile by name
// @Summary Get job profile
// @Tags Profiles
// @Produce json
// @Param name path string true "Profile name"
// @Success 200 {object} models.ProfileResponse "Profile"
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Router /profiles/{name} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.store.GetProfile(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: err.Error(),
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[ProfileHandler] Failed to get profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}

// ListCandidates lists scored candidates for a profile
// @Summary List candidates for a profile
// @Description List verdicts joined with candidate metadata for one profile. Resumes without a verdict are omitted. An optional threshold keeps only candidates with match_score >= threshold.
// @Tags Profiles
// @Produce json
// @Param name path string true "Profile name"
// @Param threshold query number false "Minimum match score"
// @Success 200 {array} models.CandidateVerdict "Scored candidates"
// @Failure 400 {object} models.ErrorResponse "Invalid threshold"
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Router /profiles/{name}/candidates [get]
func (h *ProfileHandler) ListCandidates(c *gin.Context) {
	name := c.Param("name")

	var threshold *float64
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid threshold value",
				Code:  http.StatusBadRequest,
			})
			return
		}
		threshold = &parsed
	}

	if _, err := h.store.GetProfile(c.Request.Context(), name); err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: err.Error(),
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[ProfileHandler] Failed to get profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	candidates, err := h.store.ListCandidates(c.Request.Context(), name, threshold)
	if err != nil {
		log.Printf("[ProfileHandler] Failed to list candidates for %q: %v", name, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list candidates",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, candidates)
}

func profileResponse(p *models.JobProfile) models.ProfileResponse {
	return models.ProfileResponse{
		Name:               p.Name,
		Title:              p.Title,
		Department:         p.Department,
		Location:           p.Location,
		ExperienceMinYears: p.ExperienceMinYears,
		ExperienceMaxYears: p.ExperienceMaxYears,
		SalaryRange:        p.SalaryRange,
		JDText:             p.JDText,
		SkillsRequired:     utils.DecodeStringList(p.SkillsRequired),
		CreatedAt:          p.CreatedAt,
	}
}
