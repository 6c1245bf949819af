package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cvsync/backend/config"
	"github.com/cvsync/backend/models"
	"github.com/cvsync/backend/screening"
	"github.com/cvsync/backend/storage"
	"github.com/cvsync/backend/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct {
	profiles map[string]*models.JobProfile
	resumes  []*models.ResumeDocument
	verdicts []*models.MatchVerdict

	candidates    []models.CandidateVerdict
	lastThreshold *float64
}

func newFakeStore(profiles ...*models.JobProfile) *fakeStore {
	fs := &fakeStore{profiles: map[string]*models.JobProfile{}}
	for _, p := range profiles {
		fs.profiles[p.Name] = p
	}
	return fs
}

func (f *fakeStore) CreateProfile(_ context.Context, profile *models.JobProfile) error {
	if _, ok := f.profiles[profile.Name]; ok {
		return storage.ErrProfileExists
	}
	f.profiles[profile.Name] = profile
	return nil
}

func (f *fakeStore) GetProfile(_ context.Context, name string) (*models.JobProfile, error) {
	profile, ok := f.profiles[name]
	if !ok {
		return nil, storage.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeStore) ListProfiles(_ context.Context) ([]models.JobProfile, error) {
	out := make([]models.JobProfile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStore) InsertResume(_ context.Context, resume *models.ResumeDocument) error {
	f.resumes = append(f.resumes, resume)
	return nil
}

func (f *fakeStore) InsertVerdict(_ context.Context, verdict *models.MatchVerdict) error {
	f.verdicts = append(f.verdicts, verdict)
	return nil
}

func (f *fakeStore) ListCandidates(_ context.Context, _ string, threshold *float64) ([]models.CandidateVerdict, error) {
	f.lastThreshold = threshold
	return f.candidates, nil
}

type stubLLM struct {
	verdict    *models.RawVerdict
	verdictErr error
}

func (s *stubLLM) ExtractCandidateInfo(_ context.Context, _, _ string) (*models.CandidateInfo, error) {
	return &models.CandidateInfo{}, nil
}

func (s *stubLLM) AnalyzeResume(_ context.Context, _, _, _ string) (*models.RawVerdict, error) {
	return s.verdict, s.verdictErr
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(_ []byte) (string, error) {
	return s.text, s.err
}

func testProfile() *models.JobProfile {
	return &models.JobProfile{
		Name:           "backend-senior",
		Title:          "Senior Backend Engineer",
		Department:     "Engineering",
		Location:       "Jakarta",
		JDText:         "Build backend services.",
		SkillsRequired: utils.EncodeStringList([]string{"Go"}),
	}
}

func testScreener(store storage.Store, llm screening.LLM, extractor screening.TextExtractor) *screening.Screener {
	cfg := &config.Config{GeminiModel: "test-model", LLMTimeoutSeconds: 5}
	return screening.NewScreener(llm, store, extractor, nil, cfg)
}

func profileRouter(store storage.Store) *gin.Engine {
	h := NewProfileHandler(store)
	r := gin.New()
	r.POST("/api/profiles", h.CreateProfile)
	r.GET("/api/profiles", h.ListProfiles)
	r.GET("/api/profiles/:name", h.GetProfile)
	r.GET("/api/profiles/:name/candidates", h.ListCandidates)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProfile(t *testing.T) {
	store := newFakeStore()
	r := profileRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/profiles", models.CreateProfileRequest{
		Name:           "backend-senior",
		Title:          "Senior Backend Engineer",
		Department:     "Engineering",
		Location:       "Jakarta",
		JDText:         "Build backend services.",
		SkillsRequired: []string{"Go", "PostgreSQL"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.ProfileResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "backend-senior" {
		t.Errorf("Name = %q", resp.Name)
	}
	if len(resp.SkillsRequired) != 2 || resp.SkillsRequired[0] != "Go" {
		t.Errorf("SkillsRequired = %#v", resp.SkillsRequired)
	}

	stored, err := store.GetProfile(context.Background(), "backend-senior")
	if err != nil {
		t.Fatalf("profile not stored: %v", err)
	}
	if stored.SkillsRequired != `["Go","PostgreSQL"]` {
		t.Errorf("stored skills = %q", stored.SkillsRequired)
	}
}

func TestCreateProfileDuplicateName(t *testing.T) {
	store := newFakeStore(testProfile())
	r := profileRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/profiles", models.CreateProfileRequest{
		Name:       "backend-senior",
		Title:      "Completely Different Title",
		Department: "Sales",
		Location:   "Remote",
		JDText:     "Other JD.",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Profile with this name already exists" {
		t.Errorf("Error = %q", resp.Error)
	}

	// The original profile stays untouched.
	stored, _ := store.GetProfile(context.Background(), "backend-senior")
	if stored.Title != "Senior Backend Engineer" {
		t.Errorf("stored Title = %q, original was overwritten", stored.Title)
	}
}

func TestCreateProfileMissingFields(t *testing.T) {
	store := newFakeStore()
	r := profileRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/profiles", map[string]string{"name": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(store.profiles) != 0 {
		t.Error("invalid request must not create a profile")
	}
}

func TestGetProfileNotFound(t *testing.T) {
	r := profileRouter(newFakeStore())

	w := doJSON(t, r, http.MethodGet, "/api/profiles/ghost", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Profile not found" {
		t.Errorf("Error = %q", resp.Error)
	}
}

func TestListProfilesEmpty(t *testing.T) {
	r := profileRouter(newFakeStore())

	w := doJSON(t, r, http.MethodGet, "/api/profiles", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestListCandidatesThreshold(t *testing.T) {
	store := newFakeStore(testProfile())
	store.candidates = []models.CandidateVerdict{}
	r := profileRouter(store)

	w := doJSON(t, r, http.MethodGet, "/api/profiles/backend-senior/candidates?threshold=70", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if store.lastThreshold == nil || *store.lastThreshold != 70 {
		t.Errorf("threshold passed to store = %v, want 70", store.lastThreshold)
	}
}

func TestListCandidatesInvalidThreshold(t *testing.T) {
	store := newFakeStore(testProfile())
	r := profileRouter(store)

	w := doJSON(t, r, http.MethodGet, "/api/profiles/backend-senior/candidates?threshold=high", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Invalid threshold value" {
		t.Errorf("Error = %q", resp.Error)
	}
}

func TestListCandidatesUnknownProfile(t *testing.T) {
	r := profileRouter(newFakeStore())

	w := doJSON(t, r, http.MethodGet, "/api/profiles/ghost/candidates", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func resumeRouter(store storage.Store, llm screening.LLM, extractor screening.TextExtractor, maxUploadBytes int64) *gin.Engine {
	h := NewResumeHandler(testScreener(store, llm, extractor), maxUploadBytes)
	r := gin.New()
	r.POST("/api/upload-resume", h.UploadResume)
	return r
}

func multipartUpload(t *testing.T, contentType, filename, profileName string, data []byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}

	if profileName != "" {
		if err := mw.WriteField("profile_name", profileName); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload-resume", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadResume(t *testing.T) {
	store := newFakeStore(testProfile())
	llm := &stubLLM{verdict: &models.RawVerdict{MatchScore: 75, Recommendation: "Good Fit"}}
	r := resumeRouter(store, llm, &stubExtractor{text: "resume text"}, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "application/pdf", "jane.pdf", "backend-senior", []byte("%PDF-1.4")))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.UploadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ResumeID == "" {
		t.Error("ResumeID missing")
	}
	if resp.MatchScore != 75 {
		t.Errorf("MatchScore = %v", resp.MatchScore)
	}
	if resp.Recommendation != models.RecommendationGoodFit {
		t.Errorf("Recommendation = %q", resp.Recommendation)
	}
	if len(store.resumes) != 1 || len(store.verdicts) != 1 {
		t.Errorf("persisted %d resumes, %d verdicts", len(store.resumes), len(store.verdicts))
	}
}

func TestUploadResumeRejectsNonPDF(t *testing.T) {
	store := newFakeStore(testProfile())
	r := resumeRouter(store, &stubLLM{}, &stubExtractor{text: "resume"}, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "text/plain", "jane.txt", "backend-senior", []byte("plain text")))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Only PDF resumes allowed" {
		t.Errorf("Error = %q", resp.Error)
	}

	// Rejected before any pipeline stage: no side effects at all.
	if len(store.resumes) != 0 || len(store.verdicts) != 0 {
		t.Error("non-PDF upload must not touch storage")
	}
}

func TestUploadResumeTooLarge(t *testing.T) {
	store := newFakeStore(testProfile())
	r := resumeRouter(store, &stubLLM{}, &stubExtractor{text: "resume"}, 16)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "application/pdf", "big.pdf", "backend-senior", bytes.Repeat([]byte("x"), 64)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(store.resumes) != 0 {
		t.Error("oversize upload must not touch storage")
	}
}

func TestUploadResumeMissingProfileName(t *testing.T) {
	store := newFakeStore(testProfile())
	r := resumeRouter(store, &stubLLM{}, &stubExtractor{text: "resume"}, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "application/pdf", "jane.pdf", "", []byte("%PDF")))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUploadResumeUnknownProfile(t *testing.T) {
	r := resumeRouter(newFakeStore(), &stubLLM{}, &stubExtractor{text: "resume"}, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "application/pdf", "jane.pdf", "ghost", []byte("%PDF")))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUploadResumeUnreadablePDF(t *testing.T) {
	store := newFakeStore(testProfile())
	r := resumeRouter(store, &stubLLM{}, &stubExtractor{err: errors.New("bad xref")}, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "application/pdf", "broken.pdf", "backend-senior", []byte("%PDF")))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Failed to parse PDF" {
		t.Errorf("Error = %q", resp.Error)
	}
}

func TestUploadResumeScoringFailure(t *testing.T) {
	store := newFakeStore(testProfile())
	llm := &stubLLM{verdictErr: errors.New("model unavailable")}
	r := resumeRouter(store, llm, &stubExtractor{text: "resume"}, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "application/pdf", "jane.pdf", "backend-senior", []byte("%PDF")))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "LLM analysis failed" {
		t.Errorf("Error = %q", resp.Error)
	}

	// The resume survives the failed scoring attempt.
	if len(store.resumes) != 1 || len(store.verdicts) != 0 {
		t.Errorf("persisted %d resumes, %d verdicts; want 1 and 0", len(store.resumes), len(store.verdicts))
	}
}

func TestHealthCheck(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "running" {
		t.Errorf("Status = %q", resp.Status)
	}
	if resp.Version == "" || resp.Timestamp == "" {
		t.Errorf("incomplete health payload: %+v", resp)
	}
}
