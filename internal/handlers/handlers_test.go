package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noor-latif/foliocms/internal/ai"
	"github.com/noor-latif/foliocms/internal/logger"
	"github.com/noor-latif/foliocms/internal/models"
	"github.com/noor-latif/foliocms/internal/presets"
	"github.com/noor-latif/foliocms/internal/session"
	"github.com/noor-latif/foliocms/internal/state"
	"github.com/noor-latif/foliocms/internal/store"
)

// stubAI is a canned gateway for handler tests
type stubAI struct {
	headline string
	skills   []string
	palette  models.ThemeColors
	err      error
}

func (s *stubAI) GenerateHeadline(ctx context.Context, req ai.HeadlineRequest) (string, error) {
	return s.headline, s.err
}

func (s *stubAI) RecommendSkills(ctx context.Context, req ai.SkillsRequest) ([]string, error) {
	return s.skills, s.err
}

func (s *stubAI) GeneratePalette(ctx context.Context, req ai.PaletteRequest) (models.ThemeColors, error) {
	return s.palette, s.err
}

type testEnv struct {
	handler *Handler
	router  http.Handler
	ai      *stubAI
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	catalog, err := presets.Load()
	require.NoError(t, err)

	container := state.New(state.Config{Password: "IamNerd", RecoveryAnswer: "pizza"})
	sessions := session.New("test-secret", time.Hour)
	stub := &stubAI{}

	h := New(logger.NewNop(), container, db, sessions, stub, catalog, t.TempDir(), "/static/uploads")

	r := chi.NewRouter()
	r.Get("/api/portfolio", h.GetPortfolio)
	r.Get("/api/presets", h.GetPresets)
	r.Post("/api/contact", h.SubmitContact)
	r.Post("/api/auth/login", h.Login)
	r.Post("/api/auth/recover", h.Recover)
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAdmin)
		r.Post("/api/auth/logout", h.Logout)
		r.Put("/api/admin/hero", h.UpdateHero)
		r.Put("/api/admin/skills", h.UpdateSkills)
		r.Post("/api/admin/experience", h.CreateExperience)
		r.Delete("/api/admin/experience/{id}", h.DeleteExperience)
		r.Post("/api/admin/projects", h.CreateProject)
		r.Put("/api/admin/projects/{id}", h.UpdateProject)
		r.Patch("/api/admin/settings", h.PatchSettings)
		r.Patch("/api/admin/theme", h.PatchTheme)
		r.Post("/api/admin/ai/headline", h.GenerateHeadline)
		r.Post("/api/upload", h.Upload)
		r.Get("/api/admin/submissions", h.ListSubmissions)
		r.Get("/api/admin/export", h.Export)
	})

	return &testEnv{handler: h, router: r, ai: stub}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"password": "IamNerd"})
	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out["token"])
	return out["token"]
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	env.login(t)
}

func TestRecoverDisclosesPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/recover", "", map[string]string{"answer": "pasta"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/recover", "", map[string]string{"answer": "pizza"})
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Success  bool   `json:"success"`
		Password string `json:"password"`
		Token    string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, "IamNerd", out.Password)
	assert.NotEmpty(t, out.Token)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/experience", "", map[string]string{"role": "dev"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/admin/experience", "garbage-token", map[string]string{"role": "dev"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := env.login(t)
	rec = env.do(t, http.MethodPost, "/api/admin/experience", token, map[string]string{"role": "dev"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/admin/experience", token, map[string]string{"role": "dev"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExperienceCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPost, "/api/admin/experience", token, models.Experience{
		Role: "Backend Developer", Company: "Acme", Period: "2024",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Experience
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	// Delete is idempotent: absent IDs also get 204
	rec = env.do(t, http.MethodDelete, "/api/admin/experience/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = env.do(t, http.MethodDelete, "/api/admin/experience/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPortfolioReflectsMutations(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	// Prime the cache
	rec := env.do(t, http.MethodGet, "/api/portfolio", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/admin/hero", token, models.HeroContent{Name: "Updated Name"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/portfolio", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var data models.PortfolioData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Equal(t, "Updated Name", data.Hero.Name)
}

func TestSkillsIconValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPut, "/api/admin/skills", token, []models.SkillCategory{
		{Title: "Backend", Skills: []models.Skill{{Name: "Go", Icon: "NotARealIcon"}}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/admin/skills", token, []models.SkillCategory{
		{Title: "Backend", Skills: []models.Skill{{Name: "Go", Icon: models.IconTerminal}}},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSettingsPatchValidatesPresets(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodPatch, "/api/admin/settings", token, map[string]string{"layout": "no-such-layout"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/admin/settings", token, map[string]string{"layout": "minimal"})
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.AppSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, "minimal", settings.Layout)
	// Sibling keys untouched by the shallow merge
	assert.Equal(t, "dark", settings.ThemeMode)
}

func TestContactFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Visitor", "email": "not-an-email", "message": "hi",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Visitor", "email": "visitor@example.com", "message": "Love the site!",
	})
	assert.Equal(t, http.StatusAccepted, rec.Code)

	token := env.login(t)
	rec = env.do(t, http.MethodGet, "/api/admin/submissions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var subs []models.ContactSubmission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "Visitor", subs[0].Name)
}

func TestHeadlineProxy(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)
	env.ai.headline = "Shipping pixels and packets"

	rec := env.do(t, http.MethodPost, "/api/admin/ai/headline", token, ai.HeadlineRequest{AboutMe: "dev"})
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Shipping pixels and packets", out["headline"])

	env.ai.err = assert.AnError
	rec = env.do(t, http.MethodPost, "/api/admin/ai/headline", token, ai.HeadlineRequest{AboutMe: "dev"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.do(t, http.MethodGet, "/api/admin/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "portfolio-export.json")

	var data models.PortfolioData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.NotEmpty(t, data.Hero.Name)
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUpload(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	upload := func(filename string) map[string]string {
		body, contentType := multipartUpload(t, "cover", filename, []byte("fake png bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var out map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		return out
	}

	first := upload("a.png")
	second := upload("a.png")

	// Same original name, same instant: stored names and URLs still differ
	assert.NotEqual(t, first["filename"], second["filename"])
	assert.NotEqual(t, first["url"], second["url"])
	assert.Contains(t, first["url"], "/static/uploads/")
}

func TestUploadMissingFile(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	body, contentType := multipartUpload(t, "wrong-field", "a.png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoredFilenameSanitizes(t *testing.T) {
	name := storedFilename("../../etc/passwd")
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")

	name = storedFilename("weird $ name!.png")
	assert.Regexp(t, `^\d+-[0-9a-f]+-weirdname\.png$`, name)

	// Nothing survivable falls back to a generic name
	name = storedFilename("!!!")
	assert.Regexp(t, `^\d+-[0-9a-f]+-file$`, name)
}
