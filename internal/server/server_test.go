package server

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-generator/internal/db"
	"github.com/jonathan/portfolio-generator/internal/enhancing"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// mockStore implements Store in memory
type mockStore struct {
	portfolios map[uuid.UUID]*db.Portfolio
	saveErr    error
}

func newMockStore() *mockStore {
	return &mockStore{portfolios: make(map[uuid.UUID]*db.Portfolio)}
}

func (m *mockStore) SavePortfolio(_ context.Context, draft *types.PortfolioDraft, template string) (uuid.UUID, error) {
	if m.saveErr != nil {
		return uuid.Nil, m.saveErr
	}
	id := uuid.New()
	m.portfolios[id] = &db.Portfolio{
		ID:        id,
		Document:  draft.Clone(),
		Template:  template,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return id, nil
}

func (m *mockStore) GetPortfolio(_ context.Context, id uuid.UUID) (*db.Portfolio, error) {
	return m.portfolios[id], nil
}

func (m *mockStore) ListPortfolios(_ context.Context, _ int) ([]db.Portfolio, error) {
	out := make([]db.Portfolio, 0, len(m.portfolios))
	for _, p := range m.portfolios {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockStore) DeletePortfolio(_ context.Context, id uuid.UUID) error {
	if _, ok := m.portfolios[id]; !ok {
		return errors.New("portfolio not found")
	}
	delete(m.portfolios, id)
	return nil
}

func (m *mockStore) Close() {}

// fakeEnhancer returns a canned enhancement result
type fakeEnhancer struct {
	result *enhancing.Result
	err    error
}

func (f *fakeEnhancer) Enhance(_ context.Context, _ *types.EnhanceRequest) (*enhancing.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestServer(store *mockStore, enhancer enhancing.Enhancer) *Server {
	if enhancer == nil {
		enhancer = &fakeEnhancer{result: &enhancing.Result{}}
	}
	return &Server{store: store, enhancer: enhancer}
}

func testDraft() types.PortfolioDraft {
	return types.PortfolioDraft{
		Name:       "Ava Lin",
		Title:      "Software Engineer",
		Email:      "ava@example.com",
		About:      "I build backend systems.",
		Education:  []types.EducationEntry{{Institution: "State University", Degree: "BSc", Year: "2019"}},
		Skills:     []types.SkillEntry{{Name: "Go", Level: "advanced"}},
		Projects:   []types.ProjectEntry{{Title: "Crawler", Description: "A web crawler"}},
		Experience: []types.ExperienceEntry{{Company: "Acme", Position: "Engineer", Duration: "2020-2024"}},
	}
}

func doRequest(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.withCORS(s.routes()).ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	w := doRequest(s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestRootEndpoint(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	w := doRequest(s, http.MethodGet, "/api/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ready")
}

func TestTemplatesEndpoint(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	w := doRequest(s, http.MethodGet, "/api/templates", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp TemplatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Templates, 3)
	assert.Equal(t, "minimal-professional", resp.Templates[0].ID)
}

func TestEnhanceContent(t *testing.T) {
	about := "Seasoned engineer."
	enhancer := &fakeEnhancer{result: &enhancing.Result{
		Enhanced:    types.EnhancedContent{About: &about},
		Suggestions: []string{"Add metrics"},
	}}
	s := newTestServer(newMockStore(), enhancer)

	w := doRequest(s, http.MethodPost, "/api/enhance-content", types.EnhanceRequestFromDraft(testDraft()))

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.EnhanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Enhanced.About)
	assert.Equal(t, "Seasoned engineer.", *resp.Enhanced.About)
	assert.Equal(t, []string{"Add metrics"}, resp.Suggestions)
}

func TestEnhanceContent_InvalidBody(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/enhance-content", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePortfolio(t *testing.T) {
	store := newMockStore()
	s := newTestServer(store, nil)

	w := doRequest(s, http.MethodPost, "/api/generate-portfolio", types.GenerateRequest{
		Data:     testDraft(),
		Template: "tech-modern",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.DownloadReady)
	assert.NotEmpty(t, resp.PortfolioID)
	assert.Equal(t, "Portfolio generated successfully", resp.Message)

	id, err := uuid.Parse(resp.PortfolioID)
	require.NoError(t, err)
	stored := store.portfolios[id]
	require.NotNil(t, stored)
	assert.Equal(t, "tech-modern", stored.Template)
	assert.Equal(t, "Ava Lin", stored.Document.Name)
}

func TestGeneratePortfolio_MissingTemplate(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	w := doRequest(s, http.MethodPost, "/api/generate-portfolio", types.GenerateRequest{Data: testDraft()})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePortfolio_UnknownTemplate(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	w := doRequest(s, http.MethodPost, "/api/generate-portfolio", types.GenerateRequest{
		Data:     testDraft(),
		Template: "no-such-template",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown template")
}

func TestGetPortfolio(t *testing.T) {
	store := newMockStore()
	draft := testDraft()
	id, err := store.SavePortfolio(context.Background(), &draft, "creative-bold")
	require.NoError(t, err)
	s := newTestServer(store, nil)

	w := doRequest(s, http.MethodGet, "/api/portfolio/"+id.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success   bool         `json:"success"`
		Portfolio db.Portfolio `json:"portfolio"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "creative-bold", resp.Portfolio.Template)
	assert.Equal(t, "Ava Lin", resp.Portfolio.Document.Name)
}

func TestGetPortfolio_NotFound(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	w := doRequest(s, http.MethodGet, "/api/portfolio/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPortfolio_InvalidID(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	w := doRequest(s, http.MethodGet, "/api/portfolio/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadPortfolio(t *testing.T) {
	store := newMockStore()
	draft := testDraft()
	id, err := store.SavePortfolio(context.Background(), &draft, "minimal-professional")
	require.NoError(t, err)
	s := newTestServer(store, nil)

	w := doRequest(s, http.MethodGet, "/api/download-portfolio/"+id.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Ava_Lin_portfolio.zip"`, w.Header().Get("Content-Disposition"))

	data := w.Body.Bytes()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make([]string, 0, len(reader.File))
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"index.html", "README.md"}, names)
}

func TestDownloadPortfolio_NotFound(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	w := doRequest(s, http.MethodGet, "/api/download-portfolio/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePortfolio(t *testing.T) {
	store := newMockStore()
	draft := testDraft()
	id, err := store.SavePortfolio(context.Background(), &draft, "tech-modern")
	require.NoError(t, err)
	s := newTestServer(store, nil)

	w := doRequest(s, http.MethodDelete, "/api/portfolio/"+id.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.portfolios)

	w = doRequest(s, http.MethodDelete, "/api/portfolio/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(newMockStore(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/templates", nil)
	w := httptest.NewRecorder()
	s.withCORS(s.routes()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_ConfiguredOrigins(t *testing.T) {
	s := newTestServer(newMockStore(), nil)
	s.corsOrigins = []string{"https://app.example.com"}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	s.withCORS(s.routes()).ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	s.withCORS(s.routes()).ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestEnhanceContent_EnhancerError(t *testing.T) {
	s := newTestServer(newMockStore(), &fakeEnhancer{err: errors.New("boom")})

	w := doRequest(s, http.MethodPost, "/api/enhance-content", types.EnhanceRequest{Name: "Ava"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGeneratePortfolio_StoreError(t *testing.T) {
	store := newMockStore()
	store.saveErr = errors.New("connection refused")
	s := newTestServer(store, nil)

	w := doRequest(s, http.MethodPost, "/api/generate-portfolio", types.GenerateRequest{
		Data:     testDraft(),
		Template: "tech-modern",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
