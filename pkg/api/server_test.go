package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/agents/planner"
	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/llm"
	"github.com/modelfoundry/foundry/pkg/models"
	"github.com/modelfoundry/foundry/pkg/trainer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore implements Store with canned data keyed by id.
type fakeStore struct {
	users    map[string]*models.User // keyed by external auth id
	projects map[string]*models.Project
	datasets map[string][]*models.Dataset
	trained  map[string][]*models.TrainedModel
	logs     []*models.AgentLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]*models.User),
		projects: make(map[string]*models.Project),
		datasets: make(map[string][]*models.Dataset),
		trained:  make(map[string][]*models.TrainedModel),
	}
}

func (s *fakeStore) UserByExternalID(ctx context.Context, externalAuthID string) (*models.User, error) {
	if u, ok := s.users[externalAuthID]; ok {
		return u, nil
	}
	return nil, flowerr.New(flowerr.NotFound, "user_by_external_id", "no user %s", externalAuthID)
}

func (s *fakeStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, flowerr.New(flowerr.NotFound, "get_user", "no user %s", userID)
}

func (s *fakeStore) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	var out []*models.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeStore) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	if p, ok := s.projects[projectID]; ok {
		return p, nil
	}
	return nil, flowerr.New(flowerr.NotFound, "get_project", "no project %s", projectID)
}

func (s *fakeStore) ListProjects(ctx context.Context, f models.ProjectFilters) ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range s.projects {
		if f.UserID != "" && p.UserID != f.UserID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeStore) CountProjectsByStatus(ctx context.Context) (map[models.Status]int, error) {
	counts := make(map[models.Status]int)
	for _, p := range s.projects {
		counts[p.Status]++
	}
	return counts, nil
}

func (s *fakeStore) DatasetsByProject(ctx context.Context, projectID string) ([]*models.Dataset, error) {
	return s.datasets[projectID], nil
}

func (s *fakeStore) ModelsByProject(ctx context.Context, projectID string) ([]*models.TrainedModel, error) {
	return s.trained[projectID], nil
}

func (s *fakeStore) ModelByProject(ctx context.Context, projectID string) (*models.TrainedModel, error) {
	if ms := s.trained[projectID]; len(ms) > 0 {
		return ms[0], nil
	}
	return nil, flowerr.New(flowerr.NotFound, "model_by_project", "no model for %s", projectID)
}

func (s *fakeStore) LogsByProject(ctx context.Context, projectID string, limit int) ([]*models.AgentLog, error) {
	var out []*models.AgentLog
	for _, l := range s.logs {
		if l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeStore) RecentLogs(ctx context.Context, limit int) ([]*models.AgentLog, error) {
	return s.logs, nil
}

// fakeObjects serves a fixed payload for any URI present in objects.
type fakeObjects struct {
	objects map[string][]byte
}

func (o *fakeObjects) OpenRead(ctx context.Context, rawURI string) (io.ReadCloser, int64, error) {
	data, ok := o.objects[rawURI]
	if !ok {
		return nil, 0, flowerr.New(flowerr.NotFound, "open_read", "no object at %s", rawURI)
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

type fakePredictor struct {
	predictions []trainer.Prediction
}

func (p *fakePredictor) Predict(ctx context.Context, modelURI string, image []byte, topK int) ([]trainer.Prediction, error) {
	return p.predictions, nil
}

func seedUsers(st *fakeStore) {
	st.users["ext-owner"] = &models.User{ID: "u-owner", ExternalAuthID: "ext-owner"}
	st.users["ext-other"] = &models.User{ID: "u-other", ExternalAuthID: "ext-other"}
	st.users["ext-admin"] = &models.User{ID: "u-admin", ExternalAuthID: "ext-admin", IsAdmin: true}
}

func newTestRouter(st *fakeStore, objects *fakeObjects, predictor Predictor) *gin.Engine {
	if objects == nil {
		objects = &fakeObjects{}
	}
	server := NewServer(nil, st, objects, nil, predictor, slog.New(slog.DiscardHandler))
	r := gin.New()
	server.Routes(r)
	return r
}

func doRequest(r *gin.Engine, method, path, externalID string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if externalID != "" {
		req.Header.Set(HeaderExternalUserID, externalID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireIdentity_MissingHeader(t *testing.T) {
	r := newTestRouter(newFakeStore(), nil, nil)

	w := doRequest(r, http.MethodGet, "/api/ml/projects", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), HeaderExternalUserID)
}

func TestListProjects_UnknownCallerGetsEmptyList(t *testing.T) {
	r := newTestRouter(newFakeStore(), nil, nil)

	w := doRequest(r, http.MethodGet, "/api/ml/projects", "ext-new", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []*models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Projects)
}

func TestListProjects_ScopedToOwner(t *testing.T) {
	st := newFakeStore()
	seedUsers(st)
	st.projects["p-1"] = &models.Project{ID: "p-1", UserID: "u-owner", Status: models.StatusPendingDataset}
	st.projects["p-2"] = &models.Project{ID: "p-2", UserID: "u-other", Status: models.StatusCompleted}
	r := newTestRouter(st, nil, nil)

	w := doRequest(r, http.MethodGet, "/api/ml/projects", "ext-owner", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []*models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "p-1", resp.Projects[0].ID)
}

func TestGetProject_OwnershipEnforced(t *testing.T) {
	st := newFakeStore()
	seedUsers(st)
	st.projects["p-1"] = &models.Project{ID: "p-1", UserID: "u-owner", Status: models.StatusPendingTraining}
	st.datasets["p-1"] = []*models.Dataset{{ID: "ds-1", ProjectID: "p-1"}}
	r := newTestRouter(st, nil, nil)

	// Owner sees the project with artifacts embedded.
	w := doRequest(r, http.MethodGet, "/api/ml/projects/p-1", "ext-owner", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail models.ProjectDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "p-1", detail.ID)
	assert.Len(t, detail.Datasets, 1)

	// Someone else's caller id is rejected.
	w = doRequest(r, http.MethodGet, "/api/ml/projects/p-1", "ext-other", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admins bypass ownership.
	w = doRequest(r, http.MethodGet, "/api/ml/projects/p-1", "ext-admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown project is a 404, not a 403.
	w = doRequest(r, http.MethodGet, "/api/ml/projects/nope", "ext-owner", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadBundle(t *testing.T) {
	st := newFakeStore()
	seedUsers(st)
	bundleURI := "s3://foundry-artifacts/bundles/cats.zip"
	payload := []byte("PK\x03\x04 bundle bytes")
	objects := &fakeObjects{objects: map[string][]byte{bundleURI: payload}}

	st.projects["p-run"] = &models.Project{ID: "p-run", UserID: "u-owner", Name: "Cats", Status: models.StatusPendingTraining}
	st.projects["p-done"] = &models.Project{
		ID: "p-done", UserID: "u-owner", Name: "Cats", Status: models.StatusCompleted,
		Metadata: map[string]any{models.MetaBundleURI: bundleURI},
	}
	st.projects["p-nobundle"] = &models.Project{ID: "p-nobundle", UserID: "u-owner", Name: "Cats", Status: models.StatusCompleted}
	r := newTestRouter(st, objects, nil)

	// Not completed yet: conflict, not a partial download.
	w := doRequest(r, http.MethodGet, "/api/ml/projects/p-run/download", "ext-owner", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Completed but the bundle reference is missing.
	w = doRequest(r, http.MethodGet, "/api/ml/projects/p-nobundle/download", "ext-owner", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Happy path streams the object with download headers.
	w = doRequest(r, http.MethodGet, "/api/ml/projects/p-done/download", "ext-owner", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payload, w.Body.Bytes())
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "cats.zip")
	assert.Equal(t, "17", w.Header().Get("Content-Length"))

	// Non-owners cannot download someone else's bundle.
	w = doRequest(r, http.MethodGet, "/api/ml/projects/p-done/download", "ext-other", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTestModel(t *testing.T) {
	st := newFakeStore()
	seedUsers(st)
	st.projects["p-done"] = &models.Project{ID: "p-done", UserID: "u-owner", Name: "Cats", Status: models.StatusCompleted}
	st.trained["p-done"] = []*models.TrainedModel{{ID: "mdl-1", ProjectID: "p-done", ObjectURI: "s3://foundry-artifacts/models/cats.pth"}}
	predictor := &fakePredictor{predictions: []trainer.Prediction{
		{Label: "cats", Confidence: 0.97},
		{Label: "dogs", Confidence: 0.03},
	}}
	r := newTestRouter(st, nil, predictor)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ml/projects/p-done/test", &body)
	req.Header.Set(HeaderExternalUserID, "ext-owner")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Label       string               `json:"label"`
		Confidence  float64              `json:"confidence"`
		Predictions []trainer.Prediction `json:"predictions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cats", resp.Label)
	assert.Equal(t, 0.97, resp.Confidence)
	assert.Len(t, resp.Predictions, 2)
}

func TestTestModel_WrongFieldName(t *testing.T) {
	st := newFakeStore()
	seedUsers(st)
	st.projects["p-done"] = &models.Project{ID: "p-done", UserID: "u-owner", Name: "Cats", Status: models.StatusCompleted}
	st.trained["p-done"] = []*models.TrainedModel{{ID: "mdl-1", ProjectID: "p-done", ObjectURI: "s3://foundry-artifacts/models/cats.pth"}}
	r := newTestRouter(st, nil, &fakePredictor{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ml/projects/p-done/test", &body)
	req.Header.Set(HeaderExternalUserID, "ext-owner")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'file'")
}

func TestTestModel_NoPredictor(t *testing.T) {
	st := newFakeStore()
	seedUsers(st)
	st.projects["p-done"] = &models.Project{ID: "p-done", UserID: "u-owner", Status: models.StatusCompleted}
	r := newTestRouter(st, nil, nil)

	w := doRequest(r, http.MethodPost, "/api/ml/projects/p-done/test", "ext-owner", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAdminSurface(t *testing.T) {
	st := newFakeStore()
	seedUsers(st)
	st.projects["p-1"] = &models.Project{ID: "p-1", UserID: "u-owner", Status: models.StatusPendingDataset}
	st.projects["p-2"] = &models.Project{ID: "p-2", UserID: "u-other", Status: models.StatusCompleted}
	r := newTestRouter(st, nil, nil)

	// Non-admins are rejected.
	w := doRequest(r, http.MethodGet, "/api/admin/stats", "ext-owner", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodGet, "/api/admin/stats", "ext-admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		Total    int            `json:"total_projects"`
		ByStatus map[string]int `json:"projects_by_status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus["completed"])

	// Status filter validation.
	w = doRequest(r, http.MethodGet, "/api/admin/projects?status=bogus", "ext-admin", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/admin/projects?status=completed", "ext-admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var projects struct {
		Projects []*models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects.Projects, 1)
	assert.Equal(t, "p-2", projects.Projects[0].ID)
}

func TestHealth_NoDatabase(t *testing.T) {
	r := newTestRouter(newFakeStore(), nil, nil)

	w := doRequest(r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

// plannerStore adapts fakeStore to the planner's narrower store surface for
// the chat round trip.
type plannerStore struct {
	*fakeStore
	created *models.Project
}

func (s *plannerStore) UpsertUser(ctx context.Context, externalAuthID, email, displayName string) (*models.User, error) {
	if u, ok := s.users[externalAuthID]; ok {
		return u, nil
	}
	u := &models.User{ID: "u-" + externalAuthID, ExternalAuthID: externalAuthID}
	s.users[externalAuthID] = u
	return u, nil
}

func (s *plannerStore) WriteMessage(ctx context.Context, userID string, role models.MessageRole, content string) (*models.Message, error) {
	return &models.Message{ID: "m", UserID: userID, Role: role, Content: content}, nil
}

func (s *plannerStore) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	s.created = p
	s.projects[p.ID] = p
	return p, nil
}

func (s *plannerStore) AppendLog(ctx context.Context, projectID string, agent models.AgentName, level models.LogLevel, msg string) error {
	return nil
}

type fakeLLM struct {
	reply string
}

func (f *fakeLLM) Complete(ctx context.Context, messages []llm.ChatMessage) (string, error) {
	return f.reply, nil
}

func newChatRouter(reply string) (*gin.Engine, *plannerStore) {
	st := &plannerStore{fakeStore: newFakeStore()}
	plannerAgent := planner.New(st, &fakeLLM{reply: reply}, slog.New(slog.DiscardHandler))
	server := NewServer(nil, st, &fakeObjects{}, plannerAgent, nil, slog.New(slog.DiscardHandler))
	r := gin.New()
	server.Routes(r)
	return r, st
}

func TestChat_CreatesProject(t *testing.T) {
	r, st := newChatRouter(`{"name": "Cats vs Dogs", "search_keywords": ["cats", "dogs"]}`)

	body := strings.NewReader(`{"message": "build me a cats vs dogs classifier"}`)
	w := doRequest(r, http.MethodPost, "/api/ml/chat", "ext-1", body)
	require.Equal(t, http.StatusOK, w.Code)

	var result planner.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotNil(t, result.Project)
	assert.Equal(t, "Cats vs Dogs", result.Project.Name)
	assert.NotNil(t, st.created)
}

func TestChat_MissingMessage(t *testing.T) {
	r, _ := newChatRouter("{}")

	w := doRequest(r, http.MethodPost, "/api/ml/chat", "ext-1", strings.NewReader(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_UnplannableMessage(t *testing.T) {
	r, st := newChatRouter("I'm sorry, I can't help with that.")

	body := strings.NewReader(`{"message": "what's the weather like"}`)
	w := doRequest(r, http.MethodPost, "/api/ml/chat", "ext-1", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, st.created)
}

func TestChat_PlannerNotMounted(t *testing.T) {
	r := newTestRouter(newFakeStore(), nil, nil)

	body := strings.NewReader(`{"message": "hello"}`)
	w := doRequest(r, http.MethodPost, "/api/ml/chat", "ext-1", body)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
