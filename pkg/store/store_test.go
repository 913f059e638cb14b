package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/models"
	testdb "github.com/modelfoundry/foundry/test/database"
)

func newTestStore(t *testing.T) *Store {
	client := testdb.NewTestClient(t)
	return New(client.Client)
}

func mustUser(t *testing.T, s *Store, externalID string) *models.User {
	t.Helper()
	u, err := s.UpsertUser(t.Context(), externalID, "", "")
	require.NoError(t, err)
	return u
}

func mustProject(t *testing.T, s *Store, userID string, status models.Status) *models.Project {
	t.Helper()
	p, err := s.CreateProject(t.Context(), &models.Project{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           "cats vs dogs",
		TaskType:       "image_classification",
		Framework:      "pytorch",
		DatasetSource:  "kaggle",
		SearchKeywords: []string{"cats", "dogs"},
		Status:         status,
	})
	require.NoError(t, err)
	return p
}

func TestUpsertUser(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()

	u, err := s.UpsertUser(ctx, "ext-1", "", "")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.Equal(t, "ext-1", u.ExternalAuthID)
	assert.Empty(t, u.Email)
	assert.False(t, u.IsAdmin)

	// Same external id resolves to the same row; contact fields observed
	// later are backfilled.
	again, err := s.UpsertUser(ctx, "ext-1", "ada@example.com", "Ada")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
	assert.Equal(t, "ada@example.com", again.Email)
	assert.Equal(t, "Ada", again.DisplayName)

	// Backfilled fields are not overwritten on subsequent calls.
	third, err := s.UpsertUser(ctx, "ext-1", "other@example.com", "Other")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", third.Email)
	assert.Equal(t, "Ada", third.DisplayName)
}

func TestUserByExternalID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UserByExternalID(t.Context(), "nobody")
	require.Error(t, err)
	assert.Equal(t, flowerr.NotFound, flowerr.KindOf(err))
}

func TestCreateAndGetProject(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	u := mustUser(t, s, "ext-1")

	created, err := s.CreateProject(ctx, &models.Project{
		ID:             "p-1",
		UserID:         u.ID,
		Name:           "flower sorter",
		TaskType:       "image_classification",
		Framework:      "pytorch",
		DatasetSource:  "kaggle",
		SearchKeywords: []string{"flowers"},
		Status:         models.StatusPendingDataset,
		Metadata:       map[string]any{models.MetaPlan: map[string]any{"preferred_model": "resnet18"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetProject(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "flower sorter", got.Name)
	assert.Equal(t, models.StatusPendingDataset, got.Status)
	assert.Equal(t, []string{"flowers"}, got.SearchKeywords)
	plan, ok := got.Metadata[models.MetaPlan].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "resnet18", plan["preferred_model"])
}

func TestCreateProject_DuplicateID(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "ext-1")
	p := mustProject(t, s, u.ID, models.StatusDraft)

	_, err := s.CreateProject(t.Context(), &models.Project{
		ID:            p.ID,
		UserID:        u.ID,
		Name:          "dup",
		TaskType:      "image_classification",
		Framework:     "pytorch",
		DatasetSource: "kaggle",
		Status:        models.StatusDraft,
	})
	require.Error(t, err)
	assert.Equal(t, flowerr.Conflict, flowerr.KindOf(err))
}

func TestGetProject_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetProject(t.Context(), "missing")
	require.Error(t, err)
	assert.Equal(t, flowerr.NotFound, flowerr.KindOf(err))
}

func TestAdvanceStatus_ClaimOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	u := mustUser(t, s, "ext-1")
	p := mustProject(t, s, u.ID, models.StatusPendingDataset)

	patch := map[string]any{"raw_dataset_uri": "s3://foundry-artifacts/raw/p.zip"}
	res, err := s.AdvanceStatus(ctx, p.ID, models.StatusPendingDataset, models.StatusPendingTraining, patch)
	require.NoError(t, err)
	assert.Equal(t, models.Claimed, res)

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingTraining, got.Status)
	assert.Equal(t, "s3://foundry-artifacts/raw/p.zip", got.Metadata["raw_dataset_uri"])
	assert.True(t, got.UpdatedAt.After(p.UpdatedAt) || got.UpdatedAt.Equal(p.UpdatedAt))

	// A second claim against the stale status loses.
	res, err = s.AdvanceStatus(ctx, p.ID, models.StatusPendingDataset, models.StatusPendingTraining, nil)
	require.NoError(t, err)
	assert.Equal(t, models.NotClaimed, res)

	// Metadata from the losing attempt must not land.
	got, err = s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingTraining, got.Status)
}

func TestAdvanceStatus_ConcurrentClaimsHaveOneWinner(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	u := mustUser(t, s, "ext-1")
	p := mustProject(t, s, u.ID, models.StatusPendingDataset)

	start := make(chan struct{})
	type outcome struct {
		res models.AdvanceResult
		err error
	}
	outcomes := make(chan outcome, 2)
	for i := 0; i < 2; i++ {
		go func() {
			<-start
			res, err := s.AdvanceStatus(ctx, p.ID, models.StatusPendingDataset, models.StatusPendingTraining, nil)
			outcomes <- outcome{res, err}
		}()
	}
	close(start)

	claimed := 0
	for i := 0; i < 2; i++ {
		o := <-outcomes
		require.NoError(t, o.err)
		if o.res == models.Claimed {
			claimed++
		}
	}
	assert.Equal(t, 1, claimed, "exactly one racing claim may win")

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingTraining, got.Status)
}

func TestAdvanceStatus_NoSuchProject(t *testing.T) {
	s := newTestStore(t)

	res, err := s.AdvanceStatus(t.Context(), "missing", models.StatusPendingDataset, models.StatusPendingTraining, nil)
	require.NoError(t, err)
	assert.Equal(t, models.NoSuchProject, res)

	// The locked-merge path reports the same way.
	res, err = s.AdvanceStatus(t.Context(), "missing", models.StatusPendingDataset, models.StatusPendingTraining, map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, models.NoSuchProject, res)
}

func TestAdvanceStatus_IllegalTransition(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "ext-1")
	p := mustProject(t, s, u.ID, models.StatusPendingDataset)

	_, err := s.AdvanceStatus(t.Context(), p.ID, models.StatusPendingDataset, models.StatusCompleted, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal transition")

	got, err := s.GetProject(t.Context(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingDataset, got.Status)
}

func TestMarkFailed(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	u := mustUser(t, s, "ext-1")
	p := mustProject(t, s, u.ID, models.StatusPendingTraining)

	res, err := s.MarkFailed(ctx, p.ID, models.StatusPendingTraining, models.ErrorDetail{
		Kind:   "bad_dataset_layout",
		Detail: "loose files at archive root",
		Step:   "prepare",
	})
	require.NoError(t, err)
	assert.Equal(t, models.Claimed, res)

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, got.Status)
	detail, ok := got.Metadata[models.MetaError].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bad_dataset_layout", detail["kind"])
	assert.Equal(t, "prepare", detail["step"])
}

func TestUpdateProjectMetadata_Merge(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	u := mustUser(t, s, "ext-1")
	p := mustProject(t, s, u.ID, models.StatusPendingTraining)

	require.NoError(t, s.UpdateProjectMetadata(ctx, p.ID, map[string]any{
		models.MetaNumClasses: 2,
		"keep":                "original",
	}))
	require.NoError(t, s.UpdateProjectMetadata(ctx, p.ID, map[string]any{
		models.MetaNumClasses: 5,
	}))

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Metadata["keep"])
	assert.EqualValues(t, 5, got.Metadata[models.MetaNumClasses])

	err = s.UpdateProjectMetadata(ctx, "missing", map[string]any{"k": "v"})
	require.Error(t, err)
	assert.Equal(t, flowerr.NotFound, flowerr.KindOf(err))
}

func TestProjectsByStatus_StarvedFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	u := mustUser(t, s, "ext-1")
	first := mustProject(t, s, u.ID, models.StatusPendingDataset)
	time.Sleep(5 * time.Millisecond)
	second := mustProject(t, s, u.ID, models.StatusPendingDataset)
	mustProject(t, s, u.ID, models.StatusCompleted)

	// Touching the older project pushes it to the back of the queue.
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, s.UpdateProjectMetadata(ctx, first.ID, map[string]any{"touched": true}))

	rows, err := s.ProjectsByStatus(ctx, models.StatusPendingDataset, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)

	rows, err = s.ProjectsByStatus(ctx, models.StatusPendingDataset, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, second.ID, rows[0].ID)
}

func TestListProjects_Filters(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	owner := mustUser(t, s, "ext-owner")
	other := mustUser(t, s, "ext-other")

	a := mustProject(t, s, owner.ID, models.StatusPendingDataset)
	time.Sleep(5 * time.Millisecond)
	b := mustProject(t, s, owner.ID, models.StatusCompleted)
	mustProject(t, s, other.ID, models.StatusCompleted)

	rows, err := s.ListProjects(ctx, models.ProjectFilters{UserID: owner.ID})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, b.ID, rows[0].ID) // newest first
	assert.Equal(t, a.ID, rows[1].ID)

	rows, err = s.ListProjects(ctx, models.ProjectFilters{UserID: owner.ID, Status: models.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, b.ID, rows[0].ID)

	rows, err = s.ListProjects(ctx, models.ProjectFilters{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCountProjectsByStatus(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "ext-1")
	mustProject(t, s, u.ID, models.StatusPendingDataset)
	mustProject(t, s, u.ID, models.StatusPendingDataset)
	mustProject(t, s, u.ID, models.StatusCompleted)

	counts, err := s.CountProjectsByStatus(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, counts[models.StatusPendingDataset])
	assert.Equal(t, 1, counts[models.StatusCompleted])
	assert.Equal(t, 0, counts[models.StatusFailed])
}

func TestDatasets_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	u := mustUser(t, s, "ext-1")
	p := mustProject(t, s, u.ID, models.StatusPendingDataset)

	first, err := s.InsertDataset(ctx, &models.Dataset{
		ProjectID: p.ID,
		Name:      "cats_vs_dogs",
		ObjectURI: "s3://foundry-artifacts/raw/cats_vs_dogs.zip",
		Size:      "120 MB",
		Source:    "kaggle",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	time.Sleep(5 * time.Millisecond)
	second, err := s.InsertDataset(ctx, &models.Dataset{
		ProjectID: p.ID,
		Name:      "cats_vs_dogs_v2",
		ObjectURI: "s3://foundry-artifacts/raw/cats_vs_dogs_v2.zip",
		Size:      "130 MB",
		Source:    "kaggle",
	})
	require.NoError(t, err)

	newest, err := s.DatasetByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, newest.ID)

	all, err := s.DatasetsByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	_, err = s.DatasetByProject(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, flowerr.NotFound, flowerr.KindOf(err))
}

func TestModels_SetEvaluation(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	u := mustUser(t, s, "ext-1")
	p := mustProject(t, s, u.ID, models.StatusPendingEvaluation)

	m, err := s.InsertModel(ctx, &models.TrainedModel{
		ProjectID: p.ID,
		Name:      "cats_vs_dogs_model",
		Framework: "pytorch",
		ObjectURI: "s3://foundry-artifacts/models/cats_vs_dogs_model.pth",
		Metadata:  map[string]any{"epochs": 5, "final_loss": 0.21},
	})
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	assert.Nil(t, m.Accuracy)

	report := map[string]any{
		"split":           "test",
		"macro_precision": 0.8,
	}
	require.NoError(t, s.SetModelEvaluation(ctx, m.ID, 0.92, report))

	got, err := s.ModelByProject(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Accuracy)
	assert.InDelta(t, 0.92, *got.Accuracy, 1e-9)
	assert.Equal(t, "test", got.Metadata["split"])
	// Training metadata survives the evaluation merge.
	assert.EqualValues(t, 5, got.Metadata["epochs"])

	err = s.SetModelEvaluation(ctx, "missing", 0.5, nil)
	require.Error(t, err)
	assert.Equal(t, flowerr.NotFound, flowerr.KindOf(err))
}

func TestLogs(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	u := mustUser(t, s, "ext-1")
	p := mustProject(t, s, u.ID, models.StatusPendingDataset)

	require.NoError(t, s.AppendLog(ctx, p.ID, models.AgentDataset, models.LogInfo, "searching kaggle"))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, s.AppendLog(ctx, p.ID, models.AgentDataset, models.LogWarning, "first candidate download failed"))
	time.Sleep(5 * time.Millisecond)
	// Process-level entry with no project.
	require.NoError(t, s.AppendLog(ctx, "", models.AgentGateway, models.LogInfo, "gateway started"))

	logs, err := s.LogsByProject(ctx, p.ID, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "searching kaggle", logs[0].Message)
	assert.Equal(t, models.LogWarning, logs[1].LogLevel)

	limited, err := s.LogsByProject(ctx, p.ID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "searching kaggle", limited[0].Message)

	recent, err := s.RecentLogs(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "gateway started", recent[0].Message)
	assert.Equal(t, models.AgentGateway, recent[0].AgentName)
}

func TestMessages(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()
	u := mustUser(t, s, "ext-1")

	_, err := s.WriteMessage(ctx, u.ID, models.RoleUser, "classify cats and dogs")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = s.WriteMessage(ctx, u.ID, models.RoleAssistant, "Got it, starting the pipeline.")
	require.NoError(t, err)

	msgs, err := s.MessagesByUser(ctx, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "classify cats and dogs", msgs[0].Content)
}
