package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/config"
	"github.com/modelfoundry/foundry/pkg/datasource"
	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/models"
)

const gib = int64(1) << 30

type fakeStore struct {
	dataset      *models.Dataset
	inserted     *models.Dataset
	advanceRes   models.AdvanceResult
	advanceErr   error
	failedDetail *models.ErrorDetail
	logs         []string
	warnings     []string
	messages     []string
}

func (s *fakeStore) DatasetByProject(ctx context.Context, projectID string) (*models.Dataset, error) {
	if s.dataset == nil {
		return nil, flowerr.New(flowerr.NotFound, "dataset_by_project", "no dataset for %s", projectID)
	}
	return s.dataset, nil
}

func (s *fakeStore) InsertDataset(ctx context.Context, d *models.Dataset) (*models.Dataset, error) {
	d.ID = "ds-1"
	s.inserted = d
	return d, nil
}

func (s *fakeStore) AdvanceStatus(ctx context.Context, projectID string, from, to models.Status, patch map[string]any) (models.AdvanceResult, error) {
	return s.advanceRes, s.advanceErr
}

func (s *fakeStore) MarkFailed(ctx context.Context, projectID string, from models.Status, detail models.ErrorDetail) (models.AdvanceResult, error) {
	s.failedDetail = &detail
	return models.Claimed, nil
}

func (s *fakeStore) AppendLog(ctx context.Context, projectID string, agent models.AgentName, level models.LogLevel, msg string) error {
	s.logs = append(s.logs, msg)
	if level == models.LogWarning {
		s.warnings = append(s.warnings, msg)
	}
	return nil
}

func (s *fakeStore) WriteMessage(ctx context.Context, userID string, role models.MessageRole, content string) (*models.Message, error) {
	s.messages = append(s.messages, content)
	return &models.Message{ID: "m-1", UserID: userID, Role: role, Content: content}, nil
}

type fakeObjects struct {
	uploads map[string]string // uri -> src path
}

func (o *fakeObjects) Upload(ctx context.Context, srcPath, rawURI string) error {
	if o.uploads == nil {
		o.uploads = make(map[string]string)
	}
	o.uploads[rawURI] = srcPath
	return nil
}

func (o *fakeObjects) URIFor(key string) string { return "s3://foundry-artifacts/" + key }

type fakeSource struct {
	candidates  []datasource.Candidate
	searches    []string
	downloadErr map[string]error // ref -> error for that candidate
	downloaded  []string
}

func (f *fakeSource) Name() string { return "kaggle" }

func (f *fakeSource) Search(ctx context.Context, query string) ([]datasource.Candidate, error) {
	f.searches = append(f.searches, query)
	return f.candidates, nil
}

func (f *fakeSource) Download(ctx context.Context, ref, destPath string) (string, error) {
	f.downloaded = append(f.downloaded, ref)
	if err := f.downloadErr[ref]; err != nil {
		return "", err
	}
	if err := os.WriteFile(destPath, []byte("archive bytes"), 0o644); err != nil {
		return "", err
	}
	return "zip", nil
}

func testProject() *models.Project {
	return &models.Project{
		ID:             "p-1",
		UserID:         "u-1",
		Name:           "Cats vs Dogs",
		SearchKeywords: []string{"cats", "dogs"},
		Status:         models.StatusPendingDataset,
	}
}

func testConfig() config.PipelineConfig {
	return config.PipelineConfig{
		MaxDatasetSizeGB:     50,
		AdvanceStatusRetries: 1,
	}
}

func newTestWorkflow(st *fakeStore, src *fakeSource) *Workflow {
	return New(st, &fakeObjects{}, src, testConfig(), slog.New(slog.DiscardHandler))
}

func TestRun_StagesDatasetAndAdvances(t *testing.T) {
	st := &fakeStore{advanceRes: models.Claimed}
	src := &fakeSource{candidates: []datasource.Candidate{
		{Ref: "owner/cats-dogs", Title: "Cats and Dogs", SizeBytes: 2 * gib, Downloads: 20000},
	}}
	w := newTestWorkflow(st, src)

	require.NoError(t, w.Run(t.Context(), testProject()))

	require.NotNil(t, st.inserted)
	assert.Equal(t, "owner/cats-dogs", st.inserted.Name)
	assert.Equal(t, "s3://foundry-artifacts/raw/cats_vs_dogs.zip", st.inserted.ObjectURI)
	assert.Equal(t, "kaggle", st.inserted.Source)
	assert.Nil(t, st.failedDetail)

	require.NotEmpty(t, st.messages)
	assert.Contains(t, st.messages[len(st.messages)-1], "Training is next")
}

func TestRun_SkipsStagingWhenDatasetExists(t *testing.T) {
	st := &fakeStore{
		dataset:    &models.Dataset{ID: "ds-0", ProjectID: "p-1", Name: "owner/cats", Size: "1.00 GB"},
		advanceRes: models.Claimed,
	}
	src := &fakeSource{}
	w := newTestWorkflow(st, src)

	require.NoError(t, w.Run(t.Context(), testProject()))

	assert.Empty(t, src.searches, "search must not run when a dataset row already exists")
	assert.Nil(t, st.inserted)
}

func TestRun_NoCandidateMarksFailed(t *testing.T) {
	st := &fakeStore{}
	src := &fakeSource{candidates: nil}
	w := newTestWorkflow(st, src)

	err := w.Run(t.Context(), testProject())
	require.Error(t, err)
	assert.Equal(t, flowerr.NoCandidate, flowerr.KindOf(err))

	require.NotNil(t, st.failedDetail)
	assert.Equal(t, string(flowerr.NoCandidate), st.failedDetail.Kind)
	assert.Equal(t, "search", st.failedDetail.Step)
	require.NotEmpty(t, st.messages)
	assert.Contains(t, st.messages[0], "no public dataset matched")
}

func TestRun_SizeCapFromPlanFiltersCandidates(t *testing.T) {
	st := &fakeStore{}
	src := &fakeSource{candidates: []datasource.Candidate{
		{Ref: "owner/huge", Title: "cats dogs", SizeBytes: 5 * gib},
	}}
	w := newTestWorkflow(st, src)

	project := testProject()
	project.Metadata = map[string]any{
		models.MetaPlan: map[string]any{"max_dataset_size_gb": 1.0},
	}

	err := w.Run(t.Context(), project)
	require.Error(t, err)
	assert.Equal(t, flowerr.NoCandidate, flowerr.KindOf(err))
	assert.Empty(t, src.downloaded)
}

func TestRun_OversizedDownloadMarksFailed(t *testing.T) {
	st := &fakeStore{}
	// Unknown reported size passes ranking; the downloaded archive is what
	// gets measured against the cap.
	src := &fakeSource{candidates: []datasource.Candidate{
		{Ref: "owner/unsized", Title: "cats dogs", SizeBytes: 0, Downloads: 20000},
	}}
	w := newTestWorkflow(st, src)

	project := testProject()
	// A cap of 1e-8 GB is about 10 bytes; the fake archive is 13.
	project.Metadata = map[string]any{
		models.MetaPlan: map[string]any{"max_dataset_size_gb": 1e-8},
	}

	err := w.Run(t.Context(), project)
	require.Error(t, err)
	assert.Equal(t, flowerr.ResourceExhausted, flowerr.KindOf(err))
	assert.Nil(t, st.inserted, "an oversized archive must not be uploaded or recorded")
	require.NotNil(t, st.failedDetail)
	assert.Contains(t, st.failedDetail.Detail, "over the")
}

func TestRun_FallsBackAcrossDownloadFailures(t *testing.T) {
	st := &fakeStore{advanceRes: models.Claimed}
	src := &fakeSource{
		candidates: []datasource.Candidate{
			{Ref: "owner/first", Title: "cats dogs", SizeBytes: gib, Downloads: 50000},
			{Ref: "owner/second", Title: "cats dogs", SizeBytes: 2 * gib, Downloads: 50000},
		},
		downloadErr: map[string]error{
			"owner/first": flowerr.New(flowerr.Transient, "kaggle_download", "HTTP 503"),
		},
	}
	w := newTestWorkflow(st, src)

	require.NoError(t, w.Run(t.Context(), testProject()))
	assert.Equal(t, []string{"owner/first", "owner/second"}, src.downloaded)
	require.NotNil(t, st.inserted)
	assert.Equal(t, "owner/second", st.inserted.Name)
}

func TestRun_AllDownloadsFailedMarksFailed(t *testing.T) {
	st := &fakeStore{}
	failAll := map[string]error{}
	var candidates []datasource.Candidate
	for i := 0; i < 4; i++ {
		ref := fmt.Sprintf("owner/c%d", i)
		candidates = append(candidates, datasource.Candidate{Ref: ref, Title: "cats", SizeBytes: gib})
		failAll[ref] = errors.New("connection reset")
	}
	src := &fakeSource{candidates: candidates, downloadErr: failAll}
	w := newTestWorkflow(st, src)

	err := w.Run(t.Context(), testProject())
	require.Error(t, err)
	assert.Equal(t, flowerr.Dependency, flowerr.KindOf(err))
	// Only the first three ranked candidates are attempted.
	assert.Len(t, src.downloaded, 3)
	assert.NotNil(t, st.failedDetail)
}

func TestRun_AdvanceFailureLeavesProjectForRetry(t *testing.T) {
	st := &fakeStore{advanceErr: flowerr.New(flowerr.Transient, "advance_status", "connection refused")}
	src := &fakeSource{candidates: []datasource.Candidate{
		{Ref: "owner/cats", Title: "cats dogs", SizeBytes: gib, Downloads: 20000},
	}}
	w := newTestWorkflow(st, src)

	err := w.Run(t.Context(), testProject())
	require.Error(t, err)
	assert.True(t, flowerr.IsIntegrity(err))

	// The artifact is real: the project must not be marked failed, and the
	// warning trail must say the status update is what broke.
	assert.Nil(t, st.failedDetail)
	require.NotEmpty(t, st.warnings)
	assert.Contains(t, st.warnings[0], "status update failed")
	require.NotEmpty(t, st.messages)
	assert.Contains(t, st.messages[len(st.messages)-1], "snag")
}

func TestRun_ClaimLostReturnsConflict(t *testing.T) {
	st := &fakeStore{advanceRes: models.NotClaimed}
	src := &fakeSource{candidates: []datasource.Candidate{
		{Ref: "owner/cats", Title: "cats dogs", SizeBytes: gib, Downloads: 20000},
	}}
	w := newTestWorkflow(st, src)

	err := w.Run(t.Context(), testProject())
	require.Error(t, err)
	assert.Equal(t, flowerr.Conflict, flowerr.KindOf(err))
	assert.Nil(t, st.failedDetail)
}
