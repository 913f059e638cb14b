package training

import (
	"archive/zip"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/config"
	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/models"
	"github.com/modelfoundry/foundry/pkg/trainer"
)

type fakeStore struct {
	dataset       *models.Dataset
	insertedModel *models.TrainedModel
	metaPatches   []map[string]any
	advanceRes    models.AdvanceResult
	advanceErr    error
	failedDetail  *models.ErrorDetail
	logs          []string
	messages      []string
}

func (s *fakeStore) DatasetByProject(ctx context.Context, projectID string) (*models.Dataset, error) {
	if s.dataset == nil {
		return nil, flowerr.New(flowerr.NotFound, "dataset_by_project", "no dataset for %s", projectID)
	}
	return s.dataset, nil
}

func (s *fakeStore) InsertModel(ctx context.Context, m *models.TrainedModel) (*models.TrainedModel, error) {
	m.ID = "mdl-1"
	s.insertedModel = m
	return m, nil
}

func (s *fakeStore) UpdateProjectMetadata(ctx context.Context, projectID string, patch map[string]any) error {
	s.metaPatches = append(s.metaPatches, patch)
	return nil
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
	return nil
}

func (s *fakeStore) WriteMessage(ctx context.Context, userID string, role models.MessageRole, content string) (*models.Message, error) {
	s.messages = append(s.messages, content)
	return &models.Message{}, nil
}

// fakeObjects serves one archive for Download and records uploads.
type fakeObjects struct {
	archive   string // file copied to destPath on Download
	uploads   map[string]string
	weightsOK bool
}

func (o *fakeObjects) Download(ctx context.Context, rawURI, destPath string) error {
	data, err := os.ReadFile(o.archive)
	if err != nil {
		return err
	}
	return os.WriteFile(destPath, data, 0o644)
}

func (o *fakeObjects) Upload(ctx context.Context, srcPath, rawURI string) error {
	if o.uploads == nil {
		o.uploads = make(map[string]string)
	}
	o.uploads[rawURI] = srcPath
	return nil
}

func (o *fakeObjects) Exists(ctx context.Context, rawURI string) (bool, error) {
	return o.weightsOK, nil
}

func (o *fakeObjects) URIFor(key string) string { return "s3://foundry-artifacts/" + key }

type fakeRuntime struct {
	spec   trainer.TrainSpec
	result *trainer.TrainResult
	err    error
	epochs int
}

func (r *fakeRuntime) Train(ctx context.Context, spec trainer.TrainSpec, onEpoch func(trainer.EpochProgress)) (*trainer.TrainResult, error) {
	r.spec = spec
	if r.err != nil {
		return nil, r.err
	}
	for i := 1; i <= r.epochs; i++ {
		onEpoch(trainer.EpochProgress{Epoch: i, TotalEpochs: r.epochs, Loss: 0.5, ValAccuracy: 0.8})
	}
	return r.result, nil
}

// datasetZip builds a canonical train/val/test archive on disk.
func datasetZip(t *testing.T, entries []string) string {
	t.Helper()
	path := t.TempDir() + "/raw.zip"
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for _, name := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte("x"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func canonicalEntries() []string {
	return []string{
		"train/cats/1.jpg", "train/cats/2.jpg", "train/dogs/1.jpg", "train/dogs/2.jpg",
		"val/cats/3.jpg", "val/dogs/3.jpg",
		"test/cats/4.jpg", "test/dogs/4.jpg",
	}
}

func testProject() *models.Project {
	return &models.Project{
		ID:        "p-1",
		UserID:    "u-1",
		Name:      "Cats vs Dogs",
		TaskType:  "image_classification",
		Framework: "pytorch",
		Status:    models.StatusPendingTraining,
		Metadata: map[string]any{
			models.MetaPlan: map[string]any{"preferred_model": "resnet34"},
		},
	}
}

func testConfig() config.PipelineConfig {
	return config.PipelineConfig{
		DefaultEpochs:        3,
		BatchSize:            16,
		DefaultLearningRate:  0.001,
		AdvanceStatusRetries: 1,
	}
}

func newTestWorkflow(st *fakeStore, objects *fakeObjects, rt *fakeRuntime) *Workflow {
	return New(st, objects, rt, testConfig(), slog.New(slog.DiscardHandler))
}

func TestRun_TrainsAndAdvances(t *testing.T) {
	st := &fakeStore{
		dataset:    &models.Dataset{ID: "ds-1", ProjectID: "p-1", ObjectURI: "s3://foundry-artifacts/raw/cats_vs_dogs.zip"},
		advanceRes: models.Claimed,
	}
	objects := &fakeObjects{archive: datasetZip(t, canonicalEntries()), weightsOK: true}
	rt := &fakeRuntime{
		epochs: 3,
		result: &trainer.TrainResult{
			ModelURI:        "s3://foundry-artifacts/models/cats_vs_dogs_model.pth",
			FinalLoss:       0.12,
			TrainingSeconds: 42,
			ClassLabels:     []string{"cats", "dogs"},
		},
	}
	w := newTestWorkflow(st, objects, rt)

	require.NoError(t, w.Run(t.Context(), testProject()))

	// The runtime got the processed archive, not the raw one.
	assert.Equal(t, "s3://foundry-artifacts/processed/cats_vs_dogs.zip", rt.spec.DatasetURI)
	assert.Equal(t, "s3://foundry-artifacts/models/cats_vs_dogs_model.pth", rt.spec.OutputURI)
	assert.Equal(t, "resnet34", rt.spec.Architecture)
	assert.Equal(t, 3, rt.spec.Epochs)
	assert.Contains(t, objects.uploads, "s3://foundry-artifacts/processed/cats_vs_dogs.zip")

	require.Len(t, st.metaPatches, 1)
	assert.Equal(t, 2, st.metaPatches[0][models.MetaNumClasses])
	assert.Equal(t, "s3://foundry-artifacts/processed/cats_vs_dogs.zip", st.metaPatches[0][models.MetaProcessedURI])

	require.NotNil(t, st.insertedModel)
	assert.Equal(t, "cats_vs_dogs_model", st.insertedModel.Name)
	assert.Equal(t, 0.12, st.insertedModel.Metadata["final_loss"])
	assert.Equal(t, []string{"cats", "dogs"}, st.insertedModel.Metadata["class_labels"])

	assert.Nil(t, st.failedDetail)
	require.NotEmpty(t, st.messages)
	assert.Contains(t, st.messages[len(st.messages)-1], "Evaluating")
}

func TestRun_MetadataHyperparamsOverrideDefaults(t *testing.T) {
	st := &fakeStore{
		dataset:    &models.Dataset{ID: "ds-1", ProjectID: "p-1", ObjectURI: "s3://foundry-artifacts/raw/x.zip"},
		advanceRes: models.Claimed,
	}
	objects := &fakeObjects{archive: datasetZip(t, canonicalEntries()), weightsOK: true}
	rt := &fakeRuntime{result: &trainer.TrainResult{ModelURI: "s3://foundry-artifacts/models/x.pth"}}
	w := newTestWorkflow(st, objects, rt)

	project := testProject()
	// A JSON round trip through the database yields float64 for both.
	project.Metadata["epochs"] = float64(7)
	project.Metadata["lr"] = 0.01

	require.NoError(t, w.Run(t.Context(), project))

	assert.Equal(t, 7, rt.spec.Epochs)
	assert.InDelta(t, 0.01, rt.spec.LearningRate, 1e-12)
	require.NotNil(t, st.insertedModel)
	assert.Equal(t, 7, st.insertedModel.Metadata["epochs"], "model row records the epochs actually used")
}

func TestRun_ConfigHyperparamDefaults(t *testing.T) {
	st := &fakeStore{
		dataset:    &models.Dataset{ID: "ds-1", ProjectID: "p-1", ObjectURI: "s3://foundry-artifacts/raw/x.zip"},
		advanceRes: models.Claimed,
	}
	objects := &fakeObjects{archive: datasetZip(t, canonicalEntries()), weightsOK: true}
	rt := &fakeRuntime{result: &trainer.TrainResult{ModelURI: "s3://foundry-artifacts/models/x.pth"}}
	w := newTestWorkflow(st, objects, rt)

	require.NoError(t, w.Run(t.Context(), testProject()))

	assert.Equal(t, 3, rt.spec.Epochs)
	assert.InDelta(t, 0.001, rt.spec.LearningRate, 1e-12)
}

func TestRun_MissingDatasetFails(t *testing.T) {
	st := &fakeStore{}
	w := newTestWorkflow(st, &fakeObjects{}, &fakeRuntime{})

	err := w.Run(t.Context(), testProject())
	require.Error(t, err)
	assert.Equal(t, flowerr.NotFound, flowerr.KindOf(err))
	require.NotNil(t, st.failedDetail)
}

func TestRun_BadLayoutFails(t *testing.T) {
	st := &fakeStore{
		dataset: &models.Dataset{ID: "ds-1", ProjectID: "p-1", ObjectURI: "s3://foundry-artifacts/raw/x.zip"},
	}
	objects := &fakeObjects{archive: datasetZip(t, []string{"readme.txt", "scattered/files.csv"})}
	w := newTestWorkflow(st, objects, &fakeRuntime{})

	err := w.Run(t.Context(), testProject())
	require.Error(t, err)
	assert.Equal(t, flowerr.BadDatasetLayout, flowerr.KindOf(err))
	require.NotNil(t, st.failedDetail)
	assert.Equal(t, string(flowerr.BadDatasetLayout), st.failedDetail.Kind)
}

func TestRun_MissingWeightsObjectFails(t *testing.T) {
	st := &fakeStore{
		dataset: &models.Dataset{ID: "ds-1", ProjectID: "p-1", ObjectURI: "s3://foundry-artifacts/raw/x.zip"},
	}
	objects := &fakeObjects{archive: datasetZip(t, canonicalEntries()), weightsOK: false}
	rt := &fakeRuntime{result: &trainer.TrainResult{ModelURI: "s3://foundry-artifacts/models/x.pth"}}
	w := newTestWorkflow(st, objects, rt)

	err := w.Run(t.Context(), testProject())
	require.Error(t, err)
	assert.Equal(t, flowerr.Dependency, flowerr.KindOf(err))
	assert.Nil(t, st.insertedModel, "no model row without a verified weights object")
	require.NotNil(t, st.failedDetail)
}

func TestRun_AdvanceFailureIsIntegrityNotFailure(t *testing.T) {
	st := &fakeStore{
		dataset:    &models.Dataset{ID: "ds-1", ProjectID: "p-1", ObjectURI: "s3://foundry-artifacts/raw/x.zip"},
		advanceErr: flowerr.New(flowerr.Transient, "advance_status", "deadlock detected"),
	}
	objects := &fakeObjects{archive: datasetZip(t, canonicalEntries()), weightsOK: true}
	rt := &fakeRuntime{result: &trainer.TrainResult{ModelURI: "s3://foundry-artifacts/models/x.pth", ClassLabels: []string{"cats", "dogs"}}}
	w := newTestWorkflow(st, objects, rt)

	err := w.Run(t.Context(), testProject())
	require.Error(t, err)
	assert.True(t, flowerr.IsIntegrity(err))
	assert.Nil(t, st.failedDetail)
	assert.NotNil(t, st.insertedModel)
}

func TestRun_EpochProgressIsLogged(t *testing.T) {
	st := &fakeStore{
		dataset:    &models.Dataset{ID: "ds-1", ProjectID: "p-1", ObjectURI: "s3://foundry-artifacts/raw/x.zip"},
		advanceRes: models.Claimed,
	}
	objects := &fakeObjects{archive: datasetZip(t, canonicalEntries()), weightsOK: true}
	rt := &fakeRuntime{epochs: 2, result: &trainer.TrainResult{ModelURI: "s3://foundry-artifacts/models/x.pth"}}
	w := newTestWorkflow(st, objects, rt)

	require.NoError(t, w.Run(t.Context(), testProject()))

	epochLogs := 0
	for _, msg := range st.logs {
		if len(msg) >= 5 && msg[:5] == "epoch" {
			epochLogs++
		}
	}
	assert.Equal(t, 2, epochLogs)
}
