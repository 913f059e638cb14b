package evaluation

import (
	"archive/zip"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/config"
	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/layout"
	"github.com/modelfoundry/foundry/pkg/models"
	"github.com/modelfoundry/foundry/pkg/trainer"
)

type fakeStore struct {
	model        *models.TrainedModel
	evalAccuracy float64
	evalReport   map[string]any
	metaPatches  []map[string]any
	advanceRes   models.AdvanceResult
	advanceErr   error
	failedDetail *models.ErrorDetail
	logs         []string
	warnings     []string
	messages     []string
}

func (s *fakeStore) ModelByProject(ctx context.Context, projectID string) (*models.TrainedModel, error) {
	if s.model == nil {
		return nil, flowerr.New(flowerr.NotFound, "model_by_project", "no model for %s", projectID)
	}
	return s.model, nil
}

func (s *fakeStore) SetModelEvaluation(ctx context.Context, modelID string, accuracy float64, report map[string]any) error {
	s.evalAccuracy = accuracy
	s.evalReport = report
	return nil
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
	if level == models.LogWarning {
		s.warnings = append(s.warnings, msg)
	}
	return nil
}

func (s *fakeStore) WriteMessage(ctx context.Context, userID string, role models.MessageRole, content string) (*models.Message, error) {
	s.messages = append(s.messages, content)
	return &models.Message{}, nil
}

// fakeObjects serves per-URI payloads for Download and records uploads.
type fakeObjects struct {
	files   map[string]string // uri -> path of file to serve
	uploads map[string]string // uri -> copied upload path (preserved past workdir cleanup)
	tmp     string
}

func (o *fakeObjects) Download(ctx context.Context, rawURI, destPath string) error {
	src, ok := o.files[rawURI]
	if !ok {
		return flowerr.New(flowerr.NotFound, "download", "no object at %s", rawURI)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(destPath, data, 0o644)
}

func (o *fakeObjects) Upload(ctx context.Context, srcPath, rawURI string) error {
	if o.uploads == nil {
		o.uploads = make(map[string]string)
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	kept := filepath.Join(o.tmp, filepath.Base(srcPath))
	if err := os.WriteFile(kept, data, 0o644); err != nil {
		return err
	}
	o.uploads[rawURI] = kept
	return nil
}

func (o *fakeObjects) URIFor(key string) string { return "s3://foundry-artifacts/" + key }

type fakeRuntime struct {
	split  string
	result *trainer.EvalResult
	err    error
}

func (r *fakeRuntime) Evaluate(ctx context.Context, projectID, modelURI, datasetURI, split string, batchSize int) (*trainer.EvalResult, error) {
	r.split = split
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

func archiveWith(t *testing.T, entries []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.zip")
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

func weightsFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.pth")
	require.NoError(t, os.WriteFile(path, []byte("pretend state dict"), 0o644))
	return path
}

const (
	processedURI = "s3://foundry-artifacts/processed/cats_vs_dogs.zip"
	weightsURI   = "s3://foundry-artifacts/models/cats_vs_dogs_model.pth"
)

func testProject() *models.Project {
	return &models.Project{
		ID:     "p-1",
		UserID: "u-1",
		Name:   "Cats vs Dogs",
		Status: models.StatusPendingEvaluation,
		Metadata: map[string]any{
			models.MetaProcessedURI: processedURI,
			models.MetaPlan:         map[string]any{"preferred_model": "resnet18"},
		},
	}
}

func testModel() *models.TrainedModel {
	return &models.TrainedModel{
		ID:        "mdl-1",
		ProjectID: "p-1",
		Name:      "cats_vs_dogs_model",
		Framework: "pytorch",
		ObjectURI: weightsURI,
		Metadata:  map[string]any{"class_labels": []any{"cats", "dogs"}},
	}
}

func evalResult() *trainer.EvalResult {
	return &trainer.EvalResult{
		Accuracy:    0.92,
		SampleCount: 50,
		PerClass: []trainer.PerClassMetrics{
			{Label: "cats", Precision: 0.9, Recall: 0.8, F1: 0.85, Support: 25},
			{Label: "dogs", Precision: 0.7, Recall: 1.0, F1: 0.82, Support: 25},
		},
	}
}

func newTestWorkflow(t *testing.T, st *fakeStore, rt *fakeRuntime, entries []string) (*Workflow, *fakeObjects) {
	t.Helper()
	objects := &fakeObjects{
		files: map[string]string{
			processedURI: archiveWith(t, entries),
			weightsURI:   weightsFile(t),
		},
		tmp: t.TempDir(),
	}
	cfg := config.PipelineConfig{BatchSize: 16, AdvanceStatusRetries: 1}
	return New(st, objects, rt, cfg, slog.New(slog.DiscardHandler)), objects
}

func fullSplitEntries() []string {
	return []string{
		"train/cats/1.jpg", "train/dogs/1.jpg",
		"val/cats/2.jpg", "val/dogs/2.jpg",
		"test/cats/3.jpg", "test/dogs/3.jpg",
	}
}

func TestRun_EvaluatesAndCompletes(t *testing.T) {
	st := &fakeStore{model: testModel(), advanceRes: models.Claimed}
	rt := &fakeRuntime{result: evalResult()}
	w, objects := newTestWorkflow(t, st, rt, fullSplitEntries())

	require.NoError(t, w.Run(t.Context(), testProject()))

	assert.Equal(t, layout.SplitTest, rt.split)
	assert.Equal(t, 0.92, st.evalAccuracy)

	eval, ok := st.evalReport["evaluation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "test", eval["split"])
	assert.InDelta(t, 0.8, eval["macro_precision"], 1e-9)
	assert.InDelta(t, 0.9, eval["macro_recall"], 1e-9)
	assert.InDelta(t, 0.835, eval["macro_f1"], 1e-9)

	// The bundle URI lands in project metadata before completion.
	require.Len(t, st.metaPatches, 1)
	assert.Equal(t, "s3://foundry-artifacts/bundles/cats_vs_dogs.zip", st.metaPatches[0][models.MetaBundleURI])
	assert.Contains(t, objects.uploads, "s3://foundry-artifacts/bundles/cats_vs_dogs.zip")

	require.NotEmpty(t, st.messages)
	assert.Contains(t, st.messages[len(st.messages)-1], "92.0%")
	assert.Nil(t, st.failedDetail)
}

func TestRun_BundleContents(t *testing.T) {
	st := &fakeStore{model: testModel(), advanceRes: models.Claimed}
	rt := &fakeRuntime{result: evalResult()}
	w, objects := newTestWorkflow(t, st, rt, fullSplitEntries())

	require.NoError(t, w.Run(t.Context(), testProject()))

	bundlePath := objects.uploads["s3://foundry-artifacts/bundles/cats_vs_dogs.zip"]
	require.NotEmpty(t, bundlePath)

	r, err := zip.OpenReader(bundlePath)
	require.NoError(t, err)
	defer r.Close()

	got := map[string]bool{}
	var predictSrc, labelsSrc string
	for _, f := range r.File {
		got[f.Name] = true
		if f.Name == "predict.py" || f.Name == "labels.json" {
			rc, err := f.Open()
			require.NoError(t, err)
			buf, err := io.ReadAll(rc)
			require.NoError(t, err)
			rc.Close()
			if f.Name == "predict.py" {
				predictSrc = string(buf)
			} else {
				labelsSrc = string(buf)
			}
		}
	}
	for _, name := range []string{"model.pth", "predict.py", "labels.json", "README.txt"} {
		assert.True(t, got[name], "bundle must contain %s", name)
	}

	assert.Contains(t, predictSrc, `ARCHITECTURE = "resnet18"`)
	assert.Contains(t, predictSrc, "NUM_CLASSES = 2")
	assert.Contains(t, labelsSrc, `"cats"`)
	assert.Contains(t, labelsSrc, `"dogs"`)
}

func TestInspectDataset(t *testing.T) {
	st := &fakeStore{model: testModel(), advanceRes: models.Claimed}
	rt := &fakeRuntime{result: evalResult()}

	w, _ := newTestWorkflow(t, st, rt, fullSplitEntries())
	split, classes, err := w.inspectDataset(t.Context(), processedURI, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, layout.SplitTest, split)
	assert.Equal(t, []string{"cats", "dogs"}, classes)
}

func TestRun_MissingProcessedURIFails(t *testing.T) {
	st := &fakeStore{model: testModel()}
	w, _ := newTestWorkflow(t, st, &fakeRuntime{}, fullSplitEntries())

	project := testProject()
	delete(project.Metadata, models.MetaProcessedURI)

	err := w.Run(t.Context(), project)
	require.Error(t, err)
	assert.Equal(t, flowerr.Dependency, flowerr.KindOf(err))
	require.NotNil(t, st.failedDetail)
	assert.Equal(t, "load_dataset", st.failedDetail.Step)
}

func TestRun_MissingModelFails(t *testing.T) {
	st := &fakeStore{}
	w, _ := newTestWorkflow(t, st, &fakeRuntime{}, fullSplitEntries())

	err := w.Run(t.Context(), testProject())
	require.Error(t, err)
	require.NotNil(t, st.failedDetail)
	require.NotEmpty(t, st.messages)
	assert.Contains(t, st.messages[0], "Evaluation failed")
}

func TestRun_AdvanceFailureIsIntegrityNotFailure(t *testing.T) {
	st := &fakeStore{
		model:      testModel(),
		advanceErr: flowerr.New(flowerr.Transient, "advance_status", "connection reset"),
	}
	rt := &fakeRuntime{result: evalResult()}
	w, _ := newTestWorkflow(t, st, rt, fullSplitEntries())

	err := w.Run(t.Context(), testProject())
	require.Error(t, err)
	assert.True(t, flowerr.IsIntegrity(err))

	// Metrics and bundle are recorded; only the transition lagged.
	assert.Equal(t, 0.92, st.evalAccuracy)
	require.Len(t, st.metaPatches, 1)
	assert.Nil(t, st.failedDetail)
	require.NotEmpty(t, st.warnings)
	assert.Contains(t, st.warnings[0], "status update failed")
}

func TestBuildReport_EmptyPerClass(t *testing.T) {
	report := buildReport("val", &trainer.EvalResult{Accuracy: 0.5, SampleCount: 10})
	eval := report["evaluation"].(map[string]any)
	assert.Equal(t, "val", eval["split"])
	assert.Equal(t, 0.0, eval["macro_f1"])
}

func TestClassLabelsFromModel(t *testing.T) {
	assert.Equal(t, []string{"a", "b"},
		classLabelsFromModel(&models.TrainedModel{Metadata: map[string]any{"class_labels": []string{"a", "b"}}}))
	assert.Equal(t, []string{"a", "b"},
		classLabelsFromModel(&models.TrainedModel{Metadata: map[string]any{"class_labels": []any{"a", "b"}}}))
	assert.Nil(t, classLabelsFromModel(&models.TrainedModel{Metadata: map[string]any{}}))
}
