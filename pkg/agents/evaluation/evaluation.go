// Package evaluation implements the agent owning pending_evaluation: score
// the trained model on the held-out split, record metrics, assemble the
// downloadable bundle, and complete the project.
package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/modelfoundry/foundry/pkg/config"
	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/layout"
	"github.com/modelfoundry/foundry/pkg/models"
	"github.com/modelfoundry/foundry/pkg/plan"
	"github.com/modelfoundry/foundry/pkg/store"
	"github.com/modelfoundry/foundry/pkg/trainer"
)

// Store is the persistence surface this agent needs.
type Store interface {
	ModelByProject(ctx context.Context, projectID string) (*models.TrainedModel, error)
	SetModelEvaluation(ctx context.Context, modelID string, accuracy float64, report map[string]any) error
	UpdateProjectMetadata(ctx context.Context, projectID string, patch map[string]any) error
	AdvanceStatus(ctx context.Context, projectID string, from, to models.Status, metadataPatch map[string]any) (models.AdvanceResult, error)
	MarkFailed(ctx context.Context, projectID string, from models.Status, detail models.ErrorDetail) (models.AdvanceResult, error)
	AppendLog(ctx context.Context, projectID string, agent models.AgentName, level models.LogLevel, msg string) error
	WriteMessage(ctx context.Context, userID string, role models.MessageRole, content string) (*models.Message, error)
}

// ObjectStore is the artifact surface this agent needs.
type ObjectStore interface {
	Download(ctx context.Context, rawURI, destPath string) error
	Upload(ctx context.Context, srcPath, rawURI string) error
	URIFor(key string) string
}

// Runtime is the trainer runtime surface this agent needs.
type Runtime interface {
	Evaluate(ctx context.Context, projectID, modelURI, datasetURI, split string, batchSize int) (*trainer.EvalResult, error)
}

// Workflow is the evaluation agent's poll.Workflow.
type Workflow struct {
	store   Store
	objects ObjectStore
	runtime Runtime
	cfg     config.PipelineConfig
	logger  *slog.Logger
}

// New creates the evaluation workflow.
func New(st Store, objects ObjectStore, runtime Runtime, cfg config.PipelineConfig, logger *slog.Logger) *Workflow {
	return &Workflow{
		store:   st,
		objects: objects,
		runtime: runtime,
		cfg:     cfg,
		logger:  logger.With("agent", models.AgentEvaluation),
	}
}

// AgentName implements poll.Workflow.
func (w *Workflow) AgentName() models.AgentName { return models.AgentEvaluation }

// OwnedStatus implements poll.Workflow.
func (w *Workflow) OwnedStatus() models.Status { return models.StatusPendingEvaluation }

// Run processes one pending_evaluation project.
func (w *Workflow) Run(ctx context.Context, project *models.Project) error {
	bundleURI, accuracy, err := w.evaluate(ctx, project)
	if err != nil {
		return w.fail(ctx, project, err)
	}
	return w.finish(ctx, project, bundleURI, accuracy)
}

func (w *Workflow) evaluate(ctx context.Context, project *models.Project) (string, float64, error) {
	log := w.logger.With("project_id", project.ID)

	model, err := w.store.ModelByProject(ctx, project.ID)
	if err != nil {
		return "", 0, flowerr.Wrap(flowerr.Dependency, "load_model", err)
	}

	processedURI, ok := project.Metadata[models.MetaProcessedURI].(string)
	if !ok || processedURI == "" {
		return "", 0, flowerr.New(flowerr.Dependency, "load_dataset",
			"project %s has no processed dataset reference", project.ID)
	}

	workdir, err := os.MkdirTemp("", "foundry-evaluation-*")
	if err != nil {
		return "", 0, flowerr.Wrap(flowerr.ResourceExhausted, "workdir", err)
	}
	defer os.RemoveAll(workdir)

	split, classLabels, err := w.inspectDataset(ctx, processedURI, workdir)
	if err != nil {
		return "", 0, err
	}
	if fromModel := classLabelsFromModel(model); len(fromModel) > 0 {
		classLabels = fromModel
	}

	result, err := w.runtime.Evaluate(ctx, project.ID, model.ObjectURI, processedURI, split, w.cfg.BatchSize)
	if err != nil {
		return "", 0, err
	}
	log.Info("Evaluation complete", "split", split, "accuracy", result.Accuracy, "samples", result.SampleCount)

	report := buildReport(split, result)
	if err := w.store.SetModelEvaluation(ctx, model.ID, result.Accuracy, report); err != nil {
		return "", 0, err
	}
	_ = w.store.AppendLog(ctx, project.ID, models.AgentEvaluation, models.LogInfo,
		fmt.Sprintf("evaluated on %s split: accuracy=%.4f over %d samples", split, result.Accuracy, result.SampleCount))

	bundleURI, err := w.buildBundle(ctx, project, model, classLabels, result.Accuracy, workdir)
	if err != nil {
		return "", 0, err
	}
	return bundleURI, result.Accuracy, nil
}

// inspectDataset downloads and extracts the processed archive to pick the
// scoring split (test, or val when the archive has no test split) and read
// the class labels off the directory structure.
func (w *Workflow) inspectDataset(ctx context.Context, processedURI, workdir string) (string, []string, error) {
	archivePath := filepath.Join(workdir, "dataset.zip")
	if err := w.objects.Download(ctx, processedURI, archivePath); err != nil {
		return "", nil, err
	}

	extractDir := filepath.Join(workdir, "dataset")
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return "", nil, flowerr.Wrap(flowerr.ResourceExhausted, "extract", err)
	}
	if err := layout.ExtractZip(archivePath, extractDir); err != nil {
		return "", nil, err
	}

	info, err := layout.Prepare(extractDir)
	if err != nil {
		return "", nil, err
	}

	split := layout.SplitTest
	if info.FileCounts[layout.SplitTest] == 0 {
		split = layout.SplitVal
	}
	return split, info.Classes, nil
}

// buildBundle assembles and uploads the downloadable bundle, returning its
// URI.
func (w *Workflow) buildBundle(ctx context.Context, project *models.Project, model *models.TrainedModel, classLabels []string, accuracy float64, workdir string) (string, error) {
	weightsPath := filepath.Join(workdir, "model.pth")
	if err := w.objects.Download(ctx, model.ObjectURI, weightsPath); err != nil {
		return "", err
	}

	bundleDir := filepath.Join(workdir, "bundle")
	if err := os.MkdirAll(bundleDir, 0o755); err != nil {
		return "", flowerr.Wrap(flowerr.ResourceExhausted, "bundle", err)
	}
	err := assembleBundle(bundleDir, bundleSpec{
		ProjectName:  project.Name,
		Architecture: architecture(project, model),
		ClassLabels:  classLabels,
		Accuracy:     accuracy,
		WeightsPath:  weightsPath,
	})
	if err != nil {
		return "", err
	}

	slug := plan.Slug(project.Name)
	bundlePath := filepath.Join(workdir, slug+".zip")
	if err := layout.ZipDir(bundleDir, bundlePath); err != nil {
		return "", err
	}

	bundleURI := w.objects.URIFor(fmt.Sprintf("bundles/%s.zip", slug))
	if err := w.objects.Upload(ctx, bundlePath, bundleURI); err != nil {
		return "", err
	}

	_ = w.store.AppendLog(ctx, project.ID, models.AgentEvaluation, models.LogInfo,
		fmt.Sprintf("bundle uploaded to %s", bundleURI))
	return bundleURI, nil
}

// finish records the bundle reference and completes the project. The bundle
// URI is written before the transition so a completed project always has
// one; an advance failure after that is the integrity case.
func (w *Workflow) finish(ctx context.Context, project *models.Project, bundleURI string, accuracy float64) error {
	if err := w.store.UpdateProjectMetadata(ctx, project.ID, map[string]any{
		models.MetaBundleURI: bundleURI,
	}); err != nil {
		return w.fail(ctx, project, err)
	}

	var result models.AdvanceResult
	err := store.RetryTransient(ctx, w.cfg.AdvanceStatusRetries, store.DefaultRetryDelay, func() error {
		var aerr error
		result, aerr = w.store.AdvanceStatus(ctx, project.ID, models.StatusPendingEvaluation, models.StatusCompleted, nil)
		return aerr
	})
	if err != nil {
		msg := fmt.Sprintf("bundle is uploaded but the status update failed: %v", err)
		_ = w.store.AppendLog(ctx, project.ID, models.AgentEvaluation, models.LogWarning, msg)
		return flowerr.Wrap(flowerr.Integrity, "advance_status", err)
	}

	switch result {
	case models.Claimed:
		_, _ = w.store.WriteMessage(ctx, project.UserID, models.RoleAssistant,
			fmt.Sprintf("Your model for %q is ready with %.1f%% test accuracy. Download the bundle from the project page.",
				project.Name, accuracy*100))
		return nil
	case models.NotClaimed:
		return flowerr.New(flowerr.Conflict, "advance_status", "project %s left %s before advance", project.ID, models.StatusPendingEvaluation)
	default:
		return flowerr.New(flowerr.NotFound, "advance_status", "project %s disappeared", project.ID)
	}
}

func (w *Workflow) fail(ctx context.Context, project *models.Project, cause error) error {
	if flowerr.IsIntegrity(cause) {
		return cause
	}
	detail := models.ErrorDetail{
		Kind:   string(flowerr.KindOf(cause)),
		Detail: cause.Error(),
		Step:   flowerr.StepOf(cause),
	}
	_ = w.store.AppendLog(ctx, project.ID, models.AgentEvaluation, models.LogError, cause.Error())

	if _, err := w.store.MarkFailed(ctx, project.ID, models.StatusPendingEvaluation, detail); err != nil {
		w.logger.Error("Failed to mark project failed", "project_id", project.ID, "error", err)
	}
	_, _ = w.store.WriteMessage(ctx, project.UserID, models.RoleAssistant,
		fmt.Sprintf("Evaluation failed for %q: %s", project.Name, detail.Detail))
	return cause
}

// buildReport flattens the runtime's evaluation result into the metadata
// stored on the model row, including macro-averaged metrics.
func buildReport(split string, result *trainer.EvalResult) map[string]any {
	var macroP, macroR, macroF1 float64
	perClass := make([]map[string]any, len(result.PerClass))
	for i, pc := range result.PerClass {
		macroP += pc.Precision
		macroR += pc.Recall
		macroF1 += pc.F1
		perClass[i] = map[string]any{
			"label":     pc.Label,
			"precision": pc.Precision,
			"recall":    pc.Recall,
			"f1":        pc.F1,
			"support":   pc.Support,
		}
	}
	if n := float64(len(result.PerClass)); n > 0 {
		macroP /= n
		macroR /= n
		macroF1 /= n
	}

	return map[string]any{
		"evaluation": map[string]any{
			"split":           split,
			"accuracy":        result.Accuracy,
			"macro_precision": macroP,
			"macro_recall":    macroR,
			"macro_f1":        macroF1,
			"sample_count":    result.SampleCount,
			"per_class":       perClass,
		},
	}
}

func classLabelsFromModel(model *models.TrainedModel) []string {
	raw, ok := model.Metadata["class_labels"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func architecture(project *models.Project, model *models.TrainedModel) string {
	if planMeta, ok := project.Metadata[models.MetaPlan].(map[string]any); ok {
		if v, ok := planMeta["preferred_model"].(string); ok && v != "" {
			return v
		}
	}
	if v, ok := model.Metadata["architecture"].(string); ok && v != "" {
		return v
	}
	return "resnet18"
}
