// Package training implements the agent owning pending_training: stage the
// archive into the canonical layout, delegate the fine-tune to the trainer
// runtime, record the weights artifact, and hand the project to evaluation.
package training

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
	DatasetByProject(ctx context.Context, projectID string) (*models.Dataset, error)
	InsertModel(ctx context.Context, m *models.TrainedModel) (*models.TrainedModel, error)
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
	Exists(ctx context.Context, rawURI string) (bool, error)
	URIFor(key string) string
}

// Runtime is the trainer runtime surface this agent needs.
type Runtime interface {
	Train(ctx context.Context, spec trainer.TrainSpec, onEpoch func(trainer.EpochProgress)) (*trainer.TrainResult, error)
}

// Workflow is the training agent's poll.Workflow.
type Workflow struct {
	store   Store
	objects ObjectStore
	runtime Runtime
	cfg     config.PipelineConfig
	logger  *slog.Logger
}

// New creates the training workflow.
func New(st Store, objects ObjectStore, runtime Runtime, cfg config.PipelineConfig, logger *slog.Logger) *Workflow {
	return &Workflow{
		store:   st,
		objects: objects,
		runtime: runtime,
		cfg:     cfg,
		logger:  logger.With("agent", models.AgentTraining),
	}
}

// AgentName implements poll.Workflow.
func (w *Workflow) AgentName() models.AgentName { return models.AgentTraining }

// OwnedStatus implements poll.Workflow.
func (w *Workflow) OwnedStatus() models.Status { return models.StatusPendingTraining }

// Run processes one pending_training project.
func (w *Workflow) Run(ctx context.Context, project *models.Project) error {
	model, err := w.train(ctx, project)
	if err != nil {
		return w.fail(ctx, project, err)
	}
	return w.finish(ctx, project, model)
}

func (w *Workflow) train(ctx context.Context, project *models.Project) (*models.TrainedModel, error) {
	log := w.logger.With("project_id", project.ID)

	dataset, err := w.store.DatasetByProject(ctx, project.ID)
	if err != nil {
		return nil, flowerr.Wrap(flowerr.Dependency, "load_dataset", err)
	}

	workdir, err := os.MkdirTemp("", "foundry-training-*")
	if err != nil {
		return nil, flowerr.Wrap(flowerr.ResourceExhausted, "workdir", err)
	}
	defer os.RemoveAll(workdir)

	processedURI, numClasses, err := w.stage(ctx, project, dataset, workdir)
	if err != nil {
		return nil, err
	}

	if err := w.store.UpdateProjectMetadata(ctx, project.ID, map[string]any{
		models.MetaNumClasses:   numClasses,
		models.MetaProcessedURI: processedURI,
	}); err != nil {
		return nil, err
	}

	slug := plan.Slug(project.Name)
	outputURI := w.objects.URIFor(fmt.Sprintf("models/%s_model.pth", slug))
	epochs, lr := w.hyperparams(project)

	_ = w.store.AppendLog(ctx, project.ID, models.AgentTraining, models.LogInfo,
		fmt.Sprintf("starting training: model=%s classes=%d epochs=%d batch_size=%d lr=%g",
			preferredModel(project), numClasses, epochs, w.cfg.BatchSize, lr))

	result, err := w.runtime.Train(ctx, trainer.TrainSpec{
		ProjectID:    project.ID,
		DatasetURI:   processedURI,
		Framework:    project.Framework,
		TaskType:     project.TaskType,
		Epochs:       epochs,
		BatchSize:    w.cfg.BatchSize,
		LearningRate: lr,
		OutputURI:    outputURI,
		Architecture: preferredModel(project),
	}, func(p trainer.EpochProgress) {
		_ = w.store.AppendLog(ctx, project.ID, models.AgentTraining, models.LogInfo,
			fmt.Sprintf("epoch %d/%d: loss=%.4f val_accuracy=%.4f", p.Epoch, p.TotalEpochs, p.Loss, p.ValAccuracy))
	})
	if err != nil {
		return nil, err
	}

	// The runtime wrote the weights; trust nothing until the object is there.
	exists, err := w.objects.Exists(ctx, result.ModelURI)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, flowerr.New(flowerr.Dependency, "verify_weights",
			"trainer reported weights at %s but no object exists", result.ModelURI)
	}
	log.Info("Training complete", "model_uri", result.ModelURI, "final_loss", result.FinalLoss,
		"training_seconds", result.TrainingSeconds)

	model, err := w.store.InsertModel(ctx, &models.TrainedModel{
		ProjectID: project.ID,
		Name:      slug + "_model",
		Framework: project.Framework,
		ObjectURI: result.ModelURI,
		Metadata: map[string]any{
			"epochs":           epochs,
			"final_loss":       result.FinalLoss,
			"training_seconds": result.TrainingSeconds,
			"class_labels":     result.ClassLabels,
		},
	})
	if err != nil {
		return nil, err
	}

	_ = w.store.AppendLog(ctx, project.ID, models.AgentTraining, models.LogInfo,
		fmt.Sprintf("model %s recorded at %s", model.Name, model.ObjectURI))
	return model, nil
}

// stage downloads the raw archive, normalizes it into the canonical
// train/val/test layout, and uploads the processed archive the runtime will
// train on. Returns the processed URI and the class count.
func (w *Workflow) stage(ctx context.Context, project *models.Project, dataset *models.Dataset, workdir string) (string, int, error) {
	archivePath := filepath.Join(workdir, "raw.zip")
	if err := w.objects.Download(ctx, dataset.ObjectURI, archivePath); err != nil {
		return "", 0, err
	}

	extractDir := filepath.Join(workdir, "extracted")
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return "", 0, flowerr.Wrap(flowerr.ResourceExhausted, "extract", err)
	}
	if err := layout.ExtractZip(archivePath, extractDir); err != nil {
		return "", 0, err
	}

	info, err := layout.Prepare(extractDir)
	if err != nil {
		return "", 0, err
	}
	_ = w.store.AppendLog(ctx, project.ID, models.AgentTraining, models.LogInfo,
		fmt.Sprintf("dataset layout prepared: %d classes, train=%d val=%d test=%d files",
			info.NumClasses(), info.FileCounts[layout.SplitTrain], info.FileCounts[layout.SplitVal], info.FileCounts[layout.SplitTest]))

	processedPath := filepath.Join(workdir, "processed.zip")
	if err := layout.ZipDir(info.Root, processedPath); err != nil {
		return "", 0, err
	}

	processedURI := w.objects.URIFor(fmt.Sprintf("processed/%s.zip", plan.Slug(project.Name)))
	if err := w.objects.Upload(ctx, processedPath, processedURI); err != nil {
		return "", 0, err
	}
	return processedURI, info.NumClasses(), nil
}

// finish advances the project to pending_evaluation. As with the dataset
// agent, a persisted model row with a failed advance is an integrity case,
// not a failed project.
func (w *Workflow) finish(ctx context.Context, project *models.Project, model *models.TrainedModel) error {
	var result models.AdvanceResult
	err := store.RetryTransient(ctx, w.cfg.AdvanceStatusRetries, store.DefaultRetryDelay, func() error {
		var aerr error
		result, aerr = w.store.AdvanceStatus(ctx, project.ID, models.StatusPendingTraining, models.StatusPendingEvaluation, nil)
		return aerr
	})
	if err != nil {
		msg := fmt.Sprintf("model %s is trained but the status update failed: %v", model.Name, err)
		_ = w.store.AppendLog(ctx, project.ID, models.AgentTraining, models.LogWarning, msg)
		return flowerr.Wrap(flowerr.Integrity, "advance_status", err)
	}

	switch result {
	case models.Claimed:
		_, _ = w.store.WriteMessage(ctx, project.UserID, models.RoleAssistant,
			fmt.Sprintf("Training finished for %q. Evaluating the model next.", project.Name))
		return nil
	case models.NotClaimed:
		return flowerr.New(flowerr.Conflict, "advance_status", "project %s left %s before advance", project.ID, models.StatusPendingTraining)
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
	_ = w.store.AppendLog(ctx, project.ID, models.AgentTraining, models.LogError, cause.Error())

	if _, err := w.store.MarkFailed(ctx, project.ID, models.StatusPendingTraining, detail); err != nil {
		w.logger.Error("Failed to mark project failed", "project_id", project.ID, "error", err)
	}
	_, _ = w.store.WriteMessage(ctx, project.UserID, models.RoleAssistant,
		fmt.Sprintf("Training failed for %q: %s", project.Name, detail.Detail))
	return cause
}

// hyperparams returns the epoch count and learning rate for a project,
// preferring values in project metadata over the configured defaults.
func (w *Workflow) hyperparams(project *models.Project) (epochs int, lr float64) {
	epochs = w.cfg.DefaultEpochs
	lr = w.cfg.DefaultLearningRate
	if v, ok := metaNumber(project.Metadata, "epochs"); ok && v >= 1 {
		epochs = int(v)
	}
	if v, ok := metaNumber(project.Metadata, "lr"); ok && v > 0 {
		lr = v
	}
	return epochs, lr
}

// metaNumber reads a numeric metadata value; JSON round trips store numbers
// as float64 but in-process writers may use int.
func metaNumber(meta map[string]any, key string) (float64, bool) {
	switch v := meta[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func preferredModel(project *models.Project) string {
	if planMeta, ok := project.Metadata[models.MetaPlan].(map[string]any); ok {
		if v, ok := planMeta["preferred_model"].(string); ok && v != "" {
			return v
		}
	}
	return "resnet18"
}
