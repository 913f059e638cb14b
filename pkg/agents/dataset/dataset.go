// Package dataset implements the agent owning pending_dataset: find a
// public dataset matching the plan's keywords, stage the archive in the
// object store, record it, and hand the project to training.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelfoundry/foundry/pkg/config"
	"github.com/modelfoundry/foundry/pkg/datasource"
	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/models"
	"github.com/modelfoundry/foundry/pkg/plan"
	"github.com/modelfoundry/foundry/pkg/store"
)

// maxDownloadAttempts bounds how many ranked candidates are tried before
// giving up.
const maxDownloadAttempts = 3

// Store is the persistence surface this agent needs.
type Store interface {
	DatasetByProject(ctx context.Context, projectID string) (*models.Dataset, error)
	InsertDataset(ctx context.Context, d *models.Dataset) (*models.Dataset, error)
	AdvanceStatus(ctx context.Context, projectID string, from, to models.Status, metadataPatch map[string]any) (models.AdvanceResult, error)
	MarkFailed(ctx context.Context, projectID string, from models.Status, detail models.ErrorDetail) (models.AdvanceResult, error)
	AppendLog(ctx context.Context, projectID string, agent models.AgentName, level models.LogLevel, msg string) error
	WriteMessage(ctx context.Context, userID string, role models.MessageRole, content string) (*models.Message, error)
}

// ObjectStore is the artifact surface this agent needs.
type ObjectStore interface {
	Upload(ctx context.Context, srcPath, rawURI string) error
	URIFor(key string) string
}

// Workflow is the dataset agent's poll.Workflow.
type Workflow struct {
	store   Store
	objects ObjectStore
	source  datasource.Source
	cfg     config.PipelineConfig
	logger  *slog.Logger
}

// New creates the dataset workflow.
func New(st Store, objects ObjectStore, source datasource.Source, cfg config.PipelineConfig, logger *slog.Logger) *Workflow {
	return &Workflow{
		store:   st,
		objects: objects,
		source:  source,
		cfg:     cfg,
		logger:  logger.With("agent", models.AgentDataset),
	}
}

// AgentName implements poll.Workflow.
func (w *Workflow) AgentName() models.AgentName { return models.AgentDataset }

// OwnedStatus implements poll.Workflow.
func (w *Workflow) OwnedStatus() models.Status { return models.StatusPendingDataset }

// Run processes one pending_dataset project.
func (w *Workflow) Run(ctx context.Context, project *models.Project) error {
	log := w.logger.With("project_id", project.ID)

	// A dataset row from an earlier partial run means the expensive work is
	// done; only the status advance is outstanding.
	if existing, err := w.store.DatasetByProject(ctx, project.ID); err == nil {
		log.Info("Dataset already staged, advancing status", "dataset_id", existing.ID)
		return w.finish(ctx, project, existing)
	} else if flowerr.KindOf(err) != flowerr.NotFound {
		return err
	}

	dataset, err := w.stageDataset(ctx, project)
	if err != nil {
		return w.fail(ctx, project, err)
	}
	return w.finish(ctx, project, dataset)
}

// stageDataset searches, downloads, uploads, and records the archive.
func (w *Workflow) stageDataset(ctx context.Context, project *models.Project) (*models.Dataset, error) {
	log := w.logger.With("project_id", project.ID)

	maxGB := w.sizeCap(project)
	ranked := w.search(ctx, project, maxGB)
	if len(ranked) == 0 {
		return nil, flowerr.New(flowerr.NoCandidate, "search",
			"no dataset within %.2f GB found for keywords %v", maxGB, project.SearchKeywords)
	}
	_ = w.store.AppendLog(ctx, project.ID, models.AgentDataset, models.LogInfo,
		fmt.Sprintf("found %d candidate datasets, best: %s", len(ranked), ranked[0].Ref))

	workdir, err := os.MkdirTemp("", "foundry-dataset-*")
	if err != nil {
		return nil, flowerr.Wrap(flowerr.ResourceExhausted, "workdir", err)
	}
	defer os.RemoveAll(workdir)

	chosen, archivePath, ext, err := w.download(ctx, ranked, workdir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(archivePath)
	if err != nil || info.Size() == 0 {
		return nil, flowerr.New(flowerr.Dependency, "download", "downloaded archive %s is empty", chosen.Ref)
	}
	// Candidates with an unknown reported size pass ranking; the downloaded
	// archive is the first reliable measurement.
	if maxBytes := int64(maxGB * (1 << 30)); info.Size() > maxBytes {
		return nil, flowerr.New(flowerr.ResourceExhausted, "download",
			"archive %s is %s, over the %.2f GB limit", chosen.Ref, humanSize(info.Size()), maxGB)
	}

	slug := plan.Slug(project.Name)
	uri := w.objects.URIFor(fmt.Sprintf("raw/%s.%s", slug, ext))
	if err := w.objects.Upload(ctx, archivePath, uri); err != nil {
		return nil, err
	}
	log.Info("Archive uploaded", "uri", uri, "size_bytes", info.Size())

	dataset, err := w.store.InsertDataset(ctx, &models.Dataset{
		ProjectID: project.ID,
		Name:      chosen.Ref,
		ObjectURI: uri,
		Size:      humanSize(info.Size()),
		Source:    w.source.Name(),
	})
	if err != nil {
		return nil, err
	}

	_ = w.store.AppendLog(ctx, project.ID, models.AgentDataset, models.LogInfo,
		fmt.Sprintf("dataset %s staged at %s (%s)", chosen.Ref, uri, dataset.Size))
	return dataset, nil
}

// search runs the query strategies in order and returns the first non-empty
// ranked candidate list.
func (w *Workflow) search(ctx context.Context, project *models.Project, maxGB float64) []datasource.Candidate {
	return datasource.FindBest(ctx, w.source, project.SearchKeywords, maxGB, func(query string, err error) {
		w.logger.Warn("Dataset search failed", "project_id", project.ID, "query", query, "error", err)
	})
}

// download tries the ranked candidates in order until one fetches cleanly.
func (w *Workflow) download(ctx context.Context, ranked []datasource.Candidate, workdir string) (datasource.Candidate, string, string, error) {
	attempts := len(ranked)
	if attempts > maxDownloadAttempts {
		attempts = maxDownloadAttempts
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		candidate := ranked[i]
		dest := filepath.Join(workdir, "archive")
		ext, err := w.source.Download(ctx, candidate.Ref, dest)
		if err == nil {
			return candidate, dest, ext, nil
		}
		lastErr = err
		w.logger.Warn("Candidate download failed", "ref", candidate.Ref, "error", err)
	}
	return datasource.Candidate{}, "", "", flowerr.Wrap(flowerr.Dependency, "download",
		fmt.Errorf("all %d candidates failed: %w", attempts, lastErr))
}

// finish advances the project to pending_training and tells the user. When
// the advance cannot be made after the dataset row exists, the project is
// left in place with a warning rather than marked failed: the artifact is
// real, only the bookkeeping lagged.
func (w *Workflow) finish(ctx context.Context, project *models.Project, dataset *models.Dataset) error {
	var result models.AdvanceResult
	err := store.RetryTransient(ctx, w.cfg.AdvanceStatusRetries, store.DefaultRetryDelay, func() error {
		var aerr error
		result, aerr = w.store.AdvanceStatus(ctx, project.ID, models.StatusPendingDataset, models.StatusPendingTraining, nil)
		return aerr
	})
	if err != nil {
		msg := fmt.Sprintf("dataset %s is staged but the status update failed: %v", dataset.Name, err)
		_ = w.store.AppendLog(ctx, project.ID, models.AgentDataset, models.LogWarning, msg)
		_, _ = w.store.WriteMessage(ctx, project.UserID, models.RoleAssistant,
			fmt.Sprintf("Your dataset for %q is ready, but I hit a snag recording progress. The pipeline will pick it up again shortly.", project.Name))
		return flowerr.Wrap(flowerr.Integrity, "advance_status", err)
	}

	switch result {
	case models.Claimed:
		_, _ = w.store.WriteMessage(ctx, project.UserID, models.RoleAssistant,
			fmt.Sprintf("Found a dataset for %q: %s (%s). Training is next.", project.Name, dataset.Name, dataset.Size))
		return nil
	case models.NotClaimed:
		return flowerr.New(flowerr.Conflict, "advance_status", "project %s left %s before advance", project.ID, models.StatusPendingDataset)
	default:
		return flowerr.New(flowerr.NotFound, "advance_status", "project %s disappeared", project.ID)
	}
}

// fail marks the project failed with the error detail. Integrity errors
// never reach here; they return from finish directly.
func (w *Workflow) fail(ctx context.Context, project *models.Project, cause error) error {
	detail := models.ErrorDetail{
		Kind:   string(flowerr.KindOf(cause)),
		Detail: cause.Error(),
		Step:   flowerr.StepOf(cause),
	}
	_ = w.store.AppendLog(ctx, project.ID, models.AgentDataset, models.LogError, cause.Error())

	if _, err := w.store.MarkFailed(ctx, project.ID, models.StatusPendingDataset, detail); err != nil {
		w.logger.Error("Failed to mark project failed", "project_id", project.ID, "error", err)
	}
	_, _ = w.store.WriteMessage(ctx, project.UserID, models.RoleAssistant,
		fmt.Sprintf("I couldn't stage a dataset for %q: %s", project.Name, shortReason(cause)))
	return cause
}

// sizeCap reads the plan's dataset size limit from project metadata, clamped
// to the configured hard ceiling.
func (w *Workflow) sizeCap(project *models.Project) float64 {
	limit := w.cfg.MaxDatasetSizeGB
	if planMeta, ok := project.Metadata[models.MetaPlan].(map[string]any); ok {
		if v, ok := planMeta["max_dataset_size_gb"].(float64); ok && v > 0 && v < limit {
			limit = v
		}
	}
	return limit
}

func humanSize(bytes int64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/(1024*1024*1024))
}

func shortReason(err error) string {
	switch flowerr.KindOf(err) {
	case flowerr.NoCandidate:
		return "no public dataset matched your keywords within the size limit."
	case flowerr.Dependency:
		return "the dataset source kept failing. I'll need you to retry later."
	default:
		return strings.TrimSpace(err.Error())
	}
}
