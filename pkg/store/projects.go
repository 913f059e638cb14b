package store

import (
	"context"
	"fmt"
	"time"

	"github.com/modelfoundry/foundry/ent"
	"github.com/modelfoundry/foundry/ent/project"
	"github.com/modelfoundry/foundry/pkg/models"
)

// CreateProject inserts a new project row.
func (s *Store) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	builder := s.client.Project.Create().
		SetID(p.ID).
		SetUserID(p.UserID).
		SetName(p.Name).
		SetTaskType(project.TaskType(p.TaskType)).
		SetFramework(project.Framework(p.Framework)).
		SetDatasetSource(project.DatasetSource(p.DatasetSource)).
		SetSearchKeywords(p.SearchKeywords).
		SetStatus(project.Status(p.Status))
	if p.Metadata != nil {
		builder.SetMetadata(p.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, classify("create_project", err)
	}
	return toProject(created), nil
}

// GetProject loads a project by id.
func (s *Store) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.IDEQ(projectID)).
		Only(ctx)
	if err != nil {
		return nil, classify("get_project", err)
	}
	return toProject(p), nil
}

// ProjectsByStatus returns up to limit projects in the given status, oldest
// updated first. This is the poll query: ordering by updated_at keeps starved
// projects at the front.
func (s *Store) ProjectsByStatus(ctx context.Context, status models.Status, limit int) ([]*models.Project, error) {
	rows, err := s.client.Project.Query().
		Where(project.StatusEQ(project.Status(status))).
		Order(ent.Asc(project.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, classify("projects_by_status", err)
	}

	out := make([]*models.Project, len(rows))
	for i, p := range rows {
		out[i] = toProject(p)
	}
	return out, nil
}

// ListProjects returns projects matching the filters, newest first.
func (s *Store) ListProjects(ctx context.Context, f models.ProjectFilters) ([]*models.Project, error) {
	query := s.client.Project.Query()
	if f.UserID != "" {
		query = query.Where(project.UserIDEQ(f.UserID))
	}
	if f.Status != "" {
		query = query.Where(project.StatusEQ(project.Status(f.Status)))
	}
	query = query.Order(ent.Desc(project.FieldCreatedAt))
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, classify("list_projects", err)
	}

	out := make([]*models.Project, len(rows))
	for i, p := range rows {
		out[i] = toProject(p)
	}
	return out, nil
}

// CountProjectsByStatus returns per-status project counts for the admin
// stats endpoint.
func (s *Store) CountProjectsByStatus(ctx context.Context) (map[models.Status]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Project.Query().
		GroupBy(project.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, classify("count_projects", err)
	}

	out := make(map[models.Status]int, len(rows))
	for _, r := range rows {
		out[models.Status(r.Status)] = r.Count
	}
	return out, nil
}

// UpdateProjectMetadata merges patch into the project's metadata map inside a
// transaction. Keys in patch overwrite existing keys; other keys survive.
func (s *Store) UpdateProjectMetadata(ctx context.Context, projectID string, patch map[string]any) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return classify("update_metadata", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := tx.Project.Query().
		Where(project.IDEQ(projectID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return classify("update_metadata", err)
	}

	merged := mergeMetadata(p.Metadata, patch)
	_, err = p.Update().
		SetMetadata(merged).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return classify("update_metadata", err)
	}

	if err := tx.Commit(); err != nil {
		return classify("update_metadata", err)
	}
	return nil
}

// AdvanceStatus conditionally moves a project from one status to another.
// The transition happens only if the row's current status equals from; this
// single conditional update is the claim primitive of the whole pipeline.
// An optional metadataPatch is merged in the same transaction so artifact
// references land atomically with the transition.
func (s *Store) AdvanceStatus(ctx context.Context, projectID string, from, to models.Status, metadataPatch map[string]any) (models.AdvanceResult, error) {
	if !models.CanTransition(from, to) {
		return models.NotClaimed, fmt.Errorf("illegal transition %s -> %s", from, to)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return models.NotClaimed, classify("advance_status", err)
	}
	defer func() { _ = tx.Rollback() }()

	update := tx.Project.Update().
		Where(
			project.IDEQ(projectID),
			project.StatusEQ(project.Status(from)),
		).
		SetStatus(project.Status(to)).
		SetUpdatedAt(time.Now())

	if len(metadataPatch) > 0 {
		// Merge requires the current value; lock the row first so the merge
		// and the conditional update see the same state.
		p, err := tx.Project.Query().
			Where(project.IDEQ(projectID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return models.NoSuchProject, nil
			}
			return models.NotClaimed, classify("advance_status", err)
		}
		update = update.SetMetadata(mergeMetadata(p.Metadata, metadataPatch))
	}

	n, err := update.Save(ctx)
	if err != nil {
		return models.NotClaimed, classify("advance_status", err)
	}

	if n == 0 {
		exists, err := tx.Project.Query().
			Where(project.IDEQ(projectID)).
			Exist(ctx)
		if err != nil {
			return models.NotClaimed, classify("advance_status", err)
		}
		if !exists {
			return models.NoSuchProject, nil
		}
		return models.NotClaimed, nil
	}

	if err := tx.Commit(); err != nil {
		return models.NotClaimed, classify("advance_status", err)
	}
	return models.Claimed, nil
}

// MarkFailed moves a project from its current non-terminal status to failed,
// recording the error detail in metadata. Conditional on from so a
// concurrent transition wins cleanly.
func (s *Store) MarkFailed(ctx context.Context, projectID string, from models.Status, detail models.ErrorDetail) (models.AdvanceResult, error) {
	patch := map[string]any{
		models.MetaError: map[string]any{
			"kind":   detail.Kind,
			"detail": detail.Detail,
			"step":   detail.Step,
		},
	}
	return s.AdvanceStatus(ctx, projectID, from, models.StatusFailed, patch)
}

func mergeMetadata(current, patch map[string]any) map[string]any {
	merged := make(map[string]any, len(current)+len(patch))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
