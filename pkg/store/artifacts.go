package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelfoundry/foundry/ent"
	"github.com/modelfoundry/foundry/ent/dataset"
	entmodel "github.com/modelfoundry/foundry/ent/model"
	"github.com/modelfoundry/foundry/pkg/models"
)

// InsertDataset records the archive the dataset agent uploaded. The id is
// generated here; callers pass the domain fields only.
func (s *Store) InsertDataset(ctx context.Context, d *models.Dataset) (*models.Dataset, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	created, err := s.client.Dataset.Create().
		SetID(d.ID).
		SetProjectID(d.ProjectID).
		SetName(d.Name).
		SetObjectURI(d.ObjectURI).
		SetSize(d.Size).
		SetSource(d.Source).
		Save(ctx)
	if err != nil {
		return nil, classify("insert_dataset", err)
	}
	return toDataset(created), nil
}

// DatasetByProject returns the newest dataset row for a project. The dataset
// agent uses it as its idempotency pre-check after a partial earlier run.
func (s *Store) DatasetByProject(ctx context.Context, projectID string) (*models.Dataset, error) {
	d, err := s.client.Dataset.Query().
		Where(dataset.ProjectIDEQ(projectID)).
		Order(ent.Desc(dataset.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return nil, classify("dataset_by_project", err)
	}
	return toDataset(d), nil
}

// DatasetsByProject returns all dataset rows for a project, newest first.
func (s *Store) DatasetsByProject(ctx context.Context, projectID string) ([]*models.Dataset, error) {
	rows, err := s.client.Dataset.Query().
		Where(dataset.ProjectIDEQ(projectID)).
		Order(ent.Desc(dataset.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, classify("datasets_by_project", err)
	}
	out := make([]*models.Dataset, len(rows))
	for i, d := range rows {
		out[i] = toDataset(d)
	}
	return out, nil
}

// InsertModel records the weights artifact produced by training.
func (s *Store) InsertModel(ctx context.Context, m *models.TrainedModel) (*models.TrainedModel, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	builder := s.client.Model.Create().
		SetID(m.ID).
		SetProjectID(m.ProjectID).
		SetName(m.Name).
		SetFramework(entmodel.Framework(m.Framework)).
		SetObjectURI(m.ObjectURI)
	if m.Metadata != nil {
		builder.SetMetadata(m.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, classify("insert_model", err)
	}
	return toModel(created), nil
}

// ModelByProject returns the newest model row for a project.
func (s *Store) ModelByProject(ctx context.Context, projectID string) (*models.TrainedModel, error) {
	m, err := s.client.Model.Query().
		Where(entmodel.ProjectIDEQ(projectID)).
		Order(ent.Desc(entmodel.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return nil, classify("model_by_project", err)
	}
	return toModel(m), nil
}

// ModelsByProject returns all model rows for a project, newest first.
func (s *Store) ModelsByProject(ctx context.Context, projectID string) ([]*models.TrainedModel, error) {
	rows, err := s.client.Model.Query().
		Where(entmodel.ProjectIDEQ(projectID)).
		Order(ent.Desc(entmodel.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, classify("models_by_project", err)
	}
	out := make([]*models.TrainedModel, len(rows))
	for i, m := range rows {
		out[i] = toModel(m)
	}
	return out, nil
}

// SetModelEvaluation writes the evaluation results onto a model row: top-1
// accuracy plus the full report merged into metadata.
func (s *Store) SetModelEvaluation(ctx context.Context, modelID string, accuracy float64, report map[string]any) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return classify("set_model_evaluation", err)
	}
	defer func() { _ = tx.Rollback() }()

	m, err := tx.Model.Query().
		Where(entmodel.IDEQ(modelID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return classify("set_model_evaluation", err)
	}

	_, err = m.Update().
		SetAccuracy(accuracy).
		SetMetadata(mergeMetadata(m.Metadata, report)).
		Save(ctx)
	if err != nil {
		return classify("set_model_evaluation", err)
	}

	if err := tx.Commit(); err != nil {
		return classify("set_model_evaluation", err)
	}
	return nil
}
