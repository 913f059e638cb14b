// Package store is the typed persistence adapter over the ent client. It is
// the only package that touches ent directly; agents and the API layer work
// with pkg/models types and the narrow interfaces they define over this
// adapter.
package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/modelfoundry/foundry/ent"
	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/models"
)

// Store provides the persistence operations of the pipeline.
type Store struct {
	client *ent.Client
}

// New creates a Store over an ent client.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

// classify maps a database error into the error-kind taxonomy. The adapter
// never retries internally; callers use RetryTransient where retrying is
// appropriate.
func classify(step string, err error) error {
	if err == nil {
		return nil
	}
	if ent.IsNotFound(err) {
		return flowerr.Wrap(flowerr.NotFound, step, err)
	}
	if ent.IsConstraintError(err) {
		return flowerr.Wrap(flowerr.Conflict, step, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return flowerr.Wrap(flowerr.Timeout, step, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization failure, deadlock
			return flowerr.Wrap(flowerr.Transient, step, err)
		case "23505": // unique violation
			return flowerr.Wrap(flowerr.Conflict, step, err)
		}
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" { // connection errors
			return flowerr.Wrap(flowerr.Transient, step, err)
		}
	}
	if pgconn.Timeout(err) {
		return flowerr.Wrap(flowerr.Transient, step, err)
	}

	return flowerr.Wrap(flowerr.Permanent, step, err)
}

func toProject(p *ent.Project) *models.Project {
	return &models.Project{
		ID:             p.ID,
		UserID:         p.UserID,
		Name:           p.Name,
		TaskType:       string(p.TaskType),
		Framework:      string(p.Framework),
		DatasetSource:  string(p.DatasetSource),
		SearchKeywords: p.SearchKeywords,
		Status:         models.Status(p.Status),
		Metadata:       p.Metadata,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toDataset(d *ent.Dataset) *models.Dataset {
	return &models.Dataset{
		ID:        d.ID,
		ProjectID: d.ProjectID,
		Name:      d.Name,
		ObjectURI: d.ObjectURI,
		Size:      d.Size,
		Source:    d.Source,
		CreatedAt: d.CreatedAt,
	}
}

func toModel(m *ent.Model) *models.TrainedModel {
	return &models.TrainedModel{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Name:      m.Name,
		Framework: string(m.Framework),
		ObjectURI: m.ObjectURI,
		Accuracy:  m.Accuracy,
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt,
	}
}

func toUser(u *ent.User) *models.User {
	out := &models.User{
		ID:             u.ID,
		ExternalAuthID: u.ExternalAuthID,
		IsAdmin:        u.IsAdmin,
		CreatedAt:      u.CreatedAt,
	}
	if u.Email != nil {
		out.Email = *u.Email
	}
	if u.DisplayName != nil {
		out.DisplayName = *u.DisplayName
	}
	return out
}

func toAgentLog(l *ent.AgentLog) *models.AgentLog {
	out := &models.AgentLog{
		ID:        l.ID,
		AgentName: models.AgentName(l.AgentName),
		Message:   l.Message,
		LogLevel:  models.LogLevel(l.LogLevel),
		CreatedAt: l.CreatedAt,
	}
	if l.ProjectID != nil {
		out.ProjectID = *l.ProjectID
	}
	return out
}

func toMessage(m *ent.Message) *models.Message {
	return &models.Message{
		ID:        m.ID,
		UserID:    m.UserID,
		Role:      models.MessageRole(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
