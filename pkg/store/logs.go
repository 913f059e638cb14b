package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelfoundry/foundry/ent"
	"github.com/modelfoundry/foundry/ent/agentlog"
	"github.com/modelfoundry/foundry/pkg/models"
)

// AppendLog writes one activity record. projectID may be empty for
// process-level events.
func (s *Store) AppendLog(ctx context.Context, projectID string, agent models.AgentName, level models.LogLevel, msg string) error {
	builder := s.client.AgentLog.Create().
		SetID(uuid.New().String()).
		SetAgentName(agentlog.AgentName(agent)).
		SetLogLevel(agentlog.LogLevel(level)).
		SetMessage(msg)
	if projectID != "" {
		builder.SetProjectID(projectID)
	}

	if err := builder.Exec(ctx); err != nil {
		return classify("append_log", err)
	}
	return nil
}

// LogsByProject returns a project's activity log, oldest first.
func (s *Store) LogsByProject(ctx context.Context, projectID string, limit int) ([]*models.AgentLog, error) {
	query := s.client.AgentLog.Query().
		Where(agentlog.ProjectIDEQ(projectID)).
		Order(ent.Asc(agentlog.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, classify("logs_by_project", err)
	}
	out := make([]*models.AgentLog, len(rows))
	for i, l := range rows {
		out[i] = toAgentLog(l)
	}
	return out, nil
}

// RecentLogs returns the newest log entries across all projects for the
// admin surface.
func (s *Store) RecentLogs(ctx context.Context, limit int) ([]*models.AgentLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.client.AgentLog.Query().
		Order(ent.Desc(agentlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, classify("recent_logs", err)
	}
	out := make([]*models.AgentLog, len(rows))
	for i, l := range rows {
		out[i] = toAgentLog(l)
	}
	return out, nil
}
