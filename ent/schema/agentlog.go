package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentLog holds the schema definition for the AgentLog entity.
// Append-only activity log; project_id is nullable only for startup events
// emitted before any project is in scope.
type AgentLog struct {
	ent.Schema
}

// Fields of the AgentLog.
func (AgentLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_log_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("agent_name").
			Values("planner", "dataset", "training", "evaluation", "gateway"),
		field.Text("message"),
		field.Enum("log_level").
			Values("info", "warning", "error").
			Default("info"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentLog.
func (AgentLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("agent_logs").
			Field("project_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the AgentLog.
func (AgentLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
		index.Fields("agent_name"),
	}
}
