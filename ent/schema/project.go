package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
//
// A project is created by the planner and then advanced through the status
// pipeline by the dataset, training, and evaluation agents. The status field
// is the coordination primitive: each non-terminal status has exactly one
// owning agent, and transitions happen only through the store adapter's
// conditional AdvanceStatus update.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("name").
			Comment("Human-readable project name from the plan"),
		field.Enum("task_type").
			Values("image_classification", "object_detection", "text_classification").
			Default("image_classification"),
		field.Enum("framework").
			Values("pytorch", "tensorflow").
			Default("pytorch"),
		field.Enum("dataset_source").
			Values("kaggle", "huggingface").
			Default("kaggle"),
		field.JSON("search_keywords", []string{}).
			Comment("Ordered dataset search keywords, 1-8 items"),
		field.Enum("status").
			Values("draft", "pending_dataset", "pending_training", "pending_evaluation", "completed", "failed").
			Default("draft"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Plan parameters, num_classes, bundle_uri, error details"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Strictly increases on every mutation"),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("projects").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("datasets", Dataset.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("trained_models", Model.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_logs", AgentLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),

		// Poll queries fetch by status ordered by updated_at ascending.
		index.Fields("status", "updated_at"),
	}
}
