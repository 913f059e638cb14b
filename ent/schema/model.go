package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Model holds the schema definition for the Model entity.
// Created by the training agent; accuracy and evaluation metrics are added
// by the evaluation agent.
type Model struct {
	ent.Schema
}

// Fields of the Model.
func (Model) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("model_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.Enum("framework").
			Values("pytorch", "tensorflow").
			Default("pytorch"),
		field.String("object_uri").
			Comment("Weights file location in the object store"),
		field.Float("accuracy").
			Optional().
			Nillable().
			Comment("Top-1 test accuracy in [0,1], set by evaluation"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("epochs, final_loss, training_seconds, evaluation report"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Model.
func (Model) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("trained_models").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Model.
func (Model) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
	}
}
