package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Dataset holds the schema definition for the Dataset entity.
// Exactly one row per project is expected once the project has advanced past
// pending_dataset. The object URI is verified readable before the row is
// written.
type Dataset struct {
	ent.Schema
}

// Fields of the Dataset.
func (Dataset) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dataset_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name").
			Comment("Source reference, e.g. 'owner/flowers-dataset'"),
		field.String("object_uri").
			Comment("Archive location in the object store"),
		field.String("size").
			Comment("Human-readable archive size, e.g. '0.83 GB'"),
		field.String("source").
			Default("kaggle"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Dataset.
func (Dataset) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("datasets").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Dataset.
func (Dataset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
	}
}
