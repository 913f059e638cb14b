// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentLogsColumns holds the columns for the "agent_logs" table.
	AgentLogsColumns = []*schema.Column{
		{Name: "agent_log_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeEnum, Enums: []string{"planner", "dataset", "training", "evaluation", "gateway"}},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "log_level", Type: field.TypeEnum, Enums: []string{"info", "warning", "error"}, Default: "info"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
	}
	// AgentLogsTable holds the schema information for the "agent_logs" table.
	AgentLogsTable = &schema.Table{
		Name:       "agent_logs",
		Columns:    AgentLogsColumns,
		PrimaryKey: []*schema.Column{AgentLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_logs_projects_agent_logs",
				Columns:    []*schema.Column{AgentLogsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentlog_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentLogsColumns[5], AgentLogsColumns[4]},
			},
			{
				Name:    "agentlog_agent_name",
				Unique:  false,
				Columns: []*schema.Column{AgentLogsColumns[1]},
			},
		},
	}
	// DatasetsColumns holds the columns for the "datasets" table.
	DatasetsColumns = []*schema.Column{
		{Name: "dataset_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "object_uri", Type: field.TypeString},
		{Name: "size", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: "kaggle"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// DatasetsTable holds the schema information for the "datasets" table.
	DatasetsTable = &schema.Table{
		Name:       "datasets",
		Columns:    DatasetsColumns,
		PrimaryKey: []*schema.Column{DatasetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "datasets_projects_datasets",
				Columns:    []*schema.Column{DatasetsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dataset_project_id",
				Unique:  false,
				Columns: []*schema.Column{DatasetsColumns[6]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_users_messages",
				Columns:    []*schema.Column{MessagesColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4], MessagesColumns[3]},
			},
		},
	}
	// ModelsColumns holds the columns for the "models" table.
	ModelsColumns = []*schema.Column{
		{Name: "model_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "framework", Type: field.TypeEnum, Enums: []string{"pytorch", "tensorflow"}, Default: "pytorch"},
		{Name: "object_uri", Type: field.TypeString},
		{Name: "accuracy", Type: field.TypeFloat64, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// ModelsTable holds the schema information for the "models" table.
	ModelsTable = &schema.Table{
		Name:       "models",
		Columns:    ModelsColumns,
		PrimaryKey: []*schema.Column{ModelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "models_projects_trained_models",
				Columns:    []*schema.Column{ModelsColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "model_project_id",
				Unique:  false,
				Columns: []*schema.Column{ModelsColumns[7]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeEnum, Enums: []string{"image_classification", "object_detection", "text_classification"}, Default: "image_classification"},
		{Name: "framework", Type: field.TypeEnum, Enums: []string{"pytorch", "tensorflow"}, Default: "pytorch"},
		{Name: "dataset_source", Type: field.TypeEnum, Enums: []string{"kaggle", "huggingface"}, Default: "kaggle"},
		{Name: "search_keywords", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "pending_dataset", "pending_training", "pending_evaluation", "completed", "failed"}, Default: "draft"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_users_projects",
				Columns:    []*schema.Column{ProjectsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[6]},
			},
			{
				Name:    "project_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[10]},
			},
			{
				Name:    "project_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[6], ProjectsColumns[9]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "external_auth_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_external_auth_id",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentLogsTable,
		DatasetsTable,
		MessagesTable,
		ModelsTable,
		ProjectsTable,
		UsersTable,
	}
)

func init() {
	AgentLogsTable.ForeignKeys[0].RefTable = ProjectsTable
	DatasetsTable.ForeignKeys[0].RefTable = ProjectsTable
	MessagesTable.ForeignKeys[0].RefTable = UsersTable
	ModelsTable.ForeignKeys[0].RefTable = ProjectsTable
	ProjectsTable.ForeignKeys[0].RefTable = UsersTable
}
