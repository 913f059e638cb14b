// Code generated by ent, DO NOT EDIT.

package project

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "project_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldFramework holds the string denoting the framework field in the database.
	FieldFramework = "framework"
	// FieldDatasetSource holds the string denoting the dataset_source field in the database.
	FieldDatasetSource = "dataset_source"
	// FieldSearchKeywords holds the string denoting the search_keywords field in the database.
	FieldSearchKeywords = "search_keywords"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// EdgeDatasets holds the string denoting the datasets edge name in mutations.
	EdgeDatasets = "datasets"
	// EdgeTrainedModels holds the string denoting the trained_models edge name in mutations.
	EdgeTrainedModels = "trained_models"
	// EdgeAgentLogs holds the string denoting the agent_logs edge name in mutations.
	EdgeAgentLogs = "agent_logs"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// DatasetFieldID holds the string denoting the ID field of the Dataset.
	DatasetFieldID = "dataset_id"
	// ModelFieldID holds the string denoting the ID field of the Model.
	ModelFieldID = "model_id"
	// AgentLogFieldID holds the string denoting the ID field of the AgentLog.
	AgentLogFieldID = "agent_log_id"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "projects"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "user_id"
	// DatasetsTable is the table that holds the datasets relation/edge.
	DatasetsTable = "datasets"
	// DatasetsInverseTable is the table name for the Dataset entity.
	// It exists in this package in order to avoid circular dependency with the "dataset" package.
	DatasetsInverseTable = "datasets"
	// DatasetsColumn is the table column denoting the datasets relation/edge.
	DatasetsColumn = "project_id"
	// TrainedModelsTable is the table that holds the trained_models relation/edge.
	TrainedModelsTable = "models"
	// TrainedModelsInverseTable is the table name for the Model entity.
	// It exists in this package in order to avoid circular dependency with the "model" package.
	TrainedModelsInverseTable = "models"
	// TrainedModelsColumn is the table column denoting the trained_models relation/edge.
	TrainedModelsColumn = "project_id"
	// AgentLogsTable is the table that holds the agent_logs relation/edge.
	AgentLogsTable = "agent_logs"
	// AgentLogsInverseTable is the table name for the AgentLog entity.
	// It exists in this package in order to avoid circular dependency with the "agentlog" package.
	AgentLogsInverseTable = "agent_logs"
	// AgentLogsColumn is the table column denoting the agent_logs relation/edge.
	AgentLogsColumn = "project_id"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldTaskType,
	FieldFramework,
	FieldDatasetSource,
	FieldSearchKeywords,
	FieldStatus,
	FieldMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// TaskType defines the type for the "task_type" enum field.
type TaskType string

// TaskTypeImageClassification is the default value of the TaskType enum.
const DefaultTaskType = TaskTypeImageClassification

// TaskType values.
const (
	TaskTypeImageClassification TaskType = "image_classification"
	TaskTypeObjectDetection     TaskType = "object_detection"
	TaskTypeTextClassification  TaskType = "text_classification"
)

func (tt TaskType) String() string {
	return string(tt)
}

// TaskTypeValidator is a validator for the "task_type" field enum values. It is called by the builders before save.
func TaskTypeValidator(tt TaskType) error {
	switch tt {
	case TaskTypeImageClassification, TaskTypeObjectDetection, TaskTypeTextClassification:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for task_type field: %q", tt)
	}
}

// Framework defines the type for the "framework" enum field.
type Framework string

// FrameworkPytorch is the default value of the Framework enum.
const DefaultFramework = FrameworkPytorch

// Framework values.
const (
	FrameworkPytorch    Framework = "pytorch"
	FrameworkTensorflow Framework = "tensorflow"
)

func (f Framework) String() string {
	return string(f)
}

// FrameworkValidator is a validator for the "framework" field enum values. It is called by the builders before save.
func FrameworkValidator(f Framework) error {
	switch f {
	case FrameworkPytorch, FrameworkTensorflow:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for framework field: %q", f)
	}
}

// DatasetSource defines the type for the "dataset_source" enum field.
type DatasetSource string

// DatasetSourceKaggle is the default value of the DatasetSource enum.
const DefaultDatasetSource = DatasetSourceKaggle

// DatasetSource values.
const (
	DatasetSourceKaggle      DatasetSource = "kaggle"
	DatasetSourceHuggingface DatasetSource = "huggingface"
)

func (ds DatasetSource) String() string {
	return string(ds)
}

// DatasetSourceValidator is a validator for the "dataset_source" field enum values. It is called by the builders before save.
func DatasetSourceValidator(ds DatasetSource) error {
	switch ds {
	case DatasetSourceKaggle, DatasetSourceHuggingface:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for dataset_source field: %q", ds)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft             Status = "draft"
	StatusPendingDataset    Status = "pending_dataset"
	StatusPendingTraining   Status = "pending_training"
	StatusPendingEvaluation Status = "pending_evaluation"
	StatusCompleted         Status = "completed"
	StatusFailed            Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusPendingDataset, StatusPendingTraining, StatusPendingEvaluation, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByFramework orders the results by the framework field.
func ByFramework(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFramework, opts...).ToFunc()
}

// ByDatasetSource orders the results by the dataset_source field.
func ByDatasetSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatasetSource, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}

// ByDatasetsCount orders the results by datasets count.
func ByDatasetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDatasetsStep(), opts...)
	}
}

// ByDatasets orders the results by datasets terms.
func ByDatasets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDatasetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTrainedModelsCount orders the results by trained_models count.
func ByTrainedModelsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrainedModelsStep(), opts...)
	}
}

// ByTrainedModels orders the results by trained_models terms.
func ByTrainedModels(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrainedModelsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentLogsCount orders the results by agent_logs count.
func ByAgentLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentLogsStep(), opts...)
	}
}

// ByAgentLogs orders the results by agent_logs terms.
func ByAgentLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
func newDatasetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DatasetsInverseTable, DatasetFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DatasetsTable, DatasetsColumn),
	)
}
func newTrainedModelsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrainedModelsInverseTable, ModelFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrainedModelsTable, TrainedModelsColumn),
	)
}
func newAgentLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentLogsInverseTable, AgentLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentLogsTable, AgentLogsColumn),
	)
}
