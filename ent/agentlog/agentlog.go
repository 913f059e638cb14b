// Code generated by ent, DO NOT EDIT.

package agentlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentlog type in the database.
	Label = "agent_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_log_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldLogLevel holds the string denoting the log_level field in the database.
	FieldLogLevel = "log_level"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the agentlog in the database.
	Table = "agent_logs"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "agent_logs"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for agentlog fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldAgentName,
	FieldMessage,
	FieldLogLevel,
	FieldCreatedAt,
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
)

// AgentName defines the type for the "agent_name" enum field.
type AgentName string

// AgentName values.
const (
	AgentNamePlanner    AgentName = "planner"
	AgentNameDataset    AgentName = "dataset"
	AgentNameTraining   AgentName = "training"
	AgentNameEvaluation AgentName = "evaluation"
	AgentNameGateway    AgentName = "gateway"
)

func (an AgentName) String() string {
	return string(an)
}

// AgentNameValidator is a validator for the "agent_name" field enum values. It is called by the builders before save.
func AgentNameValidator(an AgentName) error {
	switch an {
	case AgentNamePlanner, AgentNameDataset, AgentNameTraining, AgentNameEvaluation, AgentNameGateway:
		return nil
	default:
		return fmt.Errorf("agentlog: invalid enum value for agent_name field: %q", an)
	}
}

// LogLevel defines the type for the "log_level" enum field.
type LogLevel string

// LogLevelInfo is the default value of the LogLevel enum.
const DefaultLogLevel = LogLevelInfo

// LogLevel values.
const (
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

func (ll LogLevel) String() string {
	return string(ll)
}

// LogLevelValidator is a validator for the "log_level" field enum values. It is called by the builders before save.
func LogLevelValidator(ll LogLevel) error {
	switch ll {
	case LogLevelInfo, LogLevelWarning, LogLevelError:
		return nil
	default:
		return fmt.Errorf("agentlog: invalid enum value for log_level field: %q", ll)
	}
}

// OrderOption defines the ordering options for the AgentLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByLogLevel orders the results by the log_level field.
func ByLogLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogLevel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
