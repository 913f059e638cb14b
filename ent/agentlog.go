// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/modelfoundry/foundry/ent/agentlog"
	"github.com/modelfoundry/foundry/ent/project"
)

// AgentLog is the model entity for the AgentLog schema.
type AgentLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *string `json:"project_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName agentlog.AgentName `json:"agent_name,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// LogLevel holds the value of the "log_level" field.
	LogLevel agentlog.LogLevel `json:"log_level,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentLogQuery when eager-loading is set.
	Edges        AgentLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentLogEdges holds the relations/edges for other nodes in the graph.
type AgentLogEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentLogEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentlog.FieldID, agentlog.FieldProjectID, agentlog.FieldAgentName, agentlog.FieldMessage, agentlog.FieldLogLevel:
			values[i] = new(sql.NullString)
		case agentlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentLog fields.
func (_m *AgentLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentlog.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(string)
				*_m.ProjectID = value.String
			}
		case agentlog.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = agentlog.AgentName(value.String)
			}
		case agentlog.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case agentlog.FieldLogLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field log_level", values[i])
			} else if value.Valid {
				_m.LogLevel = agentlog.LogLevel(value.String)
			}
		case agentlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentLog.
// This includes values selected through modifiers, order, etc.
func (_m *AgentLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the AgentLog entity.
func (_m *AgentLog) QueryProject() *ProjectQuery {
	return NewAgentLogClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this AgentLog.
// Note that you need to call AgentLog.Unwrap() before calling this method if this AgentLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentLog) Update() *AgentLogUpdateOne {
	return NewAgentLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentLog) Unwrap() *AgentLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentLog) String() string {
	var builder strings.Builder
	builder.WriteString("AgentLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentName))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("log_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogLevel))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentLogs is a parsable slice of AgentLog.
type AgentLogs []*AgentLog
