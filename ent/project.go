// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/modelfoundry/foundry/ent/project"
	"github.com/modelfoundry/foundry/ent/user"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Human-readable project name from the plan
	Name string `json:"name,omitempty"`
	// TaskType holds the value of the "task_type" field.
	TaskType project.TaskType `json:"task_type,omitempty"`
	// Framework holds the value of the "framework" field.
	Framework project.Framework `json:"framework,omitempty"`
	// DatasetSource holds the value of the "dataset_source" field.
	DatasetSource project.DatasetSource `json:"dataset_source,omitempty"`
	// Ordered dataset search keywords, 1-8 items
	SearchKeywords []string `json:"search_keywords,omitempty"`
	// Status holds the value of the "status" field.
	Status project.Status `json:"status,omitempty"`
	// Plan parameters, num_classes, bundle_uri, error details
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Strictly increases on every mutation
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Datasets holds the value of the datasets edge.
	Datasets []*Dataset `json:"datasets,omitempty"`
	// TrainedModels holds the value of the trained_models edge.
	TrainedModels []*Model `json:"trained_models,omitempty"`
	// AgentLogs holds the value of the agent_logs edge.
	AgentLogs []*AgentLog `json:"agent_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProjectEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// DatasetsOrErr returns the Datasets value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) DatasetsOrErr() ([]*Dataset, error) {
	if e.loadedTypes[1] {
		return e.Datasets, nil
	}
	return nil, &NotLoadedError{edge: "datasets"}
}

// TrainedModelsOrErr returns the TrainedModels value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) TrainedModelsOrErr() ([]*Model, error) {
	if e.loadedTypes[2] {
		return e.TrainedModels, nil
	}
	return nil, &NotLoadedError{edge: "trained_models"}
}

// AgentLogsOrErr returns the AgentLogs value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) AgentLogsOrErr() ([]*AgentLog, error) {
	if e.loadedTypes[3] {
		return e.AgentLogs, nil
	}
	return nil, &NotLoadedError{edge: "agent_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldSearchKeywords, project.FieldMetadata:
			values[i] = new([]byte)
		case project.FieldID, project.FieldUserID, project.FieldName, project.FieldTaskType, project.FieldFramework, project.FieldDatasetSource, project.FieldStatus:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case project.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = project.TaskType(value.String)
			}
		case project.FieldFramework:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field framework", values[i])
			} else if value.Valid {
				_m.Framework = project.Framework(value.String)
			}
		case project.FieldDatasetSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_source", values[i])
			} else if value.Valid {
				_m.DatasetSource = project.DatasetSource(value.String)
			}
		case project.FieldSearchKeywords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field search_keywords", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SearchKeywords); err != nil {
					return fmt.Errorf("unmarshal field search_keywords: %w", err)
				}
			}
		case project.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = project.Status(value.String)
			}
		case project.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Project entity.
func (_m *Project) QueryOwner() *UserQuery {
	return NewProjectClient(_m.config).QueryOwner(_m)
}

// QueryDatasets queries the "datasets" edge of the Project entity.
func (_m *Project) QueryDatasets() *DatasetQuery {
	return NewProjectClient(_m.config).QueryDatasets(_m)
}

// QueryTrainedModels queries the "trained_models" edge of the Project entity.
func (_m *Project) QueryTrainedModels() *ModelQuery {
	return NewProjectClient(_m.config).QueryTrainedModels(_m)
}

// QueryAgentLogs queries the "agent_logs" edge of the Project entity.
func (_m *Project) QueryAgentLogs() *AgentLogQuery {
	return NewProjectClient(_m.config).QueryAgentLogs(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskType))
	builder.WriteString(", ")
	builder.WriteString("framework=")
	builder.WriteString(fmt.Sprintf("%v", _m.Framework))
	builder.WriteString(", ")
	builder.WriteString("dataset_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatasetSource))
	builder.WriteString(", ")
	builder.WriteString("search_keywords=")
	builder.WriteString(fmt.Sprintf("%v", _m.SearchKeywords))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
