// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/modelfoundry/foundry/ent/agentlog"
	"github.com/modelfoundry/foundry/ent/dataset"
	"github.com/modelfoundry/foundry/ent/model"
	"github.com/modelfoundry/foundry/ent/predicate"
	"github.com/modelfoundry/foundry/ent/project"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *ProjectUpdate) SetTaskType(v project.TaskType) *ProjectUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableTaskType(v *project.TaskType) *ProjectUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetFramework sets the "framework" field.
func (_u *ProjectUpdate) SetFramework(v project.Framework) *ProjectUpdate {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableFramework(v *project.Framework) *ProjectUpdate {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// SetDatasetSource sets the "dataset_source" field.
func (_u *ProjectUpdate) SetDatasetSource(v project.DatasetSource) *ProjectUpdate {
	_u.mutation.SetDatasetSource(v)
	return _u
}

// SetNillableDatasetSource sets the "dataset_source" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDatasetSource(v *project.DatasetSource) *ProjectUpdate {
	if v != nil {
		_u.SetDatasetSource(*v)
	}
	return _u
}

// SetSearchKeywords sets the "search_keywords" field.
func (_u *ProjectUpdate) SetSearchKeywords(v []string) *ProjectUpdate {
	_u.mutation.SetSearchKeywords(v)
	return _u
}

// AppendSearchKeywords appends value to the "search_keywords" field.
func (_u *ProjectUpdate) AppendSearchKeywords(v []string) *ProjectUpdate {
	_u.mutation.AppendSearchKeywords(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdate) SetStatus(v project.Status) *ProjectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableStatus(v *project.Status) *ProjectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ProjectUpdate) SetMetadata(v map[string]interface{}) *ProjectUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ProjectUpdate) ClearMetadata() *ProjectUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableUpdatedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddDatasetIDs adds the "datasets" edge to the Dataset entity by IDs.
func (_u *ProjectUpdate) AddDatasetIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddDatasetIDs(ids...)
	return _u
}

// AddDatasets adds the "datasets" edges to the Dataset entity.
func (_u *ProjectUpdate) AddDatasets(v ...*Dataset) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDatasetIDs(ids...)
}

// AddTrainedModelIDs adds the "trained_models" edge to the Model entity by IDs.
func (_u *ProjectUpdate) AddTrainedModelIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddTrainedModelIDs(ids...)
	return _u
}

// AddTrainedModels adds the "trained_models" edges to the Model entity.
func (_u *ProjectUpdate) AddTrainedModels(v ...*Model) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrainedModelIDs(ids...)
}

// AddAgentLogIDs adds the "agent_logs" edge to the AgentLog entity by IDs.
func (_u *ProjectUpdate) AddAgentLogIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddAgentLogIDs(ids...)
	return _u
}

// AddAgentLogs adds the "agent_logs" edges to the AgentLog entity.
func (_u *ProjectUpdate) AddAgentLogs(v ...*AgentLog) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentLogIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearDatasets clears all "datasets" edges to the Dataset entity.
func (_u *ProjectUpdate) ClearDatasets() *ProjectUpdate {
	_u.mutation.ClearDatasets()
	return _u
}

// RemoveDatasetIDs removes the "datasets" edge to Dataset entities by IDs.
func (_u *ProjectUpdate) RemoveDatasetIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveDatasetIDs(ids...)
	return _u
}

// RemoveDatasets removes "datasets" edges to Dataset entities.
func (_u *ProjectUpdate) RemoveDatasets(v ...*Dataset) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDatasetIDs(ids...)
}

// ClearTrainedModels clears all "trained_models" edges to the Model entity.
func (_u *ProjectUpdate) ClearTrainedModels() *ProjectUpdate {
	_u.mutation.ClearTrainedModels()
	return _u
}

// RemoveTrainedModelIDs removes the "trained_models" edge to Model entities by IDs.
func (_u *ProjectUpdate) RemoveTrainedModelIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveTrainedModelIDs(ids...)
	return _u
}

// RemoveTrainedModels removes "trained_models" edges to Model entities.
func (_u *ProjectUpdate) RemoveTrainedModels(v ...*Model) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrainedModelIDs(ids...)
}

// ClearAgentLogs clears all "agent_logs" edges to the AgentLog entity.
func (_u *ProjectUpdate) ClearAgentLogs() *ProjectUpdate {
	_u.mutation.ClearAgentLogs()
	return _u
}

// RemoveAgentLogIDs removes the "agent_logs" edge to AgentLog entities by IDs.
func (_u *ProjectUpdate) RemoveAgentLogIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveAgentLogIDs(ids...)
	return _u
}

// RemoveAgentLogs removes "agent_logs" edges to AgentLog entities.
func (_u *ProjectUpdate) RemoveAgentLogs(v ...*AgentLog) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.TaskType(); ok {
		if err := project.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Project.task_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Framework(); ok {
		if err := project.FrameworkValidator(v); err != nil {
			return &ValidationError{Name: "framework", err: fmt.Errorf(`ent: validator failed for field "Project.framework": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatasetSource(); ok {
		if err := project.DatasetSourceValidator(v); err != nil {
			return &ValidationError{Name: "dataset_source", err: fmt.Errorf(`ent: validator failed for field "Project.dataset_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.owner"`)
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(project.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(project.FieldFramework, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DatasetSource(); ok {
		_spec.SetField(project.FieldDatasetSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SearchKeywords(); ok {
		_spec.SetField(project.FieldSearchKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSearchKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldSearchKeywords, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(project.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(project.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DatasetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DatasetsTable,
			Columns: []string{project.DatasetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDatasetsIDs(); len(nodes) > 0 && !_u.mutation.DatasetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DatasetsTable,
			Columns: []string{project.DatasetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DatasetsTable,
			Columns: []string{project.DatasetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrainedModelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TrainedModelsTable,
			Columns: []string{project.TrainedModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrainedModelsIDs(); len(nodes) > 0 && !_u.mutation.TrainedModelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TrainedModelsTable,
			Columns: []string{project.TrainedModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrainedModelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TrainedModelsTable,
			Columns: []string{project.TrainedModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentLogsTable,
			Columns: []string{project.AgentLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentLogsIDs(); len(nodes) > 0 && !_u.mutation.AgentLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentLogsTable,
			Columns: []string{project.AgentLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentLogsTable,
			Columns: []string{project.AgentLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *ProjectUpdateOne) SetTaskType(v project.TaskType) *ProjectUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableTaskType(v *project.TaskType) *ProjectUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetFramework sets the "framework" field.
func (_u *ProjectUpdateOne) SetFramework(v project.Framework) *ProjectUpdateOne {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableFramework(v *project.Framework) *ProjectUpdateOne {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// SetDatasetSource sets the "dataset_source" field.
func (_u *ProjectUpdateOne) SetDatasetSource(v project.DatasetSource) *ProjectUpdateOne {
	_u.mutation.SetDatasetSource(v)
	return _u
}

// SetNillableDatasetSource sets the "dataset_source" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDatasetSource(v *project.DatasetSource) *ProjectUpdateOne {
	if v != nil {
		_u.SetDatasetSource(*v)
	}
	return _u
}

// SetSearchKeywords sets the "search_keywords" field.
func (_u *ProjectUpdateOne) SetSearchKeywords(v []string) *ProjectUpdateOne {
	_u.mutation.SetSearchKeywords(v)
	return _u
}

// AppendSearchKeywords appends value to the "search_keywords" field.
func (_u *ProjectUpdateOne) AppendSearchKeywords(v []string) *ProjectUpdateOne {
	_u.mutation.AppendSearchKeywords(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdateOne) SetStatus(v project.Status) *ProjectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableStatus(v *project.Status) *ProjectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ProjectUpdateOne) SetMetadata(v map[string]interface{}) *ProjectUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ProjectUpdateOne) ClearMetadata() *ProjectUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableUpdatedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddDatasetIDs adds the "datasets" edge to the Dataset entity by IDs.
func (_u *ProjectUpdateOne) AddDatasetIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddDatasetIDs(ids...)
	return _u
}

// AddDatasets adds the "datasets" edges to the Dataset entity.
func (_u *ProjectUpdateOne) AddDatasets(v ...*Dataset) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDatasetIDs(ids...)
}

// AddTrainedModelIDs adds the "trained_models" edge to the Model entity by IDs.
func (_u *ProjectUpdateOne) AddTrainedModelIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddTrainedModelIDs(ids...)
	return _u
}

// AddTrainedModels adds the "trained_models" edges to the Model entity.
func (_u *ProjectUpdateOne) AddTrainedModels(v ...*Model) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrainedModelIDs(ids...)
}

// AddAgentLogIDs adds the "agent_logs" edge to the AgentLog entity by IDs.
func (_u *ProjectUpdateOne) AddAgentLogIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddAgentLogIDs(ids...)
	return _u
}

// AddAgentLogs adds the "agent_logs" edges to the AgentLog entity.
func (_u *ProjectUpdateOne) AddAgentLogs(v ...*AgentLog) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentLogIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearDatasets clears all "datasets" edges to the Dataset entity.
func (_u *ProjectUpdateOne) ClearDatasets() *ProjectUpdateOne {
	_u.mutation.ClearDatasets()
	return _u
}

// RemoveDatasetIDs removes the "datasets" edge to Dataset entities by IDs.
func (_u *ProjectUpdateOne) RemoveDatasetIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveDatasetIDs(ids...)
	return _u
}

// RemoveDatasets removes "datasets" edges to Dataset entities.
func (_u *ProjectUpdateOne) RemoveDatasets(v ...*Dataset) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDatasetIDs(ids...)
}

// ClearTrainedModels clears all "trained_models" edges to the Model entity.
func (_u *ProjectUpdateOne) ClearTrainedModels() *ProjectUpdateOne {
	_u.mutation.ClearTrainedModels()
	return _u
}

// RemoveTrainedModelIDs removes the "trained_models" edge to Model entities by IDs.
func (_u *ProjectUpdateOne) RemoveTrainedModelIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveTrainedModelIDs(ids...)
	return _u
}

// RemoveTrainedModels removes "trained_models" edges to Model entities.
func (_u *ProjectUpdateOne) RemoveTrainedModels(v ...*Model) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrainedModelIDs(ids...)
}

// ClearAgentLogs clears all "agent_logs" edges to the AgentLog entity.
func (_u *ProjectUpdateOne) ClearAgentLogs() *ProjectUpdateOne {
	_u.mutation.ClearAgentLogs()
	return _u
}

// RemoveAgentLogIDs removes the "agent_logs" edge to AgentLog entities by IDs.
func (_u *ProjectUpdateOne) RemoveAgentLogIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveAgentLogIDs(ids...)
	return _u
}

// RemoveAgentLogs removes "agent_logs" edges to AgentLog entities.
func (_u *ProjectUpdateOne) RemoveAgentLogs(v ...*AgentLog) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentLogIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.TaskType(); ok {
		if err := project.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Project.task_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Framework(); ok {
		if err := project.FrameworkValidator(v); err != nil {
			return &ValidationError{Name: "framework", err: fmt.Errorf(`ent: validator failed for field "Project.framework": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatasetSource(); ok {
		if err := project.DatasetSourceValidator(v); err != nil {
			return &ValidationError{Name: "dataset_source", err: fmt.Errorf(`ent: validator failed for field "Project.dataset_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Project.owner"`)
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(project.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(project.FieldFramework, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DatasetSource(); ok {
		_spec.SetField(project.FieldDatasetSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SearchKeywords(); ok {
		_spec.SetField(project.FieldSearchKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSearchKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldSearchKeywords, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(project.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(project.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DatasetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DatasetsTable,
			Columns: []string{project.DatasetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDatasetsIDs(); len(nodes) > 0 && !_u.mutation.DatasetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DatasetsTable,
			Columns: []string{project.DatasetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DatasetsTable,
			Columns: []string{project.DatasetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrainedModelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TrainedModelsTable,
			Columns: []string{project.TrainedModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrainedModelsIDs(); len(nodes) > 0 && !_u.mutation.TrainedModelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TrainedModelsTable,
			Columns: []string{project.TrainedModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrainedModelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TrainedModelsTable,
			Columns: []string{project.TrainedModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentLogsTable,
			Columns: []string{project.AgentLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentLogsIDs(); len(nodes) > 0 && !_u.mutation.AgentLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentLogsTable,
			Columns: []string{project.AgentLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.AgentLogsTable,
			Columns: []string{project.AgentLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
