// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/modelfoundry/foundry/ent/model"
	"github.com/modelfoundry/foundry/ent/predicate"
)

// ModelUpdate is the builder for updating Model entities.
type ModelUpdate struct {
	config
	hooks    []Hook
	mutation *ModelMutation
}

// Where appends a list predicates to the ModelUpdate builder.
func (_u *ModelUpdate) Where(ps ...predicate.Model) *ModelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ModelUpdate) SetName(v string) *ModelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModelUpdate) SetNillableName(v *string) *ModelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFramework sets the "framework" field.
func (_u *ModelUpdate) SetFramework(v model.Framework) *ModelUpdate {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *ModelUpdate) SetNillableFramework(v *model.Framework) *ModelUpdate {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// SetObjectURI sets the "object_uri" field.
func (_u *ModelUpdate) SetObjectURI(v string) *ModelUpdate {
	_u.mutation.SetObjectURI(v)
	return _u
}

// SetNillableObjectURI sets the "object_uri" field if the given value is not nil.
func (_u *ModelUpdate) SetNillableObjectURI(v *string) *ModelUpdate {
	if v != nil {
		_u.SetObjectURI(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *ModelUpdate) SetAccuracy(v float64) *ModelUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *ModelUpdate) SetNillableAccuracy(v *float64) *ModelUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *ModelUpdate) AddAccuracy(v float64) *ModelUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// ClearAccuracy clears the value of the "accuracy" field.
func (_u *ModelUpdate) ClearAccuracy() *ModelUpdate {
	_u.mutation.ClearAccuracy()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ModelUpdate) SetMetadata(v map[string]interface{}) *ModelUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ModelUpdate) ClearMetadata() *ModelUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ModelMutation object of the builder.
func (_u *ModelUpdate) Mutation() *ModelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelUpdate) check() error {
	if v, ok := _u.mutation.Framework(); ok {
		if err := model.FrameworkValidator(v); err != nil {
			return &ValidationError{Name: "framework", err: fmt.Errorf(`ent: validator failed for field "Model.framework": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Model.project"`)
	}
	return nil
}

func (_u *ModelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(model.Table, model.Columns, sqlgraph.NewFieldSpec(model.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(model.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(model.FieldFramework, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ObjectURI(); ok {
		_spec.SetField(model.FieldObjectURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(model.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(model.FieldAccuracy, field.TypeFloat64, value)
	}
	if _u.mutation.AccuracyCleared() {
		_spec.ClearField(model.FieldAccuracy, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(model.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(model.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{model.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelUpdateOne is the builder for updating a single Model entity.
type ModelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelMutation
}

// SetName sets the "name" field.
func (_u *ModelUpdateOne) SetName(v string) *ModelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ModelUpdateOne) SetNillableName(v *string) *ModelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFramework sets the "framework" field.
func (_u *ModelUpdateOne) SetFramework(v model.Framework) *ModelUpdateOne {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *ModelUpdateOne) SetNillableFramework(v *model.Framework) *ModelUpdateOne {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// SetObjectURI sets the "object_uri" field.
func (_u *ModelUpdateOne) SetObjectURI(v string) *ModelUpdateOne {
	_u.mutation.SetObjectURI(v)
	return _u
}

// SetNillableObjectURI sets the "object_uri" field if the given value is not nil.
func (_u *ModelUpdateOne) SetNillableObjectURI(v *string) *ModelUpdateOne {
	if v != nil {
		_u.SetObjectURI(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *ModelUpdateOne) SetAccuracy(v float64) *ModelUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *ModelUpdateOne) SetNillableAccuracy(v *float64) *ModelUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *ModelUpdateOne) AddAccuracy(v float64) *ModelUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// ClearAccuracy clears the value of the "accuracy" field.
func (_u *ModelUpdateOne) ClearAccuracy() *ModelUpdateOne {
	_u.mutation.ClearAccuracy()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ModelUpdateOne) SetMetadata(v map[string]interface{}) *ModelUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ModelUpdateOne) ClearMetadata() *ModelUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ModelMutation object of the builder.
func (_u *ModelUpdateOne) Mutation() *ModelMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelUpdate builder.
func (_u *ModelUpdateOne) Where(ps ...predicate.Model) *ModelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelUpdateOne) Select(field string, fields ...string) *ModelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Model entity.
func (_u *ModelUpdateOne) Save(ctx context.Context) (*Model, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelUpdateOne) SaveX(ctx context.Context) *Model {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelUpdateOne) check() error {
	if v, ok := _u.mutation.Framework(); ok {
		if err := model.FrameworkValidator(v); err != nil {
			return &ValidationError{Name: "framework", err: fmt.Errorf(`ent: validator failed for field "Model.framework": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Model.project"`)
	}
	return nil
}

func (_u *ModelUpdateOne) sqlSave(ctx context.Context) (_node *Model, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(model.Table, model.Columns, sqlgraph.NewFieldSpec(model.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Model.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, model.FieldID)
		for _, f := range fields {
			if !model.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != model.FieldID {
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
		_spec.SetField(model.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(model.FieldFramework, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ObjectURI(); ok {
		_spec.SetField(model.FieldObjectURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(model.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(model.FieldAccuracy, field.TypeFloat64, value)
	}
	if _u.mutation.AccuracyCleared() {
		_spec.ClearField(model.FieldAccuracy, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(model.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(model.FieldMetadata, field.TypeJSON)
	}
	_node = &Model{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{model.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
