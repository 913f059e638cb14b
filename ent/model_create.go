// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/modelfoundry/foundry/ent/model"
	"github.com/modelfoundry/foundry/ent/project"
)

// ModelCreate is the builder for creating a Model entity.
type ModelCreate struct {
	config
	mutation *ModelMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ModelCreate) SetProjectID(v string) *ModelCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ModelCreate) SetName(v string) *ModelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFramework sets the "framework" field.
func (_c *ModelCreate) SetFramework(v model.Framework) *ModelCreate {
	_c.mutation.SetFramework(v)
	return _c
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_c *ModelCreate) SetNillableFramework(v *model.Framework) *ModelCreate {
	if v != nil {
		_c.SetFramework(*v)
	}
	return _c
}

// SetObjectURI sets the "object_uri" field.
func (_c *ModelCreate) SetObjectURI(v string) *ModelCreate {
	_c.mutation.SetObjectURI(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *ModelCreate) SetAccuracy(v float64) *ModelCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *ModelCreate) SetNillableAccuracy(v *float64) *ModelCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ModelCreate) SetMetadata(v map[string]interface{}) *ModelCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelCreate) SetCreatedAt(v time.Time) *ModelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelCreate) SetNillableCreatedAt(v *time.Time) *ModelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelCreate) SetID(v string) *ModelCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ModelCreate) SetProject(v *Project) *ModelCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ModelMutation object of the builder.
func (_c *ModelCreate) Mutation() *ModelMutation {
	return _c.mutation
}

// Save creates the Model in the database.
func (_c *ModelCreate) Save(ctx context.Context) (*Model, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelCreate) SaveX(ctx context.Context) *Model {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelCreate) defaults() {
	if _, ok := _c.mutation.Framework(); !ok {
		v := model.DefaultFramework
		_c.mutation.SetFramework(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := model.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Model.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Model.name"`)}
	}
	if _, ok := _c.mutation.Framework(); !ok {
		return &ValidationError{Name: "framework", err: errors.New(`ent: missing required field "Model.framework"`)}
	}
	if v, ok := _c.mutation.Framework(); ok {
		if err := model.FrameworkValidator(v); err != nil {
			return &ValidationError{Name: "framework", err: fmt.Errorf(`ent: validator failed for field "Model.framework": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectURI(); !ok {
		return &ValidationError{Name: "object_uri", err: errors.New(`ent: missing required field "Model.object_uri"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Model.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Model.project"`)}
	}
	return nil
}

func (_c *ModelCreate) sqlSave(ctx context.Context) (*Model, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Model.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelCreate) createSpec() (*Model, *sqlgraph.CreateSpec) {
	var (
		_node = &Model{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(model.Table, sqlgraph.NewFieldSpec(model.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(model.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Framework(); ok {
		_spec.SetField(model.FieldFramework, field.TypeEnum, value)
		_node.Framework = value
	}
	if value, ok := _c.mutation.ObjectURI(); ok {
		_spec.SetField(model.FieldObjectURI, field.TypeString, value)
		_node.ObjectURI = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(model.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(model.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(model.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   model.ProjectTable,
			Columns: []string{model.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ModelCreateBulk is the builder for creating many Model entities in bulk.
type ModelCreateBulk struct {
	config
	err      error
	builders []*ModelCreate
}

// Save creates the Model entities in the database.
func (_c *ModelCreateBulk) Save(ctx context.Context) ([]*Model, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Model, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ModelCreateBulk) SaveX(ctx context.Context) []*Model {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
