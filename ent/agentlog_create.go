// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/modelfoundry/foundry/ent/agentlog"
	"github.com/modelfoundry/foundry/ent/project"
)

// AgentLogCreate is the builder for creating a AgentLog entity.
type AgentLogCreate struct {
	config
	mutation *AgentLogMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *AgentLogCreate) SetProjectID(v string) *AgentLogCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *AgentLogCreate) SetNillableProjectID(v *string) *AgentLogCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentLogCreate) SetAgentName(v agentlog.AgentName) *AgentLogCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *AgentLogCreate) SetMessage(v string) *AgentLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetLogLevel sets the "log_level" field.
func (_c *AgentLogCreate) SetLogLevel(v agentlog.LogLevel) *AgentLogCreate {
	_c.mutation.SetLogLevel(v)
	return _c
}

// SetNillableLogLevel sets the "log_level" field if the given value is not nil.
func (_c *AgentLogCreate) SetNillableLogLevel(v *agentlog.LogLevel) *AgentLogCreate {
	if v != nil {
		_c.SetLogLevel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentLogCreate) SetCreatedAt(v time.Time) *AgentLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentLogCreate) SetNillableCreatedAt(v *time.Time) *AgentLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentLogCreate) SetID(v string) *AgentLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *AgentLogCreate) SetProject(v *Project) *AgentLogCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the AgentLogMutation object of the builder.
func (_c *AgentLogCreate) Mutation() *AgentLogMutation {
	return _c.mutation
}

// Save creates the AgentLog in the database.
func (_c *AgentLogCreate) Save(ctx context.Context) (*AgentLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentLogCreate) SaveX(ctx context.Context) *AgentLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentLogCreate) defaults() {
	if _, ok := _c.mutation.LogLevel(); !ok {
		v := agentlog.DefaultLogLevel
		_c.mutation.SetLogLevel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentLogCreate) check() error {
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentLog.agent_name"`)}
	}
	if v, ok := _c.mutation.AgentName(); ok {
		if err := agentlog.AgentNameValidator(v); err != nil {
			return &ValidationError{Name: "agent_name", err: fmt.Errorf(`ent: validator failed for field "AgentLog.agent_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "AgentLog.message"`)}
	}
	if _, ok := _c.mutation.LogLevel(); !ok {
		return &ValidationError{Name: "log_level", err: errors.New(`ent: missing required field "AgentLog.log_level"`)}
	}
	if v, ok := _c.mutation.LogLevel(); ok {
		if err := agentlog.LogLevelValidator(v); err != nil {
			return &ValidationError{Name: "log_level", err: fmt.Errorf(`ent: validator failed for field "AgentLog.log_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentLog.created_at"`)}
	}
	return nil
}

func (_c *AgentLogCreate) sqlSave(ctx context.Context) (*AgentLog, error) {
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
			return nil, fmt.Errorf("unexpected AgentLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentLogCreate) createSpec() (*AgentLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentlog.Table, sqlgraph.NewFieldSpec(agentlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentlog.FieldAgentName, field.TypeEnum, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(agentlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.LogLevel(); ok {
		_spec.SetField(agentlog.FieldLogLevel, field.TypeEnum, value)
		_node.LogLevel = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentlog.ProjectTable,
			Columns: []string{agentlog.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentLogCreateBulk is the builder for creating many AgentLog entities in bulk.
type AgentLogCreateBulk struct {
	config
	err      error
	builders []*AgentLogCreate
}

// Save creates the AgentLog entities in the database.
func (_c *AgentLogCreateBulk) Save(ctx context.Context) ([]*AgentLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentLogMutation)
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
func (_c *AgentLogCreateBulk) SaveX(ctx context.Context) []*AgentLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
