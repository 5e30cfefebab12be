// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ekaraca/taskshare/ent/generated/assignment"
	"github.com/ekaraca/taskshare/ent/generated/todo"
	"github.com/google/uuid"
)

// AssignmentCreate is the builder for creating a Assignment entity.
type AssignmentCreate struct {
	config
	mutation *AssignmentMutation
	hooks    []Hook
}

// SetTodoID sets the "todo_id" field.
func (_c *AssignmentCreate) SetTodoID(v uuid.UUID) *AssignmentCreate {
	_c.mutation.SetTodoID(v)
	return _c
}

// SetAssignerUsername sets the "assigner_username" field.
func (_c *AssignmentCreate) SetAssignerUsername(v string) *AssignmentCreate {
	_c.mutation.SetAssignerUsername(v)
	return _c
}

// SetAssigneeUsername sets the "assignee_username" field.
func (_c *AssignmentCreate) SetAssigneeUsername(v string) *AssignmentCreate {
	_c.mutation.SetAssigneeUsername(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AssignmentCreate) SetStatus(v assignment.Status) *AssignmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableStatus(v *assignment.Status) *AssignmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTentativeCompletionDate sets the "tentative_completion_date" field.
func (_c *AssignmentCreate) SetTentativeCompletionDate(v time.Time) *AssignmentCreate {
	_c.mutation.SetTentativeCompletionDate(v)
	return _c
}

// SetNillableTentativeCompletionDate sets the "tentative_completion_date" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableTentativeCompletionDate(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetTentativeCompletionDate(*v)
	}
	return _c
}

// SetDeclineReason sets the "decline_reason" field.
func (_c *AssignmentCreate) SetDeclineReason(v string) *AssignmentCreate {
	_c.mutation.SetDeclineReason(v)
	return _c
}

// SetNillableDeclineReason sets the "decline_reason" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableDeclineReason(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetDeclineReason(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *AssignmentCreate) SetAssignedAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableAssignedAt(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *AssignmentCreate) SetRespondedAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableRespondedAt(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssignmentCreate) SetID(v uuid.UUID) *AssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableID(v *uuid.UUID) *AssignmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTodo sets the "todo" edge to the Todo entity.
func (_c *AssignmentCreate) SetTodo(v *Todo) *AssignmentCreate {
	return _c.SetTodoID(v.ID)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_c *AssignmentCreate) Mutation() *AssignmentMutation {
	return _c.mutation
}

// Save creates the Assignment in the database.
func (_c *AssignmentCreate) Save(ctx context.Context) (*Assignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentCreate) SaveX(ctx context.Context) *Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := assignment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AssignedAt(); !ok {
		v := assignment.DefaultAssignedAt()
		_c.mutation.SetAssignedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := assignment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentCreate) check() error {
	if _, ok := _c.mutation.TodoID(); !ok {
		return &ValidationError{Name: "todo_id", err: errors.New(`generated: missing required field "Assignment.todo_id"`)}
	}
	if _, ok := _c.mutation.AssignerUsername(); !ok {
		return &ValidationError{Name: "assigner_username", err: errors.New(`generated: missing required field "Assignment.assigner_username"`)}
	}
	if v, ok := _c.mutation.AssignerUsername(); ok {
		if err := assignment.AssignerUsernameValidator(v); err != nil {
			return &ValidationError{Name: "assigner_username", err: fmt.Errorf(`generated: validator failed for field "Assignment.assigner_username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssigneeUsername(); !ok {
		return &ValidationError{Name: "assignee_username", err: errors.New(`generated: missing required field "Assignment.assignee_username"`)}
	}
	if v, ok := _c.mutation.AssigneeUsername(); ok {
		if err := assignment.AssigneeUsernameValidator(v); err != nil {
			return &ValidationError{Name: "assignee_username", err: fmt.Errorf(`generated: validator failed for field "Assignment.assignee_username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "Assignment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := assignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Assignment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignedAt(); !ok {
		return &ValidationError{Name: "assigned_at", err: errors.New(`generated: missing required field "Assignment.assigned_at"`)}
	}
	if len(_c.mutation.TodoIDs()) == 0 {
		return &ValidationError{Name: "todo", err: errors.New(`generated: missing required edge "Assignment.todo"`)}
	}
	return nil
}

func (_c *AssignmentCreate) sqlSave(ctx context.Context) (*Assignment, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssignmentCreate) createSpec() (*Assignment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignment.Table, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.AssignerUsername(); ok {
		_spec.SetField(assignment.FieldAssignerUsername, field.TypeString, value)
		_node.AssignerUsername = value
	}
	if value, ok := _c.mutation.AssigneeUsername(); ok {
		_spec.SetField(assignment.FieldAssigneeUsername, field.TypeString, value)
		_node.AssigneeUsername = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(assignment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TentativeCompletionDate(); ok {
		_spec.SetField(assignment.FieldTentativeCompletionDate, field.TypeTime, value)
		_node.TentativeCompletionDate = &value
	}
	if value, ok := _c.mutation.DeclineReason(); ok {
		_spec.SetField(assignment.FieldDeclineReason, field.TypeString, value)
		_node.DeclineReason = value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(assignment.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(assignment.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	if nodes := _c.mutation.TodoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.TodoTable,
			Columns: []string{assignment.TodoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(todo.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TodoID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssignmentCreateBulk is the builder for creating many Assignment entities in bulk.
type AssignmentCreateBulk struct {
	config
	err      error
	builders []*AssignmentCreate
}

// Save creates the Assignment entities in the database.
func (_c *AssignmentCreateBulk) Save(ctx context.Context) ([]*Assignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentMutation)
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
func (_c *AssignmentCreateBulk) SaveX(ctx context.Context) []*Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
