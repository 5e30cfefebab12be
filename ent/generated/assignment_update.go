// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ekaraca/taskshare/ent/generated/assignment"
	"github.com/ekaraca/taskshare/ent/generated/predicate"
)

// AssignmentUpdate is the builder for updating Assignment entities.
type AssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentMutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdate) Where(ps ...predicate.Assignment) *AssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssignmentUpdate) SetStatus(v assignment.Status) *AssignmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableStatus(v *assignment.Status) *AssignmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTentativeCompletionDate sets the "tentative_completion_date" field.
func (_u *AssignmentUpdate) SetTentativeCompletionDate(v time.Time) *AssignmentUpdate {
	_u.mutation.SetTentativeCompletionDate(v)
	return _u
}

// SetNillableTentativeCompletionDate sets the "tentative_completion_date" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableTentativeCompletionDate(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetTentativeCompletionDate(*v)
	}
	return _u
}

// ClearTentativeCompletionDate clears the value of the "tentative_completion_date" field.
func (_u *AssignmentUpdate) ClearTentativeCompletionDate() *AssignmentUpdate {
	_u.mutation.ClearTentativeCompletionDate()
	return _u
}

// SetDeclineReason sets the "decline_reason" field.
func (_u *AssignmentUpdate) SetDeclineReason(v string) *AssignmentUpdate {
	_u.mutation.SetDeclineReason(v)
	return _u
}

// SetNillableDeclineReason sets the "decline_reason" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableDeclineReason(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetDeclineReason(*v)
	}
	return _u
}

// ClearDeclineReason clears the value of the "decline_reason" field.
func (_u *AssignmentUpdate) ClearDeclineReason() *AssignmentUpdate {
	_u.mutation.ClearDeclineReason()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *AssignmentUpdate) SetRespondedAt(v time.Time) *AssignmentUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableRespondedAt(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *AssignmentUpdate) ClearRespondedAt() *AssignmentUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdate) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Assignment.status": %w`, err)}
		}
	}
	if _u.mutation.TodoCleared() && len(_u.mutation.TodoIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Assignment.todo"`)
	}
	return nil
}

func (_u *AssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TentativeCompletionDate(); ok {
		_spec.SetField(assignment.FieldTentativeCompletionDate, field.TypeTime, value)
	}
	if _u.mutation.TentativeCompletionDateCleared() {
		_spec.ClearField(assignment.FieldTentativeCompletionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DeclineReason(); ok {
		_spec.SetField(assignment.FieldDeclineReason, field.TypeString, value)
	}
	if _u.mutation.DeclineReasonCleared() {
		_spec.ClearField(assignment.FieldDeclineReason, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(assignment.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(assignment.FieldRespondedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentUpdateOne is the builder for updating a single Assignment entity.
type AssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentMutation
}

// SetStatus sets the "status" field.
func (_u *AssignmentUpdateOne) SetStatus(v assignment.Status) *AssignmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableStatus(v *assignment.Status) *AssignmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTentativeCompletionDate sets the "tentative_completion_date" field.
func (_u *AssignmentUpdateOne) SetTentativeCompletionDate(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetTentativeCompletionDate(v)
	return _u
}

// SetNillableTentativeCompletionDate sets the "tentative_completion_date" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableTentativeCompletionDate(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetTentativeCompletionDate(*v)
	}
	return _u
}

// ClearTentativeCompletionDate clears the value of the "tentative_completion_date" field.
func (_u *AssignmentUpdateOne) ClearTentativeCompletionDate() *AssignmentUpdateOne {
	_u.mutation.ClearTentativeCompletionDate()
	return _u
}

// SetDeclineReason sets the "decline_reason" field.
func (_u *AssignmentUpdateOne) SetDeclineReason(v string) *AssignmentUpdateOne {
	_u.mutation.SetDeclineReason(v)
	return _u
}

// SetNillableDeclineReason sets the "decline_reason" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableDeclineReason(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetDeclineReason(*v)
	}
	return _u
}

// ClearDeclineReason clears the value of the "decline_reason" field.
func (_u *AssignmentUpdateOne) ClearDeclineReason() *AssignmentUpdateOne {
	_u.mutation.ClearDeclineReason()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *AssignmentUpdateOne) SetRespondedAt(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableRespondedAt(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *AssignmentUpdateOne) ClearRespondedAt() *AssignmentUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdateOne) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdateOne) Where(ps ...predicate.Assignment) *AssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentUpdateOne) Select(field string, fields ...string) *AssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assignment entity.
func (_u *AssignmentUpdateOne) Save(ctx context.Context) (*Assignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdateOne) SaveX(ctx context.Context) *Assignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Assignment.status": %w`, err)}
		}
	}
	if _u.mutation.TodoCleared() && len(_u.mutation.TodoIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Assignment.todo"`)
	}
	return nil
}

func (_u *AssignmentUpdateOne) sqlSave(ctx context.Context) (_node *Assignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Assignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignment.FieldID)
		for _, f := range fields {
			if !assignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != assignment.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TentativeCompletionDate(); ok {
		_spec.SetField(assignment.FieldTentativeCompletionDate, field.TypeTime, value)
	}
	if _u.mutation.TentativeCompletionDateCleared() {
		_spec.ClearField(assignment.FieldTentativeCompletionDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DeclineReason(); ok {
		_spec.SetField(assignment.FieldDeclineReason, field.TypeString, value)
	}
	if _u.mutation.DeclineReasonCleared() {
		_spec.ClearField(assignment.FieldDeclineReason, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(assignment.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(assignment.FieldRespondedAt, field.TypeTime)
	}
	_node = &Assignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
