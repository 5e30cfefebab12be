// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ekaraca/taskshare/ent/generated/assignment"
	"github.com/ekaraca/taskshare/ent/generated/todo"
	"github.com/google/uuid"
)

// Assignment is the model entity for the Assignment schema.
type Assignment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// The delegated todo
	TodoID uuid.UUID `json:"todo_id,omitempty"`
	// Username of the todo owner who delegated it
	AssignerUsername string `json:"assigner_username,omitempty"`
	// Username of the delegate
	AssigneeUsername string `json:"assignee_username,omitempty"`
	// Current state of the delegation
	Status assignment.Status `json:"status,omitempty"`
	// Date the assignee committed to on acceptance
	TentativeCompletionDate *time.Time `json:"tentative_completion_date,omitempty"`
	// Free-text reason supplied on decline
	DeclineReason string `json:"decline_reason,omitempty"`
	// When the assignment was created
	AssignedAt time.Time `json:"assigned_at,omitempty"`
	// When the assignee first accepted or declined
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssignmentQuery when eager-loading is set.
	Edges        AssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssignmentEdges holds the relations/edges for other nodes in the graph.
type AssignmentEdges struct {
	// Todo holds the value of the todo edge.
	Todo *Todo `json:"todo,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TodoOrErr returns the Todo value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssignmentEdges) TodoOrErr() (*Todo, error) {
	if e.Todo != nil {
		return e.Todo, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: todo.Label}
	}
	return nil, &NotLoadedError{edge: "todo"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assignment.FieldAssignerUsername, assignment.FieldAssigneeUsername, assignment.FieldStatus, assignment.FieldDeclineReason:
			values[i] = new(sql.NullString)
		case assignment.FieldTentativeCompletionDate, assignment.FieldAssignedAt, assignment.FieldRespondedAt:
			values[i] = new(sql.NullTime)
		case assignment.FieldID, assignment.FieldTodoID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assignment fields.
func (_m *Assignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assignment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case assignment.FieldTodoID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field todo_id", values[i])
			} else if value != nil {
				_m.TodoID = *value
			}
		case assignment.FieldAssignerUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigner_username", values[i])
			} else if value.Valid {
				_m.AssignerUsername = value.String
			}
		case assignment.FieldAssigneeUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee_username", values[i])
			} else if value.Valid {
				_m.AssigneeUsername = value.String
			}
		case assignment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = assignment.Status(value.String)
			}
		case assignment.FieldTentativeCompletionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field tentative_completion_date", values[i])
			} else if value.Valid {
				_m.TentativeCompletionDate = new(time.Time)
				*_m.TentativeCompletionDate = value.Time
			}
		case assignment.FieldDeclineReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decline_reason", values[i])
			} else if value.Valid {
				_m.DeclineReason = value.String
			}
		case assignment.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				_m.AssignedAt = value.Time
			}
		case assignment.FieldRespondedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field responded_at", values[i])
			} else if value.Valid {
				_m.RespondedAt = new(time.Time)
				*_m.RespondedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Assignment.
// This includes values selected through modifiers, order, etc.
func (_m *Assignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTodo queries the "todo" edge of the Assignment entity.
func (_m *Assignment) QueryTodo() *TodoQuery {
	return NewAssignmentClient(_m.config).QueryTodo(_m)
}

// Update returns a builder for updating this Assignment.
// Note that you need to call Assignment.Unwrap() before calling this method if this Assignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Assignment) Update() *AssignmentUpdateOne {
	return NewAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Assignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Assignment) Unwrap() *Assignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: Assignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Assignment) String() string {
	var builder strings.Builder
	builder.WriteString("Assignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("todo_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TodoID))
	builder.WriteString(", ")
	builder.WriteString("assigner_username=")
	builder.WriteString(_m.AssignerUsername)
	builder.WriteString(", ")
	builder.WriteString("assignee_username=")
	builder.WriteString(_m.AssigneeUsername)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.TentativeCompletionDate; v != nil {
		builder.WriteString("tentative_completion_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("decline_reason=")
	builder.WriteString(_m.DeclineReason)
	builder.WriteString(", ")
	builder.WriteString("assigned_at=")
	builder.WriteString(_m.AssignedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RespondedAt; v != nil {
		builder.WriteString("responded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Assignments is a parsable slice of Assignment.
type Assignments []*Assignment
