// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the assignment type in the database.
	Label = "assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTodoID holds the string denoting the todo_id field in the database.
	FieldTodoID = "todo_id"
	// FieldAssignerUsername holds the string denoting the assigner_username field in the database.
	FieldAssignerUsername = "assigner_username"
	// FieldAssigneeUsername holds the string denoting the assignee_username field in the database.
	FieldAssigneeUsername = "assignee_username"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTentativeCompletionDate holds the string denoting the tentative_completion_date field in the database.
	FieldTentativeCompletionDate = "tentative_completion_date"
	// FieldDeclineReason holds the string denoting the decline_reason field in the database.
	FieldDeclineReason = "decline_reason"
	// FieldAssignedAt holds the string denoting the assigned_at field in the database.
	FieldAssignedAt = "assigned_at"
	// FieldRespondedAt holds the string denoting the responded_at field in the database.
	FieldRespondedAt = "responded_at"
	// EdgeTodo holds the string denoting the todo edge name in mutations.
	EdgeTodo = "todo"
	// Table holds the table name of the assignment in the database.
	Table = "assignments"
	// TodoTable is the table that holds the todo relation/edge.
	TodoTable = "assignments"
	// TodoInverseTable is the table name for the Todo entity.
	// It exists in this package in order to avoid circular dependency with the "todo" package.
	TodoInverseTable = "todos"
	// TodoColumn is the table column denoting the todo relation/edge.
	TodoColumn = "todo_id"
)

// Columns holds all SQL columns for assignment fields.
var Columns = []string{
	FieldID,
	FieldTodoID,
	FieldAssignerUsername,
	FieldAssigneeUsername,
	FieldStatus,
	FieldTentativeCompletionDate,
	FieldDeclineReason,
	FieldAssignedAt,
	FieldRespondedAt,
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
	// AssignerUsernameValidator is a validator for the "assigner_username" field. It is called by the builders before save.
	AssignerUsernameValidator func(string) error
	// AssigneeUsernameValidator is a validator for the "assignee_username" field. It is called by the builders before save.
	AssigneeUsernameValidator func(string) error
	// DefaultAssignedAt holds the default value on creation for the "assigned_at" field.
	DefaultAssignedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("assignment: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Assignment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTodoID orders the results by the todo_id field.
func ByTodoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTodoID, opts...).ToFunc()
}

// ByAssignerUsername orders the results by the assigner_username field.
func ByAssignerUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignerUsername, opts...).ToFunc()
}

// ByAssigneeUsername orders the results by the assignee_username field.
func ByAssigneeUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeUsername, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTentativeCompletionDate orders the results by the tentative_completion_date field.
func ByTentativeCompletionDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTentativeCompletionDate, opts...).ToFunc()
}

// ByDeclineReason orders the results by the decline_reason field.
func ByDeclineReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeclineReason, opts...).ToFunc()
}

// ByAssignedAt orders the results by the assigned_at field.
func ByAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAt, opts...).ToFunc()
}

// ByRespondedAt orders the results by the responded_at field.
func ByRespondedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedAt, opts...).ToFunc()
}

// ByTodoField orders the results by todo field.
func ByTodoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTodoStep(), sql.OrderByField(field, opts...))
	}
}
func newTodoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TodoInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TodoTable, TodoColumn),
	)
}
