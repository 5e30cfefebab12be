// internal/repository/ent_assignment_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/ekaraca/taskshare/ent/generated"
	"github.com/ekaraca/taskshare/ent/generated/assignment"
)

// EntAssignmentRepository reads assignments. All writes go through the
// workflow engine's transaction so the state machine stays authoritative.
type EntAssignmentRepository struct {
	client *ent.Client
}

func NewEntAssignmentRepository(client *ent.Client) *EntAssignmentRepository {
	return &EntAssignmentRepository{
		client: client,
	}
}

func (r *EntAssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Assignment, error) {
	return r.client.Assignment.
		Query().
		Where(assignment.ID(id)).
		Only(ctx)
}

func (r *EntAssignmentRepository) GetByIDWithTodo(ctx context.Context, id uuid.UUID) (*ent.Assignment, error) {
	return r.client.Assignment.
		Query().
		Where(assignment.ID(id)).
		WithTodo().
		Only(ctx)
}

// ByTodo returns every assignment of a todo, in any status.
func (r *EntAssignmentRepository) ByTodo(ctx context.Context, todoID uuid.UUID) ([]*ent.Assignment, error) {
	assignments, err := r.client.Assignment.
		Query().
		Where(assignment.TodoIDEQ(todoID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assignments for todo %s: %w", todoID, err)
	}
	return assignments, nil
}

// ActiveByTodo returns the pending or accepted assignment of a todo, if any.
// The partial unique index guarantees there is at most one.
func (r *EntAssignmentRepository) ActiveByTodo(ctx context.Context, todoID uuid.UUID) (*ent.Assignment, error) {
	return r.client.Assignment.
		Query().
		Where(
			assignment.TodoIDEQ(todoID),
			assignment.StatusIn(assignment.StatusPending, assignment.StatusAccepted),
		).
		Only(ctx)
}

// ByAssignee returns assignments delegated to the user, in any status.
// No ordering guarantee; callers needing recency must sort explicitly.
func (r *EntAssignmentRepository) ByAssignee(ctx context.Context, username string) ([]*ent.Assignment, error) {
	assignments, err := r.client.Assignment.
		Query().
		Where(assignment.AssigneeUsernameEQ(username)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assignments for assignee %s: %w", username, err)
	}
	return assignments, nil
}

// ByAssigner returns assignments the user delegated to others, in any status.
func (r *EntAssignmentRepository) ByAssigner(ctx context.Context, username string) ([]*ent.Assignment, error) {
	assignments, err := r.client.Assignment.
		Query().
		Where(assignment.AssignerUsernameEQ(username)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assignments for assigner %s: %w", username, err)
	}
	return assignments, nil
}
