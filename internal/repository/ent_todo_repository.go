// internal/repository/ent_todo_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/ekaraca/taskshare/ent/generated"
	"github.com/ekaraca/taskshare/ent/generated/todo"
	"github.com/ekaraca/taskshare/ent/generated/user"
)

type EntTodoRepository struct {
	client *ent.Client
}

func NewEntTodoRepository(client *ent.Client) *EntTodoRepository {
	return &EntTodoRepository{
		client: client,
	}
}

func (r *EntTodoRepository) Create(ctx context.Context, input *TodoInput) (*ent.Todo, error) {
	owner, err := r.client.User.
		Query().
		Where(user.UsernameEQ(input.Username)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve owner %s: %w", input.Username, err)
	}

	return r.client.Todo.
		Create().
		SetUsername(input.Username).
		SetDescription(input.Description).
		SetNillableTargetDate(input.TargetDate).
		SetOwner(owner).
		Save(ctx)
}

func (r *EntTodoRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Todo, error) {
	return r.client.Todo.
		Query().
		Where(todo.ID(id)).
		Only(ctx)
}

// ListByOwner returns the user's todos, newest first.
func (r *EntTodoRepository) ListByOwner(ctx context.Context, username string) ([]*ent.Todo, error) {
	todos, err := r.client.Todo.
		Query().
		Where(todo.UsernameEQ(username)).
		Order(ent.Desc(todo.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query todos for %s: %w", username, err)
	}
	return todos, nil
}

func (r *EntTodoRepository) Update(ctx context.Context, id uuid.UUID, input *TodoUpdateInput) (*ent.Todo, error) {
	update := r.client.Todo.UpdateOneID(id)

	if input.Description != nil {
		update = update.SetDescription(*input.Description)
	}
	if input.TargetDate != nil {
		update = update.SetTargetDate(*input.TargetDate)
	}
	if input.Done != nil {
		update = update.SetDone(*input.Done)
	}

	return update.Save(ctx)
}

func (r *EntTodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Todo.
		DeleteOneID(id).
		Exec(ctx)
}

// Types for repository input
type TodoInput struct {
	Username    string
	Description string
	TargetDate  *time.Time
}

type TodoUpdateInput struct {
	Description *string
	TargetDate  *time.Time
	Done        *bool
}
