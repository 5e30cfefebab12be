// internal/service/todo_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	todov1 "github.com/ekaraca/taskshare/api/proto/todo/v1/generated"
	ent "github.com/ekaraca/taskshare/ent/generated"
	"github.com/ekaraca/taskshare/ent/generated/assignment"
	"github.com/ekaraca/taskshare/internal/middleware"
	"github.com/ekaraca/taskshare/internal/repository"
)

// TodoService manages todos. Marking a todo done is the trigger that
// completes its accepted assignment.
type TodoService struct {
	todov1.UnimplementedTodoServiceServer
	client      *ent.Client
	repo        *repository.EntTodoRepository
	assignments *AssignmentService
}

func NewTodoService(client *ent.Client, assignments *AssignmentService) *TodoService {
	return &TodoService{
		client:      client,
		repo:        repository.NewEntTodoRepository(client),
		assignments: assignments,
	}
}

// CreateTodo creates a new todo owned by the authenticated user
func (s *TodoService) CreateTodo(ctx context.Context, req *todov1.CreateTodoRequest) (*todov1.CreateTodoResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	if req.Description == "" {
		return nil, status.Error(codes.InvalidArgument, "description is required")
	}

	input := &repository.TodoInput{
		Username:    username,
		Description: req.Description,
	}
	if req.TargetDate != nil {
		targetDate := req.TargetDate.AsTime()
		input.TargetDate = &targetDate
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create todo: %v", err)
	}

	return &todov1.CreateTodoResponse{
		Todo: convertTodoToProto(created),
	}, nil
}

// GetTodo retrieves a todo visible to the authenticated user
func (s *TodoService) GetTodo(ctx context.Context, req *todov1.GetTodoRequest) (*todov1.GetTodoResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	t, err := s.getAuthorized(ctx, req.Id, username)
	if err != nil {
		return nil, err
	}

	return &todov1.GetTodoResponse{
		Todo: convertTodoToProto(t),
	}, nil
}

// ListTodos retrieves the authenticated user's todos, newest first
func (s *TodoService) ListTodos(ctx context.Context, req *todov1.ListTodosRequest) (*todov1.ListTodosResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	todos, err := s.repo.ListByOwner(ctx, username)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list todos: %v", err)
	}

	protoTodos := make([]*todov1.Todo, len(todos))
	for i, t := range todos {
		protoTodos[i] = convertTodoToProto(t)
	}

	return &todov1.ListTodosResponse{
		Todos: protoTodos,
	}, nil
}

// UpdateTodo updates a todo owned by the authenticated user
func (s *TodoService) UpdateTodo(ctx context.Context, req *todov1.UpdateTodoRequest) (*todov1.UpdateTodoResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	t, err := s.getOwned(ctx, req.Id, username)
	if err != nil {
		return nil, err
	}

	input := &repository.TodoUpdateInput{}
	if req.Description != "" {
		input.Description = &req.Description
	}
	if req.TargetDate != nil {
		targetDate := req.TargetDate.AsTime()
		input.TargetDate = &targetDate
	}

	updated, err := s.repo.Update(ctx, t.ID, input)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to update todo: %v", err)
	}

	return &todov1.UpdateTodoResponse{
		Todo: convertTodoToProto(updated),
	}, nil
}

// DeleteTodo deletes a todo owned by the authenticated user
func (s *TodoService) DeleteTodo(ctx context.Context, req *todov1.DeleteTodoRequest) (*emptypb.Empty, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	t, err := s.getOwned(ctx, req.Id, username)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, t.ID); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to delete todo: %v", err)
	}

	return &emptypb.Empty{}, nil
}

// MarkTodoDone marks a todo as done and completes its accepted assignment,
// if it has one. Allowed for the owner and for an assignee who accepted.
func (s *TodoService) MarkTodoDone(ctx context.Context, req *todov1.MarkTodoDoneRequest) (*todov1.MarkTodoDoneResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	t, err := s.getTodo(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	if t.Username != username {
		accepted, err := s.acceptedByAssignee(ctx, t.ID, username)
		if err != nil {
			return nil, err
		}
		if !accepted {
			return nil, status.Error(codes.PermissionDenied, "not authorized to mark this todo done")
		}
	}

	updated, err := s.markDone(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	// Completing the assignment is its own unit of work; a todo without an
	// accepted assignment completes nothing.
	if err := s.assignments.Complete(ctx, t.ID); err != nil {
		return nil, err
	}

	return &todov1.MarkTodoDoneResponse{
		Todo: convertTodoToProto(updated),
	}, nil
}

// MarkDone marks the todo done and completes its accepted assignment.
// Exposed for callers inside the process; authorization is the gRPC
// handler's concern.
func (s *TodoService) MarkDone(ctx context.Context, todoID uuid.UUID) (*ent.Todo, error) {
	updated, err := s.markDone(ctx, todoID)
	if err != nil {
		return nil, err
	}

	if err := s.assignments.Complete(ctx, todoID); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *TodoService) markDone(ctx context.Context, todoID uuid.UUID) (*ent.Todo, error) {
	done := true
	updated, err := s.repo.Update(ctx, todoID, &repository.TodoUpdateInput{Done: &done})
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "todo not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update todo: %v", err)
	}
	return updated, nil
}

func (s *TodoService) acceptedByAssignee(ctx context.Context, todoID uuid.UUID, username string) (bool, error) {
	accepted, err := s.client.Assignment.Query().
		Where(
			assignment.TodoIDEQ(todoID),
			assignment.AssigneeUsernameEQ(username),
			assignment.StatusEQ(assignment.StatusAccepted),
		).
		Exist(ctx)
	if err != nil {
		return false, status.Errorf(codes.Internal, "failed to check assignment: %v", err)
	}
	return accepted, nil
}

func (s *TodoService) getTodo(ctx context.Context, id string) (*ent.Todo, error) {
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	todoID, err := uuid.Parse(id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid todo ID format")
	}

	t, err := s.repo.GetByID(ctx, todoID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "todo not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get todo: %v", err)
	}
	return t, nil
}

func (s *TodoService) getOwned(ctx context.Context, id, username string) (*ent.Todo, error) {
	t, err := s.getTodo(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Username != username {
		return nil, status.Error(codes.PermissionDenied, "not the owner of this todo")
	}
	return t, nil
}

func (s *TodoService) getAuthorized(ctx context.Context, id, username string) (*ent.Todo, error) {
	t, err := s.getTodo(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Username == username {
		return t, nil
	}

	// Assignees may view todos delegated to them
	delegated, err := s.client.Assignment.Query().
		Where(
			assignment.TodoIDEQ(t.ID),
			assignment.AssigneeUsernameEQ(username),
		).
		Exist(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to check assignment: %v", err)
	}
	if !delegated {
		return nil, status.Error(codes.PermissionDenied, "not authorized to view this todo")
	}
	return t, nil
}

// Helper functions

func convertTodoToProto(t *ent.Todo) *todov1.Todo {
	proto := &todov1.Todo{
		Id:          t.ID.String(),
		Username:    t.Username,
		Description: t.Description,
		Done:        t.Done,
		CreatedAt:   timestamppb.New(t.CreatedAt),
		UpdatedAt:   timestamppb.New(t.UpdatedAt),
	}

	if t.TargetDate != nil {
		proto.TargetDate = timestamppb.New(*t.TargetDate)
	}

	return proto
}
