// internal/service/todo_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	todov1 "github.com/ekaraca/taskshare/api/proto/todo/v1/generated"
	"github.com/ekaraca/taskshare/ent/generated/assignment"
)

func TestTodoService_CreateTodo(t *testing.T) {
	tests := []struct {
		name         string
		ctx          context.Context
		req          *todov1.CreateTodoRequest
		wantErr      bool
		expectedCode codes.Code
	}{
		{
			name: "valid todo",
			ctx:  AuthenticatedContext("alice"),
			req: &todov1.CreateTodoRequest{
				Description: "Buy groceries",
				TargetDate:  timestamppb.New(Date(2025, time.March, 1)),
			},
		},
		{
			name: "todo without target date",
			ctx:  AuthenticatedContext("alice"),
			req: &todov1.CreateTodoRequest{
				Description: "Call the plumber",
			},
		},
		{
			name:         "missing description",
			ctx:          AuthenticatedContext("alice"),
			req:          &todov1.CreateTodoRequest{},
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "unauthenticated",
			ctx:          context.Background(),
			req:          &todov1.CreateTodoRequest{Description: "Buy groceries"},
			wantErr:      true,
			expectedCode: codes.Unauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestDB(t)
			defer client.Close()

			h := NewTestHelpers(t, client)
			h.CreateTestUser("alice")

			assignments := NewAssignmentService(client, NewEntNotifier())
			svc := NewTodoService(client, assignments)

			resp, err := svc.CreateTodo(tt.ctx, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp.Todo)
			assert.Equal(t, "alice", resp.Todo.Username)
			assert.Equal(t, tt.req.Description, resp.Todo.Description)
			assert.False(t, resp.Todo.Done)
			if tt.req.TargetDate != nil {
				require.NotNil(t, resp.Todo.TargetDate)
				assert.Equal(t, tt.req.TargetDate.AsTime(), resp.Todo.TargetDate.AsTime())
			} else {
				assert.Nil(t, resp.Todo.TargetDate)
			}
		})
	}
}

func TestTodoService_GetTodo(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	alice := h.CreateTestUser("alice")
	h.CreateTestUser("bob")
	h.CreateTestUser("carol")
	todo := h.CreateTestTodo(alice, "Walk the dog")

	assignments := NewAssignmentService(client, NewEntNotifier())
	svc := NewTodoService(client, assignments)

	// Owner sees it
	resp, err := svc.GetTodo(AuthenticatedContext("alice"), &todov1.GetTodoRequest{Id: todo.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, todo.ID.String(), resp.Todo.Id)

	// Strangers do not
	_, err = svc.GetTodo(AuthenticatedContext("bob"), &todov1.GetTodoRequest{Id: todo.ID.String()})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	// An assignee does, even before accepting
	_, err = assignments.Assign(context.Background(), todo.ID, "alice", "bob")
	require.NoError(t, err)

	resp, err = svc.GetTodo(AuthenticatedContext("bob"), &todov1.GetTodoRequest{Id: todo.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, todo.ID.String(), resp.Todo.Id)

	// But only the assignee, not everyone
	_, err = svc.GetTodo(AuthenticatedContext("carol"), &todov1.GetTodoRequest{Id: todo.ID.String()})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	// Unknown and malformed IDs
	_, err = svc.GetTodo(AuthenticatedContext("alice"), &todov1.GetTodoRequest{Id: "00000000-0000-0000-0000-000000000000"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = svc.GetTodo(AuthenticatedContext("alice"), &todov1.GetTodoRequest{Id: "not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTodoService_ListTodos(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	alice := h.CreateTestUser("alice")
	bob := h.CreateTestUser("bob")
	h.CreateTestTodo(alice, "First")
	h.CreateTestTodo(alice, "Second")
	h.CreateTestTodo(bob, "Not alice's")

	assignments := NewAssignmentService(client, NewEntNotifier())
	svc := NewTodoService(client, assignments)

	resp, err := svc.ListTodos(AuthenticatedContext("alice"), &todov1.ListTodosRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Todos, 2)
	for _, todo := range resp.Todos {
		assert.Equal(t, "alice", todo.Username)
	}
}

func TestTodoService_UpdateTodo(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	alice := h.CreateTestUser("alice")
	h.CreateTestUser("bob")
	todo := h.CreateTestTodo(alice, "Draft the report")

	assignments := NewAssignmentService(client, NewEntNotifier())
	svc := NewTodoService(client, assignments)

	resp, err := svc.UpdateTodo(AuthenticatedContext("alice"), &todov1.UpdateTodoRequest{
		Id:          todo.ID.String(),
		Description: "Draft and send the report",
		TargetDate:  timestamppb.New(Date(2025, time.April, 15)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Draft and send the report", resp.Todo.Description)
	require.NotNil(t, resp.Todo.TargetDate)

	// Only the owner may update
	_, err = svc.UpdateTodo(AuthenticatedContext("bob"), &todov1.UpdateTodoRequest{
		Id:          todo.ID.String(),
		Description: "Hijacked",
	})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestTodoService_DeleteTodo(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	alice := h.CreateTestUser("alice")
	h.CreateTestUser("bob")
	todo := h.CreateTestTodo(alice, "Old chore")

	assignments := NewAssignmentService(client, NewEntNotifier())
	svc := NewTodoService(client, assignments)

	// Only the owner may delete
	_, err := svc.DeleteTodo(AuthenticatedContext("bob"), &todov1.DeleteTodoRequest{Id: todo.ID.String()})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = svc.DeleteTodo(AuthenticatedContext("alice"), &todov1.DeleteTodoRequest{Id: todo.ID.String()})
	require.NoError(t, err)

	_, err = svc.GetTodo(AuthenticatedContext("alice"), &todov1.GetTodoRequest{Id: todo.ID.String()})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestTodoService_MarkTodoDone(t *testing.T) {
	t.Run("owner marks done and completes the accepted assignment", func(t *testing.T) {
		client := setupTestDB(t)
		defer client.Close()

		h := NewTestHelpers(t, client)
		alice := h.CreateTestUser("alice")
		h.CreateTestUser("bob")
		todo := h.CreateTestTodo(alice, "Ship the package")

		assignments := NewAssignmentService(client, NewEntNotifier())
		svc := NewTodoService(client, assignments)

		a, err := assignments.Assign(context.Background(), todo.ID, "alice", "bob")
		require.NoError(t, err)
		date := Date(2025, time.May, 5)
		_, err = assignments.Respond(context.Background(), a.ID, "bob", true, &date, "")
		require.NoError(t, err)

		resp, err := svc.MarkTodoDone(AuthenticatedContext("alice"), &todov1.MarkTodoDoneRequest{Id: todo.ID.String()})
		require.NoError(t, err)
		assert.True(t, resp.Todo.Done)
		h.AssertAssignmentStatus(a.ID, assignment.StatusCompleted)
	})

	t.Run("accepted assignee may mark done", func(t *testing.T) {
		client := setupTestDB(t)
		defer client.Close()

		h := NewTestHelpers(t, client)
		alice := h.CreateTestUser("alice")
		h.CreateTestUser("bob")
		todo := h.CreateTestTodo(alice, "Fold the laundry")

		assignments := NewAssignmentService(client, NewEntNotifier())
		svc := NewTodoService(client, assignments)

		a, err := assignments.Assign(context.Background(), todo.ID, "alice", "bob")
		require.NoError(t, err)
		_, err = assignments.Respond(context.Background(), a.ID, "bob", true, nil, "")
		require.NoError(t, err)

		resp, err := svc.MarkTodoDone(AuthenticatedContext("bob"), &todov1.MarkTodoDoneRequest{Id: todo.ID.String()})
		require.NoError(t, err)
		assert.True(t, resp.Todo.Done)
		h.AssertAssignmentStatus(a.ID, assignment.StatusCompleted)

		// The owner is told the task was completed
		notifications := h.Notifications("alice")
		require.NotEmpty(t, notifications)
		last := notifications[len(notifications)-1]
		assert.Contains(t, last.Message, "completed the task")
	})

	t.Run("pending assignee may not mark done", func(t *testing.T) {
		client := setupTestDB(t)
		defer client.Close()

		h := NewTestHelpers(t, client)
		alice := h.CreateTestUser("alice")
		h.CreateTestUser("bob")
		todo := h.CreateTestTodo(alice, "Water the garden")

		assignments := NewAssignmentService(client, NewEntNotifier())
		svc := NewTodoService(client, assignments)

		_, err := assignments.Assign(context.Background(), todo.ID, "alice", "bob")
		require.NoError(t, err)

		_, err = svc.MarkTodoDone(AuthenticatedContext("bob"), &todov1.MarkTodoDoneRequest{Id: todo.ID.String()})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("stranger may not mark done", func(t *testing.T) {
		client := setupTestDB(t)
		defer client.Close()

		h := NewTestHelpers(t, client)
		alice := h.CreateTestUser("alice")
		h.CreateTestUser("carol")
		todo := h.CreateTestTodo(alice, "Feed the cat")

		assignments := NewAssignmentService(client, NewEntNotifier())
		svc := NewTodoService(client, assignments)

		_, err := svc.MarkTodoDone(AuthenticatedContext("carol"), &todov1.MarkTodoDoneRequest{Id: todo.ID.String()})
		require.Error(t, err)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("todo without assignment just becomes done", func(t *testing.T) {
		client := setupTestDB(t)
		defer client.Close()

		h := NewTestHelpers(t, client)
		alice := h.CreateTestUser("alice")
		todo := h.CreateTestTodo(alice, "Take out the trash")

		assignments := NewAssignmentService(client, NewEntNotifier())
		svc := NewTodoService(client, assignments)

		resp, err := svc.MarkTodoDone(AuthenticatedContext("alice"), &todov1.MarkTodoDoneRequest{Id: todo.ID.String()})
		require.NoError(t, err)
		assert.True(t, resp.Todo.Done)
		assert.Empty(t, h.Notifications("alice"))
	})
}
