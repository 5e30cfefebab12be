// internal/service/assignment_service_test.go
package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ent "github.com/ekaraca/taskshare/ent/generated"
	"github.com/ekaraca/taskshare/ent/generated/assignment"
	"github.com/ekaraca/taskshare/ent/generated/enttest"

	_ "github.com/mattn/go-sqlite3"
)

// Test helpers
func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1&_busy_timeout=10000")
	return client
}

// failingNotifier simulates an unavailable notification sink
type failingNotifier struct{}

func (failingNotifier) Notify(ctx context.Context, nc *ent.NotificationClient, recipientUsername, message string, todoID uuid.UUID) error {
	return errors.New("notification sink unavailable")
}

func TestAssignmentService_Assign(t *testing.T) {
	tests := []struct {
		name         string
		assigner     string
		assignee     string
		todoExists   bool
		setupFunc    func(t *testing.T, h *TestHelpers, svc *AssignmentService, todoID uuid.UUID)
		wantErr      bool
		expectedCode codes.Code
	}{
		{
			name:       "owner assigns to existing user",
			assigner:   "alice",
			assignee:   "bob",
			todoExists: true,
		},
		{
			name:         "todo not found",
			assigner:     "alice",
			assignee:     "bob",
			todoExists:   false,
			wantErr:      true,
			expectedCode: codes.NotFound,
		},
		{
			name:         "non-owner cannot assign",
			assigner:     "carol",
			assignee:     "bob",
			todoExists:   true,
			wantErr:      true,
			expectedCode: codes.PermissionDenied,
		},
		{
			name:         "assignee does not exist",
			assigner:     "alice",
			assignee:     "nobody",
			todoExists:   true,
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "empty assignee",
			assigner:     "alice",
			assignee:     "",
			todoExists:   true,
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "self-assignment is rejected",
			assigner:     "alice",
			assignee:     "alice",
			todoExists:   true,
			wantErr:      true,
			expectedCode: codes.InvalidArgument,
		},
		{
			name:       "pending assignment blocks a second one",
			assigner:   "alice",
			assignee:   "dave",
			todoExists: true,
			setupFunc: func(t *testing.T, h *TestHelpers, svc *AssignmentService, todoID uuid.UUID) {
				_, err := svc.Assign(context.Background(), todoID, "alice", "bob")
				require.NoError(t, err)
			},
			wantErr:      true,
			expectedCode: codes.FailedPrecondition,
		},
		{
			name:       "accepted assignment blocks a second one",
			assigner:   "alice",
			assignee:   "dave",
			todoExists: true,
			setupFunc: func(t *testing.T, h *TestHelpers, svc *AssignmentService, todoID uuid.UUID) {
				a, err := svc.Assign(context.Background(), todoID, "alice", "bob")
				require.NoError(t, err)
				date := Date(2025, time.January, 10)
				_, err = svc.Respond(context.Background(), a.ID, "bob", true, &date, "")
				require.NoError(t, err)
			},
			wantErr:      true,
			expectedCode: codes.FailedPrecondition,
		},
		{
			name:       "declined assignment does not block a new one",
			assigner:   "alice",
			assignee:   "dave",
			todoExists: true,
			setupFunc: func(t *testing.T, h *TestHelpers, svc *AssignmentService, todoID uuid.UUID) {
				a, err := svc.Assign(context.Background(), todoID, "alice", "bob")
				require.NoError(t, err)
				_, err = svc.Respond(context.Background(), a.ID, "bob", false, nil, "too busy")
				require.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestDB(t)
			defer client.Close()

			h := NewTestHelpers(t, client)
			alice := h.CreateTestUser("alice")
			h.CreateTestUser("bob")
			h.CreateTestUser("carol")
			h.CreateTestUser("dave")

			todoID := uuid.New()
			if tt.todoExists {
				todoID = h.CreateTestTodo(alice, "Water the plants").ID
			}

			svc := NewAssignmentService(client, NewEntNotifier())
			if tt.setupFunc != nil {
				tt.setupFunc(t, h, svc, todoID)
			}

			created, err := svc.Assign(context.Background(), todoID, tt.assigner, tt.assignee)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, assignment.StatusPending, created.Status)
			assert.Equal(t, tt.assigner, created.AssignerUsername)
			assert.Equal(t, tt.assignee, created.AssigneeUsername)
			assert.Equal(t, todoID, created.TodoID)
			assert.False(t, created.AssignedAt.IsZero())
			assert.Nil(t, created.RespondedAt)
			assert.Nil(t, created.TentativeCompletionDate)

			// The assignee got exactly one notification about this todo
			notifications := h.Notifications(tt.assignee)
			require.Len(t, notifications, 1)
			assert.Contains(t, notifications[0].Message, "has assigned you a new todo")
			assert.Contains(t, notifications[0].Message, "Water the plants")
			assert.Contains(t, notifications[0].Message, tt.assigner)
			assert.Equal(t, todoID, notifications[0].RelatedTodoID)
			assert.False(t, notifications[0].IsRead)
		})
	}
}

func TestAssignmentService_Assign_NonOwnerCreatesNothing(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	alice := h.CreateTestUser("alice")
	h.CreateTestUser("bob")
	h.CreateTestUser("carol")
	todo := h.CreateTestTodo(alice, "Review the contract")

	svc := NewAssignmentService(client, NewEntNotifier())

	_, err := svc.Assign(context.Background(), todo.ID, "carol", "bob")
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	count, err := client.Assignment.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, h.Notifications("bob"))
}

func TestAssignmentService_Assign_Concurrent(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	alice := h.CreateTestUser("alice")
	assignees := []string{"bob", "carol", "dave", "erin"}
	for _, username := range assignees {
		h.CreateTestUser(username)
	}
	todo := h.CreateTestTodo(alice, "Prepare the release notes")

	svc := NewAssignmentService(client, NewEntNotifier())

	// Race several assigns of the same todo; the partial unique index must
	// admit at most one active assignment no matter the interleaving.
	var wg sync.WaitGroup
	results := make([]error, len(assignees))
	for i, username := range assignees {
		wg.Add(1)
		go func(i int, username string) {
			defer wg.Done()
			_, results[i] = svc.Assign(context.Background(), todo.ID, "alice", username)
		}(i, username)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		}
	}
	assert.LessOrEqual(t, successes, 1, "concurrent assigns must never both succeed")

	active := h.ActiveAssignments(todo.ID)
	assert.Len(t, active, successes)

	// Notifications match committed assignments one-to-one
	count, err := client.Notification.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, successes, count)
}

func TestAssignmentService_Assign_NotifierFailureRollsBack(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	alice := h.CreateTestUser("alice")
	h.CreateTestUser("bob")
	todo := h.CreateTestTodo(alice, "Book the venue")

	svc := NewAssignmentService(client, failingNotifier{})

	_, err := svc.Assign(context.Background(), todo.ID, "alice", "bob")
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))

	// Strict atomicity: no assignment without its notification
	count, err := client.Assignment.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, h.Notifications("bob"))
}

func TestAssignmentService_Respond(t *testing.T) {
	tests := []struct {
		name          string
		actor         string
		accepted      bool
		tentativeDate *time.Time
		declineReason string
		setupFunc     func(t *testing.T, svc *AssignmentService, assignmentID uuid.UUID)
		wantErr       bool
		expectedCode  codes.Code
		wantStatus    assignment.Status
		wantMessage   string
	}{
		{
			name:          "assignee accepts with tentative date",
			actor:         "bob",
			accepted:      true,
			tentativeDate: timePtr(Date(2025, time.January, 10)),
			wantStatus:    assignment.StatusAccepted,
			wantMessage:   "accepted your assignment",
		},
		{
			name:          "assignee declines with reason",
			actor:         "bob",
			accepted:      false,
			declineReason: "on vacation that week",
			wantStatus:    assignment.StatusDeclined,
			wantMessage:   "declined your assignment",
		},
		{
			name:        "assignee declines without reason",
			actor:       "bob",
			accepted:    false,
			wantStatus:  assignment.StatusDeclined,
			wantMessage: "declined your assignment",
		},
		{
			name:         "third party cannot respond",
			actor:        "carol",
			accepted:     true,
			wantErr:      true,
			expectedCode: codes.PermissionDenied,
		},
		{
			name:         "assigner cannot respond to own assignment",
			actor:        "alice",
			accepted:     false,
			wantErr:      true,
			expectedCode: codes.PermissionDenied,
		},
		{
			name:     "second response is rejected",
			actor:    "bob",
			accepted: true,
			setupFunc: func(t *testing.T, svc *AssignmentService, assignmentID uuid.UUID) {
				date := Date(2025, time.January, 10)
				_, err := svc.Respond(context.Background(), assignmentID, "bob", true, &date, "")
				require.NoError(t, err)
			},
			wantErr:      true,
			expectedCode: codes.FailedPrecondition,
		},
		{
			name:     "responding after decline is rejected",
			actor:    "bob",
			accepted: true,
			setupFunc: func(t *testing.T, svc *AssignmentService, assignmentID uuid.UUID) {
				_, err := svc.Respond(context.Background(), assignmentID, "bob", false, nil, "")
				require.NoError(t, err)
			},
			wantErr:      true,
			expectedCode: codes.FailedPrecondition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestDB(t)
			defer client.Close()

			h := NewTestHelpers(t, client)
			alice := h.CreateTestUser("alice")
			h.CreateTestUser("bob")
			h.CreateTestUser("carol")
			todo := h.CreateTestTodo(alice, "Fix the fence")

			svc := NewAssignmentService(client, NewEntNotifier())
			created, err := svc.Assign(context.Background(), todo.ID, "alice", "bob")
			require.NoError(t, err)

			if tt.setupFunc != nil {
				tt.setupFunc(t, svc, created.ID)
			}

			updated, err := svc.Respond(context.Background(), created.ID, tt.actor, tt.accepted, tt.tentativeDate, tt.declineReason)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, status.Code(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, updated.Status)
			require.NotNil(t, updated.RespondedAt)

			if tt.accepted {
				require.NotNil(t, updated.TentativeCompletionDate)
				assert.True(t, tt.tentativeDate.Equal(*updated.TentativeCompletionDate))
				assert.Empty(t, updated.DeclineReason)
			} else {
				assert.Nil(t, updated.TentativeCompletionDate)
				assert.Equal(t, tt.declineReason, updated.DeclineReason)
			}

			// The assigner is told about the decision
			notifications := h.Notifications("alice")
			require.Len(t, notifications, 1)
			assert.Contains(t, notifications[0].Message, tt.wantMessage)
			assert.Contains(t, notifications[0].Message, "Fix the fence")
			assert.Equal(t, todo.ID, notifications[0].RelatedTodoID)
		})
	}
}

func TestAssignmentService_Respond_NotFound(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := NewAssignmentService(client, NewEntNotifier())

	_, err := svc.Respond(context.Background(), uuid.New(), "bob", true, nil, "")
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestAssignmentService_Complete(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	alice := h.CreateTestUser("alice")
	h.CreateTestUser("bob")
	todo := h.CreateTestTodo(alice, "Paint the shed")

	svc := NewAssignmentService(client, NewEntNotifier())
	created, err := svc.Assign(context.Background(), todo.ID, "alice", "bob")
	require.NoError(t, err)

	date := Date(2025, time.February, 1)
	_, err = svc.Respond(context.Background(), created.ID, "bob", true, &date, "")
	require.NoError(t, err)

	require.NoError(t, svc.Complete(context.Background(), todo.ID))
	h.AssertAssignmentStatus(created.ID, assignment.StatusCompleted)

	notifications := h.Notifications("alice")
	require.Len(t, notifications, 2) // acceptance + completion
	assert.Contains(t, notifications[1].Message, "completed the task")
	assert.Contains(t, notifications[1].Message, "Paint the shed")
	assert.Contains(t, notifications[1].Message, "bob")

	// A second completion finds no accepted assignment and does nothing
	require.NoError(t, svc.Complete(context.Background(), todo.ID))
	h.AssertAssignmentStatus(created.ID, assignment.StatusCompleted)
	assert.Len(t, h.Notifications("alice"), 2)
}

func TestAssignmentService_Complete_NoAcceptedAssignment(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	alice := h.CreateTestUser("alice")
	h.CreateTestUser("bob")
	todo := h.CreateTestTodo(alice, "Sort the mail")

	svc := NewAssignmentService(client, NewEntNotifier())

	// No assignment at all
	require.NoError(t, svc.Complete(context.Background(), todo.ID))
	assert.Empty(t, h.Notifications("alice"))

	// A pending assignment is not completed either
	created, err := svc.Assign(context.Background(), todo.ID, "alice", "bob")
	require.NoError(t, err)

	require.NoError(t, svc.Complete(context.Background(), todo.ID))
	h.AssertAssignmentStatus(created.ID, assignment.StatusPending)

	// Unknown todo is a no-op, not an error
	require.NoError(t, svc.Complete(context.Background(), uuid.New()))
}

func TestAssignmentService_AssignmentsFor(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	h := NewTestHelpers(t, client)
	alice := h.CreateTestUser("alice")
	h.CreateTestUser("bob")
	h.CreateTestUser("carol")

	first := h.CreateTestTodo(alice, "Mow the lawn")
	second := h.CreateTestTodo(alice, "Clean the gutters")
	third := h.CreateTestTodo(alice, "Wash the car")

	svc := NewAssignmentService(client, NewEntNotifier())

	a1, err := svc.Assign(context.Background(), first.ID, "alice", "bob")
	require.NoError(t, err)
	_, err = svc.Respond(context.Background(), a1.ID, "bob", false, nil, "no mower")
	require.NoError(t, err)

	_, err = svc.Assign(context.Background(), second.ID, "alice", "bob")
	require.NoError(t, err)

	_, err = svc.Assign(context.Background(), third.ID, "alice", "carol")
	require.NoError(t, err)

	// Declined and pending assignments both show up for bob
	assignments, err := svc.AssignmentsFor(context.Background(), "bob")
	require.NoError(t, err)
	assert.Len(t, assignments, 2)
	for _, a := range assignments {
		assert.Equal(t, "bob", a.AssigneeUsername)
	}

	// The assigner has none as assignee
	assignments, err = svc.AssignmentsFor(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
