// internal/service/test_helpers.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	ent "github.com/ekaraca/taskshare/ent/generated"
	"github.com/ekaraca/taskshare/ent/generated/assignment"
	"github.com/ekaraca/taskshare/ent/generated/notification"
	"github.com/ekaraca/taskshare/pkg/auth"
)

// TestHelpers provides common test utilities
type TestHelpers struct {
	t               *testing.T
	client          *ent.Client
	passwordManager *auth.PasswordManager
}

// NewTestHelpers creates a new test helper instance
func NewTestHelpers(t *testing.T, client *ent.Client) *TestHelpers {
	return &TestHelpers{
		t:               t,
		client:          client,
		passwordManager: auth.NewPasswordManager(),
	}
}

// CreateTestUser creates a user without going through password hashing.
// Tests that exercise login use CreateTestUserWithPassword instead.
func (h *TestHelpers) CreateTestUser(username string) *ent.User {
	u, err := h.client.User.Create().
		SetUsername(username).
		SetEmail(username + "@example.com").
		SetPasswordHash("not-a-real-hash").
		SetFirstName("Test").
		SetLastName("User").
		SetIsActive(true).
		Save(context.Background())
	require.NoError(h.t, err)

	return u
}

// CreateTestUserWithPassword creates a user with a real bcrypt hash
func (h *TestHelpers) CreateTestUserWithPassword(username, password string) *ent.User {
	hashedPassword, err := h.passwordManager.HashPassword(password)
	require.NoError(h.t, err)

	u, err := h.client.User.Create().
		SetUsername(username).
		SetEmail(username + "@example.com").
		SetPasswordHash(hashedPassword).
		SetFirstName("Test").
		SetLastName("User").
		SetIsActive(true).
		Save(context.Background())
	require.NoError(h.t, err)

	return u
}

// CreateTestTodo creates a todo owned by an existing user
func (h *TestHelpers) CreateTestTodo(owner *ent.User, description string) *ent.Todo {
	todo, err := h.client.Todo.Create().
		SetUsername(owner.Username).
		SetDescription(description).
		SetOwner(owner).
		Save(context.Background())
	require.NoError(h.t, err)

	return todo
}

// Notifications returns all notifications for a recipient, oldest first
func (h *TestHelpers) Notifications(username string) []*ent.Notification {
	notifications, err := h.client.Notification.Query().
		Where(notification.RecipientUsernameEQ(username)).
		Order(ent.Asc(notification.FieldCreatedAt)).
		All(context.Background())
	require.NoError(h.t, err)

	return notifications
}

// ActiveAssignments returns the pending/accepted assignments of a todo
func (h *TestHelpers) ActiveAssignments(todoID uuid.UUID) []*ent.Assignment {
	assignments, err := h.client.Assignment.Query().
		Where(
			assignment.TodoIDEQ(todoID),
			assignment.StatusIn(assignment.StatusPending, assignment.StatusAccepted),
		).
		All(context.Background())
	require.NoError(h.t, err)

	return assignments
}

// AssertAssignmentStatus verifies the stored status of an assignment
func (h *TestHelpers) AssertAssignmentStatus(id uuid.UUID, want assignment.Status) {
	a, err := h.client.Assignment.Get(context.Background(), id)
	require.NoError(h.t, err)
	require.Equal(h.t, want, a.Status)
}

// AuthenticatedContext returns a context carrying the username the way the
// auth interceptor does
func AuthenticatedContext(username string) context.Context {
	ctx := context.WithValue(context.Background(), "user_id", uuid.New().String())
	return context.WithValue(ctx, "user_username", username)
}

// Date builds a time.Time for tentative completion dates
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
