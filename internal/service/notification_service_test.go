// internal/service/notification_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	notificationv1 "github.com/ekaraca/taskshare/api/proto/notification/v1/generated"
	ent "github.com/ekaraca/taskshare/ent/generated"
)

func seedNotification(t *testing.T, client *ent.Client, recipient, message string, createdAt time.Time) *ent.Notification {
	t.Helper()
	n, err := client.Notification.Create().
		SetRecipientUsername(recipient).
		SetMessage(message).
		SetRelatedTodoID(uuid.New()).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return n
}

func TestEntNotifier_Notify(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	todoID := uuid.New()
	notifier := NewEntNotifier()
	err := notifier.Notify(context.Background(), client.Notification, "bob", "User alice has assigned you a new todo: 'Walk the dog'", todoID)
	require.NoError(t, err)

	h := NewTestHelpers(t, client)
	notifications := h.Notifications("bob")
	require.Len(t, notifications, 1)
	n := notifications[0]
	assert.Equal(t, "bob", n.RecipientUsername)
	assert.Equal(t, todoID, n.RelatedTodoID)
	assert.False(t, n.IsRead)
	assert.False(t, n.CreatedAt.IsZero())
}

func TestNotificationService_ListNotifications(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	base := Date(2025, time.January, 1)
	oldest := seedNotification(t, client, "bob", "first", base)
	newest := seedNotification(t, client, "bob", "second", base.Add(time.Hour))
	seedNotification(t, client, "carol", "not bob's", base)

	svc := NewNotificationService(client)

	resp, err := svc.ListNotifications(AuthenticatedContext("bob"), &notificationv1.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)

	// Newest first
	assert.Equal(t, newest.ID.String(), resp.Notifications[0].Id)
	assert.Equal(t, oldest.ID.String(), resp.Notifications[1].Id)

	_, err = svc.ListNotifications(context.Background(), &notificationv1.ListNotificationsRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestNotificationService_UnreadFlow(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	base := Date(2025, time.January, 1)
	first := seedNotification(t, client, "bob", "first", base)
	seedNotification(t, client, "bob", "second", base.Add(time.Hour))

	svc := NewNotificationService(client)
	ctx := AuthenticatedContext("bob")

	countResp, err := svc.GetUnreadCount(ctx, &notificationv1.GetUnreadCountRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), countResp.Count)

	_, err = svc.MarkNotificationRead(ctx, &notificationv1.MarkNotificationReadRequest{Id: first.ID.String()})
	require.NoError(t, err)

	countResp, err = svc.GetUnreadCount(ctx, &notificationv1.GetUnreadCountRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), countResp.Count)

	unreadResp, err := svc.ListUnreadNotifications(ctx, &notificationv1.ListUnreadNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, unreadResp.Notifications, 1)
	assert.Equal(t, "second", unreadResp.Notifications[0].Message)

	// Marking read is idempotent
	_, err = svc.MarkNotificationRead(ctx, &notificationv1.MarkNotificationReadRequest{Id: first.ID.String()})
	require.NoError(t, err)
}

func TestNotificationService_MarkNotificationRead_Errors(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	n := seedNotification(t, client, "bob", "for bob only", Date(2025, time.January, 1))

	svc := NewNotificationService(client)

	tests := []struct {
		name         string
		ctx          context.Context
		id           string
		expectedCode codes.Code
	}{
		{
			name:         "unauthenticated",
			ctx:          context.Background(),
			id:           n.ID.String(),
			expectedCode: codes.Unauthenticated,
		},
		{
			name:         "missing id",
			ctx:          AuthenticatedContext("bob"),
			id:           "",
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "malformed id",
			ctx:          AuthenticatedContext("bob"),
			id:           "not-a-uuid",
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "unknown id",
			ctx:          AuthenticatedContext("bob"),
			id:           uuid.New().String(),
			expectedCode: codes.NotFound,
		},
		{
			name:         "someone else's notification",
			ctx:          AuthenticatedContext("carol"),
			id:           n.ID.String(),
			expectedCode: codes.PermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.MarkNotificationRead(tt.ctx, &notificationv1.MarkNotificationReadRequest{Id: tt.id})
			require.Error(t, err)
			assert.Equal(t, tt.expectedCode, status.Code(err))
		})
	}

	// The row is still unread after all the failed attempts
	got, err := client.Notification.Get(context.Background(), n.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRead)
}
