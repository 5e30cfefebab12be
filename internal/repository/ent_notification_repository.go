// internal/repository/ent_notification_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/ekaraca/taskshare/ent/generated"
	"github.com/ekaraca/taskshare/ent/generated/notification"
)

type EntNotificationRepository struct {
	client *ent.Client
}

func NewEntNotificationRepository(client *ent.Client) *EntNotificationRepository {
	return &EntNotificationRepository{
		client: client,
	}
}

// ListByRecipient returns all notifications for a user, newest first.
func (r *EntNotificationRepository) ListByRecipient(ctx context.Context, username string) ([]*ent.Notification, error) {
	notifications, err := r.client.Notification.
		Query().
		Where(notification.RecipientUsernameEQ(username)).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query notifications for %s: %w", username, err)
	}
	return notifications, nil
}

// ListUnreadByRecipient returns unread notifications for a user, newest first.
func (r *EntNotificationRepository) ListUnreadByRecipient(ctx context.Context, username string) ([]*ent.Notification, error) {
	notifications, err := r.client.Notification.
		Query().
		Where(
			notification.RecipientUsernameEQ(username),
			notification.IsRead(false),
		).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unread notifications for %s: %w", username, err)
	}
	return notifications, nil
}

func (r *EntNotificationRepository) CountUnread(ctx context.Context, username string) (int, error) {
	count, err := r.client.Notification.
		Query().
		Where(
			notification.RecipientUsernameEQ(username),
			notification.IsRead(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications for %s: %w", username, err)
	}
	return count, nil
}

func (r *EntNotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Notification, error) {
	return r.client.Notification.
		Query().
		Where(notification.ID(id)).
		Only(ctx)
}

func (r *EntNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) (*ent.Notification, error) {
	return r.client.Notification.
		UpdateOneID(id).
		SetIsRead(true).
		Save(ctx)
}
