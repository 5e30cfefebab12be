// internal/service/notification_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	notificationv1 "github.com/ekaraca/taskshare/api/proto/notification/v1/generated"
	ent "github.com/ekaraca/taskshare/ent/generated"
	"github.com/ekaraca/taskshare/internal/middleware"
	"github.com/ekaraca/taskshare/internal/repository"
)

// Notifier records a notification for a user. The write goes through the
// given notification client so it joins the caller's transaction; the caller
// only commits when both its state change and the notification are durable.
type Notifier interface {
	Notify(ctx context.Context, nc *ent.NotificationClient, recipientUsername, message string, todoID uuid.UUID) error
}

// EntNotifier persists notifications as rows
type EntNotifier struct{}

func NewEntNotifier() *EntNotifier {
	return &EntNotifier{}
}

func (*EntNotifier) Notify(ctx context.Context, nc *ent.NotificationClient, recipientUsername, message string, todoID uuid.UUID) error {
	_, err := nc.Create().
		SetRecipientUsername(recipientUsername).
		SetMessage(message).
		SetRelatedTodoID(todoID).
		Save(ctx)
	return err
}

// NotificationService exposes the read side of notifications: listing,
// unread counts, and marking as read.
type NotificationService struct {
	notificationv1.UnimplementedNotificationServiceServer
	repo *repository.EntNotificationRepository
}

func NewNotificationService(client *ent.Client) *NotificationService {
	return &NotificationService{
		repo: repository.NewEntNotificationRepository(client),
	}
}

// ListNotifications returns all notifications for the authenticated user,
// newest first
func (s *NotificationService) ListNotifications(ctx context.Context, req *notificationv1.ListNotificationsRequest) (*notificationv1.ListNotificationsResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	notifications, err := s.repo.ListByRecipient(ctx, username)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list notifications: %v", err)
	}

	return &notificationv1.ListNotificationsResponse{
		Notifications: convertNotificationsToProto(notifications),
	}, nil
}

// ListUnreadNotifications returns unread notifications for the authenticated
// user, newest first
func (s *NotificationService) ListUnreadNotifications(ctx context.Context, req *notificationv1.ListUnreadNotificationsRequest) (*notificationv1.ListUnreadNotificationsResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	notifications, err := s.repo.ListUnreadByRecipient(ctx, username)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list unread notifications: %v", err)
	}

	return &notificationv1.ListUnreadNotificationsResponse{
		Notifications: convertNotificationsToProto(notifications),
	}, nil
}

// GetUnreadCount returns the number of unread notifications
func (s *NotificationService) GetUnreadCount(ctx context.Context, req *notificationv1.GetUnreadCountRequest) (*notificationv1.GetUnreadCountResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	count, err := s.repo.CountUnread(ctx, username)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to count unread notifications: %v", err)
	}

	return &notificationv1.GetUnreadCountResponse{
		Count: int64(count),
	}, nil
}

// MarkNotificationRead marks one of the authenticated user's notifications
// as read
func (s *NotificationService) MarkNotificationRead(ctx context.Context, req *notificationv1.MarkNotificationReadRequest) (*emptypb.Empty, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid notification ID format")
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "notification not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get notification: %v", err)
	}

	if n.RecipientUsername != username {
		return nil, status.Error(codes.PermissionDenied, "not authorized to read this notification")
	}

	if _, err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to mark notification read: %v", err)
	}

	return &emptypb.Empty{}, nil
}

// Helper functions

func convertNotificationsToProto(notifications []*ent.Notification) []*notificationv1.Notification {
	proto := make([]*notificationv1.Notification, len(notifications))
	for i, n := range notifications {
		proto[i] = &notificationv1.Notification{
			Id:                n.ID.String(),
			RecipientUsername: n.RecipientUsername,
			Message:           n.Message,
			RelatedTodoId:     n.RelatedTodoID.String(),
			IsRead:            n.IsRead,
			CreatedAt:         timestamppb.New(n.CreatedAt),
		}
	}
	return proto
}
