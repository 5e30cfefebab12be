// internal/service/assignment_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	assignmentv1 "github.com/ekaraca/taskshare/api/proto/assignment/v1/generated"
	ent "github.com/ekaraca/taskshare/ent/generated"
	"github.com/ekaraca/taskshare/ent/generated/assignment"
	"github.com/ekaraca/taskshare/ent/generated/todo"
	"github.com/ekaraca/taskshare/ent/generated/user"
	"github.com/ekaraca/taskshare/internal/middleware"
	"github.com/ekaraca/taskshare/internal/repository"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// AssignmentService implements the delegation workflow: a todo owner assigns
// the todo to another user, the assignee accepts or declines, and an accepted
// assignment completes when the todo is marked done. Every transition runs in
// a single transaction together with the notification it emits, so a state
// change is never visible without its notification.
type AssignmentService struct {
	assignmentv1.UnimplementedAssignmentServiceServer
	client   *ent.Client
	repo     *repository.EntAssignmentRepository
	notifier Notifier
}

func NewAssignmentService(client *ent.Client, notifier Notifier) *AssignmentService {
	return &AssignmentService{
		client:   client,
		repo:     repository.NewEntAssignmentRepository(client),
		notifier: notifier,
	}
}

// Assign creates a PENDING assignment delegating the todo to assigneeUsername.
// Only the todo owner may assign, the assignee must exist, and a todo with a
// pending or accepted assignment cannot be assigned again.
func (s *AssignmentService) Assign(ctx context.Context, todoID uuid.UUID, assignerUsername, assigneeUsername string) (*ent.Assignment, error) {
	if assigneeUsername == "" {
		return nil, status.Error(codes.InvalidArgument, "assignee username is required")
	}
	if assignerUsername == assigneeUsername {
		return nil, status.Error(codes.InvalidArgument, "cannot assign a todo to yourself")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to start transaction: %v", err)
	}

	t, err := tx.Todo.Query().
		Where(todo.ID(todoID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, status.Error(codes.NotFound, "todo not found"))
		}
		return nil, rollback(tx, status.Errorf(codes.Internal, "failed to get todo: %v", err))
	}

	if t.Username != assignerUsername {
		return nil, rollback(tx, status.Error(codes.PermissionDenied, "only the owner can assign this todo"))
	}

	exists, err := tx.User.Query().
		Where(user.UsernameEQ(assigneeUsername)).
		Exist(ctx)
	if err != nil {
		return nil, rollback(tx, status.Errorf(codes.Internal, "failed to look up assignee: %v", err))
	}
	if !exists {
		return nil, rollback(tx, status.Error(codes.InvalidArgument, "assignee not found"))
	}

	active, err := tx.Assignment.Query().
		Where(
			assignment.TodoIDEQ(todoID),
			assignment.StatusIn(assignment.StatusPending, assignment.StatusAccepted),
		).
		Exist(ctx)
	if err != nil {
		return nil, rollback(tx, status.Errorf(codes.Internal, "failed to check active assignment: %v", err))
	}
	if active {
		return nil, rollback(tx, status.Error(codes.FailedPrecondition, "todo is already assigned"))
	}

	created, err := tx.Assignment.Create().
		SetTodoID(todoID).
		SetAssignerUsername(assignerUsername).
		SetAssigneeUsername(assigneeUsername).
		SetStatus(assignment.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race against a concurrent assign of the same todo; the
			// partial unique index admits only one active assignment.
			return nil, rollback(tx, status.Error(codes.FailedPrecondition, "todo is already assigned"))
		}
		return nil, rollback(tx, status.Errorf(codes.Internal, "failed to create assignment: %v", err))
	}

	message := fmt.Sprintf("User %s has assigned you a new todo: '%s'", assignerUsername, t.Description)
	if err := s.notifier.Notify(ctx, tx.Notification, assigneeUsername, message, todoID); err != nil {
		return nil, rollback(tx, status.Errorf(codes.Internal, "failed to create notification: %v", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to commit assignment: %v", err)
	}

	return created, nil
}

// Respond records the assignee's accept or decline decision on a PENDING
// assignment. Accepting stores the tentative completion date; declining stores
// the optional reason. The assigner is notified either way.
func (s *AssignmentService) Respond(ctx context.Context, assignmentID uuid.UUID, actingUsername string, accepted bool, tentativeDate *time.Time, declineReason string) (*ent.Assignment, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to start transaction: %v", err)
	}

	a, err := tx.Assignment.Query().
		Where(assignment.ID(assignmentID)).
		WithTodo().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, status.Error(codes.NotFound, "assignment not found"))
		}
		return nil, rollback(tx, status.Errorf(codes.Internal, "failed to get assignment: %v", err))
	}

	if a.AssigneeUsername != actingUsername {
		return nil, rollback(tx, status.Error(codes.PermissionDenied, "not authorized to respond to this assignment"))
	}

	if a.Status != assignment.StatusPending {
		return nil, rollback(tx, status.Error(codes.FailedPrecondition, "assignment is not open for response"))
	}

	update := a.Update().SetRespondedAt(time.Now())

	var message string
	if accepted {
		update = update.
			SetStatus(assignment.StatusAccepted).
			SetNillableTentativeCompletionDate(tentativeDate)
		message = fmt.Sprintf("User %s accepted your assignment for: '%s'", actingUsername, a.Edges.Todo.Description)
	} else {
		update = update.SetStatus(assignment.StatusDeclined)
		if declineReason != "" {
			update = update.SetDeclineReason(declineReason)
		}
		message = fmt.Sprintf("User %s declined your assignment for: '%s'", actingUsername, a.Edges.Todo.Description)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, rollback(tx, status.Errorf(codes.Internal, "failed to update assignment: %v", err))
	}

	if err := s.notifier.Notify(ctx, tx.Notification, a.AssignerUsername, message, a.TodoID); err != nil {
		return nil, rollback(tx, status.Errorf(codes.Internal, "failed to create notification: %v", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to commit response: %v", err)
	}

	return updated, nil
}

// Complete moves the todo's ACCEPTED assignment to COMPLETED and notifies the
// assigner. A todo without an accepted assignment is a no-op: not every done
// todo originated from a delegation.
func (s *AssignmentService) Complete(ctx context.Context, todoID uuid.UUID) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to start transaction: %v", err)
	}

	a, err := tx.Assignment.Query().
		Where(
			assignment.TodoIDEQ(todoID),
			assignment.StatusEQ(assignment.StatusAccepted),
		).
		WithTodo().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = tx.Rollback()
			return nil
		}
		return rollback(tx, status.Errorf(codes.Internal, "failed to get assignment: %v", err))
	}

	if _, err := a.Update().SetStatus(assignment.StatusCompleted).Save(ctx); err != nil {
		return rollback(tx, status.Errorf(codes.Internal, "failed to update assignment: %v", err))
	}

	message := fmt.Sprintf("User %s completed the task: '%s'", a.AssigneeUsername, a.Edges.Todo.Description)
	if err := s.notifier.Notify(ctx, tx.Notification, a.AssignerUsername, message, todoID); err != nil {
		return rollback(tx, status.Errorf(codes.Internal, "failed to create notification: %v", err))
	}

	if err := tx.Commit(); err != nil {
		return status.Errorf(codes.Internal, "failed to commit completion: %v", err)
	}

	return nil
}

// AssignmentsFor returns every assignment delegated to the user, in any status.
func (s *AssignmentService) AssignmentsFor(ctx context.Context, username string) ([]*ent.Assignment, error) {
	assignments, err := s.repo.ByAssignee(ctx, username)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list assignments: %v", err)
	}
	return assignments, nil
}

// gRPC surface

// AssignTodo delegates a todo owned by the authenticated user
func (s *AssignmentService) AssignTodo(ctx context.Context, req *assignmentv1.AssignTodoRequest) (*assignmentv1.AssignTodoResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	if req.TodoId == "" {
		return nil, status.Error(codes.InvalidArgument, "todo_id is required")
	}
	todoID, err := uuid.Parse(req.TodoId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid todo ID format")
	}

	created, err := s.Assign(ctx, todoID, username, req.AssigneeUsername)
	if err != nil {
		return nil, err
	}

	return &assignmentv1.AssignTodoResponse{
		Assignment: convertAssignmentToProto(created),
	}, nil
}

// RespondToAssignment accepts or declines an assignment delegated to the
// authenticated user
func (s *AssignmentService) RespondToAssignment(ctx context.Context, req *assignmentv1.RespondToAssignmentRequest) (*assignmentv1.RespondToAssignmentResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	if req.AssignmentId == "" {
		return nil, status.Error(codes.InvalidArgument, "assignment_id is required")
	}
	assignmentID, err := uuid.Parse(req.AssignmentId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid assignment ID format")
	}

	var tentativeDate *time.Time
	if req.TentativeCompletionDate != nil {
		d := req.TentativeCompletionDate.AsTime()
		tentativeDate = &d
	}

	updated, err := s.Respond(ctx, assignmentID, username, req.Accepted, tentativeDate, req.DeclineReason)
	if err != nil {
		return nil, err
	}

	return &assignmentv1.RespondToAssignmentResponse{
		Assignment: convertAssignmentToProto(updated),
	}, nil
}

// ListMyAssignments returns assignments delegated to the authenticated user
func (s *AssignmentService) ListMyAssignments(ctx context.Context, req *assignmentv1.ListMyAssignmentsRequest) (*assignmentv1.ListMyAssignmentsResponse, error) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user not authenticated")
	}

	assignments, err := s.AssignmentsFor(ctx, username)
	if err != nil {
		return nil, err
	}

	protoAssignments := make([]*assignmentv1.Assignment, len(assignments))
	for i, a := range assignments {
		protoAssignments[i] = convertAssignmentToProto(a)
	}

	return &assignmentv1.ListMyAssignmentsResponse{
		Assignments: protoAssignments,
	}, nil
}

// Helper functions

func convertAssignmentToProto(a *ent.Assignment) *assignmentv1.Assignment {
	proto := &assignmentv1.Assignment{
		Id:               a.ID.String(),
		TodoId:           a.TodoID.String(),
		AssignerUsername: a.AssignerUsername,
		AssigneeUsername: a.AssigneeUsername,
		Status:           convertStatusToProto(a.Status),
		DeclineReason:    a.DeclineReason,
		AssignedAt:       timestamppb.New(a.AssignedAt),
	}

	if a.TentativeCompletionDate != nil {
		proto.TentativeCompletionDate = timestamppb.New(*a.TentativeCompletionDate)
	}

	if a.RespondedAt != nil {
		proto.RespondedAt = timestamppb.New(*a.RespondedAt)
	}

	return proto
}

func convertStatusToProto(s assignment.Status) assignmentv1.AssignmentStatus {
	switch s {
	case assignment.StatusPending:
		return assignmentv1.AssignmentStatus_ASSIGNMENT_STATUS_PENDING
	case assignment.StatusAccepted:
		return assignmentv1.AssignmentStatus_ASSIGNMENT_STATUS_ACCEPTED
	case assignment.StatusDeclined:
		return assignmentv1.AssignmentStatus_ASSIGNMENT_STATUS_DECLINED
	case assignment.StatusCompleted:
		return assignmentv1.AssignmentStatus_ASSIGNMENT_STATUS_COMPLETED
	default:
		return assignmentv1.AssignmentStatus_ASSIGNMENT_STATUS_UNSPECIFIED
	}
}

// rollback aborts the transaction and keeps the original error
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}
