// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ekaraca/taskshare/ent/generated/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldID, id))
}

// TodoID applies equality check predicate on the "todo_id" field. It's identical to TodoIDEQ.
func TodoID(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldTodoID, v))
}

// AssignerUsername applies equality check predicate on the "assigner_username" field. It's identical to AssignerUsernameEQ.
func AssignerUsername(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignerUsername, v))
}

// AssigneeUsername applies equality check predicate on the "assignee_username" field. It's identical to AssigneeUsernameEQ.
func AssigneeUsername(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssigneeUsername, v))
}

// TentativeCompletionDate applies equality check predicate on the "tentative_completion_date" field. It's identical to TentativeCompletionDateEQ.
func TentativeCompletionDate(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldTentativeCompletionDate, v))
}

// DeclineReason applies equality check predicate on the "decline_reason" field. It's identical to DeclineReasonEQ.
func DeclineReason(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDeclineReason, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignedAt, v))
}

// RespondedAt applies equality check predicate on the "responded_at" field. It's identical to RespondedAtEQ.
func RespondedAt(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRespondedAt, v))
}

// TodoIDEQ applies the EQ predicate on the "todo_id" field.
func TodoIDEQ(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldTodoID, v))
}

// TodoIDNEQ applies the NEQ predicate on the "todo_id" field.
func TodoIDNEQ(v uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldTodoID, v))
}

// TodoIDIn applies the In predicate on the "todo_id" field.
func TodoIDIn(vs ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldTodoID, vs...))
}

// TodoIDNotIn applies the NotIn predicate on the "todo_id" field.
func TodoIDNotIn(vs ...uuid.UUID) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldTodoID, vs...))
}

// AssignerUsernameEQ applies the EQ predicate on the "assigner_username" field.
func AssignerUsernameEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignerUsername, v))
}

// AssignerUsernameNEQ applies the NEQ predicate on the "assigner_username" field.
func AssignerUsernameNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAssignerUsername, v))
}

// AssignerUsernameIn applies the In predicate on the "assigner_username" field.
func AssignerUsernameIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAssignerUsername, vs...))
}

// AssignerUsernameNotIn applies the NotIn predicate on the "assigner_username" field.
func AssignerUsernameNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAssignerUsername, vs...))
}

// AssignerUsernameGT applies the GT predicate on the "assigner_username" field.
func AssignerUsernameGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldAssignerUsername, v))
}

// AssignerUsernameGTE applies the GTE predicate on the "assigner_username" field.
func AssignerUsernameGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldAssignerUsername, v))
}

// AssignerUsernameLT applies the LT predicate on the "assigner_username" field.
func AssignerUsernameLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldAssignerUsername, v))
}

// AssignerUsernameLTE applies the LTE predicate on the "assigner_username" field.
func AssignerUsernameLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldAssignerUsername, v))
}

// AssignerUsernameContains applies the Contains predicate on the "assigner_username" field.
func AssignerUsernameContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldAssignerUsername, v))
}

// AssignerUsernameHasPrefix applies the HasPrefix predicate on the "assigner_username" field.
func AssignerUsernameHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldAssignerUsername, v))
}

// AssignerUsernameHasSuffix applies the HasSuffix predicate on the "assigner_username" field.
func AssignerUsernameHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldAssignerUsername, v))
}

// AssignerUsernameEqualFold applies the EqualFold predicate on the "assigner_username" field.
func AssignerUsernameEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldAssignerUsername, v))
}

// AssignerUsernameContainsFold applies the ContainsFold predicate on the "assigner_username" field.
func AssignerUsernameContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldAssignerUsername, v))
}

// AssigneeUsernameEQ applies the EQ predicate on the "assignee_username" field.
func AssigneeUsernameEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssigneeUsername, v))
}

// AssigneeUsernameNEQ applies the NEQ predicate on the "assignee_username" field.
func AssigneeUsernameNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAssigneeUsername, v))
}

// AssigneeUsernameIn applies the In predicate on the "assignee_username" field.
func AssigneeUsernameIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAssigneeUsername, vs...))
}

// AssigneeUsernameNotIn applies the NotIn predicate on the "assignee_username" field.
func AssigneeUsernameNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAssigneeUsername, vs...))
}

// AssigneeUsernameGT applies the GT predicate on the "assignee_username" field.
func AssigneeUsernameGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldAssigneeUsername, v))
}

// AssigneeUsernameGTE applies the GTE predicate on the "assignee_username" field.
func AssigneeUsernameGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldAssigneeUsername, v))
}

// AssigneeUsernameLT applies the LT predicate on the "assignee_username" field.
func AssigneeUsernameLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldAssigneeUsername, v))
}

// AssigneeUsernameLTE applies the LTE predicate on the "assignee_username" field.
func AssigneeUsernameLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldAssigneeUsername, v))
}

// AssigneeUsernameContains applies the Contains predicate on the "assignee_username" field.
func AssigneeUsernameContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldAssigneeUsername, v))
}

// AssigneeUsernameHasPrefix applies the HasPrefix predicate on the "assignee_username" field.
func AssigneeUsernameHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldAssigneeUsername, v))
}

// AssigneeUsernameHasSuffix applies the HasSuffix predicate on the "assignee_username" field.
func AssigneeUsernameHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldAssigneeUsername, v))
}

// AssigneeUsernameEqualFold applies the EqualFold predicate on the "assignee_username" field.
func AssigneeUsernameEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldAssigneeUsername, v))
}

// AssigneeUsernameContainsFold applies the ContainsFold predicate on the "assignee_username" field.
func AssigneeUsernameContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldAssigneeUsername, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldStatus, vs...))
}

// TentativeCompletionDateEQ applies the EQ predicate on the "tentative_completion_date" field.
func TentativeCompletionDateEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldTentativeCompletionDate, v))
}

// TentativeCompletionDateNEQ applies the NEQ predicate on the "tentative_completion_date" field.
func TentativeCompletionDateNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldTentativeCompletionDate, v))
}

// TentativeCompletionDateIn applies the In predicate on the "tentative_completion_date" field.
func TentativeCompletionDateIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldTentativeCompletionDate, vs...))
}

// TentativeCompletionDateNotIn applies the NotIn predicate on the "tentative_completion_date" field.
func TentativeCompletionDateNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldTentativeCompletionDate, vs...))
}

// TentativeCompletionDateGT applies the GT predicate on the "tentative_completion_date" field.
func TentativeCompletionDateGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldTentativeCompletionDate, v))
}

// TentativeCompletionDateGTE applies the GTE predicate on the "tentative_completion_date" field.
func TentativeCompletionDateGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldTentativeCompletionDate, v))
}

// TentativeCompletionDateLT applies the LT predicate on the "tentative_completion_date" field.
func TentativeCompletionDateLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldTentativeCompletionDate, v))
}

// TentativeCompletionDateLTE applies the LTE predicate on the "tentative_completion_date" field.
func TentativeCompletionDateLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldTentativeCompletionDate, v))
}

// TentativeCompletionDateIsNil applies the IsNil predicate on the "tentative_completion_date" field.
func TentativeCompletionDateIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldTentativeCompletionDate))
}

// TentativeCompletionDateNotNil applies the NotNil predicate on the "tentative_completion_date" field.
func TentativeCompletionDateNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldTentativeCompletionDate))
}

// DeclineReasonEQ applies the EQ predicate on the "decline_reason" field.
func DeclineReasonEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDeclineReason, v))
}

// DeclineReasonNEQ applies the NEQ predicate on the "decline_reason" field.
func DeclineReasonNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldDeclineReason, v))
}

// DeclineReasonIn applies the In predicate on the "decline_reason" field.
func DeclineReasonIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldDeclineReason, vs...))
}

// DeclineReasonNotIn applies the NotIn predicate on the "decline_reason" field.
func DeclineReasonNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldDeclineReason, vs...))
}

// DeclineReasonGT applies the GT predicate on the "decline_reason" field.
func DeclineReasonGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldDeclineReason, v))
}

// DeclineReasonGTE applies the GTE predicate on the "decline_reason" field.
func DeclineReasonGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldDeclineReason, v))
}

// DeclineReasonLT applies the LT predicate on the "decline_reason" field.
func DeclineReasonLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldDeclineReason, v))
}

// DeclineReasonLTE applies the LTE predicate on the "decline_reason" field.
func DeclineReasonLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldDeclineReason, v))
}

// DeclineReasonContains applies the Contains predicate on the "decline_reason" field.
func DeclineReasonContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldDeclineReason, v))
}

// DeclineReasonHasPrefix applies the HasPrefix predicate on the "decline_reason" field.
func DeclineReasonHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldDeclineReason, v))
}

// DeclineReasonHasSuffix applies the HasSuffix predicate on the "decline_reason" field.
func DeclineReasonHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldDeclineReason, v))
}

// DeclineReasonIsNil applies the IsNil predicate on the "decline_reason" field.
func DeclineReasonIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldDeclineReason))
}

// DeclineReasonNotNil applies the NotNil predicate on the "decline_reason" field.
func DeclineReasonNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldDeclineReason))
}

// DeclineReasonEqualFold applies the EqualFold predicate on the "decline_reason" field.
func DeclineReasonEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldDeclineReason, v))
}

// DeclineReasonContainsFold applies the ContainsFold predicate on the "decline_reason" field.
func DeclineReasonContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldDeclineReason, v))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldAssignedAt, v))
}

// RespondedAtEQ applies the EQ predicate on the "responded_at" field.
func RespondedAtEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRespondedAt, v))
}

// RespondedAtNEQ applies the NEQ predicate on the "responded_at" field.
func RespondedAtNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldRespondedAt, v))
}

// RespondedAtIn applies the In predicate on the "responded_at" field.
func RespondedAtIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldRespondedAt, vs...))
}

// RespondedAtNotIn applies the NotIn predicate on the "responded_at" field.
func RespondedAtNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldRespondedAt, vs...))
}

// RespondedAtGT applies the GT predicate on the "responded_at" field.
func RespondedAtGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldRespondedAt, v))
}

// RespondedAtGTE applies the GTE predicate on the "responded_at" field.
func RespondedAtGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldRespondedAt, v))
}

// RespondedAtLT applies the LT predicate on the "responded_at" field.
func RespondedAtLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldRespondedAt, v))
}

// RespondedAtLTE applies the LTE predicate on the "responded_at" field.
func RespondedAtLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldRespondedAt, v))
}

// RespondedAtIsNil applies the IsNil predicate on the "responded_at" field.
func RespondedAtIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldRespondedAt))
}

// RespondedAtNotNil applies the NotNil predicate on the "responded_at" field.
func RespondedAtNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldRespondedAt))
}

// HasTodo applies the HasEdge predicate on the "todo" edge.
func HasTodo() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TodoTable, TodoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTodoWith applies the HasEdge predicate on the "todo" edge with a given conditions (other predicates).
func HasTodoWith(preds ...predicate.Todo) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newTodoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.NotPredicates(p))
}
