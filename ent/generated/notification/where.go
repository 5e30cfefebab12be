// Code generated by ent, DO NOT EDIT.

package notification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ekaraca/taskshare/ent/generated/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldID, id))
}

// RecipientUsername applies equality check predicate on the "recipient_username" field. It's identical to RecipientUsernameEQ.
func RecipientUsername(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRecipientUsername, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldMessage, v))
}

// RelatedTodoID applies equality check predicate on the "related_todo_id" field. It's identical to RelatedTodoIDEQ.
func RelatedTodoID(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRelatedTodoID, v))
}

// IsRead applies equality check predicate on the "is_read" field. It's identical to IsReadEQ.
func IsRead(v bool) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldIsRead, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldCreatedAt, v))
}

// RecipientUsernameEQ applies the EQ predicate on the "recipient_username" field.
func RecipientUsernameEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRecipientUsername, v))
}

// RecipientUsernameNEQ applies the NEQ predicate on the "recipient_username" field.
func RecipientUsernameNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldRecipientUsername, v))
}

// RecipientUsernameIn applies the In predicate on the "recipient_username" field.
func RecipientUsernameIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldRecipientUsername, vs...))
}

// RecipientUsernameNotIn applies the NotIn predicate on the "recipient_username" field.
func RecipientUsernameNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldRecipientUsername, vs...))
}

// RecipientUsernameGT applies the GT predicate on the "recipient_username" field.
func RecipientUsernameGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldRecipientUsername, v))
}

// RecipientUsernameGTE applies the GTE predicate on the "recipient_username" field.
func RecipientUsernameGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldRecipientUsername, v))
}

// RecipientUsernameLT applies the LT predicate on the "recipient_username" field.
func RecipientUsernameLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldRecipientUsername, v))
}

// RecipientUsernameLTE applies the LTE predicate on the "recipient_username" field.
func RecipientUsernameLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldRecipientUsername, v))
}

// RecipientUsernameContains applies the Contains predicate on the "recipient_username" field.
func RecipientUsernameContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldRecipientUsername, v))
}

// RecipientUsernameHasPrefix applies the HasPrefix predicate on the "recipient_username" field.
func RecipientUsernameHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldRecipientUsername, v))
}

// RecipientUsernameHasSuffix applies the HasSuffix predicate on the "recipient_username" field.
func RecipientUsernameHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldRecipientUsername, v))
}

// RecipientUsernameEqualFold applies the EqualFold predicate on the "recipient_username" field.
func RecipientUsernameEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldRecipientUsername, v))
}

// RecipientUsernameContainsFold applies the ContainsFold predicate on the "recipient_username" field.
func RecipientUsernameContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldRecipientUsername, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldMessage, v))
}

// RelatedTodoIDEQ applies the EQ predicate on the "related_todo_id" field.
func RelatedTodoIDEQ(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRelatedTodoID, v))
}

// RelatedTodoIDNEQ applies the NEQ predicate on the "related_todo_id" field.
func RelatedTodoIDNEQ(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldRelatedTodoID, v))
}

// RelatedTodoIDIn applies the In predicate on the "related_todo_id" field.
func RelatedTodoIDIn(vs ...uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldRelatedTodoID, vs...))
}

// RelatedTodoIDNotIn applies the NotIn predicate on the "related_todo_id" field.
func RelatedTodoIDNotIn(vs ...uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldRelatedTodoID, vs...))
}

// RelatedTodoIDGT applies the GT predicate on the "related_todo_id" field.
func RelatedTodoIDGT(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldRelatedTodoID, v))
}

// RelatedTodoIDGTE applies the GTE predicate on the "related_todo_id" field.
func RelatedTodoIDGTE(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldRelatedTodoID, v))
}

// RelatedTodoIDLT applies the LT predicate on the "related_todo_id" field.
func RelatedTodoIDLT(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldRelatedTodoID, v))
}

// RelatedTodoIDLTE applies the LTE predicate on the "related_todo_id" field.
func RelatedTodoIDLTE(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldRelatedTodoID, v))
}

// IsReadEQ applies the EQ predicate on the "is_read" field.
func IsReadEQ(v bool) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldIsRead, v))
}

// IsReadNEQ applies the NEQ predicate on the "is_read" field.
func IsReadNEQ(v bool) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldIsRead, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Notification) predicate.Notification {
	return predicate.Notification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Notification) predicate.Notification {
	return predicate.Notification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Notification) predicate.Notification {
	return predicate.Notification(sql.NotPredicates(p))
}
