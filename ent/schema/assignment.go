// ent/schema/assignment.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Assignment holds the schema definition for the Assignment entity.
// An assignment delegates a todo from its owner (the assigner) to another
// user (the assignee), who must accept or decline it.
type Assignment struct {
	ent.Schema
}

// Fields of the Assignment.
func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("todo_id", uuid.UUID{}).
			Immutable().
			Comment("The delegated todo"),

		field.String("assigner_username").
			NotEmpty().
			Immutable().
			Comment("Username of the todo owner who delegated it"),

		field.String("assignee_username").
			NotEmpty().
			Immutable().
			Comment("Username of the delegate"),

		field.Enum("status").
			Values("pending", "accepted", "declined", "completed").
			Default("pending").
			Comment("Current state of the delegation"),

		field.Time("tentative_completion_date").
			Optional().
			Nillable().
			Comment("Date the assignee committed to on acceptance"),

		field.String("decline_reason").
			Optional().
			Comment("Free-text reason supplied on decline"),

		field.Time("assigned_at").
			Default(time.Now).
			Immutable().
			Comment("When the assignment was created"),

		field.Time("responded_at").
			Optional().
			Nillable().
			Comment("When the assignee first accepted or declined"),
	}
}

// Edges of the Assignment.
func (Assignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("todo", Todo.Type).
			Ref("assignments").
			Field("todo_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Assignment.
func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		// A todo may have at most one pending or accepted assignment. The
		// partial unique index makes the invariant hold under concurrent
		// creates: the loser of a race gets a constraint error.
		index.Fields("todo_id").
			Annotations(entsql.IndexWhere("status IN ('pending', 'accepted')")).
			Unique(),

		index.Fields("assignee_username"),
		index.Fields("assigner_username"),
		index.Fields("status"),
	}
}
