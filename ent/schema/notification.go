// ent/schema/notification.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Notification holds the schema definition for the Notification entity.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("recipient_username").
			NotEmpty().
			Immutable().
			Comment("Username of the user this notification is for"),

		field.String("message").
			NotEmpty().
			Immutable().
			Comment("Human-readable notification text"),

		field.UUID("related_todo_id", uuid.UUID{}).
			Immutable().
			Comment("The todo this notification refers to"),

		field.Bool("is_read").
			Default(false).
			Comment("Whether the recipient has read the notification"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the notification was created"),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		// Unread-list and count queries filter on both fields
		index.Fields("recipient_username", "is_read"),

		index.Fields("created_at"),
	}
}
