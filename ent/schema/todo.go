// ent/schema/todo.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Todo holds the schema definition for the Todo entity.
type Todo struct {
	ent.Schema
}

// Fields of the Todo.
func (Todo) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("username").
			NotEmpty().
			Comment("Username of the todo owner"),

		field.String("description").
			NotEmpty().
			Comment("What needs to be done"),

		field.Time("target_date").
			Optional().
			Nillable().
			Comment("When the todo should be done"),

		field.Bool("done").
			Default(false).
			Comment("Whether the todo is finished"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the todo was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the todo was last updated"),
	}
}

// Edges of the Todo.
func (Todo) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("todos").
			Unique(),

		edge.To("assignments", Assignment.Type),
	}
}

// Indexes of the Todo.
func (Todo) Indexes() []ent.Index {
	return []ent.Index{
		// Index on username for the per-user todo list
		index.Fields("username"),

		// Index on done for filtering
		index.Fields("done"),

		index.Fields("created_at"),
	}
}
