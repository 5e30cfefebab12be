// ent/schema/user.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("username").
			NotEmpty().
			Unique().
			MinLen(3).
			MaxLen(50).
			Comment("Unique username"),

		field.String("email").
			NotEmpty().
			Unique().
			Comment("User email address"),

		field.String("password_hash").
			NotEmpty().
			Sensitive(). // Won't be included in logs
			Comment("Hashed password"),

		field.String("first_name").
			Optional().
			Default("").
			MaxLen(100).
			Comment("User's first name"),

		field.String("last_name").
			Optional().
			Default("").
			MaxLen(100).
			Comment("User's last name"),

		field.Bool("is_active").
			Default(true).
			Comment("Whether the user account is active"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the account was created"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("todos", Todo.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
		index.Fields("email"),
	}
}
