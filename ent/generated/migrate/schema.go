// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "assigner_username", Type: field.TypeString},
		{Name: "assignee_username", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "declined", "completed"}, Default: "pending"},
		{Name: "tentative_completion_date", Type: field.TypeTime, Nullable: true},
		{Name: "decline_reason", Type: field.TypeString, Nullable: true},
		{Name: "assigned_at", Type: field.TypeTime},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "todo_id", Type: field.TypeUUID},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assignments_todos_assignments",
				Columns:    []*schema.Column{AssignmentsColumns[8]},
				RefColumns: []*schema.Column{TodosColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_todo_id",
				Unique:  true,
				Columns: []*schema.Column{AssignmentsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'accepted')",
				},
			},
			{
				Name:    "assignment_assignee_username",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[2]},
			},
			{
				Name:    "assignment_assigner_username",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[1]},
			},
			{
				Name:    "assignment_status",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[3]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "recipient_username", Type: field.TypeString},
		{Name: "message", Type: field.TypeString},
		{Name: "related_todo_id", Type: field.TypeUUID},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_recipient_username_is_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[4]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[5]},
			},
		},
	}
	// TodosColumns holds the columns for the "todos" table.
	TodosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "target_date", Type: field.TypeTime, Nullable: true},
		{Name: "done", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_todos", Type: field.TypeUUID, Nullable: true},
	}
	// TodosTable holds the schema information for the "todos" table.
	TodosTable = &schema.Table{
		Name:       "todos",
		Columns:    TodosColumns,
		PrimaryKey: []*schema.Column{TodosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "todos_users_todos",
				Columns:    []*schema.Column{TodosColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "todo_username",
				Unique:  false,
				Columns: []*schema.Column{TodosColumns[1]},
			},
			{
				Name:    "todo_done",
				Unique:  false,
				Columns: []*schema.Column{TodosColumns[4]},
			},
			{
				Name:    "todo_created_at",
				Unique:  false,
				Columns: []*schema.Column{TodosColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100, Default: ""},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100, Default: ""},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssignmentsTable,
		NotificationsTable,
		TodosTable,
		UsersTable,
	}
)

func init() {
	AssignmentsTable.ForeignKeys[0].RefTable = TodosTable
	TodosTable.ForeignKeys[0].RefTable = UsersTable
}
