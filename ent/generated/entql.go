// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/ekaraca/taskshare/ent/generated/assignment"
	"github.com/ekaraca/taskshare/ent/generated/notification"
	"github.com/ekaraca/taskshare/ent/generated/predicate"
	"github.com/ekaraca/taskshare/ent/generated/todo"
	"github.com/ekaraca/taskshare/ent/generated/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 4)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   assignment.Table,
			Columns: assignment.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: assignment.FieldID,
			},
		},
		Type: "Assignment",
		Fields: map[string]*sqlgraph.FieldSpec{
			assignment.FieldTodoID:                  {Type: field.TypeUUID, Column: assignment.FieldTodoID},
			assignment.FieldAssignerUsername:        {Type: field.TypeString, Column: assignment.FieldAssignerUsername},
			assignment.FieldAssigneeUsername:        {Type: field.TypeString, Column: assignment.FieldAssigneeUsername},
			assignment.FieldStatus:                  {Type: field.TypeEnum, Column: assignment.FieldStatus},
			assignment.FieldTentativeCompletionDate: {Type: field.TypeTime, Column: assignment.FieldTentativeCompletionDate},
			assignment.FieldDeclineReason:           {Type: field.TypeString, Column: assignment.FieldDeclineReason},
			assignment.FieldAssignedAt:              {Type: field.TypeTime, Column: assignment.FieldAssignedAt},
			assignment.FieldRespondedAt:             {Type: field.TypeTime, Column: assignment.FieldRespondedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   notification.Table,
			Columns: notification.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: notification.FieldID,
			},
		},
		Type: "Notification",
		Fields: map[string]*sqlgraph.FieldSpec{
			notification.FieldRecipientUsername: {Type: field.TypeString, Column: notification.FieldRecipientUsername},
			notification.FieldMessage:           {Type: field.TypeString, Column: notification.FieldMessage},
			notification.FieldRelatedTodoID:     {Type: field.TypeUUID, Column: notification.FieldRelatedTodoID},
			notification.FieldIsRead:            {Type: field.TypeBool, Column: notification.FieldIsRead},
			notification.FieldCreatedAt:         {Type: field.TypeTime, Column: notification.FieldCreatedAt},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   todo.Table,
			Columns: todo.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: todo.FieldID,
			},
		},
		Type: "Todo",
		Fields: map[string]*sqlgraph.FieldSpec{
			todo.FieldUsername:    {Type: field.TypeString, Column: todo.FieldUsername},
			todo.FieldDescription: {Type: field.TypeString, Column: todo.FieldDescription},
			todo.FieldTargetDate:  {Type: field.TypeTime, Column: todo.FieldTargetDate},
			todo.FieldDone:        {Type: field.TypeBool, Column: todo.FieldDone},
			todo.FieldCreatedAt:   {Type: field.TypeTime, Column: todo.FieldCreatedAt},
			todo.FieldUpdatedAt:   {Type: field.TypeTime, Column: todo.FieldUpdatedAt},
		},
	}
	graph.Nodes[3] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   user.Table,
			Columns: user.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: user.FieldID,
			},
		},
		Type: "User",
		Fields: map[string]*sqlgraph.FieldSpec{
			user.FieldUsername:     {Type: field.TypeString, Column: user.FieldUsername},
			user.FieldEmail:        {Type: field.TypeString, Column: user.FieldEmail},
			user.FieldPasswordHash: {Type: field.TypeString, Column: user.FieldPasswordHash},
			user.FieldFirstName:    {Type: field.TypeString, Column: user.FieldFirstName},
			user.FieldLastName:     {Type: field.TypeString, Column: user.FieldLastName},
			user.FieldIsActive:     {Type: field.TypeBool, Column: user.FieldIsActive},
			user.FieldCreatedAt:    {Type: field.TypeTime, Column: user.FieldCreatedAt},
		},
	}
	graph.MustAddE(
		"todo",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.TodoTable,
			Columns: []string{assignment.TodoColumn},
			Bidi:    false,
		},
		"Assignment",
		"Todo",
	)
	graph.MustAddE(
		"owner",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   todo.OwnerTable,
			Columns: []string{todo.OwnerColumn},
			Bidi:    false,
		},
		"Todo",
		"User",
	)
	graph.MustAddE(
		"assignments",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   todo.AssignmentsTable,
			Columns: []string{todo.AssignmentsColumn},
			Bidi:    false,
		},
		"Todo",
		"Assignment",
	)
	graph.MustAddE(
		"todos",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TodosTable,
			Columns: []string{user.TodosColumn},
			Bidi:    false,
		},
		"User",
		"Todo",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (_q *AssignmentQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the AssignmentQuery builder.
func (_q *AssignmentQuery) Filter() *AssignmentFilter {
	return &AssignmentFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *AssignmentMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the AssignmentMutation builder.
func (m *AssignmentMutation) Filter() *AssignmentFilter {
	return &AssignmentFilter{config: m.config, predicateAdder: m}
}

// AssignmentFilter provides a generic filtering capability at runtime for AssignmentQuery.
type AssignmentFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *AssignmentFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *AssignmentFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(assignment.FieldID))
}

// WhereTodoID applies the entql [16]byte predicate on the todo_id field.
func (f *AssignmentFilter) WhereTodoID(p entql.ValueP) {
	f.Where(p.Field(assignment.FieldTodoID))
}

// WhereAssignerUsername applies the entql string predicate on the assigner_username field.
func (f *AssignmentFilter) WhereAssignerUsername(p entql.StringP) {
	f.Where(p.Field(assignment.FieldAssignerUsername))
}

// WhereAssigneeUsername applies the entql string predicate on the assignee_username field.
func (f *AssignmentFilter) WhereAssigneeUsername(p entql.StringP) {
	f.Where(p.Field(assignment.FieldAssigneeUsername))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *AssignmentFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(assignment.FieldStatus))
}

// WhereTentativeCompletionDate applies the entql time.Time predicate on the tentative_completion_date field.
func (f *AssignmentFilter) WhereTentativeCompletionDate(p entql.TimeP) {
	f.Where(p.Field(assignment.FieldTentativeCompletionDate))
}

// WhereDeclineReason applies the entql string predicate on the decline_reason field.
func (f *AssignmentFilter) WhereDeclineReason(p entql.StringP) {
	f.Where(p.Field(assignment.FieldDeclineReason))
}

// WhereAssignedAt applies the entql time.Time predicate on the assigned_at field.
func (f *AssignmentFilter) WhereAssignedAt(p entql.TimeP) {
	f.Where(p.Field(assignment.FieldAssignedAt))
}

// WhereRespondedAt applies the entql time.Time predicate on the responded_at field.
func (f *AssignmentFilter) WhereRespondedAt(p entql.TimeP) {
	f.Where(p.Field(assignment.FieldRespondedAt))
}

// WhereHasTodo applies a predicate to check if query has an edge todo.
func (f *AssignmentFilter) WhereHasTodo() {
	f.Where(entql.HasEdge("todo"))
}

// WhereHasTodoWith applies a predicate to check if query has an edge todo with a given conditions (other predicates).
func (f *AssignmentFilter) WhereHasTodoWith(preds ...predicate.Todo) {
	f.Where(entql.HasEdgeWith("todo", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *NotificationQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the NotificationQuery builder.
func (_q *NotificationQuery) Filter() *NotificationFilter {
	return &NotificationFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *NotificationMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the NotificationMutation builder.
func (m *NotificationMutation) Filter() *NotificationFilter {
	return &NotificationFilter{config: m.config, predicateAdder: m}
}

// NotificationFilter provides a generic filtering capability at runtime for NotificationQuery.
type NotificationFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *NotificationFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *NotificationFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(notification.FieldID))
}

// WhereRecipientUsername applies the entql string predicate on the recipient_username field.
func (f *NotificationFilter) WhereRecipientUsername(p entql.StringP) {
	f.Where(p.Field(notification.FieldRecipientUsername))
}

// WhereMessage applies the entql string predicate on the message field.
func (f *NotificationFilter) WhereMessage(p entql.StringP) {
	f.Where(p.Field(notification.FieldMessage))
}

// WhereRelatedTodoID applies the entql [16]byte predicate on the related_todo_id field.
func (f *NotificationFilter) WhereRelatedTodoID(p entql.ValueP) {
	f.Where(p.Field(notification.FieldRelatedTodoID))
}

// WhereIsRead applies the entql bool predicate on the is_read field.
func (f *NotificationFilter) WhereIsRead(p entql.BoolP) {
	f.Where(p.Field(notification.FieldIsRead))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *NotificationFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(notification.FieldCreatedAt))
}

// addPredicate implements the predicateAdder interface.
func (_q *TodoQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TodoQuery builder.
func (_q *TodoQuery) Filter() *TodoFilter {
	return &TodoFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *TodoMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TodoMutation builder.
func (m *TodoMutation) Filter() *TodoFilter {
	return &TodoFilter{config: m.config, predicateAdder: m}
}

// TodoFilter provides a generic filtering capability at runtime for TodoQuery.
type TodoFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TodoFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TodoFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(todo.FieldID))
}

// WhereUsername applies the entql string predicate on the username field.
func (f *TodoFilter) WhereUsername(p entql.StringP) {
	f.Where(p.Field(todo.FieldUsername))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TodoFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(todo.FieldDescription))
}

// WhereTargetDate applies the entql time.Time predicate on the target_date field.
func (f *TodoFilter) WhereTargetDate(p entql.TimeP) {
	f.Where(p.Field(todo.FieldTargetDate))
}

// WhereDone applies the entql bool predicate on the done field.
func (f *TodoFilter) WhereDone(p entql.BoolP) {
	f.Where(p.Field(todo.FieldDone))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TodoFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(todo.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TodoFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(todo.FieldUpdatedAt))
}

// WhereHasOwner applies a predicate to check if query has an edge owner.
func (f *TodoFilter) WhereHasOwner() {
	f.Where(entql.HasEdge("owner"))
}

// WhereHasOwnerWith applies a predicate to check if query has an edge owner with a given conditions (other predicates).
func (f *TodoFilter) WhereHasOwnerWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("owner", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignments applies a predicate to check if query has an edge assignments.
func (f *TodoFilter) WhereHasAssignments() {
	f.Where(entql.HasEdge("assignments"))
}

// WhereHasAssignmentsWith applies a predicate to check if query has an edge assignments with a given conditions (other predicates).
func (f *TodoFilter) WhereHasAssignmentsWith(preds ...predicate.Assignment) {
	f.Where(entql.HasEdgeWith("assignments", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *UserQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the UserQuery builder.
func (_q *UserQuery) Filter() *UserFilter {
	return &UserFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *UserMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the UserMutation builder.
func (m *UserMutation) Filter() *UserFilter {
	return &UserFilter{config: m.config, predicateAdder: m}
}

// UserFilter provides a generic filtering capability at runtime for UserQuery.
type UserFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *UserFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[3].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *UserFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(user.FieldID))
}

// WhereUsername applies the entql string predicate on the username field.
func (f *UserFilter) WhereUsername(p entql.StringP) {
	f.Where(p.Field(user.FieldUsername))
}

// WhereEmail applies the entql string predicate on the email field.
func (f *UserFilter) WhereEmail(p entql.StringP) {
	f.Where(p.Field(user.FieldEmail))
}

// WherePasswordHash applies the entql string predicate on the password_hash field.
func (f *UserFilter) WherePasswordHash(p entql.StringP) {
	f.Where(p.Field(user.FieldPasswordHash))
}

// WhereFirstName applies the entql string predicate on the first_name field.
func (f *UserFilter) WhereFirstName(p entql.StringP) {
	f.Where(p.Field(user.FieldFirstName))
}

// WhereLastName applies the entql string predicate on the last_name field.
func (f *UserFilter) WhereLastName(p entql.StringP) {
	f.Where(p.Field(user.FieldLastName))
}

// WhereIsActive applies the entql bool predicate on the is_active field.
func (f *UserFilter) WhereIsActive(p entql.BoolP) {
	f.Where(p.Field(user.FieldIsActive))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *UserFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldCreatedAt))
}

// WhereHasTodos applies a predicate to check if query has an edge todos.
func (f *UserFilter) WhereHasTodos() {
	f.Where(entql.HasEdge("todos"))
}

// WhereHasTodosWith applies a predicate to check if query has an edge todos with a given conditions (other predicates).
func (f *UserFilter) WhereHasTodosWith(preds ...predicate.Todo) {
	f.Where(entql.HasEdgeWith("todos", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
