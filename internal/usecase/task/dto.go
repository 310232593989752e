package task

// CreateTaskRequest carries the fields for a new task.
type CreateTaskRequest struct {
	Title       string
	Description string
}

// UpdateTaskRequest carries a partial task edit. Nil fields are left
// untouched.
type UpdateTaskRequest struct {
	Title       *string
	Description *string
	Done        *bool
}
