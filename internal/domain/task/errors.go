package task

import "errors"

// ErrNotFound is returned when no task matches the id, or the task exists but
// belongs to a different user. The two cases are deliberately
// indistinguishable to callers.
var ErrNotFound = errors.New("task not found")
