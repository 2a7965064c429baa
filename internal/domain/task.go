package domain

import "time"

// Priority and status values the API defaults to. Both columns store
// arbitrary strings; these constants are not enforced anywhere.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// Task represents a single item on the shared task board.
type Task struct {
	ID          int64
	Title       string
	Description string
	Priority    string
	Status      string
	CreatedAt   time.Time
}
