package models

import (
	"time"

	"github.com/dmitrijs2005/taskvault/internal/common"
)

// TaskStatus enumerates the lifecycle states of a task. Any status may be
// set at any time; there is no enforced workflow.
type TaskStatus string

const (
	StatusOpen       TaskStatus = "OPEN"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// ParseStatus validates a client-supplied status string.
func ParseStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusOpen, StatusInProgress, StatusDone:
		return TaskStatus(s), nil
	default:
		return "", common.ErrorInvalidStatus
	}
}

// Task is a single tracked item. UserID references the owning principal and
// never changes after creation.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TaskFilter narrows a listing. Zero values mean "no constraint"; when both
// are set the predicates are ANDed. Search matches case-insensitively
// against title and description.
type TaskFilter struct {
	Status TaskStatus
	Search string
}
