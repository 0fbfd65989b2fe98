package entity

import (
	"time"
)

// TaskStatus is the closed set of task lifecycle states.
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "InProgress"
	StatusDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (s TaskStatus) String() string { return string(s) }

// Task is a work item owned by a single user. OwnerEmail is the
// authorization key: it is set once at creation from the authenticated
// caller and is never client-writable. OwnerName and TaskDate are
// informational, client-supplied fields. CreatedAt is server-assigned.
type Task struct {
	ID          string
	OwnerEmail  string
	OwnerName   string
	TaskDate    time.Time
	Title       string
	Subject     string
	Description string
	DueDate     time.Time
	Status      TaskStatus
	CreatedAt   time.Time
}
