package entity

import "time"

// ActivityEntry is one immutable record in the append-only activity log.
// ActorEmail is empty for attempts made before the caller was identified.
// Detail is an action-specific JSON object.
type ActivityEntry struct {
	ID         int64
	Action     string
	ActorEmail string
	Detail     map[string]any
	CreatedAt  time.Time
}
