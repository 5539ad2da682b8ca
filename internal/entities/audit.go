package entities

import "time"

// AuditEntry records who did what to which order. Entries are append
// only: nothing in the engine updates or deletes one.
type AuditEntry struct {
	ID          string
	ActorID     string
	ActorRole   Role
	Action      string
	OrderID     string
	Description string
	CreatedAt   time.Time
}

type ActivityFilter struct {
	OrderID string
	ActorID string
	Limit   int
	Offset  int
}
