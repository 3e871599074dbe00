package domain

import "time"

// EventAction describes what happened to a calculation record.
type EventAction string

const (
	EventActionCreated EventAction = "created"
	EventActionUpdated EventAction = "updated"
	EventActionDeleted EventAction = "deleted"
)

// CalculationEvent is a write-only audit trail entry for a calculation.
type CalculationEvent struct {
	ID            int64
	CalculationID int64
	Action        EventAction
	Details       string
	CreatedAt     time.Time
}
