// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatingAssignedEvent is published after a seat assignment batch is applied
// to a hall. It carries enough context for downstream consumers to log or
// notify without querying the primary database.
type SeatingAssignedEvent struct {
	EventID       string   `json:"event_id"`
	HallID        uint64   `json:"hall_id"`
	HallName      string   `json:"hall_name"`
	SeatLabels    []string `json:"seats"`
	AssignedCount int      `json:"assigned_count"`
	ClearedCount  int      `json:"cleared_count"`
	AssignedBy    uint64   `json:"assigned_by"`
	AssignedAt    string   `json:"assigned_at"`
}
