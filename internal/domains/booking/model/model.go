package model

import "time"

const EntityName = "booking"

// Event is published after every booking state change.
type Event struct {
	Type        string    `json:"type"`
	RoomID      int       `json:"room_id"`
	Username    string    `json:"username"`
	BookingDate string    `json:"booking_date,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
