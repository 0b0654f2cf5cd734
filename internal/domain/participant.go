package domain

import "time"

type Participant struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	DocumentID  string    `json:"document_id"`
	Position    string    `json:"position"`
	Email       string    `json:"email"`
	Photo       string    `json:"photo"`
	IsActive    bool      `json:"is_active"`
	HasAccepted bool      `json:"has_accepted"`
	EventID     uint      `json:"event_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
