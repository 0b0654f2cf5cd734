package domain

import "time"

type Event struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Organization      string    `json:"organization"`
	EventPhoto        Photo     `json:"event_photo"`
	OrganizationPhoto Photo     `json:"organization_photo"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// EventInput carries a create or partial update. Nil fields are left untouched on
// update.
type EventInput struct {
	Name              *string
	Organization      *string
	EventPhoto        *Image
	OrganizationPhoto *Image
}
