package response

import (
	"time"

	"github.com/vietanh2810/raffles-api/internal/domain"
)

type Event struct {
	ID                        uint      `json:"id"`
	Name                      string    `json:"name"`
	Organization              string    `json:"organization"`
	EventPhotoURL             *string   `json:"event_photo_url"`
	EventPhotoPublicID        *string   `json:"event_photo_public_id"`
	OrganizationPhotoURL      *string   `json:"organization_photo_url"`
	OrganizationPhotoPublicID *string   `json:"organization_photo_public_id"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

func NewEvent(e domain.Event) Event {
	return Event{
		ID:                        e.ID,
		Name:                      e.Name,
		Organization:              e.Organization,
		EventPhotoURL:             nullable(e.EventPhoto.URL),
		EventPhotoPublicID:        nullable(e.EventPhoto.PublicID),
		OrganizationPhotoURL:      nullable(e.OrganizationPhoto.URL),
		OrganizationPhotoPublicID: nullable(e.OrganizationPhoto.PublicID),
		CreatedAt:                 e.CreatedAt,
		UpdatedAt:                 e.UpdatedAt,
	}
}

func NewEvents(events []domain.Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, NewEvent(e))
	}

	return out
}

type Raffle struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	IsPlayed     bool    `json:"is_played"`
	Price        string  `json:"price"`
	PricePhoto   *string `json:"price_photo"`
	HasQuestions bool    `json:"has_questions"`
	WinnerID     *uint   `json:"winner_id"`
	WinnerName   *string `json:"winner_name"`
	EventID      uint    `json:"event_id"`
}

func NewRaffle(r domain.Raffle) Raffle {
	return Raffle{
		ID:           r.ID,
		Name:         r.Name,
		IsPlayed:     r.IsPlayed,
		Price:        r.Price,
		PricePhoto:   nullable(r.PricePhoto.URL),
		HasQuestions: r.HasQuestions,
		WinnerID:     r.WinnerID,
		WinnerName:   r.WinnerName,
		EventID:      r.EventID,
	}
}

func NewRaffles(raffles []domain.Raffle) []Raffle {
	out := make([]Raffle, 0, len(raffles))
	for _, r := range raffles {
		out = append(out, NewRaffle(r))
	}

	return out
}

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUser(u domain.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Data wraps a resource or a collection the way index and show respond.
type Data struct {
	Data any `json:"data"`
}

type Message struct {
	Message string `json:"message"`
}

type UserEnvelope struct {
	User User `json:"user"`
}

type Registered struct {
	Message string `json:"message"`
	Data    User   `json:"data"`
}

type EventSaved struct {
	Message string `json:"message"`
	Event   Event  `json:"event"`
}

type RaffleSaved struct {
	Message string `json:"message"`
	Raffle  Raffle `json:"raffle"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
