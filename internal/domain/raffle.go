package domain

import "time"

type Raffle struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	IsPlayed     bool      `json:"is_played"`
	Price        string    `json:"price"`
	PricePhoto   Photo     `json:"price_photo"`
	HasQuestions bool      `json:"has_questions"`
	WinnerID     *uint     `json:"winner_id"`
	WinnerName   *string   `json:"winner_name"`
	EventID      uint      `json:"event_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RaffleInput struct {
	Name         *string
	IsPlayed     *bool
	Price        *string
	PricePhoto   *Image
	HasQuestions *bool
	WinnerID     *uint
	WinnerName   *string
	EventID      *uint
}
