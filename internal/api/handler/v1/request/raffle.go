package request

import (
	"mime/multipart"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/raffles-api/internal/domain"
)

type RaffleRequest struct {
	Name         *string               `json:"name" form:"name"`
	IsPlayed     *bool                 `json:"is_played" form:"is_played"`
	Price        *string               `json:"price" form:"price"`
	PricePhoto   *multipart.FileHeader `json:"price_photo_url,omitempty" form:"price_photo_url"`
	HasQuestions *bool                 `json:"has_questions" form:"has_questions"`
	WinnerID     *uint                 `json:"winner_id" form:"winner_id"`
	WinnerName   *string               `json:"winner_name" form:"winner_name"`
	EventID      *uint                 `json:"events_id" form:"events_id"`
}

func (req *RaffleRequest) ValidateCreate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 80)),
		validation.Field(&req.Price, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.PricePhoto, validation.By(validImage)),
		validation.Field(&req.WinnerName, validation.Length(0, 255)),
		validation.Field(&req.EventID, validation.Required),
	)
}

// ValidateUpdate checks only the fields that were sent.
func (req *RaffleRequest) ValidateUpdate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 80)),
		validation.Field(&req.Price, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&req.PricePhoto, validation.By(validImage)),
		validation.Field(&req.WinnerName, validation.Length(0, 255)),
		validation.Field(&req.EventID, validation.NilOrNotEmpty),
	)
}

func (req *RaffleRequest) Input(uploads *Uploads) (domain.RaffleInput, error) {
	pricePhoto, err := uploads.open(req.PricePhoto)
	if err != nil {
		return domain.RaffleInput{}, err
	}

	return domain.RaffleInput{
		Name:         req.Name,
		IsPlayed:     req.IsPlayed,
		Price:        req.Price,
		PricePhoto:   pricePhoto,
		HasQuestions: req.HasQuestions,
		WinnerID:     req.WinnerID,
		WinnerName:   req.WinnerName,
		EventID:      req.EventID,
	}, nil
}
