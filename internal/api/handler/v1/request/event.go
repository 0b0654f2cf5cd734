package request

import (
	"mime/multipart"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/raffles-api/internal/domain"
)

// EventRequest is the body of an event create or update, sent as multipart form when
// photos are attached and as JSON otherwise.
type EventRequest struct {
	Name              *string               `json:"name" form:"name"`
	Organization      *string               `json:"organization" form:"organization"`
	EventPhoto        *multipart.FileHeader `json:"event_photo_url,omitempty" form:"event_photo_url"`
	OrganizationPhoto *multipart.FileHeader `json:"organization_photo_url,omitempty" form:"organization_photo_url"`
}

func (req *EventRequest) ValidateCreate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Organization, validation.Required, validation.Length(1, 80)),
		validation.Field(&req.EventPhoto, validation.By(validImage)),
		validation.Field(&req.OrganizationPhoto, validation.By(validImage)),
	)
}

// ValidateUpdate checks only the fields that were sent.
func (req *EventRequest) ValidateUpdate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&req.Organization, validation.NilOrNotEmpty, validation.Length(1, 80)),
		validation.Field(&req.EventPhoto, validation.By(validImage)),
		validation.Field(&req.OrganizationPhoto, validation.By(validImage)),
	)
}

// Input opens the attached photos into uploads, which the caller must close.
func (req *EventRequest) Input(uploads *Uploads) (domain.EventInput, error) {
	eventPhoto, err := uploads.open(req.EventPhoto)
	if err != nil {
		return domain.EventInput{}, err
	}

	organizationPhoto, err := uploads.open(req.OrganizationPhoto)
	if err != nil {
		return domain.EventInput{}, err
	}

	return domain.EventInput{
		Name:              req.Name,
		Organization:      req.Organization,
		EventPhoto:        eventPhoto,
		OrganizationPhoto: organizationPhoto,
	}, nil
}
