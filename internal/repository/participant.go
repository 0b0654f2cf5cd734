package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
	ErrAlreadyExclusive    = dao.ErrAlreadyExclusive
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id uint) (dao.Participant, error)
	InsertExclusive(ctx context.Context, participantID, raffleID uint) (dao.ExclusiveRaffle, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, dao.Participant{
		Name:        p.Name,
		DocumentID:  p.DocumentID,
		Position:    p.Position,
		Email:       p.Email,
		Photo:       p.Photo,
		IsActive:    p.IsActive,
		HasAccepted: p.HasAccepted,
		EventsID:    p.EventID,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// AddExclusive makes the participant eligible for the raffle. Registering the same pair
// twice fails with ErrAlreadyExclusive.
func (r *ParticipantRepository) AddExclusive(ctx context.Context, participantID, raffleID uint) error {
	if _, err := r.dao.InsertExclusive(ctx, participantID, raffleID); err != nil {
		return fmt.Errorf("r.dao.InsertExclusive -> %w", err)
	}

	return nil
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:          p.ID,
		Name:        p.Name,
		DocumentID:  p.DocumentID,
		Position:    p.Position,
		Email:       p.Email,
		Photo:       p.Photo,
		IsActive:    p.IsActive,
		HasAccepted: p.HasAccepted,
		EventID:     p.EventsID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
