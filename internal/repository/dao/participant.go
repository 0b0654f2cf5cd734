package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Participant struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	DocumentID  string `gorm:"size:11;not null"`
	Position    string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Photo       string `gorm:"not null"`
	IsActive    bool   `gorm:"not null;default:false"`
	HasAccepted bool   `gorm:"not null;default:false"`
	EventsID    uint   `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExclusiveRaffle pairs a participant with a raffle they are eligible for. A pair can
// only be stored once.
type ExclusiveRaffle struct {
	ID            uint `gorm:"primaryKey"`
	ParticipantID uint `gorm:"not null;uniqueIndex:idx_exclusive_participant_raffle"`
	RafflesID     uint `gorm:"not null;uniqueIndex:idx_exclusive_participant_raffle"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		return Participant{}, queryError("dao.ParticipantDAO.Insert", result.Error)
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, queryError("dao.ParticipantDAO.FindByID", result.Error)
	}

	return participant, nil
}

func (d *ParticipantDAO) InsertExclusive(ctx context.Context, participantID, raffleID uint) (ExclusiveRaffle, error) {
	pair := ExclusiveRaffle{
		ParticipantID: participantID,
		RafflesID:     raffleID,
	}

	result := d.db.WithContext(ctx).Create(&pair)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "") {
			return ExclusiveRaffle{}, ErrAlreadyExclusive
		}

		return ExclusiveRaffle{}, queryError("dao.ParticipantDAO.InsertExclusive", result.Error)
	}

	return pair, nil
}
