package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:50;not null"`
	Organization string `gorm:"size:80;not null"`

	EventPhotoURL             string
	EventPhotoPublicID        string
	OrganizationPhotoURL      string
	OrganizationPhotoPublicID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("id").Find(&events)
	if result.Error != nil {
		return nil, queryError("dao.EventDAO.FindAll", result.Error)
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, queryError("dao.EventDAO.FindByID", result.Error)
	}

	return event, nil
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, queryError("dao.EventDAO.Insert", result.Error)
	}

	return event, nil
}

// Update writes every column of event, so cleared photo slots are persisted too.
func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Model(&event).Select("*").Omit("ID", "CreatedAt").Updates(&event)
	if result.Error != nil {
		return Event{}, queryError("dao.EventDAO.Update", result.Error)
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return event, nil
}

func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return queryError("dao.EventDAO.Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
