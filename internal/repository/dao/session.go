package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Session struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index"`
	CSRFToken string    `gorm:"size:64;not null"`
	UserAgent string    `gorm:"size:512"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SessionDAO struct {
	db *gorm.DB
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{
		db: db,
	}
}

// Save inserts the session or overwrites the row with the same id.
func (d *SessionDAO) Save(ctx context.Context, session Session) (Session, error) {
	result := d.db.WithContext(ctx).Save(&session)
	if result.Error != nil {
		return Session{}, queryError("dao.SessionDAO.Save", result.Error)
	}

	return session, nil
}

func (d *SessionDAO) FindByID(ctx context.Context, id string) (Session, error) {
	var session Session

	result := d.db.WithContext(ctx).First(&session, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}

		return Session{}, queryError("dao.SessionDAO.FindByID", result.Error)
	}

	return session, nil
}

func (d *SessionDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Session{}, "id = ?", id)
	if result.Error != nil {
		return queryError("dao.SessionDAO.Delete", result.Error)
	}

	return nil
}

// DeleteExpired removes every session that expired before now and returns how many
// rows went away.
func (d *SessionDAO) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := d.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&Session{})
	if result.Error != nil {
		return 0, queryError("dao.SessionDAO.DeleteExpired", result.Error)
	}

	return result.RowsAffected, nil
}
