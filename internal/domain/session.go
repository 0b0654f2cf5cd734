package domain

import "time"

type Session struct {
	ID        string
	UserID    uint
	CSRFToken string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
