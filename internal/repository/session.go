package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/repository/dao"
)

var ErrSessionNotFound = dao.ErrSessionNotFound

type SessionDAO interface {
	Save(ctx context.Context, session dao.Session) (dao.Session, error)
	FindByID(ctx context.Context, id string) (dao.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type SessionRepository struct {
	dao SessionDAO
}

func NewSessionRepository(dao SessionDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

func (r *SessionRepository) Save(ctx context.Context, s domain.Session) (domain.Session, error) {
	saved, err := r.dao.Save(ctx, dao.Session{
		ID:        s.ID,
		UserID:    s.UserID,
		CSRFToken: s.CSRFToken,
		UserAgent: s.UserAgent,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.Save -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (domain.Session, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.dao.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("r.dao.DeleteExpired -> %w", err)
	}

	return n, nil
}

func (r *SessionRepository) daoToDomain(s dao.Session) domain.Session {
	return domain.Session{
		ID:        s.ID,
		UserID:    s.UserID,
		CSRFToken: s.CSRFToken,
		UserAgent: s.UserAgent,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
