// Package media uploads user images to a hosted asset store and deletes them again.
package media

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vietanh2810/raffles-api/internal/domain"
)

// DefaultTimeout bounds every remote call. Calls are never retried.
const DefaultTimeout = 15 * time.Second

var ErrUploadRejected = errors.New("media upload rejected")

// Asset is what the host hands back for a stored file.
type Asset struct {
	SecureURL string
	PublicID  string
}

type Store interface {
	// Upload stores image under folder.
	Upload(ctx context.Context, image domain.Image, folder string) (Asset, error)
	// Delete removes the asset. It reports false when nothing was deleted, which is
	// always the case for an empty publicID.
	Delete(ctx context.Context, publicID string) (bool, error)
}

type timeoutStore struct {
	next    Store
	timeout time.Duration
}

// WithTimeout bounds each call on next by timeout.
func WithTimeout(next Store, timeout time.Duration) Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &timeoutStore{
		next:    next,
		timeout: timeout,
	}
}

func (s *timeoutStore) Upload(ctx context.Context, image domain.Image, folder string) (Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	asset, err := s.next.Upload(ctx, image, folder)
	if err != nil {
		return Asset{}, fmt.Errorf("s.next.Upload -> %w", err)
	}

	return asset, nil
}

func (s *timeoutStore) Delete(ctx context.Context, publicID string) (bool, error) {
	if publicID == "" {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	deleted, err := s.next.Delete(ctx, publicID)
	if err != nil {
		return false, fmt.Errorf("s.next.Delete -> %w", err)
	}

	return deleted, nil
}
