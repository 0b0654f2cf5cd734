// Package local keeps uploaded images on disk, for development without a media host.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/media"
)

var ErrPathTraversal = errors.New("path traversal attempt")

type Store struct {
	basePath      string
	publicBaseURL string
}

// New stores files below basePath and builds asset URLs from publicBaseURL.
func New(basePath, publicBaseURL string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &Store{
		basePath:      basePath,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *Store) Root() string {
	return s.basePath
}

func (s *Store) Upload(ctx context.Context, image domain.Image, folder string) (media.Asset, error) {
	if err := ctx.Err(); err != nil {
		return media.Asset{}, err
	}

	ext := ""
	if mt := mimetype.Lookup(image.ContentType); mt != nil {
		ext = mt.Extension()
	}
	publicID := path.Join(folder, uuid.NewString()+ext)

	filePath, err := s.safeJoin(publicID)
	if err != nil {
		return media.Asset{}, err
	}
	if err = os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return media.Asset{}, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return media.Asset{}, fmt.Errorf("os.Create -> %w", err)
	}
	if _, err = io.Copy(f, image.Content); err != nil {
		_ = f.Close()
		if rerr := os.Remove(filePath); rerr != nil {
			zap.L().Error("failed to remove file after write error", zap.Error(rerr))
		}
		return media.Asset{}, fmt.Errorf("io.Copy -> %w", err)
	}
	if err = f.Close(); err != nil {
		if rerr := os.Remove(filePath); rerr != nil {
			zap.L().Error("failed to remove file after close error", zap.Error(rerr))
		}
		return media.Asset{}, fmt.Errorf("f.Close -> %w", err)
	}

	return media.Asset{
		SecureURL: s.publicBaseURL + "/" + publicID,
		PublicID:  publicID,
	}, nil
}

func (s *Store) Delete(ctx context.Context, publicID string) (bool, error) {
	if publicID == "" {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	filePath, err := s.safeJoin(publicID)
	if err != nil {
		return false, err
	}

	if err = os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("os.Remove -> %w", err)
	}

	return true, nil
}

// safeJoin resolves publicID relative to basePath and rejects directory traversal.
func (s *Store) safeJoin(publicID string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("filepath.Abs -> %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, filepath.FromSlash(publicID)))
	if err != nil {
		return "", fmt.Errorf("filepath.Abs -> %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", ErrPathTraversal
	}

	return absPath, nil
}
