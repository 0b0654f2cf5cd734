package request

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"

	"github.com/vietanh2810/raffles-api/internal/domain"
)

// MaxImageKB is the largest accepted upload.
const MaxImageKB = 2048

var imageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/bmp",
	"image/gif",
	"image/svg+xml",
	"image/webp",
}

var (
	errNotImage   = errors.New("must be an image")
	errImageLarge = fmt.Errorf("may not be greater than %d kilobytes", MaxImageKB)
)

// validImage is an ozzo rule for optional image uploads. The content is sniffed, the
// client supplied content type is ignored.
func validImage(value interface{}) error {
	fh, _ := value.(*multipart.FileHeader)
	if fh == nil {
		return nil
	}

	if fh.Size > MaxImageKB*1024 {
		return errImageLarge
	}

	f, err := fh.Open()
	if err != nil {
		return errNotImage
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil || !mimetype.EqualsAny(mt.String(), imageTypes...) {
		return errNotImage
	}

	return nil
}

// Uploads keeps the files opened for one request so the handler can close them.
type Uploads []io.Closer

// Close closes every file opened so far. It has a pointer receiver so that a
// deferred call sees the files appended after the defer statement.
func (u *Uploads) Close() {
	for _, c := range *u {
		_ = c.Close()
	}
	*u = nil
}

// open turns a validated upload into a domain.Image. A nil header yields nil.
func (u *Uploads) open(fh *multipart.FileHeader) (*domain.Image, error) {
	if fh == nil {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("fh.Open -> %w", err)
	}
	*u = append(*u, f)

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("mimetype.DetectReader -> %w", err)
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("f.Seek -> %w", err)
	}

	return &domain.Image{
		Name:        fh.Filename,
		ContentType: mt.String(),
		Size:        fh.Size,
		Content:     f,
	}, nil
}
