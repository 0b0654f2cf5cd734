package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/media"
)

type MediaStore interface {
	Upload(ctx context.Context, image domain.Image, folder string) (media.Asset, error)
	Delete(ctx context.Context, publicID string) (bool, error)
}

// PhotoSlot is one photo field of a record: the request field it is uploaded through
// and the media folder its assets live in.
type PhotoSlot struct {
	Field  string
	Folder string
}

var (
	EventPhotoSlot        = PhotoSlot{Field: "event_photo_url", Folder: "events"}
	OrganizationPhotoSlot = PhotoSlot{Field: "organization_photo_url", Folder: "organization"}
	PricePhotoSlot        = PhotoSlot{Field: "price_photo_url", Folder: "raffles_prices"}
)

// Attach uploads image into the slot's folder.
func (p PhotoSlot) Attach(ctx context.Context, store MediaStore, image domain.Image) (domain.Photo, error) {
	asset, err := store.Upload(ctx, image, p.Folder)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("upload %s -> %w", p.Field, err)
	}

	return domain.Photo{
		URL:      asset.SecureURL,
		PublicID: asset.PublicID,
	}, nil
}

// Release deletes the remote asset behind photo. Failures are logged, the record that
// owned the asset goes on regardless.
func (p PhotoSlot) Release(ctx context.Context, store MediaStore, photo domain.Photo) {
	if photo.PublicID == "" {
		return
	}

	deleted, err := store.Delete(ctx, photo.PublicID)
	if err != nil {
		zap.L().Warn("failed to delete photo",
			zap.String("field", p.Field),
			zap.String("public_id", photo.PublicID),
			zap.Error(err),
		)
		return
	}
	if !deleted {
		zap.L().Info("photo already gone", zap.String("field", p.Field), zap.String("public_id", photo.PublicID))
	}
}

type slotPhoto struct {
	slot  PhotoSlot
	photo domain.Photo
}

// photoChanges collects the uploads of one create or update. Rollback deletes the
// fresh uploads when the record could not be stored; Commit deletes the assets they
// replaced once it was.
type photoChanges struct {
	store    MediaStore
	uploaded []slotPhoto
	replaced []slotPhoto
}

func newPhotoChanges(store MediaStore) *photoChanges {
	return &photoChanges{store: store}
}

// Replace uploads image when one was sent and returns the photo the slot should hold.
// Without an image the current photo is returned unchanged.
func (c *photoChanges) Replace(ctx context.Context, slot PhotoSlot, image *domain.Image, current domain.Photo) (domain.Photo, error) {
	if image == nil {
		return current, nil
	}

	photo, err := slot.Attach(ctx, c.store, *image)
	if err != nil {
		return current, err
	}

	c.uploaded = append(c.uploaded, slotPhoto{slot: slot, photo: photo})
	if current.PublicID != "" {
		c.replaced = append(c.replaced, slotPhoto{slot: slot, photo: current})
	}

	return photo, nil
}

func (c *photoChanges) Rollback(ctx context.Context) {
	for _, u := range c.uploaded {
		u.slot.Release(ctx, c.store, u.photo)
	}
	c.uploaded = nil
}

func (c *photoChanges) Commit(ctx context.Context) {
	for _, r := range c.replaced {
		r.slot.Release(ctx, c.store, r.photo)
	}
	c.replaced = nil
}
