package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/raffles-api/internal/cache"
	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/repository"
)

var ErrEventNotFound = repository.ErrEventNotFound

const entityEvent = "event"

type EventRepository interface {
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
}

type EventService struct {
	repo  EventRepository
	cache *cache.Cache
	media MediaStore
	feed  Publisher
}

func NewEventService(repo EventRepository, c *cache.Cache, media MediaStore, feed Publisher) *EventService {
	return &EventService{
		repo:  repo,
		cache: c,
		media: media,
		feed:  publisherOrNoop(feed),
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := cache.Remember(ctx, s.cache, cache.Collection(cache.KindEvent), s.repo.FindAll)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := cache.Remember(ctx, s.cache, cache.Record(cache.KindEvent, id), func(ctx context.Context) (domain.Event, error) {
		return s.repo.FindByID(ctx, id)
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

// CreateEvent uploads the sent photos and stores the event. Name and Organization
// must be set.
func (s *EventService) CreateEvent(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	event := domain.Event{
		Name:         deref(in.Name),
		Organization: deref(in.Organization),
	}

	photos := newPhotoChanges(s.media)
	if err := s.applyPhotos(ctx, photos, &event, in); err != nil {
		return domain.Event{}, err
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		photos.Rollback(ctx)
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.cache.ForgetCollection(ctx, cache.KindEvent)
	s.feed.Publish(domain.Change{Entity: entityEvent, Action: domain.ChangeCreated, ID: created.ID})

	return created, nil
}

// UpdateEvent applies the fields set in in. A sent photo replaces the stored one,
// whose asset is deleted once the event is saved.
func (s *EventService) UpdateEvent(ctx context.Context, id uint, in domain.EventInput) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if in.Name != nil {
		event.Name = *in.Name
	}
	if in.Organization != nil {
		event.Organization = *in.Organization
	}

	photos := newPhotoChanges(s.media)
	if err = s.applyPhotos(ctx, photos, &event, in); err != nil {
		return domain.Event{}, err
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		photos.Rollback(ctx)
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}
	photos.Commit(ctx)

	s.cache.ForgetRecord(ctx, cache.KindEvent, id)
	s.feed.Publish(domain.Change{Entity: entityEvent, Action: domain.ChangeUpdated, ID: id})

	return updated, nil
}

// DeleteEvent deletes both photo assets, then the event.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	EventPhotoSlot.Release(ctx, s.media, event.EventPhoto)
	OrganizationPhotoSlot.Release(ctx, s.media, event.OrganizationPhoto)

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.cache.ForgetRecord(ctx, cache.KindEvent, id)
	s.feed.Publish(domain.Change{Entity: entityEvent, Action: domain.ChangeDeleted, ID: id})

	return nil
}

func (s *EventService) applyPhotos(ctx context.Context, photos *photoChanges, event *domain.Event, in domain.EventInput) error {
	var err error

	event.EventPhoto, err = photos.Replace(ctx, EventPhotoSlot, in.EventPhoto, event.EventPhoto)
	if err != nil {
		return err
	}

	event.OrganizationPhoto, err = photos.Replace(ctx, OrganizationPhotoSlot, in.OrganizationPhoto, event.OrganizationPhoto)
	if err != nil {
		photos.Rollback(ctx)
		return err
	}

	return nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}

	return *v
}
