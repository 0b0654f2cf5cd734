package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/media"
	"github.com/vietanh2810/raffles-api/internal/repository"
)

var errStoreDown = fmt.Errorf("store down: %w", domain.ErrDataStore)

type recordingMedia struct {
	mu        sync.Mutex
	next      int
	uploads   []string
	deletes   []string
	failAfter int
}

func (m *recordingMedia) Upload(_ context.Context, _ domain.Image, folder string) (media.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failAfter > 0 && len(m.uploads) >= m.failAfter {
		return media.Asset{}, errors.New("media host unavailable")
	}

	m.next++
	id := fmt.Sprintf("%s/asset-%d", folder, m.next)
	m.uploads = append(m.uploads, id)

	return media.Asset{SecureURL: "https://media.test/" + id, PublicID: id}, nil
}

func (m *recordingMedia) Delete(_ context.Context, publicID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if publicID == "" {
		return false, nil
	}
	m.deletes = append(m.deletes, publicID)

	return true, nil
}

type eventRepo struct {
	events     map[uint]domain.Event
	nextID     uint
	reads      int
	failWrites bool
}

func newEventRepo() *eventRepo {
	return &eventRepo{events: map[uint]domain.Event{}}
}

func (r *eventRepo) FindAll(context.Context) ([]domain.Event, error) {
	r.reads++
	out := make([]domain.Event, 0, len(r.events))
	for id := uint(1); id <= r.nextID; id++ {
		if e, ok := r.events[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *eventRepo) FindByID(_ context.Context, id uint) (domain.Event, error) {
	r.reads++
	e, ok := r.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	return e, nil
}

func (r *eventRepo) Create(_ context.Context, e domain.Event) (domain.Event, error) {
	if r.failWrites {
		return domain.Event{}, errStoreDown
	}
	r.nextID++
	e.ID = r.nextID
	r.events[e.ID] = e
	return e, nil
}

func (r *eventRepo) Update(_ context.Context, e domain.Event) (domain.Event, error) {
	if r.failWrites {
		return domain.Event{}, errStoreDown
	}
	r.events[e.ID] = e
	return e, nil
}

func (r *eventRepo) Delete(_ context.Context, id uint) error {
	if r.failWrites {
		return errStoreDown
	}
	delete(r.events, id)
	return nil
}

type raffleRepo struct {
	raffles map[uint]domain.Raffle
	nextID  uint
	reads   int
}

func newRaffleRepo() *raffleRepo {
	return &raffleRepo{raffles: map[uint]domain.Raffle{}}
}

func (r *raffleRepo) FindAll(context.Context) ([]domain.Raffle, error) {
	r.reads++
	out := make([]domain.Raffle, 0, len(r.raffles))
	for id := uint(1); id <= r.nextID; id++ {
		if raffle, ok := r.raffles[id]; ok {
			out = append(out, raffle)
		}
	}
	return out, nil
}

func (r *raffleRepo) FindByID(_ context.Context, id uint) (domain.Raffle, error) {
	r.reads++
	raffle, ok := r.raffles[id]
	if !ok {
		return domain.Raffle{}, repository.ErrRaffleNotFound
	}
	return raffle, nil
}

func (r *raffleRepo) Create(_ context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	r.nextID++
	raffle.ID = r.nextID
	r.raffles[raffle.ID] = raffle
	return raffle, nil
}

func (r *raffleRepo) Update(_ context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	r.raffles[raffle.ID] = raffle
	return raffle, nil
}

func (r *raffleRepo) Delete(_ context.Context, id uint) error {
	delete(r.raffles, id)
	return nil
}

type participantRepo map[uint]domain.Participant

func (r participantRepo) FindByID(_ context.Context, id uint) (domain.Participant, error) {
	p, ok := r[id]
	if !ok {
		return domain.Participant{}, repository.ErrParticipantNotFound
	}
	return p, nil
}

type userRepo struct {
	users []domain.User
}

func (r *userRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	user.ID = uint(len(r.users) + 1)
	r.users = append(r.users, user)
	return user, nil
}

func (r *userRepo) find(match func(domain.User) bool) (domain.User, error) {
	for _, u := range r.users {
		if match(u) {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (r *userRepo) FindByName(_ context.Context, name string) (domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Name == name })
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	return r.find(func(u domain.User) bool { return strings.EqualFold(u.Email, email) })
}

type recordingFeed struct {
	changes []domain.Change
}

func (f *recordingFeed) Publish(change domain.Change) {
	f.changes = append(f.changes, change)
}

func image() *domain.Image {
	return &domain.Image{Name: "photo.png", ContentType: "image/png", Content: strings.NewReader("png")}
}

func ptr[T any](v T) *T {
	return &v
}
