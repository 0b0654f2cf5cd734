package service

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/raffles-api/internal/cache"
	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/repository"
)

var (
	ErrRaffleNotFound      = repository.ErrRaffleNotFound
	ErrParticipantNotFound = repository.ErrParticipantNotFound
)

const entityRaffle = "raffle"

var errSelectionInvalid = errors.New("the selected value is invalid")

type RaffleRepository interface {
	FindAll(ctx context.Context) ([]domain.Raffle, error)
	FindByID(ctx context.Context, id uint) (domain.Raffle, error)
	Create(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error)
	Update(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error)
	Delete(ctx context.Context, id uint) error
}

type RaffleEventFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type RaffleParticipantFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
}

type RaffleService struct {
	repo         RaffleRepository
	events       RaffleEventFinder
	participants RaffleParticipantFinder
	cache        *cache.Cache
	media        MediaStore
	feed         Publisher
}

func NewRaffleService(
	repo RaffleRepository,
	events RaffleEventFinder,
	participants RaffleParticipantFinder,
	c *cache.Cache,
	media MediaStore,
	feed Publisher,
) *RaffleService {
	return &RaffleService{
		repo:         repo,
		events:       events,
		participants: participants,
		cache:        c,
		media:        media,
		feed:         publisherOrNoop(feed),
	}
}

func (s *RaffleService) ListRaffles(ctx context.Context) ([]domain.Raffle, error) {
	raffles, err := cache.Remember(ctx, s.cache, cache.Collection(cache.KindRaffle), s.repo.FindAll)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return raffles, nil
}

func (s *RaffleService) GetRaffle(ctx context.Context, id uint) (domain.Raffle, error) {
	raffle, err := cache.Remember(ctx, s.cache, cache.Record(cache.KindRaffle, id), func(ctx context.Context) (domain.Raffle, error) {
		return s.repo.FindByID(ctx, id)
	})
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return raffle, nil
}

// CreateRaffle checks the referenced event and winner exist, uploads the price photo
// and stores the raffle. Name, Price and EventID must be set.
func (s *RaffleService) CreateRaffle(ctx context.Context, in domain.RaffleInput) (domain.Raffle, error) {
	raffle := domain.Raffle{}
	if err := s.apply(ctx, &raffle, in); err != nil {
		return domain.Raffle{}, err
	}

	photos := newPhotoChanges(s.media)
	photo, err := photos.Replace(ctx, PricePhotoSlot, in.PricePhoto, raffle.PricePhoto)
	if err != nil {
		return domain.Raffle{}, err
	}
	raffle.PricePhoto = photo

	created, err := s.repo.Create(ctx, raffle)
	if err != nil {
		photos.Rollback(ctx)
		return domain.Raffle{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.cache.ForgetCollection(ctx, cache.KindRaffle)
	s.feed.Publish(domain.Change{Entity: entityRaffle, Action: domain.ChangeCreated, ID: created.ID})

	return created, nil
}

func (s *RaffleService) UpdateRaffle(ctx context.Context, id uint, in domain.RaffleInput) (domain.Raffle, error) {
	raffle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.apply(ctx, &raffle, in); err != nil {
		return domain.Raffle{}, err
	}

	photos := newPhotoChanges(s.media)
	photo, err := photos.Replace(ctx, PricePhotoSlot, in.PricePhoto, raffle.PricePhoto)
	if err != nil {
		return domain.Raffle{}, err
	}
	raffle.PricePhoto = photo

	updated, err := s.repo.Update(ctx, raffle)
	if err != nil {
		photos.Rollback(ctx)
		return domain.Raffle{}, fmt.Errorf("s.repo.Update -> %w", err)
	}
	photos.Commit(ctx)

	s.cache.ForgetRecord(ctx, cache.KindRaffle, id)
	s.feed.Publish(domain.Change{Entity: entityRaffle, Action: domain.ChangeUpdated, ID: id})

	return updated, nil
}

func (s *RaffleService) DeleteRaffle(ctx context.Context, id uint) error {
	raffle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	PricePhotoSlot.Release(ctx, s.media, raffle.PricePhoto)

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	s.cache.ForgetRecord(ctx, cache.KindRaffle, id)
	s.feed.Publish(domain.Change{Entity: entityRaffle, Action: domain.ChangeDeleted, ID: id})

	return nil
}

// apply copies the set fields of in onto raffle after checking the event and winner
// they reference exist. A winner without a name takes the participant's name.
func (s *RaffleService) apply(ctx context.Context, raffle *domain.Raffle, in domain.RaffleInput) error {
	invalid := validation.Errors{}

	if in.EventID != nil {
		if _, err := s.events.FindByID(ctx, *in.EventID); err != nil {
			if !errors.Is(err, ErrEventNotFound) {
				return fmt.Errorf("s.events.FindByID -> %w", err)
			}
			invalid["events_id"] = errSelectionInvalid
		}
	}

	var winner domain.Participant
	if in.WinnerID != nil {
		found, err := s.participants.FindByID(ctx, *in.WinnerID)
		if err != nil {
			if !errors.Is(err, ErrParticipantNotFound) {
				return fmt.Errorf("s.participants.FindByID -> %w", err)
			}
			invalid["winner_id"] = errSelectionInvalid
		}
		winner = found
	}

	if len(invalid) > 0 {
		return invalid
	}

	if in.Name != nil {
		raffle.Name = *in.Name
	}
	if in.IsPlayed != nil {
		raffle.IsPlayed = *in.IsPlayed
	}
	if in.Price != nil {
		raffle.Price = *in.Price
	}
	if in.HasQuestions != nil {
		raffle.HasQuestions = *in.HasQuestions
	}
	if in.EventID != nil {
		raffle.EventID = *in.EventID
	}
	if in.WinnerID != nil {
		raffle.WinnerID = in.WinnerID
		raffle.WinnerName = &winner.Name
	}
	if in.WinnerName != nil {
		raffle.WinnerName = in.WinnerName
	}

	return nil
}
