package service

import "github.com/vietanh2810/raffles-api/internal/domain"

// Publisher receives a notice after every successful write.
type Publisher interface {
	Publish(change domain.Change)
}

type noopPublisher struct{}

func (noopPublisher) Publish(domain.Change) {}

func publisherOrNoop(p Publisher) Publisher {
	if p == nil {
		return noopPublisher{}
	}

	return p
}
