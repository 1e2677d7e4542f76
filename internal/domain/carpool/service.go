package carpool

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts the carpool and the organiser's intermediary row in one
// transaction: both rows exist afterwards, or neither does.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Carpool, error) {
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive")
	}
	if input.OrganiserID == 0 {
		return nil, fmt.Errorf("organiser is required")
	}

	var result Carpool
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.OrganiserExists(ctx, input.OrganiserID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrOrganiserNotFound
		}

		created := Carpool{
			Capacity:    input.Capacity,
			Origin:      input.Origin,
			Destination: input.Destination,
			Date:        input.Date,
			Depart:      input.Depart,
			Arrive:      input.Arrive,
			OrganiserID: input.OrganiserID,
			State:       input.State,
			Occupancy:   0,
			Roundtrip:   input.Roundtrip,
		}
		if err := tx.Create(ctx, &created); err != nil {
			return err
		}

		member := Intermediary{
			UserID:    input.OrganiserID,
			CarpoolID: created.ID,
		}
		if err := tx.AddIntermediary(ctx, &member); err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) List(ctx context.Context) ([]Detail, error) {
	return s.repo.List(ctx)
}

// ListForUser returns the carpools the user belongs to via intermediary
// rows. A user with no memberships gets an empty slice, not an error.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]Detail, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListIntermediaries(ctx context.Context) ([]Intermediary, error) {
	return s.repo.ListIntermediaries(ctx)
}
