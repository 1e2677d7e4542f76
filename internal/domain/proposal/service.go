package proposal

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

func (s *Service) Create(ctx context.Context, input CreateInput) (*Proposal, error) {
	if input.UserID == 0 || input.CarpoolID == 0 {
		return nil, fmt.Errorf("uid and cid are required")
	}

	created := Proposal{
		UserID:     input.UserID,
		CarpoolID:  input.CarpoolID,
		Cost:       input.Cost,
		Separation: input.Separation,
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// Accept marks the proposal for (userID, carpoolID) as accepted, confirms
// the rider's intermediary membership, and takes one seat through a
// capacity-guarded occupancy update. Accepting an already-accepted
// proposal succeeds without further effects.
func (s *Service) Accept(ctx context.Context, userID, carpoolID uint) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		found, err := tx.GetByUserAndCarpool(ctx, userID, carpoolID)
		if err != nil {
			return err
		}
		if found.IsAccepted() {
			return nil
		}

		if err := tx.MarkAccepted(ctx, found.ID); err != nil {
			return err
		}

		member, err := tx.HasMembership(ctx, userID, carpoolID)
		if err != nil {
			return err
		}
		if member {
			return nil
		}

		reserved, err := tx.ReserveSeat(ctx, carpoolID)
		if err != nil {
			return err
		}
		if !reserved {
			return ErrCarpoolFull
		}

		return tx.AddMembership(ctx, userID, carpoolID)
	})
}

// ListForUser returns the user's proposals ordered by ascending cost.
// Separation is stored and returned but deliberately not part of the
// ordering; see DESIGN.md.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]Proposal, error) {
	return s.repo.ListByUser(ctx, userID)
}
