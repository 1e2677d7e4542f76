package inmemory

import (
	"context"
	"sort"

	carpooldomain "carpooling-go/internal/domain/carpool"
	proposaldomain "carpooling-go/internal/domain/proposal"
)

type ProposalRepository struct {
	db *DB
}

func NewProposalRepository(db *DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

func (r *ProposalRepository) Transaction(ctx context.Context, fn func(proposaldomain.Repository) error) error {
	return r.db.transact(func() error {
		return fn(r)
	})
}

func (r *ProposalRepository) Create(ctx context.Context, proposal *proposaldomain.Proposal) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.nextProposalID++
	proposal.ID = r.db.nextProposalID
	r.db.proposals[proposal.ID] = *proposal
	return nil
}

func (r *ProposalRepository) GetByUserAndCarpool(ctx context.Context, userID, carpoolID uint) (*proposaldomain.Proposal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var found *proposaldomain.Proposal
	for _, p := range r.db.proposals {
		if p.UserID != userID || p.CarpoolID != carpoolID {
			continue
		}
		if found == nil || p.ID < found.ID {
			copied := p
			found = &copied
		}
	}
	if found == nil {
		return nil, proposaldomain.ErrProposalNotFound
	}
	return found, nil
}

func (r *ProposalRepository) ListByUser(ctx context.Context, userID uint) ([]proposaldomain.Proposal, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	proposals := make([]proposaldomain.Proposal, 0)
	for _, p := range r.db.proposals {
		if p.UserID == userID {
			proposals = append(proposals, p)
		}
	}
	sort.Slice(proposals, func(i, j int) bool {
		if proposals[i].Cost != proposals[j].Cost {
			return proposals[i].Cost < proposals[j].Cost
		}
		return proposals[i].ID < proposals[j].ID
	})
	return proposals, nil
}

func (r *ProposalRepository) MarkAccepted(ctx context.Context, proposalID uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	found, ok := r.db.proposals[proposalID]
	if !ok {
		return proposaldomain.ErrProposalNotFound
	}
	accepted := proposaldomain.AcceptedYes
	found.Accepted = &accepted
	r.db.proposals[proposalID] = found
	return nil
}

func (r *ProposalRepository) HasMembership(ctx context.Context, userID, carpoolID uint) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, intermediary := range r.db.intermediaries {
		if intermediary.UserID == userID && intermediary.CarpoolID == carpoolID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ProposalRepository) AddMembership(ctx context.Context, userID, carpoolID uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.nextIntermediaryID++
	r.db.intermediaries[r.db.nextIntermediaryID] = carpooldomain.Intermediary{
		ID:        r.db.nextIntermediaryID,
		UserID:    userID,
		CarpoolID: carpoolID,
	}
	return nil
}

func (r *ProposalRepository) ReserveSeat(ctx context.Context, carpoolID uint) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	found, ok := r.db.carpools[carpoolID]
	if !ok || found.Occupancy >= found.Capacity {
		return false, nil
	}
	found.Occupancy++
	r.db.carpools[carpoolID] = found
	return true, nil
}
