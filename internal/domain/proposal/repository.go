package proposal

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, proposal *Proposal) error
	GetByUserAndCarpool(ctx context.Context, userID, carpoolID uint) (*Proposal, error)
	ListByUser(ctx context.Context, userID uint) ([]Proposal, error)
	MarkAccepted(ctx context.Context, proposalID uint) error
	HasMembership(ctx context.Context, userID, carpoolID uint) (bool, error)
	AddMembership(ctx context.Context, userID, carpoolID uint) error
	// ReserveSeat increments the carpool occupancy counter only while a
	// seat remains; it reports whether a seat was taken.
	ReserveSeat(ctx context.Context, carpoolID uint) (bool, error)
}
