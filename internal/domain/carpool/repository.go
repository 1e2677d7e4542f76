package carpool

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, carpool *Carpool) error
	AddIntermediary(ctx context.Context, intermediary *Intermediary) error
	List(ctx context.Context) ([]Detail, error)
	ListByUser(ctx context.Context, userID uint) ([]Detail, error)
	ListIntermediaries(ctx context.Context) ([]Intermediary, error)
	OrganiserExists(ctx context.Context, userID uint) (bool, error)
}
