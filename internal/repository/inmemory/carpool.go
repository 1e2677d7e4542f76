package inmemory

import (
	"context"
	"sort"

	carpooldomain "carpooling-go/internal/domain/carpool"
)

type CarpoolRepository struct {
	db *DB
}

func NewCarpoolRepository(db *DB) *CarpoolRepository {
	return &CarpoolRepository{db: db}
}

func (r *CarpoolRepository) Transaction(ctx context.Context, fn func(carpooldomain.Repository) error) error {
	return r.db.transact(func() error {
		return fn(r)
	})
}

func (r *CarpoolRepository) Create(ctx context.Context, carpool *carpooldomain.Carpool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.nextCarpoolID++
	carpool.ID = r.db.nextCarpoolID
	r.db.carpools[carpool.ID] = *carpool
	return nil
}

func (r *CarpoolRepository) AddIntermediary(ctx context.Context, intermediary *carpooldomain.Intermediary) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.nextIntermediaryID++
	intermediary.ID = r.db.nextIntermediaryID
	r.db.intermediaries[intermediary.ID] = *intermediary
	return nil
}

func (r *CarpoolRepository) List(ctx context.Context) ([]carpooldomain.Detail, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.detailsLocked(func(carpooldomain.Carpool) bool { return true }), nil
}

func (r *CarpoolRepository) ListByUser(ctx context.Context, userID uint) ([]carpooldomain.Detail, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	member := make(map[uint]bool)
	for _, intermediary := range r.db.intermediaries {
		if intermediary.UserID == userID {
			member[intermediary.CarpoolID] = true
		}
	}

	return r.detailsLocked(func(c carpooldomain.Carpool) bool { return member[c.ID] }), nil
}

func (r *CarpoolRepository) ListIntermediaries(ctx context.Context) ([]carpooldomain.Intermediary, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	intermediaries := make([]carpooldomain.Intermediary, 0, len(r.db.intermediaries))
	for _, intermediary := range r.db.intermediaries {
		intermediaries = append(intermediaries, intermediary)
	}
	sort.Slice(intermediaries, func(i, j int) bool { return intermediaries[i].ID < intermediaries[j].ID })
	return intermediaries, nil
}

func (r *CarpoolRepository) OrganiserExists(ctx context.Context, userID uint) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	_, ok := r.db.users[userID]
	return ok, nil
}

func (r *CarpoolRepository) detailsLocked(include func(carpooldomain.Carpool) bool) []carpooldomain.Detail {
	details := make([]carpooldomain.Detail, 0)
	for _, c := range r.db.carpools {
		if !include(c) {
			continue
		}
		name := ""
		if organiser, ok := r.db.users[c.OrganiserID]; ok {
			name = organiser.FullName()
		}
		details = append(details, carpooldomain.Detail{Carpool: c, OrganiserName: name})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].ID < details[j].ID })
	return details
}
