// Package inmemory provides map-backed repository implementations used by
// tests and local development. A single DB instance backs all repositories
// so cross-entity operations (memberships, seat reservation) observe the
// same state, and transactions roll back via whole-store snapshots.
package inmemory

import (
	"sync"

	carpooldomain "carpooling-go/internal/domain/carpool"
	proposaldomain "carpooling-go/internal/domain/proposal"
	userdomain "carpooling-go/internal/domain/user"
)

type DB struct {
	mu             sync.Mutex
	users          map[uint]userdomain.User
	carpools       map[uint]carpooldomain.Carpool
	intermediaries map[uint]carpooldomain.Intermediary
	proposals      map[uint]proposaldomain.Proposal

	nextUserID         uint
	nextCarpoolID      uint
	nextIntermediaryID uint
	nextProposalID     uint
}

func NewDB() *DB {
	return &DB{
		users:          make(map[uint]userdomain.User),
		carpools:       make(map[uint]carpooldomain.Carpool),
		intermediaries: make(map[uint]carpooldomain.Intermediary),
		proposals:      make(map[uint]proposaldomain.Proposal),
	}
}

type snapshot struct {
	users          map[uint]userdomain.User
	carpools       map[uint]carpooldomain.Carpool
	intermediaries map[uint]carpooldomain.Intermediary
	proposals      map[uint]proposaldomain.Proposal

	nextUserID         uint
	nextCarpoolID      uint
	nextIntermediaryID uint
	nextProposalID     uint
}

func (d *DB) takeSnapshot() snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return snapshot{
		users:              copyMap(d.users),
		carpools:           copyMap(d.carpools),
		intermediaries:     copyMap(d.intermediaries),
		proposals:          copyMap(d.proposals),
		nextUserID:         d.nextUserID,
		nextCarpoolID:      d.nextCarpoolID,
		nextIntermediaryID: d.nextIntermediaryID,
		nextProposalID:     d.nextProposalID,
	}
}

func (d *DB) restore(s snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.users = s.users
	d.carpools = s.carpools
	d.intermediaries = s.intermediaries
	d.proposals = s.proposals
	d.nextUserID = s.nextUserID
	d.nextCarpoolID = s.nextCarpoolID
	d.nextIntermediaryID = s.nextIntermediaryID
	d.nextProposalID = s.nextProposalID
}

// transact runs fn and restores the pre-fn state when fn fails.
func (d *DB) transact(fn func() error) error {
	before := d.takeSnapshot()
	if err := fn(); err != nil {
		d.restore(before)
		return err
	}
	return nil
}

func copyMap[V any](src map[uint]V) map[uint]V {
	dst := make(map[uint]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
