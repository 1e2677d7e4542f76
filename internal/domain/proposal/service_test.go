package proposal

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type fakeSeat struct {
	occupancy int
	capacity  int
}

type fakeProposalRepo struct {
	proposals   []Proposal
	memberships map[[2]uint]bool
	seats       map[uint]*fakeSeat
	nextID      uint
}

func newFakeProposalRepo() *fakeProposalRepo {
	return &fakeProposalRepo{
		memberships: make(map[[2]uint]bool),
		seats:       make(map[uint]*fakeSeat),
	}
}

func (r *fakeProposalRepo) addCarpool(id uint, capacity int) {
	r.seats[id] = &fakeSeat{capacity: capacity}
}

func (r *fakeProposalRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	proposals := append([]Proposal(nil), r.proposals...)
	memberships := make(map[[2]uint]bool, len(r.memberships))
	for k, v := range r.memberships {
		memberships[k] = v
	}
	seats := make(map[uint]*fakeSeat, len(r.seats))
	for k, v := range r.seats {
		copied := *v
		seats[k] = &copied
	}

	if err := fn(r); err != nil {
		r.proposals = proposals
		r.memberships = memberships
		r.seats = seats
		return err
	}
	return nil
}

func (r *fakeProposalRepo) Create(ctx context.Context, proposal *Proposal) error {
	r.nextID++
	proposal.ID = r.nextID
	r.proposals = append(r.proposals, *proposal)
	return nil
}

func (r *fakeProposalRepo) GetByUserAndCarpool(ctx context.Context, userID, carpoolID uint) (*Proposal, error) {
	for _, p := range r.proposals {
		if p.UserID == userID && p.CarpoolID == carpoolID {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProposalNotFound
}

func (r *fakeProposalRepo) ListByUser(ctx context.Context, userID uint) ([]Proposal, error) {
	proposals := make([]Proposal, 0)
	for _, p := range r.proposals {
		if p.UserID == userID {
			proposals = append(proposals, p)
		}
	}
	sort.SliceStable(proposals, func(i, j int) bool { return proposals[i].Cost < proposals[j].Cost })
	return proposals, nil
}

func (r *fakeProposalRepo) MarkAccepted(ctx context.Context, proposalID uint) error {
	for i := range r.proposals {
		if r.proposals[i].ID == proposalID {
			accepted := AcceptedYes
			r.proposals[i].Accepted = &accepted
			return nil
		}
	}
	return ErrProposalNotFound
}

func (r *fakeProposalRepo) HasMembership(ctx context.Context, userID, carpoolID uint) (bool, error) {
	return r.memberships[[2]uint{userID, carpoolID}], nil
}

func (r *fakeProposalRepo) AddMembership(ctx context.Context, userID, carpoolID uint) error {
	r.memberships[[2]uint{userID, carpoolID}] = true
	return nil
}

func (r *fakeProposalRepo) ReserveSeat(ctx context.Context, carpoolID uint) (bool, error) {
	seat, ok := r.seats[carpoolID]
	if !ok || seat.occupancy >= seat.capacity {
		return false, nil
	}
	seat.occupancy++
	return true, nil
}

func TestAccept(t *testing.T) {
	repo := newFakeProposalRepo()
	repo.addCarpool(1, 4)
	service := NewService(repo)

	if _, err := service.Create(context.Background(), CreateInput{UserID: 2, CarpoolID: 1, Cost: 5.5, Separation: 3}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := service.Accept(context.Background(), 2, 1); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if !repo.proposals[0].IsAccepted() {
		t.Fatal("proposal not marked accepted")
	}
	if !repo.memberships[[2]uint{2, 1}] {
		t.Fatal("membership row not created on accept")
	}
	if repo.seats[1].occupancy != 1 {
		t.Fatalf("expected occupancy 1, got %d", repo.seats[1].occupancy)
	}
}

func TestAcceptIdempotent(t *testing.T) {
	repo := newFakeProposalRepo()
	repo.addCarpool(1, 4)
	service := NewService(repo)

	if _, err := service.Create(context.Background(), CreateInput{UserID: 2, CarpoolID: 1, Cost: 5.5}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := service.Accept(context.Background(), 2, 1); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	if err := service.Accept(context.Background(), 2, 1); err != nil {
		t.Fatalf("second accept: %v", err)
	}

	if !repo.proposals[0].IsAccepted() {
		t.Fatal("proposal not accepted")
	}
	if repo.seats[1].occupancy != 1 {
		t.Fatalf("second accept must not take another seat, occupancy %d", repo.seats[1].occupancy)
	}
}

func TestAcceptNotFound(t *testing.T) {
	repo := newFakeProposalRepo()
	repo.addCarpool(1, 4)
	service := NewService(repo)

	err := service.Accept(context.Background(), 2, 1)
	if !errors.Is(err, ErrProposalNotFound) {
		t.Fatalf("expected ErrProposalNotFound, got %v", err)
	}
}

func TestAcceptFullCarpool(t *testing.T) {
	repo := newFakeProposalRepo()
	repo.addCarpool(1, 1)
	service := NewService(repo)

	if _, err := service.Create(context.Background(), CreateInput{UserID: 2, CarpoolID: 1, Cost: 5.5}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := service.Create(context.Background(), CreateInput{UserID: 3, CarpoolID: 1, Cost: 6.0}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	if err := service.Accept(context.Background(), 2, 1); err != nil {
		t.Fatalf("accept into free seat: %v", err)
	}

	err := service.Accept(context.Background(), 3, 1)
	if !errors.Is(err, ErrCarpoolFull) {
		t.Fatalf("expected ErrCarpoolFull, got %v", err)
	}

	// The failed accept rolls back entirely: flag unset, no membership.
	second, getErr := repo.GetByUserAndCarpool(context.Background(), 3, 1)
	if getErr != nil {
		t.Fatalf("get second proposal: %v", getErr)
	}
	if second.IsAccepted() {
		t.Fatal("rejected accept left proposal marked accepted")
	}
	if repo.memberships[[2]uint{3, 1}] {
		t.Fatal("rejected accept left a membership row")
	}
	if repo.seats[1].occupancy != 1 {
		t.Fatalf("expected occupancy 1, got %d", repo.seats[1].occupancy)
	}
}

func TestListForUserSortedByCost(t *testing.T) {
	repo := newFakeProposalRepo()
	repo.addCarpool(1, 4)
	repo.addCarpool(2, 4)
	repo.addCarpool(3, 4)
	service := NewService(repo)

	for carpoolID, cost := range map[uint]float64{1: 9.75, 2: 2.5, 3: 4.0} {
		if _, err := service.Create(context.Background(), CreateInput{UserID: 7, CarpoolID: carpoolID, Cost: cost}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	proposals, err := service.ListForUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(proposals) != 3 {
		t.Fatalf("expected 3 proposals, got %d", len(proposals))
	}
	for i := 1; i < len(proposals); i++ {
		if proposals[i].Cost < proposals[i-1].Cost {
			t.Fatalf("costs not non-decreasing: %v", proposals)
		}
	}
}
