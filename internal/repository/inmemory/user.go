package inmemory

import (
	"context"
	"sort"
	"time"

	userdomain "carpooling-go/internal/domain/user"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *userdomain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.users {
		if existing.Email == user.Email {
			return userdomain.ErrEmailTaken
		}
	}

	r.db.nextUserID++
	user.ID = r.db.nextUserID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.db.users[user.ID] = *user
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]userdomain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	users := make([]userdomain.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*userdomain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	found, ok := r.db.users[id]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return &found, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.users {
		if existing.Email == email {
			return true, nil
		}
	}
	return false, nil
}
