package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
