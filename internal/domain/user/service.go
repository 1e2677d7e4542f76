package user

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a user. The email pre-check is advisory; the unique
// index on users.email is what makes a duplicate lose the race, and the
// repository maps that storage error to ErrEmailTaken as well.
func (s *Service) Register(ctx context.Context, email, forename, surname, department string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	forename = strings.TrimSpace(forename)
	surname = strings.TrimSpace(surname)
	if forename == "" || surname == "" {
		return nil, fmt.Errorf("forename and surname are required")
	}

	taken, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	created := User{
		Email:      email,
		Forename:   forename,
		Surname:    surname,
		Department: strings.TrimSpace(department),
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
