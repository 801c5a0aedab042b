package user

import (
	"context"
	"strings"

	"starblog/internal/domain"
	"starblog/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// List returns all users in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAll(ctx)
}

// Create hashes the password and persists a new active user. A uniqueness
// violation on email or name surfaces as the matching conflict error and
// leaves the prior record untouched.
func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if repository.IsUniqueViolation(err) {
			if strings.Contains(strings.ToLower(err.Error()), "email") {
				return nil, ErrEmailTaken
			}
			return nil, ErrNameTaken
		}
		return nil, err
	}

	return u, nil
}
