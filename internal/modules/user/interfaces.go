package user

import (
	"context"

	"starblog/internal/domain"
)

// UserStore is the persistence contract for user rows.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetAll(ctx context.Context) ([]domain.User, error)
}
