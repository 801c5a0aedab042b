package favorite

import (
	"context"

	"starblog/internal/domain"
)

// FavoriteStore is the persistence contract for favorite rows.
type FavoriteStore interface {
	Create(ctx context.Context, f *domain.Favorite) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error)
	DeleteByUserAndTarget(ctx context.Context, userID int64, target domain.FavoriteTarget) (int64, error)
}

// UserStore answers referential checks against the user table.
type UserStore interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// CharacterStore answers referential checks against the characters table.
type CharacterStore interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// PlanetStore answers referential checks against the planets table.
type PlanetStore interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
