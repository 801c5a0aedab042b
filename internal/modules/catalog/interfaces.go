package catalog

import (
	"context"

	"starblog/internal/domain"
)

type CharacterStore interface {
	GetAll(ctx context.Context) ([]domain.Character, error)
	GetByID(ctx context.Context, id int64) (*domain.Character, error)
}

type PlanetStore interface {
	GetAll(ctx context.Context) ([]domain.Planet, error)
	GetByID(ctx context.Context, id int64) (*domain.Planet, error)
}
