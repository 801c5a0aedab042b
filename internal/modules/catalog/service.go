package catalog

import (
	"context"
	"errors"

	"starblog/internal/domain"

	"gorm.io/gorm"
)

// Service serves the read-only character and planet catalog.
type Service struct {
	characters CharacterStore
	planets    PlanetStore
}

func NewService(characters CharacterStore, planets PlanetStore) *Service {
	return &Service{
		characters: characters,
		planets:    planets,
	}
}

func (s *Service) Characters(ctx context.Context) ([]domain.Character, error) {
	return s.characters.GetAll(ctx)
}

func (s *Service) CharacterByID(ctx context.Context, id int64) (*domain.Character, error) {
	c, err := s.characters.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Planets(ctx context.Context) ([]domain.Planet, error) {
	return s.planets.GetAll(ctx)
}

func (s *Service) PlanetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	p, err := s.planets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanetNotFound
		}
		return nil, err
	}
	return p, nil
}
