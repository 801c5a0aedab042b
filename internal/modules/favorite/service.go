package favorite

import (
	"context"

	"starblog/internal/domain"
)

// Service owns the favorites relationship rules: referential existence of
// the user and the target before linking, and set-deletion by the
// (user, kind, target) triple.
type Service struct {
	favorites  FavoriteStore
	users      UserStore
	characters CharacterStore
	planets    PlanetStore
}

func NewService(favorites FavoriteStore, users UserStore, characters CharacterStore, planets PlanetStore) *Service {
	return &Service{
		favorites:  favorites,
		users:      users,
		characters: characters,
		planets:    planets,
	}
}

// List returns the user's favorites in insertion order. A user with no
// favorites gets an empty slice, not an error; a missing user gets
// ErrUserNotFound. The two outcomes are deliberately distinct.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	ok, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	return s.favorites.GetByUserID(ctx, userID)
}

// Add links userID to one character or planet. Both ends are checked before
// the insert; no row is written when either check fails. Duplicate links are
// allowed (the schema has no uniqueness constraint on the pair).
func (s *Service) Add(ctx context.Context, userID int64, kind domain.TargetKind, targetID int64) (*domain.Favorite, error) {
	f, err := domain.NewFavorite(userID, kind, targetID)
	if err != nil {
		return nil, err
	}

	ok, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	if err := s.targetExists(ctx, f.Target); err != nil {
		return nil, err
	}

	if err := s.favorites.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Remove deletes every favorite matching the (user, kind, target) triple as
// one atomic batch. Zero matches is ErrFavoriteNotFound and nothing changes.
func (s *Service) Remove(ctx context.Context, userID int64, kind domain.TargetKind, targetID int64) (int64, error) {
	f, err := domain.NewFavorite(userID, kind, targetID)
	if err != nil {
		return 0, err
	}

	ok, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrUserNotFound
	}

	deleted, err := s.favorites.DeleteByUserAndTarget(ctx, userID, f.Target)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrFavoriteNotFound
	}
	return deleted, nil
}

func (s *Service) targetExists(ctx context.Context, target domain.FavoriteTarget) error {
	switch target.Kind {
	case domain.TargetCharacter:
		ok, err := s.characters.ExistsByID(ctx, target.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCharacterNotFound
		}
	case domain.TargetPlanet:
		ok, err := s.planets.ExistsByID(ctx, target.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPlanetNotFound
		}
	}
	return nil
}
