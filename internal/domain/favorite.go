package domain

import (
	"errors"
	"time"
)

// TargetKind says which entity type a favorite points to.
type TargetKind string

const (
	TargetCharacter TargetKind = "character"
	TargetPlanet    TargetKind = "planet"
)

var ErrInvalidTargetKind = errors.New("invalid favorite target kind")

// FavoriteTarget identifies exactly one character or one planet.
type FavoriteTarget struct {
	Kind TargetKind
	ID   int64
}

// Favorite links a user to one target. The stored row keeps two nullable
// FK columns (characters_id / planets_id); this type makes the one-target
// rule structural instead of advisory. Identity for delete purposes is the
// (user, kind, target) triple, never the row id.
type Favorite struct {
	ID        int64
	UserID    int64
	Target    FavoriteTarget
	CreatedAt time.Time
}

// NewFavorite is the only constructor; it rejects unknown target kinds so a
// Favorite can never carry zero or two targets.
func NewFavorite(userID int64, kind TargetKind, targetID int64) (*Favorite, error) {
	switch kind {
	case TargetCharacter, TargetPlanet:
	default:
		return nil, ErrInvalidTargetKind
	}
	return &Favorite{
		UserID: userID,
		Target: FavoriteTarget{Kind: kind, ID: targetID},
	}, nil
}
