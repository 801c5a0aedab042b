package repository

import (
	"context"
	"fmt"
	"time"

	"starblog/internal/domain"

	"gorm.io/gorm"
)

// favoriteModel is the stored shape of a favorite: one row with two nullable
// FK columns, exactly one of which is set. The domain type is a tagged union;
// the mapping lives here so nothing outside the store sees the dual-column row.
type favoriteModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	UserID       int64     `gorm:"column:user_id;not null;index"`
	CharactersID *int64    `gorm:"column:characters_id;index"`
	PlanetsID    *int64    `gorm:"column:planets_id;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`

	// Virtual fields so AutoMigrate emits the FK constraints; never preloaded.
	User      *domain.User      `gorm:"foreignKey:UserID"`
	Character *domain.Character `gorm:"foreignKey:CharactersID"`
	Planet    *domain.Planet    `gorm:"foreignKey:PlanetsID"`
}

func (favoriteModel) TableName() string { return "favorites" }

func toFavoriteModel(f *domain.Favorite) favoriteModel {
	m := favoriteModel{
		ID:        f.ID,
		UserID:    f.UserID,
		CreatedAt: f.CreatedAt,
	}
	id := f.Target.ID
	switch f.Target.Kind {
	case domain.TargetCharacter:
		m.CharactersID = &id
	case domain.TargetPlanet:
		m.PlanetsID = &id
	}
	return m
}

func toDomainFavorite(m favoriteModel) (*domain.Favorite, error) {
	var target domain.FavoriteTarget
	switch {
	case m.CharactersID != nil:
		target = domain.FavoriteTarget{Kind: domain.TargetCharacter, ID: *m.CharactersID}
	case m.PlanetsID != nil:
		target = domain.FavoriteTarget{Kind: domain.TargetPlanet, ID: *m.PlanetsID}
	default:
		return nil, fmt.Errorf("favorite row %d has no target", m.ID)
	}

	return &domain.Favorite{
		ID:        m.ID,
		UserID:    m.UserID,
		Target:    target,
		CreatedAt: m.CreatedAt,
	}, nil
}

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts one favorite row. The insert runs inside a transaction so
// a failed commit leaves no partial row. Duplicate (user, target) pairs are
// not rejected here; the schema carries no uniqueness constraint on them.
func (r *FavoriteRepository) Create(ctx context.Context, f *domain.Favorite) error {
	m := toFavoriteModel(f)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&m).Error
	})
	if err != nil {
		return err
	}

	f.ID = m.ID
	f.CreatedAt = m.CreatedAt
	return nil
}

// GetByUserID returns the user's favorites in insertion order.
func (r *FavoriteRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var models []favoriteModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	favorites := make([]domain.Favorite, 0, len(models))
	for _, m := range models {
		f, err := toDomainFavorite(m)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, *f)
	}
	return favorites, nil
}

// DeleteByUserAndTarget removes every row matching the (user, kind, target)
// triple as one atomic batch and returns how many rows went away. Callers
// cannot target an individual duplicate row, only the whole matching set.
func (r *FavoriteRepository) DeleteByUserAndTarget(ctx context.Context, userID int64, target domain.FavoriteTarget) (int64, error) {
	column, err := targetColumn(target.Kind)
	if err != nil {
		return 0, err
	}

	var deleted int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND "+column+" = ?", userID, target.ID).
			Delete(&favoriteModel{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func targetColumn(kind domain.TargetKind) (string, error) {
	switch kind {
	case domain.TargetCharacter:
		return "characters_id", nil
	case domain.TargetPlanet:
		return "planets_id", nil
	default:
		return "", domain.ErrInvalidTargetKind
	}
}
