package repository

import (
	"context"

	"starblog/internal/domain"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) GetAll(ctx context.Context) ([]domain.Planet, error) {
	var planets []domain.Planet
	err := r.db.WithContext(ctx).Order("id ASC").Find(&planets).Error
	return planets, err
}

func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	var p domain.Planet
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlanetRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Planet{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
