package repository

import (
	"context"

	"starblog/internal/domain"

	"gorm.io/gorm"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) GetAll(ctx context.Context) ([]domain.Character, error) {
	var characters []domain.Character
	err := r.db.WithContext(ctx).Order("id ASC").Find(&characters).Error
	return characters, err
}

func (r *CharacterRepository) GetByID(ctx context.Context, id int64) (*domain.Character, error) {
	var c domain.Character
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CharacterRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Character{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
