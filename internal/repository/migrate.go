package repository

import (
	"starblog/internal/domain"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the four tables of the schema:
// user, characters, planets, favorites.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Character{},
		&domain.Planet{},
		&favoriteModel{},
	)
}

// Reset empties all tables in FK-safe order. Deleting through the models
// lets gorm quote the table names per dialect ("user" is reserved in
// Postgres). Used by the seed tool.
func Reset(db *gorm.DB) error {
	wipe := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{
		&favoriteModel{},
		&domain.Character{},
		&domain.Planet{},
		&domain.User{},
	} {
		if err := wipe.Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
