package domain

import "time"

// User is the only entity with a create endpoint; characters and planets
// are loaded out of band by cmd/seed.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;not null"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"-" gorm:"autoCreateTime"`
}

// TableName keeps the singular table name of the original schema.
func (User) TableName() string { return "user" }
