package domain

// Character is a read-only catalog entity. No create/update/delete endpoint
// exists for it.
type Character struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"uniqueIndex;not null"`
	Gender    string `json:"gender" gorm:"not null"`
	Height    int    `json:"height" gorm:"not null"`
	HairColor string `json:"hair_color" gorm:"not null"`
}

func (Character) TableName() string { return "characters" }
