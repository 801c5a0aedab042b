package domain

// Planet is a read-only catalog entity, same as Character.
type Planet struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Climate  string `json:"climate" gorm:"not null"`
	Diameter int    `json:"diameter" gorm:"not null"`
	Terrain  string `json:"terrain" gorm:"not null"`
}

func (Planet) TableName() string { return "planets" }
