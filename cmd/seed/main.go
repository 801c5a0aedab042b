package main

import (
	"log"

	"starblog/internal/config"
	"starblog/internal/database"
	"starblog/internal/domain"
	"starblog/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Characters and planets have no create endpoint; this is how they get into
// the store.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	if err := repository.Reset(db); err != nil {
		log.Fatal("cleanup failed:", err)
	}

	log.Println("Creating characters...")
	characters := []domain.Character{
		{Name: "Luke Skywalker", Gender: "male", Height: 172, HairColor: "blond"},
		{Name: "Leia Organa", Gender: "female", Height: 150, HairColor: "brown"},
		{Name: "Han Solo", Gender: "male", Height: 180, HairColor: "brown"},
		{Name: "Chewbacca", Gender: "male", Height: 228, HairColor: "brown"},
		{Name: "Obi-Wan Kenobi", Gender: "male", Height: 182, HairColor: "auburn"},
	}
	for i := range characters {
		if err := db.Create(&characters[i]).Error; err != nil {
			log.Fatal("character seed failed:", err)
		}
	}

	log.Println("Creating planets...")
	planets := []domain.Planet{
		{Name: "Tatooine", Climate: "arid", Diameter: 10465, Terrain: "desert"},
		{Name: "Alderaan", Climate: "temperate", Diameter: 12500, Terrain: "grasslands"},
		{Name: "Hoth", Climate: "frozen", Diameter: 7200, Terrain: "tundra"},
		{Name: "Dagobah", Climate: "murky", Diameter: 8900, Terrain: "swamp"},
	}
	for i := range planets {
		if err := db.Create(&planets[i]).Error; err != nil {
			log.Fatal("planet seed failed:", err)
		}
	}

	log.Println("Creating demo users...")
	for _, u := range []struct{ name, email, password string }{
		{"luke", "luke@rebellion.org", "usetheforce"},
		{"leia", "leia@rebellion.org", "alderaan123"},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("hash failed:", err)
		}
		user := domain.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatal("user seed failed:", err)
		}
		log.Printf("User created: %s / %s", u.email, u.password)
	}

	log.Println("Seed complete")
}
