package repository

import (
	"context"
	"testing"

	"starblog/internal/database"
	"starblog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *domain.User {
	u := &domain.User{Name: name, Email: email, PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCatalog(t *testing.T, db *gorm.DB) (*domain.Character, *domain.Planet) {
	c := &domain.Character{Name: "Luke Skywalker", Gender: "male", Height: 172, HairColor: "blond"}
	require.NoError(t, db.Create(c).Error)
	p := &domain.Planet{Name: "Tatooine", Climate: "arid", Diameter: 10465, Terrain: "desert"}
	require.NoError(t, db.Create(p).Error)
	return c, p
}

func TestFavoriteRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewFavoriteRepository(db)

	u := seedUser(t, db, "luke", "luke@rebellion.org")
	c, p := seedCatalog(t, db)

	planetFav, err := domain.NewFavorite(u.ID, domain.TargetPlanet, p.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, planetFav))
	assert.NotZero(t, planetFav.ID)

	characterFav, err := domain.NewFavorite(u.ID, domain.TargetCharacter, c.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, characterFav))

	favs, err := repo.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, favs, 2)

	// insertion order preserved, and each row carries exactly its own target
	assert.Equal(t, domain.TargetPlanet, favs[0].Target.Kind)
	assert.Equal(t, p.ID, favs[0].Target.ID)
	assert.Equal(t, domain.TargetCharacter, favs[1].Target.Kind)
	assert.Equal(t, c.ID, favs[1].Target.ID)
}

func TestFavoriteRepository_DuplicatesAllowed(t *testing.T) {
	// current behavior inherited from the source schema: nothing stops the
	// same (user, target) pair from being linked twice
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewFavoriteRepository(db)

	u := seedUser(t, db, "luke", "luke@rebellion.org")
	_, p := seedCatalog(t, db)

	for i := 0; i < 2; i++ {
		f, err := domain.NewFavorite(u.ID, domain.TargetPlanet, p.ID)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, f))
	}

	favs, err := repo.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, favs, 2)
}

func TestFavoriteRepository_DeleteRemovesWholeSet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewFavoriteRepository(db)

	u := seedUser(t, db, "luke", "luke@rebellion.org")
	c, p := seedCatalog(t, db)

	for i := 0; i < 2; i++ {
		f, err := domain.NewFavorite(u.ID, domain.TargetPlanet, p.ID)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, f))
	}
	keep, err := domain.NewFavorite(u.ID, domain.TargetCharacter, c.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, keep))

	deleted, err := repo.DeleteByUserAndTarget(ctx, u.ID, domain.FavoriteTarget{Kind: domain.TargetPlanet, ID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	favs, err := repo.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, domain.TargetCharacter, favs[0].Target.Kind)
}

func TestFavoriteRepository_DeleteNoMatch(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewFavoriteRepository(db)

	u := seedUser(t, db, "luke", "luke@rebellion.org")

	deleted, err := repo.DeleteByUserAndTarget(ctx, u.ID, domain.FavoriteTarget{Kind: domain.TargetCharacter, ID: 99})
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestFavoriteRepository_InvalidKind(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)

	_, err := repo.DeleteByUserAndTarget(context.Background(), 1, domain.FavoriteTarget{Kind: "starship", ID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidTargetKind)
}
