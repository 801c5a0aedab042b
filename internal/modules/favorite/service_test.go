package favorite

import (
	"context"
	"testing"

	"starblog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock stores
type MockFavoriteStore struct {
	mock.Mock
}

func (m *MockFavoriteStore) Create(ctx context.Context, f *domain.Favorite) error {
	args := m.Called(ctx, f)
	if f != nil {
		f.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockFavoriteStore) GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Favorite), args.Error(1)
}

func (m *MockFavoriteStore) DeleteByUserAndTarget(ctx context.Context, userID int64, target domain.FavoriteTarget) (int64, error) {
	args := m.Called(ctx, userID, target)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCharacterStore struct {
	mock.Mock
}

func (m *MockCharacterStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPlanetStore struct {
	mock.Mock
}

func (m *MockPlanetStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newTestService() (*Service, *MockFavoriteStore, *MockUserStore, *MockCharacterStore, *MockPlanetStore) {
	favorites := new(MockFavoriteStore)
	users := new(MockUserStore)
	characters := new(MockCharacterStore)
	planets := new(MockPlanetStore)
	return NewService(favorites, users, characters, planets), favorites, users, characters, planets
}

func TestService_Add_Character_Success(t *testing.T) {
	svc, favorites, users, characters, _ := newTestService()
	ctx := context.Background()

	users.On("ExistsByID", ctx, int64(1)).Return(true, nil)
	characters.On("ExistsByID", ctx, int64(7)).Return(true, nil)
	favorites.On("Create", ctx, mock.AnythingOfType("*domain.Favorite")).Return(nil)

	f, err := svc.Add(ctx, 1, domain.TargetCharacter, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), f.UserID)
	assert.Equal(t, domain.TargetCharacter, f.Target.Kind)
	assert.Equal(t, int64(7), f.Target.ID)
	favorites.AssertExpectations(t)
}

func TestService_Add_UserMissing_NoRowCreated(t *testing.T) {
	svc, favorites, users, _, _ := newTestService()
	ctx := context.Background()

	users.On("ExistsByID", ctx, int64(42)).Return(false, nil)

	_, err := svc.Add(ctx, 42, domain.TargetPlanet, 1)

	assert.ErrorIs(t, err, ErrUserNotFound)
	favorites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Add_CharacterMissing_NoRowCreated(t *testing.T) {
	svc, favorites, users, characters, _ := newTestService()
	ctx := context.Background()

	users.On("ExistsByID", ctx, int64(1)).Return(true, nil)
	characters.On("ExistsByID", ctx, int64(404)).Return(false, nil)

	_, err := svc.Add(ctx, 1, domain.TargetCharacter, 404)

	assert.ErrorIs(t, err, ErrCharacterNotFound)
	favorites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Add_PlanetMissing_NoRowCreated(t *testing.T) {
	svc, favorites, users, _, planets := newTestService()
	ctx := context.Background()

	users.On("ExistsByID", ctx, int64(1)).Return(true, nil)
	planets.On("ExistsByID", ctx, int64(404)).Return(false, nil)

	_, err := svc.Add(ctx, 1, domain.TargetPlanet, 404)

	assert.ErrorIs(t, err, ErrPlanetNotFound)
	favorites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Add_InvalidKind(t *testing.T) {
	svc, favorites, users, _, _ := newTestService()

	_, err := svc.Add(context.Background(), 1, domain.TargetKind("starship"), 1)

	assert.ErrorIs(t, err, domain.ErrInvalidTargetKind)
	users.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
	favorites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Remove_DeletesWholeMatchingSet(t *testing.T) {
	svc, favorites, users, _, _ := newTestService()
	ctx := context.Background()
	target := domain.FavoriteTarget{Kind: domain.TargetPlanet, ID: 3}

	users.On("ExistsByID", ctx, int64(1)).Return(true, nil)
	// duplicates are allowed on insert, so remove may take out several rows
	favorites.On("DeleteByUserAndTarget", ctx, int64(1), target).Return(int64(2), nil)

	deleted, err := svc.Remove(ctx, 1, domain.TargetPlanet, 3)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	favorites.AssertExpectations(t)
}

func TestService_Remove_NoMatch(t *testing.T) {
	svc, favorites, users, _, _ := newTestService()
	ctx := context.Background()
	target := domain.FavoriteTarget{Kind: domain.TargetCharacter, ID: 9}

	users.On("ExistsByID", ctx, int64(1)).Return(true, nil)
	favorites.On("DeleteByUserAndTarget", ctx, int64(1), target).Return(int64(0), nil)

	_, err := svc.Remove(ctx, 1, domain.TargetCharacter, 9)

	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestService_Remove_UserMissing(t *testing.T) {
	svc, favorites, users, _, _ := newTestService()
	ctx := context.Background()

	users.On("ExistsByID", ctx, int64(42)).Return(false, nil)

	_, err := svc.Remove(ctx, 42, domain.TargetCharacter, 1)

	assert.ErrorIs(t, err, ErrUserNotFound)
	favorites.AssertNotCalled(t, "DeleteByUserAndTarget", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_List_UserMissing(t *testing.T) {
	svc, _, users, _, _ := newTestService()
	ctx := context.Background()

	users.On("ExistsByID", ctx, int64(42)).Return(false, nil)

	_, err := svc.List(ctx, 42)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_List_EmptyIsNotAnError(t *testing.T) {
	svc, favorites, users, _, _ := newTestService()
	ctx := context.Background()

	users.On("ExistsByID", ctx, int64(1)).Return(true, nil)
	favorites.On("GetByUserID", ctx, int64(1)).Return([]domain.Favorite{}, nil)

	favs, err := svc.List(ctx, 1)

	assert.NoError(t, err)
	assert.Empty(t, favs)
}

func TestService_List_ReturnsFavorites(t *testing.T) {
	svc, favorites, users, _, _ := newTestService()
	ctx := context.Background()

	stored := []domain.Favorite{
		{ID: 1, UserID: 1, Target: domain.FavoriteTarget{Kind: domain.TargetPlanet, ID: 1}},
		{ID: 2, UserID: 1, Target: domain.FavoriteTarget{Kind: domain.TargetCharacter, ID: 3}},
	}
	users.On("ExistsByID", ctx, int64(1)).Return(true, nil)
	favorites.On("GetByUserID", ctx, int64(1)).Return(stored, nil)

	favs, err := svc.List(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, stored, favs)
}
