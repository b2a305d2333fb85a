package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"filmhub/internal/http-api/apperr"
	"filmhub/internal/http-api/authz"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

var (
	testCaller = authz.Caller{UserID: "user-1", Authenticated: true}
	testFilm   = &models.Film{ID: 42, UserID: "owner-1", Name: "Test Film"}
)

func TestToggle_ActivatesWhenAbsent(t *testing.T) {
	repo := new(MockEngagementRepo)
	filmRepo := new(MockFilmRepo)
	svc := NewEngagementService(repo, filmRepo)

	filmRepo.On("GetByID", mock.Anything, int64(42)).Return(testFilm, nil)
	repo.On("State", mock.Anything, models.RelationLike, "user-1", int64(42)).Return(repository.RelationAbsent, nil)
	repo.On("Create", mock.Anything, models.RelationLike, "user-1", int64(42)).Return(nil)

	outcome, err := svc.Toggle(context.Background(), testCaller, models.RelationLike, 42)

	assert.NoError(t, err)
	assert.Equal(t, "liked", outcome)
	repo.AssertExpectations(t)
}

func TestToggle_DeactivatesWhenActive(t *testing.T) {
	repo := new(MockEngagementRepo)
	filmRepo := new(MockFilmRepo)
	svc := NewEngagementService(repo, filmRepo)

	filmRepo.On("GetByID", mock.Anything, int64(42)).Return(testFilm, nil)
	repo.On("State", mock.Anything, models.RelationFavorite, "user-1", int64(42)).Return(repository.RelationActive, nil)
	repo.On("Delete", mock.Anything, models.RelationFavorite, "user-1", int64(42)).Return(nil)

	outcome, err := svc.Toggle(context.Background(), testCaller, models.RelationFavorite, 42)

	assert.NoError(t, err)
	assert.Equal(t, "removed from favorites", outcome)
	repo.AssertExpectations(t)
}

func TestToggle_ReactivatesLegacyInactiveRow(t *testing.T) {
	repo := new(MockEngagementRepo)
	filmRepo := new(MockFilmRepo)
	svc := NewEngagementService(repo, filmRepo)

	filmRepo.On("GetByID", mock.Anything, int64(42)).Return(testFilm, nil)
	repo.On("State", mock.Anything, models.RelationLike, "user-1", int64(42)).Return(repository.RelationInactive, nil)
	repo.On("Activate", mock.Anything, models.RelationLike, "user-1", int64(42)).Return(nil)

	outcome, err := svc.Toggle(context.Background(), testCaller, models.RelationLike, 42)

	assert.NoError(t, err)
	assert.Equal(t, "liked", outcome)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestToggle_ConcurrentCreateResolvesAsFlip(t *testing.T) {
	repo := new(MockEngagementRepo)
	filmRepo := new(MockFilmRepo)
	svc := NewEngagementService(repo, filmRepo)

	filmRepo.On("GetByID", mock.Anything, int64(42)).Return(testFilm, nil)
	repo.On("State", mock.Anything, models.RelationLike, "user-1", int64(42)).Return(repository.RelationAbsent, nil)
	repo.On("Create", mock.Anything, models.RelationLike, "user-1", int64(42)).
		Return(&pgconn.PgError{Code: "23505"})
	repo.On("Delete", mock.Anything, models.RelationLike, "user-1", int64(42)).Return(nil)

	outcome, err := svc.Toggle(context.Background(), testCaller, models.RelationLike, 42)

	assert.NoError(t, err)
	assert.Equal(t, "disliked", outcome)
	repo.AssertExpectations(t)
}

func TestToggle_AnonymousDenied(t *testing.T) {
	repo := new(MockEngagementRepo)
	filmRepo := new(MockFilmRepo)
	svc := NewEngagementService(repo, filmRepo)

	_, err := svc.Toggle(context.Background(), authz.Caller{}, models.RelationLike, 42)

	assert.ErrorIs(t, err, apperr.ErrForbidden)
	filmRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestToggle_FilmNotFound(t *testing.T) {
	repo := new(MockEngagementRepo)
	filmRepo := new(MockFilmRepo)
	svc := NewEngagementService(repo, filmRepo)

	filmRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Toggle(context.Background(), testCaller, models.RelationLike, 99)

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

// --- IN-MEMORY FAKE FOR SEQUENCE TESTS ---

type fakeEngagementRepo struct {
	rows map[string]bool // key -> active flag
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{rows: make(map[string]bool)}
}

func relKey(rel models.Relation, userID string, filmID int64) string {
	return fmt.Sprintf("%s:%s:%d", rel, userID, filmID)
}

func (f *fakeEngagementRepo) State(_ context.Context, rel models.Relation, userID string, filmID int64) (repository.RelationState, error) {
	active, ok := f.rows[relKey(rel, userID, filmID)]
	if !ok {
		return repository.RelationAbsent, nil
	}
	if active {
		return repository.RelationActive, nil
	}
	return repository.RelationInactive, nil
}

func (f *fakeEngagementRepo) Create(_ context.Context, rel models.Relation, userID string, filmID int64) error {
	key := relKey(rel, userID, filmID)
	if _, ok := f.rows[key]; ok {
		return &pgconn.PgError{Code: "23505"}
	}
	f.rows[key] = true
	return nil
}

func (f *fakeEngagementRepo) Activate(_ context.Context, rel models.Relation, userID string, filmID int64) error {
	f.rows[relKey(rel, userID, filmID)] = true
	return nil
}

func (f *fakeEngagementRepo) Delete(_ context.Context, rel models.Relation, userID string, filmID int64) error {
	key := relKey(rel, userID, filmID)
	if _, ok := f.rows[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, key)
	return nil
}

func (f *fakeEngagementRepo) CountLikes(_ context.Context, filmID int64) (int64, error) {
	var count int64
	for key, active := range f.rows {
		if active && key[:4] == "like" {
			count++
		}
	}
	return count, nil
}

func (f *fakeEngagementRepo) ListFavoritesByUser(_ context.Context, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	for key, active := range f.rows {
		if active && key == relKey(models.RelationFavorite, userID, 42) {
			favorites = append(favorites, models.Favorite{UserID: userID, FilmID: 42, IsFavorite: true})
		}
	}
	return favorites, nil
}

func TestToggle_AlternatesAndReturnsToNoRow(t *testing.T) {
	repo := newFakeEngagementRepo()
	filmRepo := new(MockFilmRepo)
	filmRepo.On("GetByID", mock.Anything, int64(42)).Return(testFilm, nil)
	svc := NewEngagementService(repo, filmRepo)

	want := []string{"liked", "disliked", "liked", "disliked"}
	for i, expected := range want {
		outcome, err := svc.Toggle(context.Background(), testCaller, models.RelationLike, 42)
		assert.NoError(t, err)
		assert.Equalf(t, expected, outcome, "toggle %d", i+1)
	}

	// Even number of toggles leaves no row behind.
	state, err := repo.State(context.Background(), models.RelationLike, "user-1", 42)
	assert.NoError(t, err)
	assert.Equal(t, repository.RelationAbsent, state)
}

func TestToggle_LikeAndFavoriteAreIndependent(t *testing.T) {
	repo := newFakeEngagementRepo()
	filmRepo := new(MockFilmRepo)
	filmRepo.On("GetByID", mock.Anything, int64(42)).Return(testFilm, nil)
	svc := NewEngagementService(repo, filmRepo)

	likeOutcome, err := svc.Toggle(context.Background(), testCaller, models.RelationLike, 42)
	assert.NoError(t, err)
	assert.Equal(t, "liked", likeOutcome)

	favOutcome, err := svc.Toggle(context.Background(), testCaller, models.RelationFavorite, 42)
	assert.NoError(t, err)
	assert.Equal(t, "added to favorites", favOutcome)

	// Removing the favorite must not disturb the like.
	favOutcome, err = svc.Toggle(context.Background(), testCaller, models.RelationFavorite, 42)
	assert.NoError(t, err)
	assert.Equal(t, "removed from favorites", favOutcome)

	state, err := repo.State(context.Background(), models.RelationLike, "user-1", 42)
	assert.NoError(t, err)
	assert.Equal(t, repository.RelationActive, state)
}

func TestListFavorites_OwnRowsOnly(t *testing.T) {
	repo := new(MockEngagementRepo)
	filmRepo := new(MockFilmRepo)
	svc := NewEngagementService(repo, filmRepo)

	own := []models.Favorite{{ID: 1, UserID: "user-1", FilmID: 42, IsFavorite: true}}
	repo.On("ListFavoritesByUser", mock.Anything, "user-1").Return(own, nil)

	favorites, err := svc.ListFavorites(context.Background(), testCaller)

	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
	for _, favorite := range favorites {
		assert.Equal(t, "user-1", favorite.UserID)
	}
	// The query is keyed by the caller id, nothing else.
	repo.AssertCalled(t, "ListFavoritesByUser", mock.Anything, "user-1")
}

func TestListFavorites_AnonymousDenied(t *testing.T) {
	repo := new(MockEngagementRepo)
	filmRepo := new(MockFilmRepo)
	svc := NewEngagementService(repo, filmRepo)

	_, err := svc.ListFavorites(context.Background(), authz.Caller{})

	assert.ErrorIs(t, err, apperr.ErrForbidden)
	repo.AssertNotCalled(t, "ListFavoritesByUser", mock.Anything, mock.Anything)
}

func TestToggle_DeleteRaceTreatedAsDeactivated(t *testing.T) {
	repo := new(MockEngagementRepo)
	filmRepo := new(MockFilmRepo)
	svc := NewEngagementService(repo, filmRepo)

	filmRepo.On("GetByID", mock.Anything, int64(42)).Return(testFilm, nil)
	repo.On("State", mock.Anything, models.RelationLike, "user-1", int64(42)).Return(repository.RelationActive, nil)
	// Concurrent toggle removed the row between lookup and delete.
	repo.On("Delete", mock.Anything, models.RelationLike, "user-1", int64(42)).Return(gorm.ErrRecordNotFound)

	outcome, err := svc.Toggle(context.Background(), testCaller, models.RelationLike, 42)

	assert.NoError(t, err)
	assert.Equal(t, "disliked", outcome)
}

func TestToggle_StoreErrorPropagates(t *testing.T) {
	repo := new(MockEngagementRepo)
	filmRepo := new(MockFilmRepo)
	svc := NewEngagementService(repo, filmRepo)

	storeErr := errors.New("connection reset")
	filmRepo.On("GetByID", mock.Anything, int64(42)).Return(testFilm, nil)
	repo.On("State", mock.Anything, models.RelationLike, "user-1", int64(42)).Return(repository.RelationAbsent, storeErr)

	_, err := svc.Toggle(context.Background(), testCaller, models.RelationLike, 42)

	assert.ErrorIs(t, err, storeErr)
}
