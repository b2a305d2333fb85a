package service

import (
	"context"

	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// --- MOCK REPOSITORIES ---

type MockFilmRepo struct {
	mock.Mock
}

func (m *MockFilmRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Film, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]models.Film), args.Get(1).(int64), args.Error(2)
}

func (m *MockFilmRepo) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Film), args.Error(1)
}

func (m *MockFilmRepo) Create(ctx context.Context, film *models.Film) error {
	args := m.Called(ctx, film)
	return args.Error(0)
}

func (m *MockFilmRepo) Update(ctx context.Context, film *models.Film) error {
	args := m.Called(ctx, film)
	return args.Error(0)
}

func (m *MockFilmRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepo) Update(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepo) Delete(ctx context.Context, ratingID int64) error {
	args := m.Called(ctx, ratingID)
	return args.Error(0)
}

func (m *MockRatingRepo) GetByID(ctx context.Context, ratingID int64) (*models.Rating, error) {
	args := m.Called(ctx, ratingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepo) GetByUserAndFilm(ctx context.Context, userID string, filmID int64) (*models.Rating, error) {
	args := m.Called(ctx, userID, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepo) ListScoresByFilm(ctx context.Context, filmID int64) ([]float64, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

type MockEngagementRepo struct {
	mock.Mock
}

func (m *MockEngagementRepo) State(ctx context.Context, rel models.Relation, userID string, filmID int64) (repository.RelationState, error) {
	args := m.Called(ctx, rel, userID, filmID)
	return args.Get(0).(repository.RelationState), args.Error(1)
}

func (m *MockEngagementRepo) Create(ctx context.Context, rel models.Relation, userID string, filmID int64) error {
	args := m.Called(ctx, rel, userID, filmID)
	return args.Error(0)
}

func (m *MockEngagementRepo) Activate(ctx context.Context, rel models.Relation, userID string, filmID int64) error {
	args := m.Called(ctx, rel, userID, filmID)
	return args.Error(0)
}

func (m *MockEngagementRepo) Delete(ctx context.Context, rel models.Relation, userID string, filmID int64) error {
	args := m.Called(ctx, rel, userID, filmID)
	return args.Error(0)
}

func (m *MockEngagementRepo) CountLikes(ctx context.Context, filmID int64) (int64, error) {
	args := m.Called(ctx, filmID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepo) ListFavoritesByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) Delete(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepo) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepo) GetByFilm(ctx context.Context, filmID int64) ([]models.Comment, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}
