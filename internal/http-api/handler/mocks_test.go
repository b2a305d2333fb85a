package handler

import (
	"context"

	"filmhub/internal/http-api/authz"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// withCaller injects an already-resolved identity, standing in for the auth
// middleware.
func withCaller(caller authz.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("caller", caller)
		c.Next()
	}
}

type MockFilmService struct {
	mock.Mock
}

func (m *MockFilmService) List(ctx context.Context, page, pageSize int) ([]service.FilmListItem, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]service.FilmListItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockFilmService) Get(ctx context.Context, filmID int64) (*service.FilmDetail, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FilmDetail), args.Error(1)
}

func (m *MockFilmService) Create(ctx context.Context, caller authz.Caller, film *models.Film) (*models.Film, error) {
	args := m.Called(ctx, caller, film)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Film), args.Error(1)
}

func (m *MockFilmService) Update(ctx context.Context, caller authz.Caller, filmID int64, film *models.Film) (*models.Film, error) {
	args := m.Called(ctx, caller, filmID, film)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Film), args.Error(1)
}

func (m *MockFilmService) Delete(ctx context.Context, caller authz.Caller, filmID int64) error {
	args := m.Called(ctx, caller, filmID)
	return args.Error(0)
}

type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) Toggle(ctx context.Context, caller authz.Caller, rel models.Relation, filmID int64) (string, error) {
	args := m.Called(ctx, caller, rel, filmID)
	return args.String(0), args.Error(1)
}

func (m *MockEngagementService) CountLikes(ctx context.Context, filmID int64) (int64, error) {
	args := m.Called(ctx, filmID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementService) ListFavorites(ctx context.Context, caller authz.Caller) ([]models.Favorite, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Favorite), args.Error(1)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Rate(ctx context.Context, caller authz.Caller, filmID int64, score float64) (*models.Rating, error) {
	args := m.Called(ctx, caller, filmID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingService) AverageRating(ctx context.Context, filmID int64) (float64, bool, error) {
	args := m.Called(ctx, filmID)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *MockRatingService) Update(ctx context.Context, caller authz.Caller, ratingID int64, score float64) (*models.Rating, error) {
	args := m.Called(ctx, caller, ratingID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingService) Delete(ctx context.Context, caller authz.Caller, ratingID int64) error {
	args := m.Called(ctx, caller, ratingID)
	return args.Error(0)
}
