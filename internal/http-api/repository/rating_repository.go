package repository

import (
	"context"

	"filmhub/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, ratingID int64) error
	GetByID(ctx context.Context, ratingID int64) (*models.Rating, error)
	GetByUserAndFilm(ctx context.Context, userID string, filmID int64) (*models.Rating, error)
	ListScoresByFilm(ctx context.Context, filmID int64) ([]float64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create inserts a new rating. The unique index on (user_id, film_id) makes a
// concurrent second insert fail; callers detect that with IsUniqueViolation.
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) Delete(ctx context.Context, ratingID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Rating{}, ratingID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) GetByID(ctx context.Context, ratingID int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).First(&rating, ratingID).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByUserAndFilm(ctx context.Context, userID string, filmID int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListScoresByFilm fetches the current score set for a film in one query. The
// aggregator computes the mean over this slice, so every call sees fresh rows.
func (r *ratingRepository) ListScoresByFilm(ctx context.Context, filmID int64) ([]float64, error) {
	var scores []float64
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("film_id = ?", filmID).
		Pluck("score", &scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}
