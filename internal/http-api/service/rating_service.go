package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"filmhub/internal/http-api/apperr"
	"filmhub/internal/http-api/authz"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/repository"

	"gorm.io/gorm"
)

const (
	MinScore = 1.0
	MaxScore = 5.0
)

// RatingService owns the one-rating-per-user-per-film rule and the mean
// aggregation. Rating is create-once: a second attempt fails, changing a score
// goes through Update.
type RatingService interface {
	Rate(ctx context.Context, caller authz.Caller, filmID int64, score float64) (*models.Rating, error)
	AverageRating(ctx context.Context, filmID int64) (float64, bool, error)
	Update(ctx context.Context, caller authz.Caller, ratingID int64, score float64) (*models.Rating, error)
	Delete(ctx context.Context, caller authz.Caller, ratingID int64) error
}

type ratingService struct {
	repo     repository.RatingRepository
	filmRepo repository.FilmRepository
}

func NewRatingService(repo repository.RatingRepository, filmRepo repository.FilmRepository) RatingService {
	return &ratingService{repo: repo, filmRepo: filmRepo}
}

func (s *ratingService) Rate(ctx context.Context, caller authz.Caller, filmID int64, score float64) (*models.Rating, error) {
	if !authz.Allowed(authz.ResourceRating, authz.ActionCreate, caller, "") {
		return nil, fmt.Errorf("%w: authentication required", apperr.ErrForbidden)
	}
	if err := validateScore(score); err != nil {
		return nil, err
	}

	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: film %d", apperr.ErrNotFound, filmID)
		}
		return nil, err
	}

	// Pre-write existence check; the unique index backs it up under races.
	if _, err := s.repo.GetByUserAndFilm(ctx, caller.UserID, filmID); err == nil {
		return nil, fmt.Errorf("%w: impossible to rate twice", apperr.ErrDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rating := &models.Rating{
		UserID: caller.UserID,
		FilmID: filmID,
		Score:  score,
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: impossible to rate twice", apperr.ErrDuplicate)
		}
		return nil, err
	}
	return rating, nil
}

// AverageRating recomputes the mean from the live row set on every call.
// rated is false when the film has no ratings; the boundary renders that as
// the "No one rated" sentinel rather than a misleading zero.
func (s *ratingService) AverageRating(ctx context.Context, filmID int64) (float64, bool, error) {
	scores, err := s.repo.ListScoresByFilm(ctx, filmID)
	if err != nil {
		return 0, false, err
	}
	avg, rated := AverageOf(scores)
	return avg, rated, nil
}

// AverageOf computes the arithmetic mean of scores rounded to two decimals,
// half away from zero. Returns false when the slice is empty.
func AverageOf(scores []float64) (float64, bool) {
	if len(scores) == 0 {
		return 0, false
	}
	var sum float64
	for _, score := range scores {
		sum += score
	}
	mean := sum / float64(len(scores))
	return math.Round(mean*100) / 100, true
}

// Update changes an existing rating's score. Author only; admins get no
// special rights over ratings.
func (s *ratingService) Update(ctx context.Context, caller authz.Caller, ratingID int64, score float64) (*models.Rating, error) {
	rating, err := s.repo.GetByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rating %d", apperr.ErrNotFound, ratingID)
		}
		return nil, err
	}

	if !authz.Allowed(authz.ResourceRating, authz.ActionUpdate, caller, rating.UserID) {
		return nil, fmt.Errorf("%w: only the author may update a rating", apperr.ErrForbidden)
	}
	if err := validateScore(score); err != nil {
		return nil, err
	}

	rating.Score = score
	if err := s.repo.Update(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) Delete(ctx context.Context, caller authz.Caller, ratingID int64) error {
	rating, err := s.repo.GetByID(ctx, ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: rating %d", apperr.ErrNotFound, ratingID)
		}
		return err
	}

	if !authz.Allowed(authz.ResourceRating, authz.ActionDelete, caller, rating.UserID) {
		return fmt.Errorf("%w: only the author may delete a rating", apperr.ErrForbidden)
	}
	return s.repo.Delete(ctx, ratingID)
}

func validateScore(score float64) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: score must be between %.2f and %.2f", apperr.ErrValidation, MinScore, MaxScore)
	}
	return nil
}
