package service

import (
	"context"
	"errors"
	"fmt"

	"filmhub/internal/http-api/apperr"
	"filmhub/internal/http-api/authz"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/repository"

	"gorm.io/gorm"
)

// FilmListItem is a film row with its freshly aggregated average rating.
type FilmListItem struct {
	Film    models.Film
	Average float64
	Rated   bool
}

// FilmDetail adds the like count and comments to the list fields.
type FilmDetail struct {
	Film      *models.Film
	Average   float64
	Rated     bool
	LikeCount int64
}

type FilmService interface {
	List(ctx context.Context, page, pageSize int) ([]FilmListItem, int64, error)
	Get(ctx context.Context, filmID int64) (*FilmDetail, error)
	Create(ctx context.Context, caller authz.Caller, film *models.Film) (*models.Film, error)
	Update(ctx context.Context, caller authz.Caller, filmID int64, film *models.Film) (*models.Film, error)
	Delete(ctx context.Context, caller authz.Caller, filmID int64) error
}

type filmService struct {
	repo           repository.FilmRepository
	categoryRepo   repository.CategoryRepository
	ratingRepo     repository.RatingRepository
	engagementRepo repository.EngagementRepository
}

func NewFilmService(
	repo repository.FilmRepository,
	categoryRepo repository.CategoryRepository,
	ratingRepo repository.RatingRepository,
	engagementRepo repository.EngagementRepository,
) FilmService {
	return &filmService{
		repo:           repo,
		categoryRepo:   categoryRepo,
		ratingRepo:     ratingRepo,
		engagementRepo: engagementRepo,
	}
}

func (s *filmService) List(ctx context.Context, page, pageSize int) ([]FilmListItem, int64, error) {
	films, total, err := s.repo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]FilmListItem, 0, len(films))
	for _, film := range films {
		scores, err := s.ratingRepo.ListScoresByFilm(ctx, film.ID)
		if err != nil {
			return nil, 0, err
		}
		avg, rated := AverageOf(scores)
		items = append(items, FilmListItem{Film: film, Average: avg, Rated: rated})
	}
	return items, total, nil
}

func (s *filmService) Get(ctx context.Context, filmID int64) (*FilmDetail, error) {
	film, err := s.repo.GetByID(ctx, filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: film %d", apperr.ErrNotFound, filmID)
		}
		return nil, err
	}

	scores, err := s.ratingRepo.ListScoresByFilm(ctx, filmID)
	if err != nil {
		return nil, err
	}
	avg, rated := AverageOf(scores)

	likes, err := s.engagementRepo.CountLikes(ctx, filmID)
	if err != nil {
		return nil, err
	}

	return &FilmDetail{Film: film, Average: avg, Rated: rated, LikeCount: likes}, nil
}

// Create stores a new film owned by the caller. Ownership is assigned here,
// once, and never changes afterwards.
func (s *filmService) Create(ctx context.Context, caller authz.Caller, film *models.Film) (*models.Film, error) {
	if !authz.Allowed(authz.ResourceFilm, authz.ActionCreate, caller, "") {
		return nil, fmt.Errorf("%w: can create only authorized user", apperr.ErrForbidden)
	}

	if _, err := s.categoryRepo.GetByID(ctx, film.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", apperr.ErrNotFound, film.CategoryID)
		}
		return nil, err
	}

	film.UserID = caller.UserID
	if err := s.repo.Create(ctx, film); err != nil {
		return nil, err
	}
	return film, nil
}

func (s *filmService) Update(ctx context.Context, caller authz.Caller, filmID int64, update *models.Film) (*models.Film, error) {
	film, err := s.repo.GetByID(ctx, filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: film %d", apperr.ErrNotFound, filmID)
		}
		return nil, err
	}

	if !authz.Allowed(authz.ResourceFilm, authz.ActionUpdate, caller, film.UserID) {
		return nil, fmt.Errorf("%w: only the author or an admin may update a film", apperr.ErrForbidden)
	}

	if update.CategoryID != 0 && update.CategoryID != film.CategoryID {
		if _, err := s.categoryRepo.GetByID(ctx, update.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: category %d", apperr.ErrNotFound, update.CategoryID)
			}
			return nil, err
		}
		film.CategoryID = update.CategoryID
	}
	film.Name = update.Name
	film.Description = update.Description
	film.ImageURL = update.ImageURL

	if err := s.repo.Update(ctx, film); err != nil {
		return nil, err
	}
	return film, nil
}

func (s *filmService) Delete(ctx context.Context, caller authz.Caller, filmID int64) error {
	film, err := s.repo.GetByID(ctx, filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: film %d", apperr.ErrNotFound, filmID)
		}
		return err
	}

	if !authz.Allowed(authz.ResourceFilm, authz.ActionDelete, caller, film.UserID) {
		return fmt.Errorf("%w: only the author or an admin may delete a film", apperr.ErrForbidden)
	}
	return s.repo.Delete(ctx, filmID)
}
