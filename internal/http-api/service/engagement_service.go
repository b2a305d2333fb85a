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

// EngagementService owns the like/favorite toggle state. A toggle either
// activates the relation (row created) or deactivates it (row deleted); the
// outcome string tells the caller which happened.
type EngagementService interface {
	Toggle(ctx context.Context, caller authz.Caller, rel models.Relation, filmID int64) (string, error)
	CountLikes(ctx context.Context, filmID int64) (int64, error)
	ListFavorites(ctx context.Context, caller authz.Caller) ([]models.Favorite, error)
}

type engagementService struct {
	repo     repository.EngagementRepository
	filmRepo repository.FilmRepository
}

func NewEngagementService(repo repository.EngagementRepository, filmRepo repository.FilmRepository) EngagementService {
	return &engagementService{repo: repo, filmRepo: filmRepo}
}

func (s *engagementService) Toggle(ctx context.Context, caller authz.Caller, rel models.Relation, filmID int64) (string, error) {
	if !authz.Allowed(authz.ResourceFilm, authz.ActionToggle, caller, "") {
		return "", fmt.Errorf("%w: authentication required", apperr.ErrForbidden)
	}

	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: film %d", apperr.ErrNotFound, filmID)
		}
		return "", err
	}

	state, err := s.repo.State(ctx, rel, caller.UserID, filmID)
	if err != nil {
		return "", err
	}

	switch state {
	case repository.RelationActive:
		if err := s.repo.Delete(ctx, rel, caller.UserID, filmID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// a concurrent toggle already removed the row
				return outcome(rel, false), nil
			}
			return "", err
		}
		return outcome(rel, false), nil

	case repository.RelationInactive:
		// legacy false-flag row: treat as absent and re-activate in place
		if err := s.repo.Activate(ctx, rel, caller.UserID, filmID); err != nil {
			return "", err
		}
		return outcome(rel, true), nil

	default: // absent
		if err := s.repo.Create(ctx, rel, caller.UserID, filmID); err != nil {
			if repository.IsUniqueViolation(err) {
				// a concurrent toggle activated first; resolve this call as the flip
				if derr := s.repo.Delete(ctx, rel, caller.UserID, filmID); derr != nil && !errors.Is(derr, gorm.ErrRecordNotFound) {
					return "", derr
				}
				return outcome(rel, false), nil
			}
			return "", err
		}
		return outcome(rel, true), nil
	}
}

func (s *engagementService) CountLikes(ctx context.Context, filmID int64) (int64, error) {
	return s.repo.CountLikes(ctx, filmID)
}

// ListFavorites returns the caller's own favorites, never anyone else's.
func (s *engagementService) ListFavorites(ctx context.Context, caller authz.Caller) ([]models.Favorite, error) {
	if !authz.Allowed(authz.ResourceFavorites, authz.ActionList, caller, "") {
		return nil, fmt.Errorf("%w: authentication required", apperr.ErrForbidden)
	}
	return s.repo.ListFavoritesByUser(ctx, caller.UserID)
}

func outcome(rel models.Relation, activated bool) string {
	if rel == models.RelationFavorite {
		if activated {
			return "added to favorites"
		}
		return "removed from favorites"
	}
	if activated {
		return "liked"
	}
	return "disliked"
}
