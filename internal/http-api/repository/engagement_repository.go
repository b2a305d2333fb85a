package repository

import (
	"context"
	"errors"
	"fmt"

	"filmhub/internal/http-api/models"

	"gorm.io/gorm"
)

// RelationState is the tagged result of a relation lookup. The toggle
// algorithm branches on it explicitly instead of treating "not found" as an
// exceptional path.
type RelationState int

const (
	RelationAbsent RelationState = iota
	RelationActive
	// RelationInactive only appears for legacy rows; a deactivating toggle
	// deletes the row instead of flipping the flag to false.
	RelationInactive
)

type EngagementRepository interface {
	State(ctx context.Context, rel models.Relation, userID string, filmID int64) (RelationState, error)
	Create(ctx context.Context, rel models.Relation, userID string, filmID int64) error
	Activate(ctx context.Context, rel models.Relation, userID string, filmID int64) error
	Delete(ctx context.Context, rel models.Relation, userID string, filmID int64) error
	CountLikes(ctx context.Context, filmID int64) (int64, error)
	ListFavoritesByUser(ctx context.Context, userID string) ([]models.Favorite, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) State(ctx context.Context, rel models.Relation, userID string, filmID int64) (RelationState, error) {
	db := r.db.WithContext(ctx).Where("user_id = ? AND film_id = ?", userID, filmID)

	var active bool
	var err error
	switch rel {
	case models.RelationLike:
		var like models.Like
		if err = db.First(&like).Error; err == nil {
			active = like.IsLiked
		}
	case models.RelationFavorite:
		var favorite models.Favorite
		if err = db.First(&favorite).Error; err == nil {
			active = favorite.IsFavorite
		}
	default:
		return RelationAbsent, fmt.Errorf("unknown relation %q", rel)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RelationAbsent, nil
		}
		return RelationAbsent, err
	}
	if active {
		return RelationActive, nil
	}
	return RelationInactive, nil
}

// Create inserts an active row. On a concurrent toggle the unique index on
// (user_id, film_id) rejects the second insert; callers detect that with
// IsUniqueViolation.
func (r *engagementRepository) Create(ctx context.Context, rel models.Relation, userID string, filmID int64) error {
	switch rel {
	case models.RelationLike:
		return r.db.WithContext(ctx).Create(&models.Like{UserID: userID, FilmID: filmID, IsLiked: true}).Error
	case models.RelationFavorite:
		return r.db.WithContext(ctx).Create(&models.Favorite{UserID: userID, FilmID: filmID, IsFavorite: true}).Error
	default:
		return fmt.Errorf("unknown relation %q", rel)
	}
}

// Activate flips a legacy false-flag row back to true in place. The row
// already holds the unique (user_id, film_id) slot, so an update is the only
// safe way to re-activate it.
func (r *engagementRepository) Activate(ctx context.Context, rel models.Relation, userID string, filmID int64) error {
	db := r.db.WithContext(ctx).Where("user_id = ? AND film_id = ?", userID, filmID)

	switch rel {
	case models.RelationLike:
		return db.Model(&models.Like{}).Update("is_liked", true).Error
	case models.RelationFavorite:
		return db.Model(&models.Favorite{}).Update("is_favorite", true).Error
	default:
		return fmt.Errorf("unknown relation %q", rel)
	}
}

func (r *engagementRepository) Delete(ctx context.Context, rel models.Relation, userID string, filmID int64) error {
	db := r.db.WithContext(ctx).Where("user_id = ? AND film_id = ?", userID, filmID)

	var result *gorm.DB
	switch rel {
	case models.RelationLike:
		result = db.Delete(&models.Like{})
	case models.RelationFavorite:
		result = db.Delete(&models.Favorite{})
	default:
		return fmt.Errorf("unknown relation %q", rel)
	}

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *engagementRepository) CountLikes(ctx context.Context, filmID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("film_id = ? AND is_liked = ?", filmID, true).
		Count(&count).Error
	return count, err
}

func (r *engagementRepository) ListFavoritesByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Film").
		Order("created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
