package repository

import (
	"context"
	"fmt"

	"filmhub/internal/http-api/models"

	"gorm.io/gorm"
)

type FilmRepository interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Film, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Film, error)
	Create(ctx context.Context, film *models.Film) error
	Update(ctx context.Context, film *models.Film) error
	Delete(ctx context.Context, id int64) error
}

type filmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) FilmRepository {
	return &filmRepository{db: db}
}

func (r *filmRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Film, int64, error) {
	var films []models.Film
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Film{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&films).Error; err != nil {
		return nil, 0, err
	}

	return films, total, nil
}

// GetByID loads a film with its category and comments (with authors) for the
// detail view. The owner id comes back on the film itself, so ownership checks
// never need a second query.
func (r *filmRepository) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	var film models.Film
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Comments").
		Preload("Comments.User").
		First(&film, id).Error; err != nil {
		return nil, err
	}
	return &film, nil
}

func (r *filmRepository) Create(ctx context.Context, film *models.Film) error {
	if err := r.db.WithContext(ctx).Create(film).Error; err != nil {
		return fmt.Errorf("create film: %w", err)
	}
	return nil
}

func (r *filmRepository) Update(ctx context.Context, film *models.Film) error {
	if err := r.db.WithContext(ctx).Save(film).Error; err != nil {
		return fmt.Errorf("update film: %w", err)
	}
	return nil
}

func (r *filmRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Film{}, id).Error; err != nil {
		return fmt.Errorf("delete film: %w", err)
	}
	return nil
}
