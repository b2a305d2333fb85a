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

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, categoryID int64) (*models.Category, error)
	Create(ctx context.Context, caller authz.Caller, category *models.Category) (*models.Category, error)
	Update(ctx context.Context, caller authz.Caller, categoryID int64, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, caller authz.Caller, categoryID int64) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) Get(ctx context.Context, categoryID int64) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", apperr.ErrNotFound, categoryID)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, caller authz.Caller, category *models.Category) (*models.Category, error) {
	if !authz.Allowed(authz.ResourceCategory, authz.ActionCreate, caller, "") {
		return nil, fmt.Errorf("%w: admin only", apperr.ErrForbidden)
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: slug %q already exists", apperr.ErrDuplicate, category.Slug)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, caller authz.Caller, categoryID int64, update *models.Category) (*models.Category, error) {
	if !authz.Allowed(authz.ResourceCategory, authz.ActionUpdate, caller, "") {
		return nil, fmt.Errorf("%w: admin only", apperr.ErrForbidden)
	}

	category, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", apperr.ErrNotFound, categoryID)
		}
		return nil, err
	}

	category.Title = update.Title
	category.Slug = update.Slug
	if err := s.repo.Update(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: slug %q already exists", apperr.ErrDuplicate, update.Slug)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, caller authz.Caller, categoryID int64) error {
	if !authz.Allowed(authz.ResourceCategory, authz.ActionDelete, caller, "") {
		return fmt.Errorf("%w: admin only", apperr.ErrForbidden)
	}

	if _, err := s.repo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d", apperr.ErrNotFound, categoryID)
		}
		return err
	}
	return s.repo.Delete(ctx, categoryID)
}
