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

type CommentService interface {
	Create(ctx context.Context, caller authz.Caller, filmID int64, text string) (*models.Comment, error)
	Update(ctx context.Context, caller authz.Caller, commentID int64, text string) (*models.Comment, error)
	Delete(ctx context.Context, caller authz.Caller, commentID int64) error
}

type commentService struct {
	repo     repository.CommentRepository
	filmRepo repository.FilmRepository
}

func NewCommentService(repo repository.CommentRepository, filmRepo repository.FilmRepository) CommentService {
	return &commentService{repo: repo, filmRepo: filmRepo}
}

func (s *commentService) Create(ctx context.Context, caller authz.Caller, filmID int64, text string) (*models.Comment, error) {
	if !authz.Allowed(authz.ResourceComment, authz.ActionCreate, caller, "") {
		return nil, fmt.Errorf("%w: authentication required", apperr.ErrForbidden)
	}

	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: film %d", apperr.ErrNotFound, filmID)
		}
		return nil, err
	}

	comment := &models.Comment{
		UserID: caller.UserID,
		FilmID: filmID,
		Text:   text,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	// Reload with the author for the response
	return s.repo.GetByID(ctx, comment.ID)
}

// Update is strictly author-only; unlike Delete, an admin may not edit
// someone else's comment.
func (s *commentService) Update(ctx context.Context, caller authz.Caller, commentID int64, text string) (*models.Comment, error) {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment %d", apperr.ErrNotFound, commentID)
		}
		return nil, err
	}

	if !authz.Allowed(authz.ResourceComment, authz.ActionUpdate, caller, comment.UserID) {
		return nil, fmt.Errorf("%w: only the author may update a comment", apperr.ErrForbidden)
	}

	comment.Text = text
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, caller authz.Caller, commentID int64) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: comment %d", apperr.ErrNotFound, commentID)
		}
		return err
	}

	if !authz.Allowed(authz.ResourceComment, authz.ActionDelete, caller, comment.UserID) {
		return fmt.Errorf("%w: only the author or an admin may delete a comment", apperr.ErrForbidden)
	}
	return s.repo.Delete(ctx, commentID)
}
