package dto

import (
	"time"

	"filmhub/internal/http-api/models"
)

type CreateRatingDTO struct {
	FilmID int64   `json:"film_id" binding:"required"`
	Score  float64 `json:"score" binding:"required,min=1,max=5"`
}

type UpdateRatingDTO struct {
	Score float64 `json:"score" binding:"required,min=1,max=5"`
}

type RatingResponse struct {
	ID        int64     `json:"id"`
	FilmID    int64     `json:"film_id"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModelToRatingResponse(rating *models.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID,
		FilmID:    rating.FilmID,
		Score:     rating.Score,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}
