package dto

import (
	"time"

	"filmhub/internal/http-api/models"
)

// FavoriteResponse is one row of the caller's favorites listing.
type FavoriteResponse struct {
	ID      int64           `json:"id"`
	FilmID  int64           `json:"film_id"`
	Film    FilmSummaryItem `json:"film"`
	AddedAt time.Time       `json:"added_at"`
}

type FavoritesListResponse struct {
	Items []FavoriteResponse `json:"items"`
	Total int                `json:"total"`
}

func FromModelToFavoriteResponse(favorite *models.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:     favorite.ID,
		FilmID: favorite.FilmID,
		Film: FilmSummaryItem{
			ID:       favorite.Film.ID,
			Name:     favorite.Film.Name,
			ImageURL: favorite.Film.ImageURL,
		},
		AddedAt: favorite.CreatedAt,
	}
}
