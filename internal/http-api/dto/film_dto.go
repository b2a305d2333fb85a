package dto

import (
	"filmhub/internal/http-api/service"
)

// UnratedSentinel is rendered in place of a numeric average when a film has
// no ratings. Zero would look like a valid (terrible) score.
const UnratedSentinel = "No one rated"

type CreateFilmDTO struct {
	CategoryID  int64  `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
}

type UpdateFilmDTO struct {
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
}

// FilmListResponse is the list-view shape: name, image and the derived
// average. AverageRating is a number, or the UnratedSentinel string.
type FilmListResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ImageURL      string `json:"image_url"`
	AverageRating any    `json:"average_rating"`
}

// FilmDetailResponse adds description, category, like count and comments.
type FilmDetailResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	ImageURL      string            `json:"image_url"`
	Category      CategoryResponse  `json:"category"`
	AverageRating any               `json:"average_rating"`
	Likes         int64             `json:"likes"`
	Comments      []CommentResponse `json:"comments"`
}

type PaginatedFilmResponse struct {
	Data       []FilmListResponse `json:"data"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	Total      int                `json:"total"`
	TotalPages int                `json:"total_pages"`
}

// FormatAverage renders the derived average for a response body.
func FormatAverage(avg float64, rated bool) any {
	if !rated {
		return UnratedSentinel
	}
	return avg
}

func FromFilmListItem(item service.FilmListItem) FilmListResponse {
	return FilmListResponse{
		ID:            item.Film.ID,
		Name:          item.Film.Name,
		ImageURL:      item.Film.ImageURL,
		AverageRating: FormatAverage(item.Average, item.Rated),
	}
}

func FromFilmDetail(detail *service.FilmDetail) FilmDetailResponse {
	comments := make([]CommentResponse, 0, len(detail.Film.Comments))
	for i := range detail.Film.Comments {
		comments = append(comments, FromModelToCommentResponse(&detail.Film.Comments[i]))
	}

	return FilmDetailResponse{
		ID:            detail.Film.ID,
		Name:          detail.Film.Name,
		Description:   detail.Film.Description,
		ImageURL:      detail.Film.ImageURL,
		Category:      FromModelToCategoryResponse(&detail.Film.Category),
		AverageRating: FormatAverage(detail.Average, detail.Rated),
		Likes:         detail.LikeCount,
		Comments:      comments,
	}
}

func NewPaginatedFilmResponse(data []FilmListResponse, total, page, pageSize int) *PaginatedFilmResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedFilmResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
