package dto

import "filmhub/internal/http-api/models"

type CreateCategoryDTO struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	Slug  string `json:"slug" binding:"required,min=1,max=200"`
}

type CategoryResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// CategoryDetailResponse includes the films in the category.
type CategoryDetailResponse struct {
	ID    int64             `json:"id"`
	Title string            `json:"title"`
	Slug  string            `json:"slug"`
	Films []FilmSummaryItem `json:"films"`
}

// FilmSummaryItem is the minimal film shape embedded in a category detail.
type FilmSummaryItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

func FromModelToCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID,
		Title: category.Title,
		Slug:  category.Slug,
	}
}

func FromModelToCategoryDetail(category *models.Category) CategoryDetailResponse {
	films := make([]FilmSummaryItem, 0, len(category.Films))
	for _, film := range category.Films {
		films = append(films, FilmSummaryItem{
			ID:       film.ID,
			Name:     film.Name,
			ImageURL: film.ImageURL,
		})
	}

	return CategoryDetailResponse{
		ID:    category.ID,
		Title: category.Title,
		Slug:  category.Slug,
		Films: films,
	}
}
