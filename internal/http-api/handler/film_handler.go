package handler

import (
	"net/http"
	"strconv"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/middleware"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FilmHandler struct {
	filmService       service.FilmService
	engagementService service.EngagementService
}

func NewFilmHandler(filmService service.FilmService, engagementService service.EngagementService) *FilmHandler {
	return &FilmHandler{
		filmService:       filmService,
		engagementService: engagementService,
	}
}

func (h *FilmHandler) RegisterRoutes(rg *gin.RouterGroup) {
	films := rg.Group("/films")
	{
		films.GET("", h.List)
		films.GET("/:film_id", h.Get)
		films.POST("", h.Create)
		films.PUT("/:film_id", h.Update)
		films.DELETE("/:film_id", h.Delete)

		// Toggles flip the caller's relation to the film and answer with a
		// plain outcome message.
		films.POST("/:film_id/like", h.ToggleLike)
		films.POST("/:film_id/favorite", h.ToggleFavorite)
	}
}

// List films with their average ratings
// GET /api/films?page=1&page_size=20
func (h *FilmHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	items, total, err := h.filmService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]dto.FilmListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.FromFilmListItem(item))
	}
	c.JSON(http.StatusOK, dto.NewPaginatedFilmResponse(responses, int(total), page, pageSize))
}

// Get a film detail with average rating, like count and comments
// GET /api/films/:film_id
func (h *FilmHandler) Get(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid film id"})
		return
	}

	detail, err := h.filmService.Get(c.Request.Context(), filmID)
	if err != nil {
		respondError(c, middleware.CallerFromContext(c), err)
		return
	}
	c.JSON(http.StatusOK, dto.FromFilmDetail(detail))
}

// Create a film owned by the caller
// POST /api/films
func (h *FilmHandler) Create(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	var req dto.CreateFilmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film, err := h.filmService.Create(c.Request.Context(), caller, &models.Film{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, caller, err)
		return
	}
	c.JSON(http.StatusCreated, film)
}

// Update a film (author or admin)
// PUT /api/films/:film_id
func (h *FilmHandler) Update(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid film id"})
		return
	}

	var req dto.UpdateFilmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film, err := h.filmService.Update(c.Request.Context(), caller, filmID, &models.Film{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, caller, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

// Delete a film (author or admin)
// DELETE /api/films/:film_id
func (h *FilmHandler) Delete(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid film id"})
		return
	}

	if err := h.filmService.Delete(c.Request.Context(), caller, filmID); err != nil {
		respondError(c, caller, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleLike flips the caller's like on a film
// POST /api/films/:film_id/like
func (h *FilmHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, models.RelationLike)
}

// ToggleFavorite flips the caller's favorite on a film
// POST /api/films/:film_id/favorite
func (h *FilmHandler) ToggleFavorite(c *gin.Context) {
	h.toggle(c, models.RelationFavorite)
}

func (h *FilmHandler) toggle(c *gin.Context, rel models.Relation) {
	caller := middleware.CallerFromContext(c)

	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid film id"})
		return
	}

	message, err := h.engagementService.Toggle(c.Request.Context(), caller, rel, filmID)
	if err != nil {
		respondError(c, caller, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
