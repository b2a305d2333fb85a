package handler

import (
	"net/http"
	"strconv"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/middleware"
	"filmhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ratings := rg.Group("/ratings")
	{
		ratings.POST("", h.Create)
		ratings.PUT("/:rating_id", h.Update)
		ratings.DELETE("/:rating_id", h.Delete)
	}
}

// Create rates a film. One rating per user per film; a second attempt is a
// conflict, not an overwrite.
// POST /api/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Rate(c.Request.Context(), caller, req.FilmID, req.Score)
	if err != nil {
		respondError(c, caller, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToRatingResponse(rating))
}

// Update changes the caller's rating (author only)
// PUT /api/ratings/:rating_id
func (h *RatingHandler) Update(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	ratingID, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating id"})
		return
	}

	var req dto.UpdateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.Update(c.Request.Context(), caller, ratingID, req.Score)
	if err != nil {
		respondError(c, caller, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToRatingResponse(rating))
}

// Delete removes the caller's rating (author only)
// DELETE /api/ratings/:rating_id
func (h *RatingHandler) Delete(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	ratingID, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating id"})
		return
	}

	if err := h.ratingService.Delete(c.Request.Context(), caller, ratingID); err != nil {
		respondError(c, caller, err)
		return
	}
	c.Status(http.StatusNoContent)
}
