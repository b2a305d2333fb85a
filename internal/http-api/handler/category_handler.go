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

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:category_id", h.Get)
		categories.POST("", h.Create)
		categories.PUT("/:category_id", h.Update)
		categories.DELETE("/:category_id", h.Delete)
	}
}

// List all categories
// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, dto.FromModelToCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// Get a category with its films
// GET /api/categories/:category_id
func (h *CategoryHandler) Get(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("category_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, middleware.CallerFromContext(c), err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToCategoryDetail(category))
}

// Create a category (admin only)
// POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	var req dto.CreateCategoryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), caller, &models.Category{
		Title: req.Title,
		Slug:  req.Slug,
	})
	if err != nil {
		respondError(c, caller, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToCategoryResponse(category))
}

// Update a category (admin only)
// PUT /api/categories/:category_id
func (h *CategoryHandler) Update(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	categoryID, err := strconv.ParseInt(c.Param("category_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	var req dto.CreateCategoryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), caller, categoryID, &models.Category{
		Title: req.Title,
		Slug:  req.Slug,
	})
	if err != nil {
		respondError(c, caller, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToCategoryResponse(category))
}

// Delete a category (admin only)
// DELETE /api/categories/:category_id
func (h *CategoryHandler) Delete(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	categoryID, err := strconv.ParseInt(c.Param("category_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), caller, categoryID); err != nil {
		respondError(c, caller, err)
		return
	}
	c.Status(http.StatusNoContent)
}
