package handler

import (
	"net/http"
	"strconv"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/middleware"
	"filmhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	comments := rg.Group("/comments")
	{
		comments.POST("", h.Create)
		comments.PUT("/:comment_id", h.Update)
		comments.DELETE("/:comment_id", h.Delete)
	}
}

// Create a comment on a film
// POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), caller, req.FilmID, req.Text)
	if err != nil {
		respondError(c, caller, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToCommentResponse(comment))
}

// Update a comment (author only)
// PUT /api/comments/:comment_id
func (h *CommentHandler) Update(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	var req dto.UpdateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), caller, commentID, req.Text)
	if err != nil {
		respondError(c, caller, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToCommentResponse(comment))
}

// Delete a comment (author or admin)
// DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), caller, commentID); err != nil {
		respondError(c, caller, err)
		return
	}
	c.Status(http.StatusNoContent)
}
