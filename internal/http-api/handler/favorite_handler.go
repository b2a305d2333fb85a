package handler

import (
	"net/http"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/middleware"
	"filmhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	engagementService service.EngagementService
}

func NewFavoriteHandler(engagementService service.EngagementService) *FavoriteHandler {
	return &FavoriteHandler{engagementService: engagementService}
}

func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/favorites", h.List)
}

// List returns the caller's favorites. The query is keyed by the caller's
// identity only; no parameter can widen it to another user's rows.
// GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	favorites, err := h.engagementService.ListFavorites(c.Request.Context(), caller)
	if err != nil {
		respondError(c, caller, err)
		return
	}

	items := make([]dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		items = append(items, dto.FromModelToFavoriteResponse(&favorites[i]))
	}

	c.JSON(http.StatusOK, dto.FavoritesListResponse{
		Items: items,
		Total: len(items),
	})
}
