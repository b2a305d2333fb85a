package handler

import (
	"errors"
	"net/http"

	"filmhub/internal/http-api/apperr"
	"filmhub/internal/http-api/authz"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error kind to an HTTP status. A denied action
// is 403 for a known caller and 401 for an anonymous one.
func respondError(c *gin.Context, caller authz.Caller, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrForbidden):
		if caller.Authenticated {
			status = http.StatusForbidden
		} else {
			status = http.StatusUnauthorized
		}
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
