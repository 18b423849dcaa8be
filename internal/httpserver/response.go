package httpserver

import (
	"errors"
	"net/http"

	"quickbite/internal/domain"
	authsvc "quickbite/internal/service/auth"

	"github.com/gin-gonic/gin"
)

// All endpoints speak the same envelope: {success:true, data} on success and
// {success:false, message} on failure, with the HTTP status carrying the
// error class.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, err error) {
	status, message := classify(err)
	c.JSON(status, gin.H{"success": false, "message": message})
}

func classify(err error) (int, string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest, "order must have at least one item"
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, authsvc.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or missing token"
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "not authorized"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "invalid status transition"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
