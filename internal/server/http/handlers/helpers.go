package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/devansh6012/online-store-test/internal/domain/errors"
	"github.com/devansh6012/online-store-test/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// pathID parses a numeric path parameter. A zero return means the parameter
// was absent or malformed and a 400 was already written.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// writeDomainError maps domain sentinel errors onto HTTP statuses.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		writeError(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		writeError(c, http.StatusBadRequest, "unknown order status")
	case errors.Is(err, domainErrors.ErrInvalidRole):
		writeError(c, http.StatusBadRequest, "unknown role")
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domainErrors.ErrNotFound):
		writeError(c, http.StatusNotFound, "not found")
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		writeError(c, http.StatusConflict, "already exists")
	case errors.Is(err, domainErrors.ErrInsufficientStock):
		writeError(c, http.StatusConflict, "insufficient stock")
	case errors.Is(err, domainErrors.ErrTotalMismatch):
		writeError(c, http.StatusConflict, "total mismatch")
	case errors.Is(err, domainErrors.ErrConflict):
		writeError(c, http.StatusConflict, "conflict")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
