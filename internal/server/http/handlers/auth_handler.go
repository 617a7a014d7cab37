package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/server/http/dto"
	"github.com/devansh6012/online-store-test/internal/server/http/middleware"
)

// AuthHandler processes registration, login, and profile endpoints.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.facade.User(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.facade.UpdateProfile(c.Request.Context(), CurrentUserID(c), model.ProfileChange{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteAccount handles DELETE /api/auth/account. Accounts with existing
// orders are kept for order history and reported as a conflict.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.facade.DeleteAccount(c.Request.Context(), CurrentUserID(c)); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
