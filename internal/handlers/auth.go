package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarodreyes/prize-survey/internal/middleware"
	"github.com/jarodreyes/prize-survey/internal/services"
)

const identityCookieMaxAge = 7 * 24 * 3600

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Name  string `json:"name" binding:"required,max=100" example:"Alice Johnson"`
	Email string `json:"email" binding:"required,email" example:"alice@example.com"`
}

// Login godoc
// @Summary      Create an attendee identity
// @Description  Issues a signed identity cookie from a name and email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Identity data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user := services.NewIdentity(req.Name, req.Email)
	token, err := h.authService.IssueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(middleware.IdentityCookie, token, identityCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"name": user.Name, "email": user.Email},
	})
}
