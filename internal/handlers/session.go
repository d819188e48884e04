package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarodreyes/prize-survey/internal/metrics"
	"github.com/jarodreyes/prize-survey/internal/services"
)

type SessionHandler struct {
	sessionService *services.SessionService
	baseURL        string
}

func NewSessionHandler(sessionService *services.SessionService, baseURL string) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, baseURL: baseURL}
}

type CreateSessionRequest struct {
	HostIdentity string `json:"hostIdentity" example:"octocat"`
}

// CreateSession godoc
// @Summary      Create a survey session
// @Description  Creates a session with a unique 6-character join code
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body CreateSessionRequest false "Session data"
// @Success      200 {object} MessageResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	// An empty body is fine; the host identity is optional.
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessionService.Create(req.HostIdentity)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.SessionsCreated.Inc()
	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.ID,
		"code":      session.Code,
		"joinUrl":   h.baseURL + "/join?code=" + session.Code,
		"success":   true,
	})
}

// SessionStatus godoc
// @Summary      Look up a session by code
// @Tags         sessions
// @Produce      json
// @Param        code query string true "6-character join code"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/status [get]
func (h *SessionHandler) SessionStatus(c *gin.Context) {
	code := c.Query("code")
	if len(code) != 6 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "code must be 6 characters"})
		return
	}

	session, err := h.sessionService.GetByCode(code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        session.ID,
		"code":      session.Code,
		"active":    session.Active,
		"createdAt": session.CreatedAt,
		"success":   true,
	})
}

// EndSession godoc
// @Summary      End a session
// @Description  Marks a session inactive; further submissions are rejected
// @Tags         sessions
// @Produce      json
// @Param        X-Admin-API-Key header string true "Admin API key"
// @Param        id path string true "Session ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/end [post]
func (h *SessionHandler) EndSession(c *gin.Context) {
	session, err := h.sessionService.End(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      session.ID,
		"code":    session.Code,
		"active":  session.Active,
		"success": true,
	})
}
