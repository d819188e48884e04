package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarodreyes/prize-survey/internal/metrics"
	"github.com/jarodreyes/prize-survey/internal/middleware"
	"github.com/jarodreyes/prize-survey/internal/services"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
	authService       *services.AuthService
}

func NewSubmissionHandler(submissionService *services.SubmissionService, authService *services.AuthService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService, authService: authService}
}

type SubmitResponseRequest struct {
	SessionCode        string            `json:"sessionCode" binding:"required,len=6" example:"52XZ1W"`
	Name               string            `json:"name" binding:"required,max=100" example:"Alice Johnson"`
	Email              string            `json:"email" binding:"required,email" example:"alice@example.com"`
	Title              string            `json:"title" binding:"required,max=100" example:"Backend Engineer"`
	PreferredLlm       string            `json:"preferredLlm" binding:"required" example:"Claude 3 Opus"`
	PreferredFramework string            `json:"preferredFramework" binding:"required" example:"React"`
	Location           string            `json:"location" binding:"required,max=100" example:"Seattle, WA"`
	JobHunting         *bool             `json:"jobHunting" binding:"required" example:"false"`
	FunAnswers         map[string]string `json:"funAnswers" binding:"required"`
	AgreeToTerms       bool              `json:"agreeToTerms" example:"true"`
}

// SubmitResponse godoc
// @Summary      Submit a survey response
// @Description  Accepts one response per attendee per session and fans out count updates
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        request body SubmitResponseRequest true "Response data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Router       /api/v1/responses [post]
func (h *SubmissionHandler) SubmitResponse(c *gin.Context) {
	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.SubmissionsRejected.WithLabelValues("validation").Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !req.AgreeToTerms {
		metrics.SubmissionsRejected.WithLabelValues("validation").Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "you must agree to the terms to continue"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		user = services.NewIdentity(req.Name, req.Email)
		if token, err := h.authService.IssueToken(user); err == nil {
			c.SetCookie(middleware.IdentityCookie, token, identityCookieMaxAge, "/", "", false, true)
		}
	}

	_, err := h.submissionService.Submit(services.SubmitRequest{
		SessionCode: req.SessionCode,
		Identity: services.Identity{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Title:              req.Title,
		PreferredLlm:       req.PreferredLlm,
		PreferredFramework: req.PreferredFramework,
		Location:           req.Location,
		JobHunting:         *req.JobHunting,
		FunAnswers:         req.FunAnswers,
	})
	if err != nil {
		metrics.SubmissionsRejected.WithLabelValues(rejectionReason(err)).Inc()
		respondError(c, err)
		return
	}

	metrics.SubmissionsAccepted.Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Response submitted successfully",
	})
}

func rejectionReason(err error) string {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return "validation"
	case errors.Is(err, services.ErrSessionNotFound):
		return "session_not_found"
	case errors.Is(err, services.ErrSessionInactive):
		return "session_inactive"
	case errors.Is(err, services.ErrDuplicateSubmission):
		return "duplicate"
	default:
		return "internal"
	}
}
