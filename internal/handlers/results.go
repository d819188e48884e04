package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jarodreyes/prize-survey/internal/services"
)

type ResultsHandler struct {
	resultsService  *services.ResultsService
	activityService *services.ActivityService
}

func NewResultsHandler(resultsService *services.ResultsService, activityService *services.ActivityService) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService, activityService: activityService}
}

// GetResults godoc
// @Summary      Aggregated survey results
// @Description  Response counts grouped by option, reflecting committed state at read time
// @Tags         results
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} services.AggregateResults
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/results/{sessionId} [get]
func (h *ResultsHandler) GetResults(c *gin.Context) {
	results, err := h.resultsService.Aggregate(c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":       results.Session,
		"responseCount": results.ResponseCount,
		"results": gin.H{
			"preferredLlm":       results.PreferredLlm,
			"preferredFramework": results.PreferredFramework,
			"jobHunting":         results.JobHunting,
			"funQuestions":       results.FunQuestions,
		},
		"success": true,
	})
}

// ActivityFeed godoc
// @Summary      Recent submission activity
// @Description  Display-only feed of submission notices, newest first
// @Tags         activity
// @Produce      json
// @Param        sessionId query string true "Session ID"
// @Param        limit query int false "Max entries (1-50, default 20)"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/activity/feed [get]
func (h *ResultsHandler) ActivityFeed(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "sessionId is required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.activityService.Feed(sessionID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	activities := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		activities = append(activities, gin.H{
			"id":        e.ID,
			"message":   e.Message,
			"createdAt": e.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"success":    true,
	})
}
