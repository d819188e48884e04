package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarodreyes/prize-survey/internal/metrics"
	"github.com/jarodreyes/prize-survey/internal/services"
)

type RaffleHandler struct {
	raffleService *services.RaffleService
}

func NewRaffleHandler(raffleService *services.RaffleService) *RaffleHandler {
	return &RaffleHandler{raffleService: raffleService}
}

// DrawRaffle godoc
// @Summary      Draw the prize raffle
// @Description  Recomputes a randomized winner assignment for every unlocked tier. Each call re-shuffles.
// @Tags         raffle
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} services.RaffleResult
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/raffle/{sessionId} [get]
func (h *RaffleHandler) DrawRaffle(c *gin.Context) {
	result, err := h.raffleService.Draw(c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.RaffleDraws.Inc()
	c.JSON(http.StatusOK, result)
}
