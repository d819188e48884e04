package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jarodreyes/prize-survey/internal/survey"
)

type OptionsHandler struct{}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

// GetOptions godoc
// @Summary      Form option sets and prize tiers
// @Description  The closed enumerations validation uses, for clients to render
// @Tags         options
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/v1/options [get]
func (h *OptionsHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"llmOptions":       survey.LLMOptions,
		"frameworkOptions": survey.FrameworkOptions,
		"funQuestions":     survey.FunQuestions,
		"prizeTiers":       survey.PrizeTiers,
	})
}
