package handlers

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jarodreyes/prize-survey/internal/services"
	"github.com/jarodreyes/prize-survey/internal/survey"
)

type ExportHandler struct {
	resultsService *services.ResultsService
}

func NewExportHandler(resultsService *services.ResultsService) *ExportHandler {
	return &ExportHandler{resultsService: resultsService}
}

// ExportCSV godoc
// @Summary      Export session responses as CSV
// @Tags         sessions
// @Produce      text/csv
// @Param        X-Admin-API-Key header string true "Admin API key"
// @Param        id path string true "Session ID"
// @Success      200 {string} string "CSV payload"
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/export.csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	sessionID := c.Param("id")

	rows, err := h.resultsService.Export(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=responses-%s.csv", sessionID))

	w := csv.NewWriter(c.Writer)
	header := []string{"name", "email", "title", "preferred_llm", "preferred_framework", "location", "job_hunting"}
	for _, q := range survey.FunQuestions {
		header = append(header, q.ID)
	}
	header = append(header, "submitted_at")
	w.Write(header)

	for _, row := range rows {
		record := []string{
			row.Name,
			row.Email,
			row.Title,
			row.PreferredLlm,
			row.PreferredFramework,
			row.Location,
			strconv.FormatBool(row.JobHunting),
		}
		for _, q := range survey.FunQuestions {
			record = append(record, row.FunAnswers[q.ID])
		}
		record = append(record, row.CreatedAt.Format("2006-01-02 15:04:05"))
		w.Write(record)
	}
	w.Flush()
}
