package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jarodreyes/prize-survey/internal/metrics"
	"github.com/jarodreyes/prize-survey/internal/services"
	"github.com/jarodreyes/prize-survey/internal/survey"
)

// AdminHandler seeds synthetic submissions so hosts can rehearse the
// milestone and raffle flow before an event.
type AdminHandler struct {
	submissionService *services.SubmissionService
}

func NewAdminHandler(submissionService *services.SubmissionService) *AdminHandler {
	return &AdminHandler{submissionService: submissionService}
}

type AddTestUsersRequest struct {
	SessionCode string `json:"sessionCode" binding:"required,len=6" example:"52XZ1W"`
	Count       int    `json:"count" binding:"min=1,max=100" example:"25"`
}

var testFirstNames = []string{
	"Alex", "Jamie", "Casey", "Jordan", "Taylor", "Morgan", "Quinn", "Avery",
	"Riley", "Cameron", "Drew", "Blake", "Sage", "Parker", "Rowan", "Emery",
	"Finley", "Reese", "Dakota", "Hayden", "Peyton", "River", "Skyler",
	"Kendall", "Phoenix",
}

var testLastNames = []string{
	"Anderson", "Brown", "Chen", "Davis", "Evans", "Foster", "Garcia",
	"Harris", "Jackson", "Kim", "Lopez", "Miller", "Nguyen", "Patel",
	"Rodriguez", "Smith", "Taylor", "Wilson", "Lee", "Zhang",
}

var testTitles = []string{
	"Senior Software Engineer", "Frontend Developer", "Backend Engineer",
	"Full Stack Developer", "DevOps Engineer", "Data Scientist",
	"Product Manager", "UX Designer", "Technical Lead", "Staff Engineer",
}

var testLocations = []string{
	"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX",
	"Boston, MA", "Chicago, IL", "Denver, CO", "Portland, OR", "Remote",
	"London, UK", "Toronto, ON", "Berlin, Germany",
}

// AddTestUsers godoc
// @Summary      Seed synthetic submissions
// @Description  Generates test participants through the real submission path
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-API-Key header string true "Admin API key"
// @Param        request body AddTestUsersRequest true "Seed data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/test-users [post]
func (h *AdminHandler) AddTestUsers(c *gin.Context) {
	var req AddTestUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.Count == 0 {
		req.Count = 25
	}

	created := 0
	for i := 0; i < req.Count; i++ {
		identity := testIdentity(i)
		_, err := h.submissionService.Submit(services.SubmitRequest{
			SessionCode:        req.SessionCode,
			Identity:           identity,
			Title:              testTitles[rand.Intn(len(testTitles))],
			PreferredLlm:       survey.LLMOptions[rand.Intn(len(survey.LLMOptions))],
			PreferredFramework: survey.FrameworkOptions[rand.Intn(len(survey.FrameworkOptions))],
			Location:           testLocations[rand.Intn(len(testLocations))],
			JobHunting:         rand.Intn(2) == 0,
			FunAnswers:         testFunAnswers(),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		created++
		metrics.SubmissionsAccepted.Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"created": created,
	})
}

func testIdentity(index int) services.Identity {
	first := testFirstNames[rand.Intn(len(testFirstNames))]
	last := testLastNames[rand.Intn(len(testLastNames))]
	suffix := rand.Intn(1_000_000)
	return services.Identity{
		ID:    fmt.Sprintf("testuser_%06d_%03d", suffix, index),
		Name:  first + " " + last,
		Email: fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), suffix),
	}
}

func testFunAnswers() map[string]string {
	answers := make(map[string]string, len(survey.FunQuestions))
	for _, q := range survey.FunQuestions {
		answers[q.ID] = q.Options[rand.Intn(len(q.Options))]
	}
	return answers
}
