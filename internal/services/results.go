package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jarodreyes/prize-survey/internal/models"
)

type OptionCount struct {
	Option string `json:"option"`
	Count  int    `json:"count"`
}

type AggregateResults struct {
	Session            *models.Session           `json:"session"`
	ResponseCount      int                       `json:"responseCount"`
	PreferredLlm       []OptionCount             `json:"preferredLlm"`
	PreferredFramework []OptionCount             `json:"preferredFramework"`
	JobHunting         []OptionCount             `json:"jobHunting"`
	FunQuestions       map[string]map[string]int `json:"funQuestions"`
}

type ResultsService struct {
	db *gorm.DB
}

func NewResultsService(db *gorm.DB) *ResultsService {
	return &ResultsService{db: db}
}

// Aggregate reads whatever has committed at call time; views refresh by
// polling or by reacting to results_updated events.
func (s *ResultsService) Aggregate(sessionID string) (*AggregateResults, error) {
	session, err := s.sessionByID(sessionID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Response{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		return nil, err
	}

	llm, err := s.countByColumn(sessionID, "preferred_llm")
	if err != nil {
		return nil, err
	}
	framework, err := s.countByColumn(sessionID, "preferred_framework")
	if err != nil {
		return nil, err
	}

	var jobHunting []OptionCount
	if err := s.db.Model(&models.Response{}).
		Select("CASE WHEN job_hunting THEN 'Yes' ELSE 'No' END AS option, count(*) AS count").
		Where("session_id = ?", sessionID).
		Group("job_hunting").
		Scan(&jobHunting).Error; err != nil {
		return nil, err
	}

	funQuestions, err := s.aggregateFunAnswers(sessionID)
	if err != nil {
		return nil, err
	}

	return &AggregateResults{
		Session:            session,
		ResponseCount:      int(count),
		PreferredLlm:       llm,
		PreferredFramework: framework,
		JobHunting:         jobHunting,
		FunQuestions:       funQuestions,
	}, nil
}

// ResponseRow is one exported response with its participant's identity.
type ResponseRow struct {
	Name               string
	Email              string
	Title              string
	PreferredLlm       string
	PreferredFramework string
	Location           string
	JobHunting         bool
	FunAnswers         map[string]string
	CreatedAt          time.Time
}

// Export lists a session's responses joined with participant identity,
// oldest first.
func (s *ResultsService) Export(sessionID string) ([]ResponseRow, error) {
	if _, err := s.sessionByID(sessionID); err != nil {
		return nil, err
	}

	var responses []models.Response
	if err := s.db.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&responses).Error; err != nil {
		return nil, err
	}

	var participants []models.Participant
	if err := s.db.Where("session_id = ?", sessionID).Find(&participants).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	rows := make([]ResponseRow, 0, len(responses))
	for _, r := range responses {
		p := byID[r.ParticipantID]
		rows = append(rows, ResponseRow{
			Name:               p.Name,
			Email:              p.Email,
			Title:              r.Title,
			PreferredLlm:       r.PreferredLlm,
			PreferredFramework: r.PreferredFramework,
			Location:           r.Location,
			JobHunting:         r.JobHunting,
			FunAnswers:         r.FunAnswers,
			CreatedAt:          r.CreatedAt,
		})
	}
	return rows, nil
}

func (s *ResultsService) sessionByID(sessionID string) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *ResultsService) countByColumn(sessionID, column string) ([]OptionCount, error) {
	var counts []OptionCount
	err := s.db.Model(&models.Response{}).
		Select(column + " AS option, count(*) AS count").
		Where("session_id = ?", sessionID).
		Group(column).
		Order("count(*) DESC").
		Scan(&counts).Error
	return counts, err
}

func (s *ResultsService) aggregateFunAnswers(sessionID string) (map[string]map[string]int, error) {
	var responses []models.Response
	if err := s.db.Select("fun_answers").
		Where("session_id = ?", sessionID).
		Find(&responses).Error; err != nil {
		return nil, err
	}

	tallies := make(map[string]map[string]int)
	for _, r := range responses {
		for questionID, answer := range r.FunAnswers {
			if tallies[questionID] == nil {
				tallies[questionID] = make(map[string]int)
			}
			tallies[questionID][answer]++
		}
	}
	return tallies, nil
}
