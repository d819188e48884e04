package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jarodreyes/prize-survey/internal/models"
	"github.com/jarodreyes/prize-survey/internal/realtime"
	"github.com/jarodreyes/prize-survey/internal/survey"
)

// Identity is the attendee submitting a response. The id comes from the
// identity cookie, or is minted on first contact.
type Identity struct {
	ID    string
	Name  string
	Email string
}

type SubmitRequest struct {
	SessionCode        string
	Identity           Identity
	Title              string
	PreferredLlm       string
	PreferredFramework string
	Location           string
	JobHunting         bool
	FunAnswers         map[string]string
}

type SubmissionService struct {
	db   *gorm.DB
	sink realtime.Sink
}

func NewSubmissionService(db *gorm.DB, sink realtime.Sink) *SubmissionService {
	return &SubmissionService{db: db, sink: sink}
}

// Submit runs the full submission path: validate, resolve the session,
// reject duplicates, then write participant, response, and activity entry
// in one transaction. A unique-constraint race on the participant row is
// translated into ErrDuplicateSubmission.
func (s *SubmissionService) Submit(req SubmitRequest) (*models.Participant, error) {
	if err := validateSubmission(&req); err != nil {
		return nil, err
	}

	var session models.Session
	if err := s.db.Where("code = ?", req.SessionCode).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !session.Active {
		return nil, ErrSessionInactive
	}

	var existing models.Participant
	if err := s.db.Where("session_id = ? AND user_id = ?", session.ID, req.Identity.ID).
		First(&existing).Error; err == nil {
		return nil, ErrDuplicateSubmission
	}

	participant := models.Participant{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		UserID:    req.Identity.ID,
		Name:      req.Identity.Name,
		Email:     req.Identity.Email,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&participant).Error; err != nil {
			return err
		}

		response := models.Response{
			ID:                 uuid.NewString(),
			SessionID:          session.ID,
			ParticipantID:      participant.ID,
			Title:              survey.StripMarkup(req.Title),
			PreferredLlm:       req.PreferredLlm,
			PreferredFramework: req.PreferredFramework,
			Location:           survey.StripMarkup(req.Location),
			JobHunting:         req.JobHunting,
			FunAnswers:         req.FunAnswers,
		}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		entry := models.ActivityEntry{
			ID:        uuid.NewString(),
			SessionID: session.ID,
			Message:   survey.NameInitial(req.Identity.Name, "") + " submitted!",
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubmission
		}
		return nil, err
	}

	count, err := s.ResponseCount(session.ID)
	if err != nil {
		count = 0
	}

	channel := realtime.SessionChannel(session.ID)
	s.sink.Publish(channel, "response_submitted", map[string]interface{}{
		"participantName": survey.NameInitial(req.Identity.Name, ""),
		"count":           count,
	})
	s.sink.Publish(channel, "counter_updated", map[string]interface{}{"count": count})
	s.sink.Publish(channel, "results_updated", map[string]interface{}{"count": count})

	return &participant, nil
}

func (s *SubmissionService) ResponseCount(sessionID string) (int, error) {
	var count int64
	err := s.db.Model(&models.Response{}).Where("session_id = ?", sessionID).Count(&count).Error
	return int(count), err
}

func validateSubmission(req *SubmitRequest) error {
	req.Identity.Name = strings.TrimSpace(req.Identity.Name)
	req.Identity.Email = strings.ToLower(strings.TrimSpace(req.Identity.Email))

	if req.Identity.Name == "" || len(req.Identity.Name) > 100 {
		return &ValidationError{Field: "name", Message: "name is required and must be at most 100 characters"}
	}
	if !strings.Contains(req.Identity.Email, "@") {
		return &ValidationError{Field: "email", Message: "valid email is required"}
	}
	if title := survey.StripMarkup(req.Title); title == "" || len(title) > 100 {
		return &ValidationError{Field: "title", Message: "job title is required and must be at most 100 characters"}
	}
	if !survey.ValidLLM(req.PreferredLlm) {
		return &ValidationError{Field: "preferredLlm", Message: "must be one of the listed options"}
	}
	if !survey.ValidFramework(req.PreferredFramework) {
		return &ValidationError{Field: "preferredFramework", Message: "must be one of the listed options"}
	}
	if location := survey.StripMarkup(req.Location); location == "" || len(location) > 100 {
		return &ValidationError{Field: "location", Message: "location is required and must be at most 100 characters"}
	}
	for _, q := range survey.FunQuestions {
		if strings.TrimSpace(req.FunAnswers[q.ID]) == "" {
			return &ValidationError{Field: "funAnswers", Message: "an answer for " + q.ID + " is required"}
		}
	}
	return nil
}
