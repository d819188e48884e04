package services

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jarodreyes/prize-survey/internal/models"
	"github.com/jarodreyes/prize-survey/internal/realtime"
)

const (
	codeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength      = 6
	maxCodeAttempts = 10
)

type SessionService struct {
	db   *gorm.DB
	sink realtime.Sink
}

func NewSessionService(db *gorm.DB, sink realtime.Sink) *SessionService {
	return &SessionService{db: db, sink: sink}
}

// Create inserts a session with a fresh join code, retrying on code
// collisions up to maxCodeAttempts before giving up.
func (s *SessionService) Create(hostIdentity string) (*models.Session, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		session := models.Session{
			ID:           uuid.NewString(),
			Code:         generateCode(),
			HostIdentity: hostIdentity,
			Active:       true,
		}

		err := s.db.Create(&session).Error
		if err == nil {
			s.sink.Publish(realtime.SessionChannel(session.ID), "session_created", map[string]interface{}{
				"sessionId": session.ID,
				"code":      session.Code,
			})
			return &session, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return nil, err
	}
	return nil, ErrCodeExhausted
}

func (s *SessionService) GetByCode(code string) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("code = ?", code).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) GetByID(id string) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// End deactivates a session. Further submissions against it fail with
// ErrSessionInactive; the session row itself is never deleted.
func (s *SessionService) End(id string) (*models.Session, error) {
	session, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !session.Active {
		return session, nil
	}

	if err := s.db.Model(&models.Session{}).Where("id = ?", id).Update("active", false).Error; err != nil {
		return nil, err
	}
	session.Active = false
	return session, nil
}

func generateCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(code)
}
