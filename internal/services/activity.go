package services

import (
	"gorm.io/gorm"

	"github.com/jarodreyes/prize-survey/internal/models"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 50
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Feed returns a session's activity entries newest-first.
func (s *ActivityService) Feed(sessionID string, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	entries := make([]models.ActivityEntry, 0, limit)
	err := s.db.Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
