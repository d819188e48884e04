package models

import "time"

type Participant struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID string    `gorm:"type:uuid;not null;uniqueIndex:idx_participant_session_user" json:"session_id"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_participant_session_user" json:"user_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
