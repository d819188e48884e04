package models

import "time"

// ActivityEntry is a display-only log line; counts always come from responses.
type ActivityEntry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID string    `gorm:"type:uuid;not null;index:idx_activity_session_time" json:"session_id"`
	Message   string    `gorm:"size:255;not null" json:"message"`
	CreatedAt time.Time `gorm:"index:idx_activity_session_time" json:"created_at"`
}

func (ActivityEntry) TableName() string {
	return "activity"
}
