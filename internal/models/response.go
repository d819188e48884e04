package models

import "time"

type Response struct {
	ID                 string            `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID          string            `gorm:"type:uuid;not null;index" json:"session_id"`
	ParticipantID      string            `gorm:"type:uuid;not null;uniqueIndex" json:"participant_id"`
	Title              string            `gorm:"size:100;not null" json:"title"`
	PreferredLlm       string            `gorm:"size:100;not null" json:"preferred_llm"`
	PreferredFramework string            `gorm:"size:100;not null" json:"preferred_framework"`
	Location           string            `gorm:"size:100;not null" json:"location"`
	JobHunting         bool              `gorm:"not null" json:"job_hunting"`
	FunAnswers         map[string]string `gorm:"serializer:json;type:jsonb" json:"fun_answers"`
	CreatedAt          time.Time         `json:"created_at"`
}
