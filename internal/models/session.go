package models

import "time"

type Session struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Code         string    `gorm:"size:6;uniqueIndex;not null" json:"code"`
	HostIdentity string    `gorm:"size:255" json:"host_identity,omitempty"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
