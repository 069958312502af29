package models

import "time"

type Contest struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Title               string     `gorm:"size:200;not null" json:"title"`
	Description         string     `gorm:"type:text" json:"description"`
	WindowStart         time.Time  `gorm:"not null;index" json:"window_start"`
	WindowEnd           time.Time  `gorm:"not null" json:"window_end"`
	Status              string     `gorm:"size:20;not null;default:'scheduled';index" json:"status"`
	CurrentParticipants int        `gorm:"not null;default:0" json:"current_participants"`
	CreatedAt           time.Time  `json:"created_at"`
	ClosedAt            *time.Time `json:"closed_at,omitempty"`
}

const (
	ContestStatusScheduled = "scheduled"
	ContestStatusActive    = "active"
	ContestStatusClosed    = "closed"
	ContestStatusArchived  = "archived"
)
