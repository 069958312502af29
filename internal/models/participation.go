package models

import "time"

// Participation is an immutable ledger row: one user's entry into one contest.
// The composite unique index on (contest_id, user_id) is what enforces
// at-most-one participation per user per contest, including under
// concurrent inserts.
type Participation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ContestID      uint      `gorm:"not null;index;uniqueIndex:idx_contest_user" json:"contest_id"`
	UserID         uint      `gorm:"not null;index;uniqueIndex:idx_contest_user" json:"user_id"`
	ParticipatedAt time.Time `json:"participated_at"`
}
