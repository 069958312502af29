package store

import (
	"context"
	"errors"
	"time"

	"contest-backend/internal/clock"
	"contest-backend/internal/models"

	"gorm.io/gorm"
)

// ParticipationLedger owns the participations table, the immutable record of
// who entered which contest. Uniqueness is enforced by the database's
// composite unique index, never by an application-level check before the
// insert: two concurrent inserts for the same (contest, user) pair resolve
// to one success and one ErrDuplicateParticipation.
type ParticipationLedger struct {
	db      *gorm.DB
	clk     clock.Clock
	timeout time.Duration
}

func NewParticipationLedger(db *gorm.DB, clk clock.Clock, timeout time.Duration) *ParticipationLedger {
	return &ParticipationLedger{db: db, clk: clk, timeout: timeout}
}

// Record inserts a participation row, relying on the unique index for
// duplicate detection. Requires gorm's TranslateError so unique violations
// surface as gorm.ErrDuplicatedKey across drivers.
func (l *ParticipationLedger) Record(ctx context.Context, contestID, userID uint) (*models.Participation, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	p := models.Participation{
		ContestID:      contestID,
		UserID:         userID,
		ParticipatedAt: l.clk.Now(),
	}
	err := l.db.WithContext(ctx).Create(&p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateParticipation
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &p, nil
}

func (l *ParticipationLedger) HasParticipated(ctx context.Context, contestID, userID uint) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	var count int64
	err := l.db.WithContext(ctx).Model(&models.Participation{}).
		Where("contest_id = ? AND user_id = ?", contestID, userID).
		Count(&count).Error
	if err != nil {
		return false, wrapErr(err)
	}
	return count > 0, nil
}

func (l *ParticipationLedger) CountForContest(ctx context.Context, contestID uint) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	var count int64
	err := l.db.WithContext(ctx).Model(&models.Participation{}).
		Where("contest_id = ?", contestID).
		Count(&count).Error
	if err != nil {
		return 0, wrapErr(err)
	}
	return count, nil
}

func (l *ParticipationLedger) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	var count int64
	if err := l.db.WithContext(ctx).Model(&models.Participation{}).Count(&count).Error; err != nil {
		return 0, wrapErr(err)
	}
	return count, nil
}
