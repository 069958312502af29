package store

import (
	"context"
	"errors"
	"time"

	"contest-backend/internal/clock"
	"contest-backend/internal/models"

	"gorm.io/gorm"
)

// ContestStore owns the contests table. Lifecycle transitions go through
// UpdateStatus, a conditional single-statement update, so concurrent
// scheduler ticks (or replicas) can never double-advance a contest.
type ContestStore struct {
	db      *gorm.DB
	clk     clock.Clock
	timeout time.Duration
}

func NewContestStore(db *gorm.DB, clk clock.Clock, timeout time.Duration) *ContestStore {
	return &ContestStore{db: db, clk: clk, timeout: timeout}
}

func (s *ContestStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// GetActive returns the contest with status active, or nil if none.
func (s *ContestStore) GetActive(ctx context.Context) (*models.Contest, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var contest models.Contest
	err := s.db.WithContext(ctx).
		Where("status = ?", models.ContestStatusActive).
		First(&contest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &contest, nil
}

// GetScheduled returns the next scheduled contest (earliest window start),
// or nil if none.
func (s *ContestStore) GetScheduled(ctx context.Context) (*models.Contest, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var contest models.Contest
	err := s.db.WithContext(ctx).
		Where("status = ?", models.ContestStatusScheduled).
		Order("window_start ASC").
		First(&contest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &contest, nil
}

// GetLatest returns the contest with the latest window end regardless of
// status, or nil if the table is empty. The scheduler chains the next
// window onto it.
func (s *ContestStore) GetLatest(ctx context.Context) (*models.Contest, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var contest models.Contest
	err := s.db.WithContext(ctx).
		Order("window_end DESC").
		First(&contest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &contest, nil
}

func (s *ContestStore) GetByID(ctx context.Context, id uint) (*models.Contest, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var contest models.Contest
	err := s.db.WithContext(ctx).First(&contest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContestNotFound
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &contest, nil
}

// ListHistory returns closed and archived contests ordered by window start
// descending, plus the total count for pagination.
func (s *ContestStore) ListHistory(ctx context.Context, limit, offset int) ([]models.Contest, int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	statuses := []string{models.ContestStatusClosed, models.ContestStatusArchived}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Contest{}).
		Where("status IN ?", statuses).
		Count(&total).Error; err != nil {
		return nil, 0, wrapErr(err)
	}

	var contests []models.Contest
	if err := s.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("window_start DESC").
		Limit(limit).Offset(offset).
		Find(&contests).Error; err != nil {
		return nil, 0, wrapErr(err)
	}
	return contests, total, nil
}

// ListAll returns every contest regardless of status, newest window first.
func (s *ContestStore) ListAll(ctx context.Context) ([]models.Contest, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var contests []models.Contest
	if err := s.db.WithContext(ctx).
		Order("window_start DESC").
		Find(&contests).Error; err != nil {
		return nil, wrapErr(err)
	}
	return contests, nil
}

func (s *ContestStore) Create(ctx context.Context, contest *models.Contest) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return wrapErr(s.db.WithContext(ctx).Create(contest).Error)
}

// UpdateStatus advances a contest from one status to another. The update is
// conditional on the current status matching from; on a mismatch it is a
// no-op and ErrPreconditionFailed is returned, which makes retried or
// concurrent transitions harmless.
func (s *ContestStore) UpdateStatus(ctx context.Context, id uint, from, to string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	updates := map[string]interface{}{"status": to}
	if to == models.ContestStatusClosed {
		updates["closed_at"] = s.clk.Now()
	}

	res := s.db.WithContext(ctx).Model(&models.Contest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPreconditionFailed
	}
	return nil
}

// UpdateDetails changes display metadata only; lifecycle state stays owned
// by the scheduler.
func (s *ContestStore) UpdateDetails(ctx context.Context, id uint, title, description string) (*models.Contest, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).Model(&models.Contest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "description": description})
	if res.Error != nil {
		return nil, wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrContestNotFound
	}
	return s.GetByID(ctx, id)
}

// IncrementParticipants bumps the cached participant counter by one. The
// ledger row count stays authoritative; this counter only serves the fast
// read path.
func (s *ContestStore) IncrementParticipants(ctx context.Context, id uint) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return wrapErr(s.db.WithContext(ctx).Model(&models.Contest{}).
		Where("id = ?", id).
		Update("current_participants", gorm.Expr("current_participants + ?", 1)).Error)
}

func (s *ContestStore) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Contest{}).Count(&count).Error; err != nil {
		return 0, wrapErr(err)
	}
	return count, nil
}
