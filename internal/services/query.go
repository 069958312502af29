package services

import (
	"context"

	"contest-backend/internal/models"
	"contest-backend/internal/store"
)

// QueryService assembles the read models. It owns no state of its own.
type QueryService struct {
	contests *store.ContestStore
	ledger   *store.ParticipationLedger
}

func NewQueryService(contests *store.ContestStore, ledger *store.ParticipationLedger) *QueryService {
	return &QueryService{contests: contests, ledger: ledger}
}

type CurrentContest struct {
	models.Contest
	ParticipantCount int64 `json:"participant_count"`
}

type ContestStats struct {
	TotalContests       int64 `json:"total_contests"`
	TotalParticipants   int64 `json:"total_participants"`
	CurrentParticipants int64 `json:"current_participants"`
}

type ContestHistory struct {
	Contests []models.Contest `json:"contests"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// GetCurrent returns the active contest, or the next scheduled one if no
// contest is active yet. Closed and archived contests are never current.
// The participant count comes live from the ledger, the authoritative
// source, rather than the cached counter.
func (s *QueryService) GetCurrent(ctx context.Context) (*CurrentContest, error) {
	contest, err := s.contests.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if contest == nil {
		contest, err = s.contests.GetScheduled(ctx)
		if err != nil {
			return nil, err
		}
		if contest == nil {
			return nil, ErrNoCurrentContest
		}
	}

	count, err := s.ledger.CountForContest(ctx, contest.ID)
	if err != nil {
		return nil, err
	}
	return &CurrentContest{Contest: *contest, ParticipantCount: count}, nil
}

// GetStats folds over both stores. The aggregates are separate reads with
// no cross-store transaction, so they can be mutually stale by the few
// writes that land in between; callers get a point-in-time approximation.
func (s *QueryService) GetStats(ctx context.Context) (*ContestStats, error) {
	totalContests, err := s.contests.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalParticipants, err := s.ledger.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ContestStats{
		TotalContests:     totalContests,
		TotalParticipants: totalParticipants,
	}

	active, err := s.contests.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		current, err := s.ledger.CountForContest(ctx, active.ID)
		if err != nil {
			return nil, err
		}
		stats.CurrentParticipants = current
	}
	return stats, nil
}

func (s *QueryService) GetHistory(ctx context.Context, limit, offset int) (*ContestHistory, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	contests, total, err := s.contests.ListHistory(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &ContestHistory{
		Contests: contests,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}
