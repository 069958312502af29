package services

import (
	"context"
	"errors"
	"log"

	"contest-backend/internal/clock"
	"contest-backend/internal/models"
	"contest-backend/internal/store"
)

// Notifier receives a fire-and-forget signal after a participation commits.
// Implementations must not block the request path.
type Notifier interface {
	ParticipationRecorded(contestID uint, p models.Participation)
}

type ParticipationService struct {
	contests *store.ContestStore
	ledger   *store.ParticipationLedger
	clk      clock.Clock
	notifier Notifier
}

func NewParticipationService(contests *store.ContestStore, ledger *store.ParticipationLedger, clk clock.Clock, notifier Notifier) *ParticipationService {
	return &ParticipationService{contests: contests, ledger: ledger, clk: clk, notifier: notifier}
}

// Participate records one user's entry into a contest at most once. The
// window check is re-derived from the clock, not the stored status alone, so
// a contest whose window ended between scheduler ticks already rejects
// entries. Uniqueness is left entirely to the ledger's unique index.
func (s *ParticipationService) Participate(ctx context.Context, contestID, userID uint) (*models.Participation, error) {
	contest, err := s.contests.GetByID(ctx, contestID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	if contest.Status != models.ContestStatusActive ||
		now.Before(contest.WindowStart) || !now.Before(contest.WindowEnd) {
		return nil, store.ErrContestNotActive
	}

	participation, err := s.ledger.Record(ctx, contestID, userID)
	if err != nil {
		return nil, err
	}

	// The counter is a read-path cache; the ledger stays authoritative, so
	// a failed increment does not undo the participation.
	if err := s.contests.IncrementParticipants(ctx, contestID); err != nil {
		log.Printf("participation: increment counter for contest %d: %v", contestID, err)
	}

	if s.notifier != nil {
		go s.notifier.ParticipationRecorded(contestID, *participation)
	}

	return participation, nil
}

func (s *ParticipationService) HasParticipated(ctx context.Context, contestID, userID uint) (bool, error) {
	return s.ledger.HasParticipated(ctx, contestID, userID)
}

// ErrNoCurrentContest is returned by the query side when neither an active
// nor a scheduled contest exists yet.
var ErrNoCurrentContest = errors.New("no current contest")
