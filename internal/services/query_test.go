package services_test

import (
	"context"
	"testing"
	"time"

	"contest-backend/internal/models"
	"contest-backend/internal/services"

	"github.com/stretchr/testify/require"
)

func newQueryFixture(t *testing.T) (*fixture, *services.QueryService) {
	t.Helper()
	f := newFixture(t)
	return f, services.NewQueryService(f.contests, f.ledger)
}

func TestGetCurrentActive(t *testing.T) {
	ctx := context.Background()
	f, q := newQueryFixture(t)
	c := f.createContest(t, models.ContestStatusActive, t0)
	f.clk.Advance(time.Hour)

	_, err := f.ledger.Record(ctx, c.ID, 10)
	require.NoError(t, err)
	_, err = f.ledger.Record(ctx, c.ID, 11)
	require.NoError(t, err)

	current, err := q.GetCurrent(ctx)
	require.NoError(t, err)
	require.Equal(t, c.ID, current.ID)
	require.Equal(t, models.ContestStatusActive, current.Status)
	// The count comes live from the ledger, not the cached counter.
	require.EqualValues(t, 2, current.ParticipantCount)
}

func TestGetCurrentFallsBackToScheduled(t *testing.T) {
	ctx := context.Background()
	f, q := newQueryFixture(t)
	c := f.createContest(t, models.ContestStatusScheduled, t0.Add(24*time.Hour))

	current, err := q.GetCurrent(ctx)
	require.NoError(t, err)
	require.Equal(t, c.ID, current.ID)
	require.Equal(t, models.ContestStatusScheduled, current.Status)
}

func TestGetCurrentNeverReturnsArchived(t *testing.T) {
	ctx := context.Background()
	f, q := newQueryFixture(t)
	f.createContest(t, models.ContestStatusArchived, t0)
	f.createContest(t, models.ContestStatusClosed, t0.Add(7*24*time.Hour))

	_, err := q.GetCurrent(ctx)
	require.ErrorIs(t, err, services.ErrNoCurrentContest)
}

func TestGetCurrentNone(t *testing.T) {
	_, q := newQueryFixture(t)

	_, err := q.GetCurrent(context.Background())
	require.ErrorIs(t, err, services.ErrNoCurrentContest)
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	f, q := newQueryFixture(t)
	archived := f.createContest(t, models.ContestStatusArchived, t0.Add(-7*24*time.Hour))
	active := f.createContest(t, models.ContestStatusActive, t0)
	f.clk.Advance(time.Hour)

	for _, p := range []struct{ contest, user uint }{
		{archived.ID, 10}, {archived.ID, 11}, {active.ID, 10},
	} {
		_, err := f.ledger.Record(ctx, p.contest, p.user)
		require.NoError(t, err)
	}

	stats, err := q.GetStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.TotalContests)
	require.EqualValues(t, 3, stats.TotalParticipants)
	require.EqualValues(t, 1, stats.CurrentParticipants)
}

func TestGetHistoryDefaults(t *testing.T) {
	ctx := context.Background()
	f, q := newQueryFixture(t)
	for i := 0; i < 12; i++ {
		f.createContest(t, models.ContestStatusArchived, t0.Add(time.Duration(i)*7*24*time.Hour))
	}

	history, err := q.GetHistory(ctx, 0, -5)
	require.NoError(t, err)
	require.Equal(t, 10, history.Limit)
	require.Equal(t, 0, history.Offset)
	require.Len(t, history.Contests, 10)
	require.EqualValues(t, 12, history.Total)
}
