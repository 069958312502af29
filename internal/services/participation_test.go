package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"contest-backend/internal/clock"
	"contest-backend/internal/models"
	"contest-backend/internal/services"
	"contest-backend/internal/store"
	"contest-backend/internal/testutil"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeNotifier struct {
	mu    sync.Mutex
	calls []uint
}

func (f *fakeNotifier) ParticipationRecorded(contestID uint, p models.Participation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, contestID)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fixture struct {
	contests *store.ContestStore
	ledger   *store.ParticipationLedger
	clk      *clock.Fake
	notifier *fakeNotifier
	svc      *services.ParticipationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenDB(t)
	clk := clock.NewFake(t0)
	contests := store.NewContestStore(db, clk, testutil.Timeout)
	ledger := store.NewParticipationLedger(db, clk, testutil.Timeout)
	notifier := &fakeNotifier{}
	return &fixture{
		contests: contests,
		ledger:   ledger,
		clk:      clk,
		notifier: notifier,
		svc:      services.NewParticipationService(contests, ledger, clk, notifier),
	}
}

func (f *fixture) createContest(t *testing.T, status string, start time.Time) *models.Contest {
	t.Helper()
	c := &models.Contest{
		Title:       "Weekly Contest",
		WindowStart: start,
		WindowEnd:   start.Add(7 * 24 * time.Hour),
		Status:      status,
	}
	require.NoError(t, f.contests.Create(context.Background(), c))
	return c
}

func TestParticipateSuccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.createContest(t, models.ContestStatusActive, t0)
	f.clk.Advance(time.Hour)

	p, err := f.svc.Participate(ctx, c.ID, 42)
	require.NoError(t, err)
	require.Equal(t, c.ID, p.ContestID)
	require.Equal(t, uint(42), p.UserID)

	got, err := f.contests.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.CurrentParticipants)

	require.Eventually(t, func() bool { return f.notifier.count() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestParticipateDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.createContest(t, models.ContestStatusActive, t0)
	f.clk.Advance(time.Hour)

	_, err := f.svc.Participate(ctx, c.ID, 42)
	require.NoError(t, err)

	_, err = f.svc.Participate(ctx, c.ID, 42)
	require.ErrorIs(t, err, store.ErrDuplicateParticipation)

	// The cached counter must not move on a duplicate.
	got, err := f.contests.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.CurrentParticipants)
}

func TestParticipateContestNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Participate(context.Background(), 999, 42)
	require.ErrorIs(t, err, store.ErrContestNotFound)
}

func TestParticipateScheduledContest(t *testing.T) {
	f := newFixture(t)
	c := f.createContest(t, models.ContestStatusScheduled, t0.Add(24*time.Hour))

	_, err := f.svc.Participate(context.Background(), c.ID, 42)
	require.ErrorIs(t, err, store.ErrContestNotActive)
}

func TestParticipateExpiredWindow(t *testing.T) {
	f := newFixture(t)
	c := f.createContest(t, models.ContestStatusActive, t0)

	// The scheduler has not closed the contest yet, but the window is
	// over: the time check is derived from the clock, not the stored
	// status.
	f.clk.Set(t0.Add(7*24*time.Hour + time.Minute))

	_, err := f.svc.Participate(context.Background(), c.ID, 42)
	require.ErrorIs(t, err, store.ErrContestNotActive)
}

func TestParticipateBeforeWindowStart(t *testing.T) {
	f := newFixture(t)
	// Status says active but the window has not opened yet.
	c := f.createContest(t, models.ContestStatusActive, t0.Add(time.Hour))

	_, err := f.svc.Participate(context.Background(), c.ID, 42)
	require.ErrorIs(t, err, store.ErrContestNotActive)
}

func TestConcurrentParticipateSingleWinner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.createContest(t, models.ContestStatusActive, t0)
	f.clk.Advance(time.Hour)

	const n = 6
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Participate(ctx, c.ID, 42)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			require.ErrorIs(t, err, store.ErrDuplicateParticipation)
		}
	}
	require.Equal(t, 1, successes)

	count, err := f.ledger.CountForContest(ctx, c.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
