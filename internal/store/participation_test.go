package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"contest-backend/internal/clock"
	"contest-backend/internal/store"
	"contest-backend/internal/testutil"

	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) *store.ParticipationLedger {
	t.Helper()
	return store.NewParticipationLedger(testutil.OpenDB(t), clock.NewFake(t0), testutil.Timeout)
}

func TestRecordAndDuplicate(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	p, err := l.Record(ctx, 1, 42)
	require.NoError(t, err)
	require.Equal(t, uint(1), p.ContestID)
	require.Equal(t, uint(42), p.UserID)
	require.Equal(t, t0, p.ParticipatedAt)

	_, err = l.Record(ctx, 1, 42)
	require.ErrorIs(t, err, store.ErrDuplicateParticipation)

	// Same user, different contest is a fresh entry.
	_, err = l.Record(ctx, 2, 42)
	require.NoError(t, err)
}

func TestConcurrentRecordsSingleWinner(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	const n = 8
	results := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = l.Record(ctx, 7, 99)
		}(i)
	}
	wg.Wait()

	var successes, duplicates int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, store.ErrDuplicateParticipation):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, successes)
	require.Equal(t, n-1, duplicates)
}

func TestHasParticipated(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	ok, err := l.HasParticipated(ctx, 1, 42)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = l.Record(ctx, 1, 42)
	require.NoError(t, err)

	ok, err = l.HasParticipated(ctx, 1, 42)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	for _, pair := range [][2]uint{{1, 10}, {1, 11}, {2, 10}} {
		_, err := l.Record(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	total, err := l.CountAll(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)

	forContest, err := l.CountForContest(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 2, forContest)
}
