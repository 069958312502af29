// Package scheduler drives the weekly contest lifecycle:
// scheduled -> active -> closed -> archived.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"contest-backend/internal/clock"
	"contest-backend/internal/models"
	"contest-backend/internal/store"
)

type Engine struct {
	contests *store.ContestStore
	clk      clock.Clock
	interval time.Duration
	window   time.Duration

	mu       sync.RWMutex
	running  bool
	lastTick time.Time
	stopCh   chan struct{}
}

type Status struct {
	Running          bool       `json:"running"`
	LastTick         *time.Time `json:"last_tick,omitempty"`
	NextTick         *time.Time `json:"next_tick,omitempty"`
	CurrentContestID *uint      `json:"current_contest_id"`
	CurrentStatus    string     `json:"current_status,omitempty"`
}

func NewEngine(contests *store.ContestStore, clk clock.Clock, interval, window time.Duration) *Engine {
	return &Engine{
		contests: contests,
		clk:      clk,
		interval: interval,
		window:   window,
	}
}

func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.stopCh = make(chan struct{})
	stopCh := e.stopCh
	e.mu.Unlock()

	go e.loop(stopCh)
	log.Println("[scheduler] started")
}

func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	e.running = false
	close(e.stopCh)
	log.Println("[scheduler] stopped")
}

func (e *Engine) loop(stopCh chan struct{}) {
	e.runTick()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			e.runTick()
		}
	}
}

// runTick executes one tick and records its time. A failed tick is only
// logged; every transition is re-evaluated from scratch on the next tick,
// so a miss never corrupts state.
func (e *Engine) runTick() {
	if err := e.Tick(context.Background()); err != nil {
		log.Printf("[scheduler] tick failed: %v", err)
	}
	e.mu.Lock()
	e.lastTick = e.clk.Now()
	e.mu.Unlock()
}

// Tick is one evaluation of the contest lifecycle: close and archive an
// expired active contest, make sure a scheduled contest exists, then
// activate a scheduled contest whose window has started. Each transition is
// a conditional update, so a concurrent tick (or a second replica) losing
// the race is harmless.
func (e *Engine) Tick(ctx context.Context) error {
	now := e.clk.Now()

	active, err := e.contests.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("load active contest: %w", err)
	}
	if active != nil && !now.Before(active.WindowEnd) {
		if err := e.transition(ctx, active.ID, models.ContestStatusActive, models.ContestStatusClosed); err != nil {
			return err
		}
		if err := e.transition(ctx, active.ID, models.ContestStatusClosed, models.ContestStatusArchived); err != nil {
			return err
		}
		log.Printf("[scheduler] contest %d archived", active.ID)
	}

	next, err := e.contests.GetScheduled(ctx)
	if err != nil {
		return fmt.Errorf("load scheduled contest: %w", err)
	}
	if next == nil {
		created, err := e.createNext(ctx, now)
		if err != nil {
			return fmt.Errorf("create next contest: %w", err)
		}
		log.Printf("[scheduler] contest %d scheduled for %s", created.ID, created.WindowStart.Format(time.RFC3339))
		// Newly created contests are activated on a later tick.
		return nil
	}

	if !now.Before(next.WindowStart) {
		if err := e.transition(ctx, next.ID, models.ContestStatusScheduled, models.ContestStatusActive); err != nil {
			return err
		}
		log.Printf("[scheduler] contest %d activated", next.ID)
	}
	return nil
}

// transition applies a conditional status update and swallows
// ErrPreconditionFailed: it means another tick or replica already advanced
// the contest, which the next tick re-evaluates anyway.
func (e *Engine) transition(ctx context.Context, id uint, from, to string) error {
	err := e.contests.UpdateStatus(ctx, id, from, to)
	if errors.Is(err, store.ErrPreconditionFailed) {
		log.Printf("[scheduler] contest %d already left status %q, skipping", id, from)
		return nil
	}
	return err
}

// createNext chains the next contest window onto the latest known window
// end, or starts from now at bootstrap.
func (e *Engine) createNext(ctx context.Context, now time.Time) (*models.Contest, error) {
	start := now
	latest, err := e.contests.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	if latest != nil && latest.WindowEnd.After(start) {
		start = latest.WindowEnd
	}

	contest := &models.Contest{
		Title:       fmt.Sprintf("Weekly Contest %s", start.UTC().Format("2006-01-02")),
		Description: fmt.Sprintf("Weekly contest running from %s to %s", start.UTC().Format("Jan 2, 2006"), start.Add(e.window).UTC().Format("Jan 2, 2006")),
		WindowStart: start,
		WindowEnd:   start.Add(e.window),
		Status:      models.ContestStatusScheduled,
	}
	if err := e.contests.Create(ctx, contest); err != nil {
		return nil, err
	}
	return contest, nil
}

// Status reports the engine state for GET /scheduler/status. The current
// contest is looked up from the store on every call rather than cached, so
// all replicas answer consistently.
func (e *Engine) Status(ctx context.Context) Status {
	e.mu.RLock()
	st := Status{Running: e.running}
	if !e.lastTick.IsZero() {
		last := e.lastTick
		st.LastTick = &last
		next := last.Add(e.interval)
		st.NextTick = &next
	}
	e.mu.RUnlock()

	current, err := e.contests.GetActive(ctx)
	if err != nil {
		log.Printf("[scheduler] status: load active contest: %v", err)
		return st
	}
	if current == nil {
		current, err = e.contests.GetScheduled(ctx)
		if err != nil || current == nil {
			return st
		}
	}
	st.CurrentContestID = &current.ID
	st.CurrentStatus = current.Status
	return st
}
