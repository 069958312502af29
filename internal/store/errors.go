package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrContestNotFound        = errors.New("contest not found")
	ErrContestNotActive       = errors.New("contest is not active")
	ErrDuplicateParticipation = errors.New("user already participated in this contest")
	ErrPreconditionFailed     = errors.New("precondition failed")
	ErrStoreUnavailable       = errors.New("store unavailable")
)

// wrapErr translates timeouts and cancellations into ErrStoreUnavailable so
// callers can tell a retryable store failure apart from a domain failure.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
