// Package quota enforces per-day usage quotas with optimistic in-memory
// increments. A failed persistence never decrements locally; the authoritative
// counts are re-derived with a full user refresh instead, so concurrent
// in-flight increments cannot compound drift.
package quota

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	"github.com/dmitrijs2005/authkeeper/internal/store"
)

// WarningThreshold is the usage ratio past which a threshold warning is
// emitted. The warning is recomputed on every check while usage stays in
// [WarningThreshold, 1.0).
const WarningThreshold = 0.8

// WarnFunc surfaces a threshold warning to the caller.
type WarnFunc func(kind models.LimitKind, used, limit int)

// UserState is the slice of the session controller the limiter works
// against: a snapshot of the current user, a locked in-memory counter
// mutation, and the rollback refresh.
type UserState interface {
	CurrentUser() *models.User
	MutateUsage(kind models.LimitKind, delta int) (principalID string, ok bool)
	RefreshUser(ctx context.Context) error
}

type Limiter struct {
	store store.Store
	state UserState
	log   logging.Logger
	warn  WarnFunc
	now   func() time.Time
}

func NewLimiter(st store.Store, state UserState, log logging.Logger, warn WarnFunc) *Limiter {
	return &Limiter{store: st, state: state, log: log, warn: warn, now: time.Now}
}

// CheckDailyLimit reports whether one more unit of kind is allowed today.
// The Unlimited sentinel always allows. Checks are advisory: storage does
// not enforce the ceiling, this module just never knowingly exceeds it.
func (l *Limiter) CheckDailyLimit(kind models.LimitKind) bool {
	u := l.state.CurrentUser()
	if u == nil {
		return false
	}

	limit := u.DailyLimits.Get(kind)
	if limit == models.Unlimited {
		return true
	}

	used := u.UsageToday.Get(kind)
	if limit > 0 {
		ratio := float64(used) / float64(limit)
		if ratio >= WarningThreshold && ratio < 1.0 && l.warn != nil {
			l.warn(kind, used, limit)
		}
	}

	return used < limit
}

// IncrementUsage applies an optimistic in-memory increment, visible to
// callers immediately, then persists the counter. On persistence failure the
// optimistic value is rolled back by refreshing the whole user from the
// store; the failure itself is not surfaced.
func (l *Limiter) IncrementUsage(ctx context.Context, kind models.LimitKind) error {
	principalID, ok := l.state.MutateUsage(kind, 1)
	if !ok {
		return common.ErrNotAuthenticated
	}

	day := store.Day(l.now())
	if err := l.store.IncrementDailyUsage(ctx, principalID, day, kind); err != nil {
		l.log.Warn(ctx, "usage persistence failed, re-deriving counts", "kind", kind, "error", err)
		if rerr := l.state.RefreshUser(ctx); rerr != nil {
			l.log.Error(ctx, "rollback refresh failed", "error", rerr)
		}
	}

	return nil
}
