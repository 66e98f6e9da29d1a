// Package profile assembles the application-level User from the data store:
// the core profile row plus optional role, daily-limit, and daily-usage rows.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	"github.com/dmitrijs2005/authkeeper/internal/store"
)

const (
	// defaultAttempts is the total resolution attempt budget. Immediately
	// after sign-in the principal's own profile row may not be visible to
	// its own queries yet (authorization-context propagation lag), so an
	// absent row is retried like a query error.
	defaultAttempts = 3

	// defaultDelay separates consecutive attempts.
	defaultDelay = time.Second

	// usageCreateTimeout bounds the fire-and-forget creation of today's
	// zero usage row.
	usageCreateTimeout = 5 * time.Second
)

// Resolver builds a User for a principal id. It is stateless and reentrant;
// the caller guarantees at most one Resolve in flight per principal.
type Resolver struct {
	store store.Store
	log   logging.Logger

	attempts uint64
	delay    time.Duration
	now      func() time.Time
}

// NewResolver builds a resolver with the given retry policy. Zero values
// select the defaults (3 attempts, 1s apart).
func NewResolver(st store.Store, log logging.Logger, attempts uint64, delay time.Duration) *Resolver {
	if attempts == 0 {
		attempts = defaultAttempts
	}
	if delay <= 0 {
		delay = defaultDelay
	}
	return &Resolver{
		store:    st,
		log:      log,
		attempts: attempts,
		delay:    delay,
		now:      time.Now,
	}
}

// Resolve assembles a User for the given principal. Every failure inside an
// attempt counts toward the retry budget; exhausting the budget returns a
// nil user wrapped in common.ErrProfileUnavailable. A partial identity is
// never returned.
func (r *Resolver) Resolve(ctx context.Context, principalID string) (*models.User, error) {
	var user *models.User

	backoff := retry.WithMaxRetries(r.attempts-1, retry.NewConstant(r.delay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		u, err := r.attempt(ctx, principalID)
		if err != nil {
			r.log.Warn(ctx, "profile resolution attempt failed", "principal_id", principalID, "error", err)
			return retry.RetryableError(err)
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrProfileUnavailable, err)
	}

	return user, nil
}

func (r *Resolver) attempt(ctx context.Context, principalID string) (*models.User, error) {
	p, err := r.store.GetProfile(ctx, principalID)
	if err != nil {
		// An absent row retries the same way a query error does.
		return nil, fmt.Errorf("profile lookup: %w", err)
	}

	role := models.RoleGuest
	if got, err := r.store.GetRole(ctx, principalID); err == nil {
		role = got
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("role lookup: %w", err)
	}

	limits := models.UnlimitedDailyLimits()
	if got, err := r.store.GetDailyLimits(ctx, principalID); err == nil {
		limits = got
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("limits lookup: %w", err)
	}

	day := store.Day(r.now())
	var usage models.UsageCounts
	if got, err := r.store.GetDailyUsage(ctx, principalID, day); err == nil {
		usage = got
	} else if errors.Is(err, common.ErrorNotFound) {
		r.spawnUsageRowCreate(principalID, day)
	} else {
		return nil, fmt.Errorf("usage lookup: %w", err)
	}

	return &models.User{
		ID:          p.ID,
		Email:       p.Email,
		FullName:    p.FullName,
		Role:        role,
		Status:      p.Status,
		Preferences: p.Preferences,
		DailyLimits: limits,
		UsageToday:  usage,
		LastLogin:   p.LastLogin,
		CreatedAt:   p.CreatedAt,
	}, nil
}

// spawnUsageRowCreate creates today's zero usage row in the background.
// Resolution does not wait for it and its failure is only logged.
func (r *Resolver) spawnUsageRowCreate(principalID, day string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), usageCreateTimeout)
		defer cancel()

		if err := r.store.CreateDailyUsage(ctx, principalID, day); err != nil {
			r.log.Warn(ctx, "usage row creation failed", "principal_id", principalID, "day", day, "error", err)
		}
	}()
}
