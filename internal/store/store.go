// Package store defines the data store boundary consumed by the profile
// resolver, the usage limiter, and the permission evaluator's ownership
// checks: row lookups/updates for profile, role, daily-limit, daily-usage,
// and resource-ownership records, keyed by principal id and (for usage)
// calendar date.
package store

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/models"
)

// DayLayout is the format for usage-row calendar dates.
const DayLayout = "2006-01-02"

// Day returns t's calendar day at the UTC date boundary.
func Day(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ProfileRow is the core profile record for a principal.
type ProfileRow struct {
	ID          string
	Email       string
	FullName    string
	Status      models.Status
	Preferences map[string]any
	LastLogin   time.Time
	CreatedAt   time.Time
}

// Store is the data store as seen by this module.
//
// Lookups return common.ErrorNotFound when zero rows match; callers decide
// whether an absent row is an error or a default.
type Store interface {
	GetProfile(ctx context.Context, principalID string) (*ProfileRow, error)
	GetRole(ctx context.Context, principalID string) (models.Role, error)
	GetDailyLimits(ctx context.Context, principalID string) (models.DailyLimits, error)
	GetDailyUsage(ctx context.Context, principalID, day string) (models.UsageCounts, error)

	// CreateDailyUsage inserts a zero usage row for the given day.
	// Inserting an already-present row is not an error.
	CreateDailyUsage(ctx context.Context, principalID, day string) error

	// IncrementDailyUsage adds one to the counter for kind on the given day,
	// creating the row if it does not exist yet.
	IncrementDailyUsage(ctx context.Context, principalID, day string, kind models.LimitKind) error

	UpdateLastLogin(ctx context.Context, principalID string, at time.Time) error

	// ResourceOwner returns the principal id owning the given resource.
	ResourceOwner(ctx context.Context, resourceType, resourceID string) (string, error)
}
