package profile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	"github.com/dmitrijs2005/authkeeper/internal/store"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeStore scripts per-call outcomes. profileErrs is consumed one error per
// GetProfile call; once drained, calls succeed.
type fakeStore struct {
	mu sync.Mutex

	profile     *store.ProfileRow
	profileErrs []error
	profileN    int

	role    models.Role
	roleErr error

	limits    models.DailyLimits
	limitsErr error

	usage    models.UsageCounts
	usageErr error

	createErr  error
	createDone chan struct{}

	lastCreatePrincipal string
	lastCreateDay       string
}

func (f *fakeStore) GetProfile(ctx context.Context, principalID string) (*store.ProfileRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileN++
	if len(f.profileErrs) > 0 {
		err := f.profileErrs[0]
		f.profileErrs = f.profileErrs[1:]
		return nil, err
	}
	return f.profile, nil
}

func (f *fakeStore) GetRole(ctx context.Context, principalID string) (models.Role, error) {
	if f.roleErr != nil {
		return "", f.roleErr
	}
	return f.role, nil
}

func (f *fakeStore) GetDailyLimits(ctx context.Context, principalID string) (models.DailyLimits, error) {
	if f.limitsErr != nil {
		return models.DailyLimits{}, f.limitsErr
	}
	return f.limits, nil
}

func (f *fakeStore) GetDailyUsage(ctx context.Context, principalID, day string) (models.UsageCounts, error) {
	if f.usageErr != nil {
		return models.UsageCounts{}, f.usageErr
	}
	return f.usage, nil
}

func (f *fakeStore) CreateDailyUsage(ctx context.Context, principalID, day string) error {
	f.mu.Lock()
	f.lastCreatePrincipal = principalID
	f.lastCreateDay = day
	f.mu.Unlock()
	if f.createDone != nil {
		close(f.createDone)
	}
	return f.createErr
}

func (f *fakeStore) IncrementDailyUsage(ctx context.Context, principalID, day string, kind models.LimitKind) error {
	return nil
}

func (f *fakeStore) UpdateLastLogin(ctx context.Context, principalID string, at time.Time) error {
	return nil
}

func (f *fakeStore) ResourceOwner(ctx context.Context, resourceType, resourceID string) (string, error) {
	return "", common.ErrorNotFound
}

func baseProfile() *store.ProfileRow {
	return &store.ProfileRow{
		ID:        "u1",
		Email:     "u1@example.com",
		FullName:  "User One",
		Status:    models.StatusActive,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newTestResolver(st *fakeStore) *Resolver {
	r := NewResolver(st, testLogger(), 0, time.Millisecond)
	r.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestResolve_AllRowsPresent(t *testing.T) {
	st := &fakeStore{
		profile: baseProfile(),
		role:    models.RoleAnalyst,
		limits:  models.DailyLimits{AIAnalysis: 20, ChatMessages: 100, Exports: 5},
		usage:   models.UsageCounts{AIAnalysis: 2, ChatMessages: 10, Exports: 1},
	}
	r := newTestResolver(st)

	u, err := r.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	require.Equal(t, "u1@example.com", u.Email)
	require.Equal(t, models.RoleAnalyst, u.Role)
	require.Equal(t, models.StatusActive, u.Status)
	require.Equal(t, 20, u.DailyLimits.AIAnalysis)
	require.Equal(t, 10, u.UsageToday.ChatMessages)
	require.Equal(t, 1, st.profileN)
}

func TestResolve_RetriesAbsentProfileRow(t *testing.T) {
	// Right after sign-in the profile row may not be visible yet; an absent
	// row retries the same way a query error does.
	st := &fakeStore{
		profile:     baseProfile(),
		profileErrs: []error{common.ErrorNotFound, common.ErrorNotFound},
		role:        models.RoleViewer,
	}
	r := newTestResolver(st)

	u, err := r.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	require.Equal(t, 3, st.profileN)
}

func TestResolve_ExhaustedBudget(t *testing.T) {
	st := &fakeStore{
		profile:     baseProfile(),
		profileErrs: []error{common.ErrorNotFound, common.ErrorNotFound, common.ErrorNotFound},
	}
	r := newTestResolver(st)

	u, err := r.Resolve(context.Background(), "u1")
	require.Nil(t, u)
	require.ErrorIs(t, err, common.ErrProfileUnavailable)
	require.Equal(t, 3, st.profileN)
}

func TestResolve_DefaultsForMissingOptionalRows(t *testing.T) {
	st := &fakeStore{
		profile:   baseProfile(),
		roleErr:   common.ErrorNotFound,
		limitsErr: common.ErrorNotFound,
		usageErr:  common.ErrorNotFound,
	}
	r := newTestResolver(st)

	u, err := r.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, models.RoleGuest, u.Role)
	require.Equal(t, models.UnlimitedDailyLimits(), u.DailyLimits)
	require.Equal(t, models.UsageCounts{}, u.UsageToday)
}

func TestResolve_MissingUsageRowCreatedInBackground(t *testing.T) {
	st := &fakeStore{
		profile:    baseProfile(),
		role:       models.RoleViewer,
		usageErr:   common.ErrorNotFound,
		createDone: make(chan struct{}),
	}
	r := newTestResolver(st)

	_, err := r.Resolve(context.Background(), "u1")
	require.NoError(t, err)

	select {
	case <-st.createDone:
	case <-time.After(2 * time.Second):
		t.Fatal("usage row creation was not triggered")
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	require.Equal(t, "u1", st.lastCreatePrincipal)
	require.Equal(t, "2025-06-15", st.lastCreateDay)
}

func TestResolve_OptionalRowQueryErrorRetries(t *testing.T) {
	// A real query error on an optional row fails the attempt instead of
	// silently defaulting, so a flaky store cannot produce a guest user.
	st := &fakeStore{
		profile: baseProfile(),
		roleErr: errors.New("db down"),
	}
	r := newTestResolver(st)

	u, err := r.Resolve(context.Background(), "u1")
	require.Nil(t, u)
	require.ErrorIs(t, err, common.ErrProfileUnavailable)
	require.Equal(t, 3, st.profileN)
}
