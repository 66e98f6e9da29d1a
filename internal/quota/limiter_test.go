package quota

import (
	"context"
	"errors"
	"io"
	"log/slog"
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

// fakeState is an in-memory stand-in for the session controller.
type fakeState struct {
	user *models.User

	refreshCalls int
	refreshErr   error
}

func (f *fakeState) CurrentUser() *models.User {
	return f.user.Clone()
}

func (f *fakeState) MutateUsage(kind models.LimitKind, delta int) (string, bool) {
	if f.user == nil {
		return "", false
	}
	f.user.UsageToday.Add(kind, delta)
	return f.user.ID, true
}

func (f *fakeState) RefreshUser(ctx context.Context) error {
	f.refreshCalls++
	return f.refreshErr
}

type fakeUsageStore struct {
	store.Store

	incrementErr error

	lastPrincipal string
	lastDay       string
	lastKind      models.LimitKind
	incrementN    int
}

func (f *fakeUsageStore) IncrementDailyUsage(ctx context.Context, principalID, day string, kind models.LimitKind) error {
	f.incrementN++
	f.lastPrincipal = principalID
	f.lastDay = day
	f.lastKind = kind
	return f.incrementErr
}

func newTestLimiter(state *fakeState, st *fakeUsageStore, warn WarnFunc) *Limiter {
	l := NewLimiter(st, state, testLogger(), warn)
	l.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	return l
}

func limitedUser(limit, used int) *models.User {
	return &models.User{
		ID:          "u1",
		Role:        models.RoleViewer,
		DailyLimits: models.DailyLimits{AIAnalysis: limit, ChatMessages: limit, Exports: limit},
		UsageToday:  models.UsageCounts{AIAnalysis: used, ChatMessages: used, Exports: used},
	}
}

func TestCheckDailyLimit_NoUser(t *testing.T) {
	l := newTestLimiter(&fakeState{}, &fakeUsageStore{}, nil)
	require.False(t, l.CheckDailyLimit(models.LimitAIAnalysis))
}

func TestCheckDailyLimit_UnlimitedSentinel(t *testing.T) {
	u := limitedUser(models.Unlimited, 1_000_000)
	l := newTestLimiter(&fakeState{user: u}, &fakeUsageStore{}, func(models.LimitKind, int, int) {
		t.Fatal("no warning expected for unlimited quota")
	})
	require.True(t, l.CheckDailyLimit(models.LimitAIAnalysis))
}

func TestCheckDailyLimit_UnderThreshold(t *testing.T) {
	u := limitedUser(10, 7)
	warned := false
	l := newTestLimiter(&fakeState{user: u}, &fakeUsageStore{}, func(models.LimitKind, int, int) { warned = true })

	require.True(t, l.CheckDailyLimit(models.LimitChatMessages))
	require.False(t, warned)
}

func TestCheckDailyLimit_WarningBand(t *testing.T) {
	u := limitedUser(10, 8)
	var gotKind models.LimitKind
	var gotUsed, gotLimit int
	warnings := 0
	l := newTestLimiter(&fakeState{user: u}, &fakeUsageStore{}, func(kind models.LimitKind, used, limit int) {
		warnings++
		gotKind, gotUsed, gotLimit = kind, used, limit
	})

	require.True(t, l.CheckDailyLimit(models.LimitExports))
	require.Equal(t, 1, warnings)
	require.Equal(t, models.LimitExports, gotKind)
	require.Equal(t, 8, gotUsed)
	require.Equal(t, 10, gotLimit)

	// The warning is not de-duplicated; a second check in the band warns again.
	require.True(t, l.CheckDailyLimit(models.LimitExports))
	require.Equal(t, 2, warnings)
}

func TestCheckDailyLimit_AtLimit(t *testing.T) {
	u := limitedUser(10, 10)
	warned := false
	l := newTestLimiter(&fakeState{user: u}, &fakeUsageStore{}, func(models.LimitKind, int, int) { warned = true })

	require.False(t, l.CheckDailyLimit(models.LimitAIAnalysis))
	require.False(t, warned, "at 100%% the quota is exhausted, not in the warning band")
}

func TestCheckDailyLimit_ZeroLimit(t *testing.T) {
	u := limitedUser(0, 0)
	l := newTestLimiter(&fakeState{user: u}, &fakeUsageStore{}, nil)
	require.False(t, l.CheckDailyLimit(models.LimitAIAnalysis))
}

func TestIncrementUsage_NotAuthenticated(t *testing.T) {
	st := &fakeUsageStore{}
	l := newTestLimiter(&fakeState{}, st, nil)

	err := l.IncrementUsage(context.Background(), models.LimitAIAnalysis)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	require.Equal(t, 0, st.incrementN)
}

func TestIncrementUsage_OptimisticAndPersisted(t *testing.T) {
	state := &fakeState{user: limitedUser(10, 3)}
	st := &fakeUsageStore{}
	l := newTestLimiter(state, st, nil)

	err := l.IncrementUsage(context.Background(), models.LimitChatMessages)
	require.NoError(t, err)

	// The in-memory counter moved immediately.
	require.Equal(t, 4, state.user.UsageToday.ChatMessages)

	require.Equal(t, 1, st.incrementN)
	require.Equal(t, "u1", st.lastPrincipal)
	require.Equal(t, "2025-06-15", st.lastDay)
	require.Equal(t, models.LimitChatMessages, st.lastKind)
	require.Equal(t, 0, state.refreshCalls)
}

func TestIncrementUsage_PersistFailureRefreshes(t *testing.T) {
	state := &fakeState{user: limitedUser(10, 3)}
	st := &fakeUsageStore{incrementErr: errors.New("db down")}
	l := newTestLimiter(state, st, nil)

	err := l.IncrementUsage(context.Background(), models.LimitExports)

	// The failure is swallowed; the rollback is a full refresh, never a
	// local decrement.
	require.NoError(t, err)
	require.Equal(t, 4, state.user.UsageToday.Exports)
	require.Equal(t, 1, state.refreshCalls)
}

func TestIncrementUsage_RefreshFailureStillSwallowed(t *testing.T) {
	state := &fakeState{user: limitedUser(10, 3), refreshErr: errors.New("also down")}
	st := &fakeUsageStore{incrementErr: errors.New("db down")}
	l := newTestLimiter(state, st, nil)

	require.NoError(t, l.IncrementUsage(context.Background(), models.LimitExports))
	require.Equal(t, 1, state.refreshCalls)
}
