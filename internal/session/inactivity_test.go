package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authkeeper/internal/models"
)

type fakeSessionControl struct {
	user         *models.User
	signOutCalls int
}

func (f *fakeSessionControl) CurrentUser() *models.User { return f.user.Clone() }

func (f *fakeSessionControl) SignOut(ctx context.Context) {
	f.signOutCalls++
	f.user = nil
}

// fakeClock drives the monitor's notion of time without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestMonitor(ctrl *fakeSessionControl, onWarning IdleWarnFunc) (*InactivityMonitor, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)}
	m := NewInactivityMonitor(ctrl, testLogger(), 0, onWarning)
	m.now = clock.now
	m.lastActivity = clock.t
	return m, clock
}

func TestInactivity_NoUser(t *testing.T) {
	ctrl := &fakeSessionControl{}
	m, clock := newTestMonitor(ctrl, nil)

	clock.advance(InactivityTimeout + time.Hour)
	m.check(context.Background())

	require.Equal(t, 0, ctrl.signOutCalls)
}

func TestInactivity_PrivilegedExempt(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleSuperAdmin} {
		t.Run(string(role), func(t *testing.T) {
			ctrl := &fakeSessionControl{user: &models.User{ID: "u1", Role: role}}
			warned := false
			m, clock := newTestMonitor(ctrl, func(time.Duration, func()) { warned = true })

			clock.advance(InactivityTimeout + time.Hour)
			m.check(context.Background())

			require.Equal(t, 0, ctrl.signOutCalls)
			require.False(t, warned)
		})
	}
}

func TestInactivity_TimeoutSignsOut(t *testing.T) {
	ctrl := &fakeSessionControl{user: &models.User{ID: "u1", Role: models.RoleViewer}}
	m, clock := newTestMonitor(ctrl, nil)

	clock.advance(InactivityTimeout - time.Minute)
	m.check(context.Background())
	require.Equal(t, 0, ctrl.signOutCalls)

	clock.advance(time.Minute)
	m.check(context.Background())
	require.Equal(t, 1, ctrl.signOutCalls)
}

func TestInactivity_WarningWindow(t *testing.T) {
	ctrl := &fakeSessionControl{user: &models.User{ID: "u1", Role: models.RoleViewer}}
	var gotRemaining time.Duration
	warnings := 0
	m, clock := newTestMonitor(ctrl, func(remaining time.Duration, renew func()) {
		warnings++
		gotRemaining = remaining
	})

	clock.advance(InactivityTimeout - WarningBeforeLogout)
	m.check(context.Background())

	require.Equal(t, 1, warnings)
	require.Equal(t, WarningBeforeLogout, gotRemaining)
	require.Equal(t, 0, ctrl.signOutCalls)

	// The warning fires once per idle episode.
	clock.advance(time.Minute)
	m.check(context.Background())
	require.Equal(t, 1, warnings)
}

func TestInactivity_RenewFromWarning(t *testing.T) {
	ctrl := &fakeSessionControl{user: &models.User{ID: "u1", Role: models.RoleViewer}}
	var renewFn func()
	m, clock := newTestMonitor(ctrl, func(remaining time.Duration, renew func()) { renewFn = renew })

	clock.advance(InactivityTimeout - WarningBeforeLogout)
	m.check(context.Background())
	require.NotNil(t, renewFn)

	renewFn()

	// The renewed clock survives what would have been the expiry tick.
	clock.advance(WarningBeforeLogout)
	m.check(context.Background())
	require.Equal(t, 0, ctrl.signOutCalls)
}

func TestInactivity_ActivityResetsWarning(t *testing.T) {
	ctrl := &fakeSessionControl{user: &models.User{ID: "u1", Role: models.RoleViewer}}
	warnings := 0
	m, clock := newTestMonitor(ctrl, func(time.Duration, func()) { warnings++ })

	clock.advance(InactivityTimeout - WarningBeforeLogout)
	m.check(context.Background())
	require.Equal(t, 1, warnings)

	m.Activity(SignalPointerDown)

	// A fresh idle episode warns again once it reaches the window.
	clock.advance(InactivityTimeout - WarningBeforeLogout)
	m.check(context.Background())
	require.Equal(t, 2, warnings)
	require.Equal(t, 0, ctrl.signOutCalls)
}

func TestInactivity_CustomTimeout(t *testing.T) {
	ctrl := &fakeSessionControl{user: &models.User{ID: "u1", Role: models.RoleViewer}}
	clock := &fakeClock{t: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)}
	m := NewInactivityMonitor(ctrl, testLogger(), 30*time.Minute, nil)
	m.now = clock.now
	m.lastActivity = clock.t

	clock.advance(31 * time.Minute)
	m.check(context.Background())
	require.Equal(t, 1, ctrl.signOutCalls)
}

func TestInactivity_StartStop(t *testing.T) {
	ctrl := &fakeSessionControl{user: &models.User{ID: "u1", Role: models.RoleViewer}}
	m, _ := newTestMonitor(ctrl, nil)
	m.interval = 5 * time.Millisecond

	m.Start()
	time.Sleep(20 * time.Millisecond)
	m.Stop()

	// Stop is idempotent.
	m.Stop()
	require.Equal(t, 0, ctrl.signOutCalls)
}
