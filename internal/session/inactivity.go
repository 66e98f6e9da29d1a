package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/models"
)

const (
	// InactivityTimeout force-expires a session with no activity.
	InactivityTimeout = 8 * time.Hour

	// WarningBeforeLogout is how long before expiry the renewable warning
	// is shown.
	WarningBeforeLogout = 5 * time.Minute

	// inactivityCheckInterval is the recurring check tick.
	inactivityCheckInterval = time.Minute
)

// Signal names a user-activity source that resets the idle clock.
type Signal string

const (
	SignalPointerDown Signal = "pointer_down"
	SignalKeyDown     Signal = "key_down"
	SignalScroll      Signal = "scroll"
	SignalTouchStart  Signal = "touch_start"
)

// IdleWarnFunc surfaces the pre-expiry warning. Calling renew dismisses it
// and resets the idle clock.
type IdleWarnFunc func(remaining time.Duration, renew func())

// sessionControl is the slice of the controller the monitor needs.
type sessionControl interface {
	CurrentUser() *models.User
	SignOut(ctx context.Context)
}

// InactivityMonitor watches activity signals and a wall clock, warning and
// then force-expiring idle sessions. Privileged roles (admin, super_admin)
// are exempt.
type InactivityMonitor struct {
	ctrl      sessionControl
	log       logging.Logger
	onWarning IdleWarnFunc

	timeout    time.Duration
	warnBefore time.Duration
	interval   time.Duration
	now        func() time.Time

	mu           sync.Mutex
	lastActivity time.Time
	warningShown bool

	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewInactivityMonitor builds a monitor around ctrl. A zero timeout selects
// the default InactivityTimeout.
func NewInactivityMonitor(ctrl sessionControl, log logging.Logger, timeout time.Duration, onWarning IdleWarnFunc) *InactivityMonitor {
	if timeout <= 0 {
		timeout = InactivityTimeout
	}
	m := &InactivityMonitor{
		ctrl:       ctrl,
		log:        log,
		onWarning:  onWarning,
		timeout:    timeout,
		warnBefore: WarningBeforeLogout,
		interval:   inactivityCheckInterval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
	m.lastActivity = m.now()
	return m
}

// Activity records a user-activity signal, resetting the idle clock and the
// warning for the current idle episode.
func (m *InactivityMonitor) Activity(sig Signal) {
	m.mu.Lock()
	m.lastActivity = m.now()
	m.warningShown = false
	m.mu.Unlock()
}

// Renew resets the idle clock; handed to the warning callback so the user
// can extend the session from the warning itself.
func (m *InactivityMonitor) Renew() {
	m.mu.Lock()
	m.lastActivity = m.now()
	m.warningShown = false
	m.mu.Unlock()
}

// Start begins the recurring idle check. Call Stop on teardown.
func (m *InactivityMonitor) Start() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-m.done:
				return
			case <-ticker.C:
				m.check(context.Background())
			}
		}
	}()
}

func (m *InactivityMonitor) Stop() {
	m.once.Do(func() { close(m.done) })
	m.wg.Wait()
}

func (m *InactivityMonitor) check(ctx context.Context) {
	u := m.ctrl.CurrentUser()
	if u == nil || u.Role.Privileged() {
		return
	}

	m.mu.Lock()
	idle := m.now().Sub(m.lastActivity)
	shown := m.warningShown

	if idle >= m.timeout {
		m.mu.Unlock()
		m.log.Info(ctx, "inactivity timeout reached, signing out", "user_id", u.ID, "idle", idle)
		m.ctrl.SignOut(ctx)
		return
	}

	if idle >= m.timeout-m.warnBefore && !shown {
		m.warningShown = true
		m.mu.Unlock()
		if m.onWarning != nil {
			m.onWarning(m.timeout-idle, m.Renew)
		}
		return
	}

	m.mu.Unlock()
}
