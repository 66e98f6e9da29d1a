// Package session owns the session lifecycle: it reconciles the initial
// session check with the identity backend's live event stream, drives profile
// resolution on the right events exactly once, and exposes the public
// contract (user, sign-in/out, permissions, quotas, refresh) to the rest of
// the application.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/identity"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	"github.com/dmitrijs2005/authkeeper/internal/permissions"
	"github.com/dmitrijs2005/authkeeper/internal/profile"
	"github.com/dmitrijs2005/authkeeper/internal/quota"
	"github.com/dmitrijs2005/authkeeper/internal/store"
)

// defaultInitTimeout bounds initialization. The guard does not abort the
// underlying backend call; it only stops the controller from reporting
// "loading" indefinitely against a hung backend.
const defaultInitTimeout = 15 * time.Second

// State is the controller's lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// UserResolver assembles a User for a principal id. *profile.Resolver
// satisfies it.
type UserResolver interface {
	Resolve(ctx context.Context, principalID string) (*models.User, error)
}

// Callbacks let the embedding application surface controller signals.
// Nil callbacks are skipped.
type Callbacks struct {
	// OnAuthError receives recoverable auth failures: the initialization
	// timeout and exhausted profile resolutions.
	OnAuthError func(err error)

	// OnQuotaWarning fires when a quota check lands in the warning band.
	OnQuotaWarning func(kind models.LimitKind, used, limit int)
}

// Controller is the only component the rest of the application talks to.
// The User value is owned here: replaced wholesale on every resolution,
// mutated in place only by the quota limiter's optimistic increments, both
// under the controller mutex.
type Controller struct {
	backend  identity.Backend
	store    store.Store
	resolver UserResolver
	perms    *permissions.Evaluator
	limiter  *quota.Limiter
	log      logging.Logger
	cb       Callbacks

	initTimeout time.Duration
	now         func() time.Time

	mu          sync.Mutex
	state       State
	user        *models.User
	session     *identity.Session
	initialized bool
	fetching    bool
	closed      bool
	initTimer   *time.Timer

	done chan struct{}
	wg   sync.WaitGroup
}

// Config carries controller tunables. Zero values select the defaults.
type Config struct {
	InitTimeout      time.Duration
	ResolverAttempts uint64
	ResolverDelay    time.Duration
}

// NewController wires a controller over the given backend and store.
// Call Start once to initialize; call Close on teardown.
func NewController(backend identity.Backend, st store.Store, log logging.Logger, cfg Config, cb Callbacks) *Controller {
	if cfg.InitTimeout <= 0 {
		cfg.InitTimeout = defaultInitTimeout
	}
	c := &Controller{
		backend:     backend,
		store:       st,
		log:         log,
		cb:          cb,
		initTimeout: cfg.InitTimeout,
		now:         time.Now,
		state:       StateUninitialized,
		done:        make(chan struct{}),
	}
	c.resolver = profile.NewResolver(st, log, cfg.ResolverAttempts, cfg.ResolverDelay)
	c.perms = permissions.NewEvaluator(st, log)
	c.limiter = quota.NewLimiter(st, c, log, cb.OnQuotaWarning)
	return c
}

// Start runs initialization exactly once: it checks the backend for a current
// session and resolves the profile if one exists. The event loop runs from the
// moment Start is entered so that anything the backend emits while the initial
// check is in flight reaches handleEvent immediately and is discarded there,
// instead of sitting buffered in the stream and being replayed after init.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return common.ErrClosed
	}
	if c.state != StateUninitialized {
		c.mu.Unlock()
		return errors.New("controller already started")
	}
	c.state = StateInitializing
	c.initTimer = time.AfterFunc(c.initTimeout, c.initTimedOut)
	c.mu.Unlock()

	c.wg.Add(1)
	go c.eventLoop()

	sess, err := c.backend.CurrentSession(ctx)
	if err != nil {
		c.log.Warn(ctx, "initial session check failed", "error", err)
	}

	if sess != nil {
		c.mu.Lock()
		c.session = sess
		c.mu.Unlock()

		if rerr := c.resolveAndApply(ctx, sess.UserID); rerr != nil {
			// Non-fatal: surfaced as an error signal, init continues to
			// the unauthenticated state.
			c.log.Error(ctx, "could not load profile", "principal_id", sess.UserID, "error", rerr)
			if c.cb.OnAuthError != nil {
				c.cb.OnAuthError(rerr)
			}
		}
	}

	c.mu.Lock()
	if c.initTimer != nil {
		c.initTimer.Stop()
		c.initTimer = nil
	}
	if c.user != nil {
		c.state = StateAuthenticated
	} else {
		c.state = StateUnauthenticated
	}
	c.initialized = true
	closed := c.closed
	c.mu.Unlock()

	if closed {
		return common.ErrClosed
	}

	return nil
}

// initTimedOut force-exits the loading state when the backend hangs.
// The in-flight session check is left to complete; if it eventually
// resolves a user, the state corrects itself.
func (c *Controller) initTimedOut() {
	c.mu.Lock()
	if c.initialized || c.closed || c.state != StateInitializing {
		c.mu.Unlock()
		return
	}
	c.state = StateUnauthenticated
	c.mu.Unlock()

	c.log.Warn(context.Background(), "initialization timed out, forcing loading exit")
	if c.cb.OnAuthError != nil {
		c.cb.OnAuthError(common.ErrInitTimeout)
	}
}

func (c *Controller) eventLoop() {
	defer c.wg.Done()

	events := c.backend.Events()
	for {
		select {
		case <-c.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.handleEvent(ev)
		}
	}
}

func (c *Controller) handleEvent(ev identity.Event) {
	ctx := context.Background()

	c.mu.Lock()
	if !c.initialized || c.closed {
		// Ignored, not queued.
		c.mu.Unlock()
		return
	}

	switch ev.Type {
	case identity.EventInitialSession:
		// Already handled by the initialization step.
		c.mu.Unlock()

	case identity.EventTokenRefreshed:
		if ev.Session != nil {
			c.session = ev.Session
		}
		c.mu.Unlock()

	case identity.EventSignedIn:
		if ev.Session == nil {
			c.mu.Unlock()
			return
		}
		c.session = ev.Session
		if c.user != nil || c.fetching {
			// Both signIn() and the event stream could otherwise race to
			// populate identity for the same sign-in.
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()

		if err := c.resolveAndApply(ctx, ev.Session.UserID); err != nil {
			c.log.Error(ctx, "could not load profile", "principal_id", ev.Session.UserID, "error", err)
			if c.cb.OnAuthError != nil {
				c.cb.OnAuthError(err)
			}
		}

	case identity.EventSignedOut:
		c.user = nil
		c.session = nil
		c.state = StateUnauthenticated
		c.mu.Unlock()

	default:
		c.mu.Unlock()
	}
}

// resolveAndApply runs a single profile resolution and replaces the user
// wholesale on success. At most one resolution is in flight at a time; a
// concurrent call is a silent no-op. Results arriving after Close are
// discarded rather than applied.
func (c *Controller) resolveAndApply(ctx context.Context, principalID string) error {
	c.mu.Lock()
	if c.fetching || c.closed {
		c.mu.Unlock()
		return nil
	}
	c.fetching = true
	c.mu.Unlock()

	u, err := c.resolver.Resolve(ctx, principalID)

	c.mu.Lock()
	c.fetching = false
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.user = u
	c.state = StateAuthenticated
	c.mu.Unlock()

	return nil
}

// SignIn validates credentials against the identity backend. Credential
// rejection is the one failure mode propagated to the caller. On success the
// last-login timestamp is stamped best-effort and identity population is
// deliberately left to the SIGNED_IN event path, guaranteeing exactly one
// resolution per sign-in.
func (c *Controller) SignIn(ctx context.Context, email, password string) error {
	sess, err := c.backend.SignInWithPassword(ctx, email, password)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()

	if err := c.store.UpdateLastLogin(ctx, sess.UserID, c.now().UTC()); err != nil {
		c.log.Warn(ctx, "last login update failed", "principal_id", sess.UserID, "error", err)
	}

	return nil
}

// SignOut requests backend sign-out and clears local state. Local state is
// cleared even when the backend call fails: the user asked to leave, the
// controller never stays authenticated-looking.
func (c *Controller) SignOut(ctx context.Context) {
	c.mu.Lock()
	if c.initTimer != nil {
		c.initTimer.Stop()
		c.initTimer = nil
	}
	c.mu.Unlock()

	if err := c.backend.SignOut(ctx); err != nil {
		c.log.Warn(ctx, "backend sign-out failed, clearing local state anyway", "error", err)
	}

	c.mu.Lock()
	c.user = nil
	c.session = nil
	c.state = StateUnauthenticated
	c.mu.Unlock()
}

// RefreshUser re-reads the backend session and, if one exists, re-resolves
// and replaces the user wholesale. A failed resolution leaves the previous
// user untouched; refresh never logs the user out.
func (c *Controller) RefreshUser(ctx context.Context) error {
	sess, err := c.backend.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		return nil
	}

	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()

	if err := c.resolveAndApply(ctx, sess.UserID); err != nil {
		c.log.Warn(ctx, "refresh failed, keeping previous user", "error", err)
		return err
	}
	return nil
}

// CurrentUser returns a copy of the current user, or nil when the controller
// is not authenticated.
func (c *Controller) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user.Clone()
}

// Session returns the latest session handed over by the backend.
func (c *Controller) Session() *identity.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// Loading reports whether initialization is still in progress.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateInitializing
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HasPermission reports whether the current user's role grants the
// permission. Denial is a normal result, not an error.
func (c *Controller) HasPermission(permission string) bool {
	return permissions.HasPermission(c.CurrentUser(), permission)
}

// CanPerform evaluates an action, including ownership-scoped variants,
// for the current user.
func (c *Controller) CanPerform(ctx context.Context, action, resourceType, resourceID string) bool {
	return c.perms.CanPerform(ctx, c.CurrentUser(), action, resourceType, resourceID)
}

// CheckDailyLimit reports whether one more unit of kind is allowed today.
func (c *Controller) CheckDailyLimit(kind models.LimitKind) bool {
	return c.limiter.CheckDailyLimit(kind)
}

// IncrementUsage counts one unit of kind against today's quota.
func (c *Controller) IncrementUsage(ctx context.Context, kind models.LimitKind) error {
	return c.limiter.IncrementUsage(ctx, kind)
}

// MutateUsage applies a locked in-memory change to today's counters and
// reports the principal it applied to. It exists for the quota limiter's
// optimistic path; nothing else mutates the user in place.
func (c *Controller) MutateUsage(kind models.LimitKind, delta int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return "", false
	}
	c.user.UsageToday.Add(kind, delta)
	return c.user.ID, true
}

// Close tears the controller down: the event subscription stops, pending
// timers are cancelled, and results from any still-running resolution are
// discarded when they arrive.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.initTimer != nil {
		c.initTimer.Stop()
		c.initTimer = nil
	}
	started := c.initialized
	c.mu.Unlock()

	close(c.done)
	if started {
		c.wg.Wait()
	}
}
