// Package models contains the application-level identity types owned by the
// session controller.
package models

import "time"

// Role enumerates supported application roles.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleAnalyst    Role = "analyst"
	RoleViewer     Role = "viewer"
	RoleGuest      Role = "guest"
)

// Privileged reports whether the role is exempt from inactivity expiry.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Status enumerates account statuses. Access gating on status happens
// outside this module.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusInactive  Status = "inactive"
)

// LimitKind names a per-day quota counter.
type LimitKind string

const (
	LimitAIAnalysis   LimitKind = "aiAnalysis"
	LimitChatMessages LimitKind = "chatMessages"
	LimitExports      LimitKind = "exports"
)

// Unlimited is the sentinel limit value meaning "no limit".
const Unlimited = -1

// DailyLimits holds per-day quota ceilings. A value of Unlimited (-1)
// disables the quota for that kind.
type DailyLimits struct {
	AIAnalysis   int
	ChatMessages int
	Exports      int
}

// UnlimitedDailyLimits returns limits with every kind set to Unlimited,
// the default when no limit row exists for a user.
func UnlimitedDailyLimits() DailyLimits {
	return DailyLimits{AIAnalysis: Unlimited, ChatMessages: Unlimited, Exports: Unlimited}
}

// Get returns the limit for the given kind. Unknown kinds are unlimited.
func (l DailyLimits) Get(kind LimitKind) int {
	switch kind {
	case LimitAIAnalysis:
		return l.AIAnalysis
	case LimitChatMessages:
		return l.ChatMessages
	case LimitExports:
		return l.Exports
	default:
		return Unlimited
	}
}

// UsageCounts holds per-day usage counters scoped to a UTC calendar day.
type UsageCounts struct {
	AIAnalysis   int
	ChatMessages int
	Exports      int
}

// Get returns the counter for the given kind. Unknown kinds read as zero.
func (u UsageCounts) Get(kind LimitKind) int {
	switch kind {
	case LimitAIAnalysis:
		return u.AIAnalysis
	case LimitChatMessages:
		return u.ChatMessages
	case LimitExports:
		return u.Exports
	default:
		return 0
	}
}

// Add increments the counter for the given kind by delta.
func (u *UsageCounts) Add(kind LimitKind, delta int) {
	switch kind {
	case LimitAIAnalysis:
		u.AIAnalysis += delta
	case LimitChatMessages:
		u.ChatMessages += delta
	case LimitExports:
		u.Exports += delta
	}
}

// User is the application-level identity assembled by the profile resolver
// and owned by the session controller. It is replaced wholesale on every
// refresh; only the usage counters are mutated in place (optimistic quota
// increments).
type User struct {
	ID          string
	Email       string
	FullName    string
	Role        Role
	Status      Status
	Preferences map[string]any
	DailyLimits DailyLimits
	UsageToday  UsageCounts
	LastLogin   time.Time
	CreatedAt   time.Time
}

// Clone returns a shallow copy with its own preferences map, safe to hand
// out while the original keeps being mutated by the controller.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Preferences != nil {
		c.Preferences = make(map[string]any, len(u.Preferences))
		for k, v := range u.Preferences {
			c.Preferences[k] = v
		}
	}
	return &c
}
