package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Privileged(t *testing.T) {
	assert.True(t, RoleSuperAdmin.Privileged())
	assert.True(t, RoleAdmin.Privileged())
	assert.False(t, RoleAnalyst.Privileged())
	assert.False(t, RoleViewer.Privileged())
	assert.False(t, RoleGuest.Privileged())
}

func TestDailyLimits_Get(t *testing.T) {
	l := DailyLimits{AIAnalysis: 10, ChatMessages: 20, Exports: 5}

	assert.Equal(t, 10, l.Get(LimitAIAnalysis))
	assert.Equal(t, 20, l.Get(LimitChatMessages))
	assert.Equal(t, 5, l.Get(LimitExports))
	assert.Equal(t, Unlimited, l.Get(LimitKind("bogus")))
}

func TestUnlimitedDailyLimits(t *testing.T) {
	l := UnlimitedDailyLimits()
	for _, kind := range []LimitKind{LimitAIAnalysis, LimitChatMessages, LimitExports} {
		assert.Equal(t, Unlimited, l.Get(kind))
	}
}

func TestUsageCounts_GetAndAdd(t *testing.T) {
	var u UsageCounts

	u.Add(LimitChatMessages, 3)
	u.Add(LimitChatMessages, 1)
	u.Add(LimitExports, 1)
	u.Add(LimitKind("bogus"), 7)

	assert.Equal(t, 0, u.Get(LimitAIAnalysis))
	assert.Equal(t, 4, u.Get(LimitChatMessages))
	assert.Equal(t, 1, u.Get(LimitExports))
	assert.Equal(t, 0, u.Get(LimitKind("bogus")))
}

func TestUser_Clone(t *testing.T) {
	u := &User{
		ID:          "u1",
		Role:        RoleViewer,
		Preferences: map[string]any{"theme": "dark"},
		UsageToday:  UsageCounts{Exports: 1},
	}

	c := u.Clone()
	require.NotSame(t, u, c)

	c.Preferences["theme"] = "light"
	c.UsageToday.Exports = 5

	assert.Equal(t, "dark", u.Preferences["theme"])
	assert.Equal(t, 1, u.UsageToday.Exports)
}

func TestUser_CloneNil(t *testing.T) {
	var u *User
	require.Nil(t, u.Clone())
}
