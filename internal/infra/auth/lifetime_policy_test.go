package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyLifetimePolicy_WithinWindow(t *testing.T) {
	policy := NewMonthlyLifetimePolicy()
	lastAccessed := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	assert.False(t, policy.Expired(lastAccessed, lastAccessed))
	assert.False(t, policy.Expired(lastAccessed, lastAccessed.AddDate(0, 0, 20)))
	// The boundary instant itself is still valid; only strictly after expires.
	assert.False(t, policy.Expired(lastAccessed, lastAccessed.AddDate(0, 1, 0)))
}

func TestMonthlyLifetimePolicy_PastWindow(t *testing.T) {
	policy := NewMonthlyLifetimePolicy()
	lastAccessed := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	assert.True(t, policy.Expired(lastAccessed, lastAccessed.AddDate(0, 1, 0).Add(time.Second)))
	assert.True(t, policy.Expired(lastAccessed, lastAccessed.AddDate(0, 2, 0)))
}

func TestMonthlyLifetimePolicy_CalendarArithmetic(t *testing.T) {
	policy := NewMonthlyLifetimePolicy()

	// AddDate normalizes Jan 31 + 1 month into March; the window is calendar
	// based, not a fixed 30 days.
	lastAccessed := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.False(t, policy.Expired(lastAccessed, time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.False(t, policy.Expired(lastAccessed, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, policy.Expired(lastAccessed, time.Date(2025, 3, 3, 0, 0, 1, 0, time.UTC)))
}
