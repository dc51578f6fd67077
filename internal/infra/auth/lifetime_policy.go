package auth

import (
	"time"

	"gatekeeper/internal/domain/service"
)

// monthlyLifetimePolicy expires a token once it has gone unused for one
// calendar month. Month arithmetic follows time.AddDate, so the boundary
// normalizes across month ends (Jan 31 + 1 month lands in early March).
type monthlyLifetimePolicy struct{}

// NewMonthlyLifetimePolicy is the constructor for monthlyLifetimePolicy.
func NewMonthlyLifetimePolicy() service.TokenLifetimePolicy {
	return monthlyLifetimePolicy{}
}

// Expired reports whether now is past lastAccessed plus one calendar month.
// Pure function of the two instants, no I/O.
func (monthlyLifetimePolicy) Expired(lastAccessed, now time.Time) bool {
	return now.After(lastAccessed.AddDate(0, 1, 0))
}
