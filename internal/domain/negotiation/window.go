package negotiation

import "time"

const (
	// NegotiationWindow is the nominal lifetime of a session.
	NegotiationWindow = 7 * 24 * time.Hour
	// ExtensionPeriod is added to the expiry by the one-time extension.
	ExtensionPeriod = 48 * time.Hour
)

// TimeRemaining returns how long the session stays open, never negative.
// Expiry is a pure function of (expiryTime, now); nothing in the engine
// ticks in the background.
func TimeRemaining(expiryTime, now time.Time) time.Duration {
	remaining := expiryTime.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ProgressFraction reports the elapsed fraction of the nominal 7-day
// window ending at expiryTime, clamped to [0,1]. Display layers use it
// for countdown bars; the engine itself only cares about TimeRemaining.
func ProgressFraction(expiryTime, now time.Time) float64 {
	elapsed := NegotiationWindow - expiryTime.Sub(now)
	fraction := float64(elapsed) / float64(NegotiationWindow)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

// DeriveStatus folds read-time expiry into a stored status: a session
// still stored as in_negotiation whose clock ran out is surfaced as
// expired. Terminal statuses pass through untouched.
func DeriveStatus(stored Status, expiryTime, now time.Time) Status {
	if stored == StatusInNegotiation && TimeRemaining(expiryTime, now) == 0 {
		return StatusExpired
	}
	return stored
}
