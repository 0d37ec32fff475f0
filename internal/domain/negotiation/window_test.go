//go:build unit

package negotiation_test

import (
	"testing"
	"time"

	"bidroom/internal/domain/negotiation"

	"github.com/stretchr/testify/assert"
)

func TestTimeRemaining(t *testing.T) {
	expiry := baseTime.Add(negotiation.NegotiationWindow)

	assert.Equal(t, negotiation.NegotiationWindow, negotiation.TimeRemaining(expiry, baseTime))
	assert.Equal(t, time.Hour, negotiation.TimeRemaining(expiry, expiry.Add(-time.Hour)))
	assert.Equal(t, time.Duration(0), negotiation.TimeRemaining(expiry, expiry))
	assert.Equal(t, time.Duration(0), negotiation.TimeRemaining(expiry, expiry.Add(time.Hour)))
}

func TestProgressFraction(t *testing.T) {
	expiry := baseTime.Add(negotiation.NegotiationWindow)

	assert.InDelta(t, 0.0, negotiation.ProgressFraction(expiry, baseTime), 1e-9)
	assert.InDelta(t, 0.5, negotiation.ProgressFraction(expiry, baseTime.Add(negotiation.NegotiationWindow/2)), 1e-9)
	assert.InDelta(t, 1.0, negotiation.ProgressFraction(expiry, expiry), 1e-9)

	// Clamped both ways: after expiry and for an extended window that
	// makes elapsed time negative relative to the nominal seven days.
	assert.InDelta(t, 1.0, negotiation.ProgressFraction(expiry, expiry.Add(24*time.Hour)), 1e-9)
	extended := expiry.Add(negotiation.ExtensionPeriod)
	assert.InDelta(t, 0.0, negotiation.ProgressFraction(extended, baseTime.Add(time.Hour)), 1e-9)
}

func TestDeriveStatus(t *testing.T) {
	expiry := baseTime.Add(negotiation.NegotiationWindow)
	before := expiry.Add(-time.Minute)
	after := expiry.Add(time.Minute)

	cases := []struct {
		name   string
		stored negotiation.Status
		now    time.Time
		want   negotiation.Status
	}{
		{name: "live stays in negotiation", stored: negotiation.StatusInNegotiation, now: before, want: negotiation.StatusInNegotiation},
		{name: "run-out derives expired", stored: negotiation.StatusInNegotiation, now: after, want: negotiation.StatusExpired},
		{name: "boundary derives expired", stored: negotiation.StatusInNegotiation, now: expiry, want: negotiation.StatusExpired},
		{name: "accepted is sticky", stored: negotiation.StatusAccepted, now: after, want: negotiation.StatusAccepted},
		{name: "declined is sticky", stored: negotiation.StatusDeclined, now: after, want: negotiation.StatusDeclined},
		{name: "expired is sticky", stored: negotiation.StatusExpired, now: before, want: negotiation.StatusExpired},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, negotiation.DeriveStatus(c.stored, expiry, c.now))
		})
	}
}
