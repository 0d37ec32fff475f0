//go:build unit

package negotiation_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"bidroom/internal/domain/negotiation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		errIs error
	}{
		{name: "positive price", cents: 1_200_000},
		{name: "one cent", cents: 1},
		{name: "zero price", cents: 0, errIs: negotiation.ErrNonPositivePrice},
		{name: "negative price", cents: -500, errIs: negotiation.ErrNonPositivePrice},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := negotiation.NewMoney(c.cents)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.cents, actual.Cents())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}

	t.Run("comparison", func(t *testing.T) {
		lower, _ := negotiation.NewMoney(1_000_000)
		higher, _ := negotiation.NewMoney(1_200_000)

		assert.True(t, lower.LessThan(higher))
		assert.False(t, higher.LessThan(lower))
		assert.False(t, lower.LessThan(lower))
	})
}

func TestInstallWindow(t *testing.T) {
	cases := []struct {
		name  string
		count int
		unit  negotiation.WindowUnit
		errIs error
	}{
		{name: "days", count: 10, unit: negotiation.UnitDays},
		{name: "weeks", count: 3, unit: negotiation.UnitWeeks},
		{name: "single unit", count: 1, unit: negotiation.UnitDays},
		{name: "zero count", count: 0, unit: negotiation.UnitDays, errIs: negotiation.ErrInvalidWindow},
		{name: "negative count", count: -2, unit: negotiation.UnitWeeks, errIs: negotiation.ErrInvalidWindow},
		{name: "unknown unit", count: 3, unit: "months", errIs: negotiation.ErrInvalidWindowUnit},
		{name: "empty unit", count: 3, unit: "", errIs: negotiation.ErrInvalidWindowUnit},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := negotiation.NewInstallWindow(c.count, c.unit)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.count, actual.Count())
				assert.Equal(t, c.unit, actual.Unit())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}

	t.Run("normalizes weeks to days", func(t *testing.T) {
		threeWeeks, _ := negotiation.NewInstallWindow(3, negotiation.UnitWeeks)
		tenDays, _ := negotiation.NewInstallWindow(10, negotiation.UnitDays)

		assert.Equal(t, 21, threeWeeks.Days())
		assert.Equal(t, 10, tenDays.Days())
		assert.True(t, tenDays.ShorterThan(threeWeeks))
		assert.False(t, threeWeeks.ShorterThan(tenDays))
	})

	t.Run("equal day counts across units are not shorter", func(t *testing.T) {
		oneWeek, _ := negotiation.NewInstallWindow(1, negotiation.UnitWeeks)
		sevenDays, _ := negotiation.NewInstallWindow(7, negotiation.UnitDays)

		assert.False(t, oneWeek.ShorterThan(sevenDays))
		assert.False(t, sevenDays.ShorterThan(oneWeek))
	})

	t.Run("string label singularizes", func(t *testing.T) {
		threeWeeks, _ := negotiation.NewInstallWindow(3, negotiation.UnitWeeks)
		oneWeek, _ := negotiation.NewInstallWindow(1, negotiation.UnitWeeks)
		oneDay, _ := negotiation.NewInstallWindow(1, negotiation.UnitDays)

		assert.Equal(t, "3 weeks", threeWeeks.String())
		assert.Equal(t, "1 week", oneWeek.String())
		assert.Equal(t, "1 day", oneDay.String())
	})
}

func TestNote(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		note, err := negotiation.NewNote("  flexible on timing  ")
		require.NoError(t, err)
		assert.Equal(t, "flexible on timing", note.String())
		assert.False(t, note.IsEmpty())
	})

	t.Run("empty note is allowed", func(t *testing.T) {
		note, err := negotiation.NewNote("   ")
		require.NoError(t, err)
		assert.True(t, note.IsEmpty())
	})

	t.Run("maximum length note", func(t *testing.T) {
		note, err := negotiation.NewNote(strings.Repeat("a", negotiation.MaxNoteLength))
		require.NoError(t, err)
		assert.Len(t, note.String(), negotiation.MaxNoteLength)
	})

	t.Run("note exceeding maximum length", func(t *testing.T) {
		_, err := negotiation.NewNote(strings.Repeat("a", negotiation.MaxNoteLength+1))
		require.ErrorIs(t, err, negotiation.ErrNoteTooLong)
	})

	t.Run("multibyte notes are capped by character count", func(t *testing.T) {
		note, err := negotiation.NewNote(strings.Repeat("ä", negotiation.MaxNoteLength))
		require.NoError(t, err)
		assert.Equal(t, negotiation.MaxNoteLength, utf8.RuneCountInString(note.String()))

		_, err = negotiation.NewNote(strings.Repeat("ä", negotiation.MaxNoteLength+1))
		require.ErrorIs(t, err, negotiation.ErrNoteTooLong)
	})

	t.Run("surrounding whitespace does not count toward the cap", func(t *testing.T) {
		padded := "  " + strings.Repeat("a", negotiation.MaxNoteLength) + "  "
		note, err := negotiation.NewNote(padded)
		require.NoError(t, err)
		assert.Len(t, note.String(), negotiation.MaxNoteLength)
	})
}

func TestRole(t *testing.T) {
	assert.True(t, negotiation.RoleHomeowner.IsValid())
	assert.True(t, negotiation.RoleInstaller.IsValid())
	assert.False(t, negotiation.Role("broker").IsValid())

	assert.Equal(t, negotiation.RoleInstaller, negotiation.RoleHomeowner.Opponent())
	assert.Equal(t, negotiation.RoleHomeowner, negotiation.RoleInstaller.Opponent())
}

func TestStatus(t *testing.T) {
	assert.False(t, negotiation.StatusInNegotiation.IsTerminal())
	assert.True(t, negotiation.StatusAccepted.IsTerminal())
	assert.True(t, negotiation.StatusDeclined.IsTerminal())
	assert.True(t, negotiation.StatusExpired.IsTerminal())

	assert.True(t, negotiation.StatusInNegotiation.IsValid())
	assert.False(t, negotiation.Status("paused").IsValid())
}
