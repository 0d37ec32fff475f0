package negotiation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrNonPositivePrice  = errors.New("price must be positive")
	ErrInvalidWindowUnit = errors.New("invalid install window unit")
	ErrInvalidWindow     = errors.New("install window count must be at least 1")
	ErrNoteTooLong       = errors.New("note exceeds maximum length")
)

const MaxNoteLength = 500

// WindowUnit is the unit of a structured install window. The legacy
// system carried install time as free text ("3 weeks") and parsed the
// leading digit for comparisons; the structured form makes "fastest
// install" well defined.
type WindowUnit string

const (
	UnitDays  WindowUnit = "days"
	UnitWeeks WindowUnit = "weeks"
)

func (u WindowUnit) IsValid() bool {
	switch u {
	case UnitDays, UnitWeeks:
		return true
	default:
		return false
	}
}

// InstallWindow is the promised time-to-install of an offer.
type InstallWindow struct {
	count int
	unit  WindowUnit
}

func NewInstallWindow(count int, unit WindowUnit) (InstallWindow, error) {
	if !unit.IsValid() {
		return InstallWindow{}, ErrInvalidWindowUnit
	}
	if count < 1 {
		return InstallWindow{}, ErrInvalidWindow
	}
	return InstallWindow{count: count, unit: unit}, nil
}

func (w InstallWindow) Count() int {
	return w.count
}

func (w InstallWindow) Unit() WindowUnit {
	return w.unit
}

// Days normalizes the window for comparison.
func (w InstallWindow) Days() int {
	if w.unit == UnitWeeks {
		return w.count * 7
	}
	return w.count
}

func (w InstallWindow) ShorterThan(other InstallWindow) bool {
	return w.Days() < other.Days()
}

func (w InstallWindow) String() string {
	unit := string(w.unit)
	if w.count == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	return fmt.Sprintf("%d %s", w.count, unit)
}

// Money is an offer price in cents. Currency-agnostic; formatting is a
// presentation concern.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents <= 0 {
		return Money{}, ErrNonPositivePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	trimmed := strings.TrimSpace(value)
	// The cap is in characters, not bytes.
	if utf8.RuneCountInString(trimmed) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: trimmed}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
