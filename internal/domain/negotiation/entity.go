package negotiation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MaxRounds caps counter-offers per session, counted across both
// parties, not per party.
const MaxRounds = 3

var (
	ErrSessionClosed      = errors.New("session is closed")
	ErrSessionExpired     = errors.New("session has expired")
	ErrRoundLimitExceeded = errors.New("round limit exceeded")
	ErrOutOfTurn          = errors.New("not the sender's turn")
	ErrNoOffers           = errors.New("no offers to accept")
	ErrAlreadyExtended    = errors.New("extension already granted")
	ErrNotParticipant     = errors.New("party is not part of this session")
	ErrSameParties        = errors.New("homeowner and installer must differ")
)

// Session is the aggregate root of one negotiation, bound 1:1 to a
// quote. Mutable fields are status, expiryTime, extensionGranted and
// roundsCompleted; everything else is fixed at creation.
type Session struct {
	id               uuid.UUID
	quoteID          uuid.UUID
	homeownerID      uuid.UUID
	installerID      uuid.UUID
	status           Status
	startTime        time.Time
	expiryTime       time.Time
	extensionGranted bool
	roundsCompleted  int
	createdAt        time.Time
	updatedAt        time.Time
}

func NewSession(quoteID, homeownerID, installerID uuid.UUID, now time.Time) (*Session, error) {
	if homeownerID == installerID {
		return nil, ErrSameParties
	}

	return &Session{
		id:               uuid.New(),
		quoteID:          quoteID,
		homeownerID:      homeownerID,
		installerID:      installerID,
		status:           StatusInNegotiation,
		startTime:        now,
		expiryTime:       now.Add(NegotiationWindow),
		extensionGranted: false,
		roundsCompleted:  0,
	}, nil
}

func ReconstructSession(
	id, quoteID, homeownerID, installerID uuid.UUID,
	status Status,
	startTime, expiryTime time.Time,
	extensionGranted bool,
	roundsCompleted int,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:               id,
		quoteID:          quoteID,
		homeownerID:      homeownerID,
		installerID:      installerID,
		status:           status,
		startTime:        startTime,
		expiryTime:       expiryTime,
		extensionGranted: extensionGranted,
		roundsCompleted:  roundsCompleted,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (s *Session) ID() uuid.UUID          { return s.id }
func (s *Session) QuoteID() uuid.UUID     { return s.quoteID }
func (s *Session) HomeownerID() uuid.UUID { return s.homeownerID }
func (s *Session) InstallerID() uuid.UUID { return s.installerID }
func (s *Session) Status() Status         { return s.status }
func (s *Session) StartTime() time.Time   { return s.startTime }
func (s *Session) ExpiryTime() time.Time  { return s.expiryTime }
func (s *Session) ExtensionGranted() bool { return s.extensionGranted }
func (s *Session) RoundsCompleted() int   { return s.roundsCompleted }
func (s *Session) CreatedAt() time.Time   { return s.createdAt }
func (s *Session) UpdatedAt() time.Time   { return s.updatedAt }

// EffectiveStatus is the status callers must see: a stored
// in_negotiation past its expiry reads as expired.
func (s *Session) EffectiveStatus(now time.Time) Status {
	return DeriveStatus(s.status, s.expiryTime, now)
}

func (s *Session) TimeRemaining(now time.Time) time.Duration {
	if s.status.IsTerminal() {
		return 0
	}
	return TimeRemaining(s.expiryTime, now)
}

func (s *Session) ProgressFraction(now time.Time) float64 {
	return ProgressFraction(s.expiryTime, now)
}

// RoleOf resolves which side of the session a party id sits on.
func (s *Session) RoleOf(partyID uuid.UUID) (Role, bool) {
	switch partyID {
	case s.homeownerID:
		return RoleHomeowner, true
	case s.installerID:
		return RoleInstaller, true
	default:
		return "", false
	}
}

// NextRound is the round number the next offer must carry.
func (s *Session) NextRound() int {
	return s.roundsCompleted + 1
}

// CanSubmitOffer checks every counter-offer guard in dominance order:
// closed session, expiry, round limit, then turn. lastSender is nil for
// the opening offer, which either party may make.
func (s *Session) CanSubmitOffer(sender Role, lastSender *Role, now time.Time) error {
	if err := s.checkOpen(now); err != nil {
		return err
	}
	if s.roundsCompleted >= MaxRounds {
		return ErrRoundLimitExceeded
	}
	if lastSender != nil && *lastSender == sender {
		return ErrOutOfTurn
	}
	return nil
}

// RecordOffer advances the round counter after a successful ledger
// append. The persistence layer performs the equivalent update as an
// atomic compare-and-increment; this keeps the in-memory aggregate in
// step.
func (s *Session) RecordOffer(now time.Time) {
	s.roundsCompleted++
	s.updatedAt = now
}

// Accept closes the session in favor of the latest offer. Requires at
// least one offer on the ledger and a live clock.
func (s *Session) Accept(hasOffers bool, now time.Time) error {
	if err := s.checkOpen(now); err != nil {
		return err
	}
	if !hasOffers {
		return ErrNoOffers
	}
	s.status = StatusAccepted
	s.updatedAt = now
	return nil
}

// Decline is an explicit rejection by either party.
func (s *Session) Decline(now time.Time) error {
	if err := s.checkOpen(now); err != nil {
		return err
	}
	s.status = StatusDeclined
	s.updatedAt = now
	return nil
}

// GrantExtension pushes the expiry out by ExtensionPeriod, at most once
// per session. Extensions are auto-granted; there is no counterparty
// approval step.
func (s *Session) GrantExtension(now time.Time) error {
	if err := s.checkOpen(now); err != nil {
		return err
	}
	if s.extensionGranted {
		return ErrAlreadyExtended
	}
	s.expiryTime = s.expiryTime.Add(ExtensionPeriod)
	s.extensionGranted = true
	s.updatedAt = now
	return nil
}

// MarkExpired persists the derived expired status. Only valid for a
// session whose clock actually ran out.
func (s *Session) MarkExpired(now time.Time) error {
	if s.status.IsTerminal() {
		return ErrSessionClosed
	}
	if TimeRemaining(s.expiryTime, now) > 0 {
		return ErrSessionClosed
	}
	s.status = StatusExpired
	s.updatedAt = now
	return nil
}

func (s *Session) checkOpen(now time.Time) error {
	switch s.status {
	case StatusAccepted, StatusDeclined:
		return ErrSessionClosed
	case StatusExpired:
		return ErrSessionExpired
	}
	if TimeRemaining(s.expiryTime, now) == 0 {
		return ErrSessionExpired
	}
	return nil
}
