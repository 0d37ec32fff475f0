package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bidroom/internal/domain/negotiation"
	"bidroom/internal/infra"
	"bidroom/internal/pkg/clock"
	"bidroom/internal/pkg/errs"
	"bidroom/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound    = errs.New("negotiation session not found")
	ErrQuoteNotFound      = errs.New("quote not found")
	ErrNotParticipant     = errs.New("party is not part of this session")
	ErrSessionClosed      = errs.New("negotiation session is closed")
	ErrSessionExpired     = errs.New("negotiation session has expired")
	ErrRoundLimitExceeded = errs.New("round limit exceeded")
	ErrOutOfTurn          = errs.New("not the sender's turn")
	ErrInvalidRound       = errs.New("offer round does not match session state")
	ErrNoOffers           = errs.New("no offers to accept")
	ErrAlreadyExtended    = errs.New("extension already granted")
	ErrInvalidOfferTerms  = errs.New("invalid offer terms")
)

const (
	notificationOfferSubmitted   = "offer_submitted"
	notificationSessionAccepted  = "session_accepted"
	notificationSessionDeclined  = "session_declined"
	notificationExtensionGranted = "extension_granted"

	notificationTopic = "negotiation"
)

type OpenedSession struct {
	SessionID      uuid.UUID
	QuoteID        uuid.UUID
	Status         string
	ExpiryTime     time.Time
	AlreadyExisted bool
}

type SubmitOfferInput struct {
	SessionID    uuid.UUID
	Round        int
	PriceCents   int64
	InstallCount int
	InstallUnit  string
	Note         string
}

type SubmitOfferResult struct {
	OfferID         uuid.UUID
	Round           int
	RoundsCompleted int
}

type NegotiationCommands interface {
	// OpenSessions creates a session per quote id. Quotes that already
	// have one are returned as-is, so retrying the same batch is safe.
	OpenSessions(ctx context.Context, quoteIDs []uuid.UUID) ([]OpenedSession, error)
	SubmitOffer(ctx context.Context, partyID uuid.UUID, in SubmitOfferInput) (*SubmitOfferResult, error)
	Accept(ctx context.Context, partyID, sessionID uuid.UUID) error
	Decline(ctx context.Context, partyID, sessionID uuid.UUID) error
	// RequestExtension pushes expiry out by 48h, once per session, and
	// returns the new expiry time.
	RequestExtension(ctx context.Context, partyID, sessionID uuid.UUID) (time.Time, error)
}

type negotiationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewNegotiationCommands(uow shared.UnitOfWork, clock clock.Clock) NegotiationCommands {
	return &negotiationCommandsImpl{uow: uow, clock: clock}
}

func (c *negotiationCommandsImpl) OpenSessions(ctx context.Context, quoteIDs []uuid.UUID) ([]OpenedSession, error) {
	now := c.clock.Now()
	results := make([]OpenedSession, 0, len(quoteIDs))

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, quoteID := range quoteIDs {
			opened, err := c.openOne(ctx, tx, quoteID, now)
			if err != nil {
				return err
			}
			results = append(results, *opened)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (c *negotiationCommandsImpl) openOne(ctx context.Context, tx shared.Tx, quoteID uuid.UUID, now time.Time) (*OpenedSession, error) {
	quote, err := tx.Quotes().FindByID(ctx, tx.DB(), quoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrQuoteNotFound)
		}
		return nil, err
	}

	session, err := negotiation.NewSession(quote.ID, quote.HomeownerID, quote.InstallerID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOfferTerms)
	}

	err = tx.Sessions().Create(ctx, tx.DB(), session)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			existing, findErr := tx.Sessions().FindByQuoteID(ctx, tx.DB(), quoteID)
			if findErr != nil {
				return nil, findErr
			}
			return &OpenedSession{
				SessionID:      existing.ID(),
				QuoteID:        quoteID,
				Status:         existing.EffectiveStatus(now).String(),
				ExpiryTime:     existing.ExpiryTime(),
				AlreadyExisted: true,
			}, nil
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrQuoteNotFound)
		}
		return nil, err
	}

	return &OpenedSession{
		SessionID:  session.ID(),
		QuoteID:    quoteID,
		Status:     session.Status().String(),
		ExpiryTime: session.ExpiryTime(),
	}, nil
}

func (c *negotiationCommandsImpl) SubmitOffer(ctx context.Context, partyID uuid.UUID, in SubmitOfferInput) (*SubmitOfferResult, error) {
	price, err := negotiation.NewMoney(in.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOfferTerms)
	}
	window, err := negotiation.NewInstallWindow(in.InstallCount, negotiation.WindowUnit(in.InstallUnit))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOfferTerms)
	}
	note, err := negotiation.NewNote(in.Note)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOfferTerms)
	}

	var result *SubmitOfferResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session, role, err := c.lockParticipantSession(ctx, tx, partyID, in.SessionID)
		if err != nil {
			return err
		}

		latest, err := tx.Offers().Latest(ctx, tx.DB(), in.SessionID)
		if err != nil {
			return err
		}
		var lastSender *negotiation.Role
		if latest != nil {
			sender := latest.Sender()
			lastSender = &sender
		}

		now := c.clock.Now()
		if err := session.CanSubmitOffer(role, lastSender, now); err != nil {
			return mapSessionErr(err)
		}
		if in.Round != session.NextRound() {
			return ErrInvalidRound
		}

		offer, err := negotiation.NewOffer(in.SessionID, in.Round, role, price, window, note, now)
		if err != nil {
			return errs.Mark(err, ErrInvalidOfferTerms)
		}

		// Compare-and-increment on rounds_completed is the gate between
		// two concurrent same-round offers; the loser sees zero rows.
		expected := in.Round - 1
		if err := tx.Sessions().IncrementRounds(ctx, tx.DB(), in.SessionID, expected); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrInvalidRound)
			}
			return err
		}
		if err := tx.Offers().Append(ctx, tx.DB(), offer); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrInvalidRound)
			}
			return err
		}
		session.RecordOffer(now)

		if err := c.notify(ctx, tx, notificationOfferSubmitted, session, role, now); err != nil {
			return err
		}

		result = &SubmitOfferResult{
			OfferID:         offer.ID(),
			Round:           offer.Round(),
			RoundsCompleted: session.RoundsCompleted(),
		}
		return nil
	})
	if err != nil {
		return nil, c.finishWrite(ctx, in.SessionID, err)
	}
	return result, nil
}

func (c *negotiationCommandsImpl) Accept(ctx context.Context, partyID, sessionID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session, role, err := c.lockParticipantSession(ctx, tx, partyID, sessionID)
		if err != nil {
			return err
		}

		latest, err := tx.Offers().Latest(ctx, tx.DB(), sessionID)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := session.Accept(latest != nil, now); err != nil {
			return mapSessionErr(err)
		}

		if err := tx.Sessions().UpdateStatus(ctx, tx.DB(), sessionID, negotiation.StatusAccepted); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSessionClosed)
			}
			return err
		}
		if err := tx.Quotes().MarkDeal(ctx, tx.DB(), session.QuoteID()); err != nil {
			return err
		}
		if err := tx.Reveals().Unlock(ctx, tx.DB(), sessionID, now); err != nil {
			return err
		}
		return c.notify(ctx, tx, notificationSessionAccepted, session, role, now)
	})
	return c.finishWrite(ctx, sessionID, err)
}

func (c *negotiationCommandsImpl) Decline(ctx context.Context, partyID, sessionID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session, role, err := c.lockParticipantSession(ctx, tx, partyID, sessionID)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := session.Decline(now); err != nil {
			return mapSessionErr(err)
		}

		if err := tx.Sessions().UpdateStatus(ctx, tx.DB(), sessionID, negotiation.StatusDeclined); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrSessionClosed)
			}
			return err
		}
		return c.notify(ctx, tx, notificationSessionDeclined, session, role, now)
	})
	return c.finishWrite(ctx, sessionID, err)
}

func (c *negotiationCommandsImpl) RequestExtension(ctx context.Context, partyID, sessionID uuid.UUID) (time.Time, error) {
	var newExpiry time.Time
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		session, role, err := c.lockParticipantSession(ctx, tx, partyID, sessionID)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := session.GrantExtension(now); err != nil {
			return mapSessionErr(err)
		}

		if err := tx.Sessions().Extend(ctx, tx.DB(), sessionID, session.ExpiryTime()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrAlreadyExtended)
			}
			return err
		}

		newExpiry = session.ExpiryTime()
		return c.notify(ctx, tx, notificationExtensionGranted, session, role, now)
	})
	if err != nil {
		return time.Time{}, c.finishWrite(ctx, sessionID, err)
	}
	return newExpiry, nil
}

// lockParticipantSession loads the session FOR UPDATE and resolves the
// caller's side of it. Every write path starts here.
func (c *negotiationCommandsImpl) lockParticipantSession(ctx context.Context, tx shared.Tx, partyID, sessionID uuid.UUID) (*negotiation.Session, negotiation.Role, error) {
	session, err := tx.Sessions().FindForUpdate(ctx, tx.DB(), sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, "", errs.Mark(err, ErrSessionNotFound)
		}
		return nil, "", err
	}

	role, ok := session.RoleOf(partyID)
	if !ok {
		return nil, "", ErrNotParticipant
	}
	return session, role, nil
}

// finishWrite runs after a write transaction has resolved. An expiry
// surfaced by the write is persisted here, in a transaction of its own,
// because the transaction that observed it is already rolled back.
func (c *negotiationCommandsImpl) finishWrite(ctx context.Context, sessionID uuid.UUID, err error) error {
	if errors.Is(err, ErrSessionExpired) {
		c.persistExpiry(ctx, sessionID)
	}
	return err
}

// persistExpiry flips a run-out session to expired so subsequent reads
// stop recomputing it. Best effort; a conflict means another writer
// closed the session first.
func (c *negotiationCommandsImpl) persistExpiry(ctx context.Context, sessionID uuid.UUID) {
	_ = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sessions().UpdateStatus(ctx, tx.DB(), sessionID, negotiation.StatusExpired)
	})
}

// mapSessionErr translates domain guard failures into command sentinels.
func mapSessionErr(err error) error {
	switch {
	case errors.Is(err, negotiation.ErrSessionExpired):
		return errs.Mark(err, ErrSessionExpired)
	case errors.Is(err, negotiation.ErrSessionClosed):
		return errs.Mark(err, ErrSessionClosed)
	case errors.Is(err, negotiation.ErrRoundLimitExceeded):
		return errs.Mark(err, ErrRoundLimitExceeded)
	case errors.Is(err, negotiation.ErrOutOfTurn):
		return errs.Mark(err, ErrOutOfTurn)
	case errors.Is(err, negotiation.ErrNoOffers):
		return errs.Mark(err, ErrNoOffers)
	case errors.Is(err, negotiation.ErrAlreadyExtended):
		return errs.Mark(err, ErrAlreadyExtended)
	default:
		return err
	}
}

type notificationPayload struct {
	SessionID uuid.UUID `json:"session_id"`
	QuoteID   uuid.UUID `json:"quote_id"`
	ActorRole string    `json:"actor_role"`
	Recipient uuid.UUID `json:"recipient_id"`
}

// notify enqueues an outbox job addressed to the non-acting party.
func (c *negotiationCommandsImpl) notify(ctx context.Context, tx shared.Tx, kind string, session *negotiation.Session, actor negotiation.Role, now time.Time) error {
	recipient := session.HomeownerID()
	if actor == negotiation.RoleHomeowner {
		recipient = session.InstallerID()
	}

	payload, err := json.Marshal(notificationPayload{
		SessionID: session.ID(),
		QuoteID:   session.QuoteID(),
		ActorRole: actor.String(),
		Recipient: recipient,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), kind, notificationTopic, payload, now)
}
