package negotiation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOfferRound = errors.New("offer round must be at least 1")
	ErrInvalidSenderRole = errors.New("invalid sender role")
)

// Offer is one entry in a session's append-only ledger. Immutable once
// created; never edited or deleted.
type Offer struct {
	id        uuid.UUID
	sessionID uuid.UUID
	round     int
	sender    Role
	price     Money
	window    InstallWindow
	note      Note
	createdAt time.Time
}

func NewOffer(
	sessionID uuid.UUID,
	round int,
	sender Role,
	price Money,
	window InstallWindow,
	note Note,
	createdAt time.Time,
) (*Offer, error) {
	if round < 1 {
		return nil, ErrInvalidOfferRound
	}
	if !sender.IsValid() {
		return nil, ErrInvalidSenderRole
	}

	return &Offer{
		id:        uuid.New(),
		sessionID: sessionID,
		round:     round,
		sender:    sender,
		price:     price,
		window:    window,
		note:      note,
		createdAt: createdAt,
	}, nil
}

func ReconstructOffer(
	id, sessionID uuid.UUID,
	round int,
	sender Role,
	price Money,
	window InstallWindow,
	note Note,
	createdAt time.Time,
) *Offer {
	return &Offer{
		id:        id,
		sessionID: sessionID,
		round:     round,
		sender:    sender,
		price:     price,
		window:    window,
		note:      note,
		createdAt: createdAt,
	}
}

func (o *Offer) ID() uuid.UUID         { return o.id }
func (o *Offer) SessionID() uuid.UUID  { return o.sessionID }
func (o *Offer) Round() int            { return o.round }
func (o *Offer) Sender() Role          { return o.sender }
func (o *Offer) Price() Money          { return o.price }
func (o *Offer) Window() InstallWindow { return o.window }
func (o *Offer) Note() Note            { return o.note }
func (o *Offer) CreatedAt() time.Time  { return o.createdAt }
