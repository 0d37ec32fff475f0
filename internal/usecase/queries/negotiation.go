package queries

import (
	"context"
	"time"

	"bidroom/internal/domain/negotiation"
	"bidroom/internal/infra"
	"bidroom/internal/pkg/clock"
	"bidroom/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errs.New("negotiation session not found")
	ErrNotParticipant  = errs.New("party is not part of this session")
)

// Read models (DTO for read side)
type SessionView struct {
	ID                   uuid.UUID  `json:"id"`
	QuoteID              uuid.UUID  `json:"quote_id"`
	HomeownerID          uuid.UUID  `json:"homeowner_id"`
	InstallerID          uuid.UUID  `json:"installer_id"`
	Status               string     `json:"status"`
	StartTime            time.Time  `json:"start_time"`
	ExpiryTime           time.Time  `json:"expiry_time"`
	ExtensionGranted     bool       `json:"extension_granted"`
	RoundsCompleted      int        `json:"rounds_completed"`
	TimeRemainingSeconds int64      `json:"time_remaining_seconds"`
	ProgressFraction     float64    `json:"progress_fraction"`
	Baseline             QuoteTerms `json:"baseline"`
	LatestOffer          *OfferView `json:"latest_offer,omitempty"`
}

type QuoteTerms struct {
	SystemType   string `json:"system_type"`
	PriceCents   int64  `json:"price_cents"`
	InstallCount int    `json:"install_count"`
	InstallUnit  string `json:"install_unit"`
	InstallLabel string `json:"install_label"`
}

type OfferView struct {
	ID           uuid.UUID `json:"id"`
	SessionID    uuid.UUID `json:"session_id"`
	Round        int       `json:"round"`
	SenderRole   string    `json:"sender_role"`
	PriceCents   int64     `json:"price_cents"`
	InstallCount int       `json:"install_count"`
	InstallUnit  string    `json:"install_unit"`
	InstallLabel string    `json:"install_label"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type SessionListItem struct {
	ID                   uuid.UUID  `json:"id"`
	QuoteID              uuid.UUID  `json:"quote_id"`
	SystemType           string     `json:"system_type"`
	Status               string     `json:"status"`
	ExpiryTime           time.Time  `json:"expiry_time"`
	TimeRemainingSeconds int64      `json:"time_remaining_seconds"`
	RoundsCompleted      int        `json:"rounds_completed"`
	ExtensionGranted     bool       `json:"extension_granted"`
	CounterpartyID       uuid.UUID  `json:"counterparty_id"`
	CounterpartyRating   *float64   `json:"counterparty_rating,omitempty"`
	LatestOffer          *OfferView `json:"latest_offer,omitempty"`
}

// NegotiationSummary is the cross-session aggregate view: which open
// negotiation currently carries the best terms. Sessions with an empty
// ledger never appear; a baseline quote price is not a negotiated price.
type NegotiationSummary struct {
	BestPrice                *SessionListItem `json:"best_price,omitempty"`
	FastestInstall           *SessionListItem `json:"fastest_install,omitempty"`
	HighestRatedCounterparty *SessionListItem `json:"highest_rated_counterparty,omitempty"`
}

// SessionRecord is the stored session as the read store returns it,
// before read-time expiry is folded in.
type SessionRecord struct {
	ID               uuid.UUID
	QuoteID          uuid.UUID
	HomeownerID      uuid.UUID
	InstallerID      uuid.UUID
	Status           string
	StartTime        time.Time
	ExpiryTime       time.Time
	ExtensionGranted bool
	RoundsCompleted  int
}

type PartySessionRecord struct {
	SessionRecord
	Baseline           QuoteTerms
	CounterpartyID     uuid.UUID
	CounterpartyRating *float64
	LatestOffer        *OfferView
}

type NegotiationReadStore interface {
	FindSessionByID(ctx context.Context, id uuid.UUID) (*SessionRecord, error)
	FindQuoteTerms(ctx context.Context, quoteID uuid.UUID) (*QuoteTerms, error)
	FindLatestOffer(ctx context.Context, sessionID uuid.UUID) (*OfferView, error)
	ListOffers(ctx context.Context, sessionID uuid.UUID) ([]*OfferView, error)
	ListByParty(ctx context.Context, partyID uuid.UUID) ([]*PartySessionRecord, error)
}

type NegotiationQueries interface {
	GetByID(ctx context.Context, partyID, sessionID uuid.UUID) (*SessionView, error)
	ListOffers(ctx context.Context, partyID, sessionID uuid.UUID) ([]*OfferView, error)
	// ListForParty returns sessions ordered soonest-expiring first.
	ListForParty(ctx context.Context, partyID uuid.UUID) ([]*SessionListItem, error)
	Summary(ctx context.Context, partyID uuid.UUID) (*NegotiationSummary, error)
}

type negotiationQueriesImpl struct {
	store NegotiationReadStore
	clock clock.Clock
}

func NewNegotiationQueries(store NegotiationReadStore, clock clock.Clock) NegotiationQueries {
	return &negotiationQueriesImpl{store: store, clock: clock}
}

func (q *negotiationQueriesImpl) GetByID(ctx context.Context, partyID, sessionID uuid.UUID) (*SessionView, error) {
	record, err := q.store.FindSessionByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if record.HomeownerID != partyID && record.InstallerID != partyID {
		return nil, ErrNotParticipant
	}

	terms, err := q.store.FindQuoteTerms(ctx, record.QuoteID)
	if err != nil {
		return nil, err
	}

	latest, err := q.store.FindLatestOffer(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	return &SessionView{
		ID:                   record.ID,
		QuoteID:              record.QuoteID,
		HomeownerID:          record.HomeownerID,
		InstallerID:          record.InstallerID,
		Status:               effectiveStatus(record, now),
		StartTime:            record.StartTime,
		ExpiryTime:           record.ExpiryTime,
		ExtensionGranted:     record.ExtensionGranted,
		RoundsCompleted:      record.RoundsCompleted,
		TimeRemainingSeconds: int64(negotiation.TimeRemaining(record.ExpiryTime, now).Seconds()),
		ProgressFraction:     negotiation.ProgressFraction(record.ExpiryTime, now),
		Baseline:             *terms,
		LatestOffer:          latest,
	}, nil
}

func (q *negotiationQueriesImpl) ListOffers(ctx context.Context, partyID, sessionID uuid.UUID) ([]*OfferView, error) {
	record, err := q.store.FindSessionByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if record.HomeownerID != partyID && record.InstallerID != partyID {
		return nil, ErrNotParticipant
	}

	return q.store.ListOffers(ctx, sessionID)
}

func (q *negotiationQueriesImpl) ListForParty(ctx context.Context, partyID uuid.UUID) ([]*SessionListItem, error) {
	records, err := q.store.ListByParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	items := make([]*SessionListItem, len(records))
	for i, record := range records {
		items[i] = toListItem(record, now)
	}
	return items, nil
}

func (q *negotiationQueriesImpl) Summary(ctx context.Context, partyID uuid.UUID) (*NegotiationSummary, error) {
	items, err := q.ListForParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	return BuildSummary(items), nil
}

// BuildSummary computes the three aggregates over open sessions that
// carry at least one negotiated offer. Items arrive soonest-expiring
// first and each winner is replaced only by a strictly better candidate,
// so ties go to the session closest to running out.
func BuildSummary(items []*SessionListItem) *NegotiationSummary {
	summary := &NegotiationSummary{}
	for _, item := range items {
		if item.Status != negotiation.StatusInNegotiation.String() || item.LatestOffer == nil {
			continue
		}

		if summary.BestPrice == nil ||
			item.LatestOffer.PriceCents < summary.BestPrice.LatestOffer.PriceCents {
			summary.BestPrice = item
		}
		if summary.FastestInstall == nil ||
			installDays(item.LatestOffer) < installDays(summary.FastestInstall.LatestOffer) {
			summary.FastestInstall = item
		}
		if item.CounterpartyRating != nil &&
			(summary.HighestRatedCounterparty == nil ||
				*item.CounterpartyRating > *summary.HighestRatedCounterparty.CounterpartyRating) {
			summary.HighestRatedCounterparty = item
		}
	}
	return summary
}

func installDays(o *OfferView) int {
	if negotiation.WindowUnit(o.InstallUnit) == negotiation.UnitWeeks {
		return o.InstallCount * 7
	}
	return o.InstallCount
}

func toListItem(record *PartySessionRecord, now time.Time) *SessionListItem {
	return &SessionListItem{
		ID:                   record.ID,
		QuoteID:              record.QuoteID,
		SystemType:           record.Baseline.SystemType,
		Status:               effectiveStatus(&record.SessionRecord, now),
		ExpiryTime:           record.ExpiryTime,
		TimeRemainingSeconds: int64(negotiation.TimeRemaining(record.ExpiryTime, now).Seconds()),
		RoundsCompleted:      record.RoundsCompleted,
		ExtensionGranted:     record.ExtensionGranted,
		CounterpartyID:       record.CounterpartyID,
		CounterpartyRating:   record.CounterpartyRating,
		LatestOffer:          record.LatestOffer,
	}
}

func effectiveStatus(record *SessionRecord, now time.Time) string {
	return negotiation.DeriveStatus(negotiation.Status(record.Status), record.ExpiryTime, now).String()
}
