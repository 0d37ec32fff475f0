package response

import (
	"time"

	"bidroom/internal/usecase/commands"
	"bidroom/internal/usecase/queries"

	"github.com/google/uuid"
)

type OpenedSessionResponse struct {
	SessionID      uuid.UUID `json:"sessionId"`
	QuoteID        uuid.UUID `json:"quoteId"`
	Status         string    `json:"status"`
	ExpiryTime     time.Time `json:"expiryTime"`
	AlreadyExisted bool      `json:"alreadyExisted"`
}

type QuoteTermsResponse struct {
	SystemType   string `json:"systemType"`
	PriceCents   int64  `json:"priceCents"`
	InstallCount int    `json:"installCount"`
	InstallUnit  string `json:"installUnit"`
	InstallLabel string `json:"installLabel"`
}

type OfferResponse struct {
	ID           uuid.UUID `json:"id"`
	SessionID    uuid.UUID `json:"sessionId"`
	Round        int       `json:"round"`
	SenderRole   string    `json:"senderRole"`
	PriceCents   int64     `json:"priceCents"`
	InstallCount int       `json:"installCount"`
	InstallUnit  string    `json:"installUnit"`
	InstallLabel string    `json:"installLabel"`
	Note         *string   `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SessionResponse struct {
	ID                   uuid.UUID          `json:"id"`
	QuoteID              uuid.UUID          `json:"quoteId"`
	HomeownerID          uuid.UUID          `json:"homeownerId"`
	InstallerID          uuid.UUID          `json:"installerId"`
	Status               string             `json:"status"`
	StartTime            time.Time          `json:"startTime"`
	ExpiryTime           time.Time          `json:"expiryTime"`
	ExtensionGranted     bool               `json:"extensionGranted"`
	RoundsCompleted      int                `json:"roundsCompleted"`
	TimeRemainingSeconds int64              `json:"timeRemainingSeconds"`
	ProgressFraction     float64            `json:"progressFraction"`
	Baseline             QuoteTermsResponse `json:"baseline"`
	LatestOffer          *OfferResponse     `json:"latestOffer,omitempty"`
}

type SessionListResponse struct {
	ID                   uuid.UUID      `json:"id"`
	QuoteID              uuid.UUID      `json:"quoteId"`
	SystemType           string         `json:"systemType"`
	Status               string         `json:"status"`
	ExpiryTime           time.Time      `json:"expiryTime"`
	TimeRemainingSeconds int64          `json:"timeRemainingSeconds"`
	RoundsCompleted      int            `json:"roundsCompleted"`
	ExtensionGranted     bool           `json:"extensionGranted"`
	CounterpartyID       uuid.UUID      `json:"counterpartyId"`
	CounterpartyRating   *float64       `json:"counterpartyRating,omitempty"`
	LatestOffer          *OfferResponse `json:"latestOffer,omitempty"`
}

type SummaryResponse struct {
	BestPrice                *SessionListResponse `json:"bestPrice,omitempty"`
	FastestInstall           *SessionListResponse `json:"fastestInstall,omitempty"`
	HighestRatedCounterparty *SessionListResponse `json:"highestRatedCounterparty,omitempty"`
}

type SubmitOfferResponse struct {
	OfferID         uuid.UUID `json:"offerId"`
	Round           int       `json:"round"`
	RoundsCompleted int       `json:"roundsCompleted"`
}

type ExtensionResponse struct {
	ExpiryTime time.Time `json:"expiryTime"`
}

func FromOpenedSession(s commands.OpenedSession) OpenedSessionResponse {
	return OpenedSessionResponse{
		SessionID:      s.SessionID,
		QuoteID:        s.QuoteID,
		Status:         s.Status,
		ExpiryTime:     s.ExpiryTime,
		AlreadyExisted: s.AlreadyExisted,
	}
}

func FromSessionView(v *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		ID:                   v.ID,
		QuoteID:              v.QuoteID,
		HomeownerID:          v.HomeownerID,
		InstallerID:          v.InstallerID,
		Status:               v.Status,
		StartTime:            v.StartTime,
		ExpiryTime:           v.ExpiryTime,
		ExtensionGranted:     v.ExtensionGranted,
		RoundsCompleted:      v.RoundsCompleted,
		TimeRemainingSeconds: v.TimeRemainingSeconds,
		ProgressFraction:     v.ProgressFraction,
		Baseline:             fromQuoteTerms(v.Baseline),
		LatestOffer:          FromOfferView(v.LatestOffer),
	}
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	if v == nil {
		return nil
	}
	return &OfferResponse{
		ID:           v.ID,
		SessionID:    v.SessionID,
		Round:        v.Round,
		SenderRole:   v.SenderRole,
		PriceCents:   v.PriceCents,
		InstallCount: v.InstallCount,
		InstallUnit:  v.InstallUnit,
		InstallLabel: v.InstallLabel,
		Note:         v.Note,
		CreatedAt:    v.CreatedAt,
	}
}

func FromSessionListItem(v *queries.SessionListItem) *SessionListResponse {
	if v == nil {
		return nil
	}
	return &SessionListResponse{
		ID:                   v.ID,
		QuoteID:              v.QuoteID,
		SystemType:           v.SystemType,
		Status:               v.Status,
		ExpiryTime:           v.ExpiryTime,
		TimeRemainingSeconds: v.TimeRemainingSeconds,
		RoundsCompleted:      v.RoundsCompleted,
		ExtensionGranted:     v.ExtensionGranted,
		CounterpartyID:       v.CounterpartyID,
		CounterpartyRating:   v.CounterpartyRating,
		LatestOffer:          FromOfferView(v.LatestOffer),
	}
}

func FromSummary(v *queries.NegotiationSummary) *SummaryResponse {
	return &SummaryResponse{
		BestPrice:                FromSessionListItem(v.BestPrice),
		FastestInstall:           FromSessionListItem(v.FastestInstall),
		HighestRatedCounterparty: FromSessionListItem(v.HighestRatedCounterparty),
	}
}

func fromQuoteTerms(t queries.QuoteTerms) QuoteTermsResponse {
	return QuoteTermsResponse{
		SystemType:   t.SystemType,
		PriceCents:   t.PriceCents,
		InstallCount: t.InstallCount,
		InstallUnit:  t.InstallUnit,
		InstallLabel: t.InstallLabel,
	}
}
