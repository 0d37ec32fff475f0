package sqlstore

import (
	"time"

	"github.com/google/uuid"
)

type NegotiationSessionRow struct {
	ID               uuid.UUID
	QuoteID          uuid.UUID
	HomeownerID      uuid.UUID
	InstallerID      uuid.UUID
	Status           string
	StartTime        time.Time
	ExpiryTime       time.Time
	ExtensionGranted bool
	RoundsCompleted  int32
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OfferRow struct {
	ID           uuid.UUID
	SessionID    uuid.UUID
	Round        int32
	SenderRole   string
	PriceCents   int64
	InstallCount int32
	InstallUnit  string
	Note         *string
	CreatedAt    time.Time
}

type QuoteRow struct {
	ID           uuid.UUID
	HomeownerID  uuid.UUID
	InstallerID  uuid.UUID
	SystemType   string
	PriceCents   int64
	InstallCount int32
	InstallUnit  string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PartySessionRow carries one session of a party's list view together
// with the latest offer (if any), the counterparty's rating read model
// and the quote baseline, all in a single query.
type PartySessionRow struct {
	NegotiationSessionRow

	QuoteSystemType   string
	QuotePriceCents   int64
	QuoteInstallCount int32
	QuoteInstallUnit  string

	LatestOfferID     *uuid.UUID
	LatestRound       *int32
	LatestSenderRole  *string
	LatestPriceCents  *int64
	LatestInstallCnt  *int32
	LatestInstallUnit *string
	LatestNote        *string
	LatestCreatedAt   *time.Time

	CounterpartyRating *float64
	CounterpartyCount  *int32
}

type InsertSessionParams struct {
	ID          uuid.UUID
	QuoteID     uuid.UUID
	HomeownerID uuid.UUID
	InstallerID uuid.UUID
	Status      string
	StartTime   time.Time
	ExpiryTime  time.Time
}

type InsertOfferParams struct {
	ID           uuid.UUID
	SessionID    uuid.UUID
	Round        int32
	SenderRole   string
	PriceCents   int64
	InstallCount int32
	InstallUnit  string
	Note         *string
	CreatedAt    time.Time
}

type InsertNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}
