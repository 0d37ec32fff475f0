//go:build unit || e2e

package builder

import (
	"time"

	"bidroom/internal/domain/negotiation"
	reqdto "bidroom/internal/handler/dto/request"
	"bidroom/internal/infra/sqlstore"
	"bidroom/internal/usecase/queries"

	"github.com/google/uuid"
)

// SessionBuilder assembles negotiation sessions in every shape the
// tests need: domain entity, storage row, read-side record.
type SessionBuilder struct {
	ID               uuid.UUID
	QuoteID          uuid.UUID
	HomeownerID      uuid.UUID
	InstallerID      uuid.UUID
	Status           negotiation.Status
	StartTime        time.Time
	ExpiryTime       time.Time
	ExtensionGranted bool
	RoundsCompleted  int

	SystemType        string
	QuotePriceCents   int64
	QuoteInstallCount int
	QuoteInstallUnit  string
}

func NewSessionBuilder() *SessionBuilder {
	now := time.Now()
	return &SessionBuilder{
		ID:                uuid.New(),
		QuoteID:           uuid.New(),
		HomeownerID:       uuid.New(),
		InstallerID:       uuid.New(),
		Status:            negotiation.StatusInNegotiation,
		StartTime:         now,
		ExpiryTime:        now.Add(negotiation.NegotiationWindow),
		ExtensionGranted:  false,
		RoundsCompleted:   0,
		SystemType:        "6.6kW rooftop solar",
		QuotePriceCents:   1_250_000,
		QuoteInstallCount: 3,
		QuoteInstallUnit:  "weeks",
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) WithStatus(status negotiation.Status) *SessionBuilder {
	b.Status = status
	return b
}

func (b *SessionBuilder) WithHomeownerID(id uuid.UUID) *SessionBuilder {
	b.HomeownerID = id
	return b
}

func (b *SessionBuilder) WithInstallerID(id uuid.UUID) *SessionBuilder {
	b.InstallerID = id
	return b
}

func (b *SessionBuilder) WithStartTime(t time.Time) *SessionBuilder {
	b.StartTime = t
	b.ExpiryTime = t.Add(negotiation.NegotiationWindow)
	return b
}

func (b *SessionBuilder) WithExpiryTime(t time.Time) *SessionBuilder {
	b.ExpiryTime = t
	return b
}

func (b *SessionBuilder) WithRoundsCompleted(rounds int) *SessionBuilder {
	b.RoundsCompleted = rounds
	return b
}

func (b *SessionBuilder) WithExtensionGranted() *SessionBuilder {
	b.ExtensionGranted = true
	return b
}

// BuildNew runs the domain constructor, so creation-time invariants apply.
func (b *SessionBuilder) BuildNew() (*negotiation.Session, error) {
	return negotiation.NewSession(b.QuoteID, b.HomeownerID, b.InstallerID, b.StartTime)
}

// BuildDomain reconstructs a stored session, bypassing creation checks.
func (b *SessionBuilder) BuildDomain() *negotiation.Session {
	return negotiation.ReconstructSession(
		b.ID, b.QuoteID, b.HomeownerID, b.InstallerID,
		b.Status,
		b.StartTime, b.ExpiryTime,
		b.ExtensionGranted,
		b.RoundsCompleted,
		b.StartTime, b.StartTime,
	)
}

func (b *SessionBuilder) BuildInfraRow() sqlstore.NegotiationSessionRow {
	return sqlstore.NegotiationSessionRow{
		ID:               b.ID,
		QuoteID:          b.QuoteID,
		HomeownerID:      b.HomeownerID,
		InstallerID:      b.InstallerID,
		Status:           b.Status.String(),
		StartTime:        b.StartTime,
		ExpiryTime:       b.ExpiryTime,
		ExtensionGranted: b.ExtensionGranted,
		RoundsCompleted:  int32(b.RoundsCompleted),
		CreatedAt:        b.StartTime,
		UpdatedAt:        b.StartTime,
	}
}

func (b *SessionBuilder) BuildRecord() *queries.SessionRecord {
	return &queries.SessionRecord{
		ID:               b.ID,
		QuoteID:          b.QuoteID,
		HomeownerID:      b.HomeownerID,
		InstallerID:      b.InstallerID,
		Status:           b.Status.String(),
		StartTime:        b.StartTime,
		ExpiryTime:       b.ExpiryTime,
		ExtensionGranted: b.ExtensionGranted,
		RoundsCompleted:  b.RoundsCompleted,
	}
}

func (b *SessionBuilder) BuildQuoteTerms() queries.QuoteTerms {
	return queries.QuoteTerms{
		SystemType:   b.SystemType,
		PriceCents:   b.QuotePriceCents,
		InstallCount: b.QuoteInstallCount,
		InstallUnit:  b.QuoteInstallUnit,
		InstallLabel: "3 weeks",
	}
}

func (b *SessionBuilder) BuildPartyRecord() *queries.PartySessionRecord {
	return &queries.PartySessionRecord{
		SessionRecord:  *b.BuildRecord(),
		Baseline:       b.BuildQuoteTerms(),
		CounterpartyID: b.InstallerID,
	}
}

func (b *SessionBuilder) BuildListItem() *queries.SessionListItem {
	return &queries.SessionListItem{
		ID:               b.ID,
		QuoteID:          b.QuoteID,
		SystemType:       b.SystemType,
		Status:           b.Status.String(),
		ExpiryTime:       b.ExpiryTime,
		RoundsCompleted:  b.RoundsCompleted,
		ExtensionGranted: b.ExtensionGranted,
		CounterpartyID:   b.InstallerID,
	}
}

// OfferBuilder assembles offers the same way.
type OfferBuilder struct {
	ID           uuid.UUID
	SessionID    uuid.UUID
	Round        int
	Sender       negotiation.Role
	PriceCents   int64
	InstallCount int
	InstallUnit  negotiation.WindowUnit
	Note         string
	CreatedAt    time.Time
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:           uuid.New(),
		SessionID:    uuid.New(),
		Round:        1,
		Sender:       negotiation.RoleInstaller,
		PriceCents:   1_200_000,
		InstallCount: 2,
		InstallUnit:  negotiation.UnitWeeks,
		Note:         "Can start sooner if accepted this week",
		CreatedAt:    time.Now(),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithSessionID(id uuid.UUID) *OfferBuilder {
	b.SessionID = id
	return b
}

func (b *OfferBuilder) WithRound(round int) *OfferBuilder {
	b.Round = round
	return b
}

func (b *OfferBuilder) WithSender(sender negotiation.Role) *OfferBuilder {
	b.Sender = sender
	return b
}

func (b *OfferBuilder) WithPriceCents(cents int64) *OfferBuilder {
	b.PriceCents = cents
	return b
}

func (b *OfferBuilder) WithInstallWindow(count int, unit negotiation.WindowUnit) *OfferBuilder {
	b.InstallCount = count
	b.InstallUnit = unit
	return b
}

func (b *OfferBuilder) BuildDomain() (*negotiation.Offer, error) {
	price, err := negotiation.NewMoney(b.PriceCents)
	if err != nil {
		return nil, err
	}
	window, err := negotiation.NewInstallWindow(b.InstallCount, b.InstallUnit)
	if err != nil {
		return nil, err
	}
	note, err := negotiation.NewNote(b.Note)
	if err != nil {
		return nil, err
	}
	return negotiation.NewOffer(b.SessionID, b.Round, b.Sender, price, window, note, b.CreatedAt)
}

func (b *OfferBuilder) BuildInfraRow() sqlstore.OfferRow {
	var note *string
	if b.Note != "" {
		v := b.Note
		note = &v
	}
	return sqlstore.OfferRow{
		ID:           b.ID,
		SessionID:    b.SessionID,
		Round:        int32(b.Round),
		SenderRole:   b.Sender.String(),
		PriceCents:   b.PriceCents,
		InstallCount: int32(b.InstallCount),
		InstallUnit:  string(b.InstallUnit),
		Note:         note,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	var note *string
	if b.Note != "" {
		v := b.Note
		note = &v
	}
	return &queries.OfferView{
		ID:           b.ID,
		SessionID:    b.SessionID,
		Round:        b.Round,
		SenderRole:   b.Sender.String(),
		PriceCents:   b.PriceCents,
		InstallCount: b.InstallCount,
		InstallUnit:  string(b.InstallUnit),
		Note:         note,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *OfferBuilder) BuildSubmitRequestDTO() reqdto.SubmitOfferRequest {
	note := b.Note
	return reqdto.SubmitOfferRequest{
		Round:        b.Round,
		PriceCents:   b.PriceCents,
		InstallCount: b.InstallCount,
		InstallUnit:  string(b.InstallUnit),
		Note:         &note,
	}
}
