package shared

import (
	"context"
	"time"

	"bidroom/internal/domain/negotiation"
	"bidroom/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error
}

type Tx interface {
	Sessions() SessionRepository
	Offers() OfferRepository
	Quotes() QuoteRepository
	Notifications() NotificationRepository
	Reveals() RevealRepository
	DB() sqlstore.DBTX
}

type SessionRepository interface {
	Create(ctx context.Context, db sqlstore.DBTX, s *negotiation.Session) error
	FindByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (*negotiation.Session, error)
	FindByQuoteID(ctx context.Context, db sqlstore.DBTX, quoteID uuid.UUID) (*negotiation.Session, error)
	// FindForUpdate locks the session row for the rest of the transaction.
	FindForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (*negotiation.Session, error)
	// IncrementRounds is the compare-and-increment on rounds_completed;
	// KindConflict when another offer won the round.
	IncrementRounds(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, expectedRounds int) error
	UpdateStatus(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, status negotiation.Status) error
	Extend(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, newExpiry time.Time) error
}

type OfferRepository interface {
	Append(ctx context.Context, db sqlstore.DBTX, o *negotiation.Offer) error
	// Latest returns (nil, nil) for a session with an empty ledger.
	Latest(ctx context.Context, db sqlstore.DBTX, sessionID uuid.UUID) (*negotiation.Offer, error)
}

type QuoteRepository interface {
	FindByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (*QuoteSnapshot, error)
	// MarkDeal is the engine's only write outside its own aggregate.
	MarkDeal(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db sqlstore.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type RevealRepository interface {
	Unlock(ctx context.Context, db sqlstore.DBTX, sessionID uuid.UUID, at time.Time) error
}

// QuoteSnapshot is the baseline the engine reads from the quote store.
type QuoteSnapshot struct {
	ID            uuid.UUID
	HomeownerID   uuid.UUID
	InstallerID   uuid.UUID
	SystemType    string
	PriceCents    int64
	InstallWindow negotiation.InstallWindow
	Status        string
}
