package repository

import (
	"context"
	"errors"
	"time"

	"bidroom/internal/domain/negotiation"
	"bidroom/internal/infra"
	"bidroom/internal/infra/sqlstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type SessionWriteQueries interface {
	InsertSession(ctx context.Context, db sqlstore.DBTX, arg sqlstore.InsertSessionParams) error
	GetSessionByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.NegotiationSessionRow, error)
	GetSessionByQuoteID(ctx context.Context, db sqlstore.DBTX, quoteID uuid.UUID) (sqlstore.NegotiationSessionRow, error)
	GetSessionForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.NegotiationSessionRow, error)
	IncrementSessionRounds(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, expectedRounds int32) (int64, error)
	UpdateSessionStatus(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, status string) (int64, error)
	ExtendSession(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, newExpiry time.Time) (int64, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
}

func NewSessionRepository(queries SessionWriteQueries) *SessionRepository {
	return &SessionRepository{queries: queries}
}

func (r *SessionRepository) Create(ctx context.Context, db sqlstore.DBTX, s *negotiation.Session) error {
	err := r.queries.InsertSession(ctx, db, sqlstore.InsertSessionParams{
		ID:          s.ID(),
		QuoteID:     s.QuoteID(),
		HomeownerID: s.HomeownerID(),
		InstallerID: s.InstallerID(),
		Status:      s.Status().String(),
		StartTime:   s.StartTime(),
		ExpiryTime:  s.ExpiryTime(),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return infra.WrapRepoErr("session already exists for quote", err, infra.KindDuplicateKey)
			case pgErrCodeForeignKeyViolation:
				return infra.WrapRepoErr("quote does not exist", err, infra.KindForeignKeyViolated)
			}
		}
		return infra.WrapRepoErr("failed to create session", err)
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (*negotiation.Session, error) {
	row, err := r.queries.GetSessionByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session", err)
	}
	return rowToSession(row), nil
}

func (r *SessionRepository) FindByQuoteID(ctx context.Context, db sqlstore.DBTX, quoteID uuid.UUID) (*negotiation.Session, error) {
	row, err := r.queries.GetSessionByQuoteID(ctx, db, quoteID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found for quote", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session by quote", err)
	}
	return rowToSession(row), nil
}

func (r *SessionRepository) FindForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (*negotiation.Session, error) {
	row, err := r.queries.GetSessionForUpdate(ctx, db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock session", err)
	}
	return rowToSession(row), nil
}

func (r *SessionRepository) IncrementRounds(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, expectedRounds int) error {
	affected, err := r.queries.IncrementSessionRounds(ctx, db, id, int32(expectedRounds))
	if err != nil {
		return infra.WrapRepoErr("failed to increment rounds", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("round counter moved since read", nil, infra.KindConflict)
	}
	return nil
}

func (r *SessionRepository) UpdateStatus(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, status negotiation.Status) error {
	affected, err := r.queries.UpdateSessionStatus(ctx, db, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update session status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("session no longer in negotiation", nil, infra.KindConflict)
	}
	return nil
}

func (r *SessionRepository) Extend(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, newExpiry time.Time) error {
	affected, err := r.queries.ExtendSession(ctx, db, id, newExpiry)
	if err != nil {
		return infra.WrapRepoErr("failed to extend session", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("extension not available", nil, infra.KindConflict)
	}
	return nil
}

func rowToSession(row sqlstore.NegotiationSessionRow) *negotiation.Session {
	return negotiation.ReconstructSession(
		row.ID, row.QuoteID, row.HomeownerID, row.InstallerID,
		negotiation.Status(row.Status),
		row.StartTime, row.ExpiryTime,
		row.ExtensionGranted,
		int(row.RoundsCompleted),
		row.CreatedAt, row.UpdatedAt,
	)
}
