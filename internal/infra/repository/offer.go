package repository

import (
	"context"
	"errors"

	"bidroom/internal/domain/negotiation"
	"bidroom/internal/infra"
	"bidroom/internal/infra/sqlstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type OfferWriteQueries interface {
	InsertOffer(ctx context.Context, db sqlstore.DBTX, arg sqlstore.InsertOfferParams) error
	GetLatestOffer(ctx context.Context, db sqlstore.DBTX, sessionID uuid.UUID) (sqlstore.OfferRow, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
}

func NewOfferRepository(queries OfferWriteQueries) *OfferRepository {
	return &OfferRepository{queries: queries}
}

func (r *OfferRepository) Append(ctx context.Context, db sqlstore.DBTX, o *negotiation.Offer) error {
	var note *string
	if !o.Note().IsEmpty() {
		v := o.Note().String()
		note = &v
	}

	err := r.queries.InsertOffer(ctx, db, sqlstore.InsertOfferParams{
		ID:           o.ID(),
		SessionID:    o.SessionID(),
		Round:        int32(o.Round()),
		SenderRole:   o.Sender().String(),
		PriceCents:   o.Price().Cents(),
		InstallCount: int32(o.Window().Count()),
		InstallUnit:  string(o.Window().Unit()),
		Note:         note,
		CreatedAt:    o.CreatedAt(),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		// The (session_id, round) unique index is the last line of
		// defense against two offers landing on the same round.
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("round already taken", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to append offer", err)
	}
	return nil
}

func (r *OfferRepository) Latest(ctx context.Context, db sqlstore.DBTX, sessionID uuid.UUID) (*negotiation.Offer, error) {
	row, err := r.queries.GetLatestOffer(ctx, db, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load latest offer", err)
	}
	return RowToOffer(row)
}

// RowToOffer reconstructs a domain offer from storage. Shared with the
// read store, which lists whole ledgers.
func RowToOffer(row sqlstore.OfferRow) (*negotiation.Offer, error) {
	price, err := negotiation.NewMoney(row.PriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored offer has invalid price", err)
	}
	window, err := negotiation.NewInstallWindow(int(row.InstallCount), negotiation.WindowUnit(row.InstallUnit))
	if err != nil {
		return nil, infra.WrapRepoErr("stored offer has invalid install window", err)
	}
	noteVal := ""
	if row.Note != nil {
		noteVal = *row.Note
	}
	note, err := negotiation.NewNote(noteVal)
	if err != nil {
		return nil, infra.WrapRepoErr("stored offer has invalid note", err)
	}

	return negotiation.ReconstructOffer(
		row.ID, row.SessionID, int(row.Round),
		negotiation.Role(row.SenderRole),
		price, window, note, row.CreatedAt,
	), nil
}
