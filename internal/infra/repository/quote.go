package repository

import (
	"context"
	"errors"

	"bidroom/internal/domain/negotiation"
	"bidroom/internal/infra"
	"bidroom/internal/infra/sqlstore"
	"bidroom/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const quoteStatusDeal = "deal"

type QuoteQueries interface {
	GetQuoteByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.QuoteRow, error)
	UpdateQuoteStatus(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, status string) (int64, error)
}

type QuoteRepository struct {
	queries QuoteQueries
}

func NewQuoteRepository(queries QuoteQueries) *QuoteRepository {
	return &QuoteRepository{queries: queries}
}

func (r *QuoteRepository) FindByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (*shared.QuoteSnapshot, error) {
	row, err := r.queries.GetQuoteByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote", err)
	}

	window, err := negotiation.NewInstallWindow(int(row.InstallCount), negotiation.WindowUnit(row.InstallUnit))
	if err != nil {
		return nil, infra.WrapRepoErr("stored quote has invalid install window", err)
	}

	return &shared.QuoteSnapshot{
		ID:            row.ID,
		HomeownerID:   row.HomeownerID,
		InstallerID:   row.InstallerID,
		SystemType:    row.SystemType,
		PriceCents:    row.PriceCents,
		InstallWindow: window,
		Status:        row.Status,
	}, nil
}

func (r *QuoteRepository) MarkDeal(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) error {
	affected, err := r.queries.UpdateQuoteStatus(ctx, db, id, quoteStatusDeal)
	if err != nil {
		return infra.WrapRepoErr("failed to mark quote as deal", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("quote not found", nil, infra.KindNotFound)
	}
	return nil
}
