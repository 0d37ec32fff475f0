package readstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bidroom/internal/infra"
	"bidroom/internal/infra/sqlstore"
	"bidroom/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NegotiationReadQueries interface {
	GetSessionByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.NegotiationSessionRow, error)
	GetQuoteByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.QuoteRow, error)
	GetLatestOffer(ctx context.Context, db sqlstore.DBTX, sessionID uuid.UUID) (sqlstore.OfferRow, error)
	ListOffersBySession(ctx context.Context, db sqlstore.DBTX, sessionID uuid.UUID) ([]sqlstore.OfferRow, error)
	ListSessionsByParty(ctx context.Context, db sqlstore.DBTX, partyID uuid.UUID) ([]sqlstore.PartySessionRow, error)
}

type NegotiationReadStore struct {
	queries NegotiationReadQueries
	db      sqlstore.DBTX
}

func NewNegotiationReadStore(queries *sqlstore.Queries, db sqlstore.DBTX) *NegotiationReadStore {
	return &NegotiationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NegotiationReadStore) FindSessionByID(ctx context.Context, id uuid.UUID) (*queries.SessionRecord, error) {
	row, err := r.queries.GetSessionByID(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session by ID", err)
	}
	return rowToSessionRecord(row), nil
}

func (r *NegotiationReadStore) FindQuoteTerms(ctx context.Context, quoteID uuid.UUID) (*queries.QuoteTerms, error) {
	row, err := r.queries.GetQuoteByID(ctx, r.db, quoteID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote terms", err)
	}

	return &queries.QuoteTerms{
		SystemType:   row.SystemType,
		PriceCents:   row.PriceCents,
		InstallCount: int(row.InstallCount),
		InstallUnit:  row.InstallUnit,
		InstallLabel: installLabel(int(row.InstallCount), row.InstallUnit),
	}, nil
}

func (r *NegotiationReadStore) FindLatestOffer(ctx context.Context, sessionID uuid.UUID) (*queries.OfferView, error) {
	row, err := r.queries.GetLatestOffer(ctx, r.db, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find latest offer", err)
	}
	return rowToOfferView(row), nil
}

func (r *NegotiationReadStore) ListOffers(ctx context.Context, sessionID uuid.UUID) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListOffersBySession(ctx, r.db, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}

	result := make([]*queries.OfferView, len(rows))
	for i, row := range rows {
		result[i] = rowToOfferView(row)
	}
	return result, nil
}

func (r *NegotiationReadStore) ListByParty(ctx context.Context, partyID uuid.UUID) ([]*queries.PartySessionRecord, error) {
	rows, err := r.queries.ListSessionsByParty(ctx, r.db, partyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sessions for party", err)
	}

	result := make([]*queries.PartySessionRecord, len(rows))
	for i, row := range rows {
		result[i] = rowToPartySessionRecord(row, partyID)
	}
	return result, nil
}

func rowToSessionRecord(row sqlstore.NegotiationSessionRow) *queries.SessionRecord {
	return &queries.SessionRecord{
		ID:               row.ID,
		QuoteID:          row.QuoteID,
		HomeownerID:      row.HomeownerID,
		InstallerID:      row.InstallerID,
		Status:           row.Status,
		StartTime:        row.StartTime,
		ExpiryTime:       row.ExpiryTime,
		ExtensionGranted: row.ExtensionGranted,
		RoundsCompleted:  int(row.RoundsCompleted),
	}
}

func rowToOfferView(row sqlstore.OfferRow) *queries.OfferView {
	return &queries.OfferView{
		ID:           row.ID,
		SessionID:    row.SessionID,
		Round:        int(row.Round),
		SenderRole:   row.SenderRole,
		PriceCents:   row.PriceCents,
		InstallCount: int(row.InstallCount),
		InstallUnit:  row.InstallUnit,
		InstallLabel: installLabel(int(row.InstallCount), row.InstallUnit),
		Note:         row.Note,
		CreatedAt:    row.CreatedAt,
	}
}

func rowToPartySessionRecord(row sqlstore.PartySessionRow, partyID uuid.UUID) *queries.PartySessionRecord {
	record := &queries.PartySessionRecord{
		SessionRecord: *rowToSessionRecord(row.NegotiationSessionRow),
		Baseline: queries.QuoteTerms{
			SystemType:   row.QuoteSystemType,
			PriceCents:   row.QuotePriceCents,
			InstallCount: int(row.QuoteInstallCount),
			InstallUnit:  row.QuoteInstallUnit,
			InstallLabel: installLabel(int(row.QuoteInstallCount), row.QuoteInstallUnit),
		},
		CounterpartyID:     row.InstallerID,
		CounterpartyRating: row.CounterpartyRating,
	}
	if row.HomeownerID != partyID {
		record.CounterpartyID = row.HomeownerID
	}

	if row.LatestOfferID != nil {
		record.LatestOffer = &queries.OfferView{
			ID:           *row.LatestOfferID,
			SessionID:    row.ID,
			Round:        int(*row.LatestRound),
			SenderRole:   *row.LatestSenderRole,
			PriceCents:   *row.LatestPriceCents,
			InstallCount: int(*row.LatestInstallCnt),
			InstallUnit:  *row.LatestInstallUnit,
			InstallLabel: installLabel(int(*row.LatestInstallCnt), *row.LatestInstallUnit),
			Note:         row.LatestNote,
			CreatedAt:    *row.LatestCreatedAt,
		}
	}

	return record
}

func installLabel(count int, unit string) string {
	if count == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	return fmt.Sprintf("%d %s", count, unit)
}
