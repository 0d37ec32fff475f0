package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const sessionColumns = `id, quote_id, homeowner_id, installer_id, status, start_time, expiry_time,
       extension_granted, rounds_completed, created_at, updated_at`

const insertSessionSQL = `
INSERT INTO negotiation_sessions (id, quote_id, homeowner_id, installer_id, status, start_time, expiry_time)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) InsertSession(ctx context.Context, db DBTX, arg InsertSessionParams) error {
	_, err := db.Exec(ctx, insertSessionSQL,
		arg.ID, arg.QuoteID, arg.HomeownerID, arg.InstallerID, arg.Status, arg.StartTime, arg.ExpiryTime)
	return err
}

const getSessionByIDSQL = `
SELECT ` + sessionColumns + `
FROM negotiation_sessions
WHERE id = $1`

func (q *Queries) GetSessionByID(ctx context.Context, db DBTX, id uuid.UUID) (NegotiationSessionRow, error) {
	return scanSessionRow(db.QueryRow(ctx, getSessionByIDSQL, id))
}

const getSessionByQuoteIDSQL = `
SELECT ` + sessionColumns + `
FROM negotiation_sessions
WHERE quote_id = $1`

func (q *Queries) GetSessionByQuoteID(ctx context.Context, db DBTX, quoteID uuid.UUID) (NegotiationSessionRow, error) {
	return scanSessionRow(db.QueryRow(ctx, getSessionByQuoteIDSQL, quoteID))
}

const getSessionForUpdateSQL = `
SELECT ` + sessionColumns + `
FROM negotiation_sessions
WHERE id = $1
FOR UPDATE`

// GetSessionForUpdate takes a row lock so concurrent submissions against
// the same session serialize inside the transaction.
func (q *Queries) GetSessionForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (NegotiationSessionRow, error) {
	return scanSessionRow(db.QueryRow(ctx, getSessionForUpdateSQL, id))
}

const incrementSessionRoundsSQL = `
UPDATE negotiation_sessions
SET rounds_completed = rounds_completed + 1, updated_at = now()
WHERE id = $1
  AND rounds_completed = $2
  AND status = 'in_negotiation'`

// IncrementSessionRounds is the atomic compare-and-increment guarding
// concurrent offer submission: it succeeds only while rounds_completed
// still equals the value read at decision time.
func (q *Queries) IncrementSessionRounds(ctx context.Context, db DBTX, id uuid.UUID, expectedRounds int32) (int64, error) {
	tag, err := db.Exec(ctx, incrementSessionRoundsSQL, id, expectedRounds)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateSessionStatusSQL = `
UPDATE negotiation_sessions
SET status = $2, updated_at = now()
WHERE id = $1
  AND status = 'in_negotiation'`

func (q *Queries) UpdateSessionStatus(ctx context.Context, db DBTX, id uuid.UUID, status string) (int64, error) {
	tag, err := db.Exec(ctx, updateSessionStatusSQL, id, status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const extendSessionSQL = `
UPDATE negotiation_sessions
SET expiry_time = $2, extension_granted = true, updated_at = now()
WHERE id = $1
  AND status = 'in_negotiation'
  AND extension_granted = false`

func (q *Queries) ExtendSession(ctx context.Context, db DBTX, id uuid.UUID, newExpiry time.Time) (int64, error) {
	tag, err := db.Exec(ctx, extendSessionSQL, id, newExpiry)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const insertOfferSQL = `
INSERT INTO offers (id, session_id, round, sender_role, price_cents, install_count, install_unit, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) InsertOffer(ctx context.Context, db DBTX, arg InsertOfferParams) error {
	_, err := db.Exec(ctx, insertOfferSQL,
		arg.ID, arg.SessionID, arg.Round, arg.SenderRole, arg.PriceCents,
		arg.InstallCount, arg.InstallUnit, arg.Note, arg.CreatedAt)
	return err
}

const offerColumns = `id, session_id, round, sender_role, price_cents, install_count, install_unit, note, created_at`

const getLatestOfferSQL = `
SELECT ` + offerColumns + `
FROM offers
WHERE session_id = $1
ORDER BY round DESC, created_at DESC
LIMIT 1`

func (q *Queries) GetLatestOffer(ctx context.Context, db DBTX, sessionID uuid.UUID) (OfferRow, error) {
	return scanOfferRow(db.QueryRow(ctx, getLatestOfferSQL, sessionID))
}

const listOffersBySessionSQL = `
SELECT ` + offerColumns + `
FROM offers
WHERE session_id = $1
ORDER BY round ASC, created_at ASC`

func (q *Queries) ListOffersBySession(ctx context.Context, db DBTX, sessionID uuid.UUID) ([]OfferRow, error) {
	rows, err := db.Query(ctx, listOffersBySessionSQL, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []OfferRow
	for rows.Next() {
		var r OfferRow
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Round, &r.SenderRole, &r.PriceCents,
			&r.InstallCount, &r.InstallUnit, &r.Note, &r.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

const listSessionsByPartySQL = `
SELECT s.id, s.quote_id, s.homeowner_id, s.installer_id, s.status, s.start_time, s.expiry_time,
       s.extension_granted, s.rounds_completed, s.created_at, s.updated_at,
       q.system_type, q.price_cents, q.install_count, q.install_unit,
       o.id, o.round, o.sender_role, o.price_cents, o.install_count, o.install_unit, o.note, o.created_at,
       r.average_rating, r.review_count
FROM negotiation_sessions s
JOIN quotes q ON q.id = s.quote_id
LEFT JOIN LATERAL (
    SELECT id, round, sender_role, price_cents, install_count, install_unit, note, created_at
    FROM offers
    WHERE session_id = s.id
    ORDER BY round DESC, created_at DESC
    LIMIT 1
) o ON true
LEFT JOIN party_ratings r
    ON r.party_id = CASE WHEN s.homeowner_id = $1 THEN s.installer_id ELSE s.homeowner_id END
WHERE s.homeowner_id = $1 OR s.installer_id = $1
ORDER BY s.expiry_time ASC, s.id ASC`

// ListSessionsByParty returns a party's sessions soonest-expiring first.
// The ordering is part of the registry contract, not presentation.
func (q *Queries) ListSessionsByParty(ctx context.Context, db DBTX, partyID uuid.UUID) ([]PartySessionRow, error) {
	rows, err := db.Query(ctx, listSessionsByPartySQL, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PartySessionRow
	for rows.Next() {
		var r PartySessionRow
		if err := rows.Scan(
			&r.ID, &r.QuoteID, &r.HomeownerID, &r.InstallerID, &r.Status, &r.StartTime, &r.ExpiryTime,
			&r.ExtensionGranted, &r.RoundsCompleted, &r.CreatedAt, &r.UpdatedAt,
			&r.QuoteSystemType, &r.QuotePriceCents, &r.QuoteInstallCount, &r.QuoteInstallUnit,
			&r.LatestOfferID, &r.LatestRound, &r.LatestSenderRole, &r.LatestPriceCents,
			&r.LatestInstallCnt, &r.LatestInstallUnit, &r.LatestNote, &r.LatestCreatedAt,
			&r.CounterpartyRating, &r.CounterpartyCount,
		); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func scanSessionRow(row interface{ Scan(dest ...any) error }) (NegotiationSessionRow, error) {
	var r NegotiationSessionRow
	err := row.Scan(&r.ID, &r.QuoteID, &r.HomeownerID, &r.InstallerID, &r.Status,
		&r.StartTime, &r.ExpiryTime, &r.ExtensionGranted, &r.RoundsCompleted,
		&r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func scanOfferRow(row interface{ Scan(dest ...any) error }) (OfferRow, error) {
	var r OfferRow
	err := row.Scan(&r.ID, &r.SessionID, &r.Round, &r.SenderRole, &r.PriceCents,
		&r.InstallCount, &r.InstallUnit, &r.Note, &r.CreatedAt)
	return r, err
}
