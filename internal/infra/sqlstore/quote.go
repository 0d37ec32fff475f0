package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const getQuoteByIDSQL = `
SELECT id, homeowner_id, installer_id, system_type, price_cents, install_count, install_unit,
       status, created_at, updated_at
FROM quotes
WHERE id = $1`

func (q *Queries) GetQuoteByID(ctx context.Context, db DBTX, id uuid.UUID) (QuoteRow, error) {
	var r QuoteRow
	err := db.QueryRow(ctx, getQuoteByIDSQL, id).Scan(
		&r.ID, &r.HomeownerID, &r.InstallerID, &r.SystemType, &r.PriceCents,
		&r.InstallCount, &r.InstallUnit, &r.Status, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const updateQuoteStatusSQL = `
UPDATE quotes
SET status = $2, updated_at = now()
WHERE id = $1`

func (q *Queries) UpdateQuoteStatus(ctx context.Context, db DBTX, id uuid.UUID, status string) (int64, error) {
	tag, err := db.Exec(ctx, updateQuoteStatusSQL, id, status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const insertNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
VALUES (gen_random_uuid(), $1, $2, $3, $4)`

func (q *Queries) InsertNotificationJob(ctx context.Context, db DBTX, arg InsertNotificationJobParams) error {
	_, err := db.Exec(ctx, insertNotificationJobSQL, arg.Kind, arg.Topic, arg.Payload, arg.RunAt)
	return err
}

const insertContactRevealSQL = `
INSERT INTO contact_reveals (session_id, revealed_at)
VALUES ($1, $2)
ON CONFLICT (session_id) DO NOTHING`

func (q *Queries) InsertContactReveal(ctx context.Context, db DBTX, sessionID uuid.UUID, revealedAt time.Time) error {
	_, err := db.Exec(ctx, insertContactRevealSQL, sessionID, revealedAt)
	return err
}
