//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestQuote inserts a quote with its two parties and returns the
// quote id. Sessions in e2e tests hang off quotes created here.
func CreateTestQuote(t *testing.T, db DBLike, homeownerID, installerID uuid.UUID) uuid.UUID {
	t.Helper()

	quoteID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO quotes (id, homeowner_id, installer_id, system_type, price_cents, install_count, install_unit, status)
		VALUES ($1, $2, $3, '6.6kW rooftop solar', 1250000, 3, 'weeks', 'negotiating')`,
		quoteID, homeownerID, installerID)
	require.NoError(t, err)

	return quoteID
}

// CreateTestRating upserts a counterparty rating used by the summary
// aggregate.
func CreateTestRating(t *testing.T, db DBLike, partyID uuid.UUID, average float64, count int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO party_ratings (party_id, average_rating, review_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (party_id) DO UPDATE
		SET average_rating = EXCLUDED.average_rating, review_count = EXCLUDED.review_count`,
		partyID, average, count)
	require.NoError(t, err)
}

func SessionStatus(t *testing.T, db DBLike, sessionID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM negotiation_sessions WHERE id = $1", sessionID).Scan(&status)
	require.NoError(t, err)
	return status
}

func QuoteStatus(t *testing.T, db DBLike, quoteID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM quotes WHERE id = $1", quoteID).Scan(&status)
	require.NoError(t, err)
	return status
}

func ContactRevealExists(t *testing.T, db DBLike, sessionID uuid.UUID) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM contact_reveals WHERE session_id = $1)", sessionID).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func NotificationJobCount(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&count)
	require.NoError(t, err)
	return count
}

// ForceSessionExpiry rewinds a session's window so the next read or
// write observes it as run out.
func ForceSessionExpiry(t *testing.T, db DBLike, sessionID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		UPDATE negotiation_sessions
		SET start_time = now() - interval '8 days', expiry_time = now() - interval '1 day'
		WHERE id = $1`, sessionID)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	// The negotiation schema has no global reference rows; each test
	// seeds its own quotes and parties.
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
