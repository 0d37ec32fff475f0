//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"bidroom/internal/domain/negotiation"
	"bidroom/internal/infra"
	"bidroom/internal/infra/repository"
	"bidroom/internal/infra/sqlstore"
	"bidroom/tests/common/builder"
	repositorymock "bidroom/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func foreignKeyViolation() error {
	return &pgconn.PgError{Code: "23503"}
}

func TestSessionRepositoryCreate(t *testing.T) {
	ctx := context.Background()

	newRepo := func(t *testing.T) (*repositorymock.MockSessionWriteQueries, *repository.SessionRepository) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockSessionWriteQueries(ctrl)
		return queries, repository.NewSessionRepository(queries)
	}

	session := func(t *testing.T) *negotiation.Session {
		s, err := builder.NewSessionBuilder().WithStartTime(baseTime).BuildNew()
		require.NoError(t, err)
		return s
	}

	t.Run("inserts the new session", func(t *testing.T) {
		queries, repo := newRepo(t)
		s := session(t)

		queries.EXPECT().
			InsertSession(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.InsertSessionParams) error {
				assert.Equal(t, s.ID(), arg.ID)
				assert.Equal(t, s.QuoteID(), arg.QuoteID)
				assert.Equal(t, "in_negotiation", arg.Status)
				assert.Equal(t, s.ExpiryTime(), arg.ExpiryTime)
				return nil
			})

		require.NoError(t, repo.Create(ctx, nil, s))
	})

	t.Run("unique violation maps to duplicate key", func(t *testing.T) {
		queries, repo := newRepo(t)

		queries.EXPECT().InsertSession(ctx, gomock.Any(), gomock.Any()).Return(uniqueViolation())

		err := repo.Create(ctx, nil, session(t))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("foreign key violation maps to its own kind", func(t *testing.T) {
		queries, repo := newRepo(t)

		queries.EXPECT().InsertSession(ctx, gomock.Any(), gomock.Any()).Return(foreignKeyViolation())

		err := repo.Create(ctx, nil, session(t))
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestSessionRepositoryFind(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockSessionWriteQueries(ctrl)
	repo := repository.NewSessionRepository(queries)

	t.Run("reconstructs the stored row", func(t *testing.T) {
		b := builder.NewSessionBuilder().
			WithStartTime(baseTime).
			WithRoundsCompleted(2).
			WithExtensionGranted()
		row := b.BuildInfraRow()

		queries.EXPECT().GetSessionByID(ctx, gomock.Any(), b.ID).Return(row, nil)

		actual, err := repo.FindByID(ctx, nil, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, actual.ID())
		assert.Equal(t, negotiation.StatusInNegotiation, actual.Status())
		assert.Equal(t, 2, actual.RoundsCompleted())
		assert.True(t, actual.ExtensionGranted())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		id := uuid.New()
		queries.EXPECT().GetSessionByID(ctx, gomock.Any(), id).Return(sqlstore.NegotiationSessionRow{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("lock path maps not found the same way", func(t *testing.T) {
		id := uuid.New()
		queries.EXPECT().GetSessionForUpdate(ctx, gomock.Any(), id).Return(sqlstore.NegotiationSessionRow{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestSessionRepositoryIncrementRounds(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockSessionWriteQueries(ctrl)
	repo := repository.NewSessionRepository(queries)
	id := uuid.New()

	t.Run("one affected row wins the round", func(t *testing.T) {
		queries.EXPECT().IncrementSessionRounds(ctx, gomock.Any(), id, int32(1)).Return(int64(1), nil)

		require.NoError(t, repo.IncrementRounds(ctx, nil, id, 1))
	})

	t.Run("zero affected rows means the counter moved", func(t *testing.T) {
		queries.EXPECT().IncrementSessionRounds(ctx, gomock.Any(), id, int32(1)).Return(int64(0), nil)

		err := repo.IncrementRounds(ctx, nil, id, 1)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestSessionRepositoryStatusWrites(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockSessionWriteQueries(ctrl)
	repo := repository.NewSessionRepository(queries)
	id := uuid.New()

	t.Run("status update applies while in negotiation", func(t *testing.T) {
		queries.EXPECT().UpdateSessionStatus(ctx, gomock.Any(), id, "accepted").Return(int64(1), nil)

		require.NoError(t, repo.UpdateStatus(ctx, nil, id, negotiation.StatusAccepted))
	})

	t.Run("status update on a closed session conflicts", func(t *testing.T) {
		queries.EXPECT().UpdateSessionStatus(ctx, gomock.Any(), id, "declined").Return(int64(0), nil)

		err := repo.UpdateStatus(ctx, nil, id, negotiation.StatusDeclined)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("extension applies once", func(t *testing.T) {
		newExpiry := baseTime.Add(negotiation.NegotiationWindow + negotiation.ExtensionPeriod)
		queries.EXPECT().ExtendSession(ctx, gomock.Any(), id, newExpiry).Return(int64(1), nil)

		require.NoError(t, repo.Extend(ctx, nil, id, newExpiry))
	})

	t.Run("second extension conflicts", func(t *testing.T) {
		newExpiry := baseTime.Add(negotiation.NegotiationWindow + negotiation.ExtensionPeriod)
		queries.EXPECT().ExtendSession(ctx, gomock.Any(), id, newExpiry).Return(int64(0), nil)

		err := repo.Extend(ctx, nil, id, newExpiry)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestOfferRepository(t *testing.T) {
	ctx := context.Background()

	newRepo := func(t *testing.T) (*repositorymock.MockOfferWriteQueries, *repository.OfferRepository) {
		ctrl := gomock.NewController(t)
		queries := repositorymock.NewMockOfferWriteQueries(ctrl)
		return queries, repository.NewOfferRepository(queries)
	}

	t.Run("appends offer with terms flattened", func(t *testing.T) {
		queries, repo := newRepo(t)
		offer, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)

		queries.EXPECT().
			InsertOffer(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.InsertOfferParams) error {
				assert.Equal(t, offer.ID(), arg.ID)
				assert.Equal(t, int32(1), arg.Round)
				assert.Equal(t, "installer", arg.SenderRole)
				assert.Equal(t, int64(1_200_000), arg.PriceCents)
				assert.Equal(t, "weeks", arg.InstallUnit)
				require.NotNil(t, arg.Note)
				return nil
			})

		require.NoError(t, repo.Append(ctx, nil, offer))
	})

	t.Run("empty note stores as null", func(t *testing.T) {
		queries, repo := newRepo(t)
		offer, err := builder.NewOfferBuilder().
			With(func(b *builder.OfferBuilder) { b.Note = "" }).
			BuildDomain()
		require.NoError(t, err)

		queries.EXPECT().
			InsertOffer(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.InsertOfferParams) error {
				assert.Nil(t, arg.Note)
				return nil
			})

		require.NoError(t, repo.Append(ctx, nil, offer))
	})

	t.Run("unique violation on the round index conflicts", func(t *testing.T) {
		queries, repo := newRepo(t)
		offer, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)

		queries.EXPECT().InsertOffer(ctx, gomock.Any(), gomock.Any()).Return(uniqueViolation())

		appendErr := repo.Append(ctx, nil, offer)
		assert.True(t, infra.IsKind(appendErr, infra.KindConflict))
	})

	t.Run("latest reconstructs the newest row", func(t *testing.T) {
		queries, repo := newRepo(t)
		b := builder.NewOfferBuilder().WithRound(2).WithSender(negotiation.RoleHomeowner)
		row := b.BuildInfraRow()

		queries.EXPECT().GetLatestOffer(ctx, gomock.Any(), b.SessionID).Return(row, nil)

		actual, err := repo.Latest(ctx, nil, b.SessionID)
		require.NoError(t, err)
		require.NotNil(t, actual)
		assert.Equal(t, 2, actual.Round())
		assert.Equal(t, negotiation.RoleHomeowner, actual.Sender())
	})

	t.Run("empty ledger returns nil without error", func(t *testing.T) {
		queries, repo := newRepo(t)
		sessionID := uuid.New()

		queries.EXPECT().GetLatestOffer(ctx, gomock.Any(), sessionID).Return(sqlstore.OfferRow{}, pgx.ErrNoRows)

		actual, err := repo.Latest(ctx, nil, sessionID)
		require.NoError(t, err)
		assert.Nil(t, actual)
	})
}

func TestQuoteRepository(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	queries := repositorymock.NewMockQuoteQueries(ctrl)
	repo := repository.NewQuoteRepository(queries)

	t.Run("loads the quote snapshot", func(t *testing.T) {
		row := sqlstore.QuoteRow{
			ID:           uuid.New(),
			HomeownerID:  uuid.New(),
			InstallerID:  uuid.New(),
			SystemType:   "6.6kW rooftop solar",
			PriceCents:   1_250_000,
			InstallCount: 3,
			InstallUnit:  "weeks",
			Status:       "negotiating",
		}

		queries.EXPECT().GetQuoteByID(ctx, gomock.Any(), row.ID).Return(row, nil)

		snapshot, err := repo.FindByID(ctx, nil, row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.HomeownerID, snapshot.HomeownerID)
		assert.Equal(t, 21, snapshot.InstallWindow.Days())
	})

	t.Run("missing quote maps to not found", func(t *testing.T) {
		id := uuid.New()
		queries.EXPECT().GetQuoteByID(ctx, gomock.Any(), id).Return(sqlstore.QuoteRow{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("marks the quote as deal", func(t *testing.T) {
		id := uuid.New()
		queries.EXPECT().UpdateQuoteStatus(ctx, gomock.Any(), id, "deal").Return(int64(1), nil)

		require.NoError(t, repo.MarkDeal(ctx, nil, id))
	})

	t.Run("marking a missing quote fails", func(t *testing.T) {
		id := uuid.New()
		queries.EXPECT().UpdateQuoteStatus(ctx, gomock.Any(), id, "deal").Return(int64(0), nil)

		err := repo.MarkDeal(ctx, nil, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
