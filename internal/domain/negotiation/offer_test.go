//go:build unit

package negotiation_test

import (
	"testing"

	"bidroom/internal/domain/negotiation"
	"bidroom/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offerCase struct {
	name   string
	mutate func(*builder.OfferBuilder)
	errIs  error
}

func TestOffer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, 1, actual.Round())
		assert.Equal(t, negotiation.RoleInstaller, actual.Sender())
		assert.Equal(t, int64(1_200_000), actual.Price().Cents())
		assert.Equal(t, "2 weeks", actual.Window().String())
		assert.False(t, actual.Note().IsEmpty())
	})

	t.Run("round validation", func(t *testing.T) {
		runOfferCases(t, []offerCase{
			{
				name:   "minimum round",
				mutate: func(b *builder.OfferBuilder) { b.WithRound(1) },
			},
			{
				name:   "final round",
				mutate: func(b *builder.OfferBuilder) { b.WithRound(3) },
			},
			{
				name:   "zero round",
				mutate: func(b *builder.OfferBuilder) { b.WithRound(0) },
				errIs:  negotiation.ErrInvalidOfferRound,
			},
			{
				name:   "negative round",
				mutate: func(b *builder.OfferBuilder) { b.WithRound(-1) },
				errIs:  negotiation.ErrInvalidOfferRound,
			},
		})
	})

	t.Run("sender validation", func(t *testing.T) {
		runOfferCases(t, []offerCase{
			{
				name:   "homeowner sender",
				mutate: func(b *builder.OfferBuilder) { b.WithSender(negotiation.RoleHomeowner) },
			},
			{
				name:   "unknown sender role",
				mutate: func(b *builder.OfferBuilder) { b.WithSender("broker") },
				errIs:  negotiation.ErrInvalidSenderRole,
			},
		})
	})

	t.Run("term validation flows through value objects", func(t *testing.T) {
		runOfferCases(t, []offerCase{
			{
				name:   "zero price",
				mutate: func(b *builder.OfferBuilder) { b.WithPriceCents(0) },
				errIs:  negotiation.ErrNonPositivePrice,
			},
			{
				name:   "zero install window",
				mutate: func(b *builder.OfferBuilder) { b.WithInstallWindow(0, negotiation.UnitDays) },
				errIs:  negotiation.ErrInvalidWindow,
			},
			{
				name:   "invalid install unit",
				mutate: func(b *builder.OfferBuilder) { b.WithInstallWindow(2, "months") },
				errIs:  negotiation.ErrInvalidWindowUnit,
			},
		})
	})
}

func runOfferCases(t *testing.T, cases []offerCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewOfferBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
