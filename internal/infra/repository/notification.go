package repository

import (
	"context"
	"time"

	"bidroom/internal/infra"
	"bidroom/internal/infra/sqlstore"

	"github.com/google/uuid"
)

// NotificationRepository is the outbox side of the change-notification
// port: jobs are written in the same transaction as the state change
// and relayed to the non-acting party by an external worker. Delivery
// is not guaranteed by the engine.
type NotificationQueries interface {
	InsertNotificationJob(ctx context.Context, db sqlstore.DBTX, arg sqlstore.InsertNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationQueries
}

func NewNotificationRepository(queries NotificationQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, db sqlstore.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	err := r.queries.InsertNotificationJob(ctx, db, sqlstore.InsertNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   runAt,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// RevealRepository records that both parties' contact details may be
// disclosed. The actual unmasking lives outside the engine.
type RevealQueries interface {
	InsertContactReveal(ctx context.Context, db sqlstore.DBTX, sessionID uuid.UUID, revealedAt time.Time) error
}

type RevealRepository struct {
	queries RevealQueries
}

func NewRevealRepository(queries RevealQueries) *RevealRepository {
	return &RevealRepository{queries: queries}
}

func (r *RevealRepository) Unlock(ctx context.Context, db sqlstore.DBTX, sessionID uuid.UUID, at time.Time) error {
	if err := r.queries.InsertContactReveal(ctx, db, sessionID, at); err != nil {
		return infra.WrapRepoErr("failed to unlock contact reveal", err)
	}
	return nil
}
