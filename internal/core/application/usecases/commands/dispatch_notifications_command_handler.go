package commands

import (
	"context"
	"errors"

	"pharmacy/internal/core/ports"
)

// DispatchNotificationsCommandHandler drains the notification outbox.
// Pending rows are handed to the notifier one by one; rows whose hand-off
// fails stay pending and are retried on the next drain.
type DispatchNotificationsCommandHandler struct {
	uowFactory DispatchNotificationsUoWFactory
	notifier   ports.Notifier
}

// NewDispatchNotificationsCommandHandler creates a handler for outbox dispatch.
func NewDispatchNotificationsCommandHandler(
	uowFactory DispatchNotificationsUoWFactory,
	notifier ports.Notifier,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle drains one batch of pending notifications. A notification is marked
// sent only after the notifier accepted it; the whole batch commits together,
// so a crash re-sends at most one batch (transports must tolerate duplicates).
func (h DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	pending, err := repo.GetPending(ctx, cmd.Limit())
	if err != nil {
		return err
	}

	var sendErrs error
	for _, n := range pending {
		if sendErr := h.notifier.Send(ctx, n); sendErr != nil {
			sendErrs = errors.Join(sendErrs, sendErr)
			continue
		}
		if err = n.MarkSent(); err != nil {
			return err
		}
		if err = repo.Update(ctx, n); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return sendErrs
}
