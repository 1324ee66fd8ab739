package commands

import (
	"errors"

	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// DispatchNotificationsCommand asks the outbox drain to hand off up to limit
// pending notifications. Issued by the background dispatch job.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a command to drain the outbox.
// The limit bounds one batch; the job runs again for the rest.
func NewDispatchNotificationsCommand(limit int) (DispatchNotificationsCommand, error) {
	if limit <= 0 {
		return DispatchNotificationsCommand{}, errs.NewValueIsInvalidError("limit")
	}

	return DispatchNotificationsCommand{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

// Limit returns the maximum batch size for one drain.
func (c DispatchNotificationsCommand) Limit() int {
	return c.limit
}
