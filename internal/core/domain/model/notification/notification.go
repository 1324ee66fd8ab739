// Package notification models the outbound notification requests emitted by
// workflow transitions. Rows are written inside the same transaction as the
// transition that triggers them (an outbox), then handed to the delivery
// mechanism by a background job. Transport is out of scope.
package notification

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/staff"
	"pharmacy/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through one of its factory methods.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewForRecipient, NewForRole, or RestoreNotification")

	// ErrAlreadySent is returned when MarkSent is applied twice.
	ErrAlreadySent = errors.New("notification has already been sent")
)

// Status of an outbox row.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
)

// Notification is one pending or delivered message about an order, addressed
// either to a specific principal or to everyone holding a role (e.g. all
// cashiers of the system when a payment awaits verification).
type Notification struct {
	id            kernel.UUID
	recipientID   *kernel.UUID
	recipientRole staff.Role
	orderID       kernel.UUID
	title         string
	message       string
	status        string
	createdAt     time.Time
	sentAt        *time.Time

	isConstructed bool
}

// NewForRecipient creates a pending notification addressed to one principal.
func NewForRecipient(id, recipientID, orderID kernel.UUID, title, message string) (*Notification, error) {
	n, err := newNotification(id, orderID, title, message)
	if err != nil {
		return nil, err
	}
	if err := recipientID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("recipientID", err)
	}
	n.recipientID = &recipientID
	return n, nil
}

// NewForRole creates a pending notification addressed to every principal
// holding the given role.
func NewForRole(id kernel.UUID, role staff.Role, orderID kernel.UUID, title, message string) (*Notification, error) {
	n, err := newNotification(id, orderID, title, message)
	if err != nil {
		return nil, err
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	n.recipientRole = role
	return n, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	recipientID *kernel.UUID,
	recipientRole staff.Role,
	orderID kernel.UUID,
	title, message, status string,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	n, err := newNotification(id, orderID, title, message)
	if err != nil {
		return nil, err
	}
	n.recipientID = recipientID
	n.recipientRole = recipientRole
	n.status = status
	n.createdAt = createdAt
	n.sentAt = sentAt
	return n, nil
}

func newNotification(id, orderID kernel.UUID, title, message string) (*Notification, error) {
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	return &Notification{
		id:            id,
		orderID:       orderID,
		title:         title,
		message:       message,
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was created through a factory method.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the addressed principal, or nil for role-wide messages.
func (n *Notification) RecipientID() *kernel.UUID {
	return n.recipientID
}

// RecipientRole returns the addressed role, or RoleUnknown for direct messages.
func (n *Notification) RecipientRole() staff.Role {
	return n.recipientRole
}

// OrderID returns the order the notification is about.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// Title returns the short subject line.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the notification body.
func (n *Notification) Message() string {
	return n.message
}

// Status returns "pending" or "sent".
func (n *Notification) Status() string {
	return n.status
}

// CreatedAt returns when the triggering transition committed.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns when the dispatch job handed the message off, or nil.
func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}

// MarkSent records that the message was handed to the delivery mechanism.
func (n *Notification) MarkSent() error {
	if n.status == StatusSent {
		return ErrAlreadySent
	}
	now := time.Now().UTC()
	n.status = StatusSent
	n.sentAt = &now
	return nil
}
