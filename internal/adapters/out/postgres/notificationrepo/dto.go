// Package notificationrepo persists the notification outbox.
package notificationrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// NotificationDTO represents one outbox row. Either RecipientID or
// RecipientRole is set, depending on whether the message is addressed to a
// principal or to everyone holding a role.
type NotificationDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID   *uuid.UUID `gorm:"type:uuid"`
	RecipientRole string     `gorm:"type:varchar(32)"`
	OrderID       uuid.UUID  `gorm:"type:uuid;index"`
	Title         string
	Message       string
	Status        string `gorm:"type:varchar(32);index"`
	CreatedAt     time.Time
	SentAt        *time.Time
}

// TableName specifies the database table name for the outbox.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	var recipientID *uuid.UUID
	if id := n.RecipientID(); id != nil {
		raw := id.Bytes()
		recipientID = &raw
	}

	recipientRole := ""
	if n.RecipientRole() != staff.RoleUnknown {
		recipientRole = n.RecipientRole().String()
	}

	return NotificationDTO{
		ID:            n.ID().Bytes(),
		RecipientID:   recipientID,
		RecipientRole: recipientRole,
		OrderID:       n.OrderID().Bytes(),
		Title:         n.Title(),
		Message:       n.Message(),
		Status:        n.Status(),
		CreatedAt:     n.CreatedAt(),
		SentAt:        n.SentAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var recipientID *kernel.UUID
	if dto.RecipientID != nil {
		rID, rErr := kernel.UUIDFromBytes((*dto.RecipientID)[:])
		if rErr != nil {
			return nil, rErr
		}
		recipientID = &rID
	}

	recipientRole := staff.RoleUnknown
	if dto.RecipientRole != "" {
		if recipientRole, err = staff.RoleFromString(dto.RecipientRole); err != nil {
			return nil, err
		}
	}

	return notification.RestoreNotification(
		id, recipientID, recipientRole, orderID,
		dto.Title, dto.Message, dto.Status, dto.CreatedAt, dto.SentAt,
	)
}
