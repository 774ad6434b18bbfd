package models

import (
	"time"
)

// NotificationAcknowledgment records that a user has seen and
// acknowledged a notification. Unique per (notification, user).
// Persisted schema only; no acknowledgment workflow exists server-side.
type NotificationAcknowledgment struct {
	ID             uint       `gorm:"column:id;primaryKey" json:"id"`
	NotificationID uint       `gorm:"column:notification_id;not null;uniqueIndex:idx_acks_notification_user" json:"notification_id"`
	UserID         string     `gorm:"column:user_id;size:255;not null;uniqueIndex:idx_acks_notification_user" json:"user_id"`
	UserName       string     `gorm:"column:user_name;size:255" json:"user_name"`
	ViewedAt       *time.Time `gorm:"column:viewed_at" json:"viewed_at"`
	AcknowledgedAt time.Time  `gorm:"column:acknowledged_at;not null" json:"acknowledged_at"`
	Feedback       *string    `gorm:"column:feedback;type:text" json:"feedback"`
	Device         *string    `gorm:"column:device;size:100" json:"device"`
	IPAddress      *string    `gorm:"column:ip_address;size:45" json:"ip_address"`
}

func (NotificationAcknowledgment) TableName() string {
	return "notification_acknowledgments"
}
