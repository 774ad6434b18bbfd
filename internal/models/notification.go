package models

import (
	"fmt"
	"strings"
	"time"
)

// NotificationType is the severity of a banner notification.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeSuccess NotificationType = "success"
)

// ParseNotificationType converts a wire string into a NotificationType.
// Matching is case-insensitive; unrecognized values are rejected rather
// than defaulted.
func ParseNotificationType(s string) (NotificationType, error) {
	switch strings.ToLower(s) {
	case "info":
		return NotificationTypeInfo, nil
	case "warning":
		return NotificationTypeWarning, nil
	case "error":
		return NotificationTypeError, nil
	case "success":
		return NotificationTypeSuccess, nil
	default:
		return "", fmt.Errorf("unknown notification type %q", s)
	}
}

// Notification is a banner message displayed to a tenant's users.
// It is "currently active" iff IsActive is true and the current time
// falls inside [StartDate, EndDate], either bound being open when nil.
type Notification struct {
	ID            uint             `gorm:"column:id;primaryKey" json:"id"`
	TenantID      uint             `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Title         string           `gorm:"column:title;size:255;not null" json:"title"`
	Message       string           `gorm:"column:message;type:text;not null" json:"message"`
	Type          NotificationType `gorm:"column:type;size:20;not null;default:info" json:"type"`
	// No column default: GORM skips zero-valued fields that carry one on
	// insert, which would turn an explicit false back into true.
	IsActive      bool             `gorm:"column:is_active" json:"is_active"`
	StartDate     *time.Time       `gorm:"column:start_date" json:"start_date"`
	EndDate       *time.Time       `gorm:"column:end_date" json:"end_date"`
	CreatedAt     time.Time        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     *time.Time       `gorm:"column:updated_at" json:"updated_at"`
	CreatedBy     string           `gorm:"column:created_by;size:255" json:"created_by"`
	TemplateID    *uint            `gorm:"column:template_id" json:"template_id"`
	ApplicationID *uint            `gorm:"column:application_id" json:"application_id"`
}

func (Notification) TableName() string {
	return "notifications"
}
