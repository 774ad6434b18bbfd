package models

import (
	"time"
)

// HistoryAction is the kind of event recorded in a notification's audit
// trail.
type HistoryAction string

const (
	HistoryActionCreated      HistoryAction = "created"
	HistoryActionUpdated      HistoryAction = "updated"
	HistoryActionDeleted      HistoryAction = "deleted"
	HistoryActionActivated    HistoryAction = "activated"
	HistoryActionDeactivated  HistoryAction = "deactivated"
	HistoryActionDelivered    HistoryAction = "delivered"
	HistoryActionViewed       HistoryAction = "viewed"
	HistoryActionAcknowledged HistoryAction = "acknowledged"
	HistoryActionExpired      HistoryAction = "expired"
)

// NotificationHistory is an append-only audit row written on every
// notification mutation. PreviousState/NewState hold JSON snapshots of
// the notification before and after the change.
type NotificationHistory struct {
	ID             uint          `gorm:"column:id;primaryKey" json:"id"`
	NotificationID uint          `gorm:"column:notification_id;not null;index" json:"notification_id"`
	Action         HistoryAction `gorm:"column:action;size:20;not null" json:"action"`
	PerformedBy    string        `gorm:"column:performed_by;size:255;not null" json:"performed_by"`
	Timestamp      time.Time     `gorm:"column:timestamp;not null" json:"timestamp"`
	PreviousState  *string       `gorm:"column:previous_state;type:text" json:"previous_state"`
	NewState       *string       `gorm:"column:new_state;type:text" json:"new_state"`
	Details        *string       `gorm:"column:details;type:text" json:"details"`
	IPAddress      *string       `gorm:"column:ip_address;size:45" json:"ip_address"`
	UserAgent      *string       `gorm:"column:user_agent;size:512" json:"user_agent"`
}

func (NotificationHistory) TableName() string {
	return "notification_history"
}
