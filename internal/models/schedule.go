package models

import (
	"fmt"
	"strings"
	"time"
)

// RecurrencePattern describes how a schedule repeats.
type RecurrencePattern string

const (
	RecurrenceNone    RecurrencePattern = "none"
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
	RecurrenceYearly  RecurrencePattern = "yearly"
)

// ParseRecurrencePattern converts a wire string into a RecurrencePattern.
func ParseRecurrencePattern(s string) (RecurrencePattern, error) {
	switch strings.ToLower(s) {
	case "none":
		return RecurrenceNone, nil
	case "daily":
		return RecurrenceDaily, nil
	case "weekly":
		return RecurrenceWeekly, nil
	case "monthly":
		return RecurrenceMonthly, nil
	case "yearly":
		return RecurrenceYearly, nil
	default:
		return "", fmt.Errorf("unknown recurrence pattern %q", s)
	}
}

// NotificationSchedule is a recurrence descriptor attached to a
// notification. The schema is persisted in full but no component
// evaluates recurrence yet.
type NotificationSchedule struct {
	ID                   uint              `gorm:"column:id;primaryKey" json:"id"`
	NotificationID       uint              `gorm:"column:notification_id;not null;index" json:"notification_id"`
	StartDate            time.Time         `gorm:"column:start_date;not null" json:"start_date"`
	EndDate              *time.Time        `gorm:"column:end_date" json:"end_date"`
	Recurrence           RecurrencePattern `gorm:"column:recurrence;size:20;not null;default:none" json:"recurrence"`
	RecurrenceInterval   int               `gorm:"column:recurrence_interval;default:1" json:"recurrence_interval"`
	RecurrenceDaysOfWeek *string           `gorm:"column:recurrence_days_of_week;size:20" json:"recurrence_days_of_week"`
	RecurrenceDayOfMonth *int              `gorm:"column:recurrence_day_of_month" json:"recurrence_day_of_month"`
	TimeZone             string            `gorm:"column:time_zone;size:100;not null;default:UTC" json:"time_zone"`
	ExpirationDate       *time.Time        `gorm:"column:expiration_date" json:"expiration_date"`
	IsActive             bool              `gorm:"column:is_active" json:"is_active"`
	CreatedAt            time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            *time.Time        `gorm:"column:updated_at" json:"updated_at"`
}

func (NotificationSchedule) TableName() string {
	return "notification_schedules"
}
