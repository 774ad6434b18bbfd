package models

import (
	"fmt"
	"strings"
	"time"
)

// TargetingType selects the audience dimension a rule applies to.
type TargetingType string

const (
	TargetingAll         TargetingType = "all"
	TargetingApplication TargetingType = "application"
	TargetingEnvironment TargetingType = "environment"
	TargetingUserGroup   TargetingType = "user_group"
	TargetingCustom      TargetingType = "custom"
)

// ParseTargetingType converts a wire string into a TargetingType.
func ParseTargetingType(s string) (TargetingType, error) {
	switch strings.ToLower(s) {
	case "all":
		return TargetingAll, nil
	case "application":
		return TargetingApplication, nil
	case "environment":
		return TargetingEnvironment, nil
	case "user_group":
		return TargetingUserGroup, nil
	case "custom":
		return TargetingCustom, nil
	default:
		return "", fmt.Errorf("unknown targeting type %q", s)
	}
}

// TargetingRule is an audience-scoping descriptor attached to a
// notification. Persisted in full; no component evaluates targeting yet.
type TargetingRule struct {
	ID                  uint          `gorm:"column:id;primaryKey" json:"id"`
	NotificationID      uint          `gorm:"column:notification_id;not null;index" json:"notification_id"`
	TargetType          TargetingType `gorm:"column:target_type;size:20;not null" json:"target_type"`
	TargetApplicationID *uint         `gorm:"column:target_application_id" json:"target_application_id"`
	TargetEnvironment   *string       `gorm:"column:target_environment;size:100" json:"target_environment"`
	TargetUserGroup     *string       `gorm:"column:target_user_group;size:255" json:"target_user_group"`
	CustomFilter        *string       `gorm:"column:custom_filter;type:text" json:"custom_filter"`
	Priority            int           `gorm:"column:priority;default:0" json:"priority"`
	IsActive            bool          `gorm:"column:is_active" json:"is_active"`
	CreatedAt           time.Time     `gorm:"column:created_at" json:"created_at"`
}

func (TargetingRule) TableName() string {
	return "targeting_rules"
}
