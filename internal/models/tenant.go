package models

import (
	"time"
)

// Tenant is the isolation boundary of the system. Every other entity is
// scoped to exactly one tenant, directly or via its parent notification.
type Tenant struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Code      string    `gorm:"column:code;uniqueIndex;size:100;not null" json:"code"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	IsActive  bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
