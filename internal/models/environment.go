package models

import (
	"time"
)

// Environment represents a deployment environment for notification
// targeting (e.g. "dev", "staging", "prod"). Persisted for targeting
// rules; there is no dedicated API surface for it yet.
type Environment struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	TenantID  uint      `gorm:"column:tenant_id;not null;uniqueIndex:idx_environments_tenant_code" json:"tenant_id"`
	Code      string    `gorm:"column:code;size:100;not null;uniqueIndex:idx_environments_tenant_code" json:"code"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	IsActive  bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Environment) TableName() string {
	return "environments"
}
