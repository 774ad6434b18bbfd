package models

import (
	"time"
)

// Application represents an app within a tenant's ecosystem that can be
// referenced by notifications (e.g. "web-portal", "mobile-app").
type Application struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	TenantID    uint      `gorm:"column:tenant_id;not null;uniqueIndex:idx_applications_tenant_code" json:"tenant_id"`
	Code        string    `gorm:"column:code;size:100;not null;uniqueIndex:idx_applications_tenant_code" json:"code"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsActive    bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Application) TableName() string {
	return "applications"
}
