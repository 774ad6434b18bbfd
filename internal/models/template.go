package models

import (
	"fmt"
	"strings"
	"time"
)

// TemplateFormat is the content format of a notification template.
type TemplateFormat string

const (
	TemplateFormatHTML     TemplateFormat = "html"
	TemplateFormatMarkdown TemplateFormat = "markdown"
)

// ParseTemplateFormat converts a wire string into a TemplateFormat.
func ParseTemplateFormat(s string) (TemplateFormat, error) {
	switch strings.ToLower(s) {
	case "html":
		return TemplateFormatHTML, nil
	case "markdown":
		return TemplateFormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown template format %q", s)
	}
}

// NotificationTemplate is a reusable, tenant-scoped template used to
// standardize banner content.
type NotificationTemplate struct {
	ID          uint           `gorm:"column:id;primaryKey" json:"id"`
	TenantID    uint           `gorm:"column:tenant_id;not null;uniqueIndex:idx_templates_tenant_code" json:"tenant_id"`
	Code        string         `gorm:"column:code;size:100;not null;uniqueIndex:idx_templates_tenant_code" json:"code"`
	Name        string         `gorm:"column:name;size:255;not null" json:"name"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Content     string         `gorm:"column:content;type:text;not null" json:"content"`
	Format      TemplateFormat `gorm:"column:format;size:20;not null;default:html" json:"format"`
	IsActive    bool           `gorm:"column:is_active" json:"is_active"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time     `gorm:"column:updated_at" json:"updated_at"`
	CreatedBy   string         `gorm:"column:created_by;size:255" json:"created_by"`
}

func (NotificationTemplate) TableName() string {
	return "notification_templates"
}
