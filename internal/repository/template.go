package repository

import (
	"errors"
	"time"

	"github.com/notifyhub/backend/internal/models"
	"gorm.io/gorm"
)

// TemplateRepository provides store access for notification templates.
type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) GetByTenant(tenantID uint) ([]models.NotificationTemplate, error) {
	var templates []models.NotificationTemplate
	err := r.db.
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) GetByID(id uint) (*models.NotificationTemplate, error) {
	var template models.NotificationTemplate
	if err := r.db.First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) GetByTenantAndCode(tenantID uint, code string) (*models.NotificationTemplate, error) {
	var template models.NotificationTemplate
	err := r.db.
		Where("tenant_id = ? AND code = ?", tenantID, code).
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) Create(template *models.NotificationTemplate) error {
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = &now
	return r.db.Create(template).Error
}

func (r *TemplateRepository) Update(template *models.NotificationTemplate) error {
	now := time.Now().UTC()
	template.UpdatedAt = &now
	return r.db.Save(template).Error
}

func (r *TemplateRepository) Delete(id uint) error {
	return r.db.Delete(&models.NotificationTemplate{}, id).Error
}
