package repository

import (
	"errors"
	"time"

	"github.com/notifyhub/backend/internal/models"
	"gorm.io/gorm"
)

// ApplicationRepository provides store access for tenant applications.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) GetByTenant(tenantID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepository) GetByID(id uint) (*models.Application, error) {
	var application models.Application
	if err := r.db.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepository) GetByTenantAndCode(tenantID uint, code string) (*models.Application, error) {
	var application models.Application
	err := r.db.
		Where("tenant_id = ? AND code = ?", tenantID, code).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}

// Create persists a new application. The store's (tenant_id, code)
// unique constraint rejects duplicate codes within a tenant.
func (r *ApplicationRepository) Create(application *models.Application) error {
	application.CreatedAt = time.Now().UTC()
	return r.db.Create(application).Error
}

func (r *ApplicationRepository) Update(application *models.Application) error {
	return r.db.Save(application).Error
}

func (r *ApplicationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Application{}, id).Error
}
