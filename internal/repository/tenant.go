package repository

import (
	"errors"
	"time"

	"github.com/notifyhub/backend/internal/models"
	"gorm.io/gorm"
)

// TenantRepository provides store access for tenants.
type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) GetAll() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.Order("name ASC").Find(&tenants).Error
	return tenants, err
}

func (r *TenantRepository) GetByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) GetByCode(code string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.Where("code = ?", code).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) Create(tenant *models.Tenant) error {
	tenant.CreatedAt = time.Now().UTC()
	return r.db.Create(tenant).Error
}

// Delete removes a tenant and everything it owns: catalog entities plus
// the tenant's notifications with their dependent rows.
func (r *TenantRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var notificationIDs []uint
		if err := tx.Model(&models.Notification{}).
			Where("tenant_id = ?", id).
			Pluck("id", &notificationIDs).Error; err != nil {
			return err
		}

		if len(notificationIDs) > 0 {
			if err := tx.Where("notification_id IN ?", notificationIDs).Delete(&models.NotificationSchedule{}).Error; err != nil {
				return err
			}
			if err := tx.Where("notification_id IN ?", notificationIDs).Delete(&models.TargetingRule{}).Error; err != nil {
				return err
			}
			if err := tx.Where("notification_id IN ?", notificationIDs).Delete(&models.NotificationHistory{}).Error; err != nil {
				return err
			}
			if err := tx.Where("notification_id IN ?", notificationIDs).Delete(&models.NotificationAcknowledgment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tenant_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("tenant_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&models.Environment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&models.NotificationTemplate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tenant{}, id).Error
	})
}
