package repository

import (
	"errors"
	"time"

	"github.com/notifyhub/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository provides store access for notifications.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// GetByTenant returns all notifications for a tenant, newest first.
func (r *NotificationRepository) GetByTenant(tenantID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// GetActiveByTenant returns the notifications currently eligible for
// banner display: active and inside their [start_date, end_date] window,
// either bound being open when null. Newest first.
func (r *NotificationRepository) GetActiveByTenant(tenantID uint) ([]models.Notification, error) {
	now := time.Now().UTC()
	var notifications []models.Notification
	err := r.db.
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Where("(start_date IS NULL OR start_date <= ?)", now).
		Where("(end_date IS NULL OR end_date >= ?)", now).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// Create persists a new notification. The server assigns the id and
// stamps CreatedAt; UpdatedAt starts out equal to CreatedAt.
func (r *NotificationRepository) Create(notification *models.Notification) error {
	now := time.Now().UTC()
	notification.CreatedAt = now
	notification.UpdatedAt = &now
	return r.db.Create(notification).Error
}

// Update persists a full replacement of the notification's mutable
// fields and refreshes UpdatedAt.
func (r *NotificationRepository) Update(notification *models.Notification) error {
	now := time.Now().UTC()
	notification.UpdatedAt = &now
	return r.db.Save(notification).Error
}

// Delete removes a notification and all of its dependent rows in one
// transaction. Deleting an absent id is a no-op.
func (r *NotificationRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", id).Delete(&models.NotificationSchedule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("notification_id = ?", id).Delete(&models.TargetingRule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("notification_id = ?", id).Delete(&models.NotificationHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("notification_id = ?", id).Delete(&models.NotificationAcknowledgment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Notification{}, id).Error
	})
}
