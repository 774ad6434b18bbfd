package repository

import (
	"time"

	"github.com/notifyhub/backend/internal/models"
	"gorm.io/gorm"
)

// HistoryRepository provides append-only access to the notification
// audit trail.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Create(entry *models.NotificationHistory) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	return r.db.Create(entry).Error
}

// GetByNotification returns a notification's audit rows, newest first.
func (r *HistoryRepository) GetByNotification(notificationID uint) ([]models.NotificationHistory, error) {
	var entries []models.NotificationHistory
	err := r.db.
		Where("notification_id = ?", notificationID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}
