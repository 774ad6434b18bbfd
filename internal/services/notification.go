package services

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/notifyhub/backend/internal/database"
	"github.com/notifyhub/backend/internal/models"
	"github.com/notifyhub/backend/internal/repository"
)

// Actor identifies who performed a mutation, for audit rows and
// CreatedBy stamping.
type Actor struct {
	Username  string
	IP        string
	UserAgent string
}

// NotificationUpdate is a partial patch: only non-nil fields overwrite
// the stored notification.
type NotificationUpdate struct {
	Title     *string
	Message   *string
	Type      *models.NotificationType
	IsActive  *bool
	StartDate *time.Time
	EndDate   *time.Time
}

// NotificationService validates input, stamps identity and records the
// audit trail around the notification repository.
type NotificationService struct {
	repo    *repository.NotificationRepository
	history *repository.HistoryRepository
}

func NewNotificationService(repo *repository.NotificationRepository, history *repository.HistoryRepository) *NotificationService {
	return &NotificationService{repo: repo, history: history}
}

func (s *NotificationService) GetByTenant(tenantID uint) ([]models.Notification, error) {
	return s.repo.GetByTenant(tenantID)
}

func (s *NotificationService) GetActiveByTenant(tenantID uint) ([]models.Notification, error) {
	return s.repo.GetActiveByTenant(tenantID)
}

func (s *NotificationService) GetByID(id uint) (*models.Notification, error) {
	return s.repo.GetByID(id)
}

func (s *NotificationService) GetHistory(notificationID uint) ([]models.NotificationHistory, error) {
	if _, err := s.repo.GetByID(notificationID); err != nil {
		return nil, err
	}
	return s.history.GetByNotification(notificationID)
}

// Create validates and persists a new notification. CreatedBy falls back
// to "System" when the caller is anonymous.
func (s *NotificationService) Create(notification *models.Notification, actor Actor) error {
	if strings.TrimSpace(notification.Title) == "" {
		return &ValidationError{Message: "Title is required"}
	}
	if strings.TrimSpace(notification.Message) == "" {
		return &ValidationError{Message: "Message is required"}
	}

	if notification.CreatedBy == "" {
		if actor.Username != "" {
			notification.CreatedBy = actor.Username
		} else {
			notification.CreatedBy = "System"
		}
	}

	if err := s.repo.Create(notification); err != nil {
		return err
	}

	s.recordHistory(notification.ID, models.HistoryActionCreated, actor, nil, snapshot(notification))
	database.InvalidateActiveNotifications(notification.TenantID)
	return nil
}

// Update applies a partial patch to an existing notification. Absent
// fields keep their stored values.
func (s *NotificationService) Update(id uint, patch NotificationUpdate, actor Actor) (*models.Notification, error) {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	previous := snapshot(notification)

	if patch.Title != nil {
		notification.Title = *patch.Title
	}
	if patch.Message != nil {
		notification.Message = *patch.Message
	}
	if patch.Type != nil {
		notification.Type = *patch.Type
	}
	if patch.IsActive != nil {
		notification.IsActive = *patch.IsActive
	}
	if patch.StartDate != nil {
		notification.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		notification.EndDate = patch.EndDate
	}

	if err := s.repo.Update(notification); err != nil {
		return nil, err
	}

	s.recordHistory(notification.ID, models.HistoryActionUpdated, actor, previous, snapshot(notification))
	database.InvalidateActiveNotifications(notification.TenantID)
	return notification, nil
}

// Delete removes a notification. A missing id surfaces as ErrNotFound;
// the repository delete itself is idempotent. The audit trail is removed
// with the notification, so no "deleted" row survives a hard delete.
func (s *NotificationService) Delete(id uint, actor Actor) error {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	database.InvalidateActiveNotifications(notification.TenantID)
	return nil
}

func (s *NotificationService) recordHistory(notificationID uint, action models.HistoryAction, actor Actor, previous, current *string) {
	performedBy := actor.Username
	if performedBy == "" {
		performedBy = "System"
	}
	entry := models.NotificationHistory{
		NotificationID: notificationID,
		Action:         action,
		PerformedBy:    performedBy,
		Timestamp:      time.Now().UTC(),
		PreviousState:  previous,
		NewState:       current,
	}
	if actor.IP != "" {
		entry.IPAddress = &actor.IP
	}
	if actor.UserAgent != "" {
		entry.UserAgent = &actor.UserAgent
	}
	// Audit failures never fail the mutation itself
	if err := s.history.Create(&entry); err != nil {
		log.Printf("Failed to record history for notification %d: %v", notificationID, err)
	}
}

func snapshot(notification *models.Notification) *string {
	data, err := json.Marshal(notification)
	if err != nil {
		return nil
	}
	state := string(data)
	return &state
}
