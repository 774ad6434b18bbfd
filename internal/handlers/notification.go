package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/notifyhub/backend/internal/database"
	"github.com/notifyhub/backend/internal/middleware"
	"github.com/notifyhub/backend/internal/models"
	"github.com/notifyhub/backend/internal/services"
)

type NotificationHandler struct {
	service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// NotificationResponse is the wire representation of a notification.
type NotificationResponse struct {
	ID            uint       `json:"id"`
	TenantID      uint       `json:"tenant_id"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	Type          string     `json:"type"`
	IsActive      bool       `json:"is_active"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	CreatedBy     string     `json:"created_by"`
	TemplateID    *uint      `json:"template_id"`
	ApplicationID *uint      `json:"application_id"`
}

func toNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		TenantID:      n.TenantID,
		Title:         n.Title,
		Message:       n.Message,
		Type:          string(n.Type),
		IsActive:      n.IsActive,
		StartDate:     n.StartDate,
		EndDate:       n.EndDate,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
		CreatedBy:     n.CreatedBy,
		TemplateID:    n.TemplateID,
		ApplicationID: n.ApplicationID,
	}
}

func toNotificationResponses(notifications []models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, toNotificationResponse(&notifications[i]))
	}
	return responses
}

// GetByTenant returns all notifications for a tenant, newest first
func (h *NotificationHandler) GetByTenant(c *fiber.Ctx) error {
	tenantID, err := strconv.Atoi(c.Params("tenantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid tenant ID",
		})
	}

	notifications, err := h.service.GetByTenant(uint(tenantID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toNotificationResponses(notifications))
}

// GetActiveByTenant returns the notifications currently eligible for
// banner display. This is the endpoint the embedded SDKs poll, so the
// result is served from the tenant's cache entry when one exists.
func (h *NotificationHandler) GetActiveByTenant(c *fiber.Ctx) error {
	tenantID, err := strconv.Atoi(c.Params("tenantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid tenant ID",
		})
	}

	cacheKey := database.ActiveNotificationsKey(uint(tenantID))
	var cached []NotificationResponse
	if err := database.CacheGet(cacheKey, &cached); err == nil {
		return c.JSON(cached)
	}

	notifications, err := h.service.GetActiveByTenant(uint(tenantID))
	if err != nil {
		return respondError(c, err)
	}

	responses := toNotificationResponses(notifications)
	database.CacheSet(cacheKey, responses, database.CacheTTLActiveNotifications)
	return c.JSON(responses)
}

// GetByID returns a single notification
func (h *NotificationHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid notification ID",
		})
	}

	notification, err := h.service.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toNotificationResponse(notification))
}

// GetHistory returns the audit rows recorded for a notification
func (h *NotificationHandler) GetHistory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid notification ID",
		})
	}

	entries, err := h.service.GetHistory(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// CreateNotificationRequest represents create notification request
type CreateNotificationRequest struct {
	TenantID      uint       `json:"tenant_id"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	Type          string     `json:"type"`
	IsActive      *bool      `json:"is_active"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	TemplateID    *uint      `json:"template_id"`
	ApplicationID *uint      `json:"application_id"`
}

// Create creates a new notification
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var req CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	notificationType := models.NotificationTypeInfo
	if req.Type != "" {
		parsed, err := models.ParseNotificationType(req.Type)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		notificationType = parsed
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	notification := models.Notification{
		TenantID:      req.TenantID,
		Title:         req.Title,
		Message:       req.Message,
		Type:          notificationType,
		IsActive:      isActive,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TemplateID:    req.TemplateID,
		ApplicationID: req.ApplicationID,
	}

	if err := h.service.Create(&notification, actorFromCtx(c)); err != nil {
		return respondError(c, err)
	}

	c.Set("Location", fmt.Sprintf("/api/notifications/%d", notification.ID))
	return c.Status(fiber.StatusCreated).JSON(toNotificationResponse(&notification))
}

// UpdateNotificationRequest represents a partial update. Absent fields
// leave the stored values untouched.
type UpdateNotificationRequest struct {
	Title     *string    `json:"title"`
	Message   *string    `json:"message"`
	Type      *string    `json:"type"`
	IsActive  *bool      `json:"is_active"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// Update applies a partial patch to a notification
func (h *NotificationHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid notification ID",
		})
	}

	var req UpdateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	patch := services.NotificationUpdate{
		Title:     req.Title,
		Message:   req.Message,
		IsActive:  req.IsActive,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.Type != nil {
		parsed, err := models.ParseNotificationType(*req.Type)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		patch.Type = &parsed
	}

	if _, err := h.service.Update(uint(id), patch, actorFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete removes a notification and its dependent rows
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid notification ID",
		})
	}

	if err := h.service.Delete(uint(id), actorFromCtx(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func actorFromCtx(c *fiber.Ctx) services.Actor {
	return services.Actor{
		Username:  middleware.GetCurrentUsername(c),
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
}
