package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/notifyhub/backend/internal/models"
	"github.com/notifyhub/backend/internal/repository"
	"github.com/notifyhub/backend/internal/services"
)

type ApplicationHandler struct {
	service *services.ApplicationService
}

func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// ApplicationResponse is the wire representation of an application.
type ApplicationResponse struct {
	ID          uint      `json:"id"`
	TenantID    uint      `json:"tenant_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toApplicationResponse(a *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		TenantID:    a.TenantID,
		Code:        a.Code,
		Name:        a.Name,
		Description: a.Description,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
	}
}

// GetByTenant returns all applications for a tenant
func (h *ApplicationHandler) GetByTenant(c *fiber.Ctx) error {
	tenantID, err := strconv.Atoi(c.Params("tenantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid tenant ID",
		})
	}

	applications, err := h.service.GetByTenant(uint(tenantID))
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, toApplicationResponse(&applications[i]))
	}
	return c.JSON(responses)
}

// GetByID returns a single application
func (h *ApplicationHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid application ID",
		})
	}

	application, err := h.service.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toApplicationResponse(application))
}

// GetByTenantAndCode looks an application up by its tenant-unique code
func (h *ApplicationHandler) GetByTenantAndCode(c *fiber.Ctx) error {
	tenantID, err := strconv.Atoi(c.Params("tenantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid tenant ID",
		})
	}

	application, err := h.service.GetByTenantAndCode(uint(tenantID), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toApplicationResponse(application))
}

// CreateApplicationRequest represents create application request
type CreateApplicationRequest struct {
	TenantID    uint   `json:"tenant_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create creates a new application
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var req CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	// Check the tenant-unique code before hitting the store constraint
	if _, err := h.service.GetByTenantAndCode(req.TenantID, req.Code); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Application code already exists for this tenant",
		})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return respondError(c, err)
	}

	application := models.Application{
		TenantID:    req.TenantID,
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := h.service.Create(&application); err != nil {
		return respondError(c, err)
	}

	c.Set("Location", fmt.Sprintf("/api/applications/%d", application.ID))
	return c.Status(fiber.StatusCreated).JSON(toApplicationResponse(&application))
}

// UpdateApplicationRequest represents a partial update
type UpdateApplicationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// Update applies a partial patch to an application
func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid application ID",
		})
	}

	var req UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	patch := services.ApplicationUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}

	if _, err := h.service.Update(uint(id), patch); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete removes an application
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid application ID",
		})
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
