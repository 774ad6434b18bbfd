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

type TemplateHandler struct {
	service *services.TemplateService
}

func NewTemplateHandler(service *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// TemplateResponse is the wire representation of a notification template.
type TemplateResponse struct {
	ID          uint       `json:"id"`
	TenantID    uint       `json:"tenant_id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Format      string     `json:"format"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	CreatedBy   string     `json:"created_by"`
}

func toTemplateResponse(t *models.NotificationTemplate) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID,
		TenantID:    t.TenantID,
		Code:        t.Code,
		Name:        t.Name,
		Description: t.Description,
		Content:     t.Content,
		Format:      string(t.Format),
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CreatedBy:   t.CreatedBy,
	}
}

// GetByTenant returns all templates for a tenant
func (h *TemplateHandler) GetByTenant(c *fiber.Ctx) error {
	tenantID, err := strconv.Atoi(c.Params("tenantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid tenant ID",
		})
	}

	templates, err := h.service.GetByTenant(uint(tenantID))
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, toTemplateResponse(&templates[i]))
	}
	return c.JSON(responses)
}

// GetByID returns a single template
func (h *TemplateHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid template ID",
		})
	}

	template, err := h.service.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toTemplateResponse(template))
}

// GetByTenantAndCode looks a template up by its tenant-unique code
func (h *TemplateHandler) GetByTenantAndCode(c *fiber.Ctx) error {
	tenantID, err := strconv.Atoi(c.Params("tenantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid tenant ID",
		})
	}

	template, err := h.service.GetByTenantAndCode(uint(tenantID), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toTemplateResponse(template))
}

// CreateTemplateRequest represents create template request
type CreateTemplateRequest struct {
	TenantID    uint   `json:"tenant_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Format      string `json:"format"`
}

// Create creates a new template
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var req CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	format := models.TemplateFormatHTML
	if req.Format != "" {
		parsed, err := models.ParseTemplateFormat(req.Format)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		format = parsed
	}

	// Check the tenant-unique code before hitting the store constraint
	if _, err := h.service.GetByTenantAndCode(req.TenantID, req.Code); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Template code already exists for this tenant",
		})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return respondError(c, err)
	}

	template := models.NotificationTemplate{
		TenantID:    req.TenantID,
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		Format:      format,
		IsActive:    true,
	}

	if err := h.service.Create(&template, actorFromCtx(c)); err != nil {
		return respondError(c, err)
	}

	c.Set("Location", fmt.Sprintf("/api/templates/%d", template.ID))
	return c.Status(fiber.StatusCreated).JSON(toTemplateResponse(&template))
}

// UpdateTemplateRequest represents a partial update
type UpdateTemplateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Format      *string `json:"format"`
	IsActive    *bool   `json:"is_active"`
}

// Update applies a partial patch to a template
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid template ID",
		})
	}

	var req UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	patch := services.TemplateUpdate{
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
		IsActive:    req.IsActive,
	}
	if req.Format != nil {
		parsed, err := models.ParseTemplateFormat(*req.Format)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		patch.Format = &parsed
	}

	if _, err := h.service.Update(uint(id), patch); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete removes a template
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid template ID",
		})
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
