package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/notifyhub/backend/internal/models"
	"github.com/notifyhub/backend/internal/services"
)

type TenantHandler struct {
	service *services.TenantService
}

func NewTenantHandler(service *services.TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// TenantResponse is the wire representation of a tenant.
type TenantResponse struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toTenantResponse(t *models.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Code:      t.Code,
		Name:      t.Name,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}

// GetAll returns all tenants
func (h *TenantHandler) GetAll(c *fiber.Ctx) error {
	tenants, err := h.service.GetAll()
	if err != nil {
		return respondError(c, err)
	}

	responses := make([]TenantResponse, 0, len(tenants))
	for i := range tenants {
		responses = append(responses, toTenantResponse(&tenants[i]))
	}
	return c.JSON(responses)
}

// GetByID returns a single tenant
func (h *TenantHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid tenant ID",
		})
	}

	tenant, err := h.service.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toTenantResponse(tenant))
}

// GetByCode looks a tenant up by its unique code
func (h *TenantHandler) GetByCode(c *fiber.Ctx) error {
	tenant, err := h.service.GetByCode(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toTenantResponse(tenant))
}

// CreateTenantRequest represents create tenant request
type CreateTenantRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Create creates a new tenant
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var req CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	tenant := models.Tenant{
		Code:     req.Code,
		Name:     req.Name,
		IsActive: true,
	}

	if err := h.service.Create(&tenant); err != nil {
		return respondError(c, err)
	}

	c.Set("Location", fmt.Sprintf("/api/tenants/%d", tenant.ID))
	return c.Status(fiber.StatusCreated).JSON(toTenantResponse(&tenant))
}

// Delete removes a tenant and everything it owns
func (h *TenantHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid tenant ID",
		})
	}

	if err := h.service.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
