package services

import (
	"strings"

	"github.com/notifyhub/backend/internal/models"
	"github.com/notifyhub/backend/internal/repository"
)

// TemplateUpdate is a partial patch for a notification template.
type TemplateUpdate struct {
	Name        *string
	Description *string
	Content     *string
	Format      *models.TemplateFormat
	IsActive    *bool
}

// TemplateService validates template input before delegating to the
// store.
type TemplateService struct {
	repo *repository.TemplateRepository
}

func NewTemplateService(repo *repository.TemplateRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

func (s *TemplateService) GetByTenant(tenantID uint) ([]models.NotificationTemplate, error) {
	return s.repo.GetByTenant(tenantID)
}

func (s *TemplateService) GetByID(id uint) (*models.NotificationTemplate, error) {
	return s.repo.GetByID(id)
}

func (s *TemplateService) GetByTenantAndCode(tenantID uint, code string) (*models.NotificationTemplate, error) {
	return s.repo.GetByTenantAndCode(tenantID, code)
}

func (s *TemplateService) Create(template *models.NotificationTemplate, actor Actor) error {
	if strings.TrimSpace(template.Code) == "" {
		return &ValidationError{Message: "Code is required"}
	}
	if strings.TrimSpace(template.Name) == "" {
		return &ValidationError{Message: "Name is required"}
	}
	if strings.TrimSpace(template.Content) == "" {
		return &ValidationError{Message: "Content is required"}
	}

	if template.CreatedBy == "" {
		if actor.Username != "" {
			template.CreatedBy = actor.Username
		} else {
			template.CreatedBy = "System"
		}
	}
	return s.repo.Create(template)
}

func (s *TemplateService) Update(id uint, patch TemplateUpdate) (*models.NotificationTemplate, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		template.Name = *patch.Name
	}
	if patch.Description != nil {
		template.Description = *patch.Description
	}
	if patch.Content != nil {
		template.Content = *patch.Content
	}
	if patch.Format != nil {
		template.Format = *patch.Format
	}
	if patch.IsActive != nil {
		template.IsActive = *patch.IsActive
	}

	if err := s.repo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
