package services

import (
	"strings"

	"github.com/notifyhub/backend/internal/models"
	"github.com/notifyhub/backend/internal/repository"
)

// ApplicationUpdate is a partial patch for an application.
type ApplicationUpdate struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// ApplicationService validates application input before delegating to
// the store.
type ApplicationService struct {
	repo *repository.ApplicationRepository
}

func NewApplicationService(repo *repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

func (s *ApplicationService) GetByTenant(tenantID uint) ([]models.Application, error) {
	return s.repo.GetByTenant(tenantID)
}

func (s *ApplicationService) GetByID(id uint) (*models.Application, error) {
	return s.repo.GetByID(id)
}

func (s *ApplicationService) GetByTenantAndCode(tenantID uint, code string) (*models.Application, error) {
	return s.repo.GetByTenantAndCode(tenantID, code)
}

func (s *ApplicationService) Create(application *models.Application) error {
	if strings.TrimSpace(application.Code) == "" {
		return &ValidationError{Message: "Code is required"}
	}
	if strings.TrimSpace(application.Name) == "" {
		return &ValidationError{Message: "Name is required"}
	}
	return s.repo.Create(application)
}

func (s *ApplicationService) Update(id uint, patch ApplicationUpdate) (*models.Application, error) {
	application, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		application.Name = *patch.Name
	}
	if patch.Description != nil {
		application.Description = *patch.Description
	}
	if patch.IsActive != nil {
		application.IsActive = *patch.IsActive
	}

	if err := s.repo.Update(application); err != nil {
		return nil, err
	}
	return application, nil
}

func (s *ApplicationService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
