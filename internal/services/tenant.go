package services

import (
	"strings"

	"github.com/notifyhub/backend/internal/models"
	"github.com/notifyhub/backend/internal/repository"
)

// TenantService validates tenant input before delegating to the store.
type TenantService struct {
	repo *repository.TenantRepository
}

func NewTenantService(repo *repository.TenantRepository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) GetAll() ([]models.Tenant, error) {
	return s.repo.GetAll()
}

func (s *TenantService) GetByID(id uint) (*models.Tenant, error) {
	return s.repo.GetByID(id)
}

func (s *TenantService) GetByCode(code string) (*models.Tenant, error) {
	return s.repo.GetByCode(code)
}

func (s *TenantService) Create(tenant *models.Tenant) error {
	if strings.TrimSpace(tenant.Code) == "" {
		return &ValidationError{Message: "Code is required"}
	}
	if strings.TrimSpace(tenant.Name) == "" {
		return &ValidationError{Message: "Name is required"}
	}
	return s.repo.Create(tenant)
}

func (s *TenantService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
