package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/notifyhub/backend/internal/models"
)

func TestTenantGetByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantRepository(db)

	tenant := models.Tenant{Code: "acme", Name: "Acme Corp", IsActive: true}
	if err := repo.Create(&tenant); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.GetByCode("acme")
	if err != nil {
		t.Fatalf("get by code: %v", err)
	}
	if found.ID != tenant.ID || found.Name != "Acme Corp" {
		t.Fatalf("unexpected tenant %+v", found)
	}

	if _, err := repo.GetByCode("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTenantGetAllOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantRepository(db)

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		tenant := models.Tenant{Code: name, Name: name, IsActive: true}
		if err := repo.Create(&tenant); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	tenants, err := repo.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(tenants) != 3 {
		t.Fatalf("expected 3 tenants got %d", len(tenants))
	}
	if tenants[0].Name != "Alpha" || tenants[2].Name != "Zeta" {
		t.Fatalf("expected name ascending, got %q..%q", tenants[0].Name, tenants[2].Name)
	}
}

func TestTenantCodeUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantRepository(db)

	first := models.Tenant{Code: "acme", Name: "Acme", IsActive: true}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := models.Tenant{Code: "acme", Name: "Other", IsActive: true}
	if err := repo.Create(&dup); err == nil {
		t.Fatal("expected unique constraint violation for duplicate code")
	}
}

func TestTenantDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantRepository(db)
	tenant := seedTenant(t, db, "acme")

	n := models.Notification{TenantID: tenant.ID, Title: "t", Message: "m", Type: models.NotificationTypeInfo, IsActive: true}
	if err := db.Create(&n).Error; err != nil {
		t.Fatalf("notification: %v", err)
	}
	now := time.Now().UTC()
	if err := db.Create(&models.NotificationHistory{NotificationID: n.ID, Action: models.HistoryActionCreated, PerformedBy: "admin", Timestamp: now}).Error; err != nil {
		t.Fatalf("history: %v", err)
	}
	if err := db.Create(&models.Application{TenantID: tenant.ID, Code: "portal", Name: "Portal", IsActive: true, CreatedAt: now}).Error; err != nil {
		t.Fatalf("application: %v", err)
	}
	if err := db.Create(&models.NotificationTemplate{TenantID: tenant.ID, Code: "maint", Name: "Maintenance", Content: "<p>x</p>", Format: models.TemplateFormatHTML, IsActive: true, CreatedAt: now}).Error; err != nil {
		t.Fatalf("template: %v", err)
	}
	if err := db.Create(&models.Environment{TenantID: tenant.ID, Code: "prod", Name: "Production", IsActive: true, CreatedAt: now}).Error; err != nil {
		t.Fatalf("environment: %v", err)
	}

	if err := repo.Delete(tenant.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.GetByID(tenant.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	var count int64
	checks := []struct {
		model  interface{}
		column string
		id     uint
	}{
		{&models.Notification{}, "tenant_id", tenant.ID},
		{&models.NotificationHistory{}, "notification_id", n.ID},
		{&models.Application{}, "tenant_id", tenant.ID},
		{&models.NotificationTemplate{}, "tenant_id", tenant.ID},
		{&models.Environment{}, "tenant_id", tenant.ID},
	}
	for _, ck := range checks {
		db.Model(ck.model).Where(ck.column+" = ?", ck.id).Count(&count)
		if count != 0 {
			t.Fatalf("expected cascade delete for %T, %d rows remain", ck.model, count)
		}
	}
}

func TestApplicationCodeScopedToTenant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	acme := seedTenant(t, db, "acme")
	globex := seedTenant(t, db, "globex")

	a := models.Application{TenantID: acme.ID, Code: "portal", Name: "Portal", IsActive: true}
	if err := repo.Create(&a); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Same code under a different tenant is allowed
	b := models.Application{TenantID: globex.ID, Code: "portal", Name: "Portal", IsActive: true}
	if err := repo.Create(&b); err != nil {
		t.Fatalf("create same code other tenant: %v", err)
	}

	// Duplicate within the tenant hits the composite unique index
	dup := models.Application{TenantID: acme.ID, Code: "portal", Name: "Again", IsActive: true}
	if err := repo.Create(&dup); err == nil {
		t.Fatal("expected unique constraint violation within tenant")
	}

	found, err := repo.GetByTenantAndCode(acme.ID, "portal")
	if err != nil {
		t.Fatalf("get by tenant and code: %v", err)
	}
	if found.ID != a.ID {
		t.Fatalf("expected application %d got %d", a.ID, found.ID)
	}

	if _, err := repo.GetByTenantAndCode(acme.ID, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
