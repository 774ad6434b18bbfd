package services

import (
	"errors"
	"testing"
	"time"

	"github.com/notifyhub/backend/internal/models"
	"github.com/notifyhub/backend/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*NotificationService, *gorm.DB) {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := NewNotificationService(
		repository.NewNotificationRepository(db),
		repository.NewHistoryRepository(db),
	)
	return svc, db
}

func TestCreateRejectsBlankFields(t *testing.T) {
	svc, _ := setupService(t)

	cases := []models.Notification{
		{TenantID: 1, Title: "", Message: "body"},
		{TenantID: 1, Title: "   ", Message: "body"},
		{TenantID: 1, Title: "title", Message: ""},
		{TenantID: 1, Title: "title", Message: "\t "},
	}
	for _, n := range cases {
		err := svc.Create(&n, Actor{Username: "admin"})
		if err == nil {
			t.Fatalf("expected validation error for %+v", n)
		}
		if !IsValidation(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	}
}

func TestCreateStampsCreatedBy(t *testing.T) {
	svc, _ := setupService(t)

	n := models.Notification{TenantID: 1, Title: "t", Message: "m", Type: models.NotificationTypeInfo, IsActive: true}
	if err := svc.Create(&n, Actor{Username: "admin"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.CreatedBy != "admin" {
		t.Fatalf("expected CreatedBy admin got %q", n.CreatedBy)
	}

	anon := models.Notification{TenantID: 1, Title: "t2", Message: "m", Type: models.NotificationTypeInfo, IsActive: true}
	if err := svc.Create(&anon, Actor{}); err != nil {
		t.Fatalf("create anonymous: %v", err)
	}
	if anon.CreatedBy != "System" {
		t.Fatalf("expected CreatedBy System got %q", anon.CreatedBy)
	}
}

func TestCreateRecordsHistory(t *testing.T) {
	svc, _ := setupService(t)

	n := models.Notification{TenantID: 1, Title: "t", Message: "m", Type: models.NotificationTypeInfo, IsActive: true}
	if err := svc.Create(&n, Actor{Username: "admin", IP: "10.0.0.1", UserAgent: "curl/8"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	entries, err := svc.GetHistory(n.ID)
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 history row got %d", len(entries))
	}
	e := entries[0]
	if e.Action != models.HistoryActionCreated {
		t.Fatalf("expected created action got %q", e.Action)
	}
	if e.PerformedBy != "admin" {
		t.Fatalf("expected performed_by admin got %q", e.PerformedBy)
	}
	if e.PreviousState != nil {
		t.Fatal("expected nil previous state on create")
	}
	if e.NewState == nil || *e.NewState == "" {
		t.Fatal("expected new state snapshot on create")
	}
	if e.IPAddress == nil || *e.IPAddress != "10.0.0.1" {
		t.Fatal("expected ip address on history row")
	}
}

func TestUpdateAppliesPartialPatch(t *testing.T) {
	svc, _ := setupService(t)

	n := models.Notification{TenantID: 1, Title: "original", Message: "body", Type: models.NotificationTypeInfo, IsActive: true}
	if err := svc.Create(&n, Actor{Username: "admin"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	createdUpdatedAt := *n.UpdatedAt

	time.Sleep(20 * time.Millisecond)

	title := "renamed"
	active := false
	updated, err := svc.Update(n.ID, NotificationUpdate{Title: &title, IsActive: &active}, Actor{Username: "admin"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != "renamed" {
		t.Fatalf("expected patched title got %q", updated.Title)
	}
	if updated.IsActive {
		t.Fatal("expected is_active false")
	}
	if updated.Message != "body" {
		t.Fatalf("unpatched field changed: %q", updated.Message)
	}
	if updated.Type != models.NotificationTypeInfo {
		t.Fatalf("unpatched field changed: %q", updated.Type)
	}
	if updated.UpdatedAt == nil || !updated.UpdatedAt.After(createdUpdatedAt) {
		t.Fatal("expected UpdatedAt to move forward")
	}

	entries, err := svc.GetHistory(n.ID)
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 history rows got %d", len(entries))
	}
	// Newest first
	if entries[0].Action != models.HistoryActionUpdated {
		t.Fatalf("expected updated action first got %q", entries[0].Action)
	}
	if entries[0].PreviousState == nil || entries[0].NewState == nil {
		t.Fatal("expected both state snapshots on update")
	}
}

func TestCreateSucceedsWhenAuditWriteFails(t *testing.T) {
	svc, db := setupService(t)

	// Force history inserts to fail; the mutation itself must not.
	if err := db.Migrator().DropTable(&models.NotificationHistory{}); err != nil {
		t.Fatalf("drop history table: %v", err)
	}

	n := models.Notification{TenantID: 1, Title: "t", Message: "m", Type: models.NotificationTypeInfo, IsActive: true}
	if err := svc.Create(&n, Actor{Username: "admin"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.GetByID(n.ID); err != nil {
		t.Fatalf("get after create: %v", err)
	}
}

func TestDeleteIsNotFoundAfterwards(t *testing.T) {
	svc, db := setupService(t)

	n := models.Notification{TenantID: 1, Title: "t", Message: "m", Type: models.NotificationTypeInfo, IsActive: true}
	if err := svc.Create(&n, Actor{Username: "admin"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(n.ID, Actor{Username: "admin"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(n.ID, Actor{Username: "admin"}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	// The audit trail is removed with the notification
	var count int64
	db.Model(&models.NotificationHistory{}).Where("notification_id = ?", n.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected history removed, %d rows remain", count)
	}
}

func TestGetHistoryUnknownNotification(t *testing.T) {
	svc, _ := setupService(t)

	if _, err := svc.GetHistory(9999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTemplateCreateValidation(t *testing.T) {
	_, db := setupService(t)
	svc := NewTemplateService(repository.NewTemplateRepository(db))

	tpl := models.NotificationTemplate{TenantID: 1, Code: "maint", Name: "Maintenance", Content: ""}
	if err := svc.Create(&tpl, Actor{Username: "admin"}); !IsValidation(err) {
		t.Fatalf("expected validation error for empty content, got %v", err)
	}

	tpl.Content = "<p>Down for maintenance</p>"
	tpl.Format = models.TemplateFormatHTML
	if err := svc.Create(&tpl, Actor{Username: "admin"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if tpl.CreatedBy != "admin" {
		t.Fatalf("expected CreatedBy admin got %q", tpl.CreatedBy)
	}
}
