package models

import (
	"log"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every entity. Child
// tables carry plain foreign key columns; cascade deletes are performed
// explicitly by the repositories rather than by the database graph.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	return db.AutoMigrate(
		&Tenant{},
		&Application{},
		&Environment{},
		&NotificationTemplate{},
		&Notification{},
		&NotificationSchedule{},
		&TargetingRule{},
		&NotificationHistory{},
		&NotificationAcknowledgment{},
	)
}
