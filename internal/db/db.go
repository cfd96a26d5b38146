package db

import (
	"log"
	"time"

	"github.com/BruksfildServices01/attendance-tracker/internal/config"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Organization{},
		&models.Group{},
		&models.Event{},
		&models.User{},
		&models.Settings{},
		&models.Membership{},
		&models.Record{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE events
        SET timezone = 'GMT+00:00'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
