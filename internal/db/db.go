package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NovaSalonTech/salon-scheduler/internal/config"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
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
		&models.User{},
		&models.Service{},
		&models.WorkingHours{},
		&models.BlockedInterval{},
		&models.Appointment{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to create btree_gist extension: %v", err)
	}
	if err := db.Exec(overlapConstraintDDL).Error; err != nil {
		log.Fatalf("failed to create overlap constraint: %v", err)
	}

	return db
}

// overlapConstraintDDL is the database-level backstop against double
// bookings: no two blocking appointments of one stylist may have
// overlapping [start, end) ranges. The columns are timestamptz, so the
// range expression must be tstzrange.
const overlapConstraintDDL = `
    DO $$
    BEGIN
        IF NOT EXISTS (
            SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
        ) THEN
            ALTER TABLE appointments
            ADD CONSTRAINT appointments_no_overlap
            EXCLUDE USING gist (
                stylist_id WITH =,
                tstzrange(start_time, end_time) WITH &&
            )
            WHERE (status IN ('pending', 'confirmed', 'completed'));
        END IF;
    END
    $$;
`
