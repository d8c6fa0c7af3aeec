package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sticky-board-api/internal/domain"
)

// Models lists every persisted type, parents before children.
func Models() []interface{} {
	return []interface{}{
		&domain.Board{},
		&domain.Note{},
		&domain.Participant{},
		&domain.Presence{},
	}
}

// AutoMigrate creates or updates the tables for all domain models.
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	migrator := db.Migrator()

	for _, m := range Models() {
		existed := migrator.HasTable(m)
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
		log.Info("Migrated table",
			zap.String("model", fmt.Sprintf("%T", m)),
			zap.Bool("was_existing", existed),
		)
	}
	return nil
}

// AutoMigrateWithRetry retries AutoMigrate with linear backoff.
func AutoMigrateWithRetry(db *gorm.DB, log *zap.Logger, maxRetries int) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = AutoMigrate(db, log); err == nil {
			return nil
		}
		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			log.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}
	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
