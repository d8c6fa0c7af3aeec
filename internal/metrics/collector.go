package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector refreshes the table-size gauges.
// It is driven by the job scheduler.
type BusinessMetricsCollector struct {
	db             *gorm.DB
	metrics        *Metrics
	logger         *zap.Logger
	presenceWindow time.Duration
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, presenceWindow time.Duration, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:             db,
		metrics:        metrics,
		logger:         logger,
		presenceWindow: presenceWindow,
	}
}

// Collect gathers business metrics once
func (c *BusinessMetricsCollector) Collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var boardCount int64
	if err := c.db.WithContext(ctx).Table("boards").Count(&boardCount).Error; err != nil {
		c.logger.Error("Failed to count boards", zap.Error(err))
	} else {
		c.metrics.SetBoardsTotal(boardCount)
	}

	var noteCount int64
	if err := c.db.WithContext(ctx).Table("notes").Count(&noteCount).Error; err != nil {
		c.logger.Error("Failed to count notes", zap.Error(err))
	} else {
		c.metrics.SetNotesTotal(noteCount)
	}

	var liveCount int64
	cutoff := time.Now().UTC().Add(-c.presenceWindow)
	if err := c.db.WithContext(ctx).Table("presences").Where("last_seen > ?", cutoff).Count(&liveCount).Error; err != nil {
		c.logger.Error("Failed to count live presence", zap.Error(err))
	} else {
		c.metrics.SetPresenceLive(liveCount)
	}
}
