package job

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const sweepTimeout = 30 * time.Second

// Sweeper removes presence entries that stopped sending heartbeats.
type Sweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// SweepRecorder counts removed entries.
type SweepRecorder interface {
	RecordPresenceSwept(n int64)
}

// PresenceSweepJob expires stale presence entries
type PresenceSweepJob struct {
	sweeper  Sweeper
	recorder SweepRecorder
	logger   *zap.Logger
}

// NewPresenceSweepJob creates a new PresenceSweepJob instance
func NewPresenceSweepJob(sweeper Sweeper, recorder SweepRecorder, logger *zap.Logger) *PresenceSweepJob {
	return &PresenceSweepJob{
		sweeper:  sweeper,
		recorder: recorder,
		logger:   logger,
	}
}

// Run executes one sweep. It satisfies cron.Job.
func (j *PresenceSweepJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	removed, err := j.sweeper.SweepExpired(ctx)
	if err != nil {
		j.logger.Error("Failed to sweep expired presence", zap.Error(err))
		return
	}

	if j.recorder != nil {
		j.recorder.RecordPresenceSwept(removed)
	}
	if removed > 0 {
		j.logger.Info("Expired presence swept", zap.Int64("removed", removed))
	}
}
