package jobs

import (
	"context"
	"log/slog"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// QueueDepthJob periodically reports how many items sit in each queue state.
// Runs every minute and emits one structured log record per run, giving
// operators a depth trend without a metrics backend.
type QueueDepthJob struct {
	repo   ports.QueueItemRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewQueueDepthJob creates a job that logs queue depth per status.
func NewQueueDepthJob(repo ports.QueueItemRepository, logger *slog.Logger) *QueueDepthJob {
	return &QueueDepthJob{
		repo:   repo,
		cron:   cron.New(),
		logger: logger.With("component", "queue_depth_job"),
	}
}

// Start begins the queue depth job to run every minute.
func (j *QueueDepthJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		counts, err := j.repo.CountByStatus(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue depth job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Queue depth",
			"waiting", counts[queueitem.StatusWaiting],
			"in_diagnosis", counts[queueitem.StatusInDiagnosis],
			"in_repair", counts[queueitem.StatusInRepair],
			"done", counts[queueitem.StatusDone],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue depth job started (running every minute)")
	return nil
}

// Stop stops the queue depth job.
func (j *QueueDepthJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue depth job stopped")
}
