// Package jobs provides scheduled background tasks for the work queue
// service, implemented with github.com/robfig/cron/v3. Jobs are managed
// through JobManager, which starts and stops them as a group.
package jobs

import (
	"fmt"
	"log/slog"

	"shopqueue/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	queueDepthJob *QueueDepthJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(repo ports.QueueItemRepository, logger *slog.Logger) *JobManager {
	return &JobManager{
		queueDepthJob: NewQueueDepthJob(repo, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.queueDepthJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue depth job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.queueDepthJob.Stop()
}
