package cmd

import (
	"context"
	"log/slog"

	shophttp "shopqueue/internal/adapters/in/http"
	"shopqueue/internal/adapters/out/mongo/queuerepo"
	"shopqueue/internal/adapters/out/ordersvc"
	"shopqueue/internal/core/application/usecases/commands"
	"shopqueue/internal/core/application/usecases/queries"
	"shopqueue/internal/core/ports"
	"shopqueue/internal/jobs"

	"go.mongodb.org/mongo-driver/mongo"
)

// CompositionRoot wires adapters to use case handlers.
type CompositionRoot struct {
	repo     *queuerepo.MongoQueueItemRepository
	notifier ports.StatusNotifier
	logger   *slog.Logger
}

func NewCompositionRoot(config Config, db *mongo.Database, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		repo:     queuerepo.NewMongoQueueItemRepository(db),
		notifier: ordersvc.NewClient(config.OrderServiceURL),
		logger:   logger,
	}
}

// EnsureIndexes bootstraps the collection's index set on startup.
func (c *CompositionRoot) EnsureIndexes(ctx context.Context) error {
	return c.repo.EnsureIndexes(ctx)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.repo, c.logger)
}

func (c *CompositionRoot) CreateServer() *shophttp.Server {
	return shophttp.NewServer(
		commands.NewEnqueueCommandHandler(c.repo, c.logger),
		commands.NewStartDiagnosisCommandHandler(c.repo, c.notifier, c.logger),
		commands.NewCompleteDiagnosisCommandHandler(c.repo, c.notifier, c.logger),
		commands.NewStartRepairCommandHandler(c.repo, c.notifier, c.logger),
		commands.NewCompleteRepairCommandHandler(c.repo, c.notifier, c.logger),
		commands.NewChangePriorityCommandHandler(c.repo, c.logger),
		commands.NewRemoveFromQueueCommandHandler(c.repo, c.logger),
		queries.NewGetQueueItemQueryHandler(c.repo),
		queries.NewGetQueueItemByServiceOrderQueryHandler(c.repo),
		queries.NewListQueueItemsQueryHandler(c.repo),
	)
}
