package queries

import (
	"context"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/core/ports"
)

// ListQueueItemsQueryHandler lists queue items in execution order: priority
// descending, then creation time ascending within each priority.
type ListQueueItemsQueryHandler struct {
	repo ports.QueueItemRepository
}

// NewListQueueItemsQueryHandler creates a handler for queue listings.
func NewListQueueItemsQueryHandler(repo ports.QueueItemRepository) ListQueueItemsQueryHandler {
	return ListQueueItemsQueryHandler{repo: repo}
}

// Handle lists the queue, applying the status filter when present. An empty
// queue yields an empty slice, not an error.
func (h ListQueueItemsQueryHandler) Handle(
	ctx context.Context,
	query ListQueueItemsQuery,
) ([]QueueItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		items []*queueitem.QueueItem
		err   error
	)
	if status := query.Status(); status != nil {
		items, err = h.repo.ListByStatus(ctx, *status)
	} else {
		items, err = h.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return newQueueItemResponses(items), nil
}
