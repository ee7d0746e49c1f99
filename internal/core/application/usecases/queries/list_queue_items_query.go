package queries

import (
	"errors"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/guard"
)

var ErrListQueueItemsQueryIsNotConstructed = errors.New(
	"ListQueueItemsQuery must be created via NewListQueueItemsQuery constructor",
)

// ListQueueItemsQuery retrieves queue items in execution order, optionally
// narrowed to a single status.
type ListQueueItemsQuery struct {
	status *queueitem.Status

	guard guard.ConstructorGuard
}

// NewListQueueItemsQuery creates a query for the whole queue.
func NewListQueueItemsQuery() ListQueueItemsQuery {
	return ListQueueItemsQuery{guard: guard.NewConstructorGuard()}
}

// NewListQueueItemsQueryWithStatus creates a query narrowed to one status.
func NewListQueueItemsQueryWithStatus(status queueitem.Status) (ListQueueItemsQuery, error) {
	if err := status.Validate(); err != nil {
		return ListQueueItemsQuery{}, err
	}

	return ListQueueItemsQuery{
		status: &status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListQueueItemsQuery) Validate() error {
	return q.guard.Validate(ErrListQueueItemsQueryIsNotConstructed)
}

// Status returns the status filter, nil when listing everything.
func (q ListQueueItemsQuery) Status() *queueitem.Status {
	return q.status
}
