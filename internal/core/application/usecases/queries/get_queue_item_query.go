package queries

import (
	"errors"

	"shopqueue/internal/pkg/errs"
	"shopqueue/internal/pkg/guard"
)

var ErrGetQueueItemQueryIsNotConstructed = errors.New(
	"GetQueueItemQuery must be created via NewGetQueueItemQuery constructor",
)

// GetQueueItemQuery retrieves a single queue item by its id.
type GetQueueItemQuery struct {
	queueItemID string

	guard guard.ConstructorGuard
}

// NewGetQueueItemQuery creates a query for one queue item.
func NewGetQueueItemQuery(queueItemID string) (GetQueueItemQuery, error) {
	if queueItemID == "" {
		return GetQueueItemQuery{}, errs.NewValueIsRequiredError("queueItemID")
	}

	return GetQueueItemQuery{
		queueItemID: queueItemID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQueueItemQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueItemQueryIsNotConstructed)
}

// QueueItemID returns the id to look up.
func (q GetQueueItemQuery) QueueItemID() string {
	return q.queueItemID
}
