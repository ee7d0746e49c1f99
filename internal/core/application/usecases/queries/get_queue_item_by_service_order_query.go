package queries

import (
	"errors"
	"fmt"

	"shopqueue/internal/pkg/errs"
	"shopqueue/internal/pkg/guard"
)

var ErrGetQueueItemByServiceOrderQueryIsNotConstructed = errors.New(
	"GetQueueItemByServiceOrderQuery must be created via NewGetQueueItemByServiceOrderQuery constructor",
)

// GetQueueItemByServiceOrderQuery retrieves the queue item holding a given
// service order. At most one item exists per service order.
type GetQueueItemByServiceOrderQuery struct {
	serviceOrderID int64

	guard guard.ConstructorGuard
}

// NewGetQueueItemByServiceOrderQuery creates a query keyed by service order.
func NewGetQueueItemByServiceOrderQuery(serviceOrderID int64) (GetQueueItemByServiceOrderQuery, error) {
	if serviceOrderID <= 0 {
		return GetQueueItemByServiceOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("serviceOrderID",
			fmt.Errorf("%d is not a valid service order id", serviceOrderID))
	}

	return GetQueueItemByServiceOrderQuery{
		serviceOrderID: serviceOrderID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQueueItemByServiceOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueItemByServiceOrderQueryIsNotConstructed)
}

// ServiceOrderID returns the service order to look up.
func (q GetQueueItemByServiceOrderQuery) ServiceOrderID() int64 {
	return q.serviceOrderID
}
