package commands

import (
	"fmt"

	"shopqueue/internal/pkg/errs"
)

func errInvalidServiceOrderID(serviceOrderID int64) error {
	return errs.NewValueIsInvalidErrorWithCause("serviceOrderID",
		fmt.Errorf("%d is not a valid service order id", serviceOrderID))
}

func errInvalidMechanicID(mechanicID int64) error {
	return errs.NewValueIsInvalidErrorWithCause("mechanicID",
		fmt.Errorf("%d is not a valid mechanic id", mechanicID))
}

func errQueueItemIDRequired() error {
	return errs.NewValueIsRequiredError("queueItemID")
}
