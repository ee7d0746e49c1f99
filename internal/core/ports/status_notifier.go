package ports

import "context"

// ExternalStatus is a status value understood by the external order service.
// The queue's internal states do not map one-to-one: a diagnosed item waiting
// for approval is WAITING here but AWAITING_APPROVAL there.
type ExternalStatus string

const (
	ExternalStatusInDiagnosis      ExternalStatus = "IN_DIAGNOSIS"
	ExternalStatusAwaitingApproval ExternalStatus = "AWAITING_APPROVAL"
	ExternalStatusInExecution      ExternalStatus = "IN_EXECUTION"
	ExternalStatusDone             ExternalStatus = "DONE"
)

// StatusNotifier pushes a queue item's status change to the external order
// service. Calls are best-effort: the caller logs and swallows any error, and
// a failed notification never rolls back the persisted transition.
type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, serviceOrderID int64, status ExternalStatus) error
}
