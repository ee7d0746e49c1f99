// Package queueitem provides the domain entities and business logic for the
// workshop execution queue. It implements the QueueItem aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - QueueItem: the aggregate root tracking a service order through the shop
//   - Status: a state machine enforcing valid lifecycle transitions
//   - Priority: the urgency level driving retrieval order
//
// Key business rules:
//   - Each queue item references exactly one service order; the reference is
//     unique across the queue (enforced at the storage layer)
//   - Status follows the workflow Waiting -> InDiagnosis -> Waiting ->
//     InRepair -> Done, with Waiting doubling as the approval-wait state
//   - Transition timestamps are stamped once and never overwritten
//   - Priority may change at any time without affecting the lifecycle
package queueitem
