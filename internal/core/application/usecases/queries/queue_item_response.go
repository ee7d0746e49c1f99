// Package queries contains read operations for retrieving queue state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"time"

	"shopqueue/internal/core/domain/model/queueitem"
)

// QueueItemResponse is the read model for a single queue item. Status and
// priority are rendered as their wire names, optional fields are pointers so
// unset values serialize as null.
type QueueItemResponse struct {
	ID                  string     `json:"id"`
	ServiceOrderID      int64      `json:"service_order_id"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	AssignedMechanicID  *int64     `json:"assigned_mechanic_id"`
	DiagnosisNotes      *string    `json:"diagnosis_notes"`
	RepairNotes         *string    `json:"repair_notes"`
	DiagnosisStartedAt  *time.Time `json:"diagnosis_started_at"`
	DiagnosisFinishedAt *time.Time `json:"diagnosis_finished_at"`
	RepairStartedAt     *time.Time `json:"repair_started_at"`
	RepairFinishedAt    *time.Time `json:"repair_finished_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// NewQueueItemResponse maps a queue item aggregate to its read model.
func NewQueueItemResponse(item *queueitem.QueueItem) QueueItemResponse {
	return QueueItemResponse{
		ID:                  item.ID(),
		ServiceOrderID:      item.ServiceOrderID(),
		Status:              item.Status().String(),
		Priority:            item.Priority().String(),
		AssignedMechanicID:  item.AssignedMechanicID(),
		DiagnosisNotes:      item.DiagnosisNotes(),
		RepairNotes:         item.RepairNotes(),
		DiagnosisStartedAt:  item.DiagnosisStartedAt(),
		DiagnosisFinishedAt: item.DiagnosisFinishedAt(),
		RepairStartedAt:     item.RepairStartedAt(),
		RepairFinishedAt:    item.RepairFinishedAt(),
		CreatedAt:           item.CreatedAt(),
		UpdatedAt:           item.UpdatedAt(),
	}
}

func newQueueItemResponses(items []*queueitem.QueueItem) []QueueItemResponse {
	responses := make([]QueueItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewQueueItemResponse(item))
	}
	return responses
}
