// Package queuerepo implements the queue item persistence gateway on
// MongoDB. It maps the domain aggregate to its document representation and
// translates storage-level failures (duplicate key, missing match) into the
// domain error taxonomy at this boundary.
package queuerepo

import (
	"time"

	"shopqueue/internal/core/domain/model/queueitem"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// queueItemDoc is the persisted document shape. Enum values are stored as
// their literal string names and timestamps as native BSON dates; both are a
// compatibility contract with the existing collection.
type queueItemDoc struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	ServiceOrderID      int64              `bson:"service_order_id"`
	Status              string             `bson:"status"`
	Priority            string             `bson:"priority"`
	AssignedMechanicID  *int64             `bson:"assigned_mechanic_id"`
	DiagnosisNotes      *string            `bson:"diagnosis_notes"`
	RepairNotes         *string            `bson:"repair_notes"`
	DiagnosisStartedAt  *time.Time         `bson:"diagnosis_started_at"`
	DiagnosisFinishedAt *time.Time         `bson:"diagnosis_finished_at"`
	RepairStartedAt     *time.Time         `bson:"repair_started_at"`
	RepairFinishedAt    *time.Time         `bson:"repair_finished_at"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

// fromDomain converts an aggregate to its document representation. The id
// and audit timestamps are owned by the repository and set by the caller.
func fromDomain(item *queueitem.QueueItem) queueItemDoc {
	return queueItemDoc{
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
	}
}

// toDomain reconstructs the aggregate from a persisted document.
func toDomain(doc queueItemDoc) (*queueitem.QueueItem, error) {
	status, err := queueitem.ParseStatus(doc.Status)
	if err != nil {
		return nil, err
	}

	priority, err := queueitem.ParsePriority(doc.Priority)
	if err != nil {
		return nil, err
	}

	return queueitem.RestoreQueueItem(
		doc.ID.Hex(),
		doc.ServiceOrderID,
		status,
		priority,
		doc.AssignedMechanicID,
		doc.DiagnosisNotes,
		doc.RepairNotes,
		doc.DiagnosisStartedAt,
		doc.DiagnosisFinishedAt,
		doc.RepairStartedAt,
		doc.RepairFinishedAt,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
}
