package queuerepo

import (
	"context"
	"errors"
	"time"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "queue_items"

// MongoQueueItemRepository implements ports.QueueItemRepository on a MongoDB
// collection.
type MongoQueueItemRepository struct {
	coll *mongo.Collection
}

// NewMongoQueueItemRepository creates a repository over the "queue_items"
// collection of the given database.
func NewMongoQueueItemRepository(db *mongo.Database) *MongoQueueItemRepository {
	return &MongoQueueItemRepository{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the indexes the contract relies on: the unique
// service order index (the authoritative double-enqueue guard), the status
// index and the queue-order compound index.
func (r *MongoQueueItemRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "service_order_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "priority", Value: -1}, {Key: "created_at", Value: 1}},
		},
	})
	return err
}

// Add inserts a new queue item, assigning its id and audit timestamps.
func (r *MongoQueueItemRepository) Add(ctx context.Context, item *queueitem.QueueItem) (*queueitem.QueueItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := fromDomain(item)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause(
				"serviceOrderID", item.ServiceOrderID(), err)
		}
		return nil, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return toDomain(doc)
}

// Update persists the full document state of an existing item and refreshes
// its updatedAt. The last write wins; there is no concurrency token.
func (r *MongoQueueItemRepository) Update(ctx context.Context, item *queueitem.QueueItem) (*queueitem.QueueItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if item.ID() == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	oid, err := primitive.ObjectIDFromHex(item.ID())
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("queueItem", item.ID(), err)
	}

	doc := fromDomain(item)
	doc.CreatedAt = item.CreatedAt()
	doc.UpdatedAt = time.Now().UTC()

	result, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": doc})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, errs.NewObjectNotFoundError("queueItem", item.ID())
	}

	doc.ID = oid
	return toDomain(doc)
}

// Get retrieves a queue item by id. A malformed id means the item cannot
// exist, so it is reported as not found.
func (r *MongoQueueItemRepository) Get(ctx context.Context, id string) (*queueitem.QueueItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("queueItem", id, err)
	}

	var doc queueItemDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("queueItem", id)
		}
		return nil, err
	}

	return toDomain(doc)
}

// GetByServiceOrder retrieves the queue item for a service order. The unique
// index guarantees at most one match.
func (r *MongoQueueItemRepository) GetByServiceOrder(ctx context.Context, serviceOrderID int64) (*queueitem.QueueItem, error) {
	var doc queueItemDoc
	if err := r.coll.FindOne(ctx, bson.M{"service_order_id": serviceOrderID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewObjectNotFoundError("serviceOrderID", serviceOrderID)
		}
		return nil, err
	}

	return toDomain(doc)
}

// ListByStatus returns all items in the given status in queue order.
func (r *MongoQueueItemRepository) ListByStatus(ctx context.Context, status queueitem.Status) ([]*queueitem.QueueItem, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.list(ctx, bson.M{"status": status.String()})
}

// ListAll returns every queue item in queue order.
func (r *MongoQueueItemRepository) ListAll(ctx context.Context) ([]*queueitem.QueueItem, error) {
	return r.list(ctx, bson.M{})
}

// list runs the ordered-listing aggregation. Priorities persist as literal
// strings whose lexical order differs from their rank, so the pipeline
// derives a numeric rank before sorting rank descending, oldest first.
func (r *MongoQueueItemRepository) list(ctx context.Context, match bson.M) ([]*queueitem.QueueItem, error) {
	ranks := bson.A{}
	for _, name := range queueitem.PriorityRankAscending() {
		ranks = append(ranks, name)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "priority_rank", Value: bson.D{
				{Key: "$indexOfArray", Value: bson.A{ranks, "$priority"}},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "priority_rank", Value: -1},
			{Key: "created_at", Value: 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []queueItemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]*queueitem.QueueItem, 0, len(docs))
	for _, doc := range docs {
		item, err := toDomain(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Remove deletes a queue item by id. Absent and malformed ids are no-ops.
func (r *MongoQueueItemRepository) Remove(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// CountByStatus groups the collection by status and returns per-status item
// counts.
func (r *MongoQueueItemRepository) CountByStatus(ctx context.Context) (map[queueitem.Status]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[queueitem.Status]int64, len(rows))
	for _, row := range rows {
		status, err := queueitem.ParseStatus(row.Status)
		if err != nil {
			return nil, err
		}
		counts[status] = row.Count
	}

	return counts, nil
}
