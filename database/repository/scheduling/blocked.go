// File: database/repository/scheduling/blocked.go
package schedulingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"agenda/models"
)

type mongoBlockedSlotRepo struct {
	base *MongoSchedulingRepo
}

// BlockedSlots exposes the blocked-slot repository view.
func (r *MongoSchedulingRepo) BlockedSlots() BlockedSlotRepository {
	return &mongoBlockedSlotRepo{base: r}
}

// Create inserts a new blocked-slot document, assigning an id if missing.
func (r *mongoBlockedSlotRepo) Create(ctx context.Context, slot *models.BlockedSlot) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if _, err := r.base.blockedColl.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("error creating blocked slot: %w", err)
	}
	return nil
}

// GetByID retrieves a blocked slot by its id.
func (r *mongoBlockedSlotRepo) GetByID(ctx context.Context, id string) (*models.BlockedSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var slot models.BlockedSlot
	err := r.base.blockedColl.FindOne(ctx, bson.M{"id": id}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching blocked slot %s: %w", id, err)
	}
	return &slot, nil
}

// Delete removes a blocked slot. For a recurring template this removes every
// occurrence it would have produced, since occurrences are never stored.
func (r *mongoBlockedSlotRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.base.blockedColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting blocked slot %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListForWindow returns every recurring template plus non-recurring slots
// intersecting the half-open window. Templates repeat indefinitely, so they
// are always in scope regardless of the window.
func (r *mongoBlockedSlotRepo) ListForWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]models.BlockedSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"$or": bson.A{
			bson.M{"is_recurring": true},
			bson.M{
				"start_time": bson.M{"$lt": windowEnd},
				"end_time":   bson.M{"$gt": windowStart},
			},
		},
	}
	cursor, err := r.base.blockedColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing blocked slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.BlockedSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding blocked slots: %w", err)
	}
	return slots, nil
}
