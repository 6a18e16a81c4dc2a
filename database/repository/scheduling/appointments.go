// File: database/repository/scheduling/appointments.go
package schedulingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agenda/models"
)

const queryTimeout = 5 * time.Second

// Create inserts a new appointment document, assigning an id if missing.
func (r *MongoSchedulingRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if _, err := r.appointmentColl.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its id.
func (r *MongoSchedulingRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var appt models.Appointment
	err := r.appointmentColl.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &appt, nil
}

// Update replaces an existing appointment document.
func (r *MongoSchedulingRepo) Update(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.appointmentColl.UpdateOne(ctx, bson.M{"id": appt.ID}, bson.M{"$set": appt})
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", appt.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an appointment document.
func (r *MongoSchedulingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.appointmentColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWindow returns appointments intersecting the half-open window, sorted
// by start time. An empty contactID returns every contact's appointments.
func (r *MongoSchedulingRepo) ListWindow(ctx context.Context, contactID string, windowStart, windowEnd time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"start_time": bson.M{"$lt": windowEnd},
		"end_time":   bson.M{"$gt": windowStart},
	}
	if contactID != "" {
		filter["contact_id"] = contactID
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.appointmentColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// ListBlockingWindow returns only scheduled/confirmed appointments
// intersecting the window.
func (r *MongoSchedulingRepo) ListBlockingWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"start_time": bson.M{"$lt": windowEnd},
		"end_time":   bson.M{"$gt": windowStart},
		"status":     bson.M{"$in": models.BlockingStatuses},
	}
	cursor, err := r.appointmentColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing blocking appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding blocking appointments: %w", err)
	}
	return appts, nil
}
