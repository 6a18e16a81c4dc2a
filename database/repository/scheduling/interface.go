// File: database/repository/scheduling/interface.go
package schedulingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"agenda/config"
	"agenda/database"
	"agenda/models"
)

// AppointmentRepository defines the data access methods for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
	// ListWindow returns appointments intersecting the half-open window,
	// optionally restricted to one contact (empty contactID means all).
	ListWindow(ctx context.Context, contactID string, windowStart, windowEnd time.Time) ([]models.Appointment, error)
	// ListBlockingWindow returns only scheduled/confirmed appointments
	// intersecting the window, for conflict detection.
	ListBlockingWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]models.Appointment, error)
}

// BlockedSlotRepository defines the data access methods for blocked slots.
type BlockedSlotRepository interface {
	Create(ctx context.Context, slot *models.BlockedSlot) error
	GetByID(ctx context.Context, id string) (*models.BlockedSlot, error)
	Delete(ctx context.Context, id string) error
	// ListForWindow returns every recurring template plus the non-recurring
	// slots intersecting the half-open window.
	ListForWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]models.BlockedSlot, error)
}

// ServiceRepository defines the data access methods for the service
// catalogue.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	List(ctx context.Context, activeOnly bool) ([]models.Service, error)
}

// TxRunner executes fn inside a single multi-document transaction, so a
// conflict check and the write it guards commit or abort together.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MongoSchedulingRepo implements all repository interfaces using MongoDB.
type MongoSchedulingRepo struct {
	appointmentColl *mongo.Collection
	blockedColl     *mongo.Collection
	serviceColl     *mongo.Collection
}

// NewMongoSchedulingRepo constructs a repository bound to the configured
// database collections.
func NewMongoSchedulingRepo() *MongoSchedulingRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoSchedulingRepo{
		appointmentColl: db.Collection("appointments"),
		blockedColl:     db.Collection("blocked_slots"),
		serviceColl:     db.Collection("services"),
	}
}
