// File: database/repository/scheduling/transaction.go
package schedulingRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// WithTransaction runs fn inside a single multi-document transaction.
// Conflict detection reads the current blocking set and the guarded write
// commits in the same transaction, closing the check-then-act race between
// concurrent writers.
func (r *MongoSchedulingRepo) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	client := r.appointmentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}
