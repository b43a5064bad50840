package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTxnRunner runs a closure inside a MongoDB multi-document
// transaction. Repository calls made with the closure's context join the
// session automatically. Status transitions use it to couple the booking
// write with the cleaner status write: a crash between the two must not
// leave half-applied state.
type MongoTxnRunner struct {
	Client *mongo.Client
}

func (r *MongoTxnRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := r.Client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
