package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/database"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository backed by the
// "bookings" collection.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("bookings: failed to create indexes: %v", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// compound (cleaner_id, booking_date) index backs the day-conflict query.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "cleaner_id", Value: 1}, {Key: "booking_date", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "booking", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoBookingRepo) GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"customer_id": customerID})
}

func (r *MongoBookingRepo) GetByCleaner(ctx context.Context, cleanerID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"cleaner_id": cleanerID})
}

func (r *MongoBookingRepo) GetByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *MongoBookingRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"booking_date": bson.M{"$gte": start, "$lte": end},
	})
}

func (r *MongoBookingRepo) GetForCleanerOnDay(ctx context.Context, cleanerID string, start, end time.Time) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"cleaner_id":   cleanerID,
		"booking_date": bson.M{"$gte": start, "$lte": end},
		"status":       bson.M{"$ne": models.BookingCancelled},
	})
}

func (r *MongoBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	booking.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": booking.ID}, booking)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", booking.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "booking", ID: booking.ID}
	}
	return nil
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "booking", ID: id}
		}
		return nil, fmt.Errorf("failed to update status of booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "booking", ID: id}
	}
	return nil
}

func (r *MongoBookingRepo) DeleteByCleaner(ctx context.Context, cleanerID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"cleaner_id": cleanerID}); err != nil {
		return fmt.Errorf("failed to delete bookings for cleaner %s: %w", cleanerID, err)
	}
	return nil
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "booking_date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
