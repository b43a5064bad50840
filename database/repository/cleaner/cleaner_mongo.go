package cleanerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/database"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// MongoCleanerRepo implements CleanerRepository using MongoDB.
type MongoCleanerRepo struct {
	coll *mongo.Collection
}

// NewMongoCleanerRepo creates a new CleanerRepository backed by the
// "cleaners" collection.
func NewMongoCleanerRepo() CleanerRepository {
	repo := &MongoCleanerRepo{coll: database.Collection("cleaners")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("cleaners: failed to create indexes: %v", err)
	}
	return repo
}

func (r *MongoCleanerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCleanerRepo) Create(ctx context.Context, cleaner *models.Cleaner) error {
	if _, err := r.coll.InsertOne(ctx, cleaner); err != nil {
		return fmt.Errorf("failed to insert cleaner: %w", err)
	}
	return nil
}

func (r *MongoCleanerRepo) GetByID(ctx context.Context, id string) (*models.Cleaner, error) {
	var cleaner models.Cleaner
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cleaner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "cleaner", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch cleaner %s: %w", id, err)
	}
	return &cleaner, nil
}

func (r *MongoCleanerRepo) GetAll(ctx context.Context) ([]models.Cleaner, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoCleanerRepo) GetByStatus(ctx context.Context, status models.CleanerStatus) ([]models.Cleaner, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *MongoCleanerRepo) GetByCity(ctx context.Context, city string) ([]models.Cleaner, error) {
	return r.find(ctx, bson.M{"city": city})
}

func (r *MongoCleanerRepo) GetByRegion(ctx context.Context, region string) ([]models.Cleaner, error) {
	return r.find(ctx, bson.M{"region": region})
}

func (r *MongoCleanerRepo) GetAvailableByCity(ctx context.Context, city string) ([]models.Cleaner, error) {
	return r.find(ctx, bson.M{"city": city, "status": models.CleanerAvailable})
}

func (r *MongoCleanerRepo) GetByMaxRate(ctx context.Context, maxRate decimal.Decimal) ([]models.Cleaner, error) {
	return r.find(ctx, bson.M{
		"hourly_rate": bson.M{"$lte": maxRate},
		"status":      models.CleanerAvailable,
	})
}

func (r *MongoCleanerRepo) Update(ctx context.Context, cleaner *models.Cleaner) error {
	cleaner.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": cleaner.ID}, cleaner)
	if err != nil {
		return fmt.Errorf("failed to update cleaner %s: %w", cleaner.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "cleaner", ID: cleaner.ID}
	}
	return nil
}

func (r *MongoCleanerRepo) UpdateStatus(ctx context.Context, id string, status models.CleanerStatus) (*models.Cleaner, error) {
	return r.findOneAndSet(ctx, id, bson.M{"status": status})
}

func (r *MongoCleanerRepo) UpdateRate(ctx context.Context, id string, hourlyRate decimal.Decimal) (*models.Cleaner, error) {
	return r.findOneAndSet(ctx, id, bson.M{"hourly_rate": hourlyRate})
}

func (r *MongoCleanerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete cleaner %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "cleaner", ID: id}
	}
	return nil
}

func (r *MongoCleanerRepo) findOneAndSet(ctx context.Context, id string, fields bson.M) (*models.Cleaner, error) {
	fields["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cleaner models.Cleaner
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&cleaner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "cleaner", ID: id}
		}
		return nil, fmt.Errorf("failed to update cleaner %s: %w", id, err)
	}
	return &cleaner, nil
}

func (r *MongoCleanerRepo) find(ctx context.Context, filter bson.M) ([]models.Cleaner, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query cleaners: %w", err)
	}
	defer cursor.Close(ctx)

	var cleaners []models.Cleaner
	if err := cursor.All(ctx, &cleaners); err != nil {
		return nil, fmt.Errorf("failed to decode cleaners: %w", err)
	}
	return cleaners, nil
}
