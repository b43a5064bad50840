package identityRepo

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

// MongoIdentityRepo implements IdentityRepository using MongoDB.
type MongoIdentityRepo struct {
	coll *mongo.Collection
}

// NewMongoIdentityRepo creates a new IdentityRepository backed by the
// "identities" collection.
func NewMongoIdentityRepo() IdentityRepository {
	repo := &MongoIdentityRepo{coll: database.Collection("identities")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("identities: failed to create indexes: %v", err)
	}
	return repo
}

func (r *MongoIdentityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoIdentityRepo) Create(ctx context.Context, identity *models.Identity) error {
	if _, err := r.coll.InsertOne(ctx, identity); err != nil {
		return fmt.Errorf("failed to insert identity: %w", err)
	}
	return nil
}

func (r *MongoIdentityRepo) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	var identity models.Identity
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&identity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "identity", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch identity %s: %w", id, err)
	}
	return &identity, nil
}

func (r *MongoIdentityRepo) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	var identity models.Identity
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&identity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "identity", ID: email}
		}
		return nil, fmt.Errorf("failed to fetch identity by email %s: %w", email, err)
	}
	return &identity, nil
}

func (r *MongoIdentityRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return fmt.Errorf("failed to update identity %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "identity", ID: id}
	}
	return nil
}

func (r *MongoIdentityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete identity %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "identity", ID: id}
	}
	return nil
}
