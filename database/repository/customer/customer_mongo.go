package customerRepo

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

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo creates a new CustomerRepository backed by the
// "customers" collection.
func NewMongoCustomerRepo() CustomerRepository {
	repo := &MongoCustomerRepo{coll: database.Collection("customers")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("customers: failed to create indexes: %v", err)
	}
	return repo
}

func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (r *MongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "customer", ID: id}
		}
		return nil, fmt.Errorf("failed to fetch customer %s: %w", id, err)
	}
	return &customer, nil
}

func (r *MongoCustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoCustomerRepo) GetByCity(ctx context.Context, city string) ([]models.Customer, error) {
	return r.find(ctx, bson.M{"city": city})
}

func (r *MongoCustomerRepo) GetByRegion(ctx context.Context, region string) ([]models.Customer, error) {
	return r.find(ctx, bson.M{"region": region})
}

func (r *MongoCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	customer.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": customer.ID}, customer)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "customer", ID: customer.ID}
	}
	return nil
}

func (r *MongoCustomerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "customer", ID: id}
	}
	return nil
}

func (r *MongoCustomerRepo) find(ctx context.Context, filter bson.M) ([]models.Customer, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}
