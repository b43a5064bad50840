package customerRepo

import (
	"context"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
)

// CustomerRepository persists customer profiles.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByCity(ctx context.Context, city string) ([]models.Customer, error)
	GetByRegion(ctx context.Context, region string) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}
