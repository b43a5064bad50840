package customer

import (
	"context"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
)

// CustomerService manages customer profiles.
type CustomerService interface {
	Register(ctx context.Context, in models.CustomerRegistrationInput) (*models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetAllCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomersByCity(ctx context.Context, city string) ([]models.Customer, error)
	GetCustomersByRegion(ctx context.Context, region string) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	UpdateAddress(ctx context.Context, id string, in models.AddressInput) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}
