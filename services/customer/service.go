package customer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	customerRepo "github.com/JohnRey-Adao/AppDev2-CleaningService/database/repository/customer"
	identityRepo "github.com/JohnRey-Adao/AppDev2-CleaningService/database/repository/identity"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// DefaultCustomerService implements CustomerService.
type DefaultCustomerService struct {
	Repo       customerRepo.CustomerRepository
	Identities identityRepo.IdentityRepository
}

// Register creates the identity record and the customer profile sharing
// its id.
func (svc *DefaultCustomerService) Register(ctx context.Context, in models.CustomerRegistrationInput) (*models.Customer, error) {
	now := time.Now()
	identity := &models.Identity{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Active:    true,
		CreatedAt: now,
	}
	if err := svc.Identities.Create(ctx, identity); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:         identity.ID,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Region:     in.Region,
		Country:    in.Country,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := svc.Repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("customer registered", zap.String("customerID", customer.ID))
	return customer, nil
}

func (svc *DefaultCustomerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return svc.Repo.GetByID(ctx, id)
}

func (svc *DefaultCustomerService) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	identity, err := svc.Identities.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return svc.Repo.GetByID(ctx, identity.ID)
}

func (svc *DefaultCustomerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return svc.Repo.GetAll(ctx)
}

func (svc *DefaultCustomerService) GetCustomersByCity(ctx context.Context, city string) ([]models.Customer, error) {
	return svc.Repo.GetByCity(ctx, city)
}

func (svc *DefaultCustomerService) GetCustomersByRegion(ctx context.Context, region string) ([]models.Customer, error) {
	return svc.Repo.GetByRegion(ctx, region)
}

func (svc *DefaultCustomerService) UpdateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := svc.Repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (svc *DefaultCustomerService) UpdateAddress(ctx context.Context, id string, in models.AddressInput) (*models.Customer, error) {
	customer, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Address = in.Address
	customer.City = in.City
	customer.Region = in.Region
	customer.PostalCode = in.PostalCode
	customer.Country = in.Country
	if err := svc.Repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (svc *DefaultCustomerService) DeleteCustomer(ctx context.Context, id string) error {
	if err := svc.Repo.Delete(ctx, id); err != nil {
		return err
	}
	return svc.Identities.Delete(ctx, id)
}
