package cleaner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	bookingRepo "github.com/JohnRey-Adao/AppDev2-CleaningService/database/repository/booking"
	cleanerRepo "github.com/JohnRey-Adao/AppDev2-CleaningService/database/repository/cleaner"
	identityRepo "github.com/JohnRey-Adao/AppDev2-CleaningService/database/repository/identity"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

const defaultCountry = "Philippines"

// DefaultCleanerService implements CleanerService.
type DefaultCleanerService struct {
	Repo       cleanerRepo.CleanerRepository
	Identities identityRepo.IdentityRepository
	Bookings   bookingRepo.BookingRepository
}

// Register creates the identity record and the cleaner profile sharing its
// id. New cleaners start AVAILABLE and login-enabled.
func (svc *DefaultCleanerService) Register(ctx context.Context, in models.CleanerRegistrationInput) (*models.Cleaner, error) {
	rate, err := decimal.NewFromString(in.HourlyRate)
	if err != nil || !rate.IsPositive() {
		return nil, utils.ValidationError{Field: "hourlyRate", Message: "must be a positive decimal amount"}
	}

	country := in.Country
	if country == "" {
		country = defaultCountry
	}

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

	cleaner := &models.Cleaner{
		ID:             identity.ID,
		Address:        in.Address,
		City:           in.City,
		PostalCode:     in.PostalCode,
		Region:         in.Region,
		Country:        country,
		HourlyRate:     rate,
		Status:         models.CleanerAvailable,
		Bio:            in.Bio,
		ProfilePicture: in.ProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := svc.Repo.Create(ctx, cleaner); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("cleaner registered",
		zap.String("cleanerID", cleaner.ID),
		zap.String("rate", rate.String()),
	)
	return cleaner, nil
}

func (svc *DefaultCleanerService) GetCleaner(ctx context.Context, id string) (*models.Cleaner, error) {
	return svc.Repo.GetByID(ctx, id)
}

func (svc *DefaultCleanerService) GetCleanerByEmail(ctx context.Context, email string) (*models.Cleaner, error) {
	identity, err := svc.Identities.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return svc.Repo.GetByID(ctx, identity.ID)
}

func (svc *DefaultCleanerService) GetAllCleaners(ctx context.Context) ([]models.Cleaner, error) {
	return svc.Repo.GetAll(ctx)
}

func (svc *DefaultCleanerService) GetCleanersByStatus(ctx context.Context, status models.CleanerStatus) ([]models.Cleaner, error) {
	if !status.Valid() {
		return nil, utils.ValidationError{Field: "status", Message: "unknown cleaner status"}
	}
	return svc.Repo.GetByStatus(ctx, status)
}

func (svc *DefaultCleanerService) GetAvailableCleaners(ctx context.Context) ([]models.Cleaner, error) {
	return svc.Repo.GetByStatus(ctx, models.CleanerAvailable)
}

func (svc *DefaultCleanerService) GetCleanersByCity(ctx context.Context, city string) ([]models.Cleaner, error) {
	return svc.Repo.GetByCity(ctx, city)
}

func (svc *DefaultCleanerService) GetCleanersByRegion(ctx context.Context, region string) ([]models.Cleaner, error) {
	return svc.Repo.GetByRegion(ctx, region)
}

func (svc *DefaultCleanerService) GetAvailableCleanersByCity(ctx context.Context, city string) ([]models.Cleaner, error) {
	return svc.Repo.GetAvailableByCity(ctx, city)
}

func (svc *DefaultCleanerService) GetCleanersByMaxRate(ctx context.Context, maxRate decimal.Decimal) ([]models.Cleaner, error) {
	if !maxRate.IsPositive() {
		return nil, utils.ValidationError{Field: "maxRate", Message: "must be a positive decimal amount"}
	}
	return svc.Repo.GetByMaxRate(ctx, maxRate)
}

func (svc *DefaultCleanerService) UpdateCleaner(ctx context.Context, cleaner *models.Cleaner) (*models.Cleaner, error) {
	if !cleaner.HourlyRate.IsPositive() {
		return nil, utils.ValidationError{Field: "hourlyRate", Message: "must be a positive decimal amount"}
	}
	if err := svc.Repo.Update(ctx, cleaner); err != nil {
		return nil, err
	}
	return cleaner, nil
}

func (svc *DefaultCleanerService) UpdateRate(ctx context.Context, id string, hourlyRate decimal.Decimal) (*models.Cleaner, error) {
	if !hourlyRate.IsPositive() {
		return nil, utils.ValidationError{Field: "hourlyRate", Message: "must be a positive decimal amount"}
	}
	// Existing bookings keep the total computed at creation time.
	return svc.Repo.UpdateRate(ctx, id, hourlyRate)
}

// DeleteCleaner removes the cleaner's bookings first, then the profile and
// its identity record.
func (svc *DefaultCleanerService) DeleteCleaner(ctx context.Context, id string) error {
	if _, err := svc.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := svc.Bookings.DeleteByCleaner(ctx, id); err != nil {
		return err
	}
	if err := svc.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := svc.Identities.Delete(ctx, id); err != nil {
		return err
	}
	utils.GetLogger().Info("cleaner deleted", zap.String("cleanerID", id))
	return nil
}
