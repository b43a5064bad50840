package cleanerRepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
)

// CleanerRepository persists cleaner profiles.
type CleanerRepository interface {
	Create(ctx context.Context, cleaner *models.Cleaner) error
	GetByID(ctx context.Context, id string) (*models.Cleaner, error)
	GetAll(ctx context.Context) ([]models.Cleaner, error)
	GetByStatus(ctx context.Context, status models.CleanerStatus) ([]models.Cleaner, error)
	GetByCity(ctx context.Context, city string) ([]models.Cleaner, error)
	GetByRegion(ctx context.Context, region string) ([]models.Cleaner, error)
	GetAvailableByCity(ctx context.Context, city string) ([]models.Cleaner, error)
	GetByMaxRate(ctx context.Context, maxRate decimal.Decimal) ([]models.Cleaner, error)
	Update(ctx context.Context, cleaner *models.Cleaner) error
	UpdateStatus(ctx context.Context, id string, status models.CleanerStatus) (*models.Cleaner, error)
	UpdateRate(ctx context.Context, id string, hourlyRate decimal.Decimal) (*models.Cleaner, error)
	Delete(ctx context.Context, id string) error
}
