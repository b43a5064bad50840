package cleaner

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
)

// CleanerService manages cleaner profiles and keeps each cleaner's
// operational status in sync with the bookings it executes.
type CleanerService interface {
	Register(ctx context.Context, in models.CleanerRegistrationInput) (*models.Cleaner, error)
	GetCleaner(ctx context.Context, id string) (*models.Cleaner, error)
	GetCleanerByEmail(ctx context.Context, email string) (*models.Cleaner, error)
	GetAllCleaners(ctx context.Context) ([]models.Cleaner, error)
	GetCleanersByStatus(ctx context.Context, status models.CleanerStatus) ([]models.Cleaner, error)
	GetAvailableCleaners(ctx context.Context) ([]models.Cleaner, error)
	GetCleanersByCity(ctx context.Context, city string) ([]models.Cleaner, error)
	GetCleanersByRegion(ctx context.Context, region string) ([]models.Cleaner, error)
	GetAvailableCleanersByCity(ctx context.Context, city string) ([]models.Cleaner, error)
	GetCleanersByMaxRate(ctx context.Context, maxRate decimal.Decimal) ([]models.Cleaner, error)
	UpdateCleaner(ctx context.Context, cleaner *models.Cleaner) (*models.Cleaner, error)
	UpdateRate(ctx context.Context, id string, hourlyRate decimal.Decimal) (*models.Cleaner, error)
	DeleteCleaner(ctx context.Context, id string) error

	// SetStatus changes a cleaner's operational status. Every status,
	// including PENDING_APPROVAL, leaves the cleaner able to log in.
	SetStatus(ctx context.Context, id string, status models.CleanerStatus) (*models.Cleaner, error)

	// MigratePendingToAvailable is a one-time administrative remediation
	// that moves every PENDING_APPROVAL cleaner to AVAILABLE.
	MigratePendingToAvailable(ctx context.Context) ([]models.Cleaner, error)
}
