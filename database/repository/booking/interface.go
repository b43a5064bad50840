package bookingRepo

import (
	"context"
	"time"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
)

// BookingRepository persists bookings and answers the queries the lifecycle
// engine and the read endpoints need.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	GetByCleaner(ctx context.Context, cleanerID string) ([]models.Booking, error)
	GetByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]models.Booking, error)

	// GetForCleanerOnDay returns the cleaner's bookings whose date-time
	// falls within [start, end], excluding cancelled ones. Both bounds are
	// inclusive; callers pass end as one nanosecond before the next day.
	GetForCleanerOnDay(ctx context.Context, cleanerID string, start, end time.Time) ([]models.Booking, error)

	Update(ctx context.Context, booking *models.Booking) error
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	DeleteByCleaner(ctx context.Context, cleanerID string) error
}
