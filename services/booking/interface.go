package booking

import (
	"context"
	"time"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
)

// BookingService drives a booking through its lifecycle and answers the
// read queries the API layer exposes.
type BookingService interface {
	CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetAllBookings(ctx context.Context) ([]models.Booking, error)
	GetBookingsByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	GetBookingsByCleaner(ctx context.Context, cleanerID string) ([]models.Booking, error)
	GetBookingsByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	GetBookingsByDateRange(ctx context.Context, start, end time.Time) ([]models.Booking, error)

	IsCleanerAvailableOnDate(ctx context.Context, cleanerID, date string) (bool, error)

	ConfirmBooking(ctx context.Context, id string) (*models.Booking, error)
	StartBooking(ctx context.Context, id string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, error)

	// UpdateBookingStatus is the generic privileged path; it bypasses the
	// cleaner-status side effects and is the only way to set NO_SHOW.
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)

	UpdateBooking(ctx context.Context, id string, in models.BookingUpdateInput) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// CleanerDirectory is the slice of the cleaner store the engine needs.
type CleanerDirectory interface {
	GetByID(ctx context.Context, id string) (*models.Cleaner, error)
}

// CustomerDirectory is the slice of the customer store the engine needs.
type CustomerDirectory interface {
	GetByID(ctx context.Context, id string) (*models.Customer, error)
}
