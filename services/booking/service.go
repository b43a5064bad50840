package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "github.com/JohnRey-Adao/AppDev2-CleaningService/database/repository/booking"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// TxnRunner executes a unit of work whose writes must commit together.
type TxnRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoopTxnRunner runs the closure directly. It backs stores without
// transaction support and tests.
type NoopTxnRunner struct{}

func (NoopTxnRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DefaultBookingService is the booking lifecycle engine.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Cleaners  CleanerDirectory
	Customers CustomerDirectory
	Locks     DayLocker
	Txn       TxnRunner
	Policy    TransitionPolicy
	Listeners []EventListener
}

// CreateBooking resolves both parties, enforces the one-active-booking-per
// (cleaner, day) rule under the day lock, prices the job at the cleaner's
// current rate and persists the booking in PENDING.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	date, err := utils.ParseLocalDateTime(in.BookingDate)
	if err != nil {
		return nil, err
	}

	customer, err := svc.Customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	cleaner, err := svc.Cleaners.GetByID(ctx, in.CleanerID)
	if err != nil {
		return nil, err
	}

	total, err := QuoteTotal(cleaner.HourlyRate, in.DurationHours)
	if err != nil {
		return nil, err
	}

	// The availability check and the insert form one critical section per
	// (cleaner, day); without the lock two concurrent requests could both
	// see a free day.
	release, err := svc.Locks.Acquire(ctx, cleaner.ID, utils.FormatDay(date))
	if err != nil {
		return nil, err
	}
	defer release()

	free, err := svc.isDayFree(ctx, cleaner.ID, date)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, utils.ConflictError{Message: "cleaner is not available on the selected day"}
	}

	now := time.Now()
	booking := &models.Booking{
		ID:                  uuid.New().String(),
		CustomerID:          customer.ID,
		CleanerID:           cleaner.ID,
		BookingDate:         date,
		DurationHours:       in.DurationHours,
		TotalAmount:         total,
		Status:              models.BookingPending,
		SpecialInstructions: in.SpecialInstructions,
		ServiceAddress:      in.ServiceAddress,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := svc.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("cleanerID", cleaner.ID),
		zap.String("customerID", customer.ID),
		zap.String("day", utils.FormatDay(date)),
		zap.String("total", total.String()),
	)
	return booking, nil
}

func (svc *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return svc.Bookings.GetByID(ctx, id)
}

func (svc *DefaultBookingService) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	return svc.Bookings.GetAll(ctx)
}

func (svc *DefaultBookingService) GetBookingsByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	if _, err := svc.Customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return svc.Bookings.GetByCustomer(ctx, customerID)
}

func (svc *DefaultBookingService) GetBookingsByCleaner(ctx context.Context, cleanerID string) ([]models.Booking, error) {
	if _, err := svc.Cleaners.GetByID(ctx, cleanerID); err != nil {
		return nil, err
	}
	return svc.Bookings.GetByCleaner(ctx, cleanerID)
}

func (svc *DefaultBookingService) GetBookingsByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	if !status.Valid() {
		return nil, utils.ValidationError{Field: "status", Message: "unknown booking status"}
	}
	return svc.Bookings.GetByStatus(ctx, status)
}

func (svc *DefaultBookingService) GetBookingsByDateRange(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	return svc.Bookings.GetByDateRange(ctx, start, end)
}

// UpdateBooking applies a privileged field edit. The total is requoted only
// when the duration changes; rate changes alone never reprice a booking.
func (svc *DefaultBookingService) UpdateBooking(ctx context.Context, id string, in models.BookingUpdateInput) (*models.Booking, error) {
	booking, err := svc.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.BookingDate != "" {
		date, err := utils.ParseLocalDateTime(in.BookingDate)
		if err != nil {
			return nil, err
		}
		booking.BookingDate = date
	}
	if in.DurationHours != 0 {
		cleaner, err := svc.Cleaners.GetByID(ctx, booking.CleanerID)
		if err != nil {
			return nil, err
		}
		total, err := QuoteTotal(cleaner.HourlyRate, in.DurationHours)
		if err != nil {
			return nil, err
		}
		booking.DurationHours = in.DurationHours
		booking.TotalAmount = total
	}
	if in.SpecialInstructions != "" {
		booking.SpecialInstructions = in.SpecialInstructions
	}
	if in.ServiceAddress != "" {
		booking.ServiceAddress = in.ServiceAddress
	}

	if err := svc.Bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (svc *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	return svc.Bookings.Delete(ctx, id)
}
