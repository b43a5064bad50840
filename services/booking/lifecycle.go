package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// ConfirmBooking moves a booking to CONFIRMED. No cleaner side effects.
func (svc *DefaultBookingService) ConfirmBooking(ctx context.Context, id string) (*models.Booking, error) {
	return svc.transition(ctx, id, models.BookingConfirmed, nil)
}

// StartBooking moves a booking to IN_PROGRESS and marks the assigned
// cleaner BUSY via the BookingStarted event.
func (svc *DefaultBookingService) StartBooking(ctx context.Context, id string) (*models.Booking, error) {
	return svc.transition(ctx, id, models.BookingInProgress, func(b *models.Booking) Event {
		return BookingStarted{Booking: b.ID, Cleaner: b.CleanerID}
	})
}

// CompleteBooking moves a booking to COMPLETED and returns the assigned
// cleaner to AVAILABLE via the BookingCompleted event.
func (svc *DefaultBookingService) CompleteBooking(ctx context.Context, id string) (*models.Booking, error) {
	return svc.transition(ctx, id, models.BookingCompleted, func(b *models.Booking) Event {
		return BookingCompleted{Booking: b.ID, Cleaner: b.CleanerID}
	})
}

// CancelBooking moves a booking to CANCELLED. The BookingCancelled event
// frees the cleaner only if it is currently BUSY.
func (svc *DefaultBookingService) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	return svc.transition(ctx, id, models.BookingCancelled, func(b *models.Booking) Event {
		return BookingCancelled{Booking: b.ID, Cleaner: b.CleanerID}
	})
}

// UpdateBookingStatus is the generic privileged path. It honors the
// transition policy but raises no events; NO_SHOW is only reachable here.
func (svc *DefaultBookingService) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	return svc.transition(ctx, id, status, nil)
}

// transition applies one status change. The booking write and any
// listener-driven cleaner write share a store transaction: both commit or
// neither does.
func (svc *DefaultBookingService) transition(ctx context.Context, id string, to models.BookingStatus, makeEvent func(*models.Booking) Event) (*models.Booking, error) {
	current, err := svc.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := svc.Policy(current.Status, to); err != nil {
		return nil, err
	}

	var updated *models.Booking
	err = svc.Txn.WithTransaction(ctx, func(ctx context.Context) error {
		booking, err := svc.Bookings.UpdateStatus(ctx, id, to)
		if err != nil {
			return err
		}
		updated = booking
		if makeEvent == nil {
			return nil
		}
		return svc.dispatch(ctx, makeEvent(booking))
	})
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(to)),
	)
	return updated, nil
}
