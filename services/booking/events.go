package booking

import "context"

// Lifecycle transitions raise events instead of mutating cleaner state
// directly; the cleaner service consumes them. Listeners run synchronously
// inside the transition's store transaction, so a listener error aborts the
// whole transition.

// Event is a booking lifecycle event.
type Event interface {
	BookingID() string
	CleanerID() string
}

// BookingStarted is raised when a booking enters IN_PROGRESS.
type BookingStarted struct {
	Booking string
	Cleaner string
}

func (e BookingStarted) BookingID() string { return e.Booking }
func (e BookingStarted) CleanerID() string { return e.Cleaner }

// BookingCompleted is raised when a booking enters COMPLETED.
type BookingCompleted struct {
	Booking string
	Cleaner string
}

func (e BookingCompleted) BookingID() string { return e.Booking }
func (e BookingCompleted) CleanerID() string { return e.Cleaner }

// BookingCancelled is raised when a booking enters CANCELLED.
type BookingCancelled struct {
	Booking string
	Cleaner string
}

func (e BookingCancelled) BookingID() string { return e.Booking }
func (e BookingCancelled) CleanerID() string { return e.Cleaner }

// EventListener reacts to booking lifecycle events.
type EventListener interface {
	OnBookingEvent(ctx context.Context, evt Event) error
}

func (svc *DefaultBookingService) dispatch(ctx context.Context, evt Event) error {
	for _, listener := range svc.Listeners {
		if err := listener.OnBookingEvent(ctx, evt); err != nil {
			return err
		}
	}
	return nil
}
