package booking

import (
	"fmt"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// TransitionPolicy validates a requested status transition. Every status
// change funnels through it, so tightening the rules is a one-line swap at
// wiring time.
type TransitionPolicy func(from, to models.BookingStatus) error

// AllowAny permits overwriting any status with any other. This mirrors the
// behavior the system shipped with: admins can repair bookings freely.
func AllowAny(_, to models.BookingStatus) error {
	if !to.Valid() {
		return utils.ValidationError{Field: "status", Message: fmt.Sprintf("unknown booking status %q", to)}
	}
	return nil
}

var sequentialTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:    {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed:  {models.BookingInProgress, models.BookingCancelled},
	models.BookingInProgress: {models.BookingCompleted, models.BookingCancelled},
}

// SequentialOnly permits only the forward lifecycle plus cancellation from
// any non-terminal state.
func SequentialOnly(from, to models.BookingStatus) error {
	if !to.Valid() {
		return utils.ValidationError{Field: "status", Message: fmt.Sprintf("unknown booking status %q", to)}
	}
	for _, allowed := range sequentialTransitions[from] {
		if to == allowed {
			return nil
		}
	}
	return utils.ConflictError{
		Message: fmt.Sprintf("booking cannot move from %s to %s", from, to),
	}
}
