package booking

import (
	"context"
	"time"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// DayBounds returns the inclusive bounds of the calendar day containing t:
// start of day through one nanosecond before the next day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// IsCleanerAvailableOnDate reports whether the cleaner has no active
// booking on the given calendar date. Cancelled bookings do not block.
func (svc *DefaultBookingService) IsCleanerAvailableOnDate(ctx context.Context, cleanerID, date string) (bool, error) {
	if _, err := svc.Cleaners.GetByID(ctx, cleanerID); err != nil {
		return false, err
	}
	day, err := utils.ParseLocalDate(date)
	if err != nil {
		return false, err
	}
	return svc.isDayFree(ctx, cleanerID, day)
}

// isDayFree is the enforced precondition inside booking creation. Callers
// that need the check-then-insert sequence to be atomic must hold the day
// lock while calling it.
func (svc *DefaultBookingService) isDayFree(ctx context.Context, cleanerID string, at time.Time) (bool, error) {
	start, end := DayBounds(at)
	existing, err := svc.Bookings.GetForCleanerOnDay(ctx, cleanerID, start, end)
	if err != nil {
		return false, err
	}
	return len(existing) == 0, nil
}
