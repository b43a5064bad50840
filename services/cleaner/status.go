package cleaner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/services/booking"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// SetStatus changes the cleaner's operational status and re-enables login
// eligibility. All five statuses allow login; PENDING_APPROVAL no longer
// blocks it.
func (svc *DefaultCleanerService) SetStatus(ctx context.Context, id string, status models.CleanerStatus) (*models.Cleaner, error) {
	if !status.Valid() {
		return nil, utils.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("unknown cleaner status %q", status),
		}
	}

	cleaner, err := svc.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if err := svc.Identities.SetActive(ctx, id, true); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("cleaner status changed",
		zap.String("cleanerID", id),
		zap.String("status", string(status)),
	)
	return cleaner, nil
}

// OnBookingEvent keeps the cleaner's operational status in sync with the
// booking lifecycle. It runs inside the transition's store transaction.
func (svc *DefaultCleanerService) OnBookingEvent(ctx context.Context, evt booking.Event) error {
	switch evt.(type) {
	case booking.BookingStarted:
		_, err := svc.SetStatus(ctx, evt.CleanerID(), models.CleanerBusy)
		return err
	case booking.BookingCompleted:
		_, err := svc.SetStatus(ctx, evt.CleanerID(), models.CleanerAvailable)
		return err
	case booking.BookingCancelled:
		cleaner, err := svc.Repo.GetByID(ctx, evt.CleanerID())
		if err != nil {
			return err
		}
		// Only a BUSY cleaner is freed; cancelling a booking that never
		// started leaves the status untouched.
		if cleaner.Status != models.CleanerBusy {
			return nil
		}
		_, err = svc.SetStatus(ctx, evt.CleanerID(), models.CleanerAvailable)
		return err
	}
	return nil
}

// MigratePendingToAvailable moves every PENDING_APPROVAL cleaner to
// AVAILABLE with login enabled. One-time remediation, not part of the
// steady-state lifecycle.
func (svc *DefaultCleanerService) MigratePendingToAvailable(ctx context.Context) ([]models.Cleaner, error) {
	pending, err := svc.Repo.GetByStatus(ctx, models.CleanerPendingApproval)
	if err != nil {
		return nil, err
	}

	migrated := make([]models.Cleaner, 0, len(pending))
	for _, c := range pending {
		updated, err := svc.SetStatus(ctx, c.ID, models.CleanerAvailable)
		if err != nil {
			return migrated, err
		}
		migrated = append(migrated, *updated)
	}

	utils.GetLogger().Info("migrated pending cleaners", zap.Int("count", len(migrated)))
	return migrated, nil
}
