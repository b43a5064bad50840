package identityRepo

import (
	"context"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
)

// IdentityRepository persists the generic account records that cleaner and
// customer profiles reference by id.
type IdentityRepository interface {
	Create(ctx context.Context, identity *models.Identity) error
	GetByID(ctx context.Context, id string) (*models.Identity, error)
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
