package repositories

import (
	"context"

	"iclug-backend/internal/adapters/persistence/models"
)

// PaymentFilter holds optional equality filters for payment listing.
// Zero values mean "no filter".
type PaymentFilter struct {
	MemberID string
	Year     int
}

// MemberRepository defines member repository interface
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id string) (*models.Member, error)
	List(ctx context.Context) ([]*models.Member, error)
	Count(ctx context.Context) (int64, error)
}

// PaymentRepository defines payment repository interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	List(ctx context.Context, filter PaymentFilter) ([]*models.Payment, error)
}

// DonationRepository defines donation repository interface
type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	List(ctx context.Context) ([]*models.Donation, error)
}
