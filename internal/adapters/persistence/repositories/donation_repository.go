package repositories

import (
	"context"

	"iclug-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// donationRepository implements DonationRepository interface
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

// Create creates a new donation
func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

// List lists all donations
func (r *donationRepository) List(ctx context.Context) ([]*models.Donation, error) {
	var donations []*models.Donation
	err := r.db.WithContext(ctx).Find(&donations).Error
	return donations, err
}
