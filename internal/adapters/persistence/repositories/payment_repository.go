package repositories

import (
	"context"

	"iclug-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// paymentRepository implements PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new payment
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// List lists payments matching the optional equality filters
func (r *paymentRepository) List(ctx context.Context, filter PaymentFilter) ([]*models.Payment, error) {
	query := r.db.WithContext(ctx).Model(&models.Payment{})

	if filter.MemberID != "" {
		query = query.Where("member_id = ?", filter.MemberID)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}

	var payments []*models.Payment
	err := query.Find(&payments).Error
	return payments, err
}
