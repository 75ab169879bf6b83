package repositories

import (
	"context"
	"errors"

	"iclug-backend/internal/adapters/persistence/models"
	"iclug-backend/internal/core/domain"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member by ID
func (r *memberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List lists all members in storage order
func (r *memberRepository) List(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).Find(&members).Error
	return members, err
}

// Count counts all members regardless of active status
func (r *memberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Count(&count).Error
	return count, err
}
