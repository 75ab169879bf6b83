package models

import (
	"time"

	"iclug-backend/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Members
// ============================================================

// Member represents members table
type Member struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	FullName  string    `gorm:"size:200;not null" json:"full_name"`
	Phone     string    `gorm:"size:50" json:"phone,omitempty"`
	Email     string    `gorm:"size:100" json:"email,omitempty"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// BeforeCreate assigns the opaque string identity
func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ToDomain converts the record to its domain representation
func (m *Member) ToDomain() domain.Member {
	return domain.Member{
		ID:       m.ID,
		FullName: m.FullName,
		Phone:    m.Phone,
		Email:    m.Email,
		Active:   m.Active,
	}
}

// ============================================================
// Payments
// ============================================================

// Payment represents payments table.
// MemberID is a plain string reference (no FK constraint) so that
// reporting can tolerate dangling references.
type Payment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	MemberID  string    `gorm:"size:36;not null;index" json:"member_id"`
	Year      int       `gorm:"not null;index" json:"year"`
	Month     int       `gorm:"not null" json:"month"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency  string    `gorm:"size:3;not null;default:'EUR'" json:"currency"`
	Note      string    `gorm:"type:text" json:"note,omitempty"`
	PaidAt    time.Time `gorm:"not null" json:"paid_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// BeforeCreate assigns the opaque string identity, applies the currency and
// paid_at defaults, and rejects records outside the domain ranges
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Currency == "" {
		p.Currency = string(domain.DefaultCurrency)
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now().UTC()
	}
	return p.ToDomain().Validate()
}

// ToDomain converts the record to its domain representation
func (p *Payment) ToDomain() domain.Payment {
	return domain.Payment{
		ID:       p.ID,
		MemberID: p.MemberID,
		Year:     p.Year,
		Month:    p.Month,
		Amount:   p.Amount,
		Currency: domain.Currency(p.Currency),
		Note:     p.Note,
		PaidAt:   p.PaidAt,
	}
}

// ============================================================
// Donations
// ============================================================

// Donation represents donations table
type Donation struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency  string    `gorm:"size:3;not null;default:'EUR'" json:"currency"`
	Purpose   string    `gorm:"type:text" json:"purpose,omitempty"`
	DonatedAt time.Time `gorm:"not null" json:"donated_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Donation) TableName() string {
	return "donations"
}

// BeforeCreate assigns the opaque string identity, applies the currency and
// donated_at defaults, and rejects records outside the domain ranges
func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Currency == "" {
		d.Currency = string(domain.DefaultCurrency)
	}
	if d.DonatedAt.IsZero() {
		d.DonatedAt = time.Now().UTC()
	}
	return d.ToDomain().Validate()
}

// ToDomain converts the record to its domain representation
func (d *Donation) ToDomain() domain.Donation {
	return domain.Donation{
		ID:        d.ID,
		Name:      d.Name,
		Amount:    d.Amount,
		Currency:  domain.Currency(d.Currency),
		Purpose:   d.Purpose,
		DonatedAt: d.DonatedAt,
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&Payment{},
		&Donation{},
	)
}
