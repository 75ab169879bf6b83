package domain

import "time"

// Currency represents a supported payment currency
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyRSD Currency = "RSD"
)

// DefaultCurrency is used when a request omits the currency field
const DefaultCurrency = CurrencyEUR

// IsValid reports whether the currency is one of the supported values
func (c Currency) IsValid() bool {
	return c == CurrencyEUR || c == CurrencyRSD
}

// Member represents a member in the domain layer.
// The ID is an opaque string assigned by the storage layer;
// no format (numeric, UUID, ...) may be assumed.
type Member struct {
	ID       string
	FullName string
	Phone    string
	Email    string
	Active   bool
}

// Payment represents one recorded monthly fee transaction.
// MemberID references Member.ID but is not guaranteed to resolve;
// reporting tolerates dangling references.
type Payment struct {
	ID       string
	MemberID string
	Year     int // [2000, 2100]
	Month    int // [1, 12]
	Amount   float64
	Currency Currency
	Note     string
	PaidAt   time.Time
}

// Validate checks the ranges every stored payment must satisfy
func (p Payment) Validate() error {
	if p.Year < 2000 || p.Year > 2100 {
		return ErrInvalidYear
	}
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidMonth
	}
	if p.Amount < 0 {
		return ErrNegativeAmount
	}
	if !p.Currency.IsValid() {
		return ErrInvalidCurrency
	}
	return nil
}

// Donation represents a one-off contribution, not tied to a member or month
type Donation struct {
	ID        string
	Name      string
	Amount    float64
	Currency  Currency
	Purpose   string
	DonatedAt time.Time
}

// Validate checks the ranges every stored donation must satisfy
func (d Donation) Validate() error {
	if d.Amount < 0 {
		return ErrNegativeAmount
	}
	if !d.Currency.IsValid() {
		return ErrInvalidCurrency
	}
	return nil
}
