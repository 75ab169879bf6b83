package domain

import "errors"

// Errors surfaced by record validation and lookups
var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrInvalidYear     = errors.New("year must be between 2000 and 2100")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrInvalidCurrency = errors.New("currency must be EUR or RSD")
)
