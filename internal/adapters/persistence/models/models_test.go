package models

import (
	"errors"
	"testing"
	"time"

	"iclug-backend/internal/core/domain"
)

func TestMemberBeforeCreateAssignsID(t *testing.T) {
	m := &Member{FullName: "Ana"}
	if err := m.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == "" {
		t.Fatal("expected ID to be assigned")
	}

	// An explicit ID is kept
	m2 := &Member{ID: "fixed", FullName: "Bob"}
	if err := m2.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m2.ID != "fixed" {
		t.Fatalf("expected ID preserved, got %q", m2.ID)
	}
}

func TestPaymentBeforeCreateDefaultsPaidAt(t *testing.T) {
	p := &Payment{MemberID: "1", Year: 2024, Month: 1, Amount: 10}
	before := time.Now().UTC()
	if err := p.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected ID to be assigned")
	}
	if p.PaidAt.Before(before) {
		t.Fatalf("expected paid_at defaulted to now, got %v", p.PaidAt)
	}

	// An explicit paid_at is kept
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p2 := &Payment{MemberID: "1", Year: 2024, Month: 3, Amount: 10, PaidAt: fixed}
	if err := p2.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p2.PaidAt.Equal(fixed) {
		t.Fatalf("expected paid_at preserved, got %v", p2.PaidAt)
	}
}

func TestPaymentBeforeCreateDefaultsCurrency(t *testing.T) {
	p := &Payment{MemberID: "1", Year: 2024, Month: 1, Amount: 10}
	if err := p.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Currency != "EUR" {
		t.Fatalf("expected currency defaulted to EUR, got %q", p.Currency)
	}
}

func TestPaymentBeforeCreateRejectsInvalidRecords(t *testing.T) {
	cases := []struct {
		name    string
		payment Payment
		wantErr error
	}{
		{"month out of range", Payment{MemberID: "1", Year: 2024, Month: 13, Amount: 10}, domain.ErrInvalidMonth},
		{"year out of range", Payment{MemberID: "1", Year: 1999, Month: 1, Amount: 10}, domain.ErrInvalidYear},
		{"negative amount", Payment{MemberID: "1", Year: 2024, Month: 1, Amount: -1}, domain.ErrNegativeAmount},
		{"unknown currency", Payment{MemberID: "1", Year: 2024, Month: 1, Amount: 10, Currency: "USD"}, domain.ErrInvalidCurrency},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.payment
			if err := p.BeforeCreate(nil); !errors.Is(err, tc.wantErr) {
				t.Fatalf("BeforeCreate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDonationBeforeCreateDefaultsDonatedAt(t *testing.T) {
	d := &Donation{Name: "Anon", Amount: 100}
	if err := d.BeforeCreate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == "" {
		t.Fatal("expected ID to be assigned")
	}
	if d.DonatedAt.IsZero() {
		t.Fatal("expected donated_at defaulted to now")
	}
	if d.Currency != "EUR" {
		t.Fatalf("expected currency defaulted to EUR, got %q", d.Currency)
	}
}

func TestDonationBeforeCreateRejectsInvalidRecords(t *testing.T) {
	d := &Donation{Name: "Anon", Amount: -5}
	if err := d.BeforeCreate(nil); !errors.Is(err, domain.ErrNegativeAmount) {
		t.Fatalf("BeforeCreate() = %v, want %v", err, domain.ErrNegativeAmount)
	}
}
