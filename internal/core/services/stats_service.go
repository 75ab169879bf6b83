package services

import (
	"context"
	"sort"

	"iclug-backend/internal/adapters/persistence/repositories"
	"iclug-backend/internal/core/domain"

	"github.com/shopspring/decimal"
)

// StatsService handles reporting operations
type StatsService struct {
	memberRepo   repositories.MemberRepository
	paymentRepo  repositories.PaymentRepository
	donationRepo repositories.DonationRepository
}

// NewStatsService creates a new stats service
func NewStatsService(
	memberRepo repositories.MemberRepository,
	paymentRepo repositories.PaymentRepository,
	donationRepo repositories.DonationRepository,
) *StatsService {
	return &StatsService{
		memberRepo:   memberRepo,
		paymentRepo:  paymentRepo,
		donationRepo: donationRepo,
	}
}

// MatrixRow is one member's report line: 12 monthly totals plus the yearly sum
type MatrixRow struct {
	ID       string    `json:"id"`
	FullName string    `json:"full_name"`
	Months   []float64 `json:"months"`
	Total    float64   `json:"total"`
}

// Summary holds dashboard totals
type Summary struct {
	Members        int64   `json:"members"`
	PaymentsYear   float64 `json:"payments_year"`
	DonationsTotal float64 `json:"donations_total"`
}

// ============================================================
// Pure computations
// ============================================================

type paymentKey struct {
	memberID string
	month    int
}

// ComputeMatrix builds the per-member monthly payment matrix for a year.
// Payments outside the requested year are ignored; payments whose member_id
// matches no member are silently dropped. Every member appears exactly once,
// with all-zero months when no payments match. Rows are sorted ascending by
// full name (case-sensitive); a missing name sorts as the empty string.
// month is assumed pre-validated to [1,12].
func ComputeMatrix(members []domain.Member, payments []domain.Payment, year int) []MatrixRow {
	// Index payment sums by (member, month)
	byKey := make(map[paymentKey]float64)
	for _, p := range payments {
		if p.Year != year {
			continue
		}
		byKey[paymentKey{memberID: p.MemberID, month: p.Month}] += p.Amount
	}

	rows := make([]MatrixRow, 0, len(members))
	for _, m := range members {
		months := make([]float64, 12)
		sum := 0.0
		for i := 1; i <= 12; i++ {
			months[i-1] = byKey[paymentKey{memberID: m.ID, month: i}]
			sum += months[i-1]
		}
		rows = append(rows, MatrixRow{
			ID:       m.ID,
			FullName: m.FullName,
			Months:   months,
			Total:    round2(sum),
		})
	}

	// Sort by name; stable so storage order breaks ties
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FullName < rows[j].FullName
	})

	return rows
}

// ComputeSummary builds dashboard totals. yearPayments must already be
// filtered to the target year; donations are all-time on purpose since
// donations carry no year scoping.
func ComputeSummary(memberCount int64, yearPayments []domain.Payment, donations []domain.Donation) Summary {
	paymentsYear := 0.0
	for _, p := range yearPayments {
		paymentsYear += p.Amount
	}

	donationsTotal := 0.0
	for _, d := range donations {
		donationsTotal += d.Amount
	}

	return Summary{
		Members:        memberCount,
		PaymentsYear:   round2(paymentsYear),
		DonationsTotal: round2(donationsTotal),
	}
}

// round2 rounds to 2 decimal places
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ============================================================
// Request-scoped fetch + compute
// ============================================================

// GetMatrix returns the payment matrix for a year
func (s *StatsService) GetMatrix(ctx context.Context, year int) ([]MatrixRow, error) {
	memberRecords, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	paymentRecords, err := s.paymentRepo.List(ctx, repositories.PaymentFilter{Year: year})
	if err != nil {
		return nil, err
	}

	members := make([]domain.Member, len(memberRecords))
	for i, m := range memberRecords {
		members[i] = m.ToDomain()
	}

	payments := make([]domain.Payment, len(paymentRecords))
	for i, p := range paymentRecords {
		payments[i] = p.ToDomain()
	}

	return ComputeMatrix(members, payments, year), nil
}

// GetSummary returns dashboard totals for a year
func (s *StatsService) GetSummary(ctx context.Context, year int) (*Summary, error) {
	memberCount, err := s.memberRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	paymentRecords, err := s.paymentRepo.List(ctx, repositories.PaymentFilter{Year: year})
	if err != nil {
		return nil, err
	}

	donationRecords, err := s.donationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, len(paymentRecords))
	for i, p := range paymentRecords {
		payments[i] = p.ToDomain()
	}

	donations := make([]domain.Donation, len(donationRecords))
	for i, d := range donationRecords {
		donations[i] = d.ToDomain()
	}

	summary := ComputeSummary(memberCount, payments, donations)
	return &summary, nil
}
